package repository

import "github.com/davidrmz/chipsmanager-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el log append-only
// de ventas y mermas. Los registros nunca se actualizan ni se borran en
// operación normal.
type MovementRepository interface {
	Create(record *entity.MovementRecord) error
	List() ([]*entity.MovementRecord, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.MovementRecord, error)
}
