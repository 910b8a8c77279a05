package repository

import "github.com/davidrmz/chipsmanager-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para el log append-only
// de traslados confirmados.
type TransferRepository interface {
	Create(record *entity.TransferRecord) error
	List(limit, offset int) ([]*entity.TransferRecord, error)
}
