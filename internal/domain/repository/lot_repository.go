package repository

import "github.com/davidrmz/chipsmanager-api/internal/domain/entity"

// LotRepository define el puerto de persistencia para lotes (el ledger autoritativo).
// Las lecturas reflejan siempre la última escritura: no hay capa de caché.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE). Usar solo
	// dentro de una transacción del TxRunner.
	GetForUpdate(id string) (*entity.Lot, error)
	Update(lot *entity.Lot) error
	// Decrement resta `by` unidades y elimina el lote en el mismo paso si la
	// cantidad resultante es exactamente 0; nunca persiste un lote en 0.
	// Devuelve el lote actualizado, o nil si fue eliminado.
	Decrement(id string, by int) (*entity.Lot, error)
	Delete(id string) error
	List(limit, offset int) ([]*entity.Lot, error)
	ListByLocation(locationID string) ([]*entity.Lot, error)
	// CountByLocation cuenta lotes en una ubicación (guard de borrado de tienda).
	CountByLocation(locationID string) (int, error)
}
