package postgres

import (
	"context"
	"fmt"

	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL.
// Append-only, como el log de movimientos.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de persistencia para traslados.
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create anexa un registro de traslado confirmado.
func (r *TransferRepo) Create(t *entity.TransferRecord) error {
	query := `
		INSERT INTO transfers (id, product_name, store_id, quantity, unit_price, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.ProductName, t.StoreID, t.Quantity, t.UnitPrice, t.Date, t.CreatedAt, t.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// List lista traslados con paginación, el más reciente primero.
func (r *TransferRepo) List(limit, offset int) ([]*entity.TransferRecord, error) {
	query := `
		SELECT id, product_name, store_id, quantity, unit_price, date, created_at, created_by
		FROM transfers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransferRecord
	for rows.Next() {
		var t entity.TransferRecord
		if err := rows.Scan(&t.ID, &t.ProductName, &t.StoreID, &t.Quantity, &t.UnitPrice, &t.Date, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
