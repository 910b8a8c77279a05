package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = "id, type, category, flavor, size, quantity, unit_price, unit_cost, amount, store_id, date, reason, created_at, created_by"

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El log de movimientos es append-only: no hay Update ni Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create anexa un registro de venta o merma.
func (r *MovementRepo) Create(m *entity.MovementRecord) error {
	query := `
		INSERT INTO movements (id, type, category, flavor, size, quantity, unit_price, unit_cost, amount, store_id, date, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Type, m.Category, m.Flavor, m.Size, m.Quantity,
		m.UnitPrice, m.UnitCost, m.Amount, m.StoreID, m.Date, m.Reason, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos, el más reciente primero. El agregador
// financiero filtra por período en memoria, igual que con los gastos.
func (r *MovementRepo) List() ([]*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListByStore lista los movimientos de una tienda con paginación.
func (r *MovementRepo) ListByStore(storeID string, limit, offset int) ([]*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by store: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *MovementRepo) scanList(rows pgx.Rows) ([]*entity.MovementRecord, error) {
	var list []*entity.MovementRecord
	for rows.Next() {
		var m entity.MovementRecord
		if err := rows.Scan(&m.ID, &m.Type, &m.Category, &m.Flavor, &m.Size, &m.Quantity,
			&m.UnitPrice, &m.UnitCost, &m.Amount, &m.StoreID, &m.Date, &m.Reason, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
