package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/davidrmz/chipsmanager-api/internal/domain"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = "id, category, flavor, size, quantity, unit_cost, unit_price, location_id, received_date, received_at"

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, category, flavor, size, quantity, unit_cost, unit_price, location_id, received_date, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Category, lot.Flavor, lot.Size, lot.Quantity,
		lot.UnitCost, lot.UnitPrice, lot.LocationID, lot.ReceivedDate, lot.ReceivedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. Devuelve (nil, nil) si no existe.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get lot")
}

// GetForUpdate obtiene un lote y bloquea la fila (SELECT FOR UPDATE).
// Devuelve (nil, nil) si no existe.
func (r *LotRepo) GetForUpdate(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get lot for update")
}

// Update sobrescribe identidad, cantidad, costo y precio del lote.
// La ubicación y las fechas de recepción no se actualizan por esta vía.
func (r *LotRepo) Update(lot *entity.Lot) error {
	query := `
		UPDATE lots SET category = $2, flavor = $3, size = $4, quantity = $5, unit_cost = $6, unit_price = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Category, lot.Flavor, lot.Size, lot.Quantity, lot.UnitCost, lot.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Decrement resta `by` unidades de forma atómica. Cada caso se resuelve en un
// solo statement: el agotamiento elimina la fila en el mismo statement que la
// deja en 0, y el decremento parcial lleva el guard `quantity > $2`, así que
// una fila con cantidad 0 nunca es observable ni sobrevive a un corte a mitad
// de la operación. Devuelve (nil, nil) cuando el lote se agotó y eliminó.
func (r *LotRepo) Decrement(id string, by int) (*entity.Lot, error) {
	for {
		// Agotamiento: la resta dejaría el lote en 0, se elimina directo.
		cmd, err := r.q.Exec(context.Background(),
			`DELETE FROM lots WHERE id = $1 AND quantity = $2`, id, by)
		if err != nil {
			return nil, fmt.Errorf("delete exhausted lot: %w", err)
		}
		if cmd.RowsAffected() > 0 {
			return nil, nil
		}

		// Decremento parcial: quedan unidades después de restar.
		query := `
			UPDATE lots SET quantity = quantity - $2
			WHERE id = $1 AND quantity > $2
			RETURNING ` + lotColumns
		lot, err := r.scanOne(r.q.QueryRow(context.Background(), query, id, by), "decrement lot")
		if err != nil {
			return nil, err
		}
		if lot != nil {
			return lot, nil
		}

		// Ningún statement aplicó: o el lote no existe, o no alcanza, o la
		// cantidad cambió entre ambos statements (fuera de una tx).
		existing, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		if existing.Quantity < by {
			return nil, domain.ErrInsufficientStock
		}
		// La cantidad volvió a alcanzar: perdimos la carrera, reintentar.
	}
}

// Delete elimina un lote por ID.
func (r *LotRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista lotes con paginación, los recibidos más recientemente primero.
func (r *LotRepo) List(limit, offset int) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots ORDER BY received_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListByLocation lista los lotes de una ubicación (almacén o tienda) en orden
// FIFO: primero por fecha de recepción, luego por timestamp de alta.
func (r *LotRepo) ListByLocation(locationID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE location_id = $1 ORDER BY received_date ASC, received_at ASC`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list lots by location: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// CountByLocation cuenta los lotes de una ubicación.
func (r *LotRepo) CountByLocation(locationID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM lots WHERE location_id = $1`, locationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count lots by location: %w", err)
	}
	return count, nil
}

func (r *LotRepo) scanOne(row pgx.Row, op string) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.Category, &l.Flavor, &l.Size, &l.Quantity,
		&l.UnitCost, &l.UnitPrice, &l.LocationID, &l.ReceivedDate, &l.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &l, nil
}

func (r *LotRepo) scanList(rows pgx.Rows) ([]*entity.Lot, error) {
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.Category, &l.Flavor, &l.Size, &l.Quantity,
			&l.UnitCost, &l.UnitPrice, &l.LocationID, &l.ReceivedDate, &l.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
