package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/application/usecase"
	"github.com/davidrmz/chipsmanager-api/internal/domain"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
)

// stubLotRepo fake en memoria del repositorio de lotes.
type stubLotRepo struct {
	lots map[string]*entity.Lot
}

func newStubLotRepo() *stubLotRepo { return &stubLotRepo{lots: make(map[string]*entity.Lot)} }

func (r *stubLotRepo) Create(lot *entity.Lot) error { r.lots[lot.ID] = lot; return nil }

func (r *stubLotRepo) GetByID(id string) (*entity.Lot, error) {
	lot, ok := r.lots[id]
	if !ok {
		return nil, nil
	}
	copia := *lot
	return &copia, nil
}

func (r *stubLotRepo) GetForUpdate(id string) (*entity.Lot, error) { return r.GetByID(id) }

func (r *stubLotRepo) Update(lot *entity.Lot) error {
	if _, ok := r.lots[lot.ID]; !ok {
		return domain.ErrNotFound
	}
	r.lots[lot.ID] = lot
	return nil
}

func (r *stubLotRepo) Decrement(id string, by int) (*entity.Lot, error) {
	lot, ok := r.lots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if lot.Quantity < by {
		return nil, domain.ErrInsufficientStock
	}
	lot.Quantity -= by
	if lot.Quantity == 0 {
		delete(r.lots, id)
		return nil, nil
	}
	copia := *lot
	return &copia, nil
}

func (r *stubLotRepo) Delete(id string) error {
	if _, ok := r.lots[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.lots, id)
	return nil
}

func (r *stubLotRepo) List(limit, offset int) ([]*entity.Lot, error) {
	var list []*entity.Lot
	for _, l := range r.lots {
		list = append(list, l)
	}
	return list, nil
}

func (r *stubLotRepo) ListByLocation(locationID string) ([]*entity.Lot, error) {
	var list []*entity.Lot
	for _, l := range r.lots {
		if l.LocationID == locationID {
			list = append(list, l)
		}
	}
	return list, nil
}

func (r *stubLotRepo) CountByLocation(locationID string) (int, error) {
	list, _ := r.ListByLocation(locationID)
	return len(list), nil
}

// ──────────────────────────────────────────────────────────────────────────────

func TestLotCreate_EntraAlAlmacenConFechaDeHoy(t *testing.T) {
	repo := newStubLotRepo()
	uc := usecase.NewLotUseCase(repo)

	lot, err := uc.Create(dto.CreateLotRequest{
		Category:  "  Papas ",
		Flavor:    "Limón",
		Size:      "Grande",
		Quantity:  12,
		UnitCost:  decimal.NewFromInt(5),
		UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "Papas", lot.Category, "la identidad se guarda recortada")
	assert.Equal(t, entity.LocationWarehouse, lot.LocationID)
	assert.Equal(t, time.Now().Format("2006-01-02"), lot.ReceivedDate)
	assert.NotEmpty(t, lot.ID)

	guardado, _ := repo.GetByID(lot.ID)
	require.NotNil(t, guardado)
	assert.Equal(t, 12, guardado.Quantity)
}

func TestLotCreate_RechazaCamposInvalidos(t *testing.T) {
	uc := usecase.NewLotUseCase(newStubLotRepo())

	casos := []dto.CreateLotRequest{
		{Category: "", Flavor: "Limón", Size: "Grande", Quantity: 1, UnitCost: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2)},
		{Category: "Papas", Flavor: "   ", Size: "Grande", Quantity: 1, UnitCost: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2)},
		{Category: "Papas", Flavor: "Limón", Size: "Grande", Quantity: 0, UnitCost: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2)},
		{Category: "Papas", Flavor: "Limón", Size: "Grande", Quantity: 1, UnitCost: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(2)},
		{Category: "Papas", Flavor: "Limón", Size: "Grande", Quantity: 1, UnitCost: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-2)},
	}
	for _, in := range casos {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestLotUpdate_SobrescrituraCompleta(t *testing.T) {
	repo := newStubLotRepo()
	uc := usecase.NewLotUseCase(repo)

	lot, err := uc.Create(dto.CreateLotRequest{
		Category: "Papas", Flavor: "Limón", Size: "Grande",
		Quantity: 5, UnitCost: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	updated, err := uc.Update(lot.ID, dto.UpdateLotRequest{
		Category: "Papas", Flavor: "Chile", Size: "Chico",
		Quantity: 7, UnitCost: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(9),
	})
	require.NoError(t, err)
	assert.Equal(t, "Chile", updated.Flavor)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, entity.LocationWarehouse, updated.LocationID, "editar no reubica")
	assert.Equal(t, lot.ReceivedDate, updated.ReceivedDate, "editar no cambia la recepción")
}

func TestLotUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewLotUseCase(newStubLotRepo())
	_, err := uc.Update("nope", dto.UpdateLotRequest{
		Category: "Papas", Flavor: "Limón", Size: "Grande",
		Quantity: 1, UnitCost: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLotReduceOrDelete(t *testing.T) {
	repo := newStubLotRepo()
	uc := usecase.NewLotUseCase(repo)

	lot, err := uc.Create(dto.CreateLotRequest{
		Category: "Papas", Flavor: "Limón", Size: "Grande",
		Quantity: 2, UnitCost: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// Resta de a una.
	require.NoError(t, uc.ReduceOrDelete(lot.ID, false))
	restante, _ := repo.GetByID(lot.ID)
	require.NotNil(t, restante)
	assert.Equal(t, 1, restante.Quantity)

	// La última unidad elimina el lote.
	require.NoError(t, uc.ReduceOrDelete(lot.ID, false))
	gone, _ := repo.GetByID(lot.ID)
	assert.Nil(t, gone)

	// Borrado completo de un golpe.
	otro, err := uc.Create(dto.CreateLotRequest{
		Category: "Papas", Flavor: "Chile", Size: "Chico",
		Quantity: 9, UnitCost: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.NoError(t, uc.ReduceOrDelete(otro.ID, true))
	gone, _ = repo.GetByID(otro.ID)
	assert.Nil(t, gone)

	assert.ErrorIs(t, uc.ReduceOrDelete("nope", false), domain.ErrNotFound)
}

func TestLotListWarehouseGrouped_AgrupaYBusca(t *testing.T) {
	repo := newStubLotRepo()
	uc := usecase.NewLotUseCase(repo)

	for i, in := range []dto.CreateLotRequest{
		{Category: "Papas", Flavor: "Limón", Size: "Grande", Quantity: 3, UnitCost: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10)},
		{Category: "Papas", Flavor: "Limón", Size: "Grande", Quantity: 4, UnitCost: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10)},
		{Category: "Chicharrones", Flavor: "Natural", Size: "Chico", Quantity: 6, UnitCost: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(7)},
	} {
		_, err := uc.Create(in)
		require.NoError(t, err, "caso %d", i)
	}

	groups, err := uc.ListWarehouseGrouped("")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	groups, err = uc.ListWarehouseGrouped("limon")
	require.NoError(t, err)
	require.Len(t, groups, 1, "la búsqueda ignora acentos")
	assert.Equal(t, "Limón", groups[0].Flavor)
	assert.Equal(t, 7, groups[0].TotalQuantity)
	assert.Len(t, groups[0].Lots, 2)
}
