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

type stubStoreRepo struct {
	stores map[string]*entity.Store
}

func newStubStoreRepo() *stubStoreRepo { return &stubStoreRepo{stores: make(map[string]*entity.Store)} }

func (r *stubStoreRepo) Create(store *entity.Store) error { r.stores[store.ID] = store; return nil }
func (r *stubStoreRepo) Update(store *entity.Store) error { r.stores[store.ID] = store; return nil }
func (r *stubStoreRepo) Delete(id string) error           { delete(r.stores, id); return nil }

func (r *stubStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	copia := *s
	return &copia, nil
}

func (r *stubStoreRepo) List() ([]*entity.Store, error) {
	var list []*entity.Store
	for _, s := range r.stores {
		list = append(list, s)
	}
	return list, nil
}

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────

func TestStoreCreate_NombreObligatorio(t *testing.T) {
	uc := usecase.NewStoreUseCase(newStubStoreRepo(), newStubLotRepo())

	_, err := uc.Create(dto.CreateStoreRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	store, err := uc.Create(dto.CreateStoreRequest{
		Name: " Tienda Centro ", Location: "Av. Juárez 10", Manager: "Laura", Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tienda Centro", store.Name)
	assert.NotEmpty(t, store.ID)
	assert.WithinDuration(t, time.Now(), store.CreatedAt, time.Second)
}

func TestStoreUpdate_CamposParciales(t *testing.T) {
	stores := newStubStoreRepo()
	uc := usecase.NewStoreUseCase(stores, newStubLotRepo())

	store, err := uc.Create(dto.CreateStoreRequest{Name: "Tienda Centro", Manager: "Laura"})
	require.NoError(t, err)

	updated, err := uc.Update(store.ID, dto.UpdateStoreRequest{Phone: str("555-0199")})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Laura", updated.Manager, "los campos no enviados no se tocan")

	_, err = uc.Update(store.ID, dto.UpdateStoreRequest{Name: str("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nombre no puede vaciarse")

	_, err = uc.Update("nope", dto.UpdateStoreRequest{Phone: str("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreDelete_ConInventarioEnPisoSeRechaza(t *testing.T) {
	stores := newStubStoreRepo()
	lots := newStubLotRepo()
	uc := usecase.NewStoreUseCase(stores, lots)

	store, err := uc.Create(dto.CreateStoreRequest{Name: "Tienda Centro"})
	require.NoError(t, err)

	require.NoError(t, lots.Create(&entity.Lot{
		ID: "lote-1", Category: "Papas", Flavor: "Limón", Size: "Grande",
		Quantity: 2, UnitCost: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10),
		LocationID: store.ID, ReceivedDate: "2025-03-01",
	}))

	assert.ErrorIs(t, uc.Delete(store.ID), domain.ErrConflict)

	// Con el piso vacío la baja procede.
	require.NoError(t, lots.Delete("lote-1"))
	require.NoError(t, uc.Delete(store.ID))

	assert.ErrorIs(t, uc.Delete(store.ID), domain.ErrNotFound)
}
