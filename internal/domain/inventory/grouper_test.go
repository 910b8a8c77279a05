package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/inventory"
)

// lote de prueba en almacén con fecha y timestamp dados.
func lot(id, category, flavor, size string, qty int, date string, at time.Time) *entity.Lot {
	return &entity.Lot{
		ID:           id,
		Category:     category,
		Flavor:       flavor,
		Size:         size,
		Quantity:     qty,
		UnitCost:     decimal.NewFromInt(5),
		UnitPrice:    decimal.NewFromInt(10),
		LocationID:   entity.LocationWarehouse,
		ReceivedDate: date,
		ReceivedAt:   at,
	}
}

func TestGroupWarehouseLots_AgrupaPorSKUYSumaCantidades(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	lots := []*entity.Lot{
		lot("a", "Papas", "Limón", "Grande", 3, "2025-03-01", base),
		lot("b", "Papas", "Limón", "Grande", 7, "2025-03-02", base.AddDate(0, 0, 1)),
		lot("c", "Papas", "Fuego", "Chica", 2, "2025-03-01", base),
	}

	groups := inventory.GroupWarehouseLots(lots, "")
	require.Len(t, groups, 2)

	// Orden determinista por SKU: Fuego antes que Limón.
	assert.Equal(t, "Fuego", groups[0].Key.Flavor)
	assert.Equal(t, 2, groups[0].TotalQuantity)
	assert.Equal(t, "Limón", groups[1].Key.Flavor)
	assert.Equal(t, 10, groups[1].TotalQuantity, "debe sumar las cantidades de ambos lotes")
	assert.Len(t, groups[1].Lots, 2)
}

func TestGroupWarehouseLots_OrdenFIFODentroDelGrupo(t *testing.T) {
	base := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	lots := []*entity.Lot{
		lot("nuevo", "Papas", "Limón", "Grande", 1, "2025-03-07", base.AddDate(0, 0, 2)),
		lot("viejo", "Papas", "Limón", "Grande", 1, "2025-03-05", base),
		// Misma fecha que "viejo" pero timestamp posterior: el timestamp desempata.
		lot("empate", "Papas", "Limón", "Grande", 1, "2025-03-05", base.Add(4*time.Hour)),
	}

	groups := inventory.GroupWarehouseLots(lots, "")
	require.Len(t, groups, 1)

	ids := []string{groups[0].Lots[0].ID, groups[0].Lots[1].ID, groups[0].Lots[2].ID}
	assert.Equal(t, []string{"viejo", "empate", "nuevo"}, ids,
		"los lotes deben quedar del más viejo al más nuevo (FIFO)")
}

func TestGroupWarehouseLots_ExcluyeLotesDeTienda(t *testing.T) {
	base := time.Now()
	enTienda := lot("t", "Papas", "Limón", "Grande", 5, "2025-03-01", base)
	enTienda.LocationID = "tienda-centro"
	lots := []*entity.Lot{
		enTienda,
		lot("w", "Papas", "Limón", "Grande", 2, "2025-03-01", base),
	}

	groups := inventory.GroupWarehouseLots(lots, "")
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].TotalQuantity, "solo debe contar el lote de almacén")
}

func TestGroupWarehouseLots_BusquedaInsensibleAMayusculasYAcentos(t *testing.T) {
	base := time.Now()
	lots := []*entity.Lot{
		lot("a", "Papas", "Limón", "Grande", 1, "2025-03-01", base),
		lot("b", "Chicharrones", "Fuego", "Chica", 1, "2025-03-01", base),
	}

	// "limon" sin acento debe encontrar "Limón".
	groups := inventory.GroupWarehouseLots(lots, "limon")
	require.Len(t, groups, 1)
	assert.Equal(t, "Limón", groups[0].Key.Flavor)

	// También busca por categoría.
	groups = inventory.GroupWarehouseLots(lots, "CHICHA")
	require.Len(t, groups, 1)
	assert.Equal(t, "Chicharrones", groups[0].Key.Category)

	// Sin coincidencias.
	groups = inventory.GroupWarehouseLots(lots, "chocolate")
	assert.Empty(t, groups)
}

func TestGroupWarehouseLots_EsIdempotente(t *testing.T) {
	base := time.Now()
	lots := []*entity.Lot{
		lot("a", "Papas", "Limón", "Grande", 3, "2025-03-01", base),
		lot("b", "Papas", "Fuego", "Chica", 2, "2025-03-02", base.Add(time.Hour)),
	}

	primera := inventory.GroupWarehouseLots(lots, "")
	segunda := inventory.GroupWarehouseLots(lots, "")
	assert.Equal(t, primera, segunda, "sin mutaciones intermedias la salida debe ser idéntica")
}
