package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocationWarehouse es el sentinel de ubicación para el almacén central.
// Cualquier otro LocationID es el ID de una tienda.
const LocationWarehouse = "warehouse"

// Lot representa un lote de recepción: una cantidad de un SKU en una ubicación,
// con su propio costo, precio y fecha de recepción. Dos lotes del mismo SKU en
// la misma ubicación son fungibles para consumo pero se mantienen como registros
// separados hasta que una edición o traslado los fusione explícitamente.
// Invariante: Quantity nunca es negativa; un lote que llega a 0 por una
// operación de consumo se elimina, nunca se persiste en 0.
type Lot struct {
	ID           string
	Category     string
	Flavor       string
	Size         string
	Quantity     int
	UnitCost     decimal.Decimal
	UnitPrice    decimal.Decimal
	LocationID   string
	ReceivedDate string    // YYYY-MM-DD, fecha de recepción
	ReceivedAt   time.Time // instante exacto; desempate FIFO y orden de auditoría
}

// IsWarehouse indica si el lote está en el almacén central.
func (l *Lot) IsWarehouse() bool {
	return l.LocationID == LocationWarehouse
}

// ProductName devuelve el nombre denormalizado "Categoría Sabor" que usan los
// registros de auditoría y los tickets.
func (l *Lot) ProductName() string {
	return l.Category + " " + l.Flavor
}
