package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord es el registro de auditoría inmutable de un traslado confirmado
// almacén → tienda. ProductName es un snapshot denormalizado (categoría + sabor),
// no una referencia viva al lote.
type TransferRecord struct {
	ID          string
	ProductName string
	StoreID     string
	Quantity    int
	UnitPrice   decimal.Decimal
	Date        string // YYYY-MM-DD
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
