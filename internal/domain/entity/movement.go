package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de piso. Cada venta o merma es de exactamente 1 unidad:
// el stock de tienda se vende y se pierde pieza por pieza.
const (
	MovementTypeSale  = "sale"  // venta
	MovementTypeWaste = "waste" // merma
)

// MovementRecord es un registro de auditoría inmutable de una venta o merma.
// Los campos de SKU, precio y costo son snapshots denormalizados: permanecen
// estables aunque el lote de origen se edite o elimine después.
// Date se guarda como string YYYY-MM-DD tal como lo consume el agregador.
type MovementRecord struct {
	ID        string
	Type      string // sale | waste
	Category  string
	Flavor    string
	Size      string
	Quantity  int // siempre 1
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
	Amount    decimal.Decimal // venta: precio unitario; merma: costo unitario
	StoreID   string
	Date      string // YYYY-MM-DD
	Reason    string // obligatorio en mermas
	CreatedAt time.Time
	CreatedBy string // UserID
}
