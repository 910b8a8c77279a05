package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest body para POST /api/ledger/transfers.
type TransferRequest struct {
	SourceLotID string          `json:"source_lot_id"`
	StoreID     string          `json:"store_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"` // precio de traslado; puede diferir del precio de almacén
}

// SaleRequest body para POST /api/ledger/sales. Siempre 1 unidad.
type SaleRequest struct {
	LotID string `json:"lot_id"`
}

// WasteRequest body para POST /api/ledger/wastes. Siempre 1 unidad; el motivo
// es obligatorio.
type WasteRequest struct {
	LotID  string `json:"lot_id"`
	Reason string `json:"reason"`
}

// DeliveryNoteItem línea de la nota de entrega.
type DeliveryNoteItem struct {
	Quantity    int             `json:"quantity"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// DeliveryNoteDTO payload de la nota de entrega que produce un traslado
// confirmado; el colaborador de impresión lo renderiza sin recalcular nada.
type DeliveryNoteDTO struct {
	Folio         string             `json:"folio"`
	StoreName     string             `json:"store_name"`
	StoreLocation string             `json:"store_location"`
	StoreManager  string             `json:"store_manager"`
	Items         []DeliveryNoteItem `json:"items"`
	TotalUnits    int                `json:"total_units"`
	TotalValue    decimal.Decimal    `json:"total_value"` // cantidad × precio de traslado
	IssuedAt      time.Time          `json:"issued_at"`
}

// MovementResponse representación HTTP de un registro de venta o merma.
type MovementResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Flavor    string          `json:"flavor"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Amount    decimal.Decimal `json:"amount"`
	StoreID   string          `json:"store_id"`
	Date      string          `json:"date"`
	Reason    string          `json:"reason,omitempty"`
}

// TransferRecordResponse representación HTTP de un traslado confirmado.
type TransferRecordResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	StoreID     string          `json:"store_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Date        string          `json:"date"`
}
