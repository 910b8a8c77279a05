package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLotRequest body para POST /api/warehouse/lots (alta manual de almacén).
type CreateLotRequest struct {
	Category  string          `json:"category"`
	Flavor    string          `json:"flavor"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateLotRequest body para PUT /api/warehouse/lots/:id. Sobrescritura
// completa y atómica de identidad, cantidad, costo y precio.
type UpdateLotRequest struct {
	Category  string          `json:"category"`
	Flavor    string          `json:"flavor"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LotResponse representación HTTP de un lote.
type LotResponse struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	Flavor       string          `json:"flavor"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LocationID   string          `json:"location_id"`
	ReceivedDate string          `json:"received_date"`
	ReceivedAt   time.Time       `json:"received_at"`
}

// WarehouseGroupResponse grupo de lotes del mismo SKU en almacén, con los
// lotes en orden de consumo FIFO (el más viejo primero).
type WarehouseGroupResponse struct {
	Category      string        `json:"category"`
	Flavor        string        `json:"flavor"`
	Size          string        `json:"size"`
	TotalQuantity int           `json:"total_quantity"`
	Lots          []LotResponse `json:"lots"`
}
