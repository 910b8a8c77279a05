package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// FinancialReportRequest parámetros para GET /api/analytics/report.
type FinancialReportRequest struct {
	Month int `query:"month"` // 0–11, o -1 para todo el año
	Year  int `query:"year"`  // año calendario, ej. 2025
}

// ── Filas del reporte ─────────────────────────────────────────────────────────

// MovementRowDTO fila de venta/merma del reporte, con el nombre de tienda ya
// resuelto para presentación.
type MovementRowDTO struct {
	Date      string          `json:"date"`
	Type      string          `json:"type"`    // sale | waste
	Product   string          `json:"product"` // "Categoría - Sabor (Tamaño)"
	StoreName string          `json:"store_name"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason,omitempty"`
}

// ExpenseRowDTO fila de gasto del reporte.
type ExpenseRowDTO struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// ── Reporte combinado ─────────────────────────────────────────────────────────

// FinancialReportDTO respuesta completa de GET /api/analytics/report y payload
// de los exportadores PDF/XLSX.
type FinancialReportDTO struct {
	PeriodLabel     string           `json:"period_label"` // "Enero 2025" o "Todo el Año 2025"
	Month           int              `json:"month"`
	Year            int              `json:"year"`
	TotalSales      decimal.Decimal  `json:"total_sales"`
	TotalExpenses   decimal.Decimal  `json:"total_expenses"`
	TotalWasteValue decimal.Decimal  `json:"total_waste_value"`
	NetProfit       decimal.Decimal  `json:"net_profit"`
	Movements       []MovementRowDTO `json:"movements"`
	Expenses        []ExpenseRowDTO  `json:"expenses"`
}
