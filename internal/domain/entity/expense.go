package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto operativo.
const (
	ExpenseCategoryGasolina      = "Gasolina"
	ExpenseCategoryNomina        = "Nómina"
	ExpenseCategoryInsumos       = "Insumos"
	ExpenseCategoryMantenimiento = "Mantenimiento"
	ExpenseCategoryPublicidad    = "Publicidad"
	ExpenseCategoryOtros         = "Otros"
)

// ExpenseCategories lista las categorías válidas en orden de presentación.
var ExpenseCategories = []string{
	ExpenseCategoryGasolina,
	ExpenseCategoryNomina,
	ExpenseCategoryInsumos,
	ExpenseCategoryMantenimiento,
	ExpenseCategoryPublicidad,
	ExpenseCategoryOtros,
}

// ValidExpenseCategory indica si la categoría pertenece al catálogo fijo.
func ValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ExpenseRecord representa un gasto operativo. Independiente del ledger de
// inventario; solo lo consume el agregador financiero.
type ExpenseRecord struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        string // YYYY-MM-DD
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
