package analytics

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
)

// AllMonths es el sentinel del selector de mes para "todo el año".
const AllMonths = -1

// PeriodFilter selecciona el período del reporte: mes 0–11 (o AllMonths) y año.
type PeriodFilter struct {
	Month int
	Year  int
}

// Summary agrupa los totales del período y los registros que los respaldan.
// Las mermas se valúan a costo unitario, no a precio: una merma pierde base de
// costo, no ingreso potencial.
type Summary struct {
	TotalSales      decimal.Decimal
	TotalWasteValue decimal.Decimal
	TotalExpenses   decimal.Decimal
	NetProfit       decimal.Decimal
	Movements       []*entity.MovementRecord
	Expenses        []*entity.ExpenseRecord
}

// Summarize calcula los totales financieros de un período sobre los logs de
// movimientos y gastos. Función pura e idempotente: misma entrada, misma salida.
//
// Un registro entra al período cuando su año coincide y (el selector de mes es
// AllMonths o su mes coincide). Registros con fecha ausente o no parseable se
// excluyen sin abortar la agregación.
func Summarize(movements []*entity.MovementRecord, expenses []*entity.ExpenseRecord, filter PeriodFilter) Summary {
	s := Summary{
		Movements: make([]*entity.MovementRecord, 0),
		Expenses:  make([]*entity.ExpenseRecord, 0),
	}

	for _, m := range movements {
		if !matchesPeriod(m.Date, filter) {
			continue
		}
		s.Movements = append(s.Movements, m)
		switch m.Type {
		case entity.MovementTypeSale:
			s.TotalSales = s.TotalSales.Add(m.Amount)
		case entity.MovementTypeWaste:
			s.TotalWasteValue = s.TotalWasteValue.Add(m.UnitCost)
		}
	}

	for _, e := range expenses {
		if !matchesPeriod(e.Date, filter) {
			continue
		}
		s.Expenses = append(s.Expenses, e)
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}

	s.NetProfit = s.TotalSales.Sub(s.TotalExpenses).Sub(s.TotalWasteValue)
	return s
}

// matchesPeriod parsea una fecha YYYY-MM-DD y la compara contra el filtro.
// Fecha vacía o malformada nunca coincide.
func matchesPeriod(date string, filter PeriodFilter) bool {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		return false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	if year != filter.Year {
		return false
	}
	return filter.Month == AllMonths || month-1 == filter.Month
}
