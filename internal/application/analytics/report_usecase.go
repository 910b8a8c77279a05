package analytics

import (
	"fmt"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain"
	domainanalytics "github.com/davidrmz/chipsmanager-api/internal/domain/analytics"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

// meses nombres de mes para la etiqueta del período (índice 0 = Enero).
var meses = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// ReportUseCase arma el reporte financiero de un período: lee los logs de
// movimientos y gastos, delega la agregación al sumarizador de dominio y
// resuelve nombres de tienda para presentación.
type ReportUseCase struct {
	movementRepo repository.MovementRepository
	expenseRepo  repository.ExpenseRepository
	storeRepo    repository.StoreRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	movementRepo repository.MovementRepository,
	expenseRepo repository.ExpenseRepository,
	storeRepo repository.StoreRepository,
) *ReportUseCase {
	return &ReportUseCase{movementRepo: movementRepo, expenseRepo: expenseRepo, storeRepo: storeRepo}
}

// GetFinancialReport calcula los totales y filas del período pedido. El mes va
// de 0 a 11, o -1 para todo el año.
func (uc *ReportUseCase) GetFinancialReport(in dto.FinancialReportRequest) (*dto.FinancialReportDTO, error) {
	if in.Month < domainanalytics.AllMonths || in.Month > 11 {
		return nil, domain.ErrInvalidInput
	}
	if in.Year <= 0 {
		return nil, domain.ErrInvalidInput
	}

	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}
	stores, err := uc.storeRepo.List()
	if err != nil {
		return nil, err
	}
	storeNames := make(map[string]string, len(stores))
	for _, s := range stores {
		storeNames[s.ID] = s.Name
	}

	summary := domainanalytics.Summarize(movements, expenses, domainanalytics.PeriodFilter{
		Month: in.Month,
		Year:  in.Year,
	})

	report := &dto.FinancialReportDTO{
		PeriodLabel:     periodLabel(in.Month, in.Year),
		Month:           in.Month,
		Year:            in.Year,
		TotalSales:      summary.TotalSales,
		TotalExpenses:   summary.TotalExpenses,
		TotalWasteValue: summary.TotalWasteValue,
		NetProfit:       summary.NetProfit,
		Movements:       make([]dto.MovementRowDTO, 0, len(summary.Movements)),
		Expenses:        make([]dto.ExpenseRowDTO, 0, len(summary.Expenses)),
	}

	for _, m := range summary.Movements {
		name, ok := storeNames[m.StoreID]
		if !ok {
			// La tienda pudo darse de baja después del movimiento; el reporte
			// no pierde la fila por eso.
			name = "N/A"
		}
		report.Movements = append(report.Movements, dto.MovementRowDTO{
			Date:      m.Date,
			Type:      m.Type,
			Product:   fmt.Sprintf("%s - %s (%s)", m.Category, m.Flavor, m.Size),
			StoreName: name,
			Amount:    m.Amount,
			Reason:    m.Reason,
		})
	}
	for _, e := range summary.Expenses {
		report.Expenses = append(report.Expenses, dto.ExpenseRowDTO{
			Date:        e.Date,
			Description: e.Description,
			Category:    e.Category,
			Amount:      e.Amount,
		})
	}
	return report, nil
}

func periodLabel(month, year int) string {
	if month == domainanalytics.AllMonths {
		return fmt.Sprintf("Todo el Año %d", year)
	}
	return fmt.Sprintf("%s %d", meses[month], year)
}

// ToMovementResponse mapea un registro de venta/merma al DTO HTTP.
func ToMovementResponse(m *entity.MovementRecord) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		Type:      m.Type,
		Category:  m.Category,
		Flavor:    m.Flavor,
		Size:      m.Size,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		UnitCost:  m.UnitCost,
		Amount:    m.Amount,
		StoreID:   m.StoreID,
		Date:      m.Date,
		Reason:    m.Reason,
	}
}

// ToTransferRecordResponse mapea un traslado confirmado al DTO HTTP.
func ToTransferRecordResponse(t *entity.TransferRecord) dto.TransferRecordResponse {
	return dto.TransferRecordResponse{
		ID:          t.ID,
		ProductName: t.ProductName,
		StoreID:     t.StoreID,
		Quantity:    t.Quantity,
		UnitPrice:   t.UnitPrice,
		Date:        t.Date,
	}
}
