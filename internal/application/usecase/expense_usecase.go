package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

// ExpenseUseCase captura de gastos operativos (gasolina, nómina, insumos...).
// Los gastos no tocan inventario; solo entran al reporte financiero.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso de gastos.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// Create registra un gasto fechado "hoy". El monto debe ser positivo y la
// categoría una del catálogo fijo.
func (uc *ExpenseUseCase) Create(userID string, in dto.CreateExpenseRequest) (*entity.ExpenseRecord, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	expense := &entity.ExpenseRecord{
		ID:          uuid.New().String(),
		Description: description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        now.Format("2006-01-02"),
		CreatedAt:   now,
		CreatedBy:   userID,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// List devuelve todos los gastos registrados.
func (uc *ExpenseUseCase) List() ([]*entity.ExpenseRecord, error) {
	return uc.expenseRepo.List()
}

// Delete elimina un gasto capturado por error.
func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(id)
}

// ToExpenseResponse mapea la entidad al DTO HTTP.
func ToExpenseResponse(e *entity.ExpenseRecord) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
	}
}
