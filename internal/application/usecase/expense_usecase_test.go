package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/application/usecase"
	"github.com/davidrmz/chipsmanager-api/internal/domain"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
)

type stubExpenseRepo struct {
	expenses map[string]*entity.ExpenseRecord
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{expenses: make(map[string]*entity.ExpenseRecord)}
}

func (r *stubExpenseRepo) Create(e *entity.ExpenseRecord) error { r.expenses[e.ID] = e; return nil }
func (r *stubExpenseRepo) Delete(id string) error               { delete(r.expenses, id); return nil }

func (r *stubExpenseRepo) GetByID(id string) (*entity.ExpenseRecord, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (r *stubExpenseRepo) List() ([]*entity.ExpenseRecord, error) {
	var list []*entity.ExpenseRecord
	for _, e := range r.expenses {
		list = append(list, e)
	}
	return list, nil
}

// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseCreate_FechadoHoy(t *testing.T) {
	repo := newStubExpenseRepo()
	uc := usecase.NewExpenseUseCase(repo)

	expense, err := uc.Create("user-1", dto.CreateExpenseRequest{
		Description: " Gasolina reparto ",
		Amount:      decimal.NewFromInt(350),
		Category:    entity.ExpenseCategoryGasolina,
	})
	require.NoError(t, err)
	assert.Equal(t, "Gasolina reparto", expense.Description)
	assert.Equal(t, time.Now().Format("2006-01-02"), expense.Date)
	assert.Equal(t, "user-1", expense.CreatedBy)
}

func TestExpenseCreate_Validaciones(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newStubExpenseRepo())

	_, err := uc.Create("u", dto.CreateExpenseRequest{
		Description: "  ", Amount: decimal.NewFromInt(10), Category: entity.ExpenseCategoryOtros,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("u", dto.CreateExpenseRequest{
		Description: "algo", Amount: decimal.Zero, Category: entity.ExpenseCategoryOtros,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el monto debe ser positivo")

	_, err = uc.Create("u", dto.CreateExpenseRequest{
		Description: "algo", Amount: decimal.NewFromInt(10), Category: "Viajes",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría fuera del catálogo")
}

func TestExpenseDelete(t *testing.T) {
	repo := newStubExpenseRepo()
	uc := usecase.NewExpenseUseCase(repo)

	expense, err := uc.Create("u", dto.CreateExpenseRequest{
		Description: "Nómina semanal", Amount: decimal.NewFromInt(2500), Category: entity.ExpenseCategoryNomina,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(expense.ID))
	assert.ErrorIs(t, uc.Delete(expense.ID), domain.ErrNotFound)
}
