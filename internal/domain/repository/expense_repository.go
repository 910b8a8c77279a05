package repository

import "github.com/davidrmz/chipsmanager-api/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para gastos operativos.
type ExpenseRepository interface {
	Create(expense *entity.ExpenseRecord) error
	GetByID(id string) (*entity.ExpenseRecord, error)
	List() ([]*entity.ExpenseRecord, error)
	Delete(id string) error
}
