package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
// Los gastos son personales: todo listado va acotado por el usuario dueño.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	ListByUser(userID string, limit, offset int) ([]*entity.Expense, error)
	Delete(id string) error
}
