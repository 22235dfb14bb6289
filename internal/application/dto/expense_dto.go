package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto personal.
type CreateExpenseRequest struct {
	Concept  string          `json:"concept" validate:"required,min=1,max=200"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category" validate:"max=100"`
	Date     time.Time       `json:"date"`
	Notes    string          `json:"notes" validate:"max=500"`
}

// UpdateExpenseRequest entrada para actualizar un gasto.
type UpdateExpenseRequest struct {
	Concept  *string          `json:"concept" validate:"omitempty,min=1,max=200"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category" validate:"omitempty,max=100"`
	Date     *time.Time       `json:"date"`
	Notes    *string          `json:"notes" validate:"omitempty,max=500"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Concept   string          `json:"concept"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category,omitempty"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ExpenseListResponse lista paginada de gastos del usuario.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
