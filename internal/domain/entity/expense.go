package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto personal de un usuario (registro privado, no del catálogo).
// Amount en unidades menores de la moneda.
type Expense struct {
	ID        string
	CompanyID string
	UserID    string
	Concept   string
	Amount    decimal.Decimal
	Category  string // etiqueta libre: transporte, comida, etc.
	Date      time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
