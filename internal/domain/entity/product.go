package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDeleted  = "deleted"
)

// Product representa un producto del catálogo (multi-tenant por CompanyID).
// Price se expresa en unidades menores de la moneda (centavos), sin decimales.
type Product struct {
	ID          string
	CompanyID   string
	Code        string // código único por empresa
	Name        string
	Description string
	Price       decimal.Decimal
	Status      string // active, inactive, deleted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
