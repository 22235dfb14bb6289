package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Promotion.
const (
	PromotionStatusDraft  = "draft"
	PromotionStatusActive = "active"
	PromotionStatusPaused = "paused"
	PromotionStatusEnded  = "ended"
)

// Tipos de descuento.
const (
	DiscountTypePercent = "percent"
	DiscountTypeFixed   = "fixed"
)

// Promotion representa una definición de descuento acotada en el tiempo.
// Priority: a mayor valor, preferida en empates de monto de descuento.
type Promotion struct {
	ID                string
	CompanyID         string
	Name              string
	Status            string // draft, active, paused, ended
	StartsAt          time.Time
	EndsAt            time.Time
	DiscountType      string          // percent, fixed
	DiscountValue     decimal.Decimal // porcentaje 0-100 o monto fijo en unidades menores
	MaxDiscountAmount *decimal.Decimal // tope para percent; nil = sin tope
	Priority          int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive indica si la promoción está vigente: status active y now dentro de [StartsAt, EndsAt].
func (p *Promotion) IsActive(now time.Time) bool {
	if p.Status != PromotionStatusActive {
		return false
	}
	return !now.Before(p.StartsAt) && !now.After(p.EndsAt)
}

// CalculateDiscount calcula el monto de descuento para un monto dado.
// Retorna cero si la promoción no está vigente. Para fixed el descuento nunca
// excede el monto; para percent se aplica MaxDiscountAmount como tope si está
// definido y es mayor que cero. El resultado nunca es negativo con entradas no negativas.
func (p *Promotion) CalculateDiscount(amount decimal.Decimal, now time.Time) decimal.Decimal {
	if !p.IsActive(now) {
		return decimal.Zero
	}
	switch p.DiscountType {
	case DiscountTypeFixed:
		if p.DiscountValue.GreaterThan(amount) {
			return amount
		}
		return p.DiscountValue
	case DiscountTypePercent:
		discount := amount.Mul(p.DiscountValue).Div(decimal.NewFromInt(100))
		if p.MaxDiscountAmount != nil && p.MaxDiscountAmount.GreaterThan(decimal.Zero) && discount.GreaterThan(*p.MaxDiscountAmount) {
			return *p.MaxDiscountAmount
		}
		return discount
	default:
		return decimal.Zero
	}
}
