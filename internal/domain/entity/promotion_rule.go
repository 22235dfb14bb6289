package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ámbitos válidos para PromotionRule.
const (
	RuleScopeProduct  = "product"
	RuleScopeCategory = "category"
)

// PromotionRule es un predicado de elegibilidad de una promoción: cantidad
// mínima y/o monto mínimo. Una regla sin ninguna cota definida se cumple siempre.
type PromotionRule struct {
	ID          string
	PromotionID string
	Scope       string // product, category
	MinQuantity *int64
	MinAmount   *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsApplicable evalúa una regla individual contra (quantity, amount).
func (r *PromotionRule) IsApplicable(quantity int64, amount decimal.Decimal) bool {
	if r.MinQuantity != nil && quantity < *r.MinQuantity {
		return false
	}
	if r.MinAmount != nil && amount.LessThan(*r.MinAmount) {
		return false
	}
	return true
}

// RulesApplicable evalúa un conjunto de reglas: AND lógico sobre todas.
// Un conjunto vacío se cumple siempre.
func RulesApplicable(rules []*PromotionRule, quantity int64, amount decimal.Decimal) bool {
	for _, r := range rules {
		if !r.IsApplicable(quantity, amount) {
			return false
		}
	}
	return true
}
