package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePromotionRuleRequest entrada para crear una regla de elegibilidad.
// Ambas cotas son opcionales; una regla sin cotas se cumple siempre.
type CreatePromotionRuleRequest struct {
	Scope       string           `json:"scope" validate:"required,oneof=product category"`
	MinQuantity *int64           `json:"min_quantity" validate:"omitempty,min=1"`
	MinAmount   *decimal.Decimal `json:"min_amount"`
}

// PromotionRuleResponse salida de una regla.
type PromotionRuleResponse struct {
	ID          string           `json:"id"`
	PromotionID string           `json:"promotion_id"`
	Scope       string           `json:"scope"`
	MinQuantity *int64           `json:"min_quantity,omitempty"`
	MinAmount   *decimal.Decimal `json:"min_amount,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PromotionRuleListResponse reglas de una promoción.
type PromotionRuleListResponse struct {
	Items []PromotionRuleResponse `json:"items"`
}
