package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePromotionRequest entrada para crear una promoción.
type CreatePromotionRequest struct {
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	Status            string           `json:"status" validate:"omitempty,oneof=draft active paused ended"`
	StartsAt          time.Time        `json:"starts_at" validate:"required"`
	EndsAt            time.Time        `json:"ends_at" validate:"required"`
	DiscountType      string           `json:"discount_type" validate:"required,oneof=percent fixed"`
	DiscountValue     decimal.Decimal  `json:"discount_value"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount"`
	Priority          int              `json:"priority"`
}

// UpdatePromotionRequest entrada para actualizar una promoción.
type UpdatePromotionRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	StartsAt          *time.Time       `json:"starts_at"`
	EndsAt            *time.Time       `json:"ends_at"`
	DiscountType      *string          `json:"discount_type" validate:"omitempty,oneof=percent fixed"`
	DiscountValue     *decimal.Decimal `json:"discount_value"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount"`
	Priority          *int             `json:"priority"`
}

// UpdatePromotionStatusRequest cambio de estado del ciclo de vida.
type UpdatePromotionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active paused ended"`
}

// PromotionResponse salida de una promoción.
type PromotionResponse struct {
	ID                string           `json:"id"`
	CompanyID         string           `json:"company_id"`
	Name              string           `json:"name"`
	Status            string           `json:"status"`
	StartsAt          time.Time        `json:"starts_at"`
	EndsAt            time.Time        `json:"ends_at"`
	DiscountType      string           `json:"discount_type"`
	DiscountValue     decimal.Decimal  `json:"discount_value"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount,omitempty"`
	Priority          int              `json:"priority"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// PromotionListResponse lista paginada de promociones.
type PromotionListResponse struct {
	Items []PromotionResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
