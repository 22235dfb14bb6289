package dto

import "github.com/shopspring/decimal"

// CatalogQuery parámetros del listado de catálogo con precios.
// A diferencia del resto de listados, usa page/limit (el front pagina por número de página).
type CatalogQuery struct {
	Search   string           `query:"search"`
	Sort     string           `query:"sort" validate:"omitempty,oneof=name price created_at"`
	Order    string           `query:"order" validate:"omitempty,oneof=asc desc"`
	Page     int              `query:"page" validate:"min=0"`
	Limit    int              `query:"limit" validate:"min=0,max=100"`
	Status   string           `query:"status" validate:"omitempty,oneof=active inactive"`
	MinPrice *decimal.Decimal `query:"minPrice"`
	MaxPrice *decimal.Decimal `query:"maxPrice"`
}

// Defaults normaliza página y límite.
func (q *CatalogQuery) Defaults() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// OfferMetadataResponse rastro de la ruta por la que se aplicó la promoción.
type OfferMetadataResponse struct {
	AssociationID     string `json:"association_id,omitempty"`
	AppliedCategoryID string `json:"applied_category_id,omitempty"`
	IncludeChildren   *bool  `json:"include_children,omitempty"`
}

// PromotionOfferResponse una oferta calculada para un producto del catálogo.
type PromotionOfferResponse struct {
	PromotionID       string                `json:"promotion_id"`
	Name              string                `json:"name"`
	DiscountType      string                `json:"discount_type"`
	DiscountValue     decimal.Decimal       `json:"discount_value"`
	MaxDiscountAmount *decimal.Decimal      `json:"max_discount_amount,omitempty"`
	Priority          int                   `json:"priority"`
	DiscountAmount    decimal.Decimal       `json:"discount_amount"`
	FinalPrice        decimal.Decimal       `json:"final_price"`
	Source            string                `json:"source"`
	Metadata          OfferMetadataResponse `json:"metadata"`
}

// CatalogProductResponse snapshot de un producto con sus precios calculados.
type CatalogProductResponse struct {
	ID             string                   `json:"id"`
	Code           string                   `json:"code"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description"`
	BasePrice      decimal.Decimal          `json:"base_price"`
	FinalPrice     decimal.Decimal          `json:"final_price"`
	DiscountAmount decimal.Decimal          `json:"discount_amount"`
	BestPromotion  *PromotionOfferResponse  `json:"best_promotion,omitempty"`
	Promotions     []PromotionOfferResponse `json:"promotions"`
}

// CatalogMeta metadatos de paginación del catálogo.
type CatalogMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// CatalogListResponse respuesta completa del listado de catálogo.
type CatalogListResponse struct {
	Result []CatalogProductResponse `json:"result"`
	Meta   CatalogMeta              `json:"meta"`
}
