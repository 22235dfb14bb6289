package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// Origen de una oferta: por asociación directa al producto o vía categoría.
const (
	OfferSourceProduct  = "product"
	OfferSourceCategory = "category"
)

// OfferMetadata rastrea por qué ruta se aplicó la promoción.
// AppliedCategoryID e IncludeChildren solo se llenan cuando Source es category.
type OfferMetadata struct {
	AssociationID     string
	AppliedCategoryID string
	IncludeChildren   *bool
}

// Offer es el registro derivado (no persistido) de cuánto descuenta una
// promoción sobre un producto en este momento. Existe a lo sumo una oferta
// por promoción dentro de un CatalogProduct.
type Offer struct {
	PromotionID       string
	Name              string
	DiscountType      string
	DiscountValue     decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	Priority          int
	DiscountAmount    decimal.Decimal
	FinalPrice        decimal.Decimal
	Source            string // product, category
	Metadata          OfferMetadata
}

func newOffer(p *entity.Promotion, discountAmount, finalPrice decimal.Decimal, source string, meta OfferMetadata) Offer {
	return Offer{
		PromotionID:       p.ID,
		Name:              p.Name,
		DiscountType:      p.DiscountType,
		DiscountValue:     p.DiscountValue,
		MaxDiscountAmount: p.MaxDiscountAmount,
		Priority:          p.Priority,
		DiscountAmount:    discountAmount,
		FinalPrice:        finalPrice,
		Source:            source,
		Metadata:          meta,
	}
}
