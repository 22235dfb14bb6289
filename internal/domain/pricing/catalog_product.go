// Package pricing implementa el núcleo de precios del catálogo: el agregado
// CatalogProduct acumula ofertas candidatas de promociones y expone la mejor
// alcanzable. Todo lo derivado aquí vive dentro de una sola petición de
// listado; nada se persiste.
package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// CatalogProduct envuelve un producto durante una evaluación de catálogo.
// Las ofertas son únicas por PromotionID: reevaluar la misma promoción solo
// reemplaza la oferta existente si el nuevo descuento es estrictamente mayor
// (en empate gana la primera vista, incluida su metadata).
type CatalogProduct struct {
	product *entity.Product
	now     time.Time
	offers  []Offer
}

// NewCatalogProduct construye el agregado fijando el reloj de la evaluación.
func NewCatalogProduct(product *entity.Product, now time.Time) *CatalogProduct {
	return &CatalogProduct{product: product, now: now}
}

// EvaluateInput parámetros opcionales de una evaluación.
type EvaluateInput struct {
	Source         string // product, category
	Metadata       OfferMetadata
	Quantity       int64            // 0 => 1
	AmountOverride *decimal.Decimal // nil => precio del producto
}

// EvaluatePromotion evalúa una promoción con su conjunto de reglas contra este
// producto. No retorna nada: su único efecto es mutar la lista de ofertas.
// No registra oferta si la promoción no está vigente, si las reglas no se
// cumplen o si el descuento resultante es <= 0.
func (cp *CatalogProduct) EvaluatePromotion(p *entity.Promotion, rules []*entity.PromotionRule, in EvaluateInput) {
	amount := cp.product.Price
	if in.AmountOverride != nil {
		amount = *in.AmountOverride
	}
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	if !p.IsActive(cp.now) {
		return
	}
	if !entity.RulesApplicable(rules, quantity, amount) {
		return
	}

	discountAmount := p.CalculateDiscount(amount, cp.now)
	if discountAmount.LessThanOrEqual(decimal.Zero) {
		return
	}

	finalPrice := amount.Sub(discountAmount)
	if finalPrice.IsNegative() {
		finalPrice = decimal.Zero
	}

	offer := newOffer(p, discountAmount, finalPrice, in.Source, in.Metadata)

	for i := range cp.offers {
		if cp.offers[i].PromotionID == p.ID {
			// Reemplazo solo si el descuento es estrictamente mayor; en empate
			// se conserva la oferta original.
			if discountAmount.GreaterThan(cp.offers[i].DiscountAmount) {
				cp.offers[i] = offer
			}
			return
		}
	}
	cp.offers = append(cp.offers, offer)
}

// ApplicablePromotions retorna las ofertas ordenadas por DiscountAmount
// descendente, empate por Priority descendente, y orden de inserción como
// desempate final (ordenamiento estable).
func (cp *CatalogProduct) ApplicablePromotions() []Offer {
	out := make([]Offer, len(cp.offers))
	copy(out, cp.offers)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DiscountAmount.Equal(out[j].DiscountAmount) {
			return out[i].DiscountAmount.GreaterThan(out[j].DiscountAmount)
		}
		return out[i].Priority > out[j].Priority
	})
	return out
}

// BestPromotion retorna la mejor oferta registrada, o nil si no hay ninguna.
func (cp *CatalogProduct) BestPromotion() *Offer {
	sorted := cp.ApplicablePromotions()
	if len(sorted) == 0 {
		return nil
	}
	return &sorted[0]
}

// BasePrice retorna el precio base del producto.
func (cp *CatalogProduct) BasePrice() decimal.Decimal {
	return cp.product.Price
}

// FinalPrice retorna el precio final de la mejor oferta, o el precio base si no hay ofertas.
func (cp *CatalogProduct) FinalPrice() decimal.Decimal {
	if best := cp.BestPromotion(); best != nil {
		return best.FinalPrice
	}
	return cp.product.Price
}

// DiscountAmount retorna el descuento de la mejor oferta, o cero si no hay ofertas.
func (cp *CatalogProduct) DiscountAmount() decimal.Decimal {
	if best := cp.BestPromotion(); best != nil {
		return best.DiscountAmount
	}
	return decimal.Zero
}

// Snapshot arma la vista completa del producto con sus precios y ofertas.
type Snapshot struct {
	Product        *entity.Product
	BasePrice      decimal.Decimal
	FinalPrice     decimal.Decimal
	DiscountAmount decimal.Decimal
	BestPromotion  *Offer
	Promotions     []Offer
}

// Snapshot construye el snapshot derivado del estado actual del agregado.
func (cp *CatalogProduct) Snapshot() Snapshot {
	return Snapshot{
		Product:        cp.product,
		BasePrice:      cp.BasePrice(),
		FinalPrice:     cp.FinalPrice(),
		DiscountAmount: cp.DiscountAmount(),
		BestPromotion:  cp.BestPromotion(),
		Promotions:     cp.ApplicablePromotions(),
	}
}
