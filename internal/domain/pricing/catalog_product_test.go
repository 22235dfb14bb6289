package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

var evalNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testProduct(price int64) *entity.Product {
	return &entity.Product{
		ID:     "prod-1",
		Name:   "Producto de prueba",
		Price:  decimal.NewFromInt(price),
		Status: entity.ProductStatusActive,
	}
}

func percentPromo(id string, value int64, priority int) *entity.Promotion {
	return &entity.Promotion{
		ID:            id,
		Name:          "Promo " + id,
		Status:        entity.PromotionStatusActive,
		StartsAt:      evalNow.Add(-time.Hour),
		EndsAt:        evalNow.Add(time.Hour),
		DiscountType:  entity.DiscountTypePercent,
		DiscountValue: decimal.NewFromInt(value),
		Priority:      priority,
	}
}

func fixedPromo(id string, value int64, priority int) *entity.Promotion {
	p := percentPromo(id, 0, priority)
	p.DiscountType = entity.DiscountTypeFixed
	p.DiscountValue = decimal.NewFromInt(value)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Supresión de ofertas
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluatePromotion_PromocionNoVigenteNoRegistra(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)
	p := percentPromo("p1", 10, 0)
	p.Status = entity.PromotionStatusDraft

	cp.EvaluatePromotion(p, nil, EvaluateInput{Source: OfferSourceProduct})

	assert.Nil(t, cp.BestPromotion())
	assert.True(t, cp.FinalPrice().Equal(decimal.NewFromInt(10000)), "sin oferta el precio final es el base")
}

func TestEvaluatePromotion_ReglasNoCumplidasNoRegistra(t *testing.T) {
	cp := NewCatalogProduct(testProduct(1000), evalNow)
	minAmount := decimal.NewFromInt(5000)
	rules := []*entity.PromotionRule{{MinAmount: &minAmount}}

	cp.EvaluatePromotion(percentPromo("p1", 10, 0), rules, EvaluateInput{Source: OfferSourceProduct})

	assert.Empty(t, cp.ApplicablePromotions())
}

func TestEvaluatePromotion_DescuentoCeroNoRegistra(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)

	cp.EvaluatePromotion(percentPromo("p1", 0, 0), nil, EvaluateInput{Source: OfferSourceProduct})

	assert.Empty(t, cp.ApplicablePromotions(), "descuento <= 0 no genera oferta")
}

func TestEvaluatePromotion_PrecioFinalNuncaNegativo(t *testing.T) {
	cp := NewCatalogProduct(testProduct(1000), evalNow)

	// Descuento fijo mayor al precio: se recorta al monto, precio final 0.
	cp.EvaluatePromotion(fixedPromo("p1", 99999, 0), nil, EvaluateInput{Source: OfferSourceProduct})

	best := cp.BestPromotion()
	require.NotNil(t, best)
	assert.True(t, best.FinalPrice.IsZero())
	assert.True(t, best.DiscountAmount.Equal(decimal.NewFromInt(1000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordenamiento y mejor oferta
// ──────────────────────────────────────────────────────────────────────────────

func TestBestPromotion_MayorDescuentoGana(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)

	cp.EvaluatePromotion(fixedPromo("p150", 150, 0), nil, EvaluateInput{Source: OfferSourceProduct})
	cp.EvaluatePromotion(fixedPromo("p250", 250, 0), nil, EvaluateInput{Source: OfferSourceProduct})

	best := cp.BestPromotion()
	require.NotNil(t, best)
	assert.Equal(t, "p250", best.PromotionID)
	assert.True(t, cp.FinalPrice().Equal(decimal.NewFromInt(9750)))
	assert.True(t, cp.DiscountAmount().Equal(decimal.NewFromInt(250)))
}

func TestApplicablePromotions_OrdenDescendentePorDescuento(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)

	cp.EvaluatePromotion(fixedPromo("a", 100, 0), nil, EvaluateInput{Source: OfferSourceProduct})
	cp.EvaluatePromotion(fixedPromo("b", 300, 0), nil, EvaluateInput{Source: OfferSourceProduct})
	cp.EvaluatePromotion(fixedPromo("c", 200, 0), nil, EvaluateInput{Source: OfferSourceProduct})

	got := cp.ApplicablePromotions()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].PromotionID, got[1].PromotionID, got[2].PromotionID})
}

func TestApplicablePromotions_EmpateDesempataPorPrioridad(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)

	cp.EvaluatePromotion(fixedPromo("baja", 200, 1), nil, EvaluateInput{Source: OfferSourceProduct})
	cp.EvaluatePromotion(fixedPromo("alta", 200, 9), nil, EvaluateInput{Source: OfferSourceProduct})

	got := cp.ApplicablePromotions()
	require.Len(t, got, 2)
	assert.Equal(t, "alta", got[0].PromotionID, "a igual descuento gana la prioridad mayor")
}

func TestApplicablePromotions_EmpateTotalConservaOrdenDeInsercion(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)

	cp.EvaluatePromotion(fixedPromo("primera", 200, 5), nil, EvaluateInput{Source: OfferSourceProduct})
	cp.EvaluatePromotion(fixedPromo("segunda", 200, 5), nil, EvaluateInput{Source: OfferSourceProduct})

	got := cp.ApplicablePromotions()
	require.Len(t, got, 2)
	assert.Equal(t, "primera", got[0].PromotionID, "sort estable: empate total conserva orden de llegada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reevaluación de la misma promoción (una oferta por promoción)
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluatePromotion_ReemplazaSoloSiEstrictamenteMejor(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)
	p := fixedPromo("p1", 500, 0)

	// Primera evaluación: vía producto con el precio completo.
	cp.EvaluatePromotion(p, nil, EvaluateInput{
		Source:   OfferSourceProduct,
		Metadata: OfferMetadata{AssociationID: "assoc-1"},
	})
	// Segunda: vía categoría con un monto menor → descuento igual (fijo) no reemplaza.
	lower := decimal.NewFromInt(8000)
	cp.EvaluatePromotion(p, nil, EvaluateInput{
		Source:         OfferSourceCategory,
		Metadata:       OfferMetadata{AssociationID: "assoc-2", AppliedCategoryID: "cat-1"},
		AmountOverride: &lower,
	})

	got := cp.ApplicablePromotions()
	require.Len(t, got, 1, "a lo sumo una oferta por promoción")
	assert.Equal(t, "assoc-1", got[0].Metadata.AssociationID, "empate conserva la original y su metadata")
	assert.Equal(t, OfferSourceProduct, got[0].Source)
}

func TestEvaluatePromotion_ReemplazaConDescuentoMayor(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)
	p := percentPromo("p1", 10, 0)

	// Primera: sobre un monto menor → descuento 500.
	lower := decimal.NewFromInt(5000)
	cp.EvaluatePromotion(p, nil, EvaluateInput{
		Source:         OfferSourceCategory,
		Metadata:       OfferMetadata{AssociationID: "assoc-1", AppliedCategoryID: "cat-1"},
		AmountOverride: &lower,
	})
	// Segunda: sobre el precio completo → descuento 1000, estrictamente mayor.
	cp.EvaluatePromotion(p, nil, EvaluateInput{
		Source:   OfferSourceProduct,
		Metadata: OfferMetadata{AssociationID: "assoc-2"},
	})

	got := cp.ApplicablePromotions()
	require.Len(t, got, 1)
	assert.Equal(t, "assoc-2", got[0].Metadata.AssociationID, "el reemplazo arrastra la metadata nueva")
	assert.True(t, got[0].DiscountAmount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, OfferSourceProduct, got[0].Source)
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_SinOfertas(t *testing.T) {
	cp := NewCatalogProduct(testProduct(4200), evalNow)

	snap := cp.Snapshot()

	assert.True(t, snap.BasePrice.Equal(decimal.NewFromInt(4200)))
	assert.True(t, snap.FinalPrice.Equal(decimal.NewFromInt(4200)))
	assert.True(t, snap.DiscountAmount.IsZero())
	assert.Nil(t, snap.BestPromotion)
	assert.Empty(t, snap.Promotions)
}

func TestSnapshot_ConOfertas(t *testing.T) {
	cp := NewCatalogProduct(testProduct(10000), evalNow)
	cp.EvaluatePromotion(fixedPromo("p1", 300, 0), nil, EvaluateInput{Source: OfferSourceProduct})

	snap := cp.Snapshot()

	require.NotNil(t, snap.BestPromotion)
	assert.Equal(t, "p1", snap.BestPromotion.PromotionID)
	assert.True(t, snap.FinalPrice.Equal(decimal.NewFromInt(9700)))
	require.Len(t, snap.Promotions, 1)
}
