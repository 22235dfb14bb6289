// Package catalog orquesta el listado de catálogo con precios: trae la página
// de productos, resuelve qué promociones aplican a cada uno (directas o vía su
// cadena de categorías), evalúa elegibilidad y arma los snapshots con el mejor
// descuento alcanzable.
package catalog

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/pricing"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// CatalogUseCase orquesta una petición de listado de principio a fin.
// Los productos de la página se procesan secuencialmente; toda lectura de
// repositorio pasa por cachés con alcance de petición (ver cache.go).
type CatalogUseCase struct {
	products          repository.ProductRepository
	productCategories repository.ProductCategoryRepository
	categories        repository.CategoryRepository
	promotions        repository.PromotionRepository
	rules             repository.PromotionRuleRepository
	promoProducts     repository.PromotionApplicableProductRepository
	promoCategories   repository.PromotionApplicableCategoryRepository
	now               func() time.Time
}

// NewCatalogUseCase construye el orquestador con sus puertos de lectura.
func NewCatalogUseCase(
	products repository.ProductRepository,
	productCategories repository.ProductCategoryRepository,
	categories repository.CategoryRepository,
	promotions repository.PromotionRepository,
	rules repository.PromotionRuleRepository,
	promoProducts repository.PromotionApplicableProductRepository,
	promoCategories repository.PromotionApplicableCategoryRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		products:          products,
		productCategories: productCategories,
		categories:        categories,
		promotions:        promotions,
		rules:             rules,
		promoProducts:     promoProducts,
		promoCategories:   promoCategories,
		now:               time.Now,
	}
}

// GetCatalogProducts resuelve una página de catálogo con precios.
// Un registro no encontrado (promoción, categoría) no es error: simplemente no
// contribuye. Un fallo del repositorio aborta la página completa y se propaga
// sin resultado parcial.
func (uc *CatalogUseCase) GetCatalogProducts(companyID string, q dto.CatalogQuery) (*dto.CatalogListResponse, error) {
	q.Defaults()

	filter := repository.CatalogFilter{
		Search:   q.Search,
		Status:   q.Status,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Sort:     q.Sort,
		Order:    q.Order,
		Limit:    q.Limit,
		Offset:   (q.Page - 1) * q.Limit,
	}
	products, total, err := uc.products.ListCatalog(companyID, filter)
	if err != nil {
		return nil, err
	}

	caches := newRequestCaches()
	now := uc.now()

	result := make([]dto.CatalogProductResponse, 0, len(products))
	for _, product := range products {
		cp := pricing.NewCatalogProduct(product, now)

		// 1) Promociones asociadas directamente al producto
		if err := uc.evaluateProductPromotions(cp, product.ID, caches); err != nil {
			return nil, err
		}

		// 2) Jerarquía de categorías del producto
		exactIDs, ancestorIDs, err := uc.resolveHierarchy(product.ID, caches)
		if err != nil {
			return nil, err
		}

		// 3) Promociones por categoría exacta: IncludeChildren es irrelevante aquí
		if err := uc.evaluateCategoryPromotions(cp, exactIDs, false, caches); err != nil {
			return nil, err
		}

		// 4) Promociones por categoría ancestro: solo asociaciones que opten por cascadear
		if err := uc.evaluateCategoryPromotions(cp, ancestorIDs, true, caches); err != nil {
			return nil, err
		}

		result = append(result, toCatalogProductResponse(cp.Snapshot()))
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}
	return &dto.CatalogListResponse{
		Result: result,
		Meta: dto.CatalogMeta{
			Total:      total,
			Page:       q.Page,
			Limit:      q.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// evaluateProductPromotions evalúa las asociaciones activas promoción↔producto.
// Una promoción no encontrada se salta sin error.
func (uc *CatalogUseCase) evaluateProductPromotions(cp *pricing.CatalogProduct, productID string, caches *requestCaches) error {
	assocs, err := uc.promoProducts.ListActiveByProduct(productID)
	if err != nil {
		return err
	}
	for _, assoc := range assocs {
		promotion, err := caches.promotion(uc.promotions, assoc.PromotionID)
		if err != nil {
			return err
		}
		if promotion == nil {
			continue
		}
		rules, err := caches.promotionRules(uc.rules, promotion.ID)
		if err != nil {
			return err
		}
		cp.EvaluatePromotion(promotion, rules, pricing.EvaluateInput{
			Source:   pricing.OfferSourceProduct,
			Metadata: pricing.OfferMetadata{AssociationID: assoc.ID},
		})
	}
	return nil
}

// resolveHierarchy retorna los IDs de categorías exactas del producto y el
// conjunto de IDs ancestros alcanzables desde ellas. Una categoría que no se
// puede resolver aporta a las exactas pero no a los ancestros.
func (uc *CatalogUseCase) resolveHierarchy(productID string, caches *requestCaches) (exactIDs, ancestorIDs []string, err error) {
	links, err := uc.productCategories.ListActiveByProduct(productID)
	if err != nil {
		return nil, nil, err
	}

	seenAncestor := make(map[string]bool)
	for _, link := range links {
		exactIDs = append(exactIDs, link.CategoryID)

		category, err := caches.category(uc.categories, link.CategoryID)
		if err != nil {
			return nil, nil, err
		}
		if category == nil {
			continue
		}
		for _, ancestorID := range category.Ancestors {
			if !seenAncestor[ancestorID] {
				seenAncestor[ancestorID] = true
				ancestorIDs = append(ancestorIDs, ancestorID)
			}
		}
	}
	return exactIDs, ancestorIDs, nil
}

// evaluateCategoryPromotions evalúa las asociaciones activas promoción↔categoría
// para el conjunto de IDs dado. Con requireIncludeChildren (ruta de ancestros)
// solo cuentan las asociaciones que cascadean a descendientes.
func (uc *CatalogUseCase) evaluateCategoryPromotions(cp *pricing.CatalogProduct, categoryIDs []string, requireIncludeChildren bool, caches *requestCaches) error {
	for _, categoryID := range categoryIDs {
		assocs, err := caches.categoryAssociations(uc.promoCategories, categoryID)
		if err != nil {
			return err
		}
		for _, assoc := range assocs {
			if assoc.Status != entity.AssociationStatusActive {
				continue
			}
			if requireIncludeChildren && !assoc.IncludeChildren {
				continue
			}
			promotion, err := caches.promotion(uc.promotions, assoc.PromotionID)
			if err != nil {
				return err
			}
			if promotion == nil {
				continue
			}
			rules, err := caches.promotionRules(uc.rules, promotion.ID)
			if err != nil {
				return err
			}
			includeChildren := assoc.IncludeChildren
			cp.EvaluatePromotion(promotion, rules, pricing.EvaluateInput{
				Source: pricing.OfferSourceCategory,
				Metadata: pricing.OfferMetadata{
					AssociationID:     assoc.ID,
					AppliedCategoryID: categoryID,
					IncludeChildren:   &includeChildren,
				},
			})
		}
	}
	return nil
}

func toCatalogProductResponse(s pricing.Snapshot) dto.CatalogProductResponse {
	out := dto.CatalogProductResponse{
		ID:             s.Product.ID,
		Code:           s.Product.Code,
		Name:           s.Product.Name,
		Description:    s.Product.Description,
		BasePrice:      s.BasePrice,
		FinalPrice:     s.FinalPrice,
		DiscountAmount: s.DiscountAmount,
		Promotions:     make([]dto.PromotionOfferResponse, 0, len(s.Promotions)),
	}
	for _, offer := range s.Promotions {
		out.Promotions = append(out.Promotions, toOfferResponse(offer))
	}
	if s.BestPromotion != nil {
		best := toOfferResponse(*s.BestPromotion)
		out.BestPromotion = &best
	}
	return out
}

func toOfferResponse(o pricing.Offer) dto.PromotionOfferResponse {
	return dto.PromotionOfferResponse{
		PromotionID:       o.PromotionID,
		Name:              o.Name,
		DiscountType:      o.DiscountType,
		DiscountValue:     o.DiscountValue,
		MaxDiscountAmount: o.MaxDiscountAmount,
		Priority:          o.Priority,
		DiscountAmount:    o.DiscountAmount,
		FinalPrice:        o.FinalPrice,
		Source:            o.Source,
		Metadata: dto.OfferMetadataResponse{
			AssociationID:     o.Metadata.AssociationID,
			AppliedCategoryID: o.Metadata.AppliedCategoryID,
			IncludeChildren:   o.Metadata.IncludeChildren,
		},
	}
}
