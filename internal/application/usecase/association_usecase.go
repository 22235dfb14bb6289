package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// AssociationUseCase gestiona los vínculos promoción↔producto,
// promoción↔categoría y producto↔categoría.
type AssociationUseCase struct {
	promotions        repository.PromotionRepository
	products          repository.ProductRepository
	categories        repository.CategoryRepository
	promoProducts     repository.PromotionApplicableProductRepository
	promoCategories   repository.PromotionApplicableCategoryRepository
	productCategories repository.ProductCategoryRepository
}

// NewAssociationUseCase construye el caso de uso.
func NewAssociationUseCase(
	promotions repository.PromotionRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	promoProducts repository.PromotionApplicableProductRepository,
	promoCategories repository.PromotionApplicableCategoryRepository,
	productCategories repository.ProductCategoryRepository,
) *AssociationUseCase {
	return &AssociationUseCase{
		promotions:        promotions,
		products:          products,
		categories:        categories,
		promoProducts:     promoProducts,
		promoCategories:   promoCategories,
		productCategories: productCategories,
	}
}

// ── Promoción ↔ Producto ──────────────────────────────────────────────────────

// LinkPromotionProduct asocia una promoción a un producto.
func (uc *AssociationUseCase) LinkPromotionProduct(promotionID string, in dto.CreatePromotionProductRequest) (*dto.PromotionProductResponse, error) {
	promotion, err := uc.promotions.GetByID(promotionID)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.AssociationStatusActive
	}
	assoc := &entity.PromotionApplicableProduct{
		ID:          uuid.New().String(),
		PromotionID: promotionID,
		ProductID:   in.ProductID,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if err := uc.promoProducts.Create(assoc); err != nil {
		return nil, err
	}
	return toPromotionProductResponse(assoc), nil
}

// ListPromotionProducts lista las asociaciones producto de una promoción.
func (uc *AssociationUseCase) ListPromotionProducts(promotionID string) ([]dto.PromotionProductResponse, error) {
	list, err := uc.promoProducts.ListByPromotion(promotionID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PromotionProductResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toPromotionProductResponse(a))
	}
	return items, nil
}

// UnlinkPromotionProduct elimina una asociación verificando pertenencia.
func (uc *AssociationUseCase) UnlinkPromotionProduct(promotionID, assocID string) error {
	assoc, err := uc.promoProducts.GetByID(assocID)
	if err != nil {
		return err
	}
	if assoc == nil || assoc.PromotionID != promotionID {
		return domain.ErrNotFound
	}
	return uc.promoProducts.Delete(assocID)
}

// ── Promoción ↔ Categoría ─────────────────────────────────────────────────────

// LinkPromotionCategory asocia una promoción a una categoría.
func (uc *AssociationUseCase) LinkPromotionCategory(promotionID string, in dto.CreatePromotionCategoryRequest) (*dto.PromotionCategoryResponse, error) {
	promotion, err := uc.promotions.GetByID(promotionID)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.AssociationStatusActive
	}
	assoc := &entity.PromotionApplicableCategory{
		ID:              uuid.New().String(),
		PromotionID:     promotionID,
		CategoryID:      in.CategoryID,
		IncludeChildren: in.IncludeChildren,
		Status:          status,
		CreatedAt:       time.Now(),
	}
	if err := uc.promoCategories.Create(assoc); err != nil {
		return nil, err
	}
	return toPromotionCategoryResponse(assoc), nil
}

// ListPromotionCategories lista las asociaciones categoría de una promoción.
func (uc *AssociationUseCase) ListPromotionCategories(promotionID string) ([]dto.PromotionCategoryResponse, error) {
	list, err := uc.promoCategories.ListByPromotion(promotionID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PromotionCategoryResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toPromotionCategoryResponse(a))
	}
	return items, nil
}

// UnlinkPromotionCategory elimina una asociación verificando pertenencia.
func (uc *AssociationUseCase) UnlinkPromotionCategory(promotionID, assocID string) error {
	assoc, err := uc.promoCategories.GetByID(assocID)
	if err != nil {
		return err
	}
	if assoc == nil || assoc.PromotionID != promotionID {
		return domain.ErrNotFound
	}
	return uc.promoCategories.Delete(assocID)
}

// ── Producto ↔ Categoría ──────────────────────────────────────────────────────

// LinkProductCategory vincula un producto a una categoría (sin duplicados).
func (uc *AssociationUseCase) LinkProductCategory(productID string, in dto.CreateProductCategoryRequest) (*dto.ProductCategoryResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.productCategories.GetByProductAndCategory(productID, in.CategoryID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = entity.AssociationStatusActive
	}
	link := &entity.ProductCategory{
		ID:         uuid.New().String(),
		ProductID:  productID,
		CategoryID: in.CategoryID,
		Status:     status,
		CreatedAt:  time.Now(),
	}
	if err := uc.productCategories.Create(link); err != nil {
		return nil, err
	}
	return toProductCategoryResponse(link), nil
}

// ListProductCategories lista los vínculos activos de un producto.
func (uc *AssociationUseCase) ListProductCategories(productID string) ([]dto.ProductCategoryResponse, error) {
	list, err := uc.productCategories.ListActiveByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductCategoryResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toProductCategoryResponse(l))
	}
	return items, nil
}

// UnlinkProductCategory elimina el vínculo producto↔categoría.
func (uc *AssociationUseCase) UnlinkProductCategory(productID, categoryID string) error {
	link, err := uc.productCategories.GetByProductAndCategory(productID, categoryID)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	return uc.productCategories.Delete(link.ID)
}

func toPromotionProductResponse(a *entity.PromotionApplicableProduct) *dto.PromotionProductResponse {
	return &dto.PromotionProductResponse{
		ID:          a.ID,
		PromotionID: a.PromotionID,
		ProductID:   a.ProductID,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

func toPromotionCategoryResponse(a *entity.PromotionApplicableCategory) *dto.PromotionCategoryResponse {
	return &dto.PromotionCategoryResponse{
		ID:              a.ID,
		PromotionID:     a.PromotionID,
		CategoryID:      a.CategoryID,
		IncludeChildren: a.IncludeChildren,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
	}
}

func toProductCategoryResponse(l *entity.ProductCategory) *dto.ProductCategoryResponse {
	return &dto.ProductCategoryResponse{
		ID:         l.ID,
		ProductID:  l.ProductID,
		CategoryID: l.CategoryID,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt,
	}
}
