package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// Puertos de persistencia para los registros de asociación promoción↔producto,
// promoción↔categoría y producto↔categoría. Los métodos ListActive* retornan
// solo asociaciones con status active: son los que consume el núcleo de precios.

// PromotionApplicableProductRepository asociaciones promoción↔producto.
type PromotionApplicableProductRepository interface {
	Create(assoc *entity.PromotionApplicableProduct) error
	GetByID(id string) (*entity.PromotionApplicableProduct, error)
	ListActiveByProduct(productID string) ([]*entity.PromotionApplicableProduct, error)
	ListByPromotion(promotionID string) ([]*entity.PromotionApplicableProduct, error)
	Delete(id string) error
}

// PromotionApplicableCategoryRepository asociaciones promoción↔categoría.
type PromotionApplicableCategoryRepository interface {
	Create(assoc *entity.PromotionApplicableCategory) error
	GetByID(id string) (*entity.PromotionApplicableCategory, error)
	ListActiveByCategory(categoryID string) ([]*entity.PromotionApplicableCategory, error)
	ListByPromotion(promotionID string) ([]*entity.PromotionApplicableCategory, error)
	Delete(id string) error
}

// ProductCategoryRepository asociaciones producto↔categoría.
type ProductCategoryRepository interface {
	Create(link *entity.ProductCategory) error
	GetByProductAndCategory(productID, categoryID string) (*entity.ProductCategory, error)
	ListActiveByProduct(productID string) ([]*entity.ProductCategory, error)
	ListByCategory(categoryID string) ([]*entity.ProductCategory, error)
	Delete(id string) error
}
