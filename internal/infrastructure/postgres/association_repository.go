package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// Adaptadores PostgreSQL para los tres registros de asociación. El orden de
// inserción (created_at ASC, id ASC como desempate) es significativo: el núcleo
// de precios resuelve empates de descuento por orden de evaluación.

// ─── Promoción ↔ Producto ────────────────────────────────────────────────────

var _ repository.PromotionApplicableProductRepository = (*PromotionApplicableProductRepo)(nil)

// PromotionApplicableProductRepo persistencia de asociaciones promoción↔producto.
type PromotionApplicableProductRepo struct {
	q Querier
}

// NewPromotionApplicableProductRepository construye el adaptador.
func NewPromotionApplicableProductRepository(q Querier) *PromotionApplicableProductRepo {
	return &PromotionApplicableProductRepo{q: q}
}

// Create persiste una asociación promoción↔producto.
func (r *PromotionApplicableProductRepo) Create(assoc *entity.PromotionApplicableProduct) error {
	query := `
		INSERT INTO promotion_applicable_products (id, promotion_id, product_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		assoc.ID, assoc.PromotionID, assoc.ProductID, assoc.Status, assoc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert promotion-product association: %w", err)
	}
	return nil
}

// GetByID obtiene una asociación por ID.
func (r *PromotionApplicableProductRepo) GetByID(id string) (*entity.PromotionApplicableProduct, error) {
	query := `SELECT id, promotion_id, product_id, status, created_at FROM promotion_applicable_products WHERE id = $1`
	var a entity.PromotionApplicableProduct
	err := r.q.QueryRow(context.Background(), query, id).Scan(&a.ID, &a.PromotionID, &a.ProductID, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion-product association: %w", err)
	}
	return &a, nil
}

// ListActiveByProduct lista asociaciones activas de un producto en orden de inserción.
func (r *PromotionApplicableProductRepo) ListActiveByProduct(productID string) ([]*entity.PromotionApplicableProduct, error) {
	query := `
		SELECT id, promotion_id, product_id, status, created_at
		FROM promotion_applicable_products
		WHERE product_id = $1 AND status = 'active'
		ORDER BY created_at ASC, id ASC`
	return r.list(query, productID)
}

// ListByPromotion lista todas las asociaciones de una promoción.
func (r *PromotionApplicableProductRepo) ListByPromotion(promotionID string) ([]*entity.PromotionApplicableProduct, error) {
	query := `
		SELECT id, promotion_id, product_id, status, created_at
		FROM promotion_applicable_products
		WHERE promotion_id = $1
		ORDER BY created_at ASC, id ASC`
	return r.list(query, promotionID)
}

// Delete elimina una asociación por ID.
func (r *PromotionApplicableProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM promotion_applicable_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion-product association: %w", err)
	}
	return nil
}

func (r *PromotionApplicableProductRepo) list(query string, arg any) ([]*entity.PromotionApplicableProduct, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list promotion-product associations: %w", err)
	}
	defer rows.Close()

	var list []*entity.PromotionApplicableProduct
	for rows.Next() {
		var a entity.PromotionApplicableProduct
		if err := rows.Scan(&a.ID, &a.PromotionID, &a.ProductID, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan promotion-product association: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ─── Promoción ↔ Categoría ───────────────────────────────────────────────────

var _ repository.PromotionApplicableCategoryRepository = (*PromotionApplicableCategoryRepo)(nil)

// PromotionApplicableCategoryRepo persistencia de asociaciones promoción↔categoría.
type PromotionApplicableCategoryRepo struct {
	q Querier
}

// NewPromotionApplicableCategoryRepository construye el adaptador.
func NewPromotionApplicableCategoryRepository(q Querier) *PromotionApplicableCategoryRepo {
	return &PromotionApplicableCategoryRepo{q: q}
}

// Create persiste una asociación promoción↔categoría.
func (r *PromotionApplicableCategoryRepo) Create(assoc *entity.PromotionApplicableCategory) error {
	query := `
		INSERT INTO promotion_applicable_categories (id, promotion_id, category_id, include_children, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		assoc.ID, assoc.PromotionID, assoc.CategoryID, assoc.IncludeChildren, assoc.Status, assoc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert promotion-category association: %w", err)
	}
	return nil
}

// GetByID obtiene una asociación por ID.
func (r *PromotionApplicableCategoryRepo) GetByID(id string) (*entity.PromotionApplicableCategory, error) {
	query := `SELECT id, promotion_id, category_id, include_children, status, created_at FROM promotion_applicable_categories WHERE id = $1`
	var a entity.PromotionApplicableCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(&a.ID, &a.PromotionID, &a.CategoryID, &a.IncludeChildren, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion-category association: %w", err)
	}
	return &a, nil
}

// ListActiveByCategory lista asociaciones activas de una categoría en orden de inserción.
func (r *PromotionApplicableCategoryRepo) ListActiveByCategory(categoryID string) ([]*entity.PromotionApplicableCategory, error) {
	query := `
		SELECT id, promotion_id, category_id, include_children, status, created_at
		FROM promotion_applicable_categories
		WHERE category_id = $1 AND status = 'active'
		ORDER BY created_at ASC, id ASC`
	return r.list(query, categoryID)
}

// ListByPromotion lista todas las asociaciones de una promoción.
func (r *PromotionApplicableCategoryRepo) ListByPromotion(promotionID string) ([]*entity.PromotionApplicableCategory, error) {
	query := `
		SELECT id, promotion_id, category_id, include_children, status, created_at
		FROM promotion_applicable_categories
		WHERE promotion_id = $1
		ORDER BY created_at ASC, id ASC`
	return r.list(query, promotionID)
}

// Delete elimina una asociación por ID.
func (r *PromotionApplicableCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM promotion_applicable_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion-category association: %w", err)
	}
	return nil
}

func (r *PromotionApplicableCategoryRepo) list(query string, arg any) ([]*entity.PromotionApplicableCategory, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list promotion-category associations: %w", err)
	}
	defer rows.Close()

	var list []*entity.PromotionApplicableCategory
	for rows.Next() {
		var a entity.PromotionApplicableCategory
		if err := rows.Scan(&a.ID, &a.PromotionID, &a.CategoryID, &a.IncludeChildren, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan promotion-category association: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ─── Producto ↔ Categoría ────────────────────────────────────────────────────

var _ repository.ProductCategoryRepository = (*ProductCategoryRepo)(nil)

// ProductCategoryRepo persistencia de asociaciones producto↔categoría.
type ProductCategoryRepo struct {
	q Querier
}

// NewProductCategoryRepository construye el adaptador.
func NewProductCategoryRepository(q Querier) *ProductCategoryRepo {
	return &ProductCategoryRepo{q: q}
}

// Create persiste un vínculo producto↔categoría.
func (r *ProductCategoryRepo) Create(link *entity.ProductCategory) error {
	query := `
		INSERT INTO product_categories (id, product_id, category_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.ProductID, link.CategoryID, link.Status, link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product-category link: %w", err)
	}
	return nil
}

// GetByProductAndCategory obtiene el vínculo entre un producto y una categoría, si existe.
func (r *ProductCategoryRepo) GetByProductAndCategory(productID, categoryID string) (*entity.ProductCategory, error) {
	query := `SELECT id, product_id, category_id, status, created_at FROM product_categories WHERE product_id = $1 AND category_id = $2`
	var l entity.ProductCategory
	err := r.q.QueryRow(context.Background(), query, productID, categoryID).Scan(&l.ID, &l.ProductID, &l.CategoryID, &l.Status, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product-category link: %w", err)
	}
	return &l, nil
}

// ListActiveByProduct lista los vínculos activos de un producto en orden de inserción.
func (r *ProductCategoryRepo) ListActiveByProduct(productID string) ([]*entity.ProductCategory, error) {
	query := `
		SELECT id, product_id, category_id, status, created_at
		FROM product_categories
		WHERE product_id = $1 AND status = 'active'
		ORDER BY created_at ASC, id ASC`
	return r.list(query, productID)
}

// ListByCategory lista todos los vínculos de una categoría.
func (r *ProductCategoryRepo) ListByCategory(categoryID string) ([]*entity.ProductCategory, error) {
	query := `
		SELECT id, product_id, category_id, status, created_at
		FROM product_categories
		WHERE category_id = $1
		ORDER BY created_at ASC, id ASC`
	return r.list(query, categoryID)
}

// Delete elimina un vínculo por ID.
func (r *ProductCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product-category link: %w", err)
	}
	return nil
}

func (r *ProductCategoryRepo) list(query string, arg any) ([]*entity.ProductCategory, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list product-category links: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductCategory
	for rows.Next() {
		var l entity.ProductCategory
		if err := rows.Scan(&l.ID, &l.ProductID, &l.CategoryID, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product-category link: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
