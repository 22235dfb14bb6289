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

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// PromotionRepo implementación del puerto PromotionRepository sobre PostgreSQL.
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador de persistencia para promociones.
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

const promotionColumns = `id, company_id, name, status, starts_at, ends_at, discount_type, discount_value, max_discount_amount, priority, created_at, updated_at`

// Create persiste una nueva promoción.
func (r *PromotionRepo) Create(promotion *entity.Promotion) error {
	query := `
		INSERT INTO promotions (id, company_id, name, status, starts_at, ends_at, discount_type, discount_value, max_discount_amount, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		promotion.ID, promotion.CompanyID, promotion.Name, promotion.Status,
		promotion.StartsAt, promotion.EndsAt, promotion.DiscountType, promotion.DiscountValue,
		promotion.MaxDiscountAmount, promotion.Priority, promotion.CreatedAt, promotion.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (r *PromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`
	var p entity.Promotion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Status, &p.StartsAt, &p.EndsAt,
		&p.DiscountType, &p.DiscountValue, &p.MaxDiscountAmount, &p.Priority,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return &p, nil
}

// Update actualiza una promoción existente.
func (r *PromotionRepo) Update(promotion *entity.Promotion) error {
	query := `
		UPDATE promotions
		SET name = $2, status = $3, starts_at = $4, ends_at = $5, discount_type = $6,
		    discount_value = $7, max_discount_amount = $8, priority = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		promotion.ID, promotion.Name, promotion.Status, promotion.StartsAt, promotion.EndsAt,
		promotion.DiscountType, promotion.DiscountValue, promotion.MaxDiscountAmount,
		promotion.Priority, promotion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

// ListByCompany lista promociones por empresa con paginación.
func (r *PromotionRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Promotion
	for rows.Next() {
		var p entity.Promotion
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Name, &p.Status, &p.StartsAt, &p.EndsAt,
			&p.DiscountType, &p.DiscountValue, &p.MaxDiscountAmount, &p.Priority,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una promoción por ID.
func (r *PromotionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}
