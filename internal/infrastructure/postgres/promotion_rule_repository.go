package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.PromotionRuleRepository = (*PromotionRuleRepo)(nil)

// PromotionRuleRepo implementación del puerto PromotionRuleRepository sobre PostgreSQL.
type PromotionRuleRepo struct {
	q Querier
}

// NewPromotionRuleRepository construye el adaptador de persistencia para reglas de promoción.
func NewPromotionRuleRepository(q Querier) *PromotionRuleRepo {
	return &PromotionRuleRepo{q: q}
}

const promotionRuleColumns = `id, promotion_id, scope, min_quantity, min_amount, created_at, updated_at`

// Create persiste una nueva regla.
func (r *PromotionRuleRepo) Create(rule *entity.PromotionRule) error {
	query := `
		INSERT INTO promotion_rules (id, promotion_id, scope, min_quantity, min_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.PromotionID, rule.Scope, rule.MinQuantity, rule.MinAmount,
		rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promotion rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *PromotionRuleRepo) GetByID(id string) (*entity.PromotionRule, error) {
	query := `SELECT ` + promotionRuleColumns + ` FROM promotion_rules WHERE id = $1`
	var rule entity.PromotionRule
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rule.ID, &rule.PromotionID, &rule.Scope, &rule.MinQuantity, &rule.MinAmount,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion rule: %w", err)
	}
	return &rule, nil
}

// ListByPromotion lista las reglas de una promoción en orden de creación.
func (r *PromotionRuleRepo) ListByPromotion(promotionID string) ([]*entity.PromotionRule, error) {
	query := `
		SELECT ` + promotionRuleColumns + `
		FROM promotion_rules WHERE promotion_id = $1
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, promotionID)
	if err != nil {
		return nil, fmt.Errorf("list promotion rules: %w", err)
	}
	defer rows.Close()

	var list []*entity.PromotionRule
	for rows.Next() {
		var rule entity.PromotionRule
		if err := rows.Scan(
			&rule.ID, &rule.PromotionID, &rule.Scope, &rule.MinQuantity, &rule.MinAmount,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan promotion rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Delete elimina una regla por ID.
func (r *PromotionRuleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM promotion_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion rule: %w", err)
	}
	return nil
}
