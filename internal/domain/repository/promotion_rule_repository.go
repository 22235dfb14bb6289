package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// PromotionRuleRepository define el puerto de persistencia para PromotionRule (DIP).
type PromotionRuleRepository interface {
	Create(rule *entity.PromotionRule) error
	GetByID(id string) (*entity.PromotionRule, error)
	ListByPromotion(promotionID string) ([]*entity.PromotionRule, error)
	Delete(id string) error
}
