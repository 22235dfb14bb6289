package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// PromotionRuleUseCase casos de uso para reglas de elegibilidad de una promoción.
type PromotionRuleUseCase struct {
	rules      repository.PromotionRuleRepository
	promotions repository.PromotionRepository
}

// NewPromotionRuleUseCase construye el caso de uso.
func NewPromotionRuleUseCase(rules repository.PromotionRuleRepository, promotions repository.PromotionRepository) *PromotionRuleUseCase {
	return &PromotionRuleUseCase{rules: rules, promotions: promotions}
}

// Create crea una regla para la promoción dada. MinAmount no puede ser negativo.
func (uc *PromotionRuleUseCase) Create(promotionID string, in dto.CreatePromotionRuleRequest) (*dto.PromotionRuleResponse, error) {
	promotion, err := uc.promotions.GetByID(promotionID)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, domain.ErrNotFound
	}
	if in.MinAmount != nil && in.MinAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rule := &entity.PromotionRule{
		ID:          uuid.New().String(),
		PromotionID: promotionID,
		Scope:       in.Scope,
		MinQuantity: in.MinQuantity,
		MinAmount:   in.MinAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.rules.Create(rule); err != nil {
		return nil, err
	}
	return toPromotionRuleResponse(rule), nil
}

// List lista las reglas de una promoción.
func (uc *PromotionRuleUseCase) List(promotionID string) (*dto.PromotionRuleListResponse, error) {
	list, err := uc.rules.ListByPromotion(promotionID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PromotionRuleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toPromotionRuleResponse(r))
	}
	return &dto.PromotionRuleListResponse{Items: items}, nil
}

// Delete elimina una regla verificando que pertenezca a la promoción indicada.
func (uc *PromotionRuleUseCase) Delete(promotionID, ruleID string) error {
	rule, err := uc.rules.GetByID(ruleID)
	if err != nil {
		return err
	}
	if rule == nil || rule.PromotionID != promotionID {
		return domain.ErrNotFound
	}
	return uc.rules.Delete(ruleID)
}

func toPromotionRuleResponse(r *entity.PromotionRule) *dto.PromotionRuleResponse {
	if r == nil {
		return nil
	}
	return &dto.PromotionRuleResponse{
		ID:          r.ID,
		PromotionID: r.PromotionID,
		Scope:       r.Scope,
		MinQuantity: r.MinQuantity,
		MinAmount:   r.MinAmount,
		CreatedAt:   r.CreatedAt,
	}
}
