package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// PromotionUseCase casos de uso CRUD para promociones.
type PromotionUseCase struct {
	repo repository.PromotionRepository
}

// NewPromotionUseCase construye el caso de uso.
func NewPromotionUseCase(repo repository.PromotionRepository) *PromotionUseCase {
	return &PromotionUseCase{repo: repo}
}

// Create crea una promoción. DiscountValue no puede ser negativo y la ventana
// temporal debe ser coherente (StartsAt <= EndsAt).
func (uc *PromotionUseCase) Create(companyID string, in dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if in.DiscountValue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.EndsAt.Before(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.PromotionStatusDraft
	}
	now := time.Now()
	promotion := &entity.Promotion{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              in.Name,
		Status:            status,
		StartsAt:          in.StartsAt,
		EndsAt:            in.EndsAt,
		DiscountType:      in.DiscountType,
		DiscountValue:     in.DiscountValue,
		MaxDiscountAmount: in.MaxDiscountAmount,
		Priority:          in.Priority,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(promotion); err != nil {
		return nil, err
	}
	return toPromotionResponse(promotion), nil
}

// GetByID obtiene una promoción por ID.
func (uc *PromotionUseCase) GetByID(id string) (*dto.PromotionResponse, error) {
	promotion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, nil
	}
	return toPromotionResponse(promotion), nil
}

// Update actualiza una promoción.
func (uc *PromotionUseCase) Update(id string, in dto.UpdatePromotionRequest) (*dto.PromotionResponse, error) {
	promotion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, nil
	}
	if in.Name != nil {
		promotion.Name = *in.Name
	}
	if in.StartsAt != nil {
		promotion.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		promotion.EndsAt = *in.EndsAt
	}
	if promotion.EndsAt.Before(promotion.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountType != nil {
		promotion.DiscountType = *in.DiscountType
	}
	if in.DiscountValue != nil {
		if in.DiscountValue.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		promotion.DiscountValue = *in.DiscountValue
	}
	if in.MaxDiscountAmount != nil {
		promotion.MaxDiscountAmount = in.MaxDiscountAmount
	}
	if in.Priority != nil {
		promotion.Priority = *in.Priority
	}
	promotion.UpdatedAt = time.Now()
	if err := uc.repo.Update(promotion); err != nil {
		return nil, err
	}
	return toPromotionResponse(promotion), nil
}

// UpdateStatus cambia el estado del ciclo de vida (draft/active/paused/ended).
func (uc *PromotionUseCase) UpdateStatus(id, status string) (*dto.PromotionResponse, error) {
	promotion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, nil
	}
	promotion.Status = status
	promotion.UpdatedAt = time.Now()
	if err := uc.repo.Update(promotion); err != nil {
		return nil, err
	}
	return toPromotionResponse(promotion), nil
}

// List lista promociones por empresa con paginación.
func (uc *PromotionUseCase) List(companyID string, limit, offset int) (*dto.PromotionListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PromotionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPromotionResponse(p))
	}
	return &dto.PromotionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una promoción por ID.
func (uc *PromotionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPromotionResponse(p *entity.Promotion) *dto.PromotionResponse {
	if p == nil {
		return nil
	}
	return &dto.PromotionResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		Name:              p.Name,
		Status:            p.Status,
		StartsAt:          p.StartsAt,
		EndsAt:            p.EndsAt,
		DiscountType:      p.DiscountType,
		DiscountValue:     p.DiscountValue,
		MaxDiscountAmount: p.MaxDiscountAmount,
		Priority:          p.Priority,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
