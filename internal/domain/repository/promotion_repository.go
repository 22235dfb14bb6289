package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// PromotionRepository define el puerto de persistencia para Promotion (DIP).
type PromotionRepository interface {
	Create(promotion *entity.Promotion) error
	GetByID(id string) (*entity.Promotion, error)
	Update(promotion *entity.Promotion) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Promotion, error)
	Delete(id string) error
}
