package catalog

import (
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// requestCaches memoiza lecturas de repositorio durante UNA invocación del
// listado de catálogo. Son mapas planos sin TTL ni expulsión: nacen y mueren
// con la llamada, nunca se comparten entre peticiones.
//
// Asimetría heredada del diseño original: el caché de categorías guarda
// también las ausencias (nil con presencia de clave), mientras que el de
// promociones solo guarda aciertos — un ID de promoción inexistente se vuelve
// a consultar en cada aparición dentro de la misma corrida. Afecta volumen de
// consultas, no correctitud.
type requestCaches struct {
	categories           map[string]*entity.Category
	promotions           map[string]*entity.Promotion
	rules                map[string][]*entity.PromotionRule
	applicableCategories map[string][]*entity.PromotionApplicableCategory
}

func newRequestCaches() *requestCaches {
	return &requestCaches{
		categories:           make(map[string]*entity.Category),
		promotions:           make(map[string]*entity.Promotion),
		rules:                make(map[string][]*entity.PromotionRule),
		applicableCategories: make(map[string][]*entity.PromotionApplicableCategory),
	}
}

// category resuelve una categoría por ID, cacheando también el "no encontrada".
func (c *requestCaches) category(repo repository.CategoryRepository, id string) (*entity.Category, error) {
	if cached, ok := c.categories[id]; ok {
		return cached, nil
	}
	category, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	c.categories[id] = category // nil también se guarda
	return category, nil
}

// promotion resuelve una promoción por ID. Solo cachea aciertos.
func (c *requestCaches) promotion(repo repository.PromotionRepository, id string) (*entity.Promotion, error) {
	if cached, ok := c.promotions[id]; ok {
		return cached, nil
	}
	promotion, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promotion != nil {
		c.promotions[id] = promotion
	}
	return promotion, nil
}

// promotionRules resuelve las reglas de una promoción. Una lista vacía es un
// valor cacheable, no un miss.
func (c *requestCaches) promotionRules(repo repository.PromotionRuleRepository, promotionID string) ([]*entity.PromotionRule, error) {
	if cached, ok := c.rules[promotionID]; ok {
		return cached, nil
	}
	rules, err := repo.ListByPromotion(promotionID)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []*entity.PromotionRule{}
	}
	c.rules[promotionID] = rules
	return rules, nil
}

// categoryAssociations resuelve las asociaciones activas de una categoría,
// cacheando también la lista vacía.
func (c *requestCaches) categoryAssociations(repo repository.PromotionApplicableCategoryRepository, categoryID string) ([]*entity.PromotionApplicableCategory, error) {
	if cached, ok := c.applicableCategories[categoryID]; ok {
		return cached, nil
	}
	assocs, err := repo.ListActiveByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if assocs == nil {
		assocs = []*entity.PromotionApplicableCategory{}
	}
	c.applicableCategories[categoryID] = assocs
	return assocs, nil
}
