package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con contadores de llamadas
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error                  { return nil }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (f *fakeProductRepo) GetByCompanyAndCode(string, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListCatalog(string, repository.CatalogFilter) ([]*entity.Product, int, error) {
	return f.products, len(f.products), nil
}
func (f *fakeProductRepo) Delete(string) error { return nil }

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	getCalls   int
}

func (f *fakeCategoryRepo) Create(*entity.Category) error { return nil }
func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	f.getCalls++
	return f.categories[id], nil
}
func (f *fakeCategoryRepo) Update(*entity.Category) error { return nil }
func (f *fakeCategoryRepo) ListByCompany(string, int, int) ([]*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) ListByParent(string, string) ([]*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Delete(string) error { return nil }

type fakePromotionRepo struct {
	promotions map[string]*entity.Promotion
	getCalls   int
}

func (f *fakePromotionRepo) Create(*entity.Promotion) error { return nil }
func (f *fakePromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	f.getCalls++
	return f.promotions[id], nil
}
func (f *fakePromotionRepo) Update(*entity.Promotion) error { return nil }
func (f *fakePromotionRepo) ListByCompany(string, int, int) ([]*entity.Promotion, error) {
	return nil, nil
}
func (f *fakePromotionRepo) Delete(string) error { return nil }

type fakeRuleRepo struct {
	rules     map[string][]*entity.PromotionRule
	listCalls int
}

func (f *fakeRuleRepo) Create(*entity.PromotionRule) error            { return nil }
func (f *fakeRuleRepo) GetByID(string) (*entity.PromotionRule, error) { return nil, nil }
func (f *fakeRuleRepo) ListByPromotion(promotionID string) ([]*entity.PromotionRule, error) {
	f.listCalls++
	return f.rules[promotionID], nil
}
func (f *fakeRuleRepo) Delete(string) error { return nil }

type fakePromoProductRepo struct {
	byProduct map[string][]*entity.PromotionApplicableProduct
}

func (f *fakePromoProductRepo) Create(*entity.PromotionApplicableProduct) error { return nil }
func (f *fakePromoProductRepo) GetByID(string) (*entity.PromotionApplicableProduct, error) {
	return nil, nil
}
func (f *fakePromoProductRepo) ListActiveByProduct(productID string) ([]*entity.PromotionApplicableProduct, error) {
	return f.byProduct[productID], nil
}
func (f *fakePromoProductRepo) ListByPromotion(string) ([]*entity.PromotionApplicableProduct, error) {
	return nil, nil
}
func (f *fakePromoProductRepo) Delete(string) error { return nil }

type fakePromoCategoryRepo struct {
	byCategory map[string][]*entity.PromotionApplicableCategory
	listCalls  int
}

func (f *fakePromoCategoryRepo) Create(*entity.PromotionApplicableCategory) error { return nil }
func (f *fakePromoCategoryRepo) GetByID(string) (*entity.PromotionApplicableCategory, error) {
	return nil, nil
}
func (f *fakePromoCategoryRepo) ListActiveByCategory(categoryID string) ([]*entity.PromotionApplicableCategory, error) {
	f.listCalls++
	return f.byCategory[categoryID], nil
}
func (f *fakePromoCategoryRepo) ListByPromotion(string) ([]*entity.PromotionApplicableCategory, error) {
	return nil, nil
}
func (f *fakePromoCategoryRepo) Delete(string) error { return nil }

type fakeProductCategoryRepo struct {
	byProduct map[string][]*entity.ProductCategory
}

func (f *fakeProductCategoryRepo) Create(*entity.ProductCategory) error { return nil }
func (f *fakeProductCategoryRepo) GetByProductAndCategory(string, string) (*entity.ProductCategory, error) {
	return nil, nil
}
func (f *fakeProductCategoryRepo) ListActiveByProduct(productID string) ([]*entity.ProductCategory, error) {
	return f.byProduct[productID], nil
}
func (f *fakeProductCategoryRepo) ListByCategory(string) ([]*entity.ProductCategory, error) {
	return nil, nil
}
func (f *fakeProductCategoryRepo) Delete(string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	products        *fakeProductRepo
	categories      *fakeCategoryRepo
	promotions      *fakePromotionRepo
	rules           *fakeRuleRepo
	promoProducts   *fakePromoProductRepo
	promoCategories *fakePromoCategoryRepo
	productLinks    *fakeProductCategoryRepo
	uc              *CatalogUseCase
}

func newFixture() *fixture {
	f := &fixture{
		products:        &fakeProductRepo{},
		categories:      &fakeCategoryRepo{categories: map[string]*entity.Category{}},
		promotions:      &fakePromotionRepo{promotions: map[string]*entity.Promotion{}},
		rules:           &fakeRuleRepo{rules: map[string][]*entity.PromotionRule{}},
		promoProducts:   &fakePromoProductRepo{byProduct: map[string][]*entity.PromotionApplicableProduct{}},
		promoCategories: &fakePromoCategoryRepo{byCategory: map[string][]*entity.PromotionApplicableCategory{}},
		productLinks:    &fakeProductCategoryRepo{byProduct: map[string][]*entity.ProductCategory{}},
	}
	f.uc = NewCatalogUseCase(
		f.products, f.productLinks, f.categories,
		f.promotions, f.rules, f.promoProducts, f.promoCategories,
	)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) addProduct(id string, price int64) {
	f.products.products = append(f.products.products, &entity.Product{
		ID:     id,
		Code:   "C-" + id,
		Name:   "Producto " + id,
		Price:  decimal.NewFromInt(price),
		Status: entity.ProductStatusActive,
	})
}

func (f *fixture) addPromotion(id string, discountType string, value int64, priority int) {
	f.promotions.promotions[id] = &entity.Promotion{
		ID:            id,
		Name:          "Promo " + id,
		Status:        entity.PromotionStatusActive,
		StartsAt:      fixedNow.Add(-time.Hour),
		EndsAt:        fixedNow.Add(time.Hour),
		DiscountType:  discountType,
		DiscountValue: decimal.NewFromInt(value),
		Priority:      priority,
	}
}

func (f *fixture) linkPromoProduct(assocID, promotionID, productID string) {
	f.promoProducts.byProduct[productID] = append(f.promoProducts.byProduct[productID],
		&entity.PromotionApplicableProduct{
			ID: assocID, PromotionID: promotionID, ProductID: productID,
			Status: entity.AssociationStatusActive,
		})
}

func (f *fixture) linkPromoCategory(assocID, promotionID, categoryID string, includeChildren bool) {
	f.promoCategories.byCategory[categoryID] = append(f.promoCategories.byCategory[categoryID],
		&entity.PromotionApplicableCategory{
			ID: assocID, PromotionID: promotionID, CategoryID: categoryID,
			IncludeChildren: includeChildren, Status: entity.AssociationStatusActive,
		})
}

func (f *fixture) addCategory(id string, ancestors ...string) {
	treeID := id
	if len(ancestors) > 0 {
		treeID = ancestors[0]
	}
	f.categories.categories[id] = &entity.Category{
		ID: id, Ancestors: ancestors, TreeID: treeID,
		Name: "Cat " + id, Status: entity.CategoryStatusActive,
	}
}

func (f *fixture) linkProductCategory(productID, categoryID string) {
	f.productLinks.byProduct[productID] = append(f.productLinks.byProduct[productID],
		&entity.ProductCategory{
			ID: productID + "-" + categoryID, ProductID: productID, CategoryID: categoryID,
			Status: entity.AssociationStatusActive,
		})
}

func defaultQuery() dto.CatalogQuery { return dto.CatalogQuery{Page: 1, Limit: 20} }

// ──────────────────────────────────────────────────────────────────────────────
// Listado básico y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCatalogProducts_SinPromociones(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	require.Len(t, out.Result, 1)
	item := out.Result[0]
	assert.True(t, item.BasePrice.Equal(decimal.NewFromInt(10000)))
	assert.True(t, item.FinalPrice.Equal(decimal.NewFromInt(10000)))
	assert.Nil(t, item.BestPromotion)
	assert.Empty(t, item.Promotions)
	assert.Equal(t, 1, out.Meta.Total)
	assert.Equal(t, 1, out.Meta.TotalPages)
}

func TestGetCatalogProducts_MetaPaginacion(t *testing.T) {
	f := newFixture()
	for i := 0; i < 5; i++ {
		f.addProduct(string(rune('a'+i)), 1000)
	}

	q := dto.CatalogQuery{Page: 1, Limit: 2}
	out, err := f.uc.GetCatalogProducts("co-1", q)
	require.NoError(t, err)

	// El fake retorna todo; lo relevante es el cálculo de totalPages por techo.
	assert.Equal(t, 5, out.Meta.Total)
	assert.Equal(t, 2, out.Meta.Limit)
	assert.Equal(t, 3, out.Meta.TotalPages)
}

func TestGetCatalogProducts_CatalogoVacio(t *testing.T) {
	f := newFixture()

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	assert.Empty(t, out.Result)
	assert.Equal(t, 0, out.Meta.Total)
	assert.Equal(t, 0, out.Meta.TotalPages)
}

// ──────────────────────────────────────────────────────────────────────────────
// Promociones directas al producto
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCatalogProducts_PromocionDirecta(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)
	f.addPromotion("promo-1", entity.DiscountTypePercent, 10, 0)
	f.linkPromoProduct("assoc-1", "promo-1", "p1")

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	item := out.Result[0]
	require.NotNil(t, item.BestPromotion)
	assert.Equal(t, "promo-1", item.BestPromotion.PromotionID)
	assert.Equal(t, "product", item.BestPromotion.Source)
	assert.Equal(t, "assoc-1", item.BestPromotion.Metadata.AssociationID)
	assert.True(t, item.FinalPrice.Equal(decimal.NewFromInt(9000)))
}

func TestGetCatalogProducts_PromocionInexistenteSeSalta(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)
	f.linkPromoProduct("assoc-1", "promo-fantasma", "p1")

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	assert.Nil(t, out.Result[0].BestPromotion, "asociación huérfana no aporta oferta ni error")
}

func TestGetCatalogProducts_ReglaVetaPromocion(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 1000)
	f.addPromotion("promo-1", entity.DiscountTypePercent, 10, 0)
	minAmount := decimal.NewFromInt(5000)
	f.rules.rules["promo-1"] = []*entity.PromotionRule{{PromotionID: "promo-1", MinAmount: &minAmount}}
	f.linkPromoProduct("assoc-1", "promo-1", "p1")

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	assert.Nil(t, out.Result[0].BestPromotion, "producto bajo el monto mínimo no recibe la promoción")
}

// ──────────────────────────────────────────────────────────────────────────────
// Jerarquía de categorías: C1/C2 exactas, A1/A2 ancestros
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCatalogProducts_PromocionPorCategoriaExacta(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)
	f.addCategory("c1")
	f.linkProductCategory("p1", "c1")
	f.addPromotion("promo-1", entity.DiscountTypeFixed, 500, 0)
	// IncludeChildren false: irrelevante en categoría exacta.
	f.linkPromoCategory("assoc-c1", "promo-1", "c1", false)

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	item := out.Result[0]
	require.NotNil(t, item.BestPromotion)
	assert.Equal(t, "category", item.BestPromotion.Source)
	assert.Equal(t, "c1", item.BestPromotion.Metadata.AppliedCategoryID)
	require.NotNil(t, item.BestPromotion.Metadata.IncludeChildren)
	assert.False(t, *item.BestPromotion.Metadata.IncludeChildren)
}

func TestGetCatalogProducts_AncestroRequiereIncludeChildren(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)
	// c1 cuelga del ancestro a1.
	f.addCategory("a1")
	f.addCategory("c1", "a1")
	f.linkProductCategory("p1", "c1")
	f.addPromotion("promo-1", entity.DiscountTypeFixed, 500, 0)
	// La asociación al ancestro NO cascadea: no debe alcanzar al producto.
	f.linkPromoCategory("assoc-a1", "promo-1", "a1", false)

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	assert.Nil(t, out.Result[0].BestPromotion,
		"asociación de ancestro sin include_children no aplica vía cascada")
}

func TestGetCatalogProducts_AncestroConIncludeChildrenAplica(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)
	f.addCategory("a1")
	f.addCategory("c1", "a1")
	f.linkProductCategory("p1", "c1")
	f.addPromotion("promo-1", entity.DiscountTypeFixed, 500, 0)
	f.linkPromoCategory("assoc-a1", "promo-1", "a1", true)

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	item := out.Result[0]
	require.NotNil(t, item.BestPromotion)
	assert.Equal(t, "a1", item.BestPromotion.Metadata.AppliedCategoryID)
	require.NotNil(t, item.BestPromotion.Metadata.IncludeChildren)
	assert.True(t, *item.BestPromotion.Metadata.IncludeChildren)
}

func TestGetCatalogProducts_MejorOfertaEntreRutas(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)
	f.addCategory("c1")
	f.linkProductCategory("p1", "c1")

	// Directa: 150 fijo. Por categoría: 250 fijo. Debe ganar la de 250.
	f.addPromotion("promo-directa", entity.DiscountTypeFixed, 150, 0)
	f.linkPromoProduct("assoc-d", "promo-directa", "p1")
	f.addPromotion("promo-cat", entity.DiscountTypeFixed, 250, 0)
	f.linkPromoCategory("assoc-c", "promo-cat", "c1", false)

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	item := out.Result[0]
	require.NotNil(t, item.BestPromotion)
	assert.Equal(t, "promo-cat", item.BestPromotion.PromotionID)
	assert.True(t, item.DiscountAmount.Equal(decimal.NewFromInt(250)))
	assert.Len(t, item.Promotions, 2, "ambas ofertas quedan listadas")
	assert.Equal(t, "promo-cat", item.Promotions[0].PromotionID, "ordenadas por descuento desc")
}

func TestGetCatalogProducts_MismaPromocionPorDosRutasUnaSolaOferta(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)
	f.addCategory("c1")
	f.linkProductCategory("p1", "c1")
	f.addPromotion("promo-1", entity.DiscountTypeFixed, 500, 0)
	f.linkPromoProduct("assoc-d", "promo-1", "p1")
	f.linkPromoCategory("assoc-c", "promo-1", "c1", false)

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	item := out.Result[0]
	require.Len(t, item.Promotions, 1, "una promoción genera a lo sumo una oferta")
	// En empate de descuento se conserva la primera ruta evaluada (directa).
	assert.Equal(t, "assoc-d", item.Promotions[0].Metadata.AssociationID)
	assert.Equal(t, "product", item.Promotions[0].Source)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comportamiento de los cachés por petición
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCatalogProducts_CacheCategoriasYReglas(t *testing.T) {
	f := newFixture()
	// Dos productos en la misma categoría con la misma promoción.
	f.addProduct("p1", 10000)
	f.addProduct("p2", 20000)
	f.addCategory("c1")
	f.linkProductCategory("p1", "c1")
	f.linkProductCategory("p2", "c1")
	f.addPromotion("promo-1", entity.DiscountTypePercent, 10, 0)
	f.linkPromoCategory("assoc-c", "promo-1", "c1", false)

	_, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	assert.Equal(t, 1, f.categories.getCalls, "la categoría se consulta una sola vez por petición")
	assert.Equal(t, 1, f.promotions.getCalls, "la promoción se consulta una sola vez")
	assert.Equal(t, 1, f.rules.listCalls, "las reglas se consultan una sola vez")
	assert.Equal(t, 1, f.promoCategories.listCalls, "las asociaciones de la categoría se consultan una sola vez")
}

func TestGetCatalogProducts_PromocionInexistenteSeReconsulta(t *testing.T) {
	f := newFixture()
	// Dos productos apuntando a la misma promoción inexistente: el caché de
	// promociones no guarda ausencias, así que se consulta una vez por aparición.
	f.addProduct("p1", 10000)
	f.addProduct("p2", 20000)
	f.linkPromoProduct("a1", "promo-fantasma", "p1")
	f.linkPromoProduct("a2", "promo-fantasma", "p2")

	_, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	assert.Equal(t, 2, f.promotions.getCalls,
		"un miss de promoción no se cachea y se vuelve a consultar")
}

func TestGetCatalogProducts_CategoriaInexistenteNoSeReconsulta(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", 10000)
	f.addProduct("p2", 20000)
	// Vínculos a una categoría que no existe: la ausencia sí se cachea.
	f.productLinks.byProduct["p1"] = []*entity.ProductCategory{
		{ID: "l1", ProductID: "p1", CategoryID: "cat-fantasma", Status: entity.AssociationStatusActive},
	}
	f.productLinks.byProduct["p2"] = []*entity.ProductCategory{
		{ID: "l2", ProductID: "p2", CategoryID: "cat-fantasma", Status: entity.AssociationStatusActive},
	}

	out, err := f.uc.GetCatalogProducts("co-1", defaultQuery())
	require.NoError(t, err)

	assert.Equal(t, 1, f.categories.getCalls,
		"la ausencia de categoría se cachea y no se vuelve a consultar")
	// La categoría irresoluble sigue aportando como exacta.
	assert.Equal(t, 1, f.promoCategories.listCalls)
	assert.Len(t, out.Result, 2)
}
