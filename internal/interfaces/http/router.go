package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/catalog"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	PromotionUC   *usecase.PromotionUseCase
	RuleUC        *usecase.PromotionRuleUseCase
	AssociationUC *usecase.AssociationUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	CatalogUC     *catalog.CatalogUseCase
	PriceListUC   *catalog.PriceListUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
// Escrituras de catálogo requieren rol admin o manager; lecturas, cualquier rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canWrite := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.AssociationUC)
	products.Post("/", canWrite, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canWrite, productHandler.Delete)
	products.Post("/:id/categories", canWrite, productHandler.LinkCategory)
	products.Get("/:id/categories", productHandler.ListCategories)
	products.Delete("/:id/categories/:categoryId", canWrite, productHandler.UnlinkCategory)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", canWrite, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", canWrite, categoryHandler.Update)
	categories.Delete("/:id", canWrite, categoryHandler.Delete)

	// Promotions (protegido)
	promotions := protected.Group("/promotions")
	promotionHandler := NewPromotionHandler(deps.PromotionUC, deps.RuleUC, deps.AssociationUC)
	promotions.Post("/", canWrite, promotionHandler.Create)
	promotions.Get("/", promotionHandler.List)
	promotions.Get("/:id", promotionHandler.GetByID)
	promotions.Put("/:id", canWrite, promotionHandler.Update)
	promotions.Patch("/:id/status", canWrite, promotionHandler.UpdateStatus)
	promotions.Delete("/:id", canWrite, promotionHandler.Delete)
	promotions.Post("/:id/rules", canWrite, promotionHandler.CreateRule)
	promotions.Get("/:id/rules", promotionHandler.ListRules)
	promotions.Delete("/:id/rules/:ruleId", canWrite, promotionHandler.DeleteRule)
	promotions.Post("/:id/products", canWrite, promotionHandler.LinkProduct)
	promotions.Get("/:id/products", promotionHandler.ListProducts)
	promotions.Delete("/:id/products/:assocId", canWrite, promotionHandler.UnlinkProduct)
	promotions.Post("/:id/categories", canWrite, promotionHandler.LinkCategory)
	promotions.Get("/:id/categories", promotionHandler.ListCategories)
	promotions.Delete("/:id/categories/:assocId", canWrite, promotionHandler.UnlinkCategory)

	// Catalog (protegido, solo lectura)
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.PriceListUC)
	catalogGroup.Get("/products", catalogHandler.List)
	catalogGroup.Get("/products/pdf", catalogHandler.DownloadPDF)

	// Expenses (protegido, personales del usuario)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)
}
