package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	appcatalog "github.com/jhoicas/comercio-api/internal/application/catalog"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/comercio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/comercio-api/internal/interfaces/http"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	promotionRepo := postgres.NewPromotionRepository(pool)
	ruleRepo := postgres.NewPromotionRuleRepository(pool)
	promoProductRepo := postgres.NewPromotionApplicableProductRepository(pool)
	promoCategoryRepo := postgres.NewPromotionApplicableCategoryRepository(pool)
	productCategoryRepo := postgres.NewProductCategoryRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	promotionUC := usecase.NewPromotionUseCase(promotionRepo)
	ruleUC := usecase.NewPromotionRuleUseCase(ruleRepo, promotionRepo)
	associationUC := usecase.NewAssociationUseCase(
		promotionRepo, productRepo, categoryRepo,
		promoProductRepo, promoCategoryRepo, productCategoryRepo,
	)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)

	catalogUC := appcatalog.NewCatalogUseCase(
		productRepo, productCategoryRepo, categoryRepo,
		promotionRepo, ruleRepo, promoProductRepo, promoCategoryRepo,
	)

	// PDF: lista de precios del catálogo con promociones aplicadas
	pdfGenerator := infrapdf.NewMarotoPriceListGenerator()
	priceListUC := appcatalog.NewPriceListUseCase(catalogUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		PromotionUC:   promotionUC,
		RuleUC:        ruleUC,
		AssociationUC: associationUC,
		ExpenseUC:     expenseUC,
		CatalogUC:     catalogUC,
		PriceListUC:   priceListUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
