package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/dto"
)

// CatalogService calcula el catálogo con promociones aplicadas.
// Lo implementa catalog.CatalogUseCase.
type CatalogService interface {
	GetCatalogProducts(companyID string, q dto.CatalogQuery) (*dto.CatalogListResponse, error)
}

// PriceListService genera la lista de precios del catálogo en PDF.
// Lo implementa catalog.PriceListUseCase.
type PriceListService interface {
	DownloadPriceList(ctx context.Context, companyID, companyName string, q dto.CatalogQuery) ([]byte, string, error)
}

// CatalogHandler expone el catálogo con precios calculados (protegido).
type CatalogHandler struct {
	uc        CatalogService
	priceList PriceListService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc CatalogService, priceList PriceListService) *CatalogHandler {
	return &CatalogHandler{uc: uc, priceList: priceList}
}

// List godoc
// @Summary      Listar catálogo con promociones aplicadas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Búsqueda por nombre o código"
// @Param        sort      query  string  false  "name | price | created_at"
// @Param        order     query  string  false  "asc | desc"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Tamaño de página"  default(20)
// @Param        status    query  string  false  "active | inactive"
// @Param        minPrice  query  string  false  "Precio mínimo (unidades menores)"
// @Param        maxPrice  query  string  false  "Precio máximo (unidades menores)"
// @Success      200       {object}  dto.CatalogListResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var q dto.CatalogQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := validate.Struct(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.GetCatalogProducts(companyID, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar lista de precios del catálogo en PDF
// @Tags         catalog
// @Security     Bearer
// @Produce      application/pdf
// @Param        search        query  string  false  "Búsqueda por nombre o código"
// @Param        company_name  query  string  false  "Nombre de la empresa para el encabezado"
// @Success      200  {file}  binary
// @Router       /api/catalog/products/pdf [get]
func (h *CatalogHandler) DownloadPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var q dto.CatalogQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := validate.Struct(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	companyName := c.Query("company_name")
	pdfBytes, filename, err := h.priceList.DownloadPriceList(c.Context(), companyID, companyName, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
