package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	apphttp "github.com/jhoicas/comercio-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de servicios
// ──────────────────────────────────────────────────────────────────────────────

// stubCatalogService registra la llamada y devuelve una respuesta fija.
type stubCatalogService struct {
	gotCompanyID string
	gotQuery     dto.CatalogQuery
	out          *dto.CatalogListResponse
	err          error
}

func (s *stubCatalogService) GetCatalogProducts(companyID string, q dto.CatalogQuery) (*dto.CatalogListResponse, error) {
	s.gotCompanyID = companyID
	s.gotQuery = q
	return s.out, s.err
}

type stubPriceListService struct {
	gotCompanyName string
	pdf            []byte
	filename       string
	err            error
}

func (s *stubPriceListService) DownloadPriceList(_ context.Context, _, companyName string, _ dto.CatalogQuery) ([]byte, string, error) {
	s.gotCompanyName = companyName
	return s.pdf, s.filename, s.err
}

// buildCatalogApp monta las rutas de catálogo detrás del AuthMiddleware,
// igual que el router real.
func buildCatalogApp(svc *stubCatalogService, pdfSvc *stubPriceListService) *fiber.App {
	app := fiber.New()
	h := apphttp.NewCatalogHandler(svc, pdfSvc)
	grp := app.Group("/api/catalog", apphttp.AuthMiddleware(testJWTSecret))
	grp.Get("/products", h.List)
	grp.Get("/products/pdf", h.DownloadPDF)
	return app
}

// doCatalogRequest lanza una petición GET autenticada contra la app de test.
func doCatalogRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sampleCatalogResponse() *dto.CatalogListResponse {
	return &dto.CatalogListResponse{
		Result: []dto.CatalogProductResponse{
			{
				ID:             "prod-1",
				Code:           "SKU-001",
				Name:           "Taza",
				BasePrice:      decimal.NewFromInt(10000),
				FinalPrice:     decimal.NewFromInt(9000),
				DiscountAmount: decimal.NewFromInt(1000),
				Promotions:     []dto.PromotionOfferResponse{},
			},
		},
		Meta: dto.CatalogMeta{Total: 5, Page: 2, Limit: 1, TotalPages: 5},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/catalog/products
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogList_DevuelveResultadoYMeta(t *testing.T) {
	svc := &stubCatalogService{out: sampleCatalogResponse()}
	app := buildCatalogApp(svc, &stubPriceListService{})

	resp := doCatalogRequest(t, app, "/api/catalog/products?page=2&limit=1&search=taza", tokenForRole(t, "viewer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.CatalogListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Result, 1)
	assert.Equal(t, "SKU-001", body.Result[0].Code)
	assert.Equal(t, 5, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 5, body.Meta.TotalPages)

	// El company_id sale del JWT y la query llega parseada al caso de uso.
	assert.Equal(t, testCompanyID, svc.gotCompanyID)
	assert.Equal(t, 2, svc.gotQuery.Page)
	assert.Equal(t, 1, svc.gotQuery.Limit)
	assert.Equal(t, "taza", svc.gotQuery.Search)
}

func TestCatalogList_SinCompanyID_Retorna401(t *testing.T) {
	// Ruta montada sin AuthMiddleware: no hay company_id en locals.
	app := fiber.New()
	h := apphttp.NewCatalogHandler(&stubCatalogService{}, &stubPriceListService{})
	app.Get("/api/catalog/products", h.List)

	resp := doCatalogRequest(t, app, "/api/catalog/products", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestCatalogList_LimiteFueraDeRango_Retorna400(t *testing.T) {
	svc := &stubCatalogService{out: sampleCatalogResponse()}
	app := buildCatalogApp(svc, &stubPriceListService{})

	resp := doCatalogRequest(t, app, "/api/catalog/products?limit=500", tokenForRole(t, "viewer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Empty(t, svc.gotCompanyID, "la query inválida no debe llegar al caso de uso")
}

func TestCatalogList_SortInvalido_Retorna400(t *testing.T) {
	app := buildCatalogApp(&stubCatalogService{out: sampleCatalogResponse()}, &stubPriceListService{})

	resp := doCatalogRequest(t, app, "/api/catalog/products?sort=precio", tokenForRole(t, "viewer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalogList_ErrorDelServicio_Retorna500(t *testing.T) {
	svc := &stubCatalogService{err: errors.New("conexión perdida")}
	app := buildCatalogApp(svc, &stubPriceListService{})

	resp := doCatalogRequest(t, app, "/api/catalog/products", tokenForRole(t, "viewer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/catalog/products/pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogPDF_DevuelveAdjunto(t *testing.T) {
	pdfSvc := &stubPriceListService{pdf: []byte("%PDF-1.4"), filename: "lista_precios_20260830.pdf"}
	app := buildCatalogApp(&stubCatalogService{}, pdfSvc)

	resp := doCatalogRequest(t, app, "/api/catalog/products/pdf?company_name=Comercio+SA", tokenForRole(t, "viewer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="lista_precios_20260830.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(t, "Comercio SA", pdfSvc.gotCompanyName)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), raw)
}

func TestCatalogPDF_LimiteFueraDeRango_Retorna400(t *testing.T) {
	pdfSvc := &stubPriceListService{pdf: []byte("%PDF-1.4"), filename: "lista.pdf"}
	app := buildCatalogApp(&stubCatalogService{}, pdfSvc)

	resp := doCatalogRequest(t, app, "/api/catalog/products/pdf?limit=500", tokenForRole(t, "viewer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Empty(t, pdfSvc.gotCompanyName, "la query inválida no debe generar el PDF")
}
