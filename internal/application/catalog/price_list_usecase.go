package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
)

// PriceListUseCase exporta la misma página de catálogo con precios que el
// listado JSON, pero renderizada como PDF descargable.
type PriceListUseCase struct {
	catalog   *CatalogUseCase
	generator PriceListPDFGenerator
}

// NewPriceListUseCase construye el caso de uso inyectando el orquestador y el generador.
func NewPriceListUseCase(catalog *CatalogUseCase, generator PriceListPDFGenerator) *PriceListUseCase {
	return &PriceListUseCase{catalog: catalog, generator: generator}
}

// DownloadPriceList resuelve la página de catálogo y genera el PDF.
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *PriceListUseCase) DownloadPriceList(ctx context.Context, companyID, companyName string, q dto.CatalogQuery) (pdfBytes []byte, filename string, err error) {
	page, err := uc.catalog.GetCatalogProducts(companyID, q)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: resolver catálogo: %w", err)
	}

	generatedAt := time.Now()
	pdfBytes, err = uc.generator.GeneratePriceListPDF(ctx, companyName, generatedAt, page.Result)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("lista_precios_%s.pdf", generatedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
