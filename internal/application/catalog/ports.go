package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
)

// PriceListPDFGenerator puerto de salida para renderizar la lista de precios
// del catálogo como PDF. La implementación vive en infrastructure/pdf.
type PriceListPDFGenerator interface {
	GeneratePriceListPDF(ctx context.Context, companyName string, generatedAt time.Time, items []dto.CatalogProductResponse) ([]byte, error)
}
