// Package pdf implementa la generación de la lista de precios del catálogo
// como PDF descargable.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  "LISTA DE PRECIOS" + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Precio | Desc. | Precio final   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: promoción aplicada por fila con descuento + leyenda │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appcatalog "github.com/jhoicas/comercio-api/internal/application/catalog"
	"github.com/jhoicas/comercio-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAccent  = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPriceListGenerator implementa catalog.PriceListPDFGenerator usando Maroto v2.
type MarotoPriceListGenerator struct{}

var _ appcatalog.PriceListPDFGenerator = (*MarotoPriceListGenerator)(nil)

// NewMarotoPriceListGenerator construye el generador.
func NewMarotoPriceListGenerator() *MarotoPriceListGenerator { return &MarotoPriceListGenerator{} }

// GeneratePriceListPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPriceListGenerator) GeneratePriceListPDF(
	_ context.Context,
	companyName string,
	generatedAt time.Time,
	items []dto.CatalogProductResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Precios", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(items), generatedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y título + fecha (der).
func headerRow(companyName string, generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("LISTA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Precio", 2, align.Right),
		h("Desc.", 2, align.Right),
		h("Precio final", 2, align.Right),
	)
}

// tableItemRows: una fila por producto; si tiene descuento se añade una
// subfila con el nombre de la promoción aplicada.
func tableItemRows(items []dto.CatalogProductResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.Code,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(it.BasePrice.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				discountCell(it),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAccent},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(it.FinalPrice.StringFixed(0)),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
		if it.BestPromotion != nil {
			result = append(result, row.New(5).Add(
				col.New(2),
				col.New(10).Add(text.New(
					"Promoción: "+it.BestPromotion.Name,
					props.Text{Size: 7, Align: align.Left, Left: 1, Color: colorGray},
				)),
			))
		}
	}
	return result
}

// footerRow: conteo y leyenda de vigencia.
func footerRow(count int, generatedAt time.Time) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"%d productos listados. Precios con promociones vigentes al %s; sujetos a cambio sin previo aviso.",
			count, generatedAt.Format("02/01/2006 15:04"),
		), props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func discountCell(it dto.CatalogProductResponse) string {
	if it.DiscountAmount.IsZero() {
		return "—"
	}
	return "-$" + formatMoney(it.DiscountAmount.StringFixed(0))
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
