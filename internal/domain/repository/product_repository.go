package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// CatalogFilter criterios de búsqueda del listado de catálogo. La búsqueda,
// orden y paginación son responsabilidad del store, no del núcleo de precios.
type CatalogFilter struct {
	Search   string
	Status   string // vacío => solo active
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string // name, price, created_at
	Order    string // asc, desc
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	// ListCatalog retorna la página filtrada más el total de filas que matchean
	// (para calcular totalPages en la respuesta del catálogo).
	ListCatalog(companyID string, filter CatalogFilter) ([]*entity.Product, int, error)
	Delete(id string) error
}
