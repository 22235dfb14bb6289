package entity

import "time"

// Estados válidos para Category.
const (
	CategoryStatusActive   = "active"
	CategoryStatusInactive = "inactive"
	CategoryStatusDeleted  = "deleted"
)

// Category representa una categoría de productos (jerárquica).
// Ancestors guarda TODOS los ancestros transitivos como lista plana de IDs,
// para que la evaluación de promociones no tenga que recorrer padres en runtime.
type Category struct {
	ID        string
	CompanyID string
	ParentID  string   // vacío si es raíz
	Ancestors []string // IDs de todos los ancestros (padre, abuelo, ...)
	TreeID    string   // ID de la categoría raíz del árbol
	Name      string
	Status    string // active, inactive, deleted
	CreatedAt time.Time
	UpdatedAt time.Time
}
