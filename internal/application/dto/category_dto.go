package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
// Ancestors y TreeID se calculan desde la cadena de padres; no vienen del cliente.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	ParentID string `json:"parent_id"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	ParentID *string `json:"parent_id"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive deleted"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Ancestors []string  `json:"ancestors"`
	TreeID    string    `json:"tree_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
