package dto

import "time"

// CreatePromotionProductRequest asocia una promoción a un producto.
type CreatePromotionProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// PromotionProductResponse salida de una asociación promoción↔producto.
type PromotionProductResponse struct {
	ID          string    `json:"id"`
	PromotionID string    `json:"promotion_id"`
	ProductID   string    `json:"product_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatePromotionCategoryRequest asocia una promoción a una categoría.
// IncludeChildren habilita el cascadeo a categorías descendientes.
type CreatePromotionCategoryRequest struct {
	CategoryID      string `json:"category_id" validate:"required"`
	IncludeChildren bool   `json:"include_children"`
	Status          string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// PromotionCategoryResponse salida de una asociación promoción↔categoría.
type PromotionCategoryResponse struct {
	ID              string    `json:"id"`
	PromotionID     string    `json:"promotion_id"`
	CategoryID      string    `json:"category_id"`
	IncludeChildren bool      `json:"include_children"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateProductCategoryRequest vincula un producto a una categoría.
type CreateProductCategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductCategoryResponse salida de un vínculo producto↔categoría.
type ProductCategoryResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	CategoryID string    `json:"category_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
