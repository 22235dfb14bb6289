package entity

import "time"

// Estado válido para registros de asociación. Solo las asociaciones activas
// participan en la evaluación del catálogo.
const AssociationStatusActive = "active"

// PromotionApplicableProduct vincula una promoción con un producto concreto.
type PromotionApplicableProduct struct {
	ID          string
	PromotionID string
	ProductID   string
	Status      string // active, inactive
	CreatedAt   time.Time
}

// PromotionApplicableCategory vincula una promoción con una categoría.
// IncludeChildren indica si la promoción cascadea a las categorías descendientes
// (solo relevante cuando el match es por ancestro, no por categoría exacta).
type PromotionApplicableCategory struct {
	ID              string
	PromotionID     string
	CategoryID      string
	IncludeChildren bool
	Status          string // active, inactive
	CreatedAt       time.Time
}

// ProductCategory vincula un producto con una categoría.
type ProductCategory struct {
	ID         string
	ProductID  string
	CategoryID string
	Status     string // active, inactive
	CreatedAt  time.Time
}
