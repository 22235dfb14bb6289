package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/domain"
)

// PromotionHandler maneja las peticiones HTTP para Promotion (protegido).
// Incluye reglas de elegibilidad y asociaciones con productos y categorías.
type PromotionHandler struct {
	uc     *usecase.PromotionUseCase
	rules  *usecase.PromotionRuleUseCase
	assocs *usecase.AssociationUseCase
}

// NewPromotionHandler construye el handler.
func NewPromotionHandler(uc *usecase.PromotionUseCase, rules *usecase.PromotionRuleUseCase, assocs *usecase.AssociationUseCase) *PromotionHandler {
	return &PromotionHandler{uc: uc, rules: rules, assocs: assocs}
}

// Create godoc
// @Summary      Crear promoción
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePromotionRequest  true  "Datos de la promoción"
// @Success      201   {object}  dto.PromotionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/promotions [post]
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreatePromotionRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valores de descuento o vigencia inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener promoción por ID
// @Tags         promotions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.PromotionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promotions/{id} [get]
func (h *PromotionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar promociones
// @Tags         promotions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PromotionListResponse
// @Router       /api/promotions [get]
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(companyID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar promoción
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.UpdatePromotionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PromotionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/promotions/{id} [put]
func (h *PromotionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePromotionRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valores de descuento o vigencia inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción no encontrada"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del ciclo de vida de una promoción
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.UpdatePromotionStatusRequest  true  "draft | active | paused | ended"
// @Success      200   {object}  dto.PromotionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/promotions/{id}/status [patch]
func (h *PromotionHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePromotionStatusRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateStatus(id, in.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar promoción
// @Tags         promotions
// @Security     Bearer
// @Param        id   path  string  true  "ID de la promoción"
// @Success      204  "Sin contenido"
// @Router       /api/promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Reglas de elegibilidad ──────────────────────────────────────────────────

// CreateRule godoc
// @Summary      Crear regla de elegibilidad de una promoción
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.CreatePromotionRuleRequest  true  "scope, min_quantity, min_amount"
// @Success      201   {object}  dto.PromotionRuleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/promotions/{id}/rules [post]
func (h *PromotionHandler) CreateRule(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreatePromotionRuleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.rules.Create(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción no encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_amount no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRules godoc
// @Summary      Listar reglas de una promoción
// @Tags         promotions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.PromotionRuleListResponse
// @Router       /api/promotions/{id}/rules [get]
func (h *PromotionHandler) ListRules(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.rules.List(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteRule godoc
// @Summary      Eliminar regla de una promoción
// @Tags         promotions
// @Security     Bearer
// @Param        id      path  string  true  "ID de la promoción"
// @Param        ruleId  path  string  true  "ID de la regla"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promotions/{id}/rules/{ruleId} [delete]
func (h *PromotionHandler) DeleteRule(c *fiber.Ctx) error {
	id := c.Params("id")
	ruleID := c.Params("ruleId")
	if id == "" || ruleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y ruleId son requeridos"})
	}
	if err := h.rules.Delete(id, ruleID); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Asociaciones con productos ──────────────────────────────────────────────

// LinkProduct godoc
// @Summary      Asociar promoción a un producto
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.CreatePromotionProductRequest  true  "product_id"
// @Success      201   {object}  dto.PromotionProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/promotions/{id}/products [post]
func (h *PromotionHandler) LinkProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreatePromotionProductRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.assocs.LinkPromotionProduct(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción o producto no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la asociación ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos asociados a una promoción
// @Tags         promotions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la promoción"
// @Success      200  {array}  dto.PromotionProductResponse
// @Router       /api/promotions/{id}/products [get]
func (h *PromotionHandler) ListProducts(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.assocs.ListPromotionProducts(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UnlinkProduct godoc
// @Summary      Quitar asociación promoción↔producto
// @Tags         promotions
// @Security     Bearer
// @Param        id       path  string  true  "ID de la promoción"
// @Param        assocId  path  string  true  "ID de la asociación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promotions/{id}/products/{assocId} [delete]
func (h *PromotionHandler) UnlinkProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	assocID := c.Params("assocId")
	if id == "" || assocID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y assocId son requeridos"})
	}
	if err := h.assocs.UnlinkPromotionProduct(id, assocID); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asociación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Asociaciones con categorías ─────────────────────────────────────────────

// LinkCategory godoc
// @Summary      Asociar promoción a una categoría
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.CreatePromotionCategoryRequest  true  "category_id, include_children"
// @Success      201   {object}  dto.PromotionCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/promotions/{id}/categories [post]
func (h *PromotionHandler) LinkCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreatePromotionCategoryRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.assocs.LinkPromotionCategory(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción o categoría no encontrada"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la asociación ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías asociadas a una promoción
// @Tags         promotions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la promoción"
// @Success      200  {array}  dto.PromotionCategoryResponse
// @Router       /api/promotions/{id}/categories [get]
func (h *PromotionHandler) ListCategories(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.assocs.ListPromotionCategories(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UnlinkCategory godoc
// @Summary      Quitar asociación promoción↔categoría
// @Tags         promotions
// @Security     Bearer
// @Param        id       path  string  true  "ID de la promoción"
// @Param        assocId  path  string  true  "ID de la asociación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promotions/{id}/categories/{assocId} [delete]
func (h *PromotionHandler) UnlinkCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	assocID := c.Params("assocId")
	if id == "" || assocID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y assocId son requeridos"})
	}
	if err := h.assocs.UnlinkPromotionCategory(id, assocID); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asociación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
