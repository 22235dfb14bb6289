package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías jerárquicas.
// Ancestors y TreeID se derivan de la cadena de padres en cada escritura,
// para que la evaluación del catálogo no recorra el árbol en runtime.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría, resolviendo ancestros desde el padre.
func (uc *CategoryUseCase) Create(companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	id := uuid.New().String()
	ancestors, treeID, err := uc.resolveAncestry(id, in.ParentID)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.CategoryStatusActive
	}
	now := time.Now()
	category := &entity.Category{
		ID:        id,
		CompanyID: companyID,
		ParentID:  in.ParentID,
		Ancestors: ancestors,
		TreeID:    treeID,
		Name:      in.Name,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría. Si cambia el padre se recalculan Ancestors y
// TreeID de la categoría y de toda su descendencia: las subcategorías guardan
// la cadena completa de ancestros y quedarían obsoletas tras la reubicación.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Status != nil {
		category.Status = *in.Status
	}
	reparented := false
	if in.ParentID != nil && *in.ParentID != category.ParentID {
		ancestors, treeID, err := uc.resolveAncestry(category.ID, *in.ParentID)
		if err != nil {
			return nil, err
		}
		category.ParentID = *in.ParentID
		category.Ancestors = ancestors
		category.TreeID = treeID
		reparented = true
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	if reparented {
		if err := uc.propagateAncestry(category); err != nil {
			return nil, err
		}
	}
	return toCategoryResponse(category), nil
}

// List lista categorías por empresa con paginación.
func (uc *CategoryUseCase) List(companyID string, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una categoría por ID. Falla con ErrConflict si la categoría
// tiene hijas directas: primero hay que reubicar o eliminar las subcategorías.
func (uc *CategoryUseCase) Delete(id string) error {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	children, err := uc.repo.ListByParent(cat.CompanyID, id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// propagateAncestry reescribe Ancestors y TreeID de las hijas directas de
// parent a partir de la cadena ya recalculada de parent, y desciende por el
// subárbol con ListByParent hasta cubrir toda la descendencia.
func (uc *CategoryUseCase) propagateAncestry(parent *entity.Category) error {
	children, err := uc.repo.ListByParent(parent.CompanyID, parent.ID)
	if err != nil {
		return err
	}
	for _, child := range children {
		ancestors := make([]string, 0, len(parent.Ancestors)+1)
		ancestors = append(ancestors, parent.Ancestors...)
		ancestors = append(ancestors, parent.ID)
		child.Ancestors = ancestors
		child.TreeID = parent.TreeID
		child.UpdatedAt = time.Now()
		if err := uc.repo.Update(child); err != nil {
			return err
		}
		if err := uc.propagateAncestry(child); err != nil {
			return err
		}
	}
	return nil
}

// resolveAncestry camina la cadena de padres y retorna (ancestros, treeID).
// Una categoría raíz es su propio árbol. Falla con ErrCategoryCycle si la
// categoría aparece en su propia cadena de ancestros.
func (uc *CategoryUseCase) resolveAncestry(categoryID, parentID string) ([]string, string, error) {
	if parentID == "" {
		return []string{}, categoryID, nil
	}
	if parentID == categoryID {
		return nil, "", domain.ErrCategoryCycle
	}
	parent, err := uc.repo.GetByID(parentID)
	if err != nil {
		return nil, "", err
	}
	if parent == nil {
		return nil, "", domain.ErrNotFound
	}
	for _, a := range parent.Ancestors {
		if a == categoryID {
			return nil, "", domain.ErrCategoryCycle
		}
	}
	ancestors := make([]string, 0, len(parent.Ancestors)+1)
	ancestors = append(ancestors, parent.Ancestors...)
	ancestors = append(ancestors, parent.ID)
	treeID := parent.TreeID
	if treeID == "" {
		treeID = parent.ID
	}
	return ancestors, treeID, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	ancestors := c.Ancestors
	if ancestors == nil {
		ancestors = []string{}
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		ParentID:  c.ParentID,
		Ancestors: ancestors,
		TreeID:    c.TreeID,
		Name:      c.Name,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
