package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// memCategoryRepo repositorio en memoria para los tests de jerarquía.
type memCategoryRepo struct {
	byID map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: map[string]*entity.Category{}}
}

func (m *memCategoryRepo) Create(c *entity.Category) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return m.byID[id], nil
}

func (m *memCategoryRepo) Update(c *entity.Category) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memCategoryRepo) ListByCompany(string, int, int) ([]*entity.Category, error) {
	return nil, nil
}

func (m *memCategoryRepo) ListByParent(_, parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.byID {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategoryRepo) Delete(id string) error {
	delete(m.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCategoryCreate_RaizSinAncestros(t *testing.T) {
	uc := NewCategoryUseCase(newMemCategoryRepo())

	out, err := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	assert.Empty(t, out.Ancestors)
	assert.Equal(t, out.ID, out.TreeID, "una raíz es su propio árbol")
	assert.Equal(t, entity.CategoryStatusActive, out.Status)
}

func TestCategoryCreate_HijaHeredaAncestros(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCategoryUseCase(repo)

	root, err := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Raíz"})
	require.NoError(t, err)
	child, err := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Hija", ParentID: root.ID})
	require.NoError(t, err)
	grandchild, err := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Nieta", ParentID: child.ID})
	require.NoError(t, err)

	assert.Equal(t, []string{root.ID}, child.Ancestors)
	assert.Equal(t, root.ID, child.TreeID)
	assert.Equal(t, []string{root.ID, child.ID}, grandchild.Ancestors, "los ancestros van de raíz a padre")
	assert.Equal(t, root.ID, grandchild.TreeID)
}

func TestCategoryCreate_PadreInexistente(t *testing.T) {
	uc := NewCategoryUseCase(newMemCategoryRepo())

	_, err := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Huérfana", ParentID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_ReubicarRecalculaAncestros(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCategoryUseCase(repo)

	rootA, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Árbol A"})
	rootB, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Árbol B"})
	child, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Hija", ParentID: rootA.ID})

	moved, err := uc.Update(child.ID, dto.UpdateCategoryRequest{ParentID: strPtr(rootB.ID)})
	require.NoError(t, err)

	assert.Equal(t, []string{rootB.ID}, moved.Ancestors)
	assert.Equal(t, rootB.ID, moved.TreeID, "al cambiar de padre cambia de árbol")
}

func TestCategoryUpdate_ReubicarPropagaADescendencia(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCategoryUseCase(repo)

	rootA, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Árbol A"})
	child, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Hija", ParentID: rootA.ID})
	grandchild, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Nieta", ParentID: child.ID})

	// Sacar la subcategoría de A y convertirla en raíz de su propio árbol.
	_, err := uc.Update(child.ID, dto.UpdateCategoryRequest{ParentID: strPtr("")})
	require.NoError(t, err)

	got, _ := repo.GetByID(grandchild.ID)
	assert.Equal(t, []string{child.ID}, got.Ancestors,
		"tras reubicar la hija bajo la raíz, A ya no es ancestro de la nieta")
	assert.NotContains(t, got.Ancestors, rootA.ID)
	assert.Equal(t, child.ID, got.TreeID, "la descendencia cambia al árbol nuevo")
}

func TestCategoryUpdate_ReubicarPropagaVariosNiveles(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCategoryUseCase(repo)

	rootA, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Árbol A"})
	rootB, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Árbol B"})
	child, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Hija", ParentID: rootA.ID})
	grandchild, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Nieta", ParentID: child.ID})
	greatgrand, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Bisnieta", ParentID: grandchild.ID})

	_, err := uc.Update(child.ID, dto.UpdateCategoryRequest{ParentID: strPtr(rootB.ID)})
	require.NoError(t, err)

	gotGrand, _ := repo.GetByID(grandchild.ID)
	assert.Equal(t, []string{rootB.ID, child.ID}, gotGrand.Ancestors)
	assert.Equal(t, rootB.ID, gotGrand.TreeID)

	gotGreat, _ := repo.GetByID(greatgrand.ID)
	assert.Equal(t, []string{rootB.ID, child.ID, grandchild.ID}, gotGreat.Ancestors)
	assert.Equal(t, rootB.ID, gotGreat.TreeID)
}

func TestCategoryUpdate_CicloDirecto(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCategoryUseCase(repo)

	root, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Raíz"})

	_, err := uc.Update(root.ID, dto.UpdateCategoryRequest{ParentID: strPtr(root.ID)})
	assert.ErrorIs(t, err, domain.ErrCategoryCycle, "una categoría no puede ser su propio padre")
}

func TestCategoryUpdate_CicloIndirecto(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCategoryUseCase(repo)

	root, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Raíz"})
	child, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Hija", ParentID: root.ID})

	// Colgar la raíz de su propia descendiente cerraría un ciclo.
	_, err := uc.Update(root.ID, dto.UpdateCategoryRequest{ParentID: strPtr(child.ID)})
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)
}

func TestCategoryDelete_ConHijasFalla(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCategoryUseCase(repo)

	root, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Raíz"})
	_, err := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Hija", ParentID: root.ID})
	require.NoError(t, err)

	err = uc.Delete(root.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategoryDelete_SinHijas(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCategoryUseCase(repo)

	root, _ := uc.Create("co-1", dto.CreateCategoryRequest{Name: "Raíz"})

	require.NoError(t, uc.Delete(root.ID))
	got, _ := repo.GetByID(root.ID)
	assert.Nil(t, got)
}

func TestCategoryDelete_NoExiste(t *testing.T) {
	uc := NewCategoryUseCase(newMemCategoryRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
