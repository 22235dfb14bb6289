package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso CRUD para gastos personales.
// Todos los accesos verifican que el gasto pertenezca al usuario autenticado.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto del usuario.
func (uc *ExpenseUseCase) Create(companyID, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		UserID:    userID,
		Concept:   in.Concept,
		Amount:    in.Amount,
		Category:  in.Category,
		Date:      date,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto si pertenece al usuario.
func (uc *ExpenseUseCase) GetByID(userID, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if expense.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return toExpenseResponse(expense), nil
}

// Update actualiza un gasto del usuario.
func (uc *ExpenseUseCase) Update(userID, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if expense.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if in.Concept != nil {
		expense.Concept = *in.Concept
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	if in.Notes != nil {
		expense.Notes = *in.Notes
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista los gastos del usuario con paginación.
func (uc *ExpenseUseCase) List(userID string, limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un gasto del usuario.
func (uc *ExpenseUseCase) Delete(userID, id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	if expense.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Concept:   e.Concept,
		Amount:    e.Amount,
		Category:  e.Category,
		Date:      e.Date,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
