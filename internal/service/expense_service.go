package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/worker"
)

type ExpenseService interface {
	// Create records an immutable expense. There is no update or delete.
	Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	List(ctx context.Context, filter dto.ExpenseFilter) (*dto.ExpenseListResponse, error)
	Categories() []model.ExpenseCategory
}

type expenseService struct {
	repo   repository.ExpenseRepository
	outbox *sheetsOutbox
}

func NewExpenseService(repo repository.ExpenseRepository, pushRepo repository.SheetPushRepository, dispatcher *worker.Dispatcher) ExpenseService {
	return &expenseService{repo: repo, outbox: newSheetsOutbox(pushRepo, dispatcher)}
}

func (s *expenseService) Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	num, err := s.repo.NextExpenseNumber(ctx)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		ID:          fmt.Sprintf("EXP-%04d", num),
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date.UTC(),
		PaidBy:      req.PaidBy,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.outbox.mirror(ctx, SheetExpenses, "append", expense.ID, expenseRow(expense))

	resp := expenseToResponse(expense)
	return &resp, nil
}

func (s *expenseService) List(ctx context.Context, filter dto.ExpenseFilter) (*dto.ExpenseListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	expenses, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		data = append(data, expenseToResponse(&expenses[i]))
	}
	return &dto.ExpenseListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Categories returns the fixed expense taxonomy offered by the entry form.
func (s *expenseService) Categories() []model.ExpenseCategory {
	return model.ExpenseCategories()
}

func expenseRow(e *model.Expense) []string {
	return []string{
		e.ID,
		e.Date.UTC().Format(time.RFC3339),
		e.Category,
		e.SubCategory,
		e.Amount.StringFixed(2),
		e.Description,
		e.PaidBy,
	}
}

func expenseToResponse(e *model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		SubCategory: e.SubCategory,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date.UTC().Format(time.RFC3339),
		PaidBy:      e.PaidBy,
	}
}
