package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/worker"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuService interface {
	List(ctx context.Context) ([]dto.MenuItemResponse, error)
	Get(ctx context.Context, catalogueNumber int) (*dto.MenuItemResponse, error)
	// Upsert creates or replaces the item with the given catalogue number.
	Upsert(ctx context.Context, req dto.UpsertMenuItemRequest) (*dto.MenuItemResponse, error)
	Delete(ctx context.Context, catalogueNumber int) error
}

type menuService struct {
	repo   repository.MenuRepository
	outbox *sheetsOutbox
}

func NewMenuService(repo repository.MenuRepository, pushRepo repository.SheetPushRepository, dispatcher *worker.Dispatcher) MenuService {
	return &menuService{repo: repo, outbox: newSheetsOutbox(pushRepo, dispatcher)}
}

func (s *menuService) List(ctx context.Context) ([]dto.MenuItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MenuItemResponse, len(items))
	for i := range items {
		resp[i] = menuItemToResponse(&items[i])
	}
	return resp, nil
}

func (s *menuService) Get(ctx context.Context, catalogueNumber int) (*dto.MenuItemResponse, error) {
	item, err := s.repo.FindByNumber(ctx, catalogueNumber)
	if err != nil {
		return nil, ErrMenuItemNotFound
	}
	resp := menuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) Upsert(ctx context.Context, req dto.UpsertMenuItemRequest) (*dto.MenuItemResponse, error) {
	item := &model.MenuItem{
		CatalogueNumber: req.CatalogueNumber,
		ItemName:        req.ItemName,
		Price:           req.Price,
		Category:        req.Category,
	}
	if err := s.repo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	s.outbox.mirror(ctx, SheetMenuItems, "update", strconv.Itoa(item.CatalogueNumber), menuItemRow(item))

	resp := menuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) Delete(ctx context.Context, catalogueNumber int) error {
	if _, err := s.repo.FindByNumber(ctx, catalogueNumber); err != nil {
		return ErrMenuItemNotFound
	}
	if err := s.repo.Delete(ctx, catalogueNumber); err != nil {
		return err
	}
	s.outbox.mirror(ctx, SheetMenuItems, "delete", strconv.Itoa(catalogueNumber), nil)
	return nil
}

func menuItemRow(m *model.MenuItem) []string {
	return []string{
		strconv.Itoa(m.CatalogueNumber),
		m.ItemName,
		m.Price.StringFixed(2),
		m.Category,
	}
}

func menuItemToResponse(m *model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		CatalogueNumber: m.CatalogueNumber,
		ItemName:        m.ItemName,
		Price:           m.Price,
		Category:        m.Category,
	}
}
