package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/worker"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotCancelable = errors.New("order is already cancelled")
)

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, id string) (*dto.OrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error)
	// Complete promotes a draft to Completed without touching its lines.
	Complete(ctx context.Context, id string) (*dto.OrderResponse, error)
	Cancel(ctx context.Context, id string) error
}

type orderService struct {
	repo     repository.OrderRepository
	menuRepo repository.MenuRepository
	outbox   *sheetsOutbox
}

func NewOrderService(repo repository.OrderRepository, menuRepo repository.MenuRepository, pushRepo repository.SheetPushRepository, dispatcher *worker.Dispatcher) OrderService {
	return &orderService{
		repo:     repo,
		menuRepo: menuRepo,
		outbox:   newSheetsOutbox(pushRepo, dispatcher),
	}
}

// ── Create ────────────────────────────────────────────────────────────────────
// Resolves each line against the catalog, snapshots name/category/price into
// the order item, and sets the order total to the sum of line subtotals.
// Later catalog edits never change what this order charged.

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	num, err := s.repo.NextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}
	orderID := fmt.Sprintf("ORDER-%04d", num)

	var items []model.OrderItem
	total := decimal.Zero
	for _, line := range req.Items {
		entry, err := s.menuRepo.FindByNumber(ctx, line.CatalogueNumber)
		if err != nil {
			return nil, fmt.Errorf("menu item %d not found", line.CatalogueNumber)
		}
		subtotal := entry.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, model.OrderItem{
			OrderID:         orderID,
			CatalogueNumber: entry.CatalogueNumber,
			ItemName:        entry.ItemName,
			Category:        entry.Category,
			Price:           entry.Price,
			Quantity:        line.Quantity,
			Subtotal:        subtotal,
		})
		total = total.Add(subtotal)
	}

	status := req.Status
	if status == "" {
		status = model.OrderCompleted
	}

	order := &model.Order{
		ID:            orderID,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		CustomerName:  req.CustomerName,
		TableNumber:   req.TableNumber,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.outbox.mirror(ctx, SheetOrders, "append", order.ID, orderRow(order))

	return orderToResponse(order), nil
}

func (s *orderService) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return orderToResponse(order), nil
}

// List returns a paginated order list filtered by date and status.
func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, *orderToResponse(&orders[i]))
	}
	return &dto.OrderListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *orderService) Complete(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == model.OrderCancelled {
		return nil, ErrOrderNotCancelable
	}
	if order.Status != model.OrderCompleted {
		if err := s.repo.UpdateStatus(ctx, id, model.OrderCompleted); err != nil {
			return nil, err
		}
		order.Status = model.OrderCompleted
		s.outbox.mirror(ctx, SheetOrders, "update", order.ID, orderRow(order))
	}
	return orderToResponse(order), nil
}

// Cancel marks the order cancelled. The record and its lines stay in the
// store; nothing is deleted.
func (s *orderService) Cancel(ctx context.Context, id string) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrOrderNotFound
	}
	if order.Status == model.OrderCancelled {
		return ErrOrderNotCancelable
	}
	if err := s.repo.UpdateStatus(ctx, id, model.OrderCancelled); err != nil {
		return err
	}
	order.Status = model.OrderCancelled
	s.outbox.mirror(ctx, SheetOrders, "update", order.ID, orderRow(order))
	return nil
}

// orderRow flattens an order into the spreadsheet row layout:
// id, date, items summary, total, payment method, status.
func orderRow(o *model.Order) []string {
	summary := ""
	for i, item := range o.Items {
		if i > 0 {
			summary += "; "
		}
		summary += fmt.Sprintf("%s x%d", item.ItemName, item.Quantity)
	}
	table := ""
	if o.TableNumber != nil {
		table = strconv.Itoa(*o.TableNumber)
	}
	return []string{
		o.ID,
		o.CreatedAt.UTC().Format(time.RFC3339),
		summary,
		o.TotalAmount.StringFixed(2),
		o.PaymentMethod,
		o.Status,
		table,
	}
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			CatalogueNumber: item.CatalogueNumber,
			ItemName:        item.ItemName,
			Category:        item.Category,
			Price:           item.Price,
			Quantity:        item.Quantity,
			Subtotal:        item.Subtotal,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		CustomerName:  o.CustomerName,
		TableNumber:   o.TableNumber,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
	}
}
