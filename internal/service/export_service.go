package service

// export_service.go
// CSV and PDF exports. CSV rows mirror the spreadsheet layout so a
// downloaded file and the mirrored sheet stay interchangeable.

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/infra"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/report"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
)

type ExportService interface {
	OrdersCSV(ctx context.Context) ([]byte, error)
	MenuCSV(ctx context.Context) ([]byte, error)
	StaffCSV(ctx context.Context) ([]byte, error)
	// SalesPDF renders the range summary to disk and returns the file path.
	SalesPDF(ctx context.Context, rng report.Range) (string, error)
}

type exportService struct {
	orderRepo   repository.OrderRepository
	menuRepo    repository.MenuRepository
	staffRepo   repository.StaffRepository
	reports     ReportService
	currency    string
	storagePath string
}

func NewExportService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	staffRepo repository.StaffRepository,
	reports ReportService,
	currency, storagePath string,
) ExportService {
	return &exportService{
		orderRepo:   orderRepo,
		menuRepo:    menuRepo,
		staffRepo:   staffRepo,
		reports:     reports,
		currency:    currency,
		storagePath: storagePath,
	}
}

func (s *exportService) OrdersCSV(ctx context.Context) ([]byte, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "created_at", "items", "total_amount", "payment_method", "status", "table_number"})
	for i := range orders {
		_ = w.Write(orderRow(&orders[i]))
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (s *exportService) MenuCSV(ctx context.Context) ([]byte, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"catalogue_number", "item_name", "price", "category"})
	for i := range items {
		_ = w.Write(menuItemRow(&items[i]))
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (s *exportService) StaffCSV(ctx context.Context) ([]byte, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "role", "salary", "contact_number", "joined"})
	for _, m := range staff {
		contact := ""
		if m.ContactNumber != nil {
			contact = *m.ContactNumber
		}
		_ = w.Write([]string{
			m.ID,
			m.Name,
			m.Role,
			m.Salary.StringFixed(2),
			contact,
			m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (s *exportService) SalesPDF(ctx context.Context, rng report.Range) (string, error) {
	summary, err := s.reports.Sales(ctx, rng)
	if err != nil {
		return "", err
	}
	shares, err := s.reports.CategoryBreakdown(ctx, rng)
	if err != nil {
		return "", err
	}
	return infra.GenerateSalesReportPDF(summary, shares, rng, s.currency, s.storagePath)
}
