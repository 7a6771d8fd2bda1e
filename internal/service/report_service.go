package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/report"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
)

// Daily-sales responses change only when orders are written, so a short TTL
// keeps the dashboard snappy without a real invalidation protocol.
const reportCacheTTL = 5 * time.Minute

type ReportService interface {
	DailySales(ctx context.Context, rng report.Range) ([]report.DailySales, error)
	CategoryBreakdown(ctx context.Context, rng report.Range) ([]report.CategoryShare, error)
	Sales(ctx context.Context, rng report.Range) (*report.SalesSummary, error)
	ItemSales(ctx context.Context, rng report.Range) ([]report.ItemSale, error)
	Attendance(ctx context.Context, rng report.Range) ([]report.StaffAttendance, error)
	RoleDistribution(ctx context.Context) ([]report.RoleCount, error)
}

type reportService struct {
	orderRepo      repository.OrderRepository
	menuRepo       repository.MenuRepository
	staffRepo      repository.StaffRepository
	attendanceRepo repository.AttendanceRepository
	rdb            *redis.Client
}

func NewReportService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	staffRepo repository.StaffRepository,
	attendanceRepo repository.AttendanceRepository,
	rdb *redis.Client,
) ReportService {
	return &reportService{
		orderRepo:      orderRepo,
		menuRepo:       menuRepo,
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		rdb:            rdb,
	}
}

// DailySales returns per-day totals and category buckets for the range.
// Results are cached in Redis; a miss or Redis outage recomputes from the DB.
func (s *reportService) DailySales(ctx context.Context, rng report.Range) ([]report.DailySales, error) {
	cacheKey := fmt.Sprintf("report:daily:%s:%s",
		rng.From.Format(report.DateLayout), rng.To.Format(report.DateLayout))

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var daily []report.DailySales
			if jsonErr := json.Unmarshal(cached, &daily); jsonErr == nil {
				return daily, nil
			}
		}
	}

	orders, err := s.ordersInRange(ctx, rng)
	if err != nil {
		return nil, err
	}
	daily := report.Daily(orders)

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, err := json.Marshal(daily); err == nil {
			if err := s.rdb.Set(context.Background(), cacheKey, b, reportCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Str("key", cacheKey).Msg("report cache set failed")
			}
		}
	}
	return daily, nil
}

func (s *reportService) CategoryBreakdown(ctx context.Context, rng report.Range) ([]report.CategoryShare, error) {
	orders, err := s.ordersInRange(ctx, rng)
	if err != nil {
		return nil, err
	}
	return report.CategoryBreakdown(report.Daily(orders)), nil
}

func (s *reportService) Sales(ctx context.Context, rng report.Range) (*report.SalesSummary, error) {
	orders, err := s.salesOrders(ctx)
	if err != nil {
		return nil, err
	}
	summary := report.Sales(orders, rng)
	return &summary, nil
}

func (s *reportService) ItemSales(ctx context.Context, rng report.Range) ([]report.ItemSale, error) {
	catalog, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.salesOrders(ctx)
	if err != nil {
		return nil, err
	}
	return report.ItemSales(catalog, orders, rng), nil
}

func (s *reportService) Attendance(ctx context.Context, rng report.Range) ([]report.StaffAttendance, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.AttendanceStats(staff, records, rng), nil
}

func (s *reportService) RoleDistribution(ctx context.Context) ([]report.RoleCount, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.RoleDistribution(staff), nil
}

// salesOrders returns every order that counts toward revenue. Cancelled
// orders keep their rows in the store but never reach the aggregation
// functions.
func (s *reportService) salesOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := orders[:0:0]
	for _, o := range orders {
		if o.Status != model.OrderCancelled {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *reportService) ordersInRange(ctx context.Context, rng report.Range) ([]model.Order, error) {
	orders, err := s.salesOrders(ctx)
	if err != nil {
		return nil, err
	}
	filtered := orders[:0:0]
	for _, o := range orders {
		if rng.Contains(o.CreatedAt) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}
