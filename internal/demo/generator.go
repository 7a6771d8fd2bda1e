package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/shopspring/decimal"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

var fake = faker.New()

// Generator produces randomised demo records. A fixed seed yields a
// reproducible dataset, which keeps demo screenshots stable.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now().UTC(),
	}
}

var paymentMethods = []string{model.PaymentCash, model.PaymentCard, model.PaymentUPI, model.PaymentCredit}

// Orders generates n orders spread over the last `days` days. Item lines
// snapshot the catalogue price at generation time and the order total is
// the sum of line subtotals.
func (g *Generator) Orders(n, days int) []model.Order {
	catalogue := Catalogue()
	orders := make([]model.Order, 0, n)

	for i := 1; i <= n; i++ {
		orderID := fmt.Sprintf("ORDER-%04d", i)
		lineCount := g.rng.Intn(3) + 1

		items := make([]model.OrderItem, 0, lineCount)
		total := decimal.Zero
		for j := 0; j < lineCount; j++ {
			entry := catalogue[g.rng.Intn(len(catalogue))]
			qty := g.rng.Intn(3) + 1
			subtotal := entry.Price.Mul(decimal.NewFromInt(int64(qty)))
			items = append(items, model.OrderItem{
				ID:              uuid.New(),
				OrderID:         orderID,
				CatalogueNumber: entry.CatalogueNumber,
				ItemName:        entry.ItemName,
				Category:        entry.Category,
				Price:           entry.Price,
				Quantity:        qty,
				Subtotal:        subtotal,
			})
			total = total.Add(subtotal)
		}

		status := model.OrderCompleted
		switch r := g.rng.Float64(); {
		case r > 0.95:
			status = model.OrderCancelled
		case r > 0.85:
			status = model.OrderDraft
		}

		table := g.rng.Intn(10) + 1
		var customer *string
		if g.rng.Float64() < 0.3 {
			name := fake.Person().Name()
			customer = &name
		}

		orders = append(orders, model.Order{
			ID:            orderID,
			Items:         items,
			TotalAmount:   total,
			PaymentMethod: paymentMethods[g.rng.Intn(len(paymentMethods))],
			Status:        status,
			CustomerName:  customer,
			TableNumber:   &table,
			CreatedAt:     g.randomInstant(days),
		})
	}
	return orders
}

// Expenses generates n expenses drawn from the standing category taxonomy.
func (g *Generator) Expenses(n, days int) []model.Expense {
	categories := model.ExpenseCategories()
	payers := []string{"Owner", "Manager"}

	expenses := make([]model.Expense, 0, n)
	for i := 1; i <= n; i++ {
		cat := categories[g.rng.Intn(len(categories))]
		sub := cat.SubCategories[g.rng.Intn(len(cat.SubCategories))]
		amount := decimal.NewFromInt(int64(g.rng.Intn(49)+1) * 100)

		expenses = append(expenses, model.Expense{
			ID:          fmt.Sprintf("EXP-%04d", i),
			Category:    cat.Name,
			SubCategory: sub,
			Amount:      amount,
			Description: fmt.Sprintf("%s - %s", sub, fake.Lorem().Sentence(4)),
			Date:        g.randomInstant(days),
			PaidBy:      payers[g.rng.Intn(len(payers))],
		})
	}
	return expenses
}

// Attendance generates one record per staff member per day for the last
// `days` days, roughly 80% present, 10% half-day, 10% absent.
func (g *Generator) Attendance(days int) []model.Attendance {
	var records []model.Attendance

	for i := 0; i < days; i++ {
		day := g.now.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")

		for _, staff := range Roster() {
			status := model.AttendancePresent
			switch r := g.rng.Float64(); {
			case r >= 0.9:
				status = model.AttendanceAbsent
			case r > 0.8:
				status = model.AttendanceHalfDay
			}

			clockIn := time.Date(day.Year(), day.Month(), day.Day(),
				9+g.rng.Intn(2), g.rng.Intn(60), 0, 0, time.UTC)

			var clockOut *time.Time
			if status != model.AttendanceAbsent {
				outHour := 18 + g.rng.Intn(3)
				if status == model.AttendanceHalfDay {
					outHour = 14 + g.rng.Intn(2)
				}
				out := time.Date(day.Year(), day.Month(), day.Day(),
					outHour, g.rng.Intn(60), 0, 0, time.UTC)
				clockOut = &out
			}

			records = append(records, model.Attendance{
				ID:        fmt.Sprintf("ATT-%s-%s", date, staff.ID),
				StaffID:   staff.ID,
				StaffName: staff.Name,
				ClockIn:   clockIn,
				ClockOut:  clockOut,
				Date:      date,
				Status:    status,
			})
		}
	}
	return records
}

// randomInstant picks a moment within the last `days` days.
func (g *Generator) randomInstant(days int) time.Time {
	window := time.Duration(days) * 24 * time.Hour
	return g.now.Add(-time.Duration(g.rng.Int63n(int64(window))))
}
