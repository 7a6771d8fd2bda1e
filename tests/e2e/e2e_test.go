//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests for Oasis Eats using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   1. Full order cycle (login → menu upsert → order → list → report)
//   2. Price snapshot immunity (menu edit never rewrites an order total)
//   3. Attendance cycle (clock-in, duplicate rejected, clock-out)
//   4. Cancelled orders excluded from the sales summary
//   5. Expense append + fixed category taxonomy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/config"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/infra"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/router"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	engine *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	// Start Postgres container
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("oasis_test"),
		tcPostgres.WithUsername("oasis"),
		tcPostgres.WithPassword("oasis"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Start Redis container
	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		SheetsBridgeURL:    "http://localhost:9999", // no bridge in e2e; pushes stay pending
		SpreadsheetID:      "e2e-sheet",
		WorkerPoolSize:     1,
		Currency:           "Rs.",
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed admin through the service so the bcrypt hash is real
	authSvc := service.NewAuthService(repository.NewUserRepository(db), cfg)
	_, err = authSvc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "admin@e2e.test",
		Name:     "Admin E2E",
		Password: "oasiseats2026",
		Role:     "admin",
	})
	require.NoError(t, err)

	sheetsCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	r := router.New(cfg, db, rdb, sheetsCB)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin@e2e.test", "password": "oasiseats2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server: srv,
		token:  loginBody.AccessToken,
		engine: r,
	}
}

func seedMenuItem(t *testing.T, env *testEnv, number int, name string, price float64, category string) {
	t.Helper()
	resp := do(t, env.server, "PUT", "/v1/menu",
		jsonBody(t, map[string]any{
			"catalogue_number": number,
			"item_name":        name,
			"price":            price,
			"category":         category,
		}), env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullOrderCycle(t *testing.T) {
	env := setupTestEnv(t)

	seedMenuItem(t, env, 1, "Chicken Biryani Full", 180, "Biryanis")
	seedMenuItem(t, env, 2, "Butter Naan", 25, "Breads")

	orderResp := do(t, env.server, "POST", "/v1/orders",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"catalogue_number": 1, "quantity": 2},
				{"catalogue_number": 2, "quantity": 4},
			},
			"payment_method": "Cash",
			"table_number":   4,
		}), env.token)
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var order struct {
		ID          string `json:"id"`
		TotalAmount string `json:"total_amount"`
		Status      string `json:"status"`
	}
	decodeJSON(t, orderResp, &order)
	assert.Equal(t, "ORDER-0001", order.ID)
	assert.Equal(t, "460", order.TotalAmount) // 2*180 + 4*25
	assert.Equal(t, "Completed", order.Status)

	getResp := do(t, env.server, "GET", "/v1/orders/"+order.ID, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	getResp.Body.Close()

	listResp := do(t, env.server, "GET",
		fmt.Sprintf("/v1/orders?date=%s", time.Now().UTC().Format("2006-01-02")), nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Total int `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.Equal(t, 1, list.Total)

	today := time.Now().UTC().Format("2006-01-02")
	reportResp := do(t, env.server, "GET", "/v1/reports/daily-sales?from="+today, nil, env.token)
	require.Equal(t, http.StatusOK, reportResp.StatusCode)
	var days []struct {
		Date       string `json:"date"`
		OrderCount int    `json:"order_count"`
	}
	decodeJSON(t, reportResp, &days)
	require.Len(t, days, 1)
	assert.Equal(t, today, days[0].Date)
	assert.Equal(t, 1, days[0].OrderCount)
}

func TestE2E_PriceSnapshotImmunity(t *testing.T) {
	env := setupTestEnv(t)

	seedMenuItem(t, env, 1, "Veg Fried Rice", 110, "Rice")

	orderResp := do(t, env.server, "POST", "/v1/orders",
		jsonBody(t, map[string]any{
			"items":          []map[string]any{{"catalogue_number": 1, "quantity": 2}},
			"payment_method": "UPI",
		}), env.token)
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var order struct {
		ID          string `json:"id"`
		TotalAmount string `json:"total_amount"`
	}
	decodeJSON(t, orderResp, &order)
	require.Equal(t, "220", order.TotalAmount)

	// Double the price; the stored order must keep its captured total.
	seedMenuItem(t, env, 1, "Veg Fried Rice", 220, "Rice")

	getResp := do(t, env.server, "GET", "/v1/orders/"+order.ID, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var fetched struct {
		TotalAmount string `json:"total_amount"`
		Items       []struct {
			Price string `json:"price"`
		} `json:"items"`
	}
	decodeJSON(t, getResp, &fetched)
	assert.Equal(t, "220", fetched.TotalAmount)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "110", fetched.Items[0].Price)
}

func TestE2E_AttendanceCycle(t *testing.T) {
	env := setupTestEnv(t)

	staffResp := do(t, env.server, "POST", "/v1/staff",
		jsonBody(t, map[string]any{
			"name":   "Rajesh Kumar",
			"role":   "Cook",
			"salary": 18000,
		}), env.token)
	require.Equal(t, http.StatusCreated, staffResp.StatusCode)
	var staff struct {
		ID string `json:"id"`
	}
	decodeJSON(t, staffResp, &staff)
	require.Equal(t, "STAFF-001", staff.ID)

	inResp := do(t, env.server, "POST", "/v1/attendance/clock-in",
		jsonBody(t, map[string]any{"staff_id": staff.ID}), env.token)
	require.Equal(t, http.StatusCreated, inResp.StatusCode)
	var att struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, inResp, &att)
	assert.Equal(t, "Present", att.Status)

	// Second clock-in on the same day is rejected
	dupResp := do(t, env.server, "POST", "/v1/attendance/clock-in",
		jsonBody(t, map[string]any{"staff_id": staff.ID}), env.token)
	assert.Equal(t, http.StatusConflict, dupResp.StatusCode)
	dupResp.Body.Close()

	outResp := do(t, env.server, "PATCH", "/v1/attendance/"+staff.ID+"/clock-out", nil, env.token)
	require.Equal(t, http.StatusOK, outResp.StatusCode)
	var out struct {
		ClockOut string `json:"clock_out"`
	}
	decodeJSON(t, outResp, &out)
	assert.NotEmpty(t, out.ClockOut)

	today := time.Now().UTC().Format("2006-01-02")
	repResp := do(t, env.server, "GET", "/v1/reports/attendance?from="+today, nil, env.token)
	require.Equal(t, http.StatusOK, repResp.StatusCode)
	var rows []struct {
		StaffID     string `json:"staff_id"`
		DaysPresent int    `json:"days_present"`
	}
	decodeJSON(t, repResp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, staff.ID, rows[0].StaffID)
	assert.Equal(t, 1, rows[0].DaysPresent)
}

func TestE2E_CancelledOrderExcludedFromSales(t *testing.T) {
	env := setupTestEnv(t)

	seedMenuItem(t, env, 1, "Chicken 65", 140, "Starters")

	mkOrder := func() string {
		resp := do(t, env.server, "POST", "/v1/orders",
			jsonBody(t, map[string]any{
				"items":          []map[string]any{{"catalogue_number": 1, "quantity": 1}},
				"payment_method": "Cash",
			}), env.token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var o struct {
			ID string `json:"id"`
		}
		decodeJSON(t, resp, &o)
		return o.ID
	}

	keep := mkOrder()
	cancel := mkOrder()
	_ = keep

	delResp := do(t, env.server, "DELETE", "/v1/orders/"+cancel, nil, env.token)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	// Cancelling twice is a conflict
	againResp := do(t, env.server, "DELETE", "/v1/orders/"+cancel, nil, env.token)
	assert.Equal(t, http.StatusConflict, againResp.StatusCode)
	againResp.Body.Close()

	today := time.Now().UTC().Format("2006-01-02")
	sumResp := do(t, env.server, "GET", "/v1/reports/sales?from="+today, nil, env.token)
	require.Equal(t, http.StatusOK, sumResp.StatusCode)
	var summary struct {
		OrderCount int    `json:"order_count"`
		TotalSales string `json:"total_sales"`
	}
	decodeJSON(t, sumResp, &summary)
	assert.Equal(t, 1, summary.OrderCount)
	assert.Equal(t, "140", summary.TotalSales)
}

func TestE2E_ExpensesAndCategories(t *testing.T) {
	env := setupTestEnv(t)

	catResp := do(t, env.server, "GET", "/v1/expenses/categories", nil, env.token)
	require.Equal(t, http.StatusOK, catResp.StatusCode)
	var cats []struct {
		Name          string   `json:"name"`
		SubCategories []string `json:"sub_categories"`
	}
	decodeJSON(t, catResp, &cats)
	require.Len(t, cats, 6)
	assert.Equal(t, "Ingredients", cats[0].Name)

	expResp := do(t, env.server, "POST", "/v1/expenses",
		jsonBody(t, map[string]any{
			"category":     "Ingredients",
			"sub_category": "Vegetables",
			"amount":       1250.50,
			"description":  "weekly vegetable purchase",
			"paid_by":      "Admin E2E",
			"date":         time.Now().UTC().Format(time.RFC3339),
		}), env.token)
	require.Equal(t, http.StatusCreated, expResp.StatusCode)
	var exp struct {
		ID string `json:"id"`
	}
	decodeJSON(t, expResp, &exp)
	assert.Equal(t, "EXP-0001", exp.ID)

	listResp := do(t, env.server, "GET", "/v1/expenses?category=Ingredients", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Total int `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.Equal(t, 1, list.Total)
}
