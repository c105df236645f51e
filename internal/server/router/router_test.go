package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/metrics"
	"github.com/mamadbah2/finca/internal/repository/memory"
	"github.com/mamadbah2/finca/internal/seed"
	"github.com/mamadbah2/finca/internal/service/farm"
)

var routerNow = time.Date(2026, time.June, 20, 12, 0, 0, 0, time.UTC)

type stubDigester struct {
	err error
}

func (d stubDigester) BuildDigest(_ context.Context, now time.Time) (models.DashboardDigest, error) {
	return models.DashboardDigest{Date: now, Summary: "Resumen"}, nil
}

func (d stubDigester) Run(ctx context.Context, now time.Time) (models.DashboardDigest, error) {
	digest, _ := d.BuildDigest(ctx, now)
	return digest, d.err
}

type stubArchive struct {
	digest *models.DashboardDigest
	err    error
}

func (a stubArchive) LatestDigest(context.Context) (*models.DashboardDigest, error) {
	return a.digest, a.err
}

func newTestRouter(t *testing.T, deps Deps) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc, err := farm.New(farm.Options{
		Seed:      seed.Dataset(),
		IDs:       func(name memory.StoreName) memory.IDFunc { return memory.Sequence(string(name)) },
		Now:       func() time.Time { return routerNow },
		CacheSize: 32,
		Metrics:   metrics.New(reg),
	})
	require.NoError(t, err)
	deps.Farm = svc
	deps.Now = func() time.Time { return routerNow }
	if deps.Gatherer == nil {
		deps.Gatherer = reg
	}
	return New(deps, nil)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[V any](t *testing.T, rec *httptest.ResponseRecorder) V {
	t.Helper()
	var v V
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const saleBody = `{
	"date": "2026-06-19",
	"invoiceNumber": "FV-0100",
	"moduleSource": "pecuario",
	"product": "Queso campesino",
	"quantity": "150",
	"unit": "kg",
	"unitPrice": "8000",
	"buyerName": "Tienda La Esquina",
	"paymentMethod": "cash",
	"paymentStatus": "paid"
}`

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t, Deps{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListAndGetRecords(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := do(t, h, http.MethodGet, "/api/v1/lotes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Items []models.Lote `json:"items"`
		Count int           `json:"count"`
	}](t, rec)
	assert.Equal(t, 4, list.Count)
	assert.Equal(t, "LT-001", list.Items[0].Code)

	rec = do(t, h, http.MethodGet, "/api/v1/livestock/animal-001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "BOV-001", decode[models.Livestock](t, rec).Tag)

	rec = do(t, h, http.MethodGet, "/api/v1/potreros/potrero-404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSaleAndReadDashboard(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := do(t, h, http.MethodGet, "/api/v1/dashboard/finanzas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	before := decode[models.DashboardStats](t, rec)
	require.NotNil(t, before.Finanzas)

	rec = do(t, h, http.MethodPost, "/api/v1/sales", saleBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sale := decode[models.SaleRecord](t, rec)
	assert.Equal(t, "sales-1", sale.ID)
	assert.Equal(t, 1200000.0, sale.TotalAmount)

	rec = do(t, h, http.MethodGet, "/api/v1/dashboard/finanzas", "")
	after := decode[models.DashboardStats](t, rec)
	assert.Equal(t, before.Finanzas.TotalIncome+1200000, after.Finanzas.TotalIncome)

	rec = do(t, h, http.MethodPost, "/api/v1/sales", saleBody)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/sales/"+sale.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorStatuses(t *testing.T) {
	h := newTestRouter(t, Deps{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"malformed body", http.MethodPost, "/api/v1/sales", `{"quantity": 150}`, http.StatusBadRequest},
		{"failed validation", http.MethodPost, "/api/v1/lotes", `{"code":"LT-9","name":"X","area":"1","status":"flooded"}`, http.StatusBadRequest},
		{"unknown parent", http.MethodPost, "/api/v1/health-records", `{"livestockId":"animal-404","date":"2026-06-01","type":"checkup","description":"x"}`, http.StatusUnprocessableEntity},
		{"referenced delete", http.MethodDelete, "/api/v1/lotes/lote-001", "", http.StatusUnprocessableEntity},
		{"missing update", http.MethodPut, "/api/v1/budgets/budget-404", `{"category":"feed","budgeted":"1","periodStart":"2027-01-01","periodEnd":"2027-01-31"}`, http.StatusNotFound},
		{"unknown module", http.MethodGet, "/api/v1/dashboard/apicultura", "", http.StatusBadRequest},
		{"unknown distribution", http.MethodGet, "/api/v1/distributions/by_weather", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestAggregateRoutes(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := do(t, h, http.MethodGet, "/api/v1/budgets/comparison", "")
	require.Equal(t, http.StatusOK, rec.Code)
	budgets := decode[[]models.BudgetComparison](t, rec)
	require.Len(t, budgets, 4)
	assert.Equal(t, models.ExpenseFeed, budgets[0].Category)

	rec = do(t, h, http.MethodGet, "/api/v1/distributions/crop_area", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "LT-002", decode[[]models.DistributionSlice](t, rec)[0].Key)

	rec = do(t, h, http.MethodGet, "/api/v1/series/pecuario", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.MonthlyPoint](t, rec), 3)

	rec = do(t, h, http.MethodGet, "/api/v1/accounts/receivable", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.AccountOverdue, decode[[]models.AccountEntry](t, rec)[0].Status)

	rec = do(t, h, http.MethodGet, "/api/v1/accounts/payable", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.AccountEntry](t, rec), 2)
}

func TestDigestRoutes(t *testing.T) {
	h := newTestRouter(t, Deps{})
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/v1/digest", "").Code)

	h = newTestRouter(t, Deps{Digester: stubDigester{}})
	rec := do(t, h, http.MethodGet, "/api/v1/digest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Resumen", decode[models.DashboardDigest](t, rec).Summary)
	assert.Equal(t, http.StatusAccepted, do(t, h, http.MethodPost, "/api/v1/digest", "").Code)

	h = newTestRouter(t, Deps{Digester: stubDigester{err: errors.New("sheets: quota exceeded")}})
	rec = do(t, h, http.MethodPost, "/api/v1/digest", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "quota exceeded")
}

func TestMetricsExposeStoreMutations(t *testing.T) {
	h := newTestRouter(t, Deps{})
	do(t, h, http.MethodPost, "/api/v1/sales", saleBody)
	do(t, h, http.MethodGet, "/api/v1/dashboard/agro", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `finca_store_mutations_total{op="create",outcome="ok",store="sales"} 1`)
	assert.Contains(t, body, `finca_aggregate_recomputes_total{view="dashboard.agro"} 1`)
}

func TestLatestDigestRoute(t *testing.T) {
	h := newTestRouter(t, Deps{})
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/v1/digest/latest", "").Code)

	archived := &models.DashboardDigest{Date: time.Date(2026, time.June, 19, 0, 0, 0, 0, time.UTC), Summary: "Resumen del 19"}
	h = newTestRouter(t, Deps{Archive: stubArchive{digest: archived}})
	rec := do(t, h, http.MethodGet, "/api/v1/digest/latest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Resumen del 19", decode[models.DashboardDigest](t, rec).Summary)

	h = newTestRouter(t, Deps{Archive: stubArchive{}})
	rec = do(t, h, http.MethodGet, "/api/v1/digest/latest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h = newTestRouter(t, Deps{Archive: stubArchive{err: errors.New("mongo: connection refused")}})
	rec = do(t, h, http.MethodGet, "/api/v1/digest/latest", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
