package farm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
	"github.com/mamadbah2/finca/internal/seed"
)

var testNow = time.Date(2026, time.June, 20, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(Options{
		Seed:      seed.Dataset(),
		IDs:       func(name memory.StoreName) memory.IDFunc { return memory.Sequence(string(name)) },
		Now:       func() time.Time { return testNow },
		CacheSize: 64,
	})
	require.NoError(t, err)
	return svc
}

func finanzas(t *testing.T, svc *Service) models.FinanzasStats {
	t.Helper()
	stats, err := svc.DashboardStats(models.ModuleFinanzas)
	require.NoError(t, err)
	require.NotNil(t, stats.Finanzas)
	return *stats.Finanzas
}

func cheeseSale() models.SaleForm {
	return models.SaleForm{
		Date:          "2026-06-19",
		InvoiceNumber: "FV-0100",
		ModuleSource:  "pecuario",
		Product:       "Queso campesino",
		Quantity:      "150",
		Unit:          "kg",
		UnitPrice:     "8000",
		BuyerName:     "Tienda La Esquina",
		PaymentMethod: "cash",
		PaymentStatus: "paid",
	}
}

func TestSaleMutationsMoveIncomeTotals(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	before := finanzas(t, svc)
	assert.Equal(t, 22076000.0, before.TotalIncome)

	sale, err := svc.Sales.Create(ctx, cheeseSale())
	require.NoError(t, err)
	assert.Equal(t, "sales-1", sale.ID)
	assert.Equal(t, 1200000.0, sale.TotalAmount)
	assert.Equal(t, testNow, sale.CreatedAt)

	after := finanzas(t, svc)
	assert.Equal(t, before.TotalIncome+1200000, after.TotalIncome)
	assert.Equal(t, before.MonthlyIncome+1200000, after.MonthlyIncome)
	assert.Equal(t, before.AccountsReceivable, after.AccountsReceivable)

	listed, err := svc.Sales.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sales-1", listed[0].ID, "most recently touched sale first")

	require.NoError(t, svc.Sales.Delete(ctx, sale.ID))
	assert.Equal(t, before, finanzas(t, svc))
}

func TestDuplicateInvoiceIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	form := cheeseSale()
	form.InvoiceNumber = "fv-0001"
	_, err := svc.Sales.Create(ctx, form)
	assert.ErrorIs(t, err, models.ErrDuplicateKey)

	n, err := svc.Sales.List(ctx)
	require.NoError(t, err)
	assert.Len(t, n, 6)
	assert.Equal(t, 22076000.0, finanzas(t, svc).TotalIncome)
}

func TestUpdateWithSameFormIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	before, err := svc.Lotes.Get(ctx, "lote-001")
	require.NoError(t, err)

	form := models.LoteForm{
		Code:           "LT-001",
		Name:           "Lote Norte",
		Area:           "5.5",
		Status:         "active",
		IrrigationType: "drip",
		SoilType:       "franco arcilloso",
	}
	first, err := svc.Lotes.Update(ctx, "lote-001", form)
	require.NoError(t, err)
	second, err := svc.Lotes.Update(ctx, "lote-001", form)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before.CreatedAt, second.CreatedAt)
	assert.Equal(t, testNow, second.UpdatedAt)
	second.UpdatedAt = before.UpdatedAt
	assert.Equal(t, before, second)
}

func TestUpdatePaymentSettlesReceivable(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AccountsReceivable()
	require.NoError(t, err)

	_, err = svc.Sales.Update(ctx, "sale-002", models.SaleForm{
		Date:          "2026-05-05",
		InvoiceNumber: "FV-0002",
		ModuleSource:  "agro",
		Product:       "Plátano hartón",
		Quantity:      "3600",
		Unit:          "kg",
		UnitPrice:     "1500",
		BuyerName:     "Supermercado La Plaza",
		PaymentMethod: "credit",
		PaymentStatus: "paid",
		DueDate:       "2026-06-05",
	})
	require.NoError(t, err)

	open, err := svc.AccountsReceivable()
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "FV-0005", open[0].InvoiceNumber)
	assert.Equal(t, 1000000.0, finanzas(t, svc).AccountsReceivable)
}

func TestOverlappingBudgetIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Budgets.Create(ctx, models.BudgetForm{
		Category: "feed", Budgeted: "500000", PeriodStart: "2026-06-01", PeriodEnd: "2026-06-30",
	})
	assert.ErrorIs(t, err, models.ErrInvariant)

	b, err := svc.Budgets.Create(ctx, models.BudgetForm{
		Category: "machinery", Budgeted: "1000000", PeriodStart: "2026-06-01", PeriodEnd: "2026-06-30",
	})
	require.NoError(t, err)

	comparisons, err := svc.BudgetComparisons()
	require.NoError(t, err)
	require.Len(t, comparisons, 5)
	assert.Equal(t, b.ID, comparisons[0].BudgetID)
	assert.Equal(t, 1900000.0, comparisons[0].Actual)
	assert.Equal(t, models.BudgetExceeded, comparisons[0].Status)

	_, err = svc.Budgets.Update(ctx, b.ID, models.BudgetForm{
		Category: "machinery", Budgeted: "2000000", PeriodStart: "2026-06-01", PeriodEnd: "2026-07-31",
	})
	require.NoError(t, err, "a budget never overlaps itself")
}

func TestMissingRecordIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Purchases.Get(ctx, "purchase-999")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = svc.Budgets.Update(ctx, "budget-999", models.BudgetForm{
		Category: "feed", Budgeted: "1", PeriodStart: "2027-01-01", PeriodEnd: "2027-01-31",
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, svc.MilkProduction.Delete(ctx, "milk-999"), models.ErrNotFound)
}

func TestCanceledContextStopsEveryOperation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := newTestService(t)

	_, err := svc.Sales.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.Sales.Create(ctx, cheeseSale())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, svc.Sales.Delete(ctx, "sale-001"), context.Canceled)
	assert.Equal(t, 6, len(svc.Snapshot().Sales))
}

func TestValidationErrorsDoNotWrite(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	form := cheeseSale()
	form.Quantity = "-3"
	_, err := svc.Sales.Create(ctx, form)
	assert.ErrorIs(t, err, models.ErrValidation)

	form = cheeseSale()
	form.PaymentStatus = "partial"
	form.AmountPaid = "5000000"
	_, err = svc.Sales.Create(ctx, form)
	assert.ErrorIs(t, err, models.ErrInvariant)

	assert.Len(t, svc.Snapshot().Sales, 6)
}

func TestMonthFollowsClockLocation(t *testing.T) {
	instant := time.Date(2026, time.July, 1, 1, 0, 0, 0, time.UTC)
	cot := time.FixedZone("COT", -5*3600)

	tests := []struct {
		name    string
		now     time.Time
		monthly float64
	}{
		{"farm timezone still in june", instant.In(cot), 1900000},
		{"utc already in july", instant, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := New(Options{Seed: seed.Dataset(), Now: func() time.Time { return tt.now }})
			require.NoError(t, err)
			assert.Equal(t, tt.monthly, finanzas(t, svc).MonthlyIncome)
		})
	}
}
