package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/seed"
)

func TestBudgetComparisonsOverSeed(t *testing.T) {
	got := BudgetComparisons(seed.Dataset())
	require.Len(t, got, 4)

	want := []struct {
		category models.ExpenseCategory
		actual   float64
		used     float64
		status   models.BudgetStatus
	}{
		{models.ExpenseFeed, 3200000, 94.12, models.BudgetWarning},
		{models.ExpenseLabor, 2800000, 23.33, models.BudgetOnTrack},
		{models.ExpenseSupplies, 1470000, 36.75, models.BudgetOnTrack},
		{models.ExpenseVeterinary, 410000, 117.14, models.BudgetExceeded},
	}
	for i, w := range want {
		assert.Equal(t, w.category, got[i].Category)
		assert.Equal(t, w.actual, got[i].Actual, w.category)
		assert.Equal(t, w.used, got[i].PercentageUsed, w.category)
		assert.Equal(t, w.status, got[i].Status, w.category)
		assert.Equal(t, models.Round2(got[i].Budgeted-w.actual), got[i].Variance)
	}
}

func TestBudgetPeriodIncludesEndDay(t *testing.T) {
	ds := seed.Dataset()
	ds.Budgets = []models.Budget{{
		Base:        models.Base{ID: "budget-q2"},
		Category:    models.ExpenseLabor,
		Budgeted:    2800000,
		PeriodStart: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, time.May, 30, 0, 0, 0, 0, time.UTC),
	}}

	got := BudgetComparisons(ds)
	require.Len(t, got, 1)
	assert.Equal(t, 2800000.0, got[0].Actual)
	assert.Equal(t, 100.0, got[0].PercentageUsed)
	assert.Equal(t, models.BudgetWarning, got[0].Status)
	assert.True(t, got[0].Covers(time.Date(2026, time.May, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, got[0].Covers(time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)))
}

func TestBudgetStatusThresholds(t *testing.T) {
	assert.Equal(t, models.BudgetOnTrack, models.StatusForUsage(90))
	assert.Equal(t, models.BudgetWarning, models.StatusForUsage(90.01))
	assert.Equal(t, models.BudgetWarning, models.StatusForUsage(100))
	assert.Equal(t, models.BudgetExceeded, models.StatusForUsage(100.01))
}
