package projection

import (
	"sort"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

// BudgetComparisons derives actual spending for every budget from the
// purchases of its category inside its period.
func BudgetComparisons(ds memory.Dataset) []models.BudgetComparison {
	out := make([]models.BudgetComparison, 0, len(ds.Budgets))
	for _, b := range ds.Budgets {
		var actual float64
		for _, p := range ds.Purchases {
			if p.Category == b.Category && b.Covers(p.Date) {
				actual += p.TotalAmount
			}
		}
		actual = models.Round2(actual)

		var used float64
		if b.Budgeted > 0 {
			used = models.Round2(actual / b.Budgeted * 100)
		}
		out = append(out, models.BudgetComparison{
			BudgetID:       b.ID,
			Category:       b.Category,
			PeriodStart:    b.PeriodStart,
			PeriodEnd:      b.PeriodEnd,
			Budgeted:       b.Budgeted,
			Actual:         actual,
			Variance:       models.Round2(b.Budgeted - actual),
			PercentageUsed: used,
			Status:         models.StatusForUsage(used),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PeriodStart.Equal(out[j].PeriodStart) {
			return out[i].PeriodStart.After(out[j].PeriodStart)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
