package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

func TestAffectedByCoversListsAndAggregates(t *testing.T) {
	views := AffectedBy(memory.StoreSales)

	assert.Equal(t, []View{
		ViewAccountsReceivable,
		ViewFinanzasStats,
		DistributionView(models.DistSalesByModule),
		ListView(memory.StoreSales),
		ViewFinanzasSeries,
	}, views)
}

func TestAffectedByParentStores(t *testing.T) {
	views := AffectedBy(memory.StoreLotes)

	assert.Contains(t, views, ViewAgroStats)
	assert.Contains(t, views, ViewAgroSeries)
	assert.Contains(t, views, DistributionView(models.DistCropArea))
	assert.Contains(t, views, DistributionView(models.DistCropType))
	assert.NotContains(t, views, ViewFinanzasStats)

	budgets := AffectedBy(memory.StorePurchases)
	assert.Contains(t, budgets, ViewBudgetComparisons)
	assert.Contains(t, budgets, ViewAccountsPayable)
}

func TestEveryViewReadsKnownStores(t *testing.T) {
	known := make(map[memory.StoreName]bool, len(memory.AllStores))
	for _, s := range memory.AllStores {
		known[s] = true
	}
	for view, stores := range sources {
		assert.NotEmpty(t, stores, view)
		for _, s := range stores {
			assert.True(t, known[s], "%s reads unknown store %s", view, s)
		}
	}
	for _, kind := range DistributionKinds {
		assert.NotEmpty(t, Sources(DistributionView(kind)), kind)
	}
	for _, s := range memory.AllStores {
		assert.Equal(t, []memory.StoreName{s}, Sources(ListView(s)))
	}
}

func TestSourcesReturnsACopy(t *testing.T) {
	got := Sources(ViewFinanzasStats)
	got[0] = memory.StoreBudgets

	assert.Equal(t, memory.StoreSales, Sources(ViewFinanzasStats)[0])
}
