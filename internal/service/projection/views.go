package projection

import (
	"sort"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

// View names one aggregate or list read that can go stale.
type View string

const (
	ViewAgroStats          View = "dashboard.agro"
	ViewPecuarioStats      View = "dashboard.pecuario"
	ViewFinanzasStats      View = "dashboard.finanzas"
	ViewAgroSeries         View = "series.agro"
	ViewPecuarioSeries     View = "series.pecuario"
	ViewFinanzasSeries     View = "series.finanzas"
	ViewAccountsReceivable View = "accounts.receivable"
	ViewAccountsPayable    View = "accounts.payable"
	ViewBudgetComparisons  View = "budgets.comparison"
)

// ListView is the plain list of a store.
func ListView(store memory.StoreName) View {
	return View("list." + string(store))
}

// DistributionView is the view of one distribution kind.
func DistributionView(kind models.DistributionKind) View {
	return View("distribution." + string(kind))
}

// StatsView is the dashboard header view of a module.
func StatsView(module models.Module) View {
	return View("dashboard." + string(module))
}

// SeriesView is the monthly series view of a module.
func SeriesView(module models.Module) View {
	return View("series." + string(module))
}

// sources declares which stores every view reads. Parents are listed where a
// view drops orphaned children.
var sources = map[View][]memory.StoreName{
	ViewAgroStats: {memory.StoreLotes, memory.StoreCrops, memory.StoreHarvests, memory.StoreAgroActions},
	ViewPecuarioStats: {
		memory.StoreLivestock, memory.StoreLivestockGroups, memory.StorePotreros, memory.StoreHealthRecords,
		memory.StoreGroupHealthActions, memory.StoreReproduction, memory.StoreMilkProduction,
	},
	ViewFinanzasStats:      {memory.StoreSales, memory.StorePurchases},
	ViewAgroSeries:         {memory.StoreHarvests, memory.StoreCrops, memory.StoreLotes},
	ViewPecuarioSeries:     {memory.StoreMilkProduction},
	ViewFinanzasSeries:     {memory.StoreSales, memory.StorePurchases},
	ViewAccountsReceivable: {memory.StoreSales},
	ViewAccountsPayable:    {memory.StorePurchases},
	ViewBudgetComparisons:  {memory.StoreBudgets, memory.StorePurchases},

	DistributionView(models.DistCropArea):            {memory.StoreLotes, memory.StoreCrops},
	DistributionView(models.DistCropType):            {memory.StoreLotes, memory.StoreCrops},
	DistributionView(models.DistSalesByModule):       {memory.StoreSales},
	DistributionView(models.DistExpensesByCategory):  {memory.StorePurchases},
	DistributionView(models.DistLivestockBySpecies):  {memory.StoreLivestock, memory.StoreLivestockGroups},
	DistributionView(models.DistLivestockByCategory): {memory.StoreLivestock, memory.StoreLivestockGroups},
}

func init() {
	for _, store := range memory.AllStores {
		sources[ListView(store)] = []memory.StoreName{store}
	}
}

// Sources returns the stores a view reads.
func Sources(v View) []memory.StoreName {
	return append([]memory.StoreName(nil), sources[v]...)
}

// AffectedBy returns, sorted, every view that must be recomputed after a
// create, update or delete on store.
func AffectedBy(store memory.StoreName) []View {
	var out []View
	for view, stores := range sources {
		for _, s := range stores {
			if s == store {
				out = append(out, view)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
