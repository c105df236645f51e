package projection

import (
	"sort"
	"time"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

const monthLayout = "2006-01"

// buckets accumulates metric values per calendar month.
type buckets map[string]map[string]float64

func (b buckets) add(t time.Time, metric string, v float64) {
	month := t.Format(monthLayout)
	values, ok := b[month]
	if !ok {
		values = make(map[string]float64)
		b[month] = values
	}
	values[metric] += v
}

func (b buckets) points(finish func(map[string]float64)) []models.MonthlyPoint {
	months := make([]string, 0, len(b))
	for m := range b {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]models.MonthlyPoint, 0, len(months))
	for _, m := range months {
		values := b[m]
		if finish != nil {
			finish(values)
		}
		for k, v := range values {
			values[k] = models.Round2(v)
		}
		out = append(out, models.MonthlyPoint{Month: m, Values: values})
	}
	return out
}

// AgroSeries buckets harvest quantity and revenue by month.
func AgroSeries(ds memory.Dataset) []models.MonthlyPoint {
	r := index(ds)
	b := make(buckets)
	for _, h := range ds.Harvests {
		if !r.harvestOK(h) {
			continue
		}
		b.add(h.Date, models.MetricQuantity, h.Quantity)
		b.add(h.Date, models.MetricRevenue, h.Revenue())
	}
	return b.points(nil)
}

// PecuarioSeries buckets milk liters by month with the liters per cow milked.
func PecuarioSeries(ds memory.Dataset) []models.MonthlyPoint {
	const cows = "cows"
	b := make(buckets)
	for _, m := range ds.MilkProduction {
		b.add(m.Date, models.MetricLiters, m.TotalLiters)
		b.add(m.Date, cows, float64(m.CowsMilked))
	}
	return b.points(func(values map[string]float64) {
		if n := values[cows]; n > 0 {
			values[models.MetricAvgPerCow] = values[models.MetricLiters] / n
		} else {
			values[models.MetricAvgPerCow] = 0
		}
		delete(values, cows)
	})
}

// FinanzasSeries buckets income, expense and net by month.
func FinanzasSeries(ds memory.Dataset) []models.MonthlyPoint {
	b := make(buckets)
	for _, s := range ds.Sales {
		b.add(s.Date, models.MetricIncome, s.TotalAmount)
	}
	for _, p := range ds.Purchases {
		b.add(p.Date, models.MetricExpense, p.TotalAmount)
	}
	return b.points(func(values map[string]float64) {
		income, expense := values[models.MetricIncome], values[models.MetricExpense]
		values[models.MetricIncome] = income
		values[models.MetricExpense] = expense
		values[models.MetricNet] = income - expense
	})
}
