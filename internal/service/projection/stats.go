package projection

import (
	"time"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

const upcomingBirthWindowDays = 30

// calendarDay maps now onto the UTC midnight of its local calendar day, the
// representation every stored date uses.
func calendarDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func sameMonth(t, day time.Time) bool {
	return t.Year() == day.Year() && t.Month() == day.Month()
}

func onOrAfter(t *time.Time, day time.Time) bool {
	return t != nil && !t.Before(day)
}

// refs indexes parent ids so projections can drop orphaned children.
type refs struct {
	lotes     map[string]models.Lote
	crops     map[string]models.Crop
	livestock map[string]models.Livestock
	groups    map[string]bool
}

func index(ds memory.Dataset) refs {
	r := refs{
		lotes:     make(map[string]models.Lote, len(ds.Lotes)),
		crops:     make(map[string]models.Crop, len(ds.Crops)),
		livestock: make(map[string]models.Livestock, len(ds.Livestock)),
		groups:    make(map[string]bool, len(ds.LivestockGroups)),
	}
	for _, l := range ds.Lotes {
		r.lotes[l.ID] = l
	}
	for _, c := range ds.Crops {
		if _, ok := r.lotes[c.LoteID]; ok {
			r.crops[c.ID] = c
		}
	}
	for _, a := range ds.Livestock {
		r.livestock[a.ID] = a
	}
	for _, g := range ds.LivestockGroups {
		r.groups[g.ID] = true
	}
	return r
}

func (r refs) cropOK(c models.Crop) bool {
	_, ok := r.crops[c.ID]
	return ok
}

func (r refs) harvestOK(h models.Harvest) bool {
	crop, ok := r.crops[h.CropID]
	return ok && crop.LoteID == h.LoteID
}

func (r refs) actionOK(a models.AgroAction) bool {
	if _, ok := r.lotes[a.LoteID]; !ok {
		return false
	}
	if a.CropID == nil {
		return true
	}
	crop, ok := r.crops[*a.CropID]
	return ok && crop.LoteID == a.LoteID
}

func (r refs) groupActionOK(g models.GroupHealthAction) bool {
	return g.GroupID == nil || r.groups[*g.GroupID]
}

// AgroDashboard computes the crops header.
func AgroDashboard(ds memory.Dataset, now time.Time) models.AgroStats {
	today := calendarDay(now)
	r := index(ds)
	stats := models.AgroStats{CropsByStatus: make(map[models.CropStatus]int)}

	for _, l := range ds.Lotes {
		stats.TotalLotes++
		stats.TotalArea += l.Area
		if l.Status == models.LoteActive {
			stats.ActiveLotes++
		}
	}
	for _, c := range ds.Crops {
		if !r.cropOK(c) {
			continue
		}
		stats.CropsByStatus[c.Status]++
		if c.Active() {
			stats.ActiveCrops++
			stats.CultivatedArea += c.Area
		}
	}
	for _, h := range ds.Harvests {
		if r.harvestOK(h) && sameMonth(h.Date, today) {
			stats.MonthlyHarvestQuantity += h.Quantity
			stats.MonthlyHarvestValue += h.Revenue()
		}
	}
	for _, a := range ds.AgroActions {
		if r.actionOK(a) && sameMonth(a.Date, today) {
			stats.MonthlyActions++
			if a.Cost != nil {
				stats.MonthlyActionCost += *a.Cost
			}
		}
	}

	stats.TotalArea = models.Round2(stats.TotalArea)
	stats.CultivatedArea = models.Round2(stats.CultivatedArea)
	stats.MonthlyHarvestQuantity = models.Round2(stats.MonthlyHarvestQuantity)
	stats.MonthlyHarvestValue = models.Round2(stats.MonthlyHarvestValue)
	stats.MonthlyActionCost = models.Round2(stats.MonthlyActionCost)
	return stats
}

// PecuarioDashboard computes the livestock header.
//
// An animal counts as not healthy while it has a treatment or surgery whose
// next checkup is today or later; group actions of those types count their
// affected animals the same way.
func PecuarioDashboard(ds memory.Dataset, now time.Time) models.PecuarioStats {
	today := calendarDay(now)
	r := index(ds)
	stats := models.PecuarioStats{
		BySpecies:  make(map[models.Species]int),
		ByCategory: make(map[string]int),
	}

	for _, a := range ds.Livestock {
		if a.Status != models.LivestockActive {
			continue
		}
		stats.ActiveIndividuals++
		stats.BySpecies[a.Species]++
		stats.ByCategory[a.Category]++
	}
	for _, g := range ds.LivestockGroups {
		stats.GroupAnimals += g.Count
		stats.BySpecies[g.Species] += g.Count
		stats.ByCategory[g.Category] += g.Count
	}
	stats.TotalAnimals = stats.ActiveIndividuals + stats.GroupAnimals

	underCare := make(map[string]bool)
	for _, h := range ds.HealthRecords {
		animal, ok := r.livestock[h.LivestockID]
		if !ok || !onOrAfter(h.NextCheckup, today) {
			continue
		}
		stats.PendingHealthActions++
		if h.Type.OpenCare() && animal.Status == models.LivestockActive {
			underCare[animal.ID] = true
		}
	}
	groupUnderCare := 0
	for _, g := range ds.GroupHealthActions {
		if !r.groupActionOK(g) || !onOrAfter(g.NextCheckup, today) {
			continue
		}
		stats.PendingHealthActions++
		if g.Type.OpenCare() {
			groupUnderCare += g.AffectedCount
		}
	}
	if stats.TotalAnimals > 0 {
		sick := len(underCare) + groupUnderCare
		if sick > stats.TotalAnimals {
			sick = stats.TotalAnimals
		}
		stats.HealthyPercentage = models.Round2(float64(stats.TotalAnimals-sick) / float64(stats.TotalAnimals) * 100)
	}

	cows := 0
	for _, m := range ds.MilkProduction {
		if sameMonth(m.Date, today) {
			stats.MonthlyMilkLiters += m.TotalLiters
			cows += m.CowsMilked
		}
	}
	stats.MonthlyMilkLiters = models.Round2(stats.MonthlyMilkLiters)
	if cows > 0 {
		stats.AvgMilkPerCow = models.Round2(stats.MonthlyMilkLiters / float64(cows))
	}

	horizon := today.AddDate(0, 0, upcomingBirthWindowDays)
	for _, rec := range ds.Reproduction {
		if _, ok := r.livestock[rec.CowID]; !ok || rec.Status != models.ReproductionConfirmed {
			continue
		}
		stats.PregnantCount++
		if !rec.ExpectedBirthDate.Before(today) && !rec.ExpectedBirthDate.After(horizon) {
			stats.UpcomingBirths++
		}
	}

	for _, p := range ds.Potreros {
		stats.PotreroCapacity += p.Capacity
		stats.PotreroOccupancy += p.CurrentOccupancy
	}
	if stats.PotreroCapacity > 0 {
		stats.OccupancyRate = models.Round2(float64(stats.PotreroOccupancy) / float64(stats.PotreroCapacity) * 100)
	}
	return stats
}

// FinanzasDashboard computes the finance header.
func FinanzasDashboard(ds memory.Dataset, now time.Time) models.FinanzasStats {
	today := calendarDay(now)
	var stats models.FinanzasStats

	for _, s := range ds.Sales {
		stats.TotalIncome += s.TotalAmount
		if sameMonth(s.Date, today) {
			stats.MonthlyIncome += s.TotalAmount
		}
		if s.PaymentStatus != models.PaymentPaid {
			stats.AccountsReceivable += s.Pending()
			if overdue(s.DueDate, today) {
				stats.OverdueReceivables++
			}
		}
	}
	for _, p := range ds.Purchases {
		stats.TotalExpenses += p.TotalAmount
		if sameMonth(p.Date, today) {
			stats.MonthlyExpenses += p.TotalAmount
		}
		if p.PaymentStatus != models.PaymentPaid {
			stats.AccountsPayable += p.Pending()
			if overdue(p.DueDate, today) {
				stats.OverduePayables++
			}
		}
	}

	stats.TotalIncome = models.Round2(stats.TotalIncome)
	stats.TotalExpenses = models.Round2(stats.TotalExpenses)
	stats.NetProfit = models.Round2(stats.TotalIncome - stats.TotalExpenses)
	stats.MonthlyIncome = models.Round2(stats.MonthlyIncome)
	stats.MonthlyExpenses = models.Round2(stats.MonthlyExpenses)
	stats.AccountsReceivable = models.Round2(stats.AccountsReceivable)
	stats.AccountsPayable = models.Round2(stats.AccountsPayable)
	return stats
}

func overdue(due *time.Time, today time.Time) bool {
	return due != nil && due.Before(today)
}
