package projection

import (
	"fmt"
	"sort"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

// DistributionKinds lists every supported group-by projection.
var DistributionKinds = []models.DistributionKind{
	models.DistCropArea,
	models.DistCropType,
	models.DistSalesByModule,
	models.DistExpensesByCategory,
	models.DistLivestockBySpecies,
	models.DistLivestockByCategory,
}

// ErrUnknownDistribution is returned for a kind outside DistributionKinds.
var ErrUnknownDistribution = fmt.Errorf("%w: unknown distribution kind", models.ErrValidation)

type group struct {
	key   string
	label string
	value float64
}

type grouping struct {
	order  []string
	groups map[string]*group
}

func newGrouping() *grouping {
	return &grouping{groups: make(map[string]*group)}
}

func (g *grouping) add(key, label string, v float64) {
	entry, ok := g.groups[key]
	if !ok {
		entry = &group{key: key, label: label}
		g.groups[key] = entry
		g.order = append(g.order, key)
	}
	entry.value += v
}

// slices turns the groups into chart slices. A zero or negative denominator
// leaves every percentage at zero.
func (g *grouping) slices(denominator float64) []models.DistributionSlice {
	out := make([]models.DistributionSlice, 0, len(g.order))
	for _, key := range g.order {
		entry := g.groups[key]
		slice := models.DistributionSlice{
			Key:   entry.key,
			Label: entry.label,
			Value: models.Round2(entry.value),
			Color: colorFor(entry.key),
		}
		if denominator > 0 {
			slice.Percentage = models.Round2(entry.value / denominator * 100)
		}
		out = append(out, slice)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func (g *grouping) total() float64 {
	var sum float64
	for _, entry := range g.groups {
		sum += entry.value
	}
	return sum
}

// Distribution computes one group-by projection over the dataset.
func Distribution(ds memory.Dataset, kind models.DistributionKind) ([]models.DistributionSlice, error) {
	g := newGrouping()
	switch kind {
	case models.DistCropArea:
		// every lote gets a slice, measured against the farm's total area
		var farmArea float64
		active := make(map[string]float64, len(ds.Lotes))
		for _, c := range ds.Crops {
			if c.Active() {
				active[c.LoteID] += c.Area
			}
		}
		for _, l := range ds.Lotes {
			farmArea += l.Area
			g.add(l.Code, l.Name, active[l.ID])
		}
		return g.slices(farmArea), nil

	case models.DistCropType:
		r := index(ds)
		for _, c := range ds.Crops {
			if r.cropOK(c) {
				g.add(c.Name, c.Name, c.Area)
			}
		}

	case models.DistSalesByModule:
		for _, s := range ds.Sales {
			key := string(s.ModuleSource)
			g.add(key, labelFor(key), s.TotalAmount)
		}

	case models.DistExpensesByCategory:
		for _, p := range ds.Purchases {
			key := string(p.Category)
			g.add(key, labelFor(key), p.TotalAmount)
		}

	case models.DistLivestockBySpecies:
		for _, a := range ds.Livestock {
			if a.Status == models.LivestockActive {
				g.add(string(a.Species), labelFor(string(a.Species)), 1)
			}
		}
		for _, grp := range ds.LivestockGroups {
			g.add(string(grp.Species), labelFor(string(grp.Species)), float64(grp.Count))
		}

	case models.DistLivestockByCategory:
		for _, a := range ds.Livestock {
			if a.Status == models.LivestockActive {
				g.add(a.Category, labelFor(a.Category), 1)
			}
		}
		for _, grp := range ds.LivestockGroups {
			g.add(grp.Category, labelFor(grp.Category), float64(grp.Count))
		}

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownDistribution, kind)
	}
	return g.slices(g.total()), nil
}
