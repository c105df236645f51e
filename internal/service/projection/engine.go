// Package projection derives dashboard aggregates from store snapshots and
// tracks which of them a mutation makes stale.
package projection

import (
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/metrics"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

// ErrUnknownModule is returned for a module without a dashboard.
var ErrUnknownModule = fmt.Errorf("%w: unknown module", models.ErrValidation)

// Source hands out consistent copies of every store.
type Source interface {
	Snapshot() memory.Dataset
}

// Options configures an Engine. Zero values are usable.
type Options struct {
	// CacheSize bounds the number of cached views; 0 disables caching.
	CacheSize int
	Now       func() time.Time
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

type entry struct {
	value any
}

// Engine computes aggregates on read. Values handed out may be shared with
// the cache and must be treated as read-only.
type Engine struct {
	src     Source
	now     func() time.Time
	cache   *lru.Cache[string, entry]
	metrics *metrics.Metrics
	logger  *zap.Logger

	mu   sync.Mutex
	gens map[View]uint64
}

// NewEngine builds an engine over src.
func NewEngine(src Source, opts Options) (*Engine, error) {
	e := &Engine{
		src:     src,
		now:     opts.Now,
		metrics: opts.Metrics,
		logger:  opts.Logger,
		gens:    make(map[View]uint64),
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, entry](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create aggregate cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

func cacheKey(view View, day time.Time) string {
	return string(view) + "|" + day.Format(models.DateLayout)
}

// read serves view from the cache or computes it. A computation that raced
// with an invalidation of the same view is returned but not cached.
func read[V any](e *Engine, view View, compute func(memory.Dataset, time.Time) (V, error)) (V, error) {
	now := e.now()
	key := cacheKey(view, calendarDay(now))

	if e.cache != nil {
		if hit, ok := e.cache.Get(key); ok {
			e.metrics.CacheHit(string(view))
			return hit.value.(V), nil
		}
	}

	e.mu.Lock()
	gen := e.gens[view]
	e.mu.Unlock()

	v, err := compute(e.src.Snapshot(), now)
	if err != nil {
		var zero V
		return zero, err
	}
	e.metrics.Recompute(string(view))

	if e.cache != nil {
		e.mu.Lock()
		if e.gens[view] == gen {
			e.cache.Add(key, entry{value: v})
		}
		e.mu.Unlock()
	}
	return v, nil
}

// Invalidate marks every view that reads store as stale and returns them.
func (e *Engine) Invalidate(store memory.StoreName) []View {
	views := AffectedBy(store)

	e.mu.Lock()
	for _, v := range views {
		e.gens[v]++
	}
	if e.cache != nil {
		for _, key := range e.cache.Keys() {
			for _, v := range views {
				if strings.HasPrefix(key, string(v)+"|") {
					e.cache.Remove(key)
					break
				}
			}
		}
	}
	e.mu.Unlock()

	for _, v := range views {
		e.metrics.Invalidated(string(v))
	}
	e.logger.Debug("views invalidated", zap.String("store", string(store)), zap.Int("views", len(views)))
	return views
}

// DashboardStats returns the header of one module.
func (e *Engine) DashboardStats(module models.Module) (models.DashboardStats, error) {
	switch module {
	case models.ModuleAgro:
		return read(e, StatsView(module), func(ds memory.Dataset, now time.Time) (models.DashboardStats, error) {
			s := AgroDashboard(ds, now)
			return models.DashboardStats{Module: module, Agro: &s}, nil
		})
	case models.ModulePecuario:
		return read(e, StatsView(module), func(ds memory.Dataset, now time.Time) (models.DashboardStats, error) {
			s := PecuarioDashboard(ds, now)
			return models.DashboardStats{Module: module, Pecuario: &s}, nil
		})
	case models.ModuleFinanzas:
		return read(e, StatsView(module), func(ds memory.Dataset, now time.Time) (models.DashboardStats, error) {
			s := FinanzasDashboard(ds, now)
			return models.DashboardStats{Module: module, Finanzas: &s}, nil
		})
	default:
		return models.DashboardStats{}, fmt.Errorf("%w %q", ErrUnknownModule, module)
	}
}

// MonthlySeries returns the ascending month buckets of one module.
func (e *Engine) MonthlySeries(module models.Module) ([]models.MonthlyPoint, error) {
	var series func(memory.Dataset) []models.MonthlyPoint
	switch module {
	case models.ModuleAgro:
		series = AgroSeries
	case models.ModulePecuario:
		series = PecuarioSeries
	case models.ModuleFinanzas:
		series = FinanzasSeries
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownModule, module)
	}
	return read(e, SeriesView(module), func(ds memory.Dataset, _ time.Time) ([]models.MonthlyPoint, error) {
		return series(ds), nil
	})
}

// Distribution returns one group-by projection.
func (e *Engine) Distribution(kind models.DistributionKind) ([]models.DistributionSlice, error) {
	if _, ok := sources[DistributionView(kind)]; !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDistribution, kind)
	}
	return read(e, DistributionView(kind), func(ds memory.Dataset, _ time.Time) ([]models.DistributionSlice, error) {
		return Distribution(ds, kind)
	})
}

// AccountsReceivable lists unpaid sales.
func (e *Engine) AccountsReceivable() ([]models.AccountEntry, error) {
	return read(e, ViewAccountsReceivable, func(ds memory.Dataset, now time.Time) ([]models.AccountEntry, error) {
		return Receivables(ds, now), nil
	})
}

// AccountsPayable lists unpaid purchases.
func (e *Engine) AccountsPayable() ([]models.AccountEntry, error) {
	return read(e, ViewAccountsPayable, func(ds memory.Dataset, now time.Time) ([]models.AccountEntry, error) {
		return Payables(ds, now), nil
	})
}

// BudgetComparisons lists every budget with its actual spending.
func (e *Engine) BudgetComparisons() ([]models.BudgetComparison, error) {
	return read(e, ViewBudgetComparisons, func(ds memory.Dataset, _ time.Time) ([]models.BudgetComparison, error) {
		return BudgetComparisons(ds), nil
	})
}
