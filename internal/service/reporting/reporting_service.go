// Package reporting builds the daily dashboard digest and fans it out to the
// configured sinks.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/finca/internal/domain/models"
)

// Dashboard is the aggregate surface the digest is assembled from.
type Dashboard interface {
	DashboardStats(module models.Module) (models.DashboardStats, error)
	AccountsReceivable() ([]models.AccountEntry, error)
	AccountsPayable() ([]models.AccountEntry, error)
	BudgetComparisons() ([]models.BudgetComparison, error)
}

// Sink receives published digests.
type Sink interface {
	Name() string
	PublishDigest(ctx context.Context, digest models.DashboardDigest) error
}

// Service assembles and publishes digests.
type Service struct {
	dashboard Dashboard
	sinks     []Sink
	logger    *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(dashboard Dashboard, sinks []Sink, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{dashboard: dashboard, sinks: sinks, logger: logger}
}

// BuildDigest snapshots every module header as of now.
func (s *Service) BuildDigest(ctx context.Context, now time.Time) (models.DashboardDigest, error) {
	if err := ctx.Err(); err != nil {
		return models.DashboardDigest{}, err
	}

	digest := models.DashboardDigest{
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt: now.UTC(),
	}

	for _, module := range []models.Module{models.ModuleAgro, models.ModulePecuario, models.ModuleFinanzas} {
		stats, err := s.dashboard.DashboardStats(module)
		if err != nil {
			return models.DashboardDigest{}, fmt.Errorf("load %s stats: %w", module, err)
		}
		switch {
		case stats.Agro != nil:
			digest.Agro = *stats.Agro
		case stats.Pecuario != nil:
			digest.Pecuario = *stats.Pecuario
		case stats.Finanzas != nil:
			digest.Finanzas = *stats.Finanzas
		}
	}

	receivable, err := s.dashboard.AccountsReceivable()
	if err != nil {
		return models.DashboardDigest{}, fmt.Errorf("load receivables: %w", err)
	}
	payable, err := s.dashboard.AccountsPayable()
	if err != nil {
		return models.DashboardDigest{}, fmt.Errorf("load payables: %w", err)
	}
	budgets, err := s.dashboard.BudgetComparisons()
	if err != nil {
		return models.DashboardDigest{}, fmt.Errorf("load budgets: %w", err)
	}

	digest.OpenReceivables = len(receivable)
	digest.OpenPayables = len(payable)
	var exceeded []string
	for _, b := range budgets {
		if b.Status == models.BudgetExceeded && b.Covers(digest.Date) {
			exceeded = append(exceeded, string(b.Category))
		}
	}
	digest.BudgetsExceeded = len(exceeded)
	digest.Summary = summarize(digest, exceeded)
	return digest, nil
}

// Publish sends digest to every sink concurrently. A failing sink does not
// stop the others; all failures are joined into the returned error.
func (s *Service) Publish(ctx context.Context, digest models.DashboardDigest) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, sink := range s.sinks {
		g.Go(func() error {
			if err := sink.PublishDigest(ctx, digest); err != nil {
				s.logger.Warn("digest sink failed", zap.String("sink", sink.Name()), zap.Error(err))
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
				mu.Unlock()
				return nil
			}
			s.logger.Debug("digest published", zap.String("sink", sink.Name()))
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// Run builds and publishes the digest for now.
func (s *Service) Run(ctx context.Context, now time.Time) (models.DashboardDigest, error) {
	digest, err := s.BuildDigest(ctx, now)
	if err != nil {
		return models.DashboardDigest{}, err
	}
	if err := s.Publish(ctx, digest); err != nil {
		return digest, fmt.Errorf("publish digest: %w", err)
	}
	s.logger.Info("dashboard digest published",
		zap.String("date", digest.Date.Format(models.DateLayout)),
		zap.Int("sinks", len(s.sinks)),
	)
	return digest, nil
}

func summarize(d models.DashboardDigest, exceeded []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resumen finca %s\n", d.Date.Format(models.DateLayout))
	fmt.Fprintf(&b, "Agro: %d cultivos activos en %.2f ha, cosecha del mes %.2f (valor %s)\n",
		d.Agro.ActiveCrops, d.Agro.CultivatedArea, d.Agro.MonthlyHarvestQuantity, money(d.Agro.MonthlyHarvestValue))
	fmt.Fprintf(&b, "Pecuario: %d animales, %.2f%% sanos, leche del mes %.2f L (%.2f L/vaca)\n",
		d.Pecuario.TotalAnimals, d.Pecuario.HealthyPercentage, d.Pecuario.MonthlyMilkLiters, d.Pecuario.AvgMilkPerCow)
	fmt.Fprintf(&b, "Finanzas: ingresos %s, gastos %s, por cobrar %s (%d), por pagar %s (%d)",
		money(d.Finanzas.MonthlyIncome), money(d.Finanzas.MonthlyExpenses),
		money(d.Finanzas.AccountsReceivable), d.OpenReceivables,
		money(d.Finanzas.AccountsPayable), d.OpenPayables)
	if len(exceeded) > 0 {
		fmt.Fprintf(&b, "\nPresupuestos excedidos: %s", strings.Join(exceeded, ", "))
	}
	return b.String()
}

// money formats an amount with thousands separators and no decimals.
func money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := fmt.Sprintf("%.0f", v)
	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}
