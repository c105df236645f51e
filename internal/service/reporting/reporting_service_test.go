package reporting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/seed"
	"github.com/mamadbah2/finca/internal/service/farm"
)

var digestNow = time.Date(2026, time.June, 20, 20, 0, 0, 0, time.UTC)

type recordingSink struct {
	name string
	err  error

	mu       sync.Mutex
	received []models.DashboardDigest
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) PublishDigest(_ context.Context, d models.DashboardDigest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, d)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func seededDashboard(t *testing.T) *farm.Service {
	t.Helper()
	svc, err := farm.New(farm.Options{Seed: seed.Dataset(), Now: func() time.Time { return digestNow }})
	require.NoError(t, err)
	return svc
}

func TestBuildDigestSnapshotsEveryModule(t *testing.T) {
	svc := NewService(seededDashboard(t), nil, nil)

	d, err := svc.BuildDigest(context.Background(), digestNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC), d.Date)
	assert.Equal(t, digestNow, d.CreatedAt)
	assert.Equal(t, 12.5, d.Agro.CultivatedArea)
	assert.Equal(t, 167, d.Pecuario.TotalAnimals)
	assert.Equal(t, 1900000.0, d.Finanzas.MonthlyIncome)
	assert.Equal(t, 2, d.OpenReceivables)
	assert.Equal(t, 2, d.OpenPayables)
	assert.Equal(t, 1, d.BudgetsExceeded)

	assert.Contains(t, d.Summary, "Resumen finca 2026-06-20")
	assert.Contains(t, d.Summary, "ingresos $1.900.000")
	assert.Contains(t, d.Summary, "por cobrar $4.400.000 (2)")
	assert.Contains(t, d.Summary, "Presupuestos excedidos: veterinary")
}

func TestPublishKeepsGoingWhenASinkFails(t *testing.T) {
	ok := &recordingSink{name: "archive"}
	broken := &recordingSink{name: "webhook", err: errors.New("connection refused")}
	svc := NewService(seededDashboard(t), []Sink{broken, ok}, nil)

	d, err := svc.Run(context.Background(), digestNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook: connection refused")
	assert.Equal(t, 1, ok.count())
	assert.Equal(t, 1, broken.count())
	assert.Equal(t, d, ok.received[0])
}

func TestPublishJoinsEveryFailure(t *testing.T) {
	first := errors.New("first down")
	second := errors.New("second down")
	svc := NewService(seededDashboard(t), []Sink{
		&recordingSink{name: "a", err: first},
		&recordingSink{name: "b", err: second},
	}, nil)

	err := svc.Publish(context.Background(), models.DashboardDigest{})
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestPublishWithoutSinks(t *testing.T) {
	svc := NewService(seededDashboard(t), nil, nil)
	_, err := svc.Run(context.Background(), digestNow)
	assert.NoError(t, err)
}

type failingDashboard struct{}

func (failingDashboard) DashboardStats(models.Module) (models.DashboardStats, error) {
	return models.DashboardStats{}, errors.New("store unavailable")
}

func (failingDashboard) AccountsReceivable() ([]models.AccountEntry, error) { return nil, nil }

func (failingDashboard) AccountsPayable() ([]models.AccountEntry, error) { return nil, nil }

func (failingDashboard) BudgetComparisons() ([]models.BudgetComparison, error) { return nil, nil }

func TestBuildDigestSurfacesDashboardErrors(t *testing.T) {
	sink := &recordingSink{name: "archive"}
	svc := NewService(failingDashboard{}, []Sink{sink}, nil)

	_, err := svc.Run(context.Background(), digestNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load agro stats")
	assert.Zero(t, sink.count())
}

func TestBuildDigestHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(seededDashboard(t), nil, nil).BuildDigest(ctx, digestNow)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0", money(0))
	assert.Equal(t, "$950", money(950))
	assert.Equal(t, "$1.900.000", money(1900000))
	assert.Equal(t, "-$350.000", money(-350000))
	assert.Equal(t, "$1.234.568", money(1234567.6))
}
