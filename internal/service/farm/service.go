// Package farm is the dashboard's data service: entity CRUD with cross-entity
// rules plus the aggregate reads.
package farm

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/metrics"
	"github.com/mamadbah2/finca/internal/repository/memory"
	"github.com/mamadbah2/finca/internal/service/mapper"
	"github.com/mamadbah2/finca/internal/service/projection"
)

// Options configures a Service.
type Options struct {
	Seed      memory.Dataset
	IDs       func(memory.StoreName) memory.IDFunc
	Now       func() time.Time
	CacheSize int
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

// Service owns the stores, the projection engine and one collection per entity.
type Service struct {
	// mu serializes mutations so a reference check and its write are not
	// interleaved with another mutation.
	mu sync.Mutex

	reg     *memory.Registry
	engine  *projection.Engine
	mapper  *mapper.Mapper
	metrics *metrics.Metrics
	logger  *zap.Logger

	Lotes              *Collection[models.Lote, *models.Lote, models.LoteForm]
	Crops              *Collection[models.Crop, *models.Crop, models.CropForm]
	AgroActions        *Collection[models.AgroAction, *models.AgroAction, models.AgroActionForm]
	Harvests           *Collection[models.Harvest, *models.Harvest, models.HarvestForm]
	Livestock          *Collection[models.Livestock, *models.Livestock, models.LivestockForm]
	LivestockGroups    *Collection[models.LivestockGroup, *models.LivestockGroup, models.LivestockGroupForm]
	Potreros           *Collection[models.Potrero, *models.Potrero, models.PotreroForm]
	HealthRecords      *Collection[models.HealthRecord, *models.HealthRecord, models.HealthRecordForm]
	GroupHealthActions *Collection[models.GroupHealthAction, *models.GroupHealthAction, models.GroupHealthActionForm]
	Reproduction       *Collection[models.ReproductionRecord, *models.ReproductionRecord, models.ReproductionForm]
	MilkProduction     *Collection[models.MilkProduction, *models.MilkProduction, models.MilkProductionForm]
	Sales              *Collection[models.SaleRecord, *models.SaleRecord, models.SaleForm]
	Purchases          *Collection[models.PurchaseRecord, *models.PurchaseRecord, models.PurchaseForm]
	Budgets            *Collection[models.Budget, *models.Budget, models.BudgetForm]
}

// New builds the stores from opts.Seed and wires every collection.
func New(opts Options) (*Service, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	reg := memory.NewRegistry(memory.RegistryConfig{Seed: opts.Seed, IDs: opts.IDs, Clock: now})
	engine, err := projection.NewEngine(reg, projection.Options{
		CacheSize: opts.CacheSize,
		Now:       now,
		Metrics:   opts.Metrics,
		Logger:    logger.Named("projection"),
	})
	if err != nil {
		return nil, err
	}

	s := &Service{
		reg:     reg,
		engine:  engine,
		mapper:  mapper.New(),
		metrics: opts.Metrics,
		logger:  logger,
	}
	s.wireAgro()
	s.wirePecuario()
	s.wireFinanzas()
	return s, nil
}

// Snapshot copies every store.
func (s *Service) Snapshot() memory.Dataset {
	return s.reg.Snapshot()
}

func (s *Service) invalidate(stores ...memory.StoreName) {
	for _, store := range stores {
		s.engine.Invalidate(store)
	}
}

// DashboardStats returns the dashboard header of module.
func (s *Service) DashboardStats(module models.Module) (models.DashboardStats, error) {
	return s.engine.DashboardStats(module)
}

// MonthlySeries returns the monthly buckets of module.
func (s *Service) MonthlySeries(module models.Module) ([]models.MonthlyPoint, error) {
	return s.engine.MonthlySeries(module)
}

// Distribution returns one chart distribution.
func (s *Service) Distribution(kind models.DistributionKind) ([]models.DistributionSlice, error) {
	return s.engine.Distribution(kind)
}

// AccountsReceivable lists unpaid sales.
func (s *Service) AccountsReceivable() ([]models.AccountEntry, error) {
	return s.engine.AccountsReceivable()
}

// AccountsPayable lists unpaid purchases.
func (s *Service) AccountsPayable() ([]models.AccountEntry, error) {
	return s.engine.AccountsPayable()
}

// BudgetComparisons lists budgets with their actual spending.
func (s *Service) BudgetComparisons() ([]models.BudgetComparison, error) {
	return s.engine.BudgetComparisons()
}
