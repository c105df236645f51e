package memory

import (
	"time"

	"github.com/mamadbah2/finca/internal/domain/models"
)

// StoreName identifies one entity store; it is the unit of invalidation.
type StoreName string

const (
	StoreLotes              StoreName = "lotes"
	StoreCrops              StoreName = "crops"
	StoreAgroActions        StoreName = "agro_actions"
	StoreHarvests           StoreName = "harvests"
	StoreLivestock          StoreName = "livestock"
	StoreLivestockGroups    StoreName = "livestock_groups"
	StorePotreros           StoreName = "potreros"
	StoreHealthRecords      StoreName = "health_records"
	StoreGroupHealthActions StoreName = "group_health_actions"
	StoreReproduction       StoreName = "reproduction_records"
	StoreMilkProduction     StoreName = "milk_production"
	StoreSales              StoreName = "sales"
	StorePurchases          StoreName = "purchases"
	StoreBudgets            StoreName = "budgets"
)

// AllStores lists every store name.
var AllStores = []StoreName{
	StoreLotes, StoreCrops, StoreAgroActions, StoreHarvests,
	StoreLivestock, StoreLivestockGroups, StorePotreros, StoreHealthRecords,
	StoreGroupHealthActions, StoreReproduction, StoreMilkProduction,
	StoreSales, StorePurchases, StoreBudgets,
}

// Dataset holds one slice per entity type. It is both the seed shape and the
// snapshot shape handed to projections.
type Dataset struct {
	Lotes              []models.Lote
	Crops              []models.Crop
	AgroActions        []models.AgroAction
	Harvests           []models.Harvest
	Livestock          []models.Livestock
	LivestockGroups    []models.LivestockGroup
	Potreros           []models.Potrero
	HealthRecords      []models.HealthRecord
	GroupHealthActions []models.GroupHealthAction
	Reproduction       []models.ReproductionRecord
	MilkProduction     []models.MilkProduction
	Sales              []models.SaleRecord
	Purchases          []models.PurchaseRecord
	Budgets            []models.Budget
}

// RegistryConfig wires shared seams into every store.
type RegistryConfig struct {
	Seed Dataset
	// IDs returns the id source for a store; nil means UUIDs everywhere.
	IDs   func(StoreName) IDFunc
	Clock func() time.Time
}

// Registry owns every entity store of the process.
type Registry struct {
	Lotes              *Store[models.Lote, *models.Lote]
	Crops              *Store[models.Crop, *models.Crop]
	AgroActions        *Store[models.AgroAction, *models.AgroAction]
	Harvests           *Store[models.Harvest, *models.Harvest]
	Livestock          *Store[models.Livestock, *models.Livestock]
	LivestockGroups    *Store[models.LivestockGroup, *models.LivestockGroup]
	Potreros           *Store[models.Potrero, *models.Potrero]
	HealthRecords      *Store[models.HealthRecord, *models.HealthRecord]
	GroupHealthActions *Store[models.GroupHealthAction, *models.GroupHealthAction]
	Reproduction       *Store[models.ReproductionRecord, *models.ReproductionRecord]
	MilkProduction     *Store[models.MilkProduction, *models.MilkProduction]
	Sales              *Store[models.SaleRecord, *models.SaleRecord]
	Purchases          *Store[models.PurchaseRecord, *models.PurchaseRecord]
	Budgets            *Store[models.Budget, *models.Budget]
}

// NewRegistry builds every store with its ordering and natural-key policy.
func NewRegistry(cfg RegistryConfig) *Registry {
	ids := func(name StoreName) IDFunc {
		if cfg.IDs == nil {
			return nil
		}
		return cfg.IDs(name)
	}

	return &Registry{
		Lotes: NewStore[models.Lote](string(StoreLotes), Config[models.Lote]{
			Seed: cfg.Seed.Lotes, IDs: ids(StoreLotes), Clock: cfg.Clock,
			KeyName: "code", Key: func(l models.Lote) string { return l.Code },
		}),
		Crops: NewStore[models.Crop](string(StoreCrops), Config[models.Crop]{
			Seed: cfg.Seed.Crops, IDs: ids(StoreCrops), Clock: cfg.Clock,
		}),
		AgroActions: NewStore[models.AgroAction](string(StoreAgroActions), Config[models.AgroAction]{
			Seed: cfg.Seed.AgroActions, IDs: ids(StoreAgroActions), Clock: cfg.Clock,
		}),
		Harvests: NewStore[models.Harvest](string(StoreHarvests), Config[models.Harvest]{
			Seed: cfg.Seed.Harvests, IDs: ids(StoreHarvests), Clock: cfg.Clock,
		}),
		Livestock: NewStore[models.Livestock](string(StoreLivestock), Config[models.Livestock]{
			Seed: cfg.Seed.Livestock, IDs: ids(StoreLivestock), Clock: cfg.Clock,
			Ordering: OrderUpdatedDesc,
			KeyName:  "tag", Key: func(l models.Livestock) string { return l.Tag },
		}),
		LivestockGroups: NewStore[models.LivestockGroup](string(StoreLivestockGroups), Config[models.LivestockGroup]{
			Seed: cfg.Seed.LivestockGroups, IDs: ids(StoreLivestockGroups), Clock: cfg.Clock,
		}),
		Potreros: NewStore[models.Potrero](string(StorePotreros), Config[models.Potrero]{
			Seed: cfg.Seed.Potreros, IDs: ids(StorePotreros), Clock: cfg.Clock,
			Ordering: OrderUpdatedDesc,
		}),
		HealthRecords: NewStore[models.HealthRecord](string(StoreHealthRecords), Config[models.HealthRecord]{
			Seed: cfg.Seed.HealthRecords, IDs: ids(StoreHealthRecords), Clock: cfg.Clock,
		}),
		GroupHealthActions: NewStore[models.GroupHealthAction](string(StoreGroupHealthActions), Config[models.GroupHealthAction]{
			Seed: cfg.Seed.GroupHealthActions, IDs: ids(StoreGroupHealthActions), Clock: cfg.Clock,
		}),
		Reproduction: NewStore[models.ReproductionRecord](string(StoreReproduction), Config[models.ReproductionRecord]{
			Seed: cfg.Seed.Reproduction, IDs: ids(StoreReproduction), Clock: cfg.Clock,
		}),
		MilkProduction: NewStore[models.MilkProduction](string(StoreMilkProduction), Config[models.MilkProduction]{
			Seed: cfg.Seed.MilkProduction, IDs: ids(StoreMilkProduction), Clock: cfg.Clock,
		}),
		Sales: NewStore[models.SaleRecord](string(StoreSales), Config[models.SaleRecord]{
			Seed: cfg.Seed.Sales, IDs: ids(StoreSales), Clock: cfg.Clock,
			Ordering: OrderUpdatedDesc,
			KeyName:  "invoice", Key: func(s models.SaleRecord) string { return s.InvoiceNumber },
		}),
		Purchases: NewStore[models.PurchaseRecord](string(StorePurchases), Config[models.PurchaseRecord]{
			Seed: cfg.Seed.Purchases, IDs: ids(StorePurchases), Clock: cfg.Clock,
			Ordering: OrderUpdatedDesc,
			KeyName:  "invoice", Key: func(p models.PurchaseRecord) string { return p.InvoiceNumber },
		}),
		Budgets: NewStore[models.Budget](string(StoreBudgets), Config[models.Budget]{
			Seed: cfg.Seed.Budgets, IDs: ids(StoreBudgets), Clock: cfg.Clock,
		}),
	}
}

// Snapshot copies every store. Each slice is consistent with its own store;
// there is no cross-store atomicity.
func (r *Registry) Snapshot() Dataset {
	return Dataset{
		Lotes:              r.Lotes.List(),
		Crops:              r.Crops.List(),
		AgroActions:        r.AgroActions.List(),
		Harvests:           r.Harvests.List(),
		Livestock:          r.Livestock.List(),
		LivestockGroups:    r.LivestockGroups.List(),
		Potreros:           r.Potreros.List(),
		HealthRecords:      r.HealthRecords.List(),
		GroupHealthActions: r.GroupHealthActions.List(),
		Reproduction:       r.Reproduction.List(),
		MilkProduction:     r.MilkProduction.List(),
		Sales:              r.Sales.List(),
		Purchases:          r.Purchases.List(),
		Budgets:            r.Budgets.List(),
	}
}
