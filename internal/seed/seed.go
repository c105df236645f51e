// Package seed holds the fixed initial dataset loaded into empty stores on first use.
package seed

import (
	"time"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

var seededAt = time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)

func base(id string) models.Base {
	return models.Base{ID: id, CreatedAt: seededAt, UpdatedAt: seededAt}
}

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func str(s string) *string { return &s }

func num(v float64) *float64 { return &v }

func module(m models.Module) *models.Module { return &m }

func species(s models.Species) *models.Species { return &s }

// Dataset returns a fresh copy of the fixed initial dataset.
func Dataset() memory.Dataset {
	return memory.Dataset{
		Lotes:              lotes(),
		Crops:              crops(),
		AgroActions:        agroActions(),
		Harvests:           harvests(),
		Livestock:          livestock(),
		LivestockGroups:    livestockGroups(),
		Potreros:           potreros(),
		HealthRecords:      healthRecords(),
		GroupHealthActions: groupHealthActions(),
		Reproduction:       reproduction(),
		MilkProduction:     milkProduction(),
		Sales:              sales(),
		Purchases:          purchases(),
		Budgets:            budgets(),
	}
}

func lotes() []models.Lote {
	return []models.Lote{
		{Base: base("lote-001"), Code: "LT-001", Name: "Lote Norte", Area: 5.5, Status: models.LoteActive, IrrigationType: models.IrrigationDrip, SoilType: str("franco arcilloso")},
		{Base: base("lote-002"), Code: "LT-002", Name: "Lote Sur", Area: 8.0, Status: models.LoteActive, IrrigationType: models.IrrigationSprinkler, SoilType: str("franco")},
		{Base: base("lote-003"), Code: "LT-003", Name: "La Vega", Area: 3.2, Status: models.LoteResting, IrrigationType: models.IrrigationGravity},
		{Base: base("lote-004"), Code: "LT-004", Name: "El Alto", Area: 6.0, Status: models.LotePreparation, IrrigationType: models.IrrigationNone, Location: str("ladera oriental")},
	}
}

func crops() []models.Crop {
	return []models.Crop{
		{Base: base("crop-001"), LoteID: "lote-001", Name: "Maíz", Variety: "ICA V-305", Area: 5.0, PlantingDate: day("2026-03-02"), ExpectedHarvestDate: day("2026-07-30"), Status: models.CropGrowing, EstimatedYield: num(30000)},
		{Base: base("crop-002"), LoteID: "lote-002", Name: "Fríjol", Variety: "Cargamanto", Area: 4.0, PlantingDate: day("2026-02-15"), ExpectedHarvestDate: day("2026-06-10"), Status: models.CropReady, EstimatedYield: num(6000), ActualYield: num(1200)},
		{Base: base("crop-003"), LoteID: "lote-002", Name: "Café", Variety: "Castillo", Area: 3.5, PlantingDate: day("2025-09-01"), ExpectedHarvestDate: day("2026-10-15"), Status: models.CropGrowing, EstimatedYield: num(5200)},
		{Base: base("crop-004"), LoteID: "lote-003", Name: "Plátano", Variety: "Hartón", Area: 3.0, PlantingDate: day("2025-06-01"), ExpectedHarvestDate: day("2026-04-20"), Status: models.CropHarvested, EstimatedYield: num(9000), ActualYield: num(8600)},
	}
}

func agroActions() []models.AgroAction {
	return []models.AgroAction{
		{Base: base("action-001"), LoteID: "lote-001", CropID: str("crop-001"), Type: models.ActionPlanting, Date: day("2026-03-02"), Description: "Siembra mecanizada", Quantity: num(100), Unit: str("kg"), Cost: num(850000), Responsible: str("Carlos")},
		{Base: base("action-002"), LoteID: "lote-001", CropID: str("crop-001"), Type: models.ActionFertilization, Date: day("2026-04-05"), Description: "Abonado de fondo", Product: str("Urea"), Quantity: num(250), Unit: str("kg"), Cost: num(620000)},
		{Base: base("action-003"), LoteID: "lote-002", CropID: str("crop-002"), Type: models.ActionIrrigation, Date: day("2026-04-20"), Description: "Riego por aspersión", Cost: num(120000)},
		{Base: base("action-004"), LoteID: "lote-004", Type: models.ActionSoilPreparation, Date: day("2026-05-12"), Description: "Arado y rastrillado", Cost: num(480000), Responsible: str("Contratista")},
	}
}

func harvests() []models.Harvest {
	return []models.Harvest{
		{Base: base("harvest-001"), CropID: "crop-004", LoteID: "lote-003", Date: day("2026-04-18"), Quantity: 5000, Unit: "kg", Quality: models.QualityA, Destination: models.DestinationSale, PricePerUnit: num(1800), TotalValue: num(9000000)},
		{Base: base("harvest-002"), CropID: "crop-004", LoteID: "lote-003", Date: day("2026-05-02"), Quantity: 3600, Unit: "kg", Quality: models.QualityB, Destination: models.DestinationSale, PricePerUnit: num(1500), TotalValue: num(5400000)},
		{Base: base("harvest-003"), CropID: "crop-002", LoteID: "lote-002", Date: day("2026-06-08"), Quantity: 1200, Unit: "kg", Quality: models.QualityA, Destination: models.DestinationStorage},
	}
}

func livestock() []models.Livestock {
	return []models.Livestock{
		{Base: base("animal-001"), Tag: "BOV-001", Name: str("Lucera"), Species: models.SpeciesBovino, Category: "vaca", Breed: str("Holstein"), Gender: models.GenderFemale, BirthDate: dayPtr("2020-03-14"), Weight: num(520), Status: models.LivestockActive, PotreroID: str("potrero-001"), EntryDate: day("2020-03-14"), EntryReason: "birth"},
		{Base: base("animal-002"), Tag: "BOV-002", Name: str("Mariposa"), Species: models.SpeciesBovino, Category: "vaca", Breed: str("Jersey"), Gender: models.GenderFemale, BirthDate: dayPtr("2021-01-20"), Weight: num(430), Status: models.LivestockActive, PotreroID: str("potrero-001"), EntryDate: day("2022-06-01"), EntryReason: "purchase"},
		{Base: base("animal-003"), Tag: "BOV-003", Name: str("Canela"), Species: models.SpeciesBovino, Category: "vaca", Breed: str("Normando"), Gender: models.GenderFemale, BirthDate: dayPtr("2019-11-02"), Weight: num(560), Status: models.LivestockActive, PotreroID: str("potrero-002"), EntryDate: day("2021-02-10"), EntryReason: "purchase"},
		{Base: base("animal-004"), Tag: "BOV-004", Name: str("Tormenta"), Species: models.SpeciesBovino, Category: "toro", Breed: str("Brahman"), Gender: models.GenderMale, BirthDate: dayPtr("2018-08-30"), Weight: num(820), Status: models.LivestockActive, PotreroID: str("potrero-002"), EntryDate: day("2020-01-15"), EntryReason: "purchase"},
		{Base: base("animal-005"), Tag: "BOV-005", Species: models.SpeciesBovino, Category: "ternera", Breed: str("Holstein"), Gender: models.GenderFemale, BirthDate: dayPtr("2026-02-11"), Weight: num(95), Status: models.LivestockActive, PotreroID: str("potrero-003"), EntryDate: day("2026-02-11"), EntryReason: "birth", MotherID: str("animal-001"), FatherID: str("animal-004")},
		{Base: base("animal-006"), Tag: "BOV-006", Species: models.SpeciesBovino, Category: "novillo", Gender: models.GenderMale, BirthDate: dayPtr("2024-05-03"), Weight: num(380), Status: models.LivestockSold, EntryDate: day("2024-05-03"), EntryReason: "birth", ExitDate: dayPtr("2026-03-20"), ExitReason: str("sale")},
		{Base: base("animal-007"), Tag: "EQU-001", Name: str("Centella"), Species: models.SpeciesEquino, Category: "yegua", Breed: str("Criollo"), Gender: models.GenderFemale, BirthDate: dayPtr("2017-04-22"), Weight: num(410), Status: models.LivestockActive, PotreroID: str("potrero-004"), EntryDate: day("2019-09-01"), EntryReason: "purchase"},
		{Base: base("animal-008"), Tag: "POR-001", Species: models.SpeciesPorcino, Category: "cerda", Breed: str("Landrace"), Gender: models.GenderFemale, BirthDate: dayPtr("2024-10-10"), Weight: num(190), Status: models.LivestockActive, EntryDate: day("2025-01-05"), EntryReason: "purchase"},
	}
}

func livestockGroups() []models.LivestockGroup {
	return []models.LivestockGroup{
		{Base: base("group-001"), Name: "Gallinas ponedoras", Species: models.SpeciesAves, Category: "gallina", Count: 120, Location: str("Galpón 1")},
		{Base: base("group-002"), Name: "Lechones destete", Species: models.SpeciesPorcino, Category: "lechon", Count: 25, Location: str("Porqueriza")},
		{Base: base("group-003"), Name: "Corderos", Species: models.SpeciesOvino, Category: "cordero", Count: 15, Location: str("Potrero El Mango")},
	}
}

func potreros() []models.Potrero {
	return []models.Potrero{
		{Base: base("potrero-001"), Name: "La Ceiba", Area: 4.0, Capacity: 10, CurrentOccupancy: 2, GrassType: str("Kikuyo"), Status: models.PotreroOccupied},
		{Base: base("potrero-002"), Name: "El Mango", Area: 6.5, Capacity: 15, CurrentOccupancy: 2, GrassType: str("Brachiaria"), Status: models.PotreroOccupied},
		{Base: base("potrero-003"), Name: "Los Guaduales", Area: 2.0, Capacity: 6, CurrentOccupancy: 1, GrassType: str("Estrella"), Status: models.PotreroOccupied},
		{Base: base("potrero-004"), Name: "La Loma", Area: 5.0, Capacity: 12, CurrentOccupancy: 1, GrassType: str("Angleton"), Status: models.PotreroResting},
	}
}

func healthRecords() []models.HealthRecord {
	return []models.HealthRecord{
		{Base: base("health-001"), LivestockID: "animal-001", Date: day("2026-02-01"), Type: models.HealthVaccination, Description: "Aftosa ciclo I", Medication: str("Aftogan"), Dose: str("2 ml"), Veterinarian: str("Dra. Ríos"), Cost: num(15000), NextCheckup: dayPtr("2026-08-01")},
		{Base: base("health-002"), LivestockID: "animal-003", Date: day("2026-05-14"), Type: models.HealthTreatment, Description: "Mastitis cuarto posterior", Medication: str("Cefalexina"), Veterinarian: str("Dra. Ríos"), Cost: num(85000), NextCheckup: dayPtr("2026-05-28")},
		{Base: base("health-003"), LivestockID: "animal-005", Date: day("2026-03-01"), Type: models.HealthDeworming, Description: "Desparasitación ternera", Medication: str("Ivermectina"), Cost: num(8000)},
		{Base: base("health-004"), LivestockID: "animal-007", Date: day("2026-06-10"), Type: models.HealthCheckup, Description: "Revisión de cascos", Veterinarian: str("Dr. Pérez"), Cost: num(40000), NextCheckup: dayPtr("2026-12-10")},
	}
}

func groupHealthActions() []models.GroupHealthAction {
	return []models.GroupHealthAction{
		{Base: base("group-health-001"), Date: day("2026-04-02"), Type: models.HealthVaccination, Description: "Newcastle", Species: species(models.SpeciesAves), Category: str("gallina"), GroupID: str("group-001"), GroupName: str("Gallinas ponedoras"), AffectedCount: 120, Medication: str("La Sota"), Cost: num(60000), NextCheckup: dayPtr("2026-10-02")},
		{Base: base("group-health-002"), Date: day("2026-05-20"), Type: models.HealthDeworming, Description: "Desparasitación general", Species: species(models.SpeciesPorcino), Category: str("lechon"), GroupID: str("group-002"), GroupName: str("Lechones destete"), AffectedCount: 25, Cost: num(45000)},
	}
}

func reproduction() []models.ReproductionRecord {
	return []models.ReproductionRecord{
		{Base: base("repro-001"), CowID: "animal-001", BullID: str("animal-004"), Type: models.ReproductionNatural, ServiceDate: day("2025-05-03"), ExpectedBirthDate: day("2026-02-10"), Status: models.ReproductionBorn, ActualBirthDate: dayPtr("2026-02-11"), CalfID: str("animal-005"), CalfTag: str("BOV-005")},
		{Base: base("repro-002"), CowID: "animal-002", SemenBatch: str("HOL-2291"), Type: models.ReproductionArtificial, ServiceDate: day("2026-02-20"), ExpectedBirthDate: day("2026-11-30"), Status: models.ReproductionConfirmed},
		{Base: base("repro-003"), CowID: "animal-003", BullID: str("animal-004"), Type: models.ReproductionNatural, ServiceDate: day("2026-06-15"), ExpectedBirthDate: day("2027-03-25"), Status: models.ReproductionPending},
	}
}

func milkProduction() []models.MilkProduction {
	quality := models.QualityA
	return []models.MilkProduction{
		{Base: base("milk-001"), Date: day("2026-04-10"), Shift: models.ShiftMorning, TotalLiters: 42, CowsMilked: 3, AvgPerCow: 14, Quality: &quality, Destination: str("sale")},
		{Base: base("milk-002"), Date: day("2026-04-10"), Shift: models.ShiftAfternoon, TotalLiters: 31, CowsMilked: 3, AvgPerCow: 10.33, Quality: &quality, Destination: str("sale")},
		{Base: base("milk-003"), Date: day("2026-05-10"), Shift: models.ShiftMorning, TotalLiters: 40, CowsMilked: 3, AvgPerCow: 13.33, Destination: str("processing")},
		{Base: base("milk-004"), Date: day("2026-06-10"), Shift: models.ShiftMorning, TotalLiters: 28, CowsMilked: 2, AvgPerCow: 14, Destination: str("sale")},
		{Base: base("milk-005"), Date: day("2026-06-10"), Shift: models.ShiftAfternoon, TotalLiters: 21, CowsMilked: 2, AvgPerCow: 10.5, Destination: str("calves")},
	}
}

func sales() []models.SaleRecord {
	return []models.SaleRecord{
		{Base: base("sale-001"), Date: day("2026-04-20"), InvoiceNumber: "FV-0001", ModuleSource: models.ModuleAgro, Product: "Plátano hartón", Quantity: 5000, Unit: "kg", UnitPrice: 1800, TotalAmount: 9000000, BuyerName: "Comercializadora El Valle", PaymentMethod: models.MethodTransfer, PaymentStatus: models.PaymentPaid, AmountPaid: 9000000},
		{Base: base("sale-002"), Date: day("2026-05-05"), InvoiceNumber: "FV-0002", ModuleSource: models.ModuleAgro, Product: "Plátano hartón", Quantity: 3600, Unit: "kg", UnitPrice: 1500, TotalAmount: 5400000, BuyerName: "Supermercado La Plaza", PaymentMethod: models.MethodCredit, PaymentStatus: models.PaymentPartial, AmountPaid: 2000000, DueDate: dayPtr("2026-06-05")},
		{Base: base("sale-003"), Date: day("2026-05-31"), InvoiceNumber: "FV-0003", ModuleSource: models.ModulePecuario, Product: "Leche cruda", Quantity: 1200, Unit: "l", UnitPrice: 1900, TotalAmount: 2280000, BuyerName: "Lácteos San José", PaymentMethod: models.MethodTransfer, PaymentStatus: models.PaymentPaid, AmountPaid: 2280000},
		{Base: base("sale-004"), Date: day("2026-03-20"), InvoiceNumber: "FV-0004", ModuleSource: models.ModulePecuario, Product: "Novillo en pie", Quantity: 380, Unit: "kg", UnitPrice: 9200, TotalAmount: 3496000, BuyerName: "Subasta Ganadera", PaymentMethod: models.MethodCheck, PaymentStatus: models.PaymentPaid, AmountPaid: 3496000},
		{Base: base("sale-005"), Date: day("2026-06-15"), InvoiceNumber: "FV-0005", ModuleSource: models.ModuleApicultura, Product: "Miel", Quantity: 40, Unit: "kg", UnitPrice: 25000, TotalAmount: 1000000, BuyerName: "Tienda Natural", PaymentMethod: models.MethodCredit, PaymentStatus: models.PaymentPending, DueDate: dayPtr("2027-01-15")},
		{Base: base("sale-006"), Date: day("2026-06-20"), InvoiceNumber: "FV-0006", ModuleSource: models.ModuleGeneral, Product: "Abono orgánico", Quantity: 50, Unit: "bulto", UnitPrice: 18000, TotalAmount: 900000, BuyerName: "Vivero Las Flores", PaymentMethod: models.MethodCash, PaymentStatus: models.PaymentPaid, AmountPaid: 900000},
	}
}

func purchases() []models.PurchaseRecord {
	return []models.PurchaseRecord{
		{Base: base("purchase-001"), Date: day("2026-03-01"), InvoiceNumber: "FC-1001", SupplierName: "Agroinsumos del Valle", Category: models.ExpenseSupplies, Description: "Semilla de maíz y urea", TotalAmount: 1470000, PaymentMethod: models.MethodTransfer, PaymentStatus: models.PaymentPaid, AmountPaid: 1470000, ModuleUsage: module(models.ModuleAgro)},
		{Base: base("purchase-002"), Date: day("2026-04-15"), InvoiceNumber: "FC-1002", SupplierName: "Concentrados Solla", Category: models.ExpenseFeed, Description: "Concentrado lechero 40 bultos", TotalAmount: 3200000, PaymentMethod: models.MethodCredit, PaymentStatus: models.PaymentPartial, AmountPaid: 1200000, DueDate: dayPtr("2026-05-15"), ModuleUsage: module(models.ModulePecuario)},
		{Base: base("purchase-003"), Date: day("2026-05-14"), InvoiceNumber: "FC-1003", SupplierName: "Veterinaria El Establo", Category: models.ExpenseVeterinary, Description: "Antibióticos y vacunas", TotalAmount: 410000, PaymentMethod: models.MethodCash, PaymentStatus: models.PaymentPaid, AmountPaid: 410000, ModuleUsage: module(models.ModulePecuario)},
		{Base: base("purchase-004"), Date: day("2026-05-30"), InvoiceNumber: "FC-1004", SupplierName: "Jornales mayo", Category: models.ExpenseLabor, Description: "Pago de jornaleros", TotalAmount: 2800000, PaymentMethod: models.MethodCash, PaymentStatus: models.PaymentPaid, AmountPaid: 2800000, ModuleUsage: module(models.ModuleGeneral)},
		{Base: base("purchase-005"), Date: day("2026-06-02"), InvoiceNumber: "FC-1005", SupplierName: "Taller Agrícola", Category: models.ExpenseMachinery, Description: "Mantenimiento tractor", TotalAmount: 1900000, PaymentMethod: models.MethodCredit, PaymentStatus: models.PaymentPending, DueDate: dayPtr("2027-02-01"), ModuleUsage: module(models.ModuleAgro)},
		{Base: base("purchase-006"), Date: day("2026-06-25"), InvoiceNumber: "FC-1006", SupplierName: "Empresa de Energía", Category: models.ExpenseServices, Description: "Energía ordeño", TotalAmount: 350000, PaymentMethod: models.MethodTransfer, PaymentStatus: models.PaymentPaid, AmountPaid: 350000},
	}
}

func budgets() []models.Budget {
	return []models.Budget{
		{Base: base("budget-001"), Category: models.ExpenseSupplies, Budgeted: 4000000, PeriodStart: day("2026-01-01"), PeriodEnd: day("2026-12-31")},
		{Base: base("budget-002"), Category: models.ExpenseFeed, Budgeted: 3400000, PeriodStart: day("2026-01-01"), PeriodEnd: day("2026-12-31")},
		{Base: base("budget-003"), Category: models.ExpenseVeterinary, Budgeted: 350000, PeriodStart: day("2026-01-01"), PeriodEnd: day("2026-12-31")},
		{Base: base("budget-004"), Category: models.ExpenseLabor, Budgeted: 12000000, PeriodStart: day("2026-01-01"), PeriodEnd: day("2026-12-31")},
	}
}
