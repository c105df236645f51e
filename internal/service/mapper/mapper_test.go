package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/finca/internal/domain/models"
)

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func saleForm() models.SaleForm {
	return models.SaleForm{
		Date:          "2026-06-01",
		InvoiceNumber: "fv-0100",
		ModuleSource:  "pecuario",
		Product:       "Queso campesino",
		Quantity:      "150",
		Unit:          "kg",
		UnitPrice:     "8000",
		BuyerName:     "Tienda La Esquina",
		PaymentMethod: "cash",
		PaymentStatus: "paid",
	}
}

func TestSaleDerivesTotalAndPaidAmount(t *testing.T) {
	m := New()

	sale, err := m.Sale(saleForm())
	require.NoError(t, err)
	assert.Equal(t, 1200000.0, sale.TotalAmount)
	assert.Equal(t, 1200000.0, sale.AmountPaid)
	assert.Equal(t, "FV-0100", sale.InvoiceNumber)
	assert.Nil(t, sale.BuyerContact)
	assert.Nil(t, sale.DueDate)
	require.NoError(t, sale.Validate())

	f := saleForm()
	f.PaymentStatus = "pending"
	sale, err = m.Sale(f)
	require.NoError(t, err)
	assert.Zero(t, sale.AmountPaid)

	f.PaymentStatus = "partial"
	f.AmountPaid = "500000"
	sale, err = m.Sale(f)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, sale.AmountPaid)
	assert.Equal(t, 700000.0, sale.Pending())
}

func TestMilkAverageIsRoundedToCents(t *testing.T) {
	milk, err := New().MilkProduction(models.MilkProductionForm{
		Date:        "2026-06-10",
		Shift:       "morning",
		TotalLiters: "150",
		CowsMilked:  "28",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.36, milk.AvgPerCow)
	assert.Nil(t, milk.Quality)
	require.NoError(t, milk.Validate())
}

func TestMilkRejectsZeroCows(t *testing.T) {
	_, err := New().MilkProduction(models.MilkProductionForm{
		Date: "2026-06-10", Shift: "morning", TotalLiters: "10", CowsMilked: "0",
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestReproductionExpectedBirthDate(t *testing.T) {
	m := New()
	form := models.ReproductionForm{
		CowID:       "animal-002",
		BullID:      "animal-004",
		Type:        "artificial_insemination",
		ServiceDate: "2026-01-01",
		Status:      "confirmed",
		CalfTag:     "BOV-099",
	}

	rec, err := m.Reproduction(form, models.SpeciesBovino, nil)
	require.NoError(t, err)
	assert.Equal(t, date("2026-10-11"), rec.ExpectedBirthDate)
	assert.Nil(t, rec.BullID, "bull only kept for natural service")
	assert.Nil(t, rec.CalfTag, "calf data only kept once born")

	rec, err = m.Reproduction(form, models.SpeciesPorcino, nil)
	require.NoError(t, err)
	assert.Equal(t, date("2026-04-25"), rec.ExpectedBirthDate)

	rec, err = m.Reproduction(form, models.Species("llama"), nil)
	require.NoError(t, err)
	assert.Equal(t, date("2026-10-11"), rec.ExpectedBirthDate)
}

func TestReproductionEditKeepsStoredExpectedDate(t *testing.T) {
	m := New()
	existing := models.ReproductionRecord{
		ServiceDate:       date("2026-01-01"),
		ExpectedBirthDate: date("2026-10-20"),
	}
	form := models.ReproductionForm{
		CowID:       "animal-002",
		Type:        "natural",
		BullID:      "animal-004",
		ServiceDate: "2026-01-01",
		Status:      "confirmed",
	}

	rec, err := m.Reproduction(form, models.SpeciesBovino, &existing)
	require.NoError(t, err)
	assert.Equal(t, date("2026-10-20"), rec.ExpectedBirthDate)
	require.NotNil(t, rec.BullID)

	form.ServiceDate = "2026-02-01"
	rec, err = m.Reproduction(form, models.SpeciesBovino, &existing)
	require.NoError(t, err)
	assert.Equal(t, date("2026-11-11"), rec.ExpectedBirthDate)

	form.ExpectedBirthDate = "2026-11-01"
	rec, err = m.Reproduction(form, models.SpeciesBovino, &existing)
	require.NoError(t, err)
	assert.Equal(t, date("2026-11-01"), rec.ExpectedBirthDate)
}

func TestReproductionBornKeepsCalfData(t *testing.T) {
	rec, err := New().Reproduction(models.ReproductionForm{
		CowID:           "animal-001",
		Type:            "natural",
		ServiceDate:     "2025-05-03",
		Status:          "born",
		ActualBirthDate: "2026-02-11",
		CalfID:          "animal-005",
		CalfTag:         "BOV-005",
	}, models.SpeciesBovino, nil)
	require.NoError(t, err)
	require.NotNil(t, rec.ActualBirthDate)
	assert.Equal(t, date("2026-02-11"), *rec.ActualBirthDate)
	assert.Equal(t, "animal-005", *rec.CalfID)
}

func TestHarvestTotalValueOnlyWithPrice(t *testing.T) {
	m := New()
	form := models.HarvestForm{
		CropID: "crop-010", LoteID: "lote-010", Date: "2026-06-01",
		Quantity: "500", Unit: "kg", Quality: "A", Destination: "sale", PricePerUnit: "2000",
	}

	h, err := m.Harvest(form)
	require.NoError(t, err)
	require.NotNil(t, h.TotalValue)
	assert.Equal(t, 1000000.0, *h.TotalValue)
	assert.Equal(t, 1000000.0, h.Revenue())

	form.PricePerUnit = "  "
	h, err = m.Harvest(form)
	require.NoError(t, err)
	assert.Nil(t, h.PricePerUnit)
	assert.Nil(t, h.TotalValue)
	assert.Zero(t, h.Revenue())
}

func TestOptionalFieldsBecomeNil(t *testing.T) {
	l, err := New().Livestock(models.LivestockForm{
		Tag: "bov-100", Species: "bovino", Category: "vaca", Gender: "female",
		Status: "active", EntryDate: "2026-01-05", EntryReason: "purchase",
		Name: " ", Weight: "", PotreroID: "", MotherID: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "BOV-100", l.Tag)
	assert.Nil(t, l.Name)
	assert.Nil(t, l.Weight)
	assert.Nil(t, l.PotreroID)
	assert.Nil(t, l.MotherID)
	assert.Nil(t, l.BirthDate)
}

func TestNumbersAndDatesAreParsedStrictly(t *testing.T) {
	m := New()
	tests := []struct {
		name string
		form models.PotreroForm
	}{
		{"nan", models.PotreroForm{Name: "P", Area: "NaN", Capacity: "4", Status: "available"}},
		{"inf", models.PotreroForm{Name: "P", Area: "+Inf", Capacity: "4", Status: "available"}},
		{"text", models.PotreroForm{Name: "P", Area: "cuatro", Capacity: "4", Status: "available"}},
		{"fractional capacity", models.PotreroForm{Name: "P", Area: "4", Capacity: "4.5", Status: "available"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Potrero(tt.form)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}

	dates := []struct {
		name, start, end string
	}{
		{"day first", "01/02/2026", "2026-12-31"},
		{"trailing text", "2026-01-01garbage", "2026-12-31"},
		{"trailing digits", "2026-01-01", "2026-12-3199"},
		{"bad timestamp", "2026-01-01T25:00:00Z", "2026-12-31"},
		{"timestamp without offset", "2026-01-01T08:00:00", "2026-12-31"},
	}
	for _, tt := range dates {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Budget(models.BudgetForm{Category: "feed", Budgeted: "100", PeriodStart: tt.start, PeriodEnd: tt.end})
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestDateAcceptsRFC3339Timestamp(t *testing.T) {
	b, err := New().Budget(models.BudgetForm{
		Category: "feed", Budgeted: "100",
		PeriodStart: "2026-01-01T00:00:00Z", PeriodEnd: "2026-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, date("2026-01-01"), b.PeriodStart)

	b, err = New().Budget(models.BudgetForm{
		Category: "feed", Budgeted: "100",
		PeriodStart: "2026-01-01T22:30:00-05:00", PeriodEnd: "2026-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, date("2026-01-01"), b.PeriodStart)
}

func TestValidatorReportsJSONFieldNames(t *testing.T) {
	_, err := New().Lote(models.LoteForm{Code: "LT-1", Name: "Norte", Area: "2", Status: "flooded"})
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "status")

	_, err = New().Sale(models.SaleForm{})
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "date")
}

func TestPotreroBlankOccupancyMeansEmpty(t *testing.T) {
	p, err := New().Potrero(models.PotreroForm{Name: "La Ceiba", Area: "4", Capacity: "10", Status: "available"})
	require.NoError(t, err)
	assert.Zero(t, p.CurrentOccupancy)
}

func TestLoteDefaultsIrrigation(t *testing.T) {
	l, err := New().Lote(models.LoteForm{Code: "lt-010", Name: "Nuevo", Area: "3.0", Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, "LT-010", l.Code)
	assert.Equal(t, models.IrrigationNone, l.IrrigationType)
}
