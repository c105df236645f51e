// Package mapper converts text-valued dashboard forms into typed entities and
// computes every derived field.
package mapper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mamadbah2/finca/internal/domain/models"
)

// Mapper holds the struct validator shared by all mapping functions.
type Mapper struct {
	validate *validator.Validate
}

// New builds a Mapper whose validation errors use the forms' JSON field names.
func New() *Mapper {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &Mapper{validate: v}
}

func (m *Mapper) check(form any) error {
	err := m.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Errorf("%w: %s failed %s=%s", models.ErrValidation, fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %s failed %s", models.ErrValidation, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", models.ErrValidation, err)
}

// Lote maps the parcel form.
func (m *Mapper) Lote(f models.LoteForm) (models.Lote, error) {
	if err := m.check(f); err != nil {
		return models.Lote{}, err
	}
	var p fields
	out := models.Lote{
		Code:           strings.ToUpper(text(f.Code)),
		Name:           text(f.Name),
		Area:           p.float("area", f.Area),
		Status:         models.LoteStatus(f.Status),
		IrrigationType: models.IrrigationType(f.IrrigationType),
		SoilType:       optText(f.SoilType),
		Location:       optText(f.Location),
		Notes:          optText(f.Notes),
	}
	if out.IrrigationType == "" {
		out.IrrigationType = models.IrrigationNone
	}
	return out, p.err
}

// Crop maps the crop form.
func (m *Mapper) Crop(f models.CropForm) (models.Crop, error) {
	if err := m.check(f); err != nil {
		return models.Crop{}, err
	}
	var p fields
	out := models.Crop{
		LoteID:              text(f.LoteID),
		Name:                text(f.Name),
		Variety:             text(f.Variety),
		Area:                p.float("area", f.Area),
		PlantingDate:        p.date("plantingDate", f.PlantingDate),
		ExpectedHarvestDate: p.date("expectedHarvestDate", f.ExpectedHarvestDate),
		Status:              models.CropStatus(f.Status),
		EstimatedYield:      p.optFloat("estimatedYield", f.EstimatedYield),
		ActualYield:         p.optFloat("actualYield", f.ActualYield),
		Notes:               optText(f.Notes),
	}
	return out, p.err
}

// AgroAction maps the field activity form.
func (m *Mapper) AgroAction(f models.AgroActionForm) (models.AgroAction, error) {
	if err := m.check(f); err != nil {
		return models.AgroAction{}, err
	}
	var p fields
	out := models.AgroAction{
		LoteID:      text(f.LoteID),
		CropID:      optText(f.CropID),
		Type:        models.AgroActionType(f.Type),
		Date:        p.date("date", f.Date),
		Description: text(f.Description),
		Product:     optText(f.Product),
		Quantity:    p.optFloat("quantity", f.Quantity),
		Unit:        optText(f.Unit),
		Cost:        p.optFloat("cost", f.Cost),
		Responsible: optText(f.Responsible),
	}
	return out, p.err
}

// Harvest maps the harvest form; totalValue = quantity × pricePerUnit when a price is given.
func (m *Mapper) Harvest(f models.HarvestForm) (models.Harvest, error) {
	if err := m.check(f); err != nil {
		return models.Harvest{}, err
	}
	var p fields
	out := models.Harvest{
		CropID:       text(f.CropID),
		LoteID:       text(f.LoteID),
		Date:         p.date("date", f.Date),
		Quantity:     p.float("quantity", f.Quantity),
		Unit:         text(f.Unit),
		Quality:      models.HarvestQuality(f.Quality),
		Destination:  models.HarvestDestination(f.Destination),
		PricePerUnit: p.optFloat("pricePerUnit", f.PricePerUnit),
		Notes:        optText(f.Notes),
	}
	if p.err != nil {
		return models.Harvest{}, p.err
	}
	if out.PricePerUnit != nil {
		total := models.Round2(out.Quantity * *out.PricePerUnit)
		out.TotalValue = &total
	}
	return out, nil
}

// Livestock maps the individual animal form.
func (m *Mapper) Livestock(f models.LivestockForm) (models.Livestock, error) {
	if err := m.check(f); err != nil {
		return models.Livestock{}, err
	}
	var p fields
	out := models.Livestock{
		Tag:         strings.ToUpper(text(f.Tag)),
		Name:        optText(f.Name),
		Species:     models.Species(f.Species),
		Category:    text(f.Category),
		Breed:       optText(f.Breed),
		Gender:      models.Gender(f.Gender),
		BirthDate:   p.optDate("birthDate", f.BirthDate),
		Weight:      p.optFloat("weight", f.Weight),
		Status:      models.LivestockStatus(f.Status),
		PotreroID:   optText(f.PotreroID),
		EntryDate:   p.date("entryDate", f.EntryDate),
		EntryReason: text(f.EntryReason),
		ExitDate:    p.optDate("exitDate", f.ExitDate),
		ExitReason:  optText(f.ExitReason),
		MotherID:    optText(f.MotherID),
		FatherID:    optText(f.FatherID),
		Notes:       optText(f.Notes),
	}
	return out, p.err
}

// LivestockGroup maps the cohort form.
func (m *Mapper) LivestockGroup(f models.LivestockGroupForm) (models.LivestockGroup, error) {
	if err := m.check(f); err != nil {
		return models.LivestockGroup{}, err
	}
	var p fields
	out := models.LivestockGroup{
		Name:     text(f.Name),
		Species:  models.Species(f.Species),
		Category: text(f.Category),
		Count:    p.int("count", f.Count),
		Location: optText(f.Location),
		Notes:    optText(f.Notes),
	}
	return out, p.err
}

// Potrero maps the paddock form. A blank occupancy means an empty paddock.
func (m *Mapper) Potrero(f models.PotreroForm) (models.Potrero, error) {
	if err := m.check(f); err != nil {
		return models.Potrero{}, err
	}
	var p fields
	out := models.Potrero{
		Name:             text(f.Name),
		Area:             p.float("area", f.Area),
		Capacity:         p.int("capacity", f.Capacity),
		CurrentOccupancy: p.optInt("currentOccupancy", f.CurrentOccupancy, 0),
		GrassType:        optText(f.GrassType),
		Status:           models.PotreroStatus(f.Status),
		Notes:            optText(f.Notes),
	}
	return out, p.err
}

// HealthRecord maps the individual health form.
func (m *Mapper) HealthRecord(f models.HealthRecordForm) (models.HealthRecord, error) {
	if err := m.check(f); err != nil {
		return models.HealthRecord{}, err
	}
	var p fields
	out := models.HealthRecord{
		LivestockID:  text(f.LivestockID),
		Date:         p.date("date", f.Date),
		Type:         models.HealthType(f.Type),
		Description:  text(f.Description),
		Medication:   optText(f.Medication),
		Dose:         optText(f.Dose),
		Veterinarian: optText(f.Veterinarian),
		Cost:         p.optFloat("cost", f.Cost),
		NextCheckup:  p.optDate("nextCheckup", f.NextCheckup),
		Notes:        optText(f.Notes),
	}
	return out, p.err
}

// GroupHealthAction maps the cohort health form.
func (m *Mapper) GroupHealthAction(f models.GroupHealthActionForm) (models.GroupHealthAction, error) {
	if err := m.check(f); err != nil {
		return models.GroupHealthAction{}, err
	}
	var p fields
	out := models.GroupHealthAction{
		Date:          p.date("date", f.Date),
		Type:          models.HealthType(f.Type),
		Description:   text(f.Description),
		Category:      optText(f.Category),
		GroupID:       optText(f.GroupID),
		GroupName:     optText(f.GroupName),
		AffectedCount: p.int("affectedCount", f.AffectedCount),
		Medication:    optText(f.Medication),
		Veterinarian:  optText(f.Veterinarian),
		Cost:          p.optFloat("cost", f.Cost),
		NextCheckup:   p.optDate("nextCheckup", f.NextCheckup),
		Notes:         optText(f.Notes),
	}
	if s := text(f.Species); s != "" {
		sp := models.Species(s)
		out.Species = &sp
	}
	return out, p.err
}

// Reproduction maps the service form. species is the cow's species and
// selects the gestation length. existing is nil on create. The expected birth
// date is computed on create when left blank; on edit a blank keeps the stored
// date. The bull is only kept for natural service and calf data only once born.
func (m *Mapper) Reproduction(f models.ReproductionForm, species models.Species, existing *models.ReproductionRecord) (models.ReproductionRecord, error) {
	if err := m.check(f); err != nil {
		return models.ReproductionRecord{}, err
	}
	var p fields
	out := models.ReproductionRecord{
		CowID:       text(f.CowID),
		BullID:      optText(f.BullID),
		SemenBatch:  optText(f.SemenBatch),
		Type:        models.ReproductionType(f.Type),
		ServiceDate: p.date("serviceDate", f.ServiceDate),
		Status:      models.ReproductionStatus(f.Status),
		CalfID:      optText(f.CalfID),
		CalfTag:     optText(f.CalfTag),
		Notes:       optText(f.Notes),
	}
	expected := p.optDate("expectedBirthDate", f.ExpectedBirthDate)
	actual := p.optDate("actualBirthDate", f.ActualBirthDate)
	if p.err != nil {
		return models.ReproductionRecord{}, p.err
	}

	switch {
	case expected != nil:
		out.ExpectedBirthDate = *expected
	case existing != nil && existing.ServiceDate.Equal(out.ServiceDate):
		out.ExpectedBirthDate = existing.ExpectedBirthDate
	default:
		out.ExpectedBirthDate = ExpectedBirth(out.ServiceDate, species)
	}

	if out.Type != models.ReproductionNatural {
		out.BullID = nil
	}
	if out.Status == models.ReproductionBorn {
		out.ActualBirthDate = actual
	} else {
		out.CalfID = nil
		out.CalfTag = nil
	}
	return out, nil
}

// ExpectedBirth adds the species' gestation length to the service date.
func ExpectedBirth(service time.Time, species models.Species) time.Time {
	return service.AddDate(0, 0, models.GestationDays(species))
}

// MilkProduction maps the milking form; avgPerCow = totalLiters / cowsMilked rounded to two decimals.
func (m *Mapper) MilkProduction(f models.MilkProductionForm) (models.MilkProduction, error) {
	if err := m.check(f); err != nil {
		return models.MilkProduction{}, err
	}
	var p fields
	out := models.MilkProduction{
		Date:        p.date("date", f.Date),
		Shift:       models.MilkShift(f.Shift),
		TotalLiters: p.float("totalLiters", f.TotalLiters),
		CowsMilked:  p.int("cowsMilked", f.CowsMilked),
		Destination: optText(f.Destination),
		Notes:       optText(f.Notes),
	}
	if p.err != nil {
		return models.MilkProduction{}, p.err
	}
	if q := text(f.Quality); q != "" {
		quality := models.HarvestQuality(q)
		out.Quality = &quality
	}
	avg, ok := AvgPerCow(out.TotalLiters, out.CowsMilked)
	if !ok {
		return models.MilkProduction{}, fmt.Errorf("%w: cowsMilked must be greater than zero", models.ErrValidation)
	}
	out.AvgPerCow = avg
	return out, nil
}

// AvgPerCow is the live form computation; ok is false when no cows were milked.
func AvgPerCow(totalLiters float64, cowsMilked int) (float64, bool) {
	if cowsMilked <= 0 {
		return 0, false
	}
	return models.Round2(totalLiters / float64(cowsMilked)), true
}

// Sale maps the sales form; totalAmount = quantity × unitPrice.
func (m *Mapper) Sale(f models.SaleForm) (models.SaleRecord, error) {
	if err := m.check(f); err != nil {
		return models.SaleRecord{}, err
	}
	var p fields
	out := models.SaleRecord{
		Date:          p.date("date", f.Date),
		InvoiceNumber: strings.ToUpper(text(f.InvoiceNumber)),
		ModuleSource:  models.Module(f.ModuleSource),
		Product:       text(f.Product),
		Quantity:      p.float("quantity", f.Quantity),
		Unit:          text(f.Unit),
		UnitPrice:     p.float("unitPrice", f.UnitPrice),
		BuyerName:     text(f.BuyerName),
		BuyerContact:  optText(f.BuyerContact),
		PaymentMethod: models.PaymentMethod(f.PaymentMethod),
		PaymentStatus: models.PaymentStatus(f.PaymentStatus),
		DueDate:       p.optDate("dueDate", f.DueDate),
		Notes:         optText(f.Notes),
	}
	paid := p.optFloat("amountPaid", f.AmountPaid)
	if p.err != nil {
		return models.SaleRecord{}, p.err
	}
	out.TotalAmount = models.Round2(out.Quantity * out.UnitPrice)
	out.AmountPaid = AmountPaid(paid, out.PaymentStatus, out.TotalAmount)
	return out, nil
}

// Purchase maps the supplier invoice form; the total is taken as entered.
func (m *Mapper) Purchase(f models.PurchaseForm) (models.PurchaseRecord, error) {
	if err := m.check(f); err != nil {
		return models.PurchaseRecord{}, err
	}
	var p fields
	out := models.PurchaseRecord{
		Date:          p.date("date", f.Date),
		InvoiceNumber: strings.ToUpper(text(f.InvoiceNumber)),
		SupplierName:  text(f.SupplierName),
		Category:      models.ExpenseCategory(f.Category),
		Description:   text(f.Description),
		TotalAmount:   p.float("totalAmount", f.TotalAmount),
		PaymentMethod: models.PaymentMethod(f.PaymentMethod),
		PaymentStatus: models.PaymentStatus(f.PaymentStatus),
		DueDate:       p.optDate("dueDate", f.DueDate),
		Notes:         optText(f.Notes),
	}
	paid := p.optFloat("amountPaid", f.AmountPaid)
	if p.err != nil {
		return models.PurchaseRecord{}, p.err
	}
	if u := text(f.ModuleUsage); u != "" {
		usage := models.Module(u)
		out.ModuleUsage = &usage
	}
	out.TotalAmount = models.Round2(out.TotalAmount)
	out.AmountPaid = AmountPaid(paid, out.PaymentStatus, out.TotalAmount)
	return out, nil
}

// AmountPaid applies the default: the entered amount, else the full total when paid, else zero.
func AmountPaid(entered *float64, status models.PaymentStatus, total float64) float64 {
	if entered != nil {
		return models.Round2(*entered)
	}
	if status == models.PaymentPaid {
		return total
	}
	return 0
}

// Budget maps the budget form.
func (m *Mapper) Budget(f models.BudgetForm) (models.Budget, error) {
	if err := m.check(f); err != nil {
		return models.Budget{}, err
	}
	var p fields
	out := models.Budget{
		Category:    models.ExpenseCategory(f.Category),
		Budgeted:    p.float("budgeted", f.Budgeted),
		PeriodStart: p.date("periodStart", f.PeriodStart),
		PeriodEnd:   p.date("periodEnd", f.PeriodEnd),
		Notes:       optText(f.Notes),
	}
	return out, p.err
}
