package models

import "time"

// Species enumerates the animal species the farm tracks.
type Species string

const (
	SpeciesBovino   Species = "bovino"
	SpeciesBufalino Species = "bufalino"
	SpeciesPorcino  Species = "porcino"
	SpeciesOvino    Species = "ovino"
	SpeciesCaprino  Species = "caprino"
	SpeciesEquino   Species = "equino"
	SpeciesAves     Species = "aves"
)

// speciesCategories lists the categories allowed for each species.
var speciesCategories = map[Species][]string{
	SpeciesBovino:   {"vaca", "toro", "novillo", "novilla", "ternero", "ternera"},
	SpeciesBufalino: {"bufala", "bufalo", "bucerro"},
	SpeciesPorcino:  {"cerda", "verraco", "lechon", "levante", "ceba"},
	SpeciesOvino:    {"oveja", "carnero", "cordero"},
	SpeciesCaprino:  {"cabra", "macho_cabrio", "cabrito"},
	SpeciesEquino:   {"yegua", "caballo", "potro"},
	SpeciesAves:     {"gallina", "gallo", "pollo"},
}

// gestationDays holds the gestation length per species.
var gestationDays = map[Species]int{
	SpeciesBovino:   283,
	SpeciesBufalino: 310,
	SpeciesEquino:   340,
	SpeciesPorcino:  114,
	SpeciesOvino:    150,
	SpeciesCaprino:  150,
}

// BovineGestationDays is the fallback gestation length.
const BovineGestationDays = 283

// CategoryAllowed reports whether category belongs to the species' category set.
func CategoryAllowed(s Species, category string) bool {
	for _, c := range speciesCategories[s] {
		if c == category {
			return true
		}
	}
	return false
}

// GestationDays returns the gestation length for a species, bovine when unknown.
func GestationDays(s Species) int {
	if d, ok := gestationDays[s]; ok {
		return d
	}
	return BovineGestationDays
}

// Gender of an individual animal.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// LivestockStatus tracks whether an animal is still on the farm.
type LivestockStatus string

const (
	LivestockActive      LivestockStatus = "active"
	LivestockSold        LivestockStatus = "sold"
	LivestockDeceased    LivestockStatus = "deceased"
	LivestockTransferred LivestockStatus = "transferred"
)

// Livestock is an individually tagged animal.
type Livestock struct {
	Base
	Tag         string          `json:"tag"`
	Name        *string         `json:"name,omitempty"`
	Species     Species         `json:"species"`
	Category    string          `json:"category"`
	Breed       *string         `json:"breed,omitempty"`
	Gender      Gender          `json:"gender"`
	BirthDate   *time.Time      `json:"birthDate,omitempty"`
	Weight      *float64        `json:"weight,omitempty"`
	Status      LivestockStatus `json:"status"`
	PotreroID   *string         `json:"potreroId,omitempty"`
	EntryDate   time.Time       `json:"entryDate"`
	EntryReason string          `json:"entryReason"`
	ExitDate    *time.Time      `json:"exitDate,omitempty"`
	ExitReason  *string         `json:"exitReason,omitempty"`
	MotherID    *string         `json:"motherId,omitempty"`
	FatherID    *string         `json:"fatherId,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
}

// Validate checks the animal's own invariants.
func (l Livestock) Validate() error {
	if l.Tag == "" {
		return Invariantf("livestock tag must not be empty")
	}
	if !CategoryAllowed(l.Species, l.Category) {
		return Invariantf("category %q is not valid for species %q", l.Category, l.Species)
	}
	if l.Status == LivestockActive && (l.ExitDate != nil || l.ExitReason != nil) {
		return Invariantf("active livestock cannot carry exit data")
	}
	if l.MotherID != nil && *l.MotherID == l.ID && l.ID != "" {
		return Invariantf("livestock cannot be its own mother")
	}
	if l.FatherID != nil && *l.FatherID == l.ID && l.ID != "" {
		return Invariantf("livestock cannot be its own father")
	}
	return nonNegative("weight", l.Weight)
}

// LivestockGroup is a cohort of animals that are not individually tracked.
type LivestockGroup struct {
	Base
	Name     string  `json:"name"`
	Species  Species `json:"species"`
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Location *string `json:"location,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Validate checks the group's own invariants.
func (g LivestockGroup) Validate() error {
	if g.Count < 1 {
		return Invariantf("group count must be at least 1")
	}
	if !CategoryAllowed(g.Species, g.Category) {
		return Invariantf("category %q is not valid for species %q", g.Category, g.Species)
	}
	return nil
}

// PotreroStatus describes a paddock's availability.
type PotreroStatus string

const (
	PotreroAvailable   PotreroStatus = "available"
	PotreroOccupied    PotreroStatus = "occupied"
	PotreroResting     PotreroStatus = "resting"
	PotreroMaintenance PotreroStatus = "maintenance"
)

// Potrero is a fenced grazing paddock.
type Potrero struct {
	Base
	Name             string        `json:"name"`
	Area             float64       `json:"area"`
	Capacity         int           `json:"capacity"`
	CurrentOccupancy int           `json:"currentOccupancy"`
	GrassType        *string       `json:"grassType,omitempty"`
	Status           PotreroStatus `json:"status"`
	Notes            *string       `json:"notes,omitempty"`
}

// Validate enforces 0 <= currentOccupancy <= capacity.
func (p Potrero) Validate() error {
	if err := positive("potrero area", p.Area); err != nil {
		return err
	}
	if p.Capacity <= 0 {
		return Invariantf("potrero capacity must be greater than zero")
	}
	if p.CurrentOccupancy < 0 || p.CurrentOccupancy > p.Capacity {
		return Invariantf("potrero occupancy %d outside 0..%d", p.CurrentOccupancy, p.Capacity)
	}
	return nil
}

// HealthType enumerates veterinary interventions.
type HealthType string

const (
	HealthVaccination HealthType = "vaccination"
	HealthTreatment   HealthType = "treatment"
	HealthDeworming   HealthType = "deworming"
	HealthCheckup     HealthType = "checkup"
	HealthSurgery     HealthType = "surgery"
)

// OpenCare reports whether the intervention keeps an animal under care until its next checkup.
func (t HealthType) OpenCare() bool {
	return t == HealthTreatment || t == HealthSurgery
}

// HealthRecord is a veterinary intervention on one animal.
type HealthRecord struct {
	Base
	LivestockID  string     `json:"livestockId"`
	Date         time.Time  `json:"date"`
	Type         HealthType `json:"type"`
	Description  string     `json:"description"`
	Medication   *string    `json:"medication,omitempty"`
	Dose         *string    `json:"dose,omitempty"`
	Veterinarian *string    `json:"veterinarian,omitempty"`
	Cost         *float64   `json:"cost,omitempty"`
	NextCheckup  *time.Time `json:"nextCheckup,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// Validate checks the record's own invariants.
func (h HealthRecord) Validate() error {
	return nonNegative("health cost", h.Cost)
}

// GroupHealthAction is a veterinary intervention on a cohort.
type GroupHealthAction struct {
	Base
	Date          time.Time  `json:"date"`
	Type          HealthType `json:"type"`
	Description   string     `json:"description"`
	Species       *Species   `json:"species,omitempty"`
	Category      *string    `json:"category,omitempty"`
	GroupID       *string    `json:"groupId,omitempty"`
	GroupName     *string    `json:"groupName,omitempty"`
	AffectedCount int        `json:"affectedCount"`
	Medication    *string    `json:"medication,omitempty"`
	Veterinarian  *string    `json:"veterinarian,omitempty"`
	Cost          *float64   `json:"cost,omitempty"`
	NextCheckup   *time.Time `json:"nextCheckup,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// Validate checks the action's own invariants.
func (g GroupHealthAction) Validate() error {
	if g.AffectedCount < 1 {
		return Invariantf("affected count must be at least 1")
	}
	if g.Species != nil && g.Category != nil && !CategoryAllowed(*g.Species, *g.Category) {
		return Invariantf("category %q is not valid for species %q", *g.Category, *g.Species)
	}
	return nonNegative("group health cost", g.Cost)
}

// ReproductionType says how a female was serviced.
type ReproductionType string

const (
	ReproductionNatural    ReproductionType = "natural"
	ReproductionArtificial ReproductionType = "artificial_insemination"
)

// ReproductionStatus tracks a service through to birth.
type ReproductionStatus string

const (
	ReproductionPending   ReproductionStatus = "pending"
	ReproductionConfirmed ReproductionStatus = "confirmed"
	ReproductionFailed    ReproductionStatus = "failed"
	ReproductionBorn      ReproductionStatus = "born"
)

// ReproductionRecord is a service event for a female animal.
type ReproductionRecord struct {
	Base
	CowID             string             `json:"cowId"`
	BullID            *string            `json:"bullId,omitempty"`
	SemenBatch        *string            `json:"semenBatch,omitempty"`
	Type              ReproductionType   `json:"type"`
	ServiceDate       time.Time          `json:"serviceDate"`
	ExpectedBirthDate time.Time          `json:"expectedBirthDate"`
	Status            ReproductionStatus `json:"status"`
	ActualBirthDate   *time.Time         `json:"actualBirthDate,omitempty"`
	CalfID            *string            `json:"calfId,omitempty"`
	CalfTag           *string            `json:"calfTag,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
}

// Validate checks the record's own invariants.
func (r ReproductionRecord) Validate() error {
	if r.BullID != nil && r.Type != ReproductionNatural {
		return Invariantf("bull is only recorded for natural service")
	}
	if r.Status != ReproductionBorn && (r.CalfID != nil || r.CalfTag != nil || r.ActualBirthDate != nil) {
		return Invariantf("calf data is only recorded once born")
	}
	if r.ExpectedBirthDate.Before(r.ServiceDate) {
		return Invariantf("expected birth date precedes service date")
	}
	return nil
}

// MilkShift is the milking session.
type MilkShift string

const (
	ShiftMorning   MilkShift = "morning"
	ShiftAfternoon MilkShift = "afternoon"
)

// MilkProduction is one milking session's output.
type MilkProduction struct {
	Base
	Date        time.Time       `json:"date"`
	Shift       MilkShift       `json:"shift"`
	TotalLiters float64         `json:"totalLiters"`
	CowsMilked  int             `json:"cowsMilked"`
	AvgPerCow   float64         `json:"avgPerCow"`
	Quality     *HarvestQuality `json:"quality,omitempty"`
	Destination *string         `json:"destination,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
}

// Validate checks cowsMilked > 0 and the derived average.
func (m MilkProduction) Validate() error {
	if m.CowsMilked <= 0 {
		return Invariantf("cows milked must be greater than zero")
	}
	if m.TotalLiters < 0 {
		return Invariantf("total liters must not be negative")
	}
	if m.AvgPerCow != Round2(m.TotalLiters/float64(m.CowsMilked)) {
		return Invariantf("average per cow must equal total liters over cows milked")
	}
	return nil
}
