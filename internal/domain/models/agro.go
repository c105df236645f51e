package models

import "time"

// LoteStatus enumerates the working state of a parcel.
type LoteStatus string

const (
	LoteActive      LoteStatus = "active"
	LoteResting     LoteStatus = "resting"
	LotePreparation LoteStatus = "preparation"
)

// IrrigationType enumerates how a parcel is watered.
type IrrigationType string

const (
	IrrigationNone      IrrigationType = "none"
	IrrigationDrip      IrrigationType = "drip"
	IrrigationSprinkler IrrigationType = "sprinkler"
	IrrigationGravity   IrrigationType = "gravity"
	IrrigationPivot     IrrigationType = "pivot"
)

// Lote is a managed land parcel under cultivation.
type Lote struct {
	Base
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	Area           float64        `json:"area"`
	Status         LoteStatus     `json:"status"`
	IrrigationType IrrigationType `json:"irrigationType"`
	SoilType       *string        `json:"soilType,omitempty"`
	Location       *string        `json:"location,omitempty"`
	Notes          *string        `json:"notes,omitempty"`
}

// Validate checks the parcel's own invariants.
func (l Lote) Validate() error {
	if l.Code == "" {
		return Invariantf("lote code must not be empty")
	}
	return positive("lote area", l.Area)
}

// CropStatus tracks a crop from planning to harvest.
type CropStatus string

const (
	CropPlanned   CropStatus = "planned"
	CropPlanted   CropStatus = "planted"
	CropGrowing   CropStatus = "growing"
	CropReady     CropStatus = "ready"
	CropHarvested CropStatus = "harvested"
)

// Crop is a planting on a Lote.
type Crop struct {
	Base
	LoteID              string     `json:"loteId"`
	Name                string     `json:"name"`
	Variety             string     `json:"variety"`
	Area                float64    `json:"area"`
	PlantingDate        time.Time  `json:"plantingDate"`
	ExpectedHarvestDate time.Time  `json:"expectedHarvestDate"`
	Status              CropStatus `json:"status"`
	EstimatedYield      *float64   `json:"estimatedYield,omitempty"`
	ActualYield         *float64   `json:"actualYield,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
}

// Validate checks the crop's own invariants. Parent checks happen at the service.
func (c Crop) Validate() error {
	if err := positive("crop area", c.Area); err != nil {
		return err
	}
	if c.ExpectedHarvestDate.Before(c.PlantingDate) {
		return Invariantf("expected harvest date precedes planting date")
	}
	if err := nonNegative("estimated yield", c.EstimatedYield); err != nil {
		return err
	}
	return nonNegative("actual yield", c.ActualYield)
}

// Active reports whether the crop still occupies its parcel.
func (c Crop) Active() bool {
	return c.Status != CropHarvested
}

// AgroActionType enumerates logged field activities.
type AgroActionType string

const (
	ActionPlanting        AgroActionType = "planting"
	ActionIrrigation      AgroActionType = "irrigation"
	ActionFertilization   AgroActionType = "fertilization"
	ActionPesticide       AgroActionType = "pesticide"
	ActionWeeding         AgroActionType = "weeding"
	ActionPruning         AgroActionType = "pruning"
	ActionHarvest         AgroActionType = "harvest"
	ActionSoilPreparation AgroActionType = "soil_preparation"
)

// AgroAction is an agricultural activity logged against a Lote and optionally a Crop.
type AgroAction struct {
	Base
	LoteID      string         `json:"loteId"`
	CropID      *string        `json:"cropId,omitempty"`
	Type        AgroActionType `json:"type"`
	Date        time.Time      `json:"date"`
	Description string         `json:"description"`
	Product     *string        `json:"product,omitempty"`
	Quantity    *float64       `json:"quantity,omitempty"`
	Unit        *string        `json:"unit,omitempty"`
	Cost        *float64       `json:"cost,omitempty"`
	Responsible *string        `json:"responsible,omitempty"`
}

// Validate checks the action's own invariants.
func (a AgroAction) Validate() error {
	if err := nonNegative("action quantity", a.Quantity); err != nil {
		return err
	}
	return nonNegative("action cost", a.Cost)
}

// HarvestQuality grades harvested product.
type HarvestQuality string

const (
	QualityA HarvestQuality = "A"
	QualityB HarvestQuality = "B"
	QualityC HarvestQuality = "C"
)

// HarvestDestination says where the product went.
type HarvestDestination string

const (
	DestinationSale        HarvestDestination = "sale"
	DestinationStorage     HarvestDestination = "storage"
	DestinationConsumption HarvestDestination = "consumption"
	DestinationProcessing  HarvestDestination = "processing"
)

// Harvest is a recorded pick from a Crop.
type Harvest struct {
	Base
	CropID       string             `json:"cropId"`
	LoteID       string             `json:"loteId"`
	Date         time.Time          `json:"date"`
	Quantity     float64            `json:"quantity"`
	Unit         string             `json:"unit"`
	Quality      HarvestQuality     `json:"quality"`
	Destination  HarvestDestination `json:"destination"`
	PricePerUnit *float64           `json:"pricePerUnit,omitempty"`
	TotalValue   *float64           `json:"totalValue,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
}

// Validate checks the harvest's own invariants, including the derived total.
func (h Harvest) Validate() error {
	if err := positive("harvest quantity", h.Quantity); err != nil {
		return err
	}
	if err := nonNegative("price per unit", h.PricePerUnit); err != nil {
		return err
	}
	switch {
	case h.PricePerUnit == nil && h.TotalValue != nil:
		return Invariantf("harvest total value without price per unit")
	case h.PricePerUnit != nil && (h.TotalValue == nil || *h.TotalValue != Round2(h.Quantity**h.PricePerUnit)):
		return Invariantf("harvest total value must equal quantity times price per unit")
	}
	return nil
}

// Revenue is the harvest's value, zero when no price was recorded.
func (h Harvest) Revenue() float64 {
	if h.TotalValue == nil {
		return 0
	}
	return *h.TotalValue
}
