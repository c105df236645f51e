package models

// Form types mirror the dashboard edit forms: every numeric and date field
// is kept as text so inputs stay editable, and the mapper converts them.
// Empty optional fields mean "not provided".

// LoteForm is the parcel form.
type LoteForm struct {
	Code           string `json:"code" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Area           string `json:"area" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=active resting preparation"`
	IrrigationType string `json:"irrigationType" validate:"omitempty,oneof=none drip sprinkler gravity pivot"`
	SoilType       string `json:"soilType"`
	Location       string `json:"location"`
	Notes          string `json:"notes"`
}

// CropForm is the crop form.
type CropForm struct {
	LoteID              string `json:"loteId" validate:"required"`
	Name                string `json:"name" validate:"required"`
	Variety             string `json:"variety"`
	Area                string `json:"area" validate:"required"`
	PlantingDate        string `json:"plantingDate" validate:"required"`
	ExpectedHarvestDate string `json:"expectedHarvestDate" validate:"required"`
	Status              string `json:"status" validate:"required,oneof=planned planted growing ready harvested"`
	EstimatedYield      string `json:"estimatedYield"`
	ActualYield         string `json:"actualYield"`
	Notes               string `json:"notes"`
}

// AgroActionForm is the field activity form.
type AgroActionForm struct {
	LoteID      string `json:"loteId" validate:"required"`
	CropID      string `json:"cropId"`
	Type        string `json:"type" validate:"required,oneof=planting irrigation fertilization pesticide weeding pruning harvest soil_preparation"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description"`
	Product     string `json:"product"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Cost        string `json:"cost"`
	Responsible string `json:"responsible"`
}

// HarvestForm is the harvest form.
type HarvestForm struct {
	CropID       string `json:"cropId" validate:"required"`
	LoteID       string `json:"loteId" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Quantity     string `json:"quantity" validate:"required"`
	Unit         string `json:"unit" validate:"required,oneof=kg ton bulto caja unidad"`
	Quality      string `json:"quality" validate:"required,oneof=A B C"`
	Destination  string `json:"destination" validate:"required,oneof=sale storage consumption processing"`
	PricePerUnit string `json:"pricePerUnit"`
	Notes        string `json:"notes"`
}

// LivestockForm is the individual animal form.
type LivestockForm struct {
	Tag         string `json:"tag" validate:"required"`
	Name        string `json:"name"`
	Species     string `json:"species" validate:"required,oneof=bovino bufalino porcino ovino caprino equino aves"`
	Category    string `json:"category" validate:"required"`
	Breed       string `json:"breed"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	BirthDate   string `json:"birthDate"`
	Weight      string `json:"weight"`
	Status      string `json:"status" validate:"required,oneof=active sold deceased transferred"`
	PotreroID   string `json:"potreroId"`
	EntryDate   string `json:"entryDate" validate:"required"`
	EntryReason string `json:"entryReason" validate:"required,oneof=birth purchase donation transfer"`
	ExitDate    string `json:"exitDate"`
	ExitReason  string `json:"exitReason" validate:"omitempty,oneof=sale death transfer slaughter"`
	MotherID    string `json:"motherId"`
	FatherID    string `json:"fatherId"`
	Notes       string `json:"notes"`
}

// LivestockGroupForm is the cohort form.
type LivestockGroupForm struct {
	Name     string `json:"name" validate:"required"`
	Species  string `json:"species" validate:"required,oneof=bovino bufalino porcino ovino caprino equino aves"`
	Category string `json:"category" validate:"required"`
	Count    string `json:"count" validate:"required"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// PotreroForm is the paddock form.
type PotreroForm struct {
	Name             string `json:"name" validate:"required"`
	Area             string `json:"area" validate:"required"`
	Capacity         string `json:"capacity" validate:"required"`
	CurrentOccupancy string `json:"currentOccupancy"`
	GrassType        string `json:"grassType"`
	Status           string `json:"status" validate:"required,oneof=available occupied resting maintenance"`
	Notes            string `json:"notes"`
}

// HealthRecordForm is the individual health form.
type HealthRecordForm struct {
	LivestockID  string `json:"livestockId" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=vaccination treatment deworming checkup surgery"`
	Description  string `json:"description" validate:"required"`
	Medication   string `json:"medication"`
	Dose         string `json:"dose"`
	Veterinarian string `json:"veterinarian"`
	Cost         string `json:"cost"`
	NextCheckup  string `json:"nextCheckup"`
	Notes        string `json:"notes"`
}

// GroupHealthActionForm is the cohort health form.
type GroupHealthActionForm struct {
	Date          string `json:"date" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=vaccination treatment deworming checkup surgery"`
	Description   string `json:"description" validate:"required"`
	Species       string `json:"species" validate:"omitempty,oneof=bovino bufalino porcino ovino caprino equino aves"`
	Category      string `json:"category"`
	GroupID       string `json:"groupId"`
	GroupName     string `json:"groupName"`
	AffectedCount string `json:"affectedCount" validate:"required"`
	Medication    string `json:"medication"`
	Veterinarian  string `json:"veterinarian"`
	Cost          string `json:"cost"`
	NextCheckup   string `json:"nextCheckup"`
	Notes         string `json:"notes"`
}

// ReproductionForm is the service/breeding form.
type ReproductionForm struct {
	CowID             string `json:"cowId" validate:"required"`
	BullID            string `json:"bullId"`
	SemenBatch        string `json:"semenBatch"`
	Type              string `json:"type" validate:"required,oneof=natural artificial_insemination"`
	ServiceDate       string `json:"serviceDate" validate:"required"`
	ExpectedBirthDate string `json:"expectedBirthDate"`
	Status            string `json:"status" validate:"required,oneof=pending confirmed failed born"`
	ActualBirthDate   string `json:"actualBirthDate"`
	CalfID            string `json:"calfId"`
	CalfTag           string `json:"calfTag"`
	Notes             string `json:"notes"`
}

// MilkProductionForm is the milking session form.
type MilkProductionForm struct {
	Date        string `json:"date" validate:"required"`
	Shift       string `json:"shift" validate:"required,oneof=morning afternoon"`
	TotalLiters string `json:"totalLiters" validate:"required"`
	CowsMilked  string `json:"cowsMilked" validate:"required"`
	Quality     string `json:"quality" validate:"omitempty,oneof=A B C"`
	Destination string `json:"destination" validate:"omitempty,oneof=sale processing consumption calves"`
	Notes       string `json:"notes"`
}

// SaleForm is the sales invoice form.
type SaleForm struct {
	Date          string `json:"date" validate:"required"`
	InvoiceNumber string `json:"invoiceNumber" validate:"required"`
	ModuleSource  string `json:"moduleSource" validate:"required,oneof=agro pecuario apicultura general"`
	Product       string `json:"product" validate:"required"`
	Quantity      string `json:"quantity" validate:"required"`
	Unit          string `json:"unit"`
	UnitPrice     string `json:"unitPrice" validate:"required"`
	BuyerName     string `json:"buyerName" validate:"required"`
	BuyerContact  string `json:"buyerContact"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash transfer check credit"`
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending partial paid"`
	AmountPaid    string `json:"amountPaid"`
	DueDate       string `json:"dueDate"`
	Notes         string `json:"notes"`
}

// PurchaseForm is the supplier invoice form.
type PurchaseForm struct {
	Date          string `json:"date" validate:"required"`
	InvoiceNumber string `json:"invoiceNumber" validate:"required"`
	SupplierName  string `json:"supplierName" validate:"required"`
	Category      string `json:"category" validate:"required,oneof=supplies feed veterinary machinery labor services"`
	Description   string `json:"description"`
	TotalAmount   string `json:"totalAmount" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash transfer check credit"`
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending partial paid"`
	AmountPaid    string `json:"amountPaid"`
	DueDate       string `json:"dueDate"`
	ModuleUsage   string `json:"moduleUsage" validate:"omitempty,oneof=agro pecuario apicultura general"`
	Notes         string `json:"notes"`
}

// BudgetForm is the budget form.
type BudgetForm struct {
	Category    string `json:"category" validate:"required,oneof=supplies feed veterinary machinery labor services"`
	Budgeted    string `json:"budgeted" validate:"required"`
	PeriodStart string `json:"periodStart" validate:"required"`
	PeriodEnd   string `json:"periodEnd" validate:"required"`
	Notes       string `json:"notes"`
}
