package models

import "time"

// AgroStats is the crops dashboard header.
type AgroStats struct {
	TotalLotes             int                `json:"totalLotes"`
	ActiveLotes            int                `json:"activeLotes"`
	TotalArea              float64            `json:"totalArea"`
	CultivatedArea         float64            `json:"cultivatedArea"`
	ActiveCrops            int                `json:"activeCrops"`
	CropsByStatus          map[CropStatus]int `json:"cropsByStatus"`
	MonthlyHarvestQuantity float64            `json:"monthlyHarvestQuantity"`
	MonthlyHarvestValue    float64            `json:"monthlyHarvestValue"`
	MonthlyActions         int                `json:"monthlyActions"`
	MonthlyActionCost      float64            `json:"monthlyActionCost"`
}

// PecuarioStats is the livestock dashboard header.
type PecuarioStats struct {
	TotalAnimals         int             `json:"totalAnimals"`
	ActiveIndividuals    int             `json:"activeIndividuals"`
	GroupAnimals         int             `json:"groupAnimals"`
	BySpecies            map[Species]int `json:"bySpecies"`
	ByCategory           map[string]int  `json:"byCategory"`
	HealthyPercentage    float64         `json:"healthyPercentage"`
	PendingHealthActions int             `json:"pendingHealthActions"`
	MonthlyMilkLiters    float64         `json:"monthlyMilkLiters"`
	AvgMilkPerCow        float64         `json:"avgMilkPerCow"`
	PregnantCount        int             `json:"pregnantCount"`
	UpcomingBirths       int             `json:"upcomingBirths"`
	PotreroCapacity      int             `json:"potreroCapacity"`
	PotreroOccupancy     int             `json:"potreroOccupancy"`
	OccupancyRate        float64         `json:"occupancyRate"`
}

// FinanzasStats is the finance dashboard header.
type FinanzasStats struct {
	TotalIncome        float64 `json:"totalIncome"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetProfit          float64 `json:"netProfit"`
	MonthlyIncome      float64 `json:"monthlyIncome"`
	MonthlyExpenses    float64 `json:"monthlyExpenses"`
	AccountsReceivable float64 `json:"accountsReceivable"`
	AccountsPayable    float64 `json:"accountsPayable"`
	OverdueReceivables int     `json:"overdueReceivables"`
	OverduePayables    int     `json:"overduePayables"`
}

// DashboardStats holds the stats of one module; only the matching field is set.
type DashboardStats struct {
	Module   Module         `json:"module"`
	Agro     *AgroStats     `json:"agro,omitempty"`
	Pecuario *PecuarioStats `json:"pecuario,omitempty"`
	Finanzas *FinanzasStats `json:"finanzas,omitempty"`
}

// Series metric names.
const (
	MetricQuantity  = "quantity"
	MetricRevenue   = "revenue"
	MetricLiters    = "liters"
	MetricAvgPerCow = "avgPerCow"
	MetricIncome    = "income"
	MetricExpense   = "expense"
	MetricNet       = "net"
)

// MonthlyPoint is one calendar-month bucket of a time series.
type MonthlyPoint struct {
	Month  string             `json:"month"`
	Values map[string]float64 `json:"values"`
}

// DistributionKind names a group-by projection.
type DistributionKind string

const (
	DistCropArea            DistributionKind = "crop_area"
	DistCropType            DistributionKind = "crop_type"
	DistSalesByModule       DistributionKind = "sales_by_module"
	DistExpensesByCategory  DistributionKind = "expenses_by_category"
	DistLivestockBySpecies  DistributionKind = "livestock_by_species"
	DistLivestockByCategory DistributionKind = "livestock_by_category"
)

// DistributionSlice is one group of a distribution chart.
type DistributionSlice struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// AccountStatus classifies an open invoice.
type AccountStatus string

const (
	AccountPending AccountStatus = "pending"
	AccountOverdue AccountStatus = "overdue"
)

// AccountEntry is an unpaid sale (receivable) or purchase (payable).
type AccountEntry struct {
	RecordID      string        `json:"recordId"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Counterparty  string        `json:"counterparty"`
	Date          time.Time     `json:"date"`
	DueDate       *time.Time    `json:"dueDate,omitempty"`
	TotalAmount   float64       `json:"totalAmount"`
	AmountPaid    float64       `json:"amountPaid"`
	AmountPending float64       `json:"amountPending"`
	Status        AccountStatus `json:"status"`
}

// BudgetStatus classifies spending against a budget.
type BudgetStatus string

const (
	BudgetOnTrack  BudgetStatus = "on_track"
	BudgetWarning  BudgetStatus = "warning"
	BudgetExceeded BudgetStatus = "exceeded"
)

// Budget status thresholds on percentage used.
const (
	BudgetWarningThreshold  = 90.0
	BudgetExceededThreshold = 100.0
)

// StatusForUsage maps a percentage used onto a budget status.
func StatusForUsage(pct float64) BudgetStatus {
	switch {
	case pct > BudgetExceededThreshold:
		return BudgetExceeded
	case pct > BudgetWarningThreshold:
		return BudgetWarning
	default:
		return BudgetOnTrack
	}
}

// BudgetComparison is a budget with its derived actual spending.
type BudgetComparison struct {
	BudgetID       string          `json:"budgetId"`
	Category       ExpenseCategory `json:"category"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	Budgeted       float64         `json:"budgeted"`
	Actual         float64         `json:"actual"`
	Variance       float64         `json:"variance"`
	PercentageUsed float64         `json:"percentageUsed"`
	Status         BudgetStatus    `json:"status"`
}

// Covers reports whether t falls inside the compared period, end day included.
func (c BudgetComparison) Covers(t time.Time) bool {
	return !t.Before(c.PeriodStart) && t.Before(c.PeriodEnd.AddDate(0, 0, 1))
}
