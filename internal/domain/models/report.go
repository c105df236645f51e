package models

import "time"

// DashboardDigest is the periodic snapshot of all module headers, archived and sent out by the scheduler.
type DashboardDigest struct {
	Date            time.Time     `bson:"date" json:"date"`
	Agro            AgroStats     `bson:"agro" json:"agro"`
	Pecuario        PecuarioStats `bson:"pecuario" json:"pecuario"`
	Finanzas        FinanzasStats `bson:"finanzas" json:"finanzas"`
	OpenReceivables int           `bson:"open_receivables" json:"open_receivables"`
	OpenPayables    int           `bson:"open_payables" json:"open_payables"`
	BudgetsExceeded int           `bson:"budgets_exceeded" json:"budgets_exceeded"`
	Summary         string        `bson:"summary" json:"summary"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
}
