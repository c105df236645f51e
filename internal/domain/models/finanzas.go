package models

import "time"

// PaymentStatus tracks how much of an invoice has been settled.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// PaymentMethod says how an invoice is settled.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodCheck    PaymentMethod = "check"
	MethodCredit   PaymentMethod = "credit"
)

// ExpenseCategory classifies purchases and budgets.
type ExpenseCategory string

const (
	ExpenseSupplies   ExpenseCategory = "supplies"
	ExpenseFeed       ExpenseCategory = "feed"
	ExpenseVeterinary ExpenseCategory = "veterinary"
	ExpenseMachinery  ExpenseCategory = "machinery"
	ExpenseLabor      ExpenseCategory = "labor"
	ExpenseServices   ExpenseCategory = "services"
)

// SaleRecord is an issued sales invoice.
type SaleRecord struct {
	Base
	Date          time.Time     `json:"date"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ModuleSource  Module        `json:"moduleSource"`
	Product       string        `json:"product"`
	Quantity      float64       `json:"quantity"`
	Unit          string        `json:"unit"`
	UnitPrice     float64       `json:"unitPrice"`
	TotalAmount   float64       `json:"totalAmount"`
	BuyerName     string        `json:"buyerName"`
	BuyerContact  *string       `json:"buyerContact,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	AmountPaid    float64       `json:"amountPaid"`
	DueDate       *time.Time    `json:"dueDate,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
}

// Validate checks totals and the payment invariants.
func (s SaleRecord) Validate() error {
	if s.InvoiceNumber == "" {
		return Invariantf("invoice number must not be empty")
	}
	if err := positive("sale quantity", s.Quantity); err != nil {
		return err
	}
	if s.UnitPrice < 0 {
		return Invariantf("unit price must not be negative")
	}
	if s.TotalAmount != Round2(s.Quantity*s.UnitPrice) {
		return Invariantf("total amount must equal quantity times unit price")
	}
	return checkPayment(s.PaymentStatus, s.AmountPaid, s.TotalAmount)
}

// Pending is the amount still owed on the invoice.
func (s SaleRecord) Pending() float64 {
	return Round2(s.TotalAmount - s.AmountPaid)
}

// PurchaseRecord is a received supplier invoice.
type PurchaseRecord struct {
	Base
	Date          time.Time       `json:"date"`
	InvoiceNumber string          `json:"invoiceNumber"`
	SupplierName  string          `json:"supplierName"`
	Category      ExpenseCategory `json:"category"`
	Description   string          `json:"description"`
	TotalAmount   float64         `json:"totalAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	AmountPaid    float64         `json:"amountPaid"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	ModuleUsage   *Module         `json:"moduleUsage,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

// Validate checks totals and the payment invariants.
func (p PurchaseRecord) Validate() error {
	if p.InvoiceNumber == "" {
		return Invariantf("invoice number must not be empty")
	}
	if err := positive("purchase total", p.TotalAmount); err != nil {
		return err
	}
	return checkPayment(p.PaymentStatus, p.AmountPaid, p.TotalAmount)
}

// Pending is the amount still owed to the supplier.
func (p PurchaseRecord) Pending() float64 {
	return Round2(p.TotalAmount - p.AmountPaid)
}

func checkPayment(status PaymentStatus, paid, total float64) error {
	switch {
	case paid < 0:
		return Invariantf("amount paid must not be negative")
	case paid > total:
		return Invariantf("amount paid %.2f exceeds total %.2f", paid, total)
	case status == PaymentPaid && paid != total:
		return Invariantf("paid invoices must have amount paid equal to total")
	}
	return nil
}

// Budget caps spending for an expense category over a period.
type Budget struct {
	Base
	Category    ExpenseCategory `json:"category"`
	Budgeted    float64         `json:"budgeted"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Notes       *string         `json:"notes,omitempty"`
}

// Validate checks the budget's own invariants.
func (b Budget) Validate() error {
	if err := positive("budgeted amount", b.Budgeted); err != nil {
		return err
	}
	if b.PeriodEnd.Before(b.PeriodStart) {
		return Invariantf("budget period ends before it starts")
	}
	return nil
}

// Covers reports whether t falls on a day inside the budget period.
func (b Budget) Covers(t time.Time) bool {
	return !t.Before(b.PeriodStart) && t.Before(b.PeriodEnd.AddDate(0, 0, 1))
}
