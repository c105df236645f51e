package projection

import (
	"sort"
	"time"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

// Receivables lists every sale that is not fully paid.
func Receivables(ds memory.Dataset, now time.Time) []models.AccountEntry {
	today := calendarDay(now)
	out := make([]models.AccountEntry, 0)
	for _, s := range ds.Sales {
		if s.PaymentStatus == models.PaymentPaid {
			continue
		}
		out = append(out, account(s.ID, s.InvoiceNumber, s.BuyerName, s.Date, s.DueDate, s.TotalAmount, s.AmountPaid, today))
	}
	sortAccounts(out)
	return out
}

// Payables lists every purchase that is not fully paid.
func Payables(ds memory.Dataset, now time.Time) []models.AccountEntry {
	today := calendarDay(now)
	out := make([]models.AccountEntry, 0)
	for _, p := range ds.Purchases {
		if p.PaymentStatus == models.PaymentPaid {
			continue
		}
		out = append(out, account(p.ID, p.InvoiceNumber, p.SupplierName, p.Date, p.DueDate, p.TotalAmount, p.AmountPaid, today))
	}
	sortAccounts(out)
	return out
}

func account(id, invoice, counterparty string, date time.Time, due *time.Time, total, paid float64, today time.Time) models.AccountEntry {
	entry := models.AccountEntry{
		RecordID:      id,
		InvoiceNumber: invoice,
		Counterparty:  counterparty,
		Date:          date,
		DueDate:       due,
		TotalAmount:   total,
		AmountPaid:    paid,
		AmountPending: models.Round2(total - paid),
		Status:        models.AccountPending,
	}
	if overdue(due, today) {
		entry.Status = models.AccountOverdue
	}
	return entry
}

// sortAccounts puts overdue entries first, then the earliest due date. Entries
// without a due date go last.
func sortAccounts(entries []models.AccountEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Status != b.Status {
			return a.Status == models.AccountOverdue
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.InvoiceNumber < b.InvoiceNumber
	})
}
