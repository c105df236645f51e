package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/seed"
)

func TestReceivablesOverdueFirst(t *testing.T) {
	entries := Receivables(seed.Dataset(), seedNow)
	require.Len(t, entries, 2)

	assert.Equal(t, "FV-0002", entries[0].InvoiceNumber)
	assert.Equal(t, models.AccountOverdue, entries[0].Status)
	assert.Equal(t, 3400000.0, entries[0].AmountPending)
	assert.Equal(t, "Supermercado La Plaza", entries[0].Counterparty)

	assert.Equal(t, "FV-0005", entries[1].InvoiceNumber)
	assert.Equal(t, models.AccountPending, entries[1].Status)
	assert.Equal(t, 1000000.0, entries[1].AmountPending)
}

func TestPayablesOverdueFirst(t *testing.T) {
	entries := Payables(seed.Dataset(), seedNow)
	require.Len(t, entries, 2)

	assert.Equal(t, "FC-1002", entries[0].InvoiceNumber)
	assert.Equal(t, models.AccountOverdue, entries[0].Status)
	assert.Equal(t, 2000000.0, entries[0].AmountPending)
	assert.Equal(t, "purchase-002", entries[0].RecordID)
	assert.Equal(t, "FC-1005", entries[1].InvoiceNumber)
}

func TestDueDateIsNotOverdueOnTheDay(t *testing.T) {
	ds := seed.Dataset()
	due := *ds.Sales[1].DueDate

	entries := Receivables(ds, due.Add(15*time.Hour))
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, models.AccountPending, e.Status, e.InvoiceNumber)
	}
}

func TestAccountsWithoutDueDateGoLast(t *testing.T) {
	ds := seed.Dataset()
	ds.Sales[4].DueDate = nil

	entries := Receivables(ds, seedNow)
	require.Len(t, entries, 2)
	assert.Equal(t, "FV-0005", entries[1].InvoiceNumber)
	assert.Nil(t, entries[1].DueDate)
}
