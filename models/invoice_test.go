package models_test

import (
	"testing"
	"time"

	"bbq-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextInvoiceNumberSequence(t *testing.T) {
	db := setupTestDB(t)
	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	first, err := models.NextInvoiceNumber(db, day)
	require.NoError(t, err)
	assert.Equal(t, "INV-20260314-0001", first)

	second, err := models.NextInvoiceNumber(db, day)
	require.NoError(t, err)
	assert.Equal(t, "INV-20260314-0002", second)

	// The counter keeps climbing across days; only the date part changes.
	nextDay, err := models.NextInvoiceNumber(db, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "INV-20260315-0003", nextDay)
}

func TestInvoiceIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		dueDate *time.Time
		status  models.InvoiceStatus
		want    bool
	}{
		{"no due date", nil, models.InvoiceIssued, false},
		{"due tomorrow", &tomorrow, models.InvoiceIssued, false},
		{"due today", &now, models.InvoiceIssued, false},
		{"past due", &yesterday, models.InvoiceIssued, true},
		{"past due but paid", &yesterday, models.InvoicePaid, false},
		{"past due draft", &yesterday, models.InvoiceDraft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := models.Invoice{DueDate: tt.dueDate, Status: tt.status}
			assert.Equal(t, tt.want, inv.IsOverdue(now))
		})
	}
}
