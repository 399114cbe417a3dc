package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueDateAt(t *testing.T) {
	inv := &Invoice{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), DueDate: 15}
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), inv.DueDateAt())

	// 0 means due on receipt.
	inv.DueDate = 0
	assert.Equal(t, inv.Date, inv.DueDateAt())
}

func TestComputeTotal(t *testing.T) {
	items := []InvoiceItem{
		{Description: "Consulting", Quantity: 2, Rate: 100},
		{Description: "Hosting", Quantity: 3, Rate: 25.5},
	}
	assert.Equal(t, 276.5, ComputeTotal(items))
	assert.Equal(t, 0.0, ComputeTotal(nil))
}

func TestItems(t *testing.T) {
	inv := &Invoice{InvoiceItems: []byte(`[{"description":"Consulting","quantity":2,"rate":100}]`)}
	items, err := inv.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 200.0, items[0].Amount())

	inv.InvoiceItems = nil
	items, err = inv.Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	inv.InvoiceItems = []byte("{broken")
	_, err = inv.Items()
	assert.Error(t, err)
}
