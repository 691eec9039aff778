package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowStock_AtAlertLevel(t *testing.T) {
	item := InventoryItem{Quantity: 10, AlertLevel: 10}
	assert.True(t, item.LowStock())
}

func TestLowStock_BelowAlertLevel(t *testing.T) {
	item := InventoryItem{Quantity: 3, AlertLevel: 10}
	assert.True(t, item.LowStock())
}

func TestLowStock_AboveAlertLevel(t *testing.T) {
	item := InventoryItem{Quantity: 11, AlertLevel: 10}
	assert.False(t, item.LowStock())
}

func TestLowStock_ZeroAlertLevel(t *testing.T) {
	empty := InventoryItem{Quantity: 0, AlertLevel: 0}
	assert.True(t, empty.LowStock())

	stocked := InventoryItem{Quantity: 1, AlertLevel: 0}
	assert.False(t, stocked.LowStock())
}
