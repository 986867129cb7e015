package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMenuItem(id, name string, price float64) MenuItem {
	return MenuItem{ID: id, Name: name, Price: price, Category: CategoryCoffee, Available: true}
}

func TestCartAddMergesLines(t *testing.T) {
	cart := NewCart()
	cappuccino := testMenuItem("1", "Cappuccino", 45)
	latte := testMenuItem("2", "Latte", 50)

	cart.Add(cappuccino, 1)
	cart.Add(latte, 2)
	cart.Add(cappuccino, 1)

	lines := cart.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, 4, cart.Count())
	assert.Equal(t, 190.0, cart.Total())
}

func TestCartAddIgnoresNonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(testMenuItem("1", "Cappuccino", 45), 0)
	cart.Add(testMenuItem("1", "Cappuccino", 45), -2)
	assert.True(t, cart.Empty())
}

func TestCartDecrementRemovesAtZero(t *testing.T) {
	cart := NewCart()
	cappuccino := testMenuItem("1", "Cappuccino", 45)
	cart.Add(cappuccino, 2)

	cart.Decrement("1")
	assert.Equal(t, 1, cart.Count())

	cart.Decrement("1")
	assert.True(t, cart.Empty())

	// Decrementing something not in the cart does nothing.
	cart.Decrement("1")
	assert.True(t, cart.Empty())
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(testMenuItem("1", "Cappuccino", 45), 3)
	cart.Add(testMenuItem("2", "Latte", 50), 1)

	cart.Remove("1")
	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "2", lines[0].MenuItem.ID)
}

func TestCartItemsSnapshotsSubtotals(t *testing.T) {
	cart := NewCart()
	cart.Add(testMenuItem("1", "Cappuccino", 45), 2)
	cart.Add(testMenuItem("8", "Biryani", 80), 1)

	items := cart.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 90.0, items[0].Subtotal)
	assert.Equal(t, 80.0, items[1].Subtotal)
}
