package models

// Cart accumulates menu items between browsing and checkout. It is
// ephemeral client session state and is never persisted; checkout turns
// it into order lines via Items.
type Cart struct {
	lines []CartItem
}

// CartItem pairs a menu item with the selected quantity.
type CartItem struct {
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity more of the item into the cart, merging with an
// existing line for the same menu item. Non-positive quantities are
// ignored.
func (c *Cart) Add(item MenuItem, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range c.lines {
		if c.lines[i].MenuItem.ID == item.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartItem{MenuItem: item, Quantity: quantity})
}

// Decrement lowers the quantity of the given menu item by one. A line
// that reaches zero is removed from the cart.
func (c *Cart) Decrement(menuItemID string) {
	for i := range c.lines {
		if c.lines[i].MenuItem.ID != menuItemID {
			continue
		}
		c.lines[i].Quantity--
		if c.lines[i].Quantity < 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Remove drops the whole line for the given menu item.
func (c *Cart) Remove(menuItemID string) {
	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns the current cart contents.
func (c *Cart) Lines() []CartItem {
	out := make([]CartItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Items snapshots the cart into order lines with computed subtotals.
func (c *Cart) Items() []OrderItem {
	items := make([]OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, NewOrderItem(line.MenuItem, line.Quantity))
	}
	return items
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.MenuItem.Price * float64(line.Quantity)
	}
	return total
}

// Count is the number of units in the cart.
func (c *Cart) Count() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
