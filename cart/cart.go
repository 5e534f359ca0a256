package cart

import (
	"errors"
)

var ErrInvalidQty = errors.New("quantity must be at least 1")

// Line is one item row of an in-progress order. UnitPrice is snapshot at add
// time so a later catalog price change never rewrites an open cart.
type Line struct {
	ItemID    uint   `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"` // minor currency units
	Qty       int    `json:"qty"`
}

// Total is derived on read, never stored.
func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Qty)
}

// Cart holds at most one line per item: adding an item that is already in the
// cart merges quantities instead of appending a duplicate line. Insertion
// order is preserved.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges qty into an existing line for itemID, or appends a new one.
// Qty below 1 is rejected.
func (c *Cart) Add(itemID uint, name string, unitPrice int64, qty int) error {
	if qty < 1 {
		return ErrInvalidQty
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Qty += qty
			return nil
		}
	}
	c.lines = append(c.lines, Line{ItemID: itemID, Name: name, UnitPrice: unitPrice, Qty: qty})
	return nil
}

// Remove deletes the line for itemID. Absent line is a no-op.
func (c *Cart) Remove(itemID uint) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Increase bumps the line quantity by one. Absent line is a no-op.
func (c *Cart) Increase(itemID uint) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Qty++
			return
		}
	}
}

// Decrease lowers the line quantity by one but never below 1. Dropping the
// last unit requires an explicit Remove; Decrease never deletes a line.
func (c *Cart) Decrease(itemID uint) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			if c.lines[i].Qty > 1 {
				c.lines[i].Qty--
			}
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy so callers cannot mutate cart state behind its back.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}
