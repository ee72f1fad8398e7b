package cart

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
)

// State is a read-only snapshot of a cart.
type State struct {
	Lines         []Line
	TotalItems    int
	LineCount     int
	TotalAmount   decimal.Decimal
	CustomerNotes string
}

func (s State) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Cart is the aggregate behind the store. Derived fields are recomputed
// eagerly by every mutation.
type Cart struct {
	lines         []Line
	totalItems    int
	totalAmount   decimal.Decimal
	customerNotes string
}

func NewCart() *Cart {
	return &Cart{totalAmount: decimal.Zero}
}

// Restore rebuilds a cart from persisted data. Derived values are recomputed,
// invalid lines are dropped and duplicate keys are merged.
func Restore(s State) *Cart {
	c := NewCart()
	c.customerNotes = s.CustomerNotes
	for _, l := range s.Lines {
		in := AddLineInput{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Period:      l.Period,
			ImageURL:    l.ImageURL,
			Category:    l.Category,
		}
		if err := c.AddLine(in); err != nil {
			continue
		}
		if l.Notes != "" {
			c.UpdateLineNotes(l.Key(), l.Notes)
		}
	}
	return c
}

func (c *Cart) AddLine(in AddLineInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if i := c.indexOf(in.Key()); i >= 0 {
		c.lines[i].Quantity += in.Quantity
		c.lines[i].recompute()
		c.recompute()
		return nil
	}

	line := Line{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		UnitPrice:   in.UnitPrice,
		Quantity:    in.Quantity,
		Period:      in.Period,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
	}
	line.recompute()
	c.lines = append(c.lines, line)
	c.recompute()
	return nil
}

// UpdateQuantity reports whether a line changed. Quantities below one are
// rejected without touching the cart.
func (c *Cart) UpdateQuantity(key LineKey, quantity int) (bool, error) {
	if quantity < 1 {
		return false, ErrInvalidQuantity
	}
	i := c.indexOf(key)
	if i < 0 {
		return false, nil
	}
	if c.lines[i].Quantity == quantity {
		return false, nil
	}
	c.lines[i].Quantity = quantity
	c.lines[i].recompute()
	c.recompute()
	return true, nil
}

func (c *Cart) RemoveLine(key LineKey) bool {
	i := c.indexOf(key)
	if i < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	c.recompute()
	return true
}

func (c *Cart) UpdateLineNotes(key LineKey, notes string) bool {
	i := c.indexOf(key)
	if i < 0 {
		return false
	}
	c.lines[i].Notes = notes
	return true
}

func (c *Cart) SetCustomerNotes(notes string) {
	c.customerNotes = notes
}

func (c *Cart) CustomerNotes() string {
	return c.customerNotes
}

func (c *Cart) Clear() {
	c.lines = nil
	c.customerNotes = ""
	c.recompute()
}

// RemoveSubmitted takes out what a submission carried: each submitted line
// loses the submitted quantity and disappears once nothing is left. Customer
// notes are dropped only if they are still the submitted ones. Lines and
// units added after the submission was taken stay in the cart.
func (c *Cart) RemoveSubmitted(submitted State) bool {
	changed := false
	for _, s := range submitted.Lines {
		i := c.indexOf(s.Key())
		if i < 0 {
			continue
		}
		changed = true
		if c.lines[i].Quantity <= s.Quantity {
			c.lines = slices.Delete(c.lines, i, i+1)
			continue
		}
		c.lines[i].Quantity -= s.Quantity
		c.lines[i].recompute()
	}
	if c.customerNotes != "" && c.customerNotes == submitted.CustomerNotes {
		c.customerNotes = ""
		changed = true
	}
	if changed {
		c.recompute()
	}
	return changed
}

func (c *Cart) QuantityOf(key LineKey) int {
	if i := c.indexOf(key); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) Line(key LineKey) (Line, bool) {
	if i := c.indexOf(key); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Snapshot() State {
	return State{
		Lines:         slices.Clone(c.lines),
		TotalItems:    c.totalItems,
		LineCount:     len(c.lines),
		TotalAmount:   c.totalAmount,
		CustomerNotes: c.customerNotes,
	}
}

func (c *Cart) indexOf(key LineKey) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.Key() == key })
}

func (c *Cart) recompute() {
	c.totalItems = 0
	c.totalAmount = decimal.Zero
	for _, l := range c.lines {
		c.totalItems += l.Quantity
		c.totalAmount = c.totalAmount.Add(l.Subtotal)
	}
}
