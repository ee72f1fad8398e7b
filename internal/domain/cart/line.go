package cart

import (
	"github.com/shopspring/decimal"
)

type Line struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal // per day
	Quantity    int
	Period      Period
	DaysCount   int
	Subtotal    decimal.Decimal
	Notes       string
	ImageURL    string
	Category    string
}

func (l Line) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Period: l.Period}
}

func (l *Line) recompute() {
	l.DaysCount = l.Period.Days()
	l.Subtotal = l.UnitPrice.
		Mul(decimal.NewFromInt(int64(l.Quantity))).
		Mul(decimal.NewFromInt(int64(l.DaysCount)))
}

type AddLineInput struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Period      Period
	ImageURL    string
	Category    string
}

func (in AddLineInput) Key() LineKey {
	return LineKey{ProductID: in.ProductID, Period: in.Period}
}

func (in AddLineInput) Validate() error {
	if in.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	return in.Period.Validate()
}
