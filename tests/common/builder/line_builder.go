//go:build unit || acceptance

package builder

import (
	"time"

	"rental-cart/internal/domain/cart"
	reqdto "rental-cart/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type LineBuilder struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	StartDate   cart.Date
	EndDate     cart.Date
	ImageURL    string
	Category    string
}

// NewLineBuilder defaults to 2 units of a 3-day rental at 15.50 per day.
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		ProductID:   101,
		ProductName: "Projector",
		UnitPrice:   decimal.RequireFromString("15.50"),
		Quantity:    2,
		StartDate:   cart.NewDate(2025, time.March, 10),
		EndDate:     cart.NewDate(2025, time.March, 12),
		ImageURL:    "https://cdn.example.com/p/101.jpg",
		Category:    "audiovisual",
	}
}

func (b *LineBuilder) With(mutate func(*LineBuilder)) *LineBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *LineBuilder) BuildPeriod() cart.Period {
	return cart.Period{Start: b.StartDate, End: b.EndDate}
}

func (b *LineBuilder) BuildKey() cart.LineKey {
	return cart.LineKey{ProductID: b.ProductID, Period: b.BuildPeriod()}
}

func (b *LineBuilder) BuildInput() cart.AddLineInput {
	return cart.AddLineInput{
		ProductID:   b.ProductID,
		ProductName: b.ProductName,
		UnitPrice:   b.UnitPrice,
		Quantity:    b.Quantity,
		Period:      b.BuildPeriod(),
		ImageURL:    b.ImageURL,
		Category:    b.Category,
	}
}

// BuildState returns a cart holding only this line.
func (b *LineBuilder) BuildState() cart.State {
	c := cart.NewCart()
	if err := c.AddLine(b.BuildInput()); err != nil {
		panic("LineBuilder.BuildState: " + err.Error())
	}
	return c.Snapshot()
}

func (b *LineBuilder) BuildKeyRequestDTO() reqdto.LineKeyRequest {
	return reqdto.LineKeyRequest{
		ProductID: b.ProductID,
		StartDate: b.StartDate.String(),
		EndDate:   b.EndDate.String(),
	}
}

func (b *LineBuilder) BuildAddRequestDTO() reqdto.AddLineRequest {
	imageURL, category, price := b.ImageURL, b.Category, b.UnitPrice
	return reqdto.AddLineRequest{
		LineKeyRequest: b.BuildKeyRequestDTO(),
		ProductName:    b.ProductName,
		UnitPrice:      &price,
		Quantity:       b.Quantity,
		ImageURL:       &imageURL,
		Category:       &category,
	}
}
