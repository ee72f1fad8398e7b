package request

import (
	"strings"

	"rental-cart/internal/domain/cart"
	"rental-cart/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// LineKeyRequest identifies a cart line by product and rental period.
type LineKeyRequest struct {
	ProductID int64  `json:"productId" form:"productId" binding:"required,gt=0"`
	StartDate string `json:"startDate" form:"startDate" binding:"required"`
	EndDate   string `json:"endDate" form:"endDate" binding:"required"`
}

func (r LineKeyRequest) Key() (cart.LineKey, error) {
	start, err := cart.ParseDate(r.StartDate)
	if err != nil {
		return cart.LineKey{}, err
	}
	end, err := cart.ParseDate(r.EndDate)
	if err != nil {
		return cart.LineKey{}, err
	}
	period, err := cart.NewPeriod(start, end)
	if err != nil {
		return cart.LineKey{}, err
	}
	return cart.LineKey{ProductID: r.ProductID, Period: period}, nil
}

type AddLineRequest struct {
	LineKeyRequest
	ProductName string           `json:"productName" binding:"required"`
	UnitPrice   *decimal.Decimal `json:"unitPrice" binding:"required" swaggertype:"number"`
	Quantity    int              `json:"quantity" binding:"required,gte=1"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

func (r AddLineRequest) ToInput() (cart.AddLineInput, error) {
	key, err := r.Key()
	if err != nil {
		return cart.AddLineInput{}, err
	}
	in := cart.AddLineInput{
		ProductID:   key.ProductID,
		ProductName: strings.TrimSpace(r.ProductName),
		UnitPrice:   patch.Coalesce(r.UnitPrice, decimal.Zero),
		Quantity:    r.Quantity,
		Period:      key.Period,
		ImageURL:    patch.TrimmedString(r.ImageURL),
		Category:    patch.TrimmedString(r.Category),
	}
	return in, in.Validate()
}

// UpdateQuantityRequest accepts any integer; values below 1 are rejected by
// the cart itself and leave it unchanged.
type UpdateQuantityRequest struct {
	LineKeyRequest
	Quantity *int `json:"quantity" binding:"required"`
}

type UpdateLineNotesRequest struct {
	LineKeyRequest
	Notes string `json:"notes"`
}

type CustomerNotesRequest struct {
	Notes string `json:"notes"`
}

type AvailabilityRequest struct {
	LineKeyRequest
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

type SubmitRequest struct {
	Mode string `json:"mode" binding:"omitempty,oneof=quote order"`
}
