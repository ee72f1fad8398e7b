package response

import (
	"encoding/json"

	"rental-cart/internal/domain/cart"
	"rental-cart/internal/usecase"
	"rental-cart/internal/usecase/shared"
	"rental-cart/internal/usecase/submission"

	"github.com/shopspring/decimal"
)

type LineResponse struct {
	ProductID   int64       `json:"productId"`
	ProductName string      `json:"productName"`
	UnitPrice   json.Number `json:"unitPrice" swaggertype:"number"`
	Quantity    int         `json:"quantity"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	DaysCount   int         `json:"daysCount"`
	Subtotal    json.Number `json:"subtotal" swaggertype:"number"`
	Notes       string      `json:"notes,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Category    string      `json:"category,omitempty"`
}

type CartResponse struct {
	Lines         []LineResponse `json:"lines"`
	TotalItems    int            `json:"totalItems"`
	LineCount     int            `json:"lineCount"`
	TotalAmount   json.Number    `json:"totalAmount" swaggertype:"number"`
	CustomerNotes string         `json:"customerNotes"`
	IsEmpty       bool           `json:"isEmpty"`
	Warning       string         `json:"warning,omitempty"`
}

type AvailabilityResponse struct {
	Available         bool   `json:"available"`
	AvailableQuantity int    `json:"availableQuantity"`
	Message           string `json:"message,omitempty"`
	QuantityInCart    int    `json:"quantityInCart"`
	CanAddOne         bool   `json:"canAddOne"`
}

type ReceiptResponse struct {
	ReservationID int64  `json:"reservationId"`
	Reference     string `json:"reference"`
	Status        string `json:"status,omitempty"`
}

type SubmitResponse struct {
	Mode         string          `json:"mode"`
	AutoValidate bool            `json:"autoValidate"`
	Receipt      ReceiptResponse `json:"receipt"`
}

type SubmissionStatusResponse struct {
	Phase       string           `json:"phase"`
	LastError   string           `json:"lastError,omitempty"`
	LastReceipt *ReceiptResponse `json:"lastReceipt,omitempty"`
}

type ShortageResponse struct {
	ProductID         int64  `json:"productId"`
	ProductName       string `json:"productName,omitempty"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	Requested         int    `json:"requested"`
	AvailableQuantity int    `json:"availableQuantity"`
	Message           string `json:"message,omitempty"`
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func FromState(s cart.State) *CartResponse {
	lines := make([]LineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = LineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   money(l.UnitPrice),
			Quantity:    l.Quantity,
			StartDate:   l.Period.Start.String(),
			EndDate:     l.Period.End.String(),
			DaysCount:   l.DaysCount,
			Subtotal:    money(l.Subtotal),
			Notes:       l.Notes,
			ImageURL:    l.ImageURL,
			Category:    l.Category,
		}
	}
	return &CartResponse{
		Lines:         lines,
		TotalItems:    s.TotalItems,
		LineCount:     s.LineCount,
		TotalAmount:   money(s.TotalAmount),
		CustomerNotes: s.CustomerNotes,
		IsEmpty:       s.IsEmpty(),
	}
}

func FromAvailability(v *usecase.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:         v.Result.Available,
		AvailableQuantity: v.Result.AvailableQuantity,
		Message:           v.Result.Message,
		QuantityInCart:    v.QuantityInCart,
		CanAddOne:         v.Result.Permits(v.QuantityInCart, 1),
	}
}

func FromReceipt(r *shared.SubmissionReceipt) *ReceiptResponse {
	if r == nil {
		return nil
	}
	return &ReceiptResponse{
		ReservationID: r.ReservationID,
		Reference:     r.Reference,
		Status:        r.Status,
	}
}

func FromSubmission(mode submission.Mode, r *shared.SubmissionReceipt) *SubmitResponse {
	resp := &SubmitResponse{
		Mode:         string(mode),
		AutoValidate: mode.AutoValidate(),
	}
	if receipt := FromReceipt(r); receipt != nil {
		resp.Receipt = *receipt
	}
	return resp
}

func FromStatus(s submission.Status) *SubmissionStatusResponse {
	resp := &SubmissionStatusResponse{
		Phase:       string(s.Phase),
		LastReceipt: FromReceipt(s.LastReceipt),
	}
	if s.LastError != nil {
		resp.LastError = s.LastError.Error()
	}
	return resp
}

func FromShortages(shortages []shared.Shortage) []ShortageResponse {
	out := make([]ShortageResponse, len(shortages))
	for i, s := range shortages {
		out[i] = ShortageResponse{
			ProductID:         s.Key.ProductID,
			ProductName:       s.ProductName,
			StartDate:         s.Key.Period.Start.String(),
			EndDate:           s.Key.Period.End.String(),
			Requested:         s.Requested,
			AvailableQuantity: s.AvailableQuantity,
			Message:           s.Message,
		}
	}
	return out
}
