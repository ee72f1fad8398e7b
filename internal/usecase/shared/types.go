package shared

import (
	"time"

	"rental-cart/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DevisLine struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	StartDate cart.Date
	EndDate   cart.Date
	Notes     string
}

// DevisRequest asks for a quote (AutoValidate=false) or a direct order.
type DevisRequest struct {
	Lines          []DevisLine
	CustomerNotes  string
	AutoValidate   bool
	IdempotencyKey uuid.UUID
}

func NewDevisRequest(s cart.State, autoValidate bool) DevisRequest {
	lines := make([]DevisLine, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, DevisLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			StartDate: l.Period.Start,
			EndDate:   l.Period.End,
			Notes:     l.Notes,
		})
	}
	return DevisRequest{
		Lines:          lines,
		CustomerNotes:  s.CustomerNotes,
		AutoValidate:   autoValidate,
		IdempotencyKey: uuid.New(),
	}
}

type SubmissionReceipt struct {
	ReservationID int64
	Reference     string
	Status        string
}

type SubmittedEvent struct {
	EventID       uuid.UUID       `json:"eventId"`
	SessionID     string          `json:"sessionId"`
	ReservationID int64           `json:"reservationId"`
	Reference     string          `json:"reference"`
	AutoValidate  bool            `json:"autoValidate"`
	LineCount     int             `json:"lineCount"`
	TotalItems    int             `json:"totalItems"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	SubmittedAt   time.Time       `json:"submittedAt"`
}
