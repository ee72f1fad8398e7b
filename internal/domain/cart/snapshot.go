package cart

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type lineSnapshot struct {
	ProductID   int64       `json:"productId"`
	ProductName string      `json:"productName"`
	UnitPrice   json.Number `json:"unitPrice"`
	Quantity    int         `json:"quantity"`
	StartDate   Date        `json:"startDate"`
	EndDate     Date        `json:"endDate"`
	DaysCount   int         `json:"daysCount"`
	Subtotal    json.Number `json:"subtotal"`
	Notes       string      `json:"notes,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Category    string      `json:"category,omitempty"`
}

// stateSnapshot is the persisted layout of a cart.
type stateSnapshot struct {
	Lines         []lineSnapshot `json:"lines"`
	TotalItems    int            `json:"totalItems"`
	LineCount     int            `json:"lineCount"`
	TotalAmount   json.Number    `json:"totalAmount"`
	CustomerNotes string         `json:"customerNotes,omitempty"`
}

func MarshalState(s State) ([]byte, error) {
	snap := stateSnapshot{
		Lines:         make([]lineSnapshot, 0, len(s.Lines)),
		TotalItems:    s.TotalItems,
		LineCount:     s.LineCount,
		TotalAmount:   json.Number(s.TotalAmount.String()),
		CustomerNotes: s.CustomerNotes,
	}
	for _, l := range s.Lines {
		snap.Lines = append(snap.Lines, lineSnapshot{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   json.Number(l.UnitPrice.String()),
			Quantity:    l.Quantity,
			StartDate:   l.Period.Start,
			EndDate:     l.Period.End,
			DaysCount:   l.DaysCount,
			Subtotal:    json.Number(l.Subtotal.String()),
			Notes:       l.Notes,
			ImageURL:    l.ImageURL,
			Category:    l.Category,
		})
	}
	return json.Marshal(snap)
}

// UnmarshalState decodes a persisted cart. Derived values are not trusted;
// they are recomputed by Restore.
func UnmarshalState(data []byte) (State, error) {
	var snap stateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return State{}, fmt.Errorf("decode cart state: %w", err)
	}

	s := State{CustomerNotes: snap.CustomerNotes}
	for i, ls := range snap.Lines {
		price, err := decimal.NewFromString(string(ls.UnitPrice))
		if err != nil {
			return State{}, fmt.Errorf("decode cart state: line %d unit price: %w", i, err)
		}
		s.Lines = append(s.Lines, Line{
			ProductID:   ls.ProductID,
			ProductName: ls.ProductName,
			UnitPrice:   price,
			Quantity:    ls.Quantity,
			Period:      Period{Start: ls.StartDate, End: ls.EndDate},
			Notes:       ls.Notes,
			ImageURL:    ls.ImageURL,
			Category:    ls.Category,
		})
	}
	return Restore(s).Snapshot(), nil
}
