package backend

import (
	"encoding/json"

	"rental-cart/internal/usecase/shared"
)

type availabilityRequest struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type availabilityResponse struct {
	Available         bool   `json:"available"`
	AvailableQuantity int    `json:"availableQuantity"`
	Message           string `json:"message,omitempty"`
}

type devisLine struct {
	ProductID int64       `json:"productId"`
	Quantity  int         `json:"quantity"`
	UnitPrice json.Number `json:"unitPrice"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Notes     string      `json:"notes,omitempty"`
}

type devisPayload struct {
	Lines         []devisLine `json:"lines"`
	CustomerNotes string      `json:"customerNotes,omitempty"`
	AutoValidate  bool        `json:"autoValidate"`
}

type receiptResponse struct {
	ReservationID int64  `json:"reservationId"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func toDevisPayload(req shared.DevisRequest) devisPayload {
	lines := make([]devisLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, devisLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: json.Number(l.UnitPrice.String()),
			StartDate: l.StartDate.String(),
			EndDate:   l.EndDate.String(),
			Notes:     l.Notes,
		})
	}
	return devisPayload{
		Lines:         lines,
		CustomerNotes: req.CustomerNotes,
		AutoValidate:  req.AutoValidate,
	}
}
