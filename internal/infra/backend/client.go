// Package backend talks to the rental backend's availability and devis
// endpoints over JSON/HTTP.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"rental-cart/internal/domain/availability"
	"rental-cart/internal/pkg/bearer"
	"rental-cart/internal/pkg/config"
	"rental-cart/internal/pkg/errs"
	"rental-cart/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

type Client struct {
	http             *http.Client
	baseURL          string
	availabilityPath string
	devisPath        string
	logger           *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewClientWithHTTP(cfg config.BackendConfig, hc *http.Client, logger *slog.Logger) *Client {
	return &Client{
		http:             hc,
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		availabilityPath: cfg.AvailabilityPath,
		devisPath:        cfg.DevisPath,
		logger:           logger,
	}
}

var (
	_ shared.AvailabilityAPI = (*Client)(nil)
	_ shared.ReservationAPI  = (*Client)(nil)
)

func (c *Client) Check(ctx context.Context, q availability.Query) (availability.Result, error) {
	body := availabilityRequest{
		ProductID: q.ProductID,
		Quantity:  q.Quantity,
		StartDate: q.Period.Start.String(),
		EndDate:   q.Period.End.String(),
	}

	var resp availabilityResponse
	if err := c.post(ctx, "check availability", c.availabilityPath, body, nil, &resp); err != nil {
		return availability.Result{}, err
	}

	return availability.Result{
		Available:         resp.Available,
		AvailableQuantity: resp.AvailableQuantity,
		Message:           resp.Message,
	}.Normalize(), nil
}

func (c *Client) SubmitDevis(ctx context.Context, req shared.DevisRequest) (*shared.SubmissionReceipt, error) {
	headers := http.Header{}
	headers.Set("Idempotency-Key", req.IdempotencyKey.String())

	var resp receiptResponse
	if err := c.post(ctx, "submit devis", c.devisPath, toDevisPayload(req), headers, &resp); err != nil {
		return nil, err
	}

	receipt := &shared.SubmissionReceipt{}
	if err := copier.Copy(receipt, &resp); err != nil {
		return nil, errs.Wrap(err, "failed to map devis receipt")
	}
	return receipt, nil
}

func (c *Client) post(ctx context.Context, op, path string, in any, headers http.Header, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errs.Wrapf(err, "failed to encode %s request", op)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrapf(err, "failed to build %s request", op)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if token, ok := bearer.FromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend request failed", "op", op, "error", err)
		return &shared.NetworkError{Op: op, Err: err}
	}
	defer res.Body.Close()

	c.logger.DebugContext(ctx, "backend request",
		"op", op,
		"status", res.StatusCode,
		"latency", time.Since(start),
	)

	switch {
	case res.StatusCode >= 500:
		msg := readErrorMessage(res.Body)
		return &shared.NetworkError{Op: op, Err: fmt.Errorf("backend returned %d: %s", res.StatusCode, msg)}
	case res.StatusCode >= 400:
		msg := readErrorMessage(res.Body)
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		return &shared.ValidationError{StatusCode: res.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &shared.NetworkError{Op: op, Err: errs.Wrap(err, "malformed backend response")}
	}
	return nil
}

// readErrorMessage accepts {"message": ...} and {"error": {"message": ...}}
// bodies and falls back to the raw text.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}

	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != nil && body.Error.Message != "" {
			return body.Error.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
