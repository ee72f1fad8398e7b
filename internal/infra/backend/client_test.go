//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-cart/internal/domain/availability"
	"rental-cart/internal/domain/cart"
	"rental-cart/internal/infra/backend"
	"rental-cart/internal/pkg/bearer"
	"rental-cart/internal/pkg/config"
	"rental-cart/internal/pkg/errs"
	"rental-cart/internal/usecase/shared"
	"rental-cart/tests/common/builder"
	"rental-cart/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	header http.Header
	body   string
}

func newServer(t *testing.T, status int, response string) (*backend.Client, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got.method = r.Method
		got.path = r.URL.Path
		got.header = r.Header.Clone()
		got.body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Backend
	cfg.BaseURL = srv.URL + "/"
	return backend.NewClient(cfg, testutil.DiscardLogger()), got
}

func query(t *testing.T, quantity int) availability.Query {
	t.Helper()
	q, err := availability.NewQuery(builder.NewLineBuilder().BuildKey(), quantity)
	require.NoError(t, err)
	return q
}

func TestClient_Check(t *testing.T) {
	t.Run("posts the query and decodes the answer", func(t *testing.T) {
		client, got := newServer(t, http.StatusOK, `{"available":true,"availableQuantity":7,"message":"ok"}`)

		res, err := client.Check(context.Background(), query(t, 3))

		require.NoError(t, err)
		assert.Equal(t, availability.Result{Available: true, AvailableQuantity: 7, Message: "ok"}, res)
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/api/reservations/check-availability", got.path)
		assert.Equal(t, "application/json", got.header.Get("Content-Type"))
		assert.JSONEq(t, `{"productId":101,"quantity":3,"startDate":"2025-03-10","endDate":"2025-03-12"}`, got.body)
		assert.Empty(t, got.header.Get("Authorization"))
	})

	t.Run("negative quantity is clamped", func(t *testing.T) {
		client, _ := newServer(t, http.StatusOK, `{"available":false,"availableQuantity":-2}`)

		res, err := client.Check(context.Background(), query(t, 1))

		require.NoError(t, err)
		assert.Zero(t, res.AvailableQuantity)
	})

	t.Run("forwards the caller's bearer token", func(t *testing.T) {
		client, got := newServer(t, http.StatusOK, `{"available":true,"availableQuantity":1}`)
		ctx := bearer.WithToken(context.Background(), "abc.def")

		_, err := client.Check(ctx, query(t, 1))

		require.NoError(t, err)
		assert.Equal(t, "Bearer abc.def", got.header.Get("Authorization"))
	})

	t.Run("malformed body is a network error", func(t *testing.T) {
		client, _ := newServer(t, http.StatusOK, `<html>`)

		_, err := client.Check(context.Background(), query(t, 1))
		assert.ErrorIs(t, err, errs.ErrNetwork)
	})
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantNetwork bool
		wantMessage string
	}{
		{name: "flat message", status: 422, body: `{"message":"insufficient stock"}`, wantMessage: "insufficient stock"},
		{name: "nested message", status: 400, body: `{"error":{"message":"end date before start"}}`, wantMessage: "end date before start"},
		{name: "plain text", status: 409, body: "product retired\n", wantMessage: "product retired"},
		{name: "empty body", status: 404, body: "", wantMessage: "Not Found"},
		{name: "server error", status: 503, body: `{"message":"maintenance"}`, wantNetwork: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newServer(t, tt.status, tt.body)

			_, err := client.Check(context.Background(), query(t, 1))

			require.Error(t, err)
			if tt.wantNetwork {
				assert.ErrorIs(t, err, errs.ErrNetwork)
				return
			}
			var valErr *shared.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.status, valErr.StatusCode)
			assert.Equal(t, tt.wantMessage, valErr.Error())
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Backend
	cfg.BaseURL = srv.URL
	client := backend.NewClientWithHTTP(cfg, &http.Client{Timeout: 20 * time.Millisecond}, testutil.DiscardLogger())

	_, err := client.Check(context.Background(), query(t, 1))

	var netErr *shared.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "check availability", netErr.Op)
}

func TestClient_SubmitDevis(t *testing.T) {
	client, got := newServer(t, http.StatusCreated, `{"reservationId":42,"reference":"DEV-2025-0042","status":"pending"}`)
	key := uuid.New()
	req := shared.DevisRequest{
		Lines: []shared.DevisLine{{
			ProductID: 101,
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("15.50"),
			StartDate: cart.NewDate(2025, time.March, 10),
			EndDate:   cart.NewDate(2025, time.March, 12),
			Notes:     "with cables",
		}},
		CustomerNotes:  "stage door",
		AutoValidate:   true,
		IdempotencyKey: key,
	}

	receipt, err := client.SubmitDevis(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, &shared.SubmissionReceipt{ReservationID: 42, Reference: "DEV-2025-0042", Status: "pending"}, receipt)
	assert.Equal(t, "/api/devis", got.path)
	assert.Equal(t, key.String(), got.header.Get("Idempotency-Key"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(got.body), &body))
	assert.JSONEq(t, `true`, string(body["autoValidate"]))
	assert.JSONEq(t, `"stage door"`, string(body["customerNotes"]))
	assert.JSONEq(t, `[{"productId":101,"quantity":2,"unitPrice":15.5,"startDate":"2025-03-10","endDate":"2025-03-12","notes":"with cables"}]`, string(body["lines"]))
	assert.Contains(t, got.body, `"unitPrice":15.5`)
}
