//go:build acceptance

package acceptance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// fakeBackend answers the availability and devis endpoints from an in-memory
// stock table.
type fakeBackend struct {
	mu          sync.Mutex
	stock       map[int64]int
	checks      int
	devis       []map[string]any
	nextReceipt int64
	server      *httptest.Server
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{stock: make(map[int64]int), nextReceipt: 1000}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/reservations/check-availability", b.checkAvailability)
	mux.HandleFunc("POST /api/devis", b.submitDevis)
	b.server = httptest.NewServer(mux)
	return b
}

func (b *fakeBackend) URL() string { return b.server.URL }

func (b *fakeBackend) Close() { b.server.Close() }

func (b *fakeBackend) setStock(productID int64, units int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stock[productID] = units
}

func (b *fakeBackend) counts() (checks, devis int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.checks, len(b.devis)
}

func (b *fakeBackend) lastDevis() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.devis) == 0 {
		return nil
	}
	return b.devis[len(b.devis)-1]
}

func (b *fakeBackend) checkAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
		return
	}

	b.mu.Lock()
	b.checks++
	units := b.stock[req.ProductID]
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"available":         req.Quantity <= units,
		"availableQuantity": units,
	})
}

func (b *fakeBackend) submitDevis(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
		return
	}

	b.mu.Lock()
	b.devis = append(b.devis, body)
	b.nextReceipt++
	id := b.nextReceipt
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"reservationId": id,
		"reference":     "DEV-TEST",
		"status":        "pending",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
