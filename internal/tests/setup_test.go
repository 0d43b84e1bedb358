package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "srms-backend/internal/api/http"
	"srms-backend/internal/service"
	"srms-backend/internal/storage"
)

// newStack wires the full backend over a freshly seeded store, the way
// main does.
func newStack() (*storage.Store, http.Handler) {
	store := storage.NewStore(storage.DefaultSeed())
	qrGen := service.TrackingQRGenerator{BaseURL: "http://localhost:8080"}
	consumer := service.NewHeuristicConsumer(store)

	handler := httpapi.NewHandler(
		service.NewAuthService(store),
		service.NewCatalogService(store),
		service.NewOrderService(store, consumer, qrGen),
		service.NewReservationService(store),
		service.NewRecommendationService(store),
		service.NewAnalyticsService(store),
	)
	return store, httpapi.NewRouter(handler)
}

func newOrderService(store *storage.Store) *service.OrderService {
	return service.NewOrderService(store, service.NewHeuristicConsumer(store), nil)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
