package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/grichal/desingPatterns/internal/command"
	"github.com/grichal/desingPatterns/internal/engine"
	"github.com/grichal/desingPatterns/internal/order"
)

// Executor runs commands against a single order collection.
type Executor interface {
	Execute(ctx context.Context, cmd command.Command, args ...any) (*engine.Result, error)
	Snapshot(ctx context.Context) ([]string, error)
}

type placeOrderRequest struct {
	Order string `json:"order"`
	ID    string `json:"id"` // optional, generated when blank
}

type placeOrderResponse struct {
	ID        string   `json:"id"`
	Order     string   `json:"order"`
	Orders    []string `json:"orders"`
	RequestID string   `json:"request_id"`
}

type trackOrderResponse struct {
	ID      string   `json:"id"`
	Message string   `json:"message"`
	Orders  []string `json:"orders"`
}

type cancelOrderResponse struct {
	ID     string   `json:"id"`
	Orders []string `json:"orders"`
}

type listOrdersResponse struct {
	Orders []string `json:"orders"`
}

func NewRouter(exec Executor, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
		ids, err := exec.Snapshot(r.Context())
		if err != nil {
			writeProblem(w, r, http.StatusServiceUnavailable, "engine_unavailable", err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, listOrdersResponse{Orders: ids})
	})

	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var req placeOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeProblem(w, r, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		req.Order = strings.TrimSpace(req.Order)
		req.ID = strings.TrimSpace(req.ID)
		if req.Order == "" {
			writeProblem(w, r, http.StatusBadRequest, "validation_error", "order is required")
			return
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		res, err := exec.Execute(r.Context(), command.PlaceOrderCommand(req.Order, req.ID))
		if err != nil {
			writeProblem(w, r, http.StatusServiceUnavailable, "engine_unavailable", err.Error())
			return
		}

		w.Header().Set("Location", "/orders/"+req.ID)
		writeJSON(w, r, http.StatusCreated, placeOrderResponse{
			ID:        req.ID,
			Order:     req.Order,
			Orders:    res.Orders,
			RequestID: middleware.GetReqID(r.Context()),
		})
	})

	r.Get("/orders/{id}/eta", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		res, err := exec.Execute(r.Context(), command.TrackOrderCommand(id))
		if err != nil {
			writeProblem(w, r, http.StatusServiceUnavailable, "engine_unavailable", err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, trackOrderResponse{
			ID:      id,
			Message: order.ETAMessage(id),
			Orders:  res.Orders,
		})
	})

	// Goes through CancelOrderCommand, which leaves bare ids in place.
	r.Delete("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		res, err := exec.Execute(r.Context(), command.CancelOrderCommand(id))
		if err != nil {
			writeProblem(w, r, http.StatusServiceUnavailable, "engine_unavailable", err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, cancelOrderResponse{ID: id, Orders: res.Orders})
	})

	return r
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", middleware.GetReqID(r.Context()))
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeProblem(w http.ResponseWriter, r *http.Request, code int, title, detail string) {
	reqID := middleware.GetReqID(r.Context())
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Request-ID", reqID)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"title":      title,
		"status":     code,
		"detail":     detail,
		"instance":   r.URL.Path,
		"request_id": reqID,
	})
}
