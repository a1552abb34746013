package ledger

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/submit", h.submit)
	r.Get("/data", h.data)
}

type submitRequest struct {
	Name     string `json:"name"`
	ShopName string `json:"shopName"`
	Price    string `json:"price"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Password string `json:"password"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, submitResponse{Error: "invalid_request"})
		return
	}

	err := h.svc.Submit(r.Context(), ledger.Record{
		Name:     req.Name,
		ShopName: req.ShopName,
		Price:    req.Price,
		Type:     req.Type,
		Date:     req.Date,
		Password: req.Password,
	})

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, submitResponse{Success: true})
	case ledger.IsClientError(err):
		writeJSON(w, http.StatusOK, submitResponse{Error: ledger.Code(err)})
	default:
		slog.Error("google sheets error", "error", err)
		writeJSON(w, http.StatusInternalServerError, submitResponse{Error: ledger.ErrStore.Error()})
	}
}

func (h *Handler) data(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Rows(r.Context(), r.URL.Query().Get("password"))

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, dataResponse{Values: rows})
	case ledger.IsClientError(err):
		writeJSON(w, http.StatusOK, errorResponse{Error: ledger.Code(err)})
	default:
		slog.Error("google sheets fetch error", "error", err)
		writeJSON(w, http.StatusInternalServerError, dataResponse{Values: [][]string{}})
	}
}
