package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/catalog"
	"github.com/hospitalsanjose/billing/internal/pricelist"
)

type Handler struct {
	catalogSvc   *catalog.Service
	pricelistSvc *pricelist.Service
}

func NewHandler(catalogSvc *catalog.Service, pricelistSvc *pricelist.Service) *Handler {
	return &Handler{
		catalogSvc:   catalogSvc,
		pricelistSvc: pricelistSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/items", h.search)
	r.Get("/items/{id}", h.get)
}

func (h *Handler) PriceListRoutes(r chi.Router) {
	r.Post("/import", h.importPriceList)
}

type itemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(item *catalog.Item) itemResponse {
	return itemResponse{
		ID:        item.ID,
		Code:      item.Code,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		UpdatedAt: item.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]itemResponse, len(items))
	for i, item := range items {
		resp[i] = toResponse(item)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := h.catalogSvc.Lookup(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			http.Error(w, "catalog item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(item))
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) importPriceList(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	count, err := h.pricelistSvc.Import(r.Context(), file)
	if err != nil {
		var validationErr *catalog.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

		return
	}

	writeJSON(w, http.StatusOK, importResponse{Imported: count})
}
