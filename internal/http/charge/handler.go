package charge

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/billing"
	"github.com/hospitalsanjose/billing/internal/money"
)

type Handler struct {
	svc  *billing.Service
	calc money.Calculator
}

func NewHandler(svc *billing.Service, calc money.Calculator) *Handler {
	return &Handler{svc: svc, calc: calc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/void", h.void)
	r.Put("/{id}/splits", h.applySplits)
}

func (h *Handler) StayRoutes(r chi.Router) {
	r.Get("/{id}/pending-days", h.pendingDays)
	r.Post("/{id}/bill-days", h.billDays)
}

func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *billing.ValidationError
		overlapErr    *billing.OverlapError
	)

	switch {
	case errors.Is(err, billing.ErrChargeNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, billing.ErrNothingToBill):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &overlapErr):
		http.Error(w, overlapErr.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type lineDTO struct {
	CatalogItemID *uuid.UUID       `json:"catalog_item_id,omitempty"`
	Description   string           `json:"description,omitempty"`
	Quantity      int              `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
}

type discountDTO struct {
	Kind   billing.DiscountKind `json:"kind"`
	Value  decimal.Decimal      `json:"value"`
	Reason string               `json:"reason,omitempty"`
}

type createChargeRequest struct {
	SourceKind billing.SourceKind `json:"source_kind"`
	SourceID   uuid.UUID          `json:"source_id"`
	Lines      []lineDTO          `json:"lines"`
	Discount   *discountDTO       `json:"discount,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := billing.CreateParams{
		Source: billing.Source{Kind: req.SourceKind, ID: req.SourceID},
	}

	for _, line := range req.Lines {
		params.Lines = append(params.Lines, billing.LineParams{
			CatalogItemID: line.CatalogItemID,
			Description:   line.Description,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
		})
	}

	if req.Discount != nil {
		params.Discount = &billing.DiscountParams{
			Kind:   req.Discount.Kind,
			Value:  req.Discount.Value,
			Reason: req.Discount.Reason,
		}
	}

	charge, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(charge))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := billing.ListFilter{}

	if s := r.URL.Query().Get("source_kind"); s != "" {
		kind := billing.SourceKind(s)
		filter.SourceKind = &kind
	}

	if s := r.URL.Query().Get("source_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid source_id", http.StatusBadRequest)
			return
		}

		filter.SourceID = &id
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := billing.Status(s)
		filter.Status = &status
	}

	charges, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(charges))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	charge, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(charge))
}

func (h *Handler) void(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Void(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type splitDTO struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type applySplitsRequest struct {
	Splits []splitDTO `json:"splits"`
}

func (h *Handler) applySplits(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req applySplitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	splits := make([]billing.PaymentSplit, len(req.Splits))
	for i, sp := range req.Splits {
		splits[i] = billing.PaymentSplit{ChargeID: id, Method: sp.Method, Amount: sp.Amount}
	}

	if err := h.svc.ApplySplits(r.Context(), id, splits); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pendingDays(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	admission, err := time.Parse(time.DateOnly, r.URL.Query().Get("admission"))
	if err != nil {
		http.Error(w, "admission date is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	reference := time.Now().UTC()

	if s := r.URL.Query().Get("reference"); s != "" {
		if reference, err = time.Parse(time.DateOnly, s); err != nil {
			http.Error(w, "invalid reference date", http.StatusBadRequest)
			return
		}
	}

	pending, err := h.svc.PendingStayDays(r.Context(), id, admission, reference)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pendingStayResponse{
		Start: pending.Start.Format(time.DateOnly),
		End:   pending.End.Format(time.DateOnly),
		Days:  pending.Days,
	})
}

type billDaysRequest struct {
	Start     string          `json:"start"`
	Days      int             `json:"days"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

func (h *Handler) billDays(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req billDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start, err := time.Parse(time.DateOnly, req.Start)
	if err != nil {
		http.Error(w, "start date is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	charge, err := h.svc.BillStayDays(r.Context(), id, start, req.Days, req.DailyRate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(charge))
}

// TaxQuote exposes the tax calculator: given a subtotal it adds tax, given a
// total it extracts the tax component.
func (h *Handler) TaxQuote(w http.ResponseWriter, r *http.Request) {
	var bd money.Breakdown

	switch {
	case r.URL.Query().Get("subtotal") != "":
		subtotal, err := decimal.NewFromString(r.URL.Query().Get("subtotal"))
		if err != nil {
			http.Error(w, "invalid subtotal", http.StatusBadRequest)
			return
		}

		bd = h.calc.AddTax(subtotal)

	case r.URL.Query().Get("total") != "":
		total, err := decimal.NewFromString(r.URL.Query().Get("total"))
		if err != nil {
			http.Error(w, "invalid total", http.StatusBadRequest)
			return
		}

		bd = h.calc.ExtractTax(total)

	default:
		http.Error(w, "subtotal or total is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, breakdownResponse{
		Subtotal: bd.Subtotal,
		Tax:      bd.Tax,
		Total:    bd.Total,
	})
}
