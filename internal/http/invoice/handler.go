package invoice

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
	"github.com/hospitalsanjose/billing/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

// IssueRoutes mounts under /charges: issuing is an action on a charge.
func (h *Handler) IssueRoutes(r chi.Router) {
	r.Post("/{id}/invoice", h.issue)
}

func (h *Handler) RangeRoutes(r chi.Router) {
	r.Post("/", h.createRange)
	r.Get("/active", h.activeRange)
}

// errorBody carries a machine-readable code so clients can show the right
// operator guidance for each numbering-range failure.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	var validationErr *billing.ValidationError

	var body errorBody

	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, invoice.ErrInvoiceNotFound), errors.Is(err, billing.ErrChargeNotFound):
		body = errorBody{Code: "not_found", Message: err.Error()}
		status = http.StatusNotFound
	case errors.Is(err, invoice.ErrNoActiveRange):
		body = errorBody{Code: "no_active_range", Message: err.Error()}
		status = http.StatusConflict
	case errors.Is(err, invoice.ErrRangeExpired):
		body = errorBody{Code: "range_expired", Message: err.Error()}
		status = http.StatusConflict
	case errors.Is(err, invoice.ErrRangeExhausted):
		body = errorBody{Code: "range_exhausted", Message: err.Error()}
		status = http.StatusConflict
	case errors.As(err, &validationErr):
		body = errorBody{Code: "validation", Message: validationErr.Error()}
		status = http.StatusUnprocessableEntity
	default:
		body = errorBody{Code: "internal", Message: "internal error"}
	}

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type splitDTO struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type issueRequest struct {
	TaxpayerID   *string    `json:"taxpayer_id,omitempty"`
	CustomerName string     `json:"customer_name"`
	Method       string     `json:"method,omitempty"`
	Splits       []splitDTO `json:"splits,omitempty"`
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	chargeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := invoice.IssueParams{
		TaxpayerID:   req.TaxpayerID,
		CustomerName: req.CustomerName,
		Method:       req.Method,
	}

	for _, sp := range req.Splits {
		params.Splits = append(params.Splits, invoice.SplitParams{Method: sp.Method, Amount: sp.Amount})
	}

	inv, err := h.svc.Issue(r.Context(), chargeID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := invoice.ListFilter{}

	if s := r.URL.Query().Get("kind"); s != "" {
		kind := invoice.Kind(s)
		filter.Kind = &kind
	}

	if s := r.URL.Query().Get("charge_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid charge_id", http.StatusBadRequest)
			return
		}

		filter.ChargeID = &id
	}

	invoices, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(invoices))
}

type createRangeRequest struct {
	CAI           string    `json:"cai"`
	EmissionPoint string    `json:"emission_point,omitempty"`
	Start         int64     `json:"start"`
	End           int64     `json:"end"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (h *Handler) createRange(w http.ResponseWriter, r *http.Request) {
	var req createRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rng, err := h.svc.CreateRange(r.Context(), invoice.RangeParams{
		CAI:           req.CAI,
		EmissionPoint: req.EmissionPoint,
		Start:         req.Start,
		End:           req.End,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRangeResponse(rng))
}

func (h *Handler) activeRange(w http.ResponseWriter, r *http.Request) {
	rng, err := h.svc.ActiveRange(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRangeResponse(rng))
}
