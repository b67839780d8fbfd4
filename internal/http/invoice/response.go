package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/invoice"
)

type invoiceResponse struct {
	ID         uuid.UUID       `json:"id"`
	ChargeID   uuid.UUID       `json:"charge_id"`
	Kind       invoice.Kind    `json:"kind"`
	Number     string          `json:"number"`
	CAI        *string         `json:"cai,omitempty"`
	TaxpayerID *string         `json:"taxpayer_id,omitempty"`
	Customer   string          `json:"customer"`
	Issuer     string          `json:"issuer"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	IssuedAt   time.Time       `json:"issued_at"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:         inv.ID,
		ChargeID:   inv.ChargeID,
		Kind:       inv.Kind,
		Number:     inv.Number,
		CAI:        inv.CAI,
		TaxpayerID: inv.TaxpayerID,
		Customer:   inv.Customer,
		Issuer:     inv.Issuer,
		Subtotal:   inv.Subtotal,
		Discount:   inv.Discount,
		Tax:        inv.Tax,
		Total:      inv.Total,
		IssuedAt:   inv.IssuedAt,
	}
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}

type rangeResponse struct {
	ID            uuid.UUID           `json:"id"`
	CAI           string              `json:"cai"`
	EmissionPoint string              `json:"emission_point"`
	Start         int64               `json:"start"`
	End           int64               `json:"end"`
	Current       int64               `json:"current"`
	Remaining     int64               `json:"remaining"`
	ExpiresAt     time.Time           `json:"expires_at"`
	Status        invoice.RangeStatus `json:"status"`
}

func toRangeResponse(rng *invoice.Range) rangeResponse {
	return rangeResponse{
		ID:            rng.ID,
		CAI:           rng.CAI,
		EmissionPoint: rng.EmissionPoint,
		Start:         rng.Start,
		End:           rng.End,
		Current:       rng.Current,
		Remaining:     rng.End - rng.Current,
		ExpiresAt:     rng.ExpiresAt,
		Status:        rng.Status,
	}
}
