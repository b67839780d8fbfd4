package charge

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/billing"
)

type chargeResponse struct {
	ID         uuid.UUID           `json:"id"`
	SourceKind billing.SourceKind  `json:"source_kind"`
	SourceID   uuid.UUID           `json:"source_id"`
	Total      decimal.Decimal     `json:"total"`
	Status     billing.Status      `json:"status"`
	Discount   *discountResponse   `json:"discount,omitempty"`
	Stay       *stayResponse       `json:"stay,omitempty"`
	Items      []lineItemResponse  `json:"items,omitempty"`
	Splits     []splitResponse     `json:"splits,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  *time.Time          `json:"updated_at,omitempty"`
}

type discountResponse struct {
	Kind   billing.DiscountKind `json:"kind"`
	Value  decimal.Decimal      `json:"value"`
	Amount decimal.Decimal      `json:"amount"`
	Reason string               `json:"reason,omitempty"`
}

type stayResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days int    `json:"days"`
}

type lineItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	CatalogItemID *uuid.UUID      `json:"catalog_item_id,omitempty"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
}

type splitResponse struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type pendingStayResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type breakdownResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func toResponse(c *billing.Charge) chargeResponse {
	resp := chargeResponse{
		ID:         c.ID,
		SourceKind: c.Source.Kind,
		SourceID:   c.Source.ID,
		Total:      c.Total,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	if c.Discount != nil {
		resp.Discount = &discountResponse{
			Kind:   c.Discount.Kind,
			Value:  c.Discount.Value,
			Amount: c.Discount.Amount,
			Reason: c.Discount.Reason,
		}
	}

	if c.Stay != nil {
		resp.Stay = &stayResponse{
			From: c.Stay.From.Format(time.DateOnly),
			To:   c.Stay.To.Format(time.DateOnly),
			Days: c.Stay.Days,
		}
	}

	for _, item := range c.Items {
		resp.Items = append(resp.Items, lineItemResponse{
			ID:            item.ID,
			CatalogItemID: item.CatalogItemID,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Total:         item.Total,
		})
	}

	for _, sp := range c.Splits {
		resp.Splits = append(resp.Splits, splitResponse{Method: sp.Method, Amount: sp.Amount})
	}

	return resp
}

func toResponseList(charges []*billing.Charge) []chargeResponse {
	resp := make([]chargeResponse, len(charges))
	for i, c := range charges {
		resp[i] = toResponse(c)
	}

	return resp
}
