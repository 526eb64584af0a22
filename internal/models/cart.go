package models

import (
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	"github.com/google/uuid"
)

// CartSession is the live cart of one terminal, stored in Redis.
type CartSession struct {
	TerminalID string        `json:"terminal_id"`
	State      pos.CartState `json:"state"`
	Inputs     pos.Inputs    `json:"inputs"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func NewCartSession(terminalID string) *CartSession {
	return &CartSession{
		TerminalID: terminalID,
		State:      pos.NewCartState(),
		UpdatedAt:  time.Now().UTC(),
	}
}

// CartView is what every cart endpoint returns: the session plus derived totals.
type CartView struct {
	Session *CartSession      `json:"session"`
	Totals  pos.Totals        `json:"totals"`
	Display pos.DisplayTotals `json:"display"`
}

type HeldCart struct {
	ID      uuid.UUID   `json:"id"`
	Note    string      `json:"note,omitempty"`
	Session CartSession `json:"session"`
	HeldAt  time.Time   `json:"held_at"`
}

// HeldCartSummary is the listing shape; the parked state stays in the store.
type HeldCartSummary struct {
	ID        uuid.UUID `json:"id"`
	Note      string    `json:"note,omitempty"`
	Lines     int       `json:"lines"`
	Items     int       `json:"items"`
	NetTotal  string    `json:"net_total"`
	Customer  string    `json:"customer,omitempty"`
	HeldAt    time.Time `json:"held_at"`
	Wholesale bool      `json:"is_wholesale"`
}

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type ScanBarcodeRequest struct {
	Barcode string `json:"barcode" validate:"required,min=4,max=64"`
}

// UpdateCartItemRequest is a partial patch. A quantity of zero or less removes
// the line and discounts are clamped to [0, 100].
type UpdateCartItemRequest struct {
	Quantity *int     `json:"quantity,omitempty"`
	Discount *float64 `json:"discount,omitempty"`
}

type SetCustomerRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
}

type ToggleWholesaleRequest struct {
	IsWholesale bool `json:"is_wholesale"`
}

type SetCartInputsRequest struct {
	Adjustment        float64 `json:"adjustment"`
	WholesaleDiscount float64 `json:"wholesale_discount" validate:"gte=0,lte=100"`
	CashIn            float64 `json:"cash_in" validate:"gte=0"`
}

type HoldCartRequest struct {
	Note string `json:"note,omitempty" validate:"omitempty,max=200"`
}

type CheckoutRequest struct {
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required,oneof=cash card"`
	// CashIn overrides the tendered amount already on the session.
	CashIn *float64 `json:"cash_in,omitempty" validate:"omitempty,gte=0"`
	// PaymentMethodID is the Stripe payment method for card tender.
	PaymentMethodID string `json:"payment_method_id,omitempty" validate:"required_if=PaymentMethod card"`
}
