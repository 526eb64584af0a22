package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// SaleLine is the persisted copy of a cart line. Amounts are rounded to cents.
type SaleLine struct {
	ID        uuid.UUID `json:"id"`
	SaleID    uuid.UUID `json:"sale_id"`
	ProductID uuid.UUID `json:"product_id"`
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Size      string    `json:"size,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Discount  float64   `json:"discount"`
	Gross     float64   `json:"gross"`
	Net       float64   `json:"net"`
}

type Sale struct {
	ID                uuid.UUID     `json:"id"`
	Number            string        `json:"number"`
	BranchID          *uuid.UUID    `json:"branch_id,omitempty"`
	CashierID         uuid.UUID     `json:"cashier_id"`
	CustomerID        *uuid.UUID    `json:"customer_id,omitempty"`
	CustomerName      string        `json:"customer_name,omitempty"`
	CustomerEmail     string        `json:"customer_email,omitempty"`
	IsWholesale       bool          `json:"is_wholesale"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	PaymentReference  string        `json:"payment_reference,omitempty"`
	Lines             []SaleLine    `json:"lines"`
	Subtotal          float64       `json:"subtotal"`
	ItemDiscount      float64       `json:"item_discount"`
	WholesaleDiscount float64       `json:"wholesale_discount"`
	TotalDiscount     float64       `json:"total_discount"`
	Tax               float64       `json:"tax"`
	GrandTotal        float64       `json:"grand_total"`
	Adjustment        float64       `json:"adjustment"`
	NetTotal          float64       `json:"net_total"`
	CashIn            float64       `json:"cash_in"`
	Balance           float64       `json:"balance"`
	CreatedAt         time.Time     `json:"created_at"`
}

type SaleFilter struct {
	ListFilter
	From      *time.Time
	To        *time.Time
	CashierID *uuid.UUID
}

type ReportFilter struct {
	From     time.Time
	To       time.Time
	BranchID *uuid.UUID
	TopN     int
}

type PaymentMethodTotal struct {
	Method PaymentMethod `json:"method"`
	Count  int64         `json:"count"`
	Net    float64       `json:"net"`
}

type TopProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	Net       float64   `json:"net"`
}

type SalesReport struct {
	From            time.Time            `json:"from"`
	To              time.Time            `json:"to"`
	BranchID        *uuid.UUID           `json:"branch_id,omitempty"`
	SaleCount       int64                `json:"sale_count"`
	Gross           float64              `json:"gross"`
	Discounts       float64              `json:"discounts"`
	Tax             float64              `json:"tax"`
	Net             float64              `json:"net"`
	ByPaymentMethod []PaymentMethodTotal `json:"by_payment_method"`
	TopProducts     []TopProduct         `json:"top_products"`
}
