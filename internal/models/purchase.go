package models

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseOrderStatus string

const (
	POStatusDraft             PurchaseOrderStatus = "draft"
	POStatusOrdered           PurchaseOrderStatus = "ordered"
	POStatusPartiallyReceived PurchaseOrderStatus = "partially_received"
	POStatusReceived          PurchaseOrderStatus = "received"
	POStatusCancelled         PurchaseOrderStatus = "cancelled"
)

// Receivable reports whether goods may still be booked against the order.
func (s PurchaseOrderStatus) Receivable() bool {
	return s == POStatusOrdered || s == POStatusPartiallyReceived
}

func (s PurchaseOrderStatus) Cancellable() bool {
	return s == POStatusDraft || s == POStatusOrdered
}

type PurchaseOrderItem struct {
	ID               uuid.UUID `json:"id"`
	PurchaseOrderID  uuid.UUID `json:"purchase_order_id"`
	ProductID        uuid.UUID `json:"product_id" validate:"required"`
	Quantity         int64     `json:"quantity" validate:"required,min=1"`
	UnitCost         float64   `json:"unit_cost" validate:"gte=0"`
	ReceivedQuantity int64     `json:"received_quantity"`
}

func (i PurchaseOrderItem) Outstanding() int64 {
	return i.Quantity - i.ReceivedQuantity
}

type PurchaseOrder struct {
	ID         uuid.UUID           `json:"id"`
	Number     string              `json:"number"`
	SupplierID uuid.UUID           `json:"supplier_id"`
	BranchID   *uuid.UUID          `json:"branch_id,omitempty"`
	Status     PurchaseOrderStatus `json:"status"`
	Notes      string              `json:"notes,omitempty"`
	Items      []PurchaseOrderItem `json:"items"`
	Total      float64             `json:"total"`
	CreatedBy  uuid.UUID           `json:"created_by"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type PurchaseOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity" validate:"required,min=1"`
	UnitCost  float64   `json:"unit_cost" validate:"gte=0"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID                  `json:"supplier_id" validate:"required"`
	BranchID   *uuid.UUID                 `json:"branch_id,omitempty"`
	Notes      string                     `json:"notes,omitempty" validate:"omitempty,max=500"`
	Items      []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdatePurchaseOrderRequest struct {
	Notes *string                    `json:"notes,omitempty" validate:"omitempty,max=500"`
	Items []PurchaseOrderItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

type PurchaseOrderFilter struct {
	ListFilter
	Status     PurchaseOrderStatus
	SupplierID *uuid.UUID
}

type GoodsReceivedItem struct {
	ID        uuid.UUID `json:"id"`
	GRNID     uuid.UUID `json:"grn_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	UnitCost  float64   `json:"unit_cost"`
}

// GoodsReceivedNote records one delivery booked against a purchase order.
type GoodsReceivedNote struct {
	ID              uuid.UUID           `json:"id"`
	Number          string              `json:"number"`
	PurchaseOrderID uuid.UUID           `json:"purchase_order_id"`
	ReceivedBy      uuid.UUID           `json:"received_by"`
	Notes           string              `json:"notes,omitempty"`
	Items           []GoodsReceivedItem `json:"items"`
	ReceivedAt      time.Time           `json:"received_at"`
}

type ReceiveItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity" validate:"required,min=1"`
	// UnitCost defaults to the ordered cost when omitted.
	UnitCost *float64 `json:"unit_cost,omitempty" validate:"omitempty,gte=0"`
}

type ReceiveGoodsRequest struct {
	Notes string               `json:"notes,omitempty" validate:"omitempty,max=500"`
	Items []ReceiveItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ReceiveResult pairs the booked GRN with the order as it stands afterwards.
type ReceiveResult struct {
	Order *PurchaseOrder     `json:"purchase_order"`
	GRN   *GoodsReceivedNote `json:"grn"`
}
