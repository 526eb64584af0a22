package models

import (
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID  `json:"id"`
	Barcode        string     `json:"barcode"`
	Name           string     `json:"name"`
	Size           string     `json:"size"`
	BrandID        uuid.UUID  `json:"brand_id"`
	CategoryID     uuid.UUID  `json:"category_id"`
	UnitID         uuid.UUID  `json:"unit_id"`
	ContainerID    *uuid.UUID `json:"container_id,omitempty"`
	RetailPrice    float64    `json:"retail_price"`
	WholesalePrice float64    `json:"wholesale_price"`
	CostPrice      float64    `json:"cost_price"`
	StockQuantity  int64      `json:"stock_quantity"`
	ReorderLevel   int64      `json:"reorder_level"`
	ImageURL       string     `json:"image_url,omitempty"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToPOS is the snapshot the cart engine prices from.
func (p *Product) ToPOS() pos.Product {
	return pos.Product{
		ID:             p.ID.String(),
		Barcode:        p.Barcode,
		Name:           p.Name,
		Size:           p.Size,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		ImageURL:       p.ImageURL,
	}
}

func (p *Product) LowStock() bool {
	return p.StockQuantity <= p.ReorderLevel
}

type CreateProductRequest struct {
	Barcode        string     `json:"barcode" validate:"required,min=4,max=64"`
	Name           string     `json:"name" validate:"required,min=2,max=200"`
	Size           string     `json:"size,omitempty" validate:"omitempty,max=50"`
	BrandID        uuid.UUID  `json:"brand_id" validate:"required"`
	CategoryID     uuid.UUID  `json:"category_id" validate:"required"`
	UnitID         uuid.UUID  `json:"unit_id" validate:"required"`
	ContainerID    *uuid.UUID `json:"container_id,omitempty"`
	RetailPrice    float64    `json:"retail_price" validate:"gte=0"`
	WholesalePrice float64    `json:"wholesale_price" validate:"gte=0"`
	CostPrice      float64    `json:"cost_price" validate:"gte=0"`
	StockQuantity  int64      `json:"stock_quantity" validate:"gte=0"`
	ReorderLevel   int64      `json:"reorder_level" validate:"gte=0"`
	ImageURL       string     `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	Barcode        *string    `json:"barcode,omitempty" validate:"omitempty,min=4,max=64"`
	Name           *string    `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Size           *string    `json:"size,omitempty" validate:"omitempty,max=50"`
	BrandID        *uuid.UUID `json:"brand_id,omitempty"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty"`
	UnitID         *uuid.UUID `json:"unit_id,omitempty"`
	ContainerID    *uuid.UUID `json:"container_id,omitempty"`
	RetailPrice    *float64   `json:"retail_price,omitempty" validate:"omitempty,gte=0"`
	WholesalePrice *float64   `json:"wholesale_price,omitempty" validate:"omitempty,gte=0"`
	CostPrice      *float64   `json:"cost_price,omitempty" validate:"omitempty,gte=0"`
	ReorderLevel   *int64     `json:"reorder_level,omitempty" validate:"omitempty,gte=0"`
	ImageURL       *string    `json:"image_url,omitempty" validate:"omitempty,url"`
}
