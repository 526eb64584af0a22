package models

import "github.com/google/uuid"

// LabelSheet describes the physical label stock. Rows and Columns are computed
// from the page when left empty.
type LabelSheet struct {
	PageWidthMM   float64 `json:"page_width_mm" validate:"required,gt=0"`
	PageHeightMM  float64 `json:"page_height_mm" validate:"required,gt=0"`
	LabelWidthMM  float64 `json:"label_width_mm" validate:"required,gt=0"`
	LabelHeightMM float64 `json:"label_height_mm" validate:"required,gt=0"`
	Rows          int     `json:"rows,omitempty" validate:"omitempty,min=1"`
	Columns       int     `json:"columns,omitempty" validate:"omitempty,min=1"`
	MarginTopMM   float64 `json:"margin_top_mm" validate:"gte=0"`
	MarginLeftMM  float64 `json:"margin_left_mm" validate:"gte=0"`
	GapXMM        float64 `json:"gap_x_mm" validate:"gte=0"`
	GapYMM        float64 `json:"gap_y_mm" validate:"gte=0"`
}

type LabelItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Copies    int       `json:"copies" validate:"required,min=1,max=1000"`
}

type LabelLayoutRequest struct {
	Sheet     LabelSheet         `json:"sheet" validate:"required"`
	Items     []LabelItemRequest `json:"items" validate:"required,min=1,dive"`
	Wholesale bool               `json:"wholesale"`
}

type LabelPlacement struct {
	Page      int       `json:"page"`
	Row       int       `json:"row"`
	Column    int       `json:"column"`
	XMM       float64   `json:"x_mm"`
	YMM       float64   `json:"y_mm"`
	ProductID uuid.UUID `json:"product_id"`
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Size      string    `json:"size,omitempty"`
	Price     string    `json:"price"`
}

type LabelLayout struct {
	Rows          int              `json:"rows"`
	Columns       int              `json:"columns"`
	LabelsPerPage int              `json:"labels_per_page"`
	Pages         int              `json:"pages"`
	TotalLabels   int              `json:"total_labels"`
	Labels        []LabelPlacement `json:"labels"`
}
