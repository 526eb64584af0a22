package models

import (
	"time"

	"github.com/google/uuid"
)

// MasterKind names one of the lookup tables products and stock hang off.
type MasterKind string

const (
	MasterBrand     MasterKind = "brands"
	MasterCategory  MasterKind = "categories"
	MasterUnit      MasterKind = "units"
	MasterContainer MasterKind = "containers"
	MasterBranch    MasterKind = "branches"
)

var MasterKinds = []MasterKind{MasterBrand, MasterCategory, MasterUnit, MasterContainer, MasterBranch}

func (k MasterKind) Valid() bool {
	for _, known := range MasterKinds {
		if k == known {
			return true
		}
	}
	return false
}

type MasterRecord struct {
	ID          uuid.UUID  `json:"id"`
	Kind        MasterKind `json:"kind"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateMasterRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=30"`
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateMasterRequest struct {
	Code        *string `json:"code,omitempty" validate:"omitempty,min=1,max=30"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// ListFilter is the common query for paginated resource lists.
type ListFilter struct {
	Page     int
	PageSize int
	Query    string
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
