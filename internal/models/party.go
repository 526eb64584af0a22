package models

import (
	"time"

	"github.com/google/uuid"
)

type PartyKind string

const (
	PartyCustomer PartyKind = "customers"
	PartySupplier PartyKind = "suppliers"
)

func (k PartyKind) Valid() bool {
	return k == PartyCustomer || k == PartySupplier
}

// Party is a customer or a supplier; both share one shape.
type Party struct {
	ID        uuid.UUID `json:"id"`
	Kind      PartyKind `json:"kind"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePartyRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty" validate:"omitempty,max=500"`
}

type UpdatePartyRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
}
