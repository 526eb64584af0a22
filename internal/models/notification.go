package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeEmail NotificationType = "email"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
)

type Notification struct {
	ID        uuid.UUID          `json:"id"`
	SaleID    *uuid.UUID         `json:"sale_id,omitempty"`
	Type      NotificationType   `json:"type"`
	Recipient string             `json:"recipient"`
	Subject   string             `json:"subject,omitempty"`
	Content   string             `json:"content"`
	Status    NotificationStatus `json:"status"`
	Error     string             `json:"error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
}

type EmailNotificationRequest struct {
	Subject   string            `json:"subject" validate:"required"`
	Content   string            `json:"content" validate:"required"`
	HTML      string            `json:"html,omitempty"`
	Recipient string            `json:"recipient" validate:"required,email"`
	SaleID    *uuid.UUID        `json:"sale_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type ReceiptRequest struct {
	// Recipient overrides the customer's address on file.
	Recipient string `json:"recipient,omitempty" validate:"omitempty,email"`
}

type NotificationResponse struct {
	ID        uuid.UUID          `json:"id"`
	Type      NotificationType   `json:"type"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
}
