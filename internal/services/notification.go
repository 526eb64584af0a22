package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/aaravmahajanofficial/pos-admin/pkg/sendGrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error)
	// SendReceipt mails a sale receipt to recipient, or to the sale's customer
	// when recipient is empty.
	SendReceipt(ctx context.Context, sale *models.Sale, recipient string) (*models.NotificationResponse, error)
	GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListNotifications(ctx context.Context, filter models.ListFilter) ([]*models.Notification, int, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendGrid.EmailService
	storeName    string
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendGrid.EmailService, storeName string) NotificationService {
	return &notificationService{repo: repo, emailService: emailService, storeName: storeName}
}

func (n *notificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	notification := &models.Notification{
		ID:        uuid.New(),
		SaleID:    req.SaleID,
		Type:      models.NotificationTypeEmail,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    models.StatusPending,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return nil, repoError(err, "Notification", "create notification record")
	}

	extCtx, cancel := utils.WithExternalTimeout(ctx)
	defer cancel()

	if err := n.emailService.Send(extCtx, req); err != nil {
		if updateErr := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, err.Error()); updateErr != nil {
			logger.Error("Failed to mark notification as failed",
				slog.String("notificationId", notification.ID.String()),
				slog.String("error", updateErr.Error()))
		}
		return nil, errors.ThirdPartyError("Failed to send email").WithError(err)
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		return nil, repoError(err, "Notification", "update notification status")
	}

	sentAt := time.Now().UTC()
	logger.Info("Email sent",
		slog.String("notificationId", notification.ID.String()),
		slog.String("subject", notification.Subject))

	return &models.NotificationResponse{
		ID:        notification.ID,
		Type:      notification.Type,
		Status:    models.StatusSent,
		CreatedAt: notification.CreatedAt,
		SentAt:    &sentAt,
	}, nil
}

func (n *notificationService) SendReceipt(ctx context.Context, sale *models.Sale, recipient string) (*models.NotificationResponse, error) {
	if recipient == "" {
		recipient = sale.CustomerEmail
	}
	if recipient == "" {
		return nil, errors.BadRequestError("No recipient for the receipt").
			WithDetail("The sale has no customer e-mail; supply a recipient")
	}

	saleID := sale.ID
	req := &models.EmailNotificationRequest{
		Subject:   fmt.Sprintf("%s receipt %s", n.storeName, sale.Number),
		Content:   n.renderReceipt(sale),
		Recipient: recipient,
		SaleID:    &saleID,
		Metadata: map[string]string{
			"sale_id":     sale.ID.String(),
			"sale_number": sale.Number,
		},
	}

	return n.SendEmail(ctx, req)
}

// renderReceipt lays the sale out as a fixed-width plain text receipt.
func (n *notificationService) renderReceipt(sale *models.Sale) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", n.storeName)
	fmt.Fprintf(&b, "Receipt %s\n", sale.Number)
	fmt.Fprintf(&b, "%s\n", sale.CreatedAt.Format("02 Jan 2006 15:04"))
	if sale.CustomerName != "" {
		fmt.Fprintf(&b, "Customer: %s\n", sale.CustomerName)
	}
	if sale.IsWholesale {
		b.WriteString("Wholesale\n")
	}
	b.WriteString(strings.Repeat("-", 40) + "\n")

	for _, line := range sale.Lines {
		name := line.Name
		if line.Size != "" {
			name += " " + line.Size
		}
		fmt.Fprintf(&b, "%s\n", name)
		fmt.Fprintf(&b, "  %d x %s", line.Quantity, pos.FormatAmount(line.UnitPrice))
		if line.Discount > 0 {
			fmt.Fprintf(&b, " (-%s%%)", pos.FormatAmount(line.Discount))
		}
		fmt.Fprintf(&b, "%*s\n", 12, pos.FormatAmount(line.Net))
	}

	b.WriteString(strings.Repeat("-", 40) + "\n")
	row := func(label string, amount float64) {
		fmt.Fprintf(&b, "%-26s%14s\n", label, pos.FormatAmount(amount))
	}
	row("Subtotal", sale.Subtotal)
	if sale.TotalDiscount != 0 {
		row("Discount", -sale.TotalDiscount)
	}
	row("Tax", sale.Tax)
	if sale.Adjustment != 0 {
		row("Adjustment", sale.Adjustment)
	}
	row("Total", sale.NetTotal)
	row("Paid ("+string(sale.PaymentMethod)+")", sale.CashIn)
	if sale.PaymentMethod == models.PaymentCash {
		row("Change", sale.Balance)
	}

	return b.String()
}

func (n *notificationService) GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	notification, err := n.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Notification", "fetch notification")
	}
	return notification, nil
}

func (n *notificationService) ListNotifications(ctx context.Context, filter models.ListFilter) ([]*models.Notification, int, error) {
	notifications, total, err := n.repo.ListNotifications(ctx, filter)
	if err != nil {
		return nil, 0, repoError(err, "Notification", "list notifications")
	}
	return notifications, total, nil
}
