package service

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/google/uuid"
)

const (
	defaultReportDays = 30
	defaultTopN       = 10
	maxTopN           = 100
)

type SaleService interface {
	GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	ListSales(ctx context.Context, filter models.SaleFilter) ([]*models.Sale, int, error)
	SalesReport(ctx context.Context, filter models.ReportFilter) (*models.SalesReport, error)
	ResendReceipt(ctx context.Context, id uuid.UUID, recipient string) (*models.NotificationResponse, error)
}

type saleService struct {
	repo     repository.SaleRepository
	notifier NotificationService
	now      func() time.Time
}

func NewSaleService(repo repository.SaleRepository, notifier NotificationService) SaleService {
	return &saleService{repo: repo, notifier: notifier, now: time.Now}
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	sale, err := s.repo.GetSaleByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Sale", "fetch sale")
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, filter models.SaleFilter) ([]*models.Sale, int, error) {
	if filter.From != nil && filter.To != nil && !filter.To.After(*filter.From) {
		return nil, 0, errors.AddValidationError("to", "must be after from")
	}

	sales, total, err := s.repo.ListSales(ctx, filter)
	if err != nil {
		return nil, 0, repoError(err, "Sale", "list sales")
	}
	return sales, total, nil
}

// SalesReport aggregates [From, To). A zero To means now and a zero From
// means thirty days before To.
func (s *saleService) SalesReport(ctx context.Context, filter models.ReportFilter) (*models.SalesReport, error) {
	if filter.To.IsZero() {
		filter.To = s.now().UTC()
	}
	if filter.From.IsZero() {
		filter.From = filter.To.AddDate(0, 0, -defaultReportDays)
	}
	if !filter.To.After(filter.From) {
		return nil, errors.AddValidationError("to", "must be after from")
	}

	switch {
	case filter.TopN <= 0:
		filter.TopN = defaultTopN
	case filter.TopN > maxTopN:
		filter.TopN = maxTopN
	}

	report, err := s.repo.SalesReport(ctx, filter)
	if err != nil {
		return nil, repoError(err, "Sales report", "build sales report")
	}
	return report, nil
}

func (s *saleService) ResendReceipt(ctx context.Context, id uuid.UUID, recipient string) (*models.NotificationResponse, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.notifier.SendReceipt(ctx, sale, recipient)
}
