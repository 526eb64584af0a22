package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/events"
	"github.com/aaravmahajanofficial/pos-admin/internal/metrics"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
)

type PurchaseService interface {
	CreatePurchaseOrder(ctx context.Context, createdBy uuid.UUID, req *models.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, filter models.PurchaseOrderFilter) ([]*models.PurchaseOrder, int, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, req *models.UpdatePurchaseOrderRequest) (*models.PurchaseOrder, error)
	SubmitPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	CancelPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	ReceiveGoods(ctx context.Context, id, receivedBy uuid.UUID, req *models.ReceiveGoodsRequest) (*models.ReceiveResult, error)
	ListGoodsReceived(ctx context.Context, id uuid.UUID) ([]*models.GoodsReceivedNote, error)
}

type purchaseService struct {
	repo      repository.PurchaseRepository
	products  ProductService
	parties   PartyService
	publisher events.Publisher
	now       func() time.Time
}

func NewPurchaseService(repo repository.PurchaseRepository, products ProductService, parties PartyService, publisher events.Publisher) PurchaseService {
	return &purchaseService{
		repo:      repo,
		products:  products,
		parties:   parties,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *purchaseService) documentNumber(prefix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, s.now().UTC().Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}

// buildItems checks that every product exists, appears once and returns the
// order lines with their total.
func (s *purchaseService) buildItems(ctx context.Context, reqs []models.PurchaseOrderItemRequest) ([]models.PurchaseOrderItem, float64, error) {
	seen := make(map[uuid.UUID]bool, len(reqs))
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, r := range reqs {
		if seen[r.ProductID] {
			return nil, 0, errors.AddValidationError("items", "product "+r.ProductID.String()+" is listed more than once")
		}
		seen[r.ProductID] = true
		ids = append(ids, r.ProductID)
	}

	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	found := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		found[p.ID] = true
	}

	items := make([]models.PurchaseOrderItem, 0, len(reqs))
	var total float64
	for _, r := range reqs {
		if !found[r.ProductID] {
			return nil, 0, errors.BadRequestError("Product not found").WithDetail(r.ProductID.String())
		}
		items = append(items, models.PurchaseOrderItem{
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			UnitCost:  pos.Round2(r.UnitCost),
		})
		total += float64(r.Quantity) * r.UnitCost
	}

	return items, pos.Round2(total), nil
}

func (s *purchaseService) CreatePurchaseOrder(ctx context.Context, createdBy uuid.UUID, req *models.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	supplier, err := s.parties.GetParty(ctx, models.PartySupplier, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.Active {
		return nil, errors.BadRequestError("Supplier is inactive")
	}

	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.PurchaseOrder{
		Number:     s.documentNumber("PO"),
		SupplierID: req.SupplierID,
		BranchID:   req.BranchID,
		Status:     models.POStatusDraft,
		Notes:      utils.Sanitize(req.Notes),
		Items:      items,
		Total:      total,
		CreatedBy:  createdBy,
	}

	if err := s.repo.CreatePurchaseOrder(ctx, order); err != nil {
		return nil, repoError(err, "Purchase order", "create purchase order")
	}

	middleware.LoggerFromContext(ctx).Info("Purchase order created",
		slog.String("purchaseOrderId", order.ID.String()),
		slog.String("number", order.Number))

	return order, nil
}

func (s *purchaseService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	order, err := s.repo.GetPurchaseOrderByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Purchase order", "fetch purchase order")
	}
	return order, nil
}

func (s *purchaseService) ListPurchaseOrders(ctx context.Context, filter models.PurchaseOrderFilter) ([]*models.PurchaseOrder, int, error) {
	orders, total, err := s.repo.ListPurchaseOrders(ctx, filter)
	if err != nil {
		return nil, 0, repoError(err, "Purchase order", "list purchase orders")
	}
	return orders, total, nil
}

func (s *purchaseService) UpdateDraft(ctx context.Context, id uuid.UUID, req *models.UpdatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	order, err := s.GetPurchaseOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.POStatusDraft {
		return nil, errors.ConflictError("Only draft purchase orders can be edited")
	}

	if req.Notes != nil {
		order.Notes = utils.Sanitize(*req.Notes)
	}
	if len(req.Items) > 0 {
		items, total, err := s.buildItems(ctx, req.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
		order.Total = total
	}

	if err := s.repo.ReplaceDraft(ctx, order); err != nil {
		if stdErrors.Is(err, repository.ErrInvalidState) {
			return nil, errors.ConflictError("Only draft purchase orders can be edited").WithError(err)
		}
		return nil, repoError(err, "Purchase order", "update purchase order")
	}

	return order, nil
}

func (s *purchaseService) transition(ctx context.Context, id uuid.UUID, from []models.PurchaseOrderStatus, to models.PurchaseOrderStatus, conflict string) (*models.PurchaseOrder, error) {
	if err := s.repo.TransitionStatus(ctx, id, from, to); err != nil {
		if !stdErrors.Is(err, repository.ErrInvalidState) {
			return nil, repoError(err, "Purchase order", "update purchase order status")
		}
		// Zero rows means either a missing order or the wrong status.
		if _, getErr := s.GetPurchaseOrder(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, errors.ConflictError(conflict).WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Purchase order status changed",
		slog.String("purchaseOrderId", id.String()),
		slog.String("status", string(to)))

	return s.GetPurchaseOrder(ctx, id)
}

// SubmitPurchaseOrder sends a draft to the supplier.
func (s *purchaseService) SubmitPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	return s.transition(ctx, id,
		[]models.PurchaseOrderStatus{models.POStatusDraft},
		models.POStatusOrdered,
		"Only draft purchase orders can be submitted")
}

func (s *purchaseService) CancelPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	return s.transition(ctx, id,
		[]models.PurchaseOrderStatus{models.POStatusDraft, models.POStatusOrdered},
		models.POStatusCancelled,
		"Only draft or ordered purchase orders can be cancelled")
}

// ReceiveGoods books a delivery against an order. Items without a unit cost
// use the ordered cost.
func (s *purchaseService) ReceiveGoods(ctx context.Context, id, receivedBy uuid.UUID, req *models.ReceiveGoodsRequest) (*models.ReceiveResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	order, err := s.GetPurchaseOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.Receivable() {
		return nil, errors.ConflictError("Goods can only be received against an ordered purchase order").
			WithDetail("status is " + string(order.Status))
	}

	ordered := make(map[uuid.UUID]models.PurchaseOrderItem, len(order.Items))
	for _, item := range order.Items {
		ordered[item.ProductID] = item
	}

	grn := &models.GoodsReceivedNote{
		Number:          s.documentNumber("GRN"),
		PurchaseOrderID: id,
		ReceivedBy:      receivedBy,
		Notes:           utils.Sanitize(req.Notes),
		Items:           make([]models.GoodsReceivedItem, 0, len(req.Items)),
	}

	seen := make(map[uuid.UUID]bool, len(req.Items))
	for _, in := range req.Items {
		item, ok := ordered[in.ProductID]
		if !ok {
			return nil, errors.BadRequestError("Product is not on this purchase order").WithDetail(in.ProductID.String())
		}
		if seen[in.ProductID] {
			return nil, errors.AddValidationError("items", "product "+in.ProductID.String()+" is listed more than once")
		}
		seen[in.ProductID] = true

		if in.Quantity > item.Outstanding() {
			return nil, errors.BadRequestError("Received quantity exceeds what is outstanding").
				WithDetail(fmt.Sprintf("product %s: %d outstanding", in.ProductID, item.Outstanding()))
		}

		cost := item.UnitCost
		if in.UnitCost != nil {
			cost = pos.Round2(*in.UnitCost)
		}
		grn.Items = append(grn.Items, models.GoodsReceivedItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitCost:  cost,
		})
	}

	status, err := s.repo.ReceiveGoods(ctx, grn)
	if err != nil {
		switch {
		case stdErrors.Is(err, repository.ErrExceedsOutstanding):
			return nil, errors.BadRequestError("Received quantity exceeds what is outstanding").WithError(err)
		case stdErrors.Is(err, repository.ErrInvalidState):
			return nil, errors.ConflictError("Goods can only be received against an ordered purchase order").WithError(err)
		default:
			return nil, repoError(err, "Purchase order", "record goods received")
		}
	}

	productIDs := make([]uuid.UUID, 0, len(grn.Items))
	for _, item := range grn.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	s.products.Invalidate(ctx, productIDs...)

	metrics.RecordGoodsReceived()
	logger.Info("Goods received",
		slog.String("grnId", grn.ID.String()),
		slog.String("purchaseOrderId", id.String()),
		slog.String("status", string(status)))

	if err := s.publisher.Publish(ctx, events.GRNReceived, grn); err != nil {
		logger.Warn("Failed to publish goods received event", slog.String("grnId", grn.ID.String()), slog.String("error", err.Error()))
	}

	updated, err := s.GetPurchaseOrder(ctx, id)
	if err != nil {
		logger.Warn("Failed to reload purchase order after receiving", slog.String("error", err.Error()))
		order.Status = status
		updated = order
	}

	return &models.ReceiveResult{Order: updated, GRN: grn}, nil
}

func (s *purchaseService) ListGoodsReceived(ctx context.Context, id uuid.UUID) ([]*models.GoodsReceivedNote, error) {
	if _, err := s.GetPurchaseOrder(ctx, id); err != nil {
		return nil, err
	}

	notes, err := s.repo.ListGoodsReceived(ctx, id)
	if err != nil {
		return nil, repoError(err, "Goods received note", "list goods received notes")
	}
	return notes, nil
}
