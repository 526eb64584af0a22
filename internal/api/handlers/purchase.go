package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	service "github.com/aaravmahajanofficial/pos-admin/internal/services"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchaseService service.PurchaseService
	validator       *validator.Validate
}

func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, validator: validator.New()}
}

// CreatePurchaseOrder godoc
//
//	@Summary	Create a draft purchase order
//	@Tags		Purchasing
//	@Accept		json
//	@Produce	json
//	@Param		order	body		models.CreatePurchaseOrderRequest	true	"Order"
//	@Success	201		{object}	models.PurchaseOrder
//	@Failure	400		{object}	response.ErrorResponse	"Validation error, inactive supplier or unknown product"
//	@Security	BearerAuth
//	@Router		/purchase-orders [post]
func (h *PurchaseHandler) CreatePurchaseOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "create purchase order")
		if !ok {
			return
		}

		var req models.CreatePurchaseOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid purchase order input")
			return
		}

		order, err := h.purchaseService.CreatePurchaseOrder(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create purchase order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, order)
	}
}

// GetPurchaseOrder godoc
//
//	@Summary	Get a purchase order
//	@Tags		Purchasing
//	@Produce	json
//	@Param		id	path		string	true	"Purchase order ID"	Format(uuid)
//	@Success	200	{object}	models.PurchaseOrder
//	@Failure	404	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/purchase-orders/{id} [get]
func (h *PurchaseHandler) GetPurchaseOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.purchaseService.GetPurchaseOrder(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get purchase order",
				slog.String("purchaseOrderId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListPurchaseOrders godoc
//
//	@Summary	List purchase orders
//	@Tags		Purchasing
//	@Produce	json
//	@Param		page		query		int		false	"Page number"	default(1)
//	@Param		size		query		int		false	"Page size"		default(10)
//	@Param		q			query		string	false	"Order number search"
//	@Param		status		query		string	false	"draft, ordered, partially_received, received or cancelled"
//	@Param		supplier_id	query		string	false	"Supplier ID"	Format(uuid)
//	@Success	200			{object}	models.PaginatedResponse{data=[]models.PurchaseOrder}
//	@Security	BearerAuth
//	@Router		/purchase-orders [get]
func (h *PurchaseHandler) ListPurchaseOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		filter := models.PurchaseOrderFilter{
			ListFilter: utils.ParseListFilter(r),
			Status:     models.PurchaseOrderStatus(r.URL.Query().Get("status")),
		}

		if raw := r.URL.Query().Get("supplier_id"); raw != "" {
			supplierID, err := uuid.Parse(raw)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid supplier_id format").WithError(err))
				return
			}
			filter.SupplierID = &supplierID
		}

		orders, total, err := h.purchaseService.ListPurchaseOrders(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list purchase orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(orders, total, filter.ListFilter))
	}
}

// UpdateDraft godoc
//
//	@Summary	Edit a draft purchase order
//	@Tags		Purchasing
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Purchase order ID"	Format(uuid)
//	@Param		order	body		models.UpdatePurchaseOrderRequest	true	"Fields to change"
//	@Success	200		{object}	models.PurchaseOrder
//	@Failure	409		{object}	response.ErrorResponse	"Order is no longer a draft"
//	@Security	BearerAuth
//	@Router		/purchase-orders/{id} [put]
func (h *PurchaseHandler) UpdateDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdatePurchaseOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.purchaseService.UpdateDraft(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update purchase order", slog.String("purchaseOrderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// Submit godoc
//
//	@Summary	Send a draft to the supplier
//	@Tags		Purchasing
//	@Produce	json
//	@Param		id	path		string	true	"Purchase order ID"	Format(uuid)
//	@Success	200	{object}	models.PurchaseOrder
//	@Failure	409	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/purchase-orders/{id}/submit [post]
func (h *PurchaseHandler) Submit() http.HandlerFunc {
	return h.transition("submit", h.purchaseService.SubmitPurchaseOrder)
}

// Cancel godoc
//
//	@Summary	Cancel a draft or ordered purchase order
//	@Tags		Purchasing
//	@Produce	json
//	@Param		id	path		string	true	"Purchase order ID"	Format(uuid)
//	@Success	200	{object}	models.PurchaseOrder
//	@Failure	409	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/purchase-orders/{id}/cancel [post]
func (h *PurchaseHandler) Cancel() http.HandlerFunc {
	return h.transition("cancel", h.purchaseService.CancelPurchaseOrder)
}

func (h *PurchaseHandler) transition(action string, fn func(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, logger, ok := authenticated(w, r, action+" purchase order")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := fn(r.Context(), id)
		if err != nil {
			logger.Warn("Purchase order transition failed",
				slog.String("action", action),
				slog.String("purchaseOrderId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ReceiveGoods godoc
//
//	@Summary		Book a goods received note
//	@Description	Adds the received quantities to stock and moves the order to partially_received or received.
//	@Tags			Purchasing
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Purchase order ID"	Format(uuid)
//	@Param			grn		body		models.ReceiveGoodsRequest	true	"Received items"
//	@Success		201		{object}	models.ReceiveResult
//	@Failure		400		{object}	response.ErrorResponse	"Quantity exceeds what is outstanding"
//	@Failure		409		{object}	response.ErrorResponse	"Order cannot receive goods"
//	@Security		BearerAuth
//	@Router			/purchase-orders/{id}/receive [post]
func (h *PurchaseHandler) ReceiveGoods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "receive goods")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ReceiveGoodsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid goods received input")
			return
		}

		result, err := h.purchaseService.ReceiveGoods(r.Context(), id, claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to receive goods", slog.String("purchaseOrderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, result)
	}
}

// ListGoodsReceived godoc
//
//	@Summary	List goods received notes of an order
//	@Tags		Purchasing
//	@Produce	json
//	@Param		id	path		string	true	"Purchase order ID"	Format(uuid)
//	@Success	200	{object}	models.ListResponse{data=[]models.GoodsReceivedNote}
//	@Security	BearerAuth
//	@Router		/purchase-orders/{id}/grns [get]
func (h *PurchaseHandler) ListGoodsReceived() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		notes, err := h.purchaseService.ListGoodsReceived(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to list goods received notes",
				slog.String("purchaseOrderId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: notes})
	}
}
