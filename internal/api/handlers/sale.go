package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	service "github.com/aaravmahajanofficial/pos-admin/internal/services"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SaleHandler struct {
	saleService service.SaleService
	validator   *validator.Validate
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService, validator: validator.New()}
}

func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.BadRequestError("Invalid " + name + " format").WithError(err)
	}
	return &id, nil
}

// GetSale godoc
//
//	@Summary	Get a sale
//	@Tags		Sales
//	@Produce	json
//	@Param		id	path		string	true	"Sale ID"	Format(uuid)
//	@Success	200	{object}	models.Sale
//	@Failure	404	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/sales/{id} [get]
func (h *SaleHandler) GetSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		sale, err := h.saleService.GetSale(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get sale", slog.String("saleId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sale)
	}
}

// ListSales godoc
//
//	@Summary	List sales, newest first
//	@Tags		Sales
//	@Produce	json
//	@Param		page		query		int		false	"Page number"	default(1)
//	@Param		size		query		int		false	"Page size"		default(10)
//	@Param		q			query		string	false	"Sale number or customer search"
//	@Param		from		query		string	false	"From date (inclusive), YYYY-MM-DD or RFC 3339"
//	@Param		to			query		string	false	"To date (exclusive)"
//	@Param		cashier_id	query		string	false	"Cashier ID"	Format(uuid)
//	@Success	200			{object}	models.PaginatedResponse{data=[]models.Sale}
//	@Security	BearerAuth
//	@Router		/sales [get]
func (h *SaleHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		filter := models.SaleFilter{ListFilter: utils.ParseListFilter(r)}

		var err error
		if filter.From, err = parseDate(r, "from"); err != nil {
			response.Error(w, err)
			return
		}
		if filter.To, err = parseDate(r, "to"); err != nil {
			response.Error(w, err)
			return
		}
		if filter.CashierID, err = queryUUID(r, "cashier_id"); err != nil {
			response.Error(w, err)
			return
		}

		sales, total, err := h.saleService.ListSales(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list sales", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(sales, total, filter.ListFilter))
	}
}

// SalesReport godoc
//
//	@Summary		Sales summary
//	@Description	Totals, payment method split and top products for [from, to). Defaults to the last 30 days.
//	@Tags			Reports
//	@Produce		json
//	@Param			from		query		string	false	"From date (inclusive)"
//	@Param			to			query		string	false	"To date (exclusive)"
//	@Param			branch_id	query		string	false	"Branch ID"	Format(uuid)
//	@Param			top			query		int		false	"Top products to return"	default(10)
//	@Success		200			{object}	models.SalesReport
//	@Failure		400			{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/sales [get]
func (h *SaleHandler) SalesReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var filter models.ReportFilter

		from, err := parseDate(r, "from")
		if err != nil {
			response.Error(w, err)
			return
		}
		to, err := parseDate(r, "to")
		if err != nil {
			response.Error(w, err)
			return
		}
		if from != nil {
			filter.From = *from
		}
		if to != nil {
			filter.To = *to
		}

		if filter.BranchID, err = queryUUID(r, "branch_id"); err != nil {
			response.Error(w, err)
			return
		}
		if raw := r.URL.Query().Get("top"); raw != "" {
			if filter.TopN, err = strconv.Atoi(raw); err != nil {
				response.Error(w, errors.BadRequestError("Invalid top value"))
				return
			}
		}

		report, err := h.saleService.SalesReport(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to build sales report", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, report)
	}
}

// ResendReceipt godoc
//
//	@Summary	E-mail a sale receipt again
//	@Tags		Sales
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"Sale ID"	Format(uuid)
//	@Param		receipt		body		models.ReceiptRequest	false	"Override recipient"
//	@Success	201			{object}	models.NotificationResponse
//	@Failure	400			{object}	response.ErrorResponse	"No recipient"
//	@Failure	502			{object}	response.ErrorResponse	"E-mail provider failed"
//	@Security	BearerAuth
//	@Router		/sales/{id}/receipt [post]
func (h *SaleHandler) ResendReceipt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, logger, ok := authenticated(w, r, "resend receipt")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ReceiptRequest
		if r.ContentLength != 0 && !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		notification, err := h.saleService.ResendReceipt(r.Context(), id, req.Recipient)
		if err != nil {
			logger.Warn("Failed to resend receipt", slog.String("saleId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Receipt sent", slog.String("saleId", id.String()), slog.String("notificationId", notification.ID.String()))
		response.Success(w, http.StatusCreated, notification)
	}
}
