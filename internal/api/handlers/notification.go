package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	service "github.com/aaravmahajanofficial/pos-admin/internal/services"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type NotificationHandler struct {
	notificationService service.NotificationService
	validator           *validator.Validate
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validator:           validator.New(),
	}
}

// SendEmail godoc
//
//	@Summary	Send an e-mail
//	@Tags		Notifications
//	@Accept		json
//	@Produce	json
//	@Param		email	body		models.EmailNotificationRequest	true	"E-mail"
//	@Success	201		{object}	models.NotificationResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	502		{object}	response.ErrorResponse	"E-mail provider failed"
//	@Security	BearerAuth
//	@Router		/notifications/email [post]
func (h *NotificationHandler) SendEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, logger, ok := authenticated(w, r, "send email")
		if !ok {
			return
		}

		var req models.EmailNotificationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid notification input")
			return
		}

		logger.Info("Attempting to send email notification")
		notification, err := h.notificationService.SendEmail(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to send email notification", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Notification sent", slog.String("notificationId", notification.ID.String()))
		response.Success(w, http.StatusCreated, notification)
	}
}

// GetNotification godoc
//
//	@Summary	Get a notification
//	@Tags		Notifications
//	@Produce	json
//	@Param		id	path		string	true	"Notification ID"	Format(uuid)
//	@Success	200	{object}	models.Notification
//	@Failure	404	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/notifications/{id} [get]
func (h *NotificationHandler) GetNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		notification, err := h.notificationService.GetNotification(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get notification", slog.String("notificationId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, notification)
	}
}

// ListNotifications godoc
//
//	@Summary	List notifications, newest first
//	@Tags		Notifications
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Param		size	query		int	false	"Page size"		default(10)
//	@Success	200		{object}	models.PaginatedResponse{data=[]models.Notification}
//	@Security	BearerAuth
//	@Router		/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		filter := utils.ParseListFilter(r)

		logger = logger.With(slog.Int("page", filter.Page), slog.Int("pageSize", filter.PageSize))
		notifications, total, err := h.notificationService.ListNotifications(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list notifications", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Notifications listed", slog.Int("count", len(notifications)), slog.Int("total", total))
		response.Success(w, http.StatusOK, paginated(notifications, total, filter))
	}
}
