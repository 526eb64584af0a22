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

type LabelHandler struct {
	labelService service.LabelService
	validator    *validator.Validate
}

func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService, validator: validator.New()}
}

// Layout godoc
//
//	@Summary		Plan a barcode label sheet
//	@Description	Returns where each label goes on each page. Printing happens in the browser.
//	@Tags			Labels
//	@Accept			json
//	@Produce		json
//	@Param			job	body		models.LabelLayoutRequest	true	"Sheet and items"
//	@Success		200	{object}	models.LabelLayout
//	@Failure		400	{object}	response.ErrorResponse	"Label does not fit or unknown product"
//	@Security		BearerAuth
//	@Router			/labels/layout [post]
func (h *LabelHandler) Layout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LabelLayoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid label layout input")
			return
		}

		layout, err := h.labelService.Layout(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to lay out labels", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Label sheet planned", slog.Int("labels", layout.TotalLabels), slog.Int("pages", layout.Pages))
		response.Success(w, http.StatusOK, layout)
	}
}
