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

// MasterHandler serves one lookup table. main mounts one per kind under
// /api/v1/{kind}.
type MasterHandler struct {
	masterService service.MasterService
	kind          models.MasterKind
	validator     *validator.Validate
}

func NewMasterHandler(masterService service.MasterService, kind models.MasterKind) *MasterHandler {
	return &MasterHandler{masterService: masterService, kind: kind, validator: validator.New()}
}

func (h *MasterHandler) logger(r *http.Request) *slog.Logger {
	return middleware.LoggerFromContext(r.Context()).With(slog.String("kind", string(h.kind)))
}

// Create godoc
//
//	@Summary	Create a master record
//	@Tags		Masters
//	@Accept		json
//	@Produce	json
//	@Param		kind	path		string						true	"brands, categories, units, containers or branches"
//	@Param		record	body		models.CreateMasterRequest	true	"Record"
//	@Success	201		{object}	models.MasterRecord
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	409		{object}	response.ErrorResponse	"Code already exists"
//	@Security	BearerAuth
//	@Router		/{kind} [post]
func (h *MasterHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger(r)

		var req models.CreateMasterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid master input")
			return
		}

		record, err := h.masterService.CreateMaster(r.Context(), h.kind, &req)
		if err != nil {
			logger.Error("Failed to create master record", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Master record created", slog.String("id", record.ID.String()))
		response.Success(w, http.StatusCreated, record)
	}
}

// Get godoc
//
//	@Summary	Get a master record
//	@Tags		Masters
//	@Produce	json
//	@Param		kind	path		string	true	"Master kind"
//	@Param		id		path		string	true	"Record ID"	Format(uuid)
//	@Success	200		{object}	models.MasterRecord
//	@Failure	404		{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/{kind}/{id} [get]
func (h *MasterHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		record, err := h.masterService.GetMaster(r.Context(), h.kind, id)
		if err != nil {
			h.logger(r).Warn("Failed to get master record", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, record)
	}
}

// Update godoc
//
//	@Summary	Update a master record
//	@Tags		Masters
//	@Accept		json
//	@Produce	json
//	@Param		kind	path		string						true	"Master kind"
//	@Param		id		path		string						true	"Record ID"	Format(uuid)
//	@Param		record	body		models.UpdateMasterRequest	true	"Fields to change"
//	@Success	200		{object}	models.MasterRecord
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/{kind}/{id} [put]
func (h *MasterHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger(r)

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateMasterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid master update input", slog.String("id", id.String()))
			return
		}

		record, err := h.masterService.UpdateMaster(r.Context(), h.kind, id, &req)
		if err != nil {
			logger.Error("Failed to update master record", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Master record updated", slog.String("id", id.String()))
		response.Success(w, http.StatusOK, record)
	}
}

// SetActive backs PATCH /{kind}/{id}/activate and /deactivate.
func (h *MasterHandler) SetActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger(r)

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		record, err := h.masterService.SetMasterActive(r.Context(), h.kind, id, active)
		if err != nil {
			logger.Error("Failed to change master status", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Master status changed", slog.String("id", id.String()), slog.Bool("active", active))
		response.Success(w, http.StatusOK, record)
	}
}

// List godoc
//
//	@Summary	List master records
//	@Tags		Masters
//	@Produce	json
//	@Param		kind	path		string	true	"Master kind"
//	@Param		page	query		int		false	"Page number"	default(1)
//	@Param		size	query		int		false	"Page size"		default(10)
//	@Param		q		query		string	false	"Code or name search"
//	@Success	200		{object}	models.PaginatedResponse{data=[]models.MasterRecord}
//	@Security	BearerAuth
//	@Router		/{kind} [get]
func (h *MasterHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := utils.ParseListFilter(r)

		records, total, err := h.masterService.ListMasters(r.Context(), h.kind, filter)
		if err != nil {
			h.logger(r).Error("Failed to list master records", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(records, total, filter))
	}
}

// ListActive godoc
//
//	@Summary	List active master records for pickers
//	@Tags		Masters
//	@Produce	json
//	@Param		kind	path		string	true	"Master kind"
//	@Success	200		{object}	models.ListResponse{data=[]models.MasterRecord}
//	@Security	BearerAuth
//	@Router		/{kind}/active/list [get]
func (h *MasterHandler) ListActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.masterService.ListActiveMasters(r.Context(), h.kind)
		if err != nil {
			h.logger(r).Error("Failed to list active master records", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: records})
	}
}
