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

// PartyHandler serves customers or suppliers, depending on kind.
type PartyHandler struct {
	partyService service.PartyService
	kind         models.PartyKind
	validator    *validator.Validate
}

func NewPartyHandler(partyService service.PartyService, kind models.PartyKind) *PartyHandler {
	return &PartyHandler{partyService: partyService, kind: kind, validator: validator.New()}
}

func (h *PartyHandler) logger(r *http.Request) *slog.Logger {
	return middleware.LoggerFromContext(r.Context()).With(slog.String("kind", string(h.kind)))
}

// Create godoc
//
//	@Summary	Create a customer or supplier
//	@Tags		Parties
//	@Accept		json
//	@Produce	json
//	@Param		kind	path		string						true	"customers or suppliers"
//	@Param		party	body		models.CreatePartyRequest	true	"Party"
//	@Success	201		{object}	models.Party
//	@Failure	400		{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/{kind} [post]
func (h *PartyHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger(r)

		var req models.CreatePartyRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid party input")
			return
		}

		party, err := h.partyService.CreateParty(r.Context(), h.kind, &req)
		if err != nil {
			logger.Error("Failed to create party", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Party created", slog.String("id", party.ID.String()))
		response.Success(w, http.StatusCreated, party)
	}
}

func (h *PartyHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		party, err := h.partyService.GetParty(r.Context(), h.kind, id)
		if err != nil {
			h.logger(r).Warn("Failed to get party", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, party)
	}
}

func (h *PartyHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger(r)

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdatePartyRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid party update input", slog.String("id", id.String()))
			return
		}

		party, err := h.partyService.UpdateParty(r.Context(), h.kind, id, &req)
		if err != nil {
			logger.Error("Failed to update party", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Party updated", slog.String("id", id.String()))
		response.Success(w, http.StatusOK, party)
	}
}

func (h *PartyHandler) SetActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger(r)

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		party, err := h.partyService.SetPartyActive(r.Context(), h.kind, id, active)
		if err != nil {
			logger.Error("Failed to change party status", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Party status changed", slog.String("id", id.String()), slog.Bool("active", active))
		response.Success(w, http.StatusOK, party)
	}
}

// List godoc
//
//	@Summary	List customers or suppliers
//	@Tags		Parties
//	@Produce	json
//	@Param		kind	path		string	true	"customers or suppliers"
//	@Param		page	query		int		false	"Page number"	default(1)
//	@Param		size	query		int		false	"Page size"		default(10)
//	@Param		q		query		string	false	"Name, phone or e-mail search"
//	@Success	200		{object}	models.PaginatedResponse{data=[]models.Party}
//	@Security	BearerAuth
//	@Router		/{kind} [get]
func (h *PartyHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := utils.ParseListFilter(r)

		parties, total, err := h.partyService.ListParties(r.Context(), h.kind, filter)
		if err != nil {
			h.logger(r).Error("Failed to list parties", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(parties, total, filter))
	}
}

func (h *PartyHandler) ListActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parties, err := h.partyService.ListActiveParties(r.Context(), h.kind)
		if err != nil {
			h.logger(r).Error("Failed to list active parties", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: parties})
	}
}
