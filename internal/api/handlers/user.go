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

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchanges e-mail and password for a bearer token. Repeated failures are rate limited per e-mail.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Credentials"
//	@Success		200			{object}	models.LoginResponse
//	@Failure		401			{object}	models.LoginResponse	"Invalid credentials"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Router			/users/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.Int("remainingTries", resp.RemainingTries))
			response.WriteJson(w, status, response.APIResponse{Status: response.StatusError, Data: resp})
			return
		}

		logger.Info("User logged in", slog.String("role", string(resp.Role)))
		response.Success(w, http.StatusOK, resp)
	}
}

// Profile godoc
//
//	@Summary	Current user
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	models.ProfileResponse
//	@Failure	401	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/users/profile [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "profile")
		if !ok {
			return
		}

		profile, err := h.userService.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Failed to load profile", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, profile)
	}
}

// CreateUser godoc
//
//	@Summary	Create a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		models.CreateUserRequest	true	"User"
//	@Success	201		{object}	models.User
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	403		{object}	response.ErrorResponse
//	@Failure	409		{object}	response.ErrorResponse	"E-mail already registered"
//	@Security	BearerAuth
//	@Router		/users [post]
func (h *UserHandler) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, logger, ok := authenticated(w, r, "create user")
		if !ok {
			return
		}

		var req models.CreateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid user input")
			return
		}

		user, err := h.userService.CreateUser(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create user", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User created", slog.String("newUserId", user.ID.String()), slog.String("role", string(user.Role)))
		response.Success(w, http.StatusCreated, user)
	}
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Param		page	query		int		false	"Page number"	default(1)
//	@Param		size	query		int		false	"Page size"		default(10)
//	@Param		q		query		string	false	"Name or e-mail search"
//	@Success	200		{object}	models.PaginatedResponse{data=[]models.User}
//	@Security	BearerAuth
//	@Router		/users [get]
func (h *UserHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := utils.ParseListFilter(r)

		users, total, err := h.userService.ListUsers(r.Context(), filter)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list users", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(users, total, filter))
	}
}

// UpdateRole godoc
//
//	@Summary	Change a user's role
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"User ID"	Format(uuid)
//	@Param		role	body		models.UpdateRoleRequest	true	"New role"
//	@Success	200		{object}	models.User
//	@Failure	400		{object}	response.ErrorResponse	"Own role or unknown role"
//	@Failure	404		{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/users/{id}/role [patch]
func (h *UserHandler) UpdateRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "update role")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateRoleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid role input")
			return
		}

		user, err := h.userService.UpdateRole(r.Context(), claims.UserID, id, req.Role)
		if err != nil {
			logger.Error("Failed to update role", slog.String("targetId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Role updated", slog.String("targetId", id.String()), slog.String("role", string(req.Role)))
		response.Success(w, http.StatusOK, user)
	}
}

// SetUserActive backs PATCH /users/{id}/activate and /deactivate.
func (h *UserHandler) SetUserActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "set user status")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		user, err := h.userService.SetUserActive(r.Context(), claims.UserID, id, active)
		if err != nil {
			logger.Error("Failed to change user status", slog.String("targetId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User status changed", slog.String("targetId", id.String()), slog.Bool("active", active))
		response.Success(w, http.StatusOK, user)
	}
}
