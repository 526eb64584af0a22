package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils/response"
)

// authenticated returns the caller's claims and a logger tagged with them.
// It writes the 401 itself when the request carries no claims.
func authenticated(w http.ResponseWriter, r *http.Request, action string) (*models.Claims, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized attempt", slog.String("action", action))
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, nil, false
	}

	return claims, logger.With(slog.String("userID", claims.UserID.String())), true
}

// parseDate reads an optional query parameter as YYYY-MM-DD or RFC 3339.
func parseDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, errors.BadRequestError("Invalid " + name + " date").
		WithDetail("use YYYY-MM-DD or RFC 3339")
}

func paginated(data any, total int, filter models.ListFilter) models.PaginatedResponse {
	return models.PaginatedResponse{
		Data:     data,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
}
