package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
	"github.com/mealwise/mealplanner/internal/pkg/metrics"
)

const heartbeatInterval = 25 * time.Second

// AdminHandler serves the admin dashboard and the schema maintenance calls.
type AdminHandler struct {
	service   ports.AdminService
	log       zerolog.Logger
	heartbeat time.Duration
}

// NewAdminHandler creates an AdminHandler backed by the given service.
func NewAdminHandler(service ports.AdminService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{service: service, log: log, heartbeat: heartbeatInterval}
}

// Stats handles GET /api/admin/stats.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AdminStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Users handles GET /api/admin/users.
//
// @Summary      List user profiles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        membership  query     string  false  "basic, pro or ultimate"
// @Param        goal        query     string  false  "Health goal tag"
// @Param        search      query     string  false  "Partial name or email"
// @Param        limit       query     int     false  "Maximum rows (default 50, max 200)"
// @Success      200         {object}  usersResponse
// @Failure      401         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      422         {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	var q usersQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	users, err := h.service.ListUsers(c.Request().Context(), domain.ProfileFilter{
		Membership: domain.MembershipTier(q.Membership),
		HealthGoal: q.HealthGoal,
		Search:     q.Search,
		Limit:      q.Limit,
	})
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.Profile{}
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users, Count: len(users)})
}

// Changes handles GET /api/admin/changes. Profile writes are streamed as
// server-sent events until the client disconnects.
//
// @Summary      Live profile changes
// @Tags         admin
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {object}  domain.ProfileChange
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/changes [get]
func (h *AdminHandler) Changes(c echo.Context) error {
	ctx := c.Request().Context()
	changes, err := h.service.WatchProfiles(ctx)
	if err != nil {
		return err
	}

	metrics.ChangeFeedSubscribers.Inc()
	defer metrics.ChangeFeedSubscribers.Dec()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(res, ": connected\n\n"); err != nil {
		return nil
	}
	res.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case change, ok := <-changes:
			if !ok {
				// Stream ended on the server side; the client reconnects.
				return nil
			}
			data, err := json.Marshal(change)
			if err != nil {
				h.log.Error().Err(err).Str("account_id", change.AccountID).Msg("encode profile change")
				continue
			}
			if _, err := fmt.Fprintf(res, "event: profile\ndata: %s\n\n", data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// EnsureProfileColumns handles POST /api/admin/schema/profile-columns.
//
// @Summary      Register the dietary and health profile columns
// @Tags         admin
// @Produce      json
// @Param        X-Service-Key  header    string  true  "Privileged service key"
// @Success      200            {object}  columnsResponse
// @Failure      401            {object}  errorResponse
// @Router       /api/admin/schema/profile-columns [post]
func (h *AdminHandler) EnsureProfileColumns(c echo.Context) error {
	results := h.service.EnsureProfileColumns(c.Request().Context())
	return c.JSON(http.StatusOK, columnsResponse{Results: results})
}

// EnsureMembershipColumn handles POST /api/admin/schema/membership-column.
//
// @Summary      Register the membership column
// @Tags         admin
// @Produce      json
// @Param        X-Service-Key  header    string  true  "Privileged service key"
// @Success      200            {object}  columnsResponse
// @Failure      401            {object}  errorResponse
// @Router       /api/admin/schema/membership-column [post]
func (h *AdminHandler) EnsureMembershipColumn(c echo.Context) error {
	results := h.service.EnsureMembershipColumn(c.Request().Context())
	return c.JSON(http.StatusOK, columnsResponse{Results: results})
}
