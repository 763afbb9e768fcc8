package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/middleware"
	"github.com/urbanest/rental-search/api/internal/service"
)

// SearchExecutor abstracts the search service for handler tests.
type SearchExecutor interface {
	Search(ctx context.Context, callerKey, tier, requestID string, req dto.SearchRequest) (*dto.SearchResponse, error)
}

// SearchHandler exposes the property search endpoint.
type SearchHandler struct {
	search SearchExecutor
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(search SearchExecutor) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles POST /search requests. Each authenticated renter is one
// search session: a request that arrives while an older one from the same
// renter is still in flight makes the older one report superseded.
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	userID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if userID == "" {
		return Error(c, http.StatusUnauthorized, "missing authentication context")
	}
	tier, _ := c.Get(middleware.ContextKeyUserTier).(string)
	if tier == "" {
		tier = dto.TierFree
	}
	requestID := middleware.RequestIDFromContext(c)

	resp, err := h.search.Search(c.Request().Context(), userID, tier, requestID, req)
	if err != nil {
		if errors.Is(err, service.ErrSuperseded) {
			return Superseded(c)
		}
		return Error(c, http.StatusBadGateway, "search failed")
	}

	return Success(c, http.StatusOK, "search results", resp)
}
