package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/urbanest/rental-search/api/internal/gazetteer"
)

// LocalityHandler serves the locality directory used for filter dropdowns
// and typeahead.
type LocalityHandler struct{}

// NewLocalityHandler constructs a LocalityHandler.
func NewLocalityHandler() *LocalityHandler {
	return &LocalityHandler{}
}

// List handles GET /localities requests. With a q parameter it behaves as
// prefix typeahead, otherwise it returns the full directory.
func (h *LocalityHandler) List(c echo.Context) error {
	prefix := c.QueryParam("q")

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return Error(c, http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	var localities []string
	if prefix != "" {
		localities = gazetteer.Suggest(prefix, limit)
	} else {
		localities = gazetteer.All()
	}

	return Success(c, http.StatusOK, "localities retrieved", map[string]any{
		"localities": localities,
	})
}
