package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/middleware"
	"github.com/urbanest/rental-search/api/internal/repository"
	"github.com/urbanest/rental-search/api/internal/service"
)

// SavedSearchHandler exposes CRUD endpoints for saved searches.
type SavedSearchHandler struct {
	searches *service.SavedSearchService
}

// NewSavedSearchHandler constructs a SavedSearchHandler.
func NewSavedSearchHandler(searches *service.SavedSearchService) *SavedSearchHandler {
	return &SavedSearchHandler{searches: searches}
}

func callerID(c echo.Context) (string, bool) {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)
	return userID, userID != ""
}

// Save handles POST /searches requests.
func (h *SavedSearchHandler) Save(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing authentication context")
	}

	var req dto.SaveSearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.searches.Save(c.Request().Context(), userID, req)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	return Success(c, http.StatusCreated, "search saved", saved)
}

// List handles GET /searches requests.
func (h *SavedSearchHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing authentication context")
	}

	searches, err := h.searches.List(c.Request().Context(), userID)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list saved searches")
	}

	return Success(c, http.StatusOK, "saved searches", searches)
}

// Get handles GET /searches/:id requests.
func (h *SavedSearchHandler) Get(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing authentication context")
	}

	search, err := h.searches.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSavedSearchNotFound) {
			return Error(c, http.StatusNotFound, "saved search not found")
		}
		return Error(c, http.StatusBadRequest, err.Error())
	}

	return Success(c, http.StatusOK, "saved search", search)
}

// Delete handles DELETE /searches/:id requests.
func (h *SavedSearchHandler) Delete(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing authentication context")
	}

	if err := h.searches.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSavedSearchNotFound) {
			return Error(c, http.StatusNotFound, "saved search not found")
		}
		return Error(c, http.StatusBadRequest, err.Error())
	}

	return Success(c, http.StatusOK, "saved search deleted", nil)
}
