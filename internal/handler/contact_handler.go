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

// ContactHandler exposes the owner contact reveal endpoint.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ContactOwner handles POST /contact-owner requests.
func (h *ContactHandler) ContactOwner(c echo.Context) error {
	var req dto.ContactOwnerRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if req.PropertyID == "" {
		return Error(c, http.StatusBadRequest, "property_id is required")
	}

	userID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if userID == "" {
		return Error(c, http.StatusUnauthorized, "missing authentication context")
	}
	tier, _ := c.Get(middleware.ContextKeyUserTier).(string)
	if tier == "" {
		tier = dto.TierFree
	}

	resp, err := h.contacts.ContactOwner(c.Request().Context(), userID, tier, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactQuotaExceeded):
			return Error(c, http.StatusPaymentRequired, "monthly contact limit reached")
		case errors.Is(err, repository.ErrPropertyNotFound):
			return Error(c, http.StatusNotFound, "property not found")
		default:
			return Error(c, http.StatusInternalServerError, "unable to fetch owner contact")
		}
	}

	return Success(c, http.StatusOK, "owner contact", resp)
}
