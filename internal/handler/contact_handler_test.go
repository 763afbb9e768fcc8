package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/urbanest/rental-search/api/internal/middleware"
	"github.com/urbanest/rental-search/api/internal/quota"
	"github.com/urbanest/rental-search/api/internal/repository"
	"github.com/urbanest/rental-search/api/internal/service"
)

type stubPropertiesRepo struct {
	phone string
	err   error
}

func (s *stubPropertiesRepo) OwnerPhone(ctx context.Context, propertyID uuid.UUID) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.phone, nil
}

func newContactHandler(t *testing.T, props *stubPropertiesRepo, freeLimit int) *ContactHandler {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewContactHandler(service.NewContactService(props, quota.NewCounters(client), freeLimit))
}

func newContactContext(t *testing.T, body, userID, tier string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/contact-owner", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(middleware.ContextKeyUserID, userID)
	}
	if tier != "" {
		c.Set(middleware.ContextKeyUserTier, tier)
	}
	return c, rec
}

func TestContactHandler_ContactOwner(t *testing.T) {
	h := newContactHandler(t, &stubPropertiesRepo{phone: "9876543210"}, 3)

	body := fmt.Sprintf(`{"property_id":%q}`, uuid.NewString())
	c, rec := newContactContext(t, body, "user-1", "free")
	if err := h.ContactOwner(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestContactHandler_QuotaExceeded(t *testing.T) {
	h := newContactHandler(t, &stubPropertiesRepo{phone: "9876543210"}, 1)
	body := fmt.Sprintf(`{"property_id":%q}`, uuid.NewString())

	c, rec := newContactContext(t, body, "user-1", "free")
	if err := h.ContactOwner(c); err != nil {
		t.Fatalf("first contact failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first contact to pass, got %d", rec.Code)
	}

	c2, rec2 := newContactContext(t, body, "user-1", "free")
	if err := h.ContactOwner(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec2.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec2.Code)
	}
}

func TestContactHandler_PropertyNotFound(t *testing.T) {
	h := newContactHandler(t, &stubPropertiesRepo{err: repository.ErrPropertyNotFound}, 3)

	body := fmt.Sprintf(`{"property_id":%q}`, uuid.NewString())
	c, rec := newContactContext(t, body, "user-1", "free")
	if err := h.ContactOwner(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestContactHandler_MissingPropertyID(t *testing.T) {
	h := newContactHandler(t, &stubPropertiesRepo{phone: "9876543210"}, 3)

	c, rec := newContactContext(t, `{}`, "user-1", "free")
	if err := h.ContactOwner(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_MissingAuth(t *testing.T) {
	h := newContactHandler(t, &stubPropertiesRepo{phone: "9876543210"}, 3)

	body := fmt.Sprintf(`{"property_id":%q}`, uuid.NewString())
	c, rec := newContactContext(t, body, "", "")
	if err := h.ContactOwner(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
