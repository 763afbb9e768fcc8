package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/quota"
	"github.com/urbanest/rental-search/api/internal/repository"
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

func newTestContactService(t *testing.T, props *stubPropertiesRepo, freeLimit int) *ContactService {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewContactService(props, quota.NewCounters(client), freeLimit)
}

func TestContactService_FreeTierQuota(t *testing.T) {
	svc := newTestContactService(t, &stubPropertiesRepo{phone: "9876543210"}, 2)
	req := dto.ContactOwnerRequest{PropertyID: uuid.NewString()}

	for i := 1; i <= 2; i++ {
		resp, err := svc.ContactOwner(context.Background(), "user-1", dto.TierFree, req)
		if err != nil {
			t.Fatalf("contact %d failed: %v", i, err)
		}
		if resp.Phone != "+919876543210" {
			t.Fatalf("expected E.164 phone, got %s", resp.Phone)
		}
		if resp.ContactsUsed != i || resp.ContactsLimit != 2 {
			t.Fatalf("unexpected quota bookkeeping: %+v", resp)
		}
	}

	if _, err := svc.ContactOwner(context.Background(), "user-1", dto.TierFree, req); !errors.Is(err, ErrContactQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}

	// Another renter still has allowance.
	if _, err := svc.ContactOwner(context.Background(), "user-2", dto.TierFree, req); err != nil {
		t.Fatalf("other renter blocked: %v", err)
	}
}

func TestContactService_PremiumUnlimited(t *testing.T) {
	svc := newTestContactService(t, &stubPropertiesRepo{phone: "+919812345678"}, 1)
	req := dto.ContactOwnerRequest{PropertyID: uuid.NewString()}

	for i := 0; i < 5; i++ {
		resp, err := svc.ContactOwner(context.Background(), "user-1", dto.TierPremium, req)
		if err != nil {
			t.Fatalf("premium contact failed: %v", err)
		}
		if resp.ContactsLimit != 0 {
			t.Fatalf("premium response should omit the limit, got %+v", resp)
		}
	}
}

func TestContactService_InvalidPropertyID(t *testing.T) {
	svc := newTestContactService(t, &stubPropertiesRepo{phone: "9876543210"}, 3)
	if _, err := svc.ContactOwner(context.Background(), "user-1", dto.TierFree, dto.ContactOwnerRequest{PropertyID: "nope"}); err == nil {
		t.Fatalf("expected error for invalid property id")
	}
}

func TestContactService_PropertyNotFound(t *testing.T) {
	svc := newTestContactService(t, &stubPropertiesRepo{err: repository.ErrPropertyNotFound}, 3)
	_, err := svc.ContactOwner(context.Background(), "user-1", dto.TierFree, dto.ContactOwnerRequest{PropertyID: uuid.NewString()})
	if !errors.Is(err, repository.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestContactService_UndialableOwnerPhone(t *testing.T) {
	svc := newTestContactService(t, &stubPropertiesRepo{phone: "12"}, 3)
	if _, err := svc.ContactOwner(context.Background(), "user-1", dto.TierFree, dto.ContactOwnerRequest{PropertyID: uuid.NewString()}); err == nil {
		t.Fatalf("expected error for undialable phone")
	}
}
