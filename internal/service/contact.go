package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/quota"
	"github.com/urbanest/rental-search/api/internal/repository"
)

// ErrContactQuotaExceeded indicates the free-tier contact allowance is spent.
var ErrContactQuotaExceeded = errors.New("contact quota exceeded")

// ContactService reveals owner phone numbers subject to tier quotas.
// Free accounts get a fixed number of reveals per month; premium accounts
// are unlimited but still counted for analytics.
type ContactService struct {
	properties repository.PropertiesRepository
	counters   *quota.Counters
	freeLimit  int
}

// NewContactService wires the contact flow.
func NewContactService(properties repository.PropertiesRepository, counters *quota.Counters, freeLimit int) *ContactService {
	if freeLimit <= 0 {
		freeLimit = 3
	}
	return &ContactService{properties: properties, counters: counters, freeLimit: freeLimit}
}

// ContactOwner returns the owner's phone for a property, enforcing quota.
func (s *ContactService) ContactOwner(ctx context.Context, userID, tier string, req dto.ContactOwnerRequest) (*dto.ContactOwnerResponse, error) {
	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, errors.New("invalid property id")
	}

	if tier != dto.TierPremium {
		used, err := s.counters.Used(ctx, userID)
		if err != nil {
			return nil, err
		}
		if used >= s.freeLimit {
			return nil, ErrContactQuotaExceeded
		}
	}

	phone, err := s.properties.OwnerPhone(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	normalized := normalizePhone(phone, defaultPhoneRegion)
	if normalized == "" {
		return nil, fmt.Errorf("owner phone for property %s is not dialable", propertyID)
	}

	used, err := s.counters.Increment(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ContactOwnerResponse{Phone: normalized, ContactsUsed: used}
	if tier != dto.TierPremium {
		resp.ContactsLimit = s.freeLimit
	}
	return resp, nil
}
