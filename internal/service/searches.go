package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/entity"
	"github.com/urbanest/rental-search/api/internal/repository"
)

// SavedSearchService lets renters name and re-run filter sets.
type SavedSearchService struct {
	repo repository.SavedSearchesRepository
}

// NewSavedSearchService builds a saved-search service.
func NewSavedSearchService(repo repository.SavedSearchesRepository) *SavedSearchService {
	return &SavedSearchService{repo: repo}
}

// Save stores a named filter set for the renter.
func (s *SavedSearchService) Save(ctx context.Context, userID string, req dto.SaveSearchRequest) (*dto.SavedSearchResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("search name is required")
	}

	search, err := s.repo.Create(ctx, uid, name, req.Filters)
	if err != nil {
		return nil, err
	}
	return savedSearchToResponse(search), nil
}

// List returns the renter's saved searches.
func (s *SavedSearchService) List(ctx context.Context, userID string) ([]dto.SavedSearchResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}

	searches, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SavedSearchResponse, 0, len(searches))
	for i := range searches {
		responses = append(responses, *savedSearchToResponse(&searches[i]))
	}
	return responses, nil
}

// Get fetches one saved search scoped to its owner.
func (s *SavedSearchService) Get(ctx context.Context, userID, id string) (*dto.SavedSearchResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}
	sid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid search id")
	}

	search, err := s.repo.FindByID(ctx, uid, sid)
	if err != nil {
		return nil, err
	}
	return savedSearchToResponse(search), nil
}

// Delete removes a saved search scoped to its owner.
func (s *SavedSearchService) Delete(ctx context.Context, userID, id string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return errors.New("invalid user id")
	}
	sid, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid search id")
	}
	return s.repo.Delete(ctx, uid, sid)
}

func savedSearchToResponse(search *entity.SavedSearch) *dto.SavedSearchResponse {
	return &dto.SavedSearchResponse{
		ID:      search.ID.String(),
		Name:    search.Name,
		Filters: search.Filters,
	}
}
