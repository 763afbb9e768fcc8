package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/repository"
)

// UserService encapsulates administrative operations for accounts.
type UserService struct {
	repo repository.UsersRepository
}

// NewUserService builds a new UserService instance.
func NewUserService(repo repository.UsersRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all accounts as DTOs.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp := dto.UserResponse{
			ID:    u.ID.String(),
			Email: u.Email,
			Role:  u.Role,
			Tier:  u.Tier,
		}
		if u.Phone != nil {
			resp.Phone = *u.Phone
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// CreateUser creates an account with the supplied role and tier.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)
	req.Tier = strings.TrimSpace(req.Tier)

	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}
	if req.Role == "" {
		req.Role = "user"
	}
	if req.Tier == "" {
		req.Tier = dto.TierFree
	}
	if req.Tier != dto.TierFree && req.Tier != dto.TierPremium {
		return nil, errors.New("tier must be free or premium")
	}

	phone := ""
	if strings.TrimSpace(req.Phone) != "" {
		phone = normalizePhone(req.Phone, defaultPhoneRegion)
		if phone == "" {
			return nil, errors.New("invalid phone number")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, req.Email, string(hashed), phone, req.Role, req.Tier)
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return nil, repository.ErrEmailDuplicate
		}
		return nil, err
	}

	resp := &dto.UserResponse{ID: user.ID.String(), Email: user.Email, Role: user.Role, Tier: user.Tier}
	if user.Phone != nil {
		resp.Phone = *user.Phone
	}
	return resp, nil
}

// UpdateUser mutates selected account fields.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid user id")
	}

	var patch repository.UserPatch

	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		if trimmed == "" {
			return nil, errors.New("email cannot be empty")
		}
		patch.Email = &trimmed
	}
	if req.Role != nil {
		trimmed := strings.TrimSpace(*req.Role)
		if trimmed == "" {
			return nil, errors.New("role cannot be empty")
		}
		patch.Role = &trimmed
	}
	if req.Tier != nil {
		trimmed := strings.TrimSpace(*req.Tier)
		if trimmed != dto.TierFree && trimmed != dto.TierPremium {
			return nil, errors.New("tier must be free or premium")
		}
		patch.Tier = &trimmed
	}
	if req.Phone != nil {
		normalized := normalizePhone(*req.Phone, defaultPhoneRegion)
		if normalized == "" {
			return nil, errors.New("invalid phone number")
		}
		patch.Phone = &normalized
	}
	if req.Password != nil {
		if strings.TrimSpace(*req.Password) == "" {
			return nil, errors.New("password cannot be empty")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		pwd := string(hashed)
		patch.PasswordHash = &pwd
	}

	user, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, repository.ErrUserNotFound
		}
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return nil, repository.ErrEmailDuplicate
		}
		return nil, err
	}

	resp := &dto.UserResponse{ID: user.ID.String(), Email: user.Email, Role: user.Role, Tier: user.Tier}
	if user.Phone != nil {
		resp.Phone = *user.Phone
	}
	return resp, nil
}

// DeleteUser removes an account by id.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid user id")
	}
	return s.repo.Delete(ctx, userID)
}
