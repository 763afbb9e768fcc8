package service

import (
	"context"
	"errors"
	"testing"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/repository"
)

func TestUserService_CreateUser(t *testing.T) {
	repo := newStubUsersRepo()
	svc := NewUserService(repo)

	resp, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "admin@example.com",
		Password: "correct-horse",
		Role:     "admin",
		Tier:     "premium",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Role != "admin" || resp.Tier != "premium" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserService_CreateUser_Defaults(t *testing.T) {
	repo := newStubUsersRepo()
	svc := NewUserService(repo)

	resp, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "renter@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Role != "user" || resp.Tier != dto.TierFree {
		t.Fatalf("expected defaults, got %+v", resp)
	}
}

func TestUserService_CreateUser_InvalidTier(t *testing.T) {
	svc := NewUserService(newStubUsersRepo())

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "renter@example.com",
		Password: "correct-horse",
		Tier:     "platinum",
	})
	if err == nil {
		t.Fatalf("expected error for unknown tier")
	}
}

func TestUserService_UpdateUser_TierUpgrade(t *testing.T) {
	repo := newStubUsersRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "renter@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	premium := "premium"
	updated, err := svc.UpdateUser(context.Background(), created.ID, dto.UpdateUserRequest{Tier: &premium})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Tier != "premium" {
		t.Fatalf("expected premium tier, got %s", updated.Tier)
	}

	bogus := "platinum"
	if _, err := svc.UpdateUser(context.Background(), created.ID, dto.UpdateUserRequest{Tier: &bogus}); err == nil {
		t.Fatalf("expected error for unknown tier")
	}
}

func TestUserService_UpdateUser_InvalidID(t *testing.T) {
	svc := NewUserService(newStubUsersRepo())
	if _, err := svc.UpdateUser(context.Background(), "not-a-uuid", dto.UpdateUserRequest{}); err == nil {
		t.Fatalf("expected error for invalid id")
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newStubUsersRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "renter@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), created.ID); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
