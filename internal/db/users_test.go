package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"campusshare/internal/models"
)

func TestCreateUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := &models.User{
		Email:        "student@college.edu",
		Name:         "Test Student",
		PasswordHash: "bcrypt-hash",
	}
	if err := db.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("CreateUser() did not set ID")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	first := &models.User{Email: "dup@college.edu", PasswordHash: "hash"}
	if err := db.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	second := &models.User{Email: "dup@college.edu", PasswordHash: "hash"}
	err := db.CreateUser(ctx, second)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("CreateUser() duplicate error = %v, want ErrDuplicateEmail", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := &models.User{Email: "lookup@college.edu", Name: "Lookup", PasswordHash: "hash"}
	if err := db.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	fetched, err := db.GetUserByEmail(ctx, "lookup@college.edu")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if fetched.ID != user.ID {
		t.Errorf("GetUserByEmail() ID = %v, want %v", fetched.ID, user.ID)
	}

	_, err = db.GetUserByEmail(ctx, "missing@college.edu")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserByEmail() missing error = %v, want ErrUserNotFound", err)
	}
}

func TestUpsertSSOUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	sub := "oidc-sub-123"

	user := &models.User{
		Email:        "sso@college.edu",
		Name:         "SSO User",
		PasswordHash: "random-unusable",
		Sub:          &sub,
	}
	if err := db.UpsertSSOUser(ctx, user); err != nil {
		t.Fatalf("UpsertSSOUser() create error = %v", err)
	}
	originalID := user.ID

	// Second login updates in place, keeps the same account.
	user.Name = "Renamed User"
	if err := db.UpsertSSOUser(ctx, user); err != nil {
		t.Fatalf("UpsertSSOUser() update error = %v", err)
	}
	if user.ID != originalID {
		t.Errorf("UpsertSSOUser() changed ID from %v to %v", originalID, user.ID)
	}

	fetched, err := db.GetUserBySub(ctx, sub)
	if err != nil {
		t.Fatalf("GetUserBySub() error = %v", err)
	}
	if fetched.Name != "Renamed User" {
		t.Errorf("GetUserBySub() name = %q, want %q", fetched.Name, "Renamed User")
	}
}
