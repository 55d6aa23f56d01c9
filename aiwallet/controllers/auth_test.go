package controllers

import (
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/sources/psql/psqltest"
	"aiwallet/aiwallet/utils/apperr"
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestLoginCreatesUserOnce(t *testing.T) {
	users := dao.NewUserDAO(psqltest.NewDatabase(t).DB)
	ctrl := NewAuthController(users, testSecret)
	ctx := context.Background()

	first, err := ctrl.Login(ctx, "alice")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	second, err := ctrl.Login(ctx, " alice ")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if first.UserID == "" || first.UserID != second.UserID {
		t.Errorf("expected the same user on repeat login, got %q and %q", first.UserID, second.UserID)
	}

	user, err := users.GetUserByUsername(ctx, "alice")
	if err != nil || user == nil {
		t.Fatalf("expected user to exist: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("unexpected email %q", user.Email)
	}

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(first.Token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != first.UserID {
		t.Errorf("expected subject %q, got %q", first.UserID, claims.Subject)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Error("expected iat and exp claims")
	}
}

func TestLoginRequiresUsername(t *testing.T) {
	ctrl := NewAuthController(dao.NewUserDAO(psqltest.NewDatabase(t).DB), testSecret)
	_, err := ctrl.Login(context.Background(), "   ")
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) || verr.Field != "username" {
		t.Fatalf("expected username ValidationError, got %v", err)
	}
}
