package controllers

import (
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/utils/apperr"
	"aiwallet/aiwallet/utils/types"
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long a login token stays valid.
const TokenTTL = 24 * time.Hour

type AuthController struct {
	userDAO   *dao.UserDAO
	jwtSecret []byte
}

func NewAuthController(userDAO *dao.UserDAO, jwtSecret string) *AuthController {
	return &AuthController{
		userDAO:   userDAO,
		jwtSecret: []byte(jwtSecret),
	}
}

// Login signs a token for username, creating the user on first login.
func (c *AuthController) Login(ctx context.Context, username string) (*types.LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.Invalid("username", "username is required")
	}
	user, err := c.userDAO.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Auto-create with dummy email
		email := username + "@example.com"
		user, err = c.userDAO.CreateUser(ctx, username, email)
		if err != nil {
			return nil, err
		}
	}
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{Token: token, UserID: user.ID}, nil
}
