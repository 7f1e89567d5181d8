// agriassist/controllers/auth.go
package controllers

import (
	"agriassist/agriassist/config"
	"agriassist/agriassist/middlewares"
	"agriassist/agriassist/utils/types"
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAuthNotConfigured  = errors.New("admin login is not configured")
)

type AuthController struct {
	cfg config.Config
	now func() time.Time
}

func NewAuthController(cfg config.Config) *AuthController {
	return &AuthController{cfg: cfg, now: time.Now}
}

// Login checks the single admin credential and issues a signed token.
func (c *AuthController) Login(ctx context.Context, req types.LoginRequest) (*types.LoginResponse, error) {
	if c.cfg.Auth.AdminPassword == "" || c.cfg.Auth.JWTSecret == "" {
		return nil, ErrAuthNotConfigured
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(c.cfg.Auth.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(c.cfg.Auth.AdminPassword)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	ttl := c.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	exp := c.now().Add(ttl)
	claims := jwt.MapClaims{
		"sub":  req.Username,
		"role": middlewares.RoleAdmin,
		"iat":  c.now().Unix(),
		"exp":  exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.cfg.Auth.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{Token: signed, ExpiresAt: exp.Unix()}, nil
}
