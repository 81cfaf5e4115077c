package service

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/atulmcoder/sbsauto2Server/internal/config"
	"github.com/atulmcoder/sbsauto2Server/internal/errs"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
)

// AuthService issues and verifies bearer tokens for the single admin
// identity. Verification is stateless: everything lives in the token's
// signature and embedded expiry.
type AuthService interface {
	Login(username, password string) (string, error)
	VerifyAuthHeader(header string) (*models.Principal, error)
	Authorize(principal *models.Principal) bool
}

type authService struct {
	cfg *config.Config

	// bcrypt hash of the configured admin password, computed once at
	// construction so login compares in constant time.
	passwordHash []byte
}

func NewAuthService(cfg *config.Config) AuthService {
	s := &authService{cfg: cfg}

	if cfg.AdminPass != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
		if err == nil {
			s.passwordHash = hash
		}
	}

	return s
}

func (s *authService) Login(username, password string) (string, error) {
	// Missing credentials or signing secret is a deployment error; logins
	// fail closed rather than succeed open.
	if s.cfg.AdminUser == "" || s.passwordHash == nil || s.cfg.JWTSecret == "" {
		return "", fmt.Errorf("admin credentials are not configured: %w", errs.ErrInvalidCredentials)
	}

	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUser)) != 1 {
		return "", errs.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", errs.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"isAdmin":  true,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.TokenDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

// VerifyAuthHeader accepts exactly the form "Bearer <token>".
func (s *authService) VerifyAuthHeader(header string) (*models.Principal, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errs.ErrMalformedAuthHeader
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errs.ErrInvalidOrExpiredToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errs.ErrInvalidOrExpiredToken
	}

	username, _ := claims["username"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)

	return &models.Principal{
		Username: username,
		IsAdmin:  isAdmin,
	}, nil
}

// Authorize grants admin capability. Tokens are only ever issued with both
// fields consistent; the double check mirrors the admin-username fallback.
func (s *authService) Authorize(principal *models.Principal) bool {
	if principal == nil {
		return false
	}
	return principal.IsAdmin || principal.Username == s.cfg.AdminUsername
}
