package services

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
	"github.com/pagesmith/pagesmith-go/pkg/config"
)

// ErrInvalidCredentials is returned for any failed login.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// AuthService handles the admin login flow and JWT issue/verify.
type AuthService struct {
	logger *logging.ChanneledLogger
}

// NewAuthService creates an auth service.
func NewAuthService(logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{logger: logger}
}

// Login checks the admin password and issues a bearer token. The configured
// password may be a bcrypt hash or, for development setups, plaintext.
func (s *AuthService) Login(password string) (string, error) {
	configured := config.AdminPassword
	if configured == "" {
		s.logger.Auth().Error("admin password not configured")
		return "", ErrInvalidCredentials
	}

	if !passwordMatches(configured, password) {
		s.logger.Auth().Warn("failed admin login")
		return "", ErrInvalidCredentials
	}

	token, err := security.GenerateAdminToken(config.JWTSecret, config.TokenLifetime)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	s.logger.Auth().Info("admin login")
	return token, nil
}

// ValidateToken verifies a bearer token and confirms the admin role claim.
func (s *AuthService) ValidateToken(token string) error {
	claims, err := security.ValidateJWT(token, config.JWTSecret)
	if err != nil {
		return err
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return fmt.Errorf("token lacks admin role")
	}
	return nil
}

func passwordMatches(configured, candidate string) bool {
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(candidate)) == 1
}
