package admin

import (
	"context"
	"errors"
	"fmt"

	"spacehub/models"
	"spacehub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure; the caller never
// learns whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticate verifies an operator's credentials and issues a session token.
// The token hash is cached so middleware can validate without a DB roundtrip.
func (s *DefaultAdminService) Authenticate(ctx context.Context, email, password string) (*models.Admin, string, error) {
	rec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		s.Logger.Warn("Admin login failed: unknown email", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		s.Logger.Warn("Admin login failed: bad password", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, utils.AdminTokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate admin token: %w", err)
	}

	key := utils.AuthCachePrefix + utils.HashToken(token)
	if err := s.AuthCache.Set(ctx, key, rec.ID, utils.AuthCacheTTL).Err(); err != nil {
		s.Logger.Warn("Failed to cache admin session", zap.Error(err))
	}

	return rec, token, nil
}
