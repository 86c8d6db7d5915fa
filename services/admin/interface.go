package admin

import (
	"context"

	"spacehub/database/repository/adminrepo"
	"spacehub/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type AdminService interface {
	Authenticate(ctx context.Context, email, password string) (*models.Admin, string, error)
	GetLegalSections() []models.LegalSection
	GetLegalSectionsFor(role string) []models.LegalSection
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo      adminrepo.AdminRepository
	AuthCache *redis.Client
	Cache     *redis.Client
	Logger    *zap.Logger
}

var _ AdminService = (*DefaultAdminService)(nil)
