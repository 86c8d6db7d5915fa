package listing

import (
	"context"
	"fmt"

	"spacehub/database/repository/listingrepo"
	"spacehub/models"

	"go.uber.org/zap"
)

// ListingService exposes the moderation surface over partner listings.
type ListingService interface {
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	ListListings(ctx context.Context, status string) ([]models.Listing, error)
	Moderate(ctx context.Context, id, decision, notes, adminID string) (*models.Listing, error)
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Repo   listingrepo.ListingRepository
	Logger *zap.Logger
}

var moderationDecisions = map[string]bool{
	models.ListingStatusApproved:  true,
	models.ListingStatusRejected:  true,
	models.ListingStatusSuspended: true,
}

// GetListing returns a listing by id.
func (s *DefaultListingService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListListings returns listings, optionally filtered by moderation status.
func (s *DefaultListingService) ListListings(ctx context.Context, status string) ([]models.Listing, error) {
	return s.Repo.List(ctx, status)
}

// Moderate applies a moderation decision to a listing.
func (s *DefaultListingService) Moderate(ctx context.Context, id, decision, notes, adminID string) (*models.Listing, error) {
	if !moderationDecisions[decision] {
		return nil, fmt.Errorf("invalid moderation decision %q", decision)
	}

	updated, err := s.Repo.Moderate(ctx, id, decision, notes, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to moderate listing %s: %w", id, err)
	}

	s.Logger.Info("Listing moderated",
		zap.String("listingId", id),
		zap.String("decision", decision),
		zap.String("admin", adminID))
	return updated, nil
}

var _ ListingService = (*DefaultListingService)(nil)
