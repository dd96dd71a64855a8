package repositories

import (
	"context"

	"github.com/xosoviet/xoso-backend/internal/models"
)

// ResultRepository defines the interface for the result archive
type ResultRepository interface {
	// Upsert stores a region's results for its draw date, replacing any
	// earlier document for the same (region, drawDate) pair
	Upsert(ctx context.Context, region models.Region, result *models.RegionResult, source models.ResultSource) error
	FindByDateAndRegion(ctx context.Context, date string, region models.Region) (*models.ArchivedResult, error)
	// FindByRegionAndDateRange returns archived results for a region with
	// from <= drawDate <= to, newest first. Empty bounds are open.
	FindByRegionAndDateRange(ctx context.Context, region models.Region, from, to string) ([]*models.ArchivedResult, error)
	Count(ctx context.Context) (int64, error)
}

// AdminUserRepository defines the interface for admin account storage
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}
