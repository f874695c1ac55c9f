package contracts

import (
	"context"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/dto/responses"
)

type DonorRepository interface {
	// FindEligible returns every donor matching the blood type, flagged
	// available, within radiusMeters of the point. No ordering guarantee.
	FindEligible(ctx context.Context, bloodType models.BloodType, point models.GeoPoint, radiusMeters int) ([]models.Donor, error)
	FindByID(ctx context.Context, donorID string) (*models.Donor, error)
	UpdateAvailability(ctx context.Context, donorID string, isAvailable bool) error
	UpdateProfilePictureURL(ctx context.Context, donorID, pictureURL string) error
	EnsureIndexes(ctx context.Context) error
}

type DonorUsecase interface {
	UpdateAvailability(ctx context.Context, donorID string, request *requests.UpdateAvailability) error
	UploadProfilePicture(ctx context.Context, donorID string, request *requests.UploadProfilePicture) (*responses.Donor, error)
}
