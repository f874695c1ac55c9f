package donors

import (
	"context"
	"lifelink-service/internal/app/config"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/dto/responses"
	"lifelink-service/internal/pkg/exceptions"
	"lifelink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var allowedImageFormats = []string{".jpg", ".jpeg", ".png"}

type donorUsecase struct {
	DonorRepository contracts.DonorRepository
	MinioStorage    contracts.Storage
	DriverConfig    *config.DriverConfig
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewDonorUsecase(
	donorRepository contracts.DonorRepository,
	minioStorage contracts.Storage,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DonorUsecase {
	return &donorUsecase{
		DonorRepository: donorRepository,
		MinioStorage:    minioStorage,
		DriverConfig:    driverConfig,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// UpdateAvailability flips the matcher visibility flag. An unavailable
// donor keeps any acceptance already made; only future matching skips
// them.
func (uc *donorUsecase) UpdateAvailability(ctx context.Context, donorID string, request *requests.UpdateAvailability) error {
	err := uc.DonorRepository.UpdateAvailability(ctx, donorID, *request.IsAvailable)
	if err != nil {
		return err
	}

	uc.Log.Info("donor availability updated",
		zap.String(constvars.LoggingDonorIDKey, donorID),
		zap.Bool("is_available", *request.IsAvailable),
	)
	return nil
}

func (uc *donorUsecase) UploadProfilePicture(ctx context.Context, donorID string, request *requests.UploadProfilePicture) (*responses.Donor, error) {
	donor, err := uc.DonorRepository.FindByID(ctx, donorID)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, exceptions.ErrDonorNotFound(nil)
	}

	err = utils.ValidateImageFormat(request.ProfilePictureExtension, allowedImageFormats)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	err = utils.ValidateImageSize(request.ProfilePictureData, uc.InternalConfig.App.ProfilePictureMaxSizeMB)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	fileName := utils.GenerateFileName(constvars.ImageProfilePicturePrefix, donorID, request.ProfilePictureExtension)
	pictureURL, err := uc.MinioStorage.UploadBase64Image(
		ctx,
		request.ProfilePictureData,
		uc.DriverConfig.Minio.BucketName,
		fileName,
		request.ProfilePictureExtension,
	)
	if err != nil {
		return nil, err
	}

	err = uc.DonorRepository.UpdateProfilePictureURL(ctx, donorID, pictureURL)
	if err != nil {
		return nil, err
	}

	donor.ProfilePictureURL = pictureURL
	return toDonorResponse(donor), nil
}

func toDonorResponse(donor *models.Donor) *responses.Donor {
	return &responses.Donor{
		ID:                donor.ID,
		FullName:          donor.FullName,
		BloodType:         string(donor.BloodType),
		IsAvailable:       donor.IsAvailable,
		ProfilePictureURL: donor.ProfilePictureURL,
	}
}
