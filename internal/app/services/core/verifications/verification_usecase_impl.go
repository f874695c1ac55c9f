package verifications

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/dto/responses"
	"lifelink-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type verificationUsecase struct {
	RequestRepository contracts.RequestRepository
	FanoutService     contracts.FanoutService
	EventPublisher    contracts.EventPublisher
	Log               *zap.Logger
}

func NewVerificationUsecase(
	requestRepository contracts.RequestRepository,
	fanoutService contracts.FanoutService,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.VerificationUsecase {
	return &verificationUsecase{
		RequestRepository: requestRepository,
		FanoutService:     fanoutService,
		EventPublisher:    eventPublisher,
		Log:               logger,
	}
}

// Verify performs the terminal close. The acceptance record and the
// request status flip in one conditional write; only the owning facility
// can match it. With no explicit request ID the donor's latest accepted
// request at this facility is the target.
func (uc *verificationUsecase) Verify(ctx context.Context, facilityID string, request *requests.VerifyDonation) (*responses.BloodRequest, error) {
	requestID := request.RequestID
	if requestID == "" {
		latest, err := uc.RequestRepository.FindLatestAcceptedByDonor(ctx, facilityID, request.DonorID)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			return nil, exceptions.ErrNoActiveAcceptance(nil)
		}
		requestID = latest.ID
	}

	completedAt := time.Now().UTC()
	fulfilled, err := uc.RequestRepository.CompleteAcceptance(ctx, requestID, facilityID, request.DonorID, completedAt)
	if err != nil {
		return nil, err
	}
	if fulfilled == nil {
		current, err := uc.RequestRepository.FindByID(ctx, requestID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrRequestNotFound(nil)
		}
		return nil, exceptions.ErrNoActiveAcceptance(nil)
	}

	uc.Log.Info("donation verified",
		zap.String(constvars.LoggingBloodRequestKey, fulfilled.ID),
		zap.String(constvars.LoggingDonorIDKey, request.DonorID),
		zap.String(constvars.LoggingFacilityIDKey, facilityID),
	)

	err = uc.FanoutService.NotifyUser(ctx, request.DonorID, constvars.NotificationTypeRequestFulfilled, fulfilled)
	if err != nil {
		uc.Log.Error("failed to notify donor of fulfilment",
			zap.String(constvars.LoggingBloodRequestKey, fulfilled.ID),
			zap.Error(err),
		)
	}

	// Post-commit side effects. The transition above is already durable;
	// a publish failure is logged and the consumers reconcile later.
	err = uc.EventPublisher.PublishInventoryIncrement(ctx, &requests.InventoryIncrementEvent{
		FacilityID: facilityID,
		BloodType:  string(fulfilled.BloodType),
		Units:      fulfilled.QuantityNeeded,
		RequestID:  fulfilled.ID,
	})
	if err != nil {
		uc.Log.Error("failed to publish inventory increment",
			zap.String(constvars.LoggingBloodRequestKey, fulfilled.ID),
			zap.Error(err),
		)
	}

	err = uc.EventPublisher.PublishCertificateEmail(ctx, &requests.CertificateEmailEvent{
		DonorID:    request.DonorID,
		FacilityID: facilityID,
		RequestID:  fulfilled.ID,
	})
	if err != nil {
		uc.Log.Error("failed to publish certificate email",
			zap.String(constvars.LoggingBloodRequestKey, fulfilled.ID),
			zap.Error(err),
		)
	}

	return toBloodRequestResponse(fulfilled), nil
}

func toBloodRequestResponse(request *models.BloodRequest) *responses.BloodRequest {
	var longitude, latitude float64
	if len(request.Location.Coordinates) == 2 {
		longitude = request.Location.Coordinates[0]
		latitude = request.Location.Coordinates[1]
	}

	acceptedBy := make([]responses.AcceptanceRecord, 0, len(request.AcceptedBy))
	for _, record := range request.AcceptedBy {
		acceptedBy = append(acceptedBy, responses.AcceptanceRecord{
			DonorID:     record.DonorID,
			AcceptedAt:  record.AcceptedAt,
			SubStatus:   string(record.SubStatus),
			CompletedAt: record.CompletedAt,
		})
	}

	return &responses.BloodRequest{
		ID:             request.ID,
		RequesterID:    request.RequesterID,
		BloodType:      string(request.BloodType),
		QuantityNeeded: request.QuantityNeeded,
		Urgency:        string(request.Urgency),
		PatientRef:     request.PatientRef,
		Longitude:      longitude,
		Latitude:       latitude,
		IsDirect:       request.IsDirect,
		RecipientID:    request.RecipientID,
		Status:         string(request.Status),
		AcceptedBy:     acceptedBy,
		CreatedAt:      request.CreatedAt,
		UpdatedAt:      request.UpdatedAt,
	}
}
