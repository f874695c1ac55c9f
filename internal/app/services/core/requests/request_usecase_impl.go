package requests

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

type requestUsecase struct {
	RequestRepository contracts.RequestRepository
	DonorRepository   contracts.DonorRepository
	FanoutService     contracts.FanoutService
	PushBroker        contracts.PushBroker
	MatchRadiusMeters int
	Log               *zap.Logger
}

func NewRequestUsecase(
	requestRepository contracts.RequestRepository,
	donorRepository contracts.DonorRepository,
	fanoutService contracts.FanoutService,
	pushBroker contracts.PushBroker,
	matchRadiusMeters int,
	logger *zap.Logger,
) contracts.RequestUsecase {
	return &requestUsecase{
		RequestRepository: requestRepository,
		DonorRepository:   donorRepository,
		FanoutService:     fanoutService,
		PushBroker:        pushBroker,
		MatchRadiusMeters: matchRadiusMeters,
		Log:               logger,
	}
}

func (uc *requestUsecase) CreateRequest(ctx context.Context, session *models.Session, request *requests.CreateBloodRequest) (*responses.BloodRequest, error) {
	if request.QuantityNeeded < 1 {
		return nil, exceptions.ErrInvalidQuantity(nil)
	}

	location := models.NewGeoPoint(*request.Longitude, *request.Latitude)
	if !location.IsValid() {
		return nil, exceptions.ErrInvalidLocation(nil)
	}

	if request.IsDirect {
		if request.RecipientID == "" {
			return nil, exceptions.ErrNoRecipient(nil)
		}
		recipient, err := uc.DonorRepository.FindByID(ctx, request.RecipientID)
		if err != nil {
			return nil, err
		}
		if recipient == nil {
			return nil, exceptions.ErrDonorNotFound(nil)
		}
	}

	now := time.Now().UTC()
	bloodRequest := &models.BloodRequest{
		RequesterID:    session.UserID,
		BloodType:      models.BloodType(request.BloodType),
		QuantityNeeded: request.QuantityNeeded,
		Urgency:        models.RequestUrgency(request.Urgency),
		PatientRef:     request.PatientRef,
		Location:       location,
		IsDirect:       request.IsDirect,
		RecipientID:    request.RecipientID,
		Status:         models.RequestStatusPending,
		AcceptedBy:     []models.AcceptanceRecord{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := uc.RequestRepository.Create(ctx, bloodRequest)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("blood request created",
		zap.String(constvars.LoggingBloodRequestKey, created.ID),
		zap.String(constvars.LoggingFacilityIDKey, session.UserID),
		zap.String(constvars.LoggingBloodTypeKey, string(created.BloodType)),
	)

	// Fanout runs after the durable insert; a notification failure never
	// rolls the request back.
	if created.IsDirect {
		err = uc.FanoutService.NotifyUser(ctx, created.RecipientID, constvars.NotificationTypeRequestMatched, created)
		if err != nil {
			uc.Log.Error("failed to notify direct recipient",
				zap.String(constvars.LoggingBloodRequestKey, created.ID),
				zap.String(constvars.LoggingRecipientKey, created.RecipientID),
				zap.Error(err),
			)
		}
	} else {
		donors, err := uc.DonorRepository.FindEligible(ctx, created.BloodType, created.Location, uc.MatchRadiusMeters)
		if err != nil {
			uc.Log.Error("eligibility match failed",
				zap.String(constvars.LoggingBloodRequestKey, created.ID),
				zap.Error(err),
			)
		} else {
			_ = uc.FanoutService.NotifyDonorsOfRequest(ctx, created, donors)
		}
	}

	return toBloodRequestResponse(created), nil
}

func (uc *requestUsecase) FindByID(ctx context.Context, requestID string) (*responses.BloodRequest, error) {
	request, err := uc.RequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, exceptions.ErrRequestNotFound(nil)
	}
	return toBloodRequestResponse(request), nil
}

func (uc *requestUsecase) FindPendingBroadcast(ctx context.Context, queryParams *requests.QueryParams) ([]responses.BloodRequest, error) {
	queryParams.Normalize()
	results, err := uc.RequestRepository.FindPendingBroadcast(ctx, queryParams.Page, queryParams.PageSize)
	if err != nil {
		return nil, err
	}
	return toBloodRequestResponses(results), nil
}

func (uc *requestUsecase) FindOwn(ctx context.Context, session *models.Session, queryParams *requests.QueryParams) ([]responses.BloodRequest, error) {
	queryParams.Normalize()
	results, err := uc.RequestRepository.FindByRequesterID(ctx, session.UserID, queryParams.Page, queryParams.PageSize)
	if err != nil {
		return nil, err
	}
	return toBloodRequestResponses(results), nil
}

// AcceptRequest resolves the acceptance race. The conditional write
// decides the winner; this method only classifies the outcome for the
// losers.
func (uc *requestUsecase) AcceptRequest(ctx context.Context, requestID, donorID string) (*responses.BloodRequest, error) {
	request, err := uc.RequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, exceptions.ErrRequestNotFound(nil)
	}
	if request.IsDirect && request.RecipientID != donorID {
		return nil, exceptions.ErrNotAuthorized(nil, constvars.ErrDevRequestNotAddressedDonor)
	}

	accepted, err := uc.RequestRepository.AcceptPending(ctx, requestID, donorID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if accepted == nil {
		current, err := uc.RequestRepository.FindByID(ctx, requestID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrRequestNotFound(nil)
		}
		return nil, exceptions.ErrRequestNoLongerActive(nil)
	}

	uc.Log.Info("blood request accepted",
		zap.String(constvars.LoggingBloodRequestKey, accepted.ID),
		zap.String(constvars.LoggingDonorIDKey, donorID),
	)

	err = uc.FanoutService.NotifyUser(ctx, accepted.RequesterID, constvars.NotificationTypeRequestAccepted, accepted)
	if err != nil {
		uc.Log.Error("failed to notify requester of acceptance",
			zap.String(constvars.LoggingBloodRequestKey, accepted.ID),
			zap.Error(err),
		)
	}

	// Connected feeds drop the request on the next poll; the signal
	// itself carries nothing.
	if !accepted.IsDirect {
		_ = uc.PushBroker.Broadcast(models.PushMessage{Type: constvars.PushTypeRefresh})
	}

	return toBloodRequestResponse(accepted), nil
}

func (uc *requestUsecase) RejectRequest(ctx context.Context, requestID, donorID string) (*responses.BloodRequest, error) {
	request, err := uc.RequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, exceptions.ErrRequestNotFound(nil)
	}
	if !request.IsDirect {
		return nil, exceptions.ErrNoRecipient(nil)
	}
	if request.RecipientID != donorID {
		return nil, exceptions.ErrNotAuthorized(nil, constvars.ErrDevRequestNotAddressedDonor)
	}

	rejected, err := uc.RequestRepository.TransitionStatus(
		ctx,
		requestID,
		[]models.RequestStatus{models.RequestStatusPending},
		models.RequestStatusRejected,
	)
	if err != nil {
		return nil, err
	}
	if rejected == nil {
		return nil, uc.classifyTransitionMiss(ctx, requestID, models.RequestStatusRejected)
	}

	uc.Log.Info("blood request rejected",
		zap.String(constvars.LoggingBloodRequestKey, rejected.ID),
		zap.String(constvars.LoggingDonorIDKey, donorID),
	)

	err = uc.FanoutService.NotifyUser(ctx, rejected.RequesterID, constvars.NotificationTypeRequestRejected, rejected)
	if err != nil {
		uc.Log.Error("failed to notify requester of rejection",
			zap.String(constvars.LoggingBloodRequestKey, rejected.ID),
			zap.Error(err),
		)
	}

	return toBloodRequestResponse(rejected), nil
}

func (uc *requestUsecase) CancelRequest(ctx context.Context, requestID, facilityID string) (*responses.BloodRequest, error) {
	request, err := uc.RequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, exceptions.ErrRequestNotFound(nil)
	}
	if request.RequesterID != facilityID {
		return nil, exceptions.ErrNotAuthorized(nil, constvars.ErrDevRequestNotOwner)
	}

	cancelled, err := uc.RequestRepository.TransitionStatus(
		ctx,
		requestID,
		[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusAccepted},
		models.RequestStatusCancelled,
	)
	if err != nil {
		return nil, err
	}
	if cancelled == nil {
		return nil, uc.classifyTransitionMiss(ctx, requestID, models.RequestStatusCancelled)
	}

	uc.Log.Info("blood request cancelled",
		zap.String(constvars.LoggingBloodRequestKey, cancelled.ID),
		zap.String(constvars.LoggingFacilityIDKey, facilityID),
	)

	// A committed donor learns first; otherwise the addressed recipient
	// does. Broadcast feeds just refresh.
	if record := cancelled.ActiveAcceptance(); record != nil {
		err = uc.FanoutService.NotifyUser(ctx, record.DonorID, constvars.NotificationTypeRequestCancelled, cancelled)
	} else if cancelled.IsDirect {
		err = uc.FanoutService.NotifyUser(ctx, cancelled.RecipientID, constvars.NotificationTypeRequestCancelled, cancelled)
	}
	if err != nil {
		uc.Log.Error("failed to notify of cancellation",
			zap.String(constvars.LoggingBloodRequestKey, cancelled.ID),
			zap.Error(err),
		)
	}
	if !cancelled.IsDirect {
		_ = uc.PushBroker.Broadcast(models.PushMessage{Type: constvars.PushTypeRefresh})
	}

	return toBloodRequestResponse(cancelled), nil
}

func (uc *requestUsecase) classifyTransitionMiss(ctx context.Context, requestID string, attempted models.RequestStatus) error {
	current, err := uc.RequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if current == nil {
		return exceptions.ErrRequestNotFound(nil)
	}
	return exceptions.ErrInvalidTransition(string(current.Status), string(attempted))
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

func toBloodRequestResponses(requests []models.BloodRequest) []responses.BloodRequest {
	results := make([]responses.BloodRequest, 0, len(requests))
	for i := range requests {
		results = append(results, *toBloodRequestResponse(&requests[i]))
	}
	return results
}
