package verifications

import (
	"context"
	"errors"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRequestRepository struct {
	requests map[string]*models.BloodRequest
}

func (r *stubRequestRepository) Create(ctx context.Context, request *models.BloodRequest) (*models.BloodRequest, error) {
	r.requests[request.ID] = request
	return request, nil
}

func (r *stubRequestRepository) FindByID(ctx context.Context, requestID string) (*models.BloodRequest, error) {
	request, ok := r.requests[requestID]
	if !ok {
		return nil, nil
	}
	return request, nil
}

func (r *stubRequestRepository) FindPendingBroadcast(ctx context.Context, page, pageSize int) ([]models.BloodRequest, error) {
	return nil, nil
}

func (r *stubRequestRepository) FindByRequesterID(ctx context.Context, requesterID string, page, pageSize int) ([]models.BloodRequest, error) {
	return nil, nil
}

func (r *stubRequestRepository) AcceptPending(ctx context.Context, requestID, donorID string, acceptedAt time.Time) (*models.BloodRequest, error) {
	return nil, nil
}

func (r *stubRequestRepository) TransitionStatus(ctx context.Context, requestID string, from []models.RequestStatus, to models.RequestStatus) (*models.BloodRequest, error) {
	return nil, nil
}

func (r *stubRequestRepository) CompleteAcceptance(ctx context.Context, requestID, facilityID, donorID string, completedAt time.Time) (*models.BloodRequest, error) {
	request, ok := r.requests[requestID]
	if !ok || request.RequesterID != facilityID || request.Status != models.RequestStatusAccepted {
		return nil, nil
	}
	for i := range request.AcceptedBy {
		if request.AcceptedBy[i].DonorID == donorID && request.AcceptedBy[i].SubStatus == models.AcceptanceAccepted {
			request.AcceptedBy[i].SubStatus = models.AcceptanceCompleted
			request.AcceptedBy[i].CompletedAt = &completedAt
			request.Status = models.RequestStatusFulfilled
			return request, nil
		}
	}
	return nil, nil
}

func (r *stubRequestRepository) FindLatestAcceptedByDonor(ctx context.Context, facilityID, donorID string) (*models.BloodRequest, error) {
	var latest *models.BloodRequest
	for _, request := range r.requests {
		if request.RequesterID != facilityID || request.Status != models.RequestStatusAccepted {
			continue
		}
		for _, record := range request.AcceptedBy {
			if record.DonorID == donorID && record.SubStatus == models.AcceptanceAccepted {
				if latest == nil || request.UpdatedAt.After(latest.UpdatedAt) {
					latest = request
				}
			}
		}
	}
	return latest, nil
}

type recordedNotification struct {
	userID           string
	notificationType string
}

type stubFanoutService struct {
	notifications []recordedNotification
}

func (f *stubFanoutService) NotifyDonorsOfRequest(ctx context.Context, request *models.BloodRequest, donors []models.Donor) error {
	return nil
}

func (f *stubFanoutService) NotifyUser(ctx context.Context, userID, notificationType string, request *models.BloodRequest) error {
	f.notifications = append(f.notifications, recordedNotification{userID: userID, notificationType: notificationType})
	return nil
}

type stubEventPublisher struct {
	inventoryEvents   []*requests.InventoryIncrementEvent
	certificateEvents []*requests.CertificateEmailEvent
	publishErr        error
}

func (p *stubEventPublisher) PublishInventoryIncrement(ctx context.Context, event *requests.InventoryIncrementEvent) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.inventoryEvents = append(p.inventoryEvents, event)
	return nil
}

func (p *stubEventPublisher) PublishCertificateEmail(ctx context.Context, event *requests.CertificateEmailEvent) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.certificateEvents = append(p.certificateEvents, event)
	return nil
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func acceptedRequest(id, facilityID, donorID string) *models.BloodRequest {
	return &models.BloodRequest{
		ID:             id,
		RequesterID:    facilityID,
		BloodType:      models.BloodTypeONeg,
		QuantityNeeded: 2,
		Status:         models.RequestStatusAccepted,
		AcceptedBy: []models.AcceptanceRecord{
			{DonorID: donorID, AcceptedAt: time.Now(), SubStatus: models.AcceptanceAccepted},
		},
	}
}

func TestVerifyClosesAcceptance(t *testing.T) {
	repo := &stubRequestRepository{requests: map[string]*models.BloodRequest{
		"req-1": acceptedRequest("req-1", "facility-1", "donor-1"),
	}}
	fanoutSvc := &stubFanoutService{}
	publisher := &stubEventPublisher{}
	uc := NewVerificationUsecase(repo, fanoutSvc, publisher, zap.NewNop())

	response, err := uc.Verify(context.Background(), "facility-1", &requests.VerifyDonation{
		DonorID:   "donor-1",
		RequestID: "req-1",
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.RequestStatusFulfilled), response.Status)
	require.Len(t, response.AcceptedBy, 1)
	assert.Equal(t, string(models.AcceptanceCompleted), response.AcceptedBy[0].SubStatus)
	assert.NotNil(t, response.AcceptedBy[0].CompletedAt)

	require.Len(t, fanoutSvc.notifications, 1)
	assert.Equal(t, "donor-1", fanoutSvc.notifications[0].userID)
	assert.Equal(t, constvars.NotificationTypeRequestFulfilled, fanoutSvc.notifications[0].notificationType)

	require.Len(t, publisher.inventoryEvents, 1)
	assert.Equal(t, "facility-1", publisher.inventoryEvents[0].FacilityID)
	assert.Equal(t, "O-", publisher.inventoryEvents[0].BloodType)
	assert.Equal(t, 2, publisher.inventoryEvents[0].Units)

	require.Len(t, publisher.certificateEvents, 1)
	assert.Equal(t, "donor-1", publisher.certificateEvents[0].DonorID)
}

func TestVerifyResolvesLatestAcceptance(t *testing.T) {
	repo := &stubRequestRepository{requests: map[string]*models.BloodRequest{
		"req-1": acceptedRequest("req-1", "facility-1", "donor-1"),
	}}
	uc := NewVerificationUsecase(repo, &stubFanoutService{}, &stubEventPublisher{}, zap.NewNop())

	response, err := uc.Verify(context.Background(), "facility-1", &requests.VerifyDonation{
		DonorID: "donor-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "req-1", response.ID)
	assert.Equal(t, string(models.RequestStatusFulfilled), response.Status)
}

func TestVerifyFailures(t *testing.T) {
	t.Run("no active acceptance for donor", func(t *testing.T) {
		repo := &stubRequestRepository{requests: map[string]*models.BloodRequest{}}
		uc := NewVerificationUsecase(repo, &stubFanoutService{}, &stubEventPublisher{}, zap.NewNop())

		_, err := uc.Verify(context.Background(), "facility-1", &requests.VerifyDonation{DonorID: "donor-1"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("foreign facility cannot close", func(t *testing.T) {
		repo := &stubRequestRepository{requests: map[string]*models.BloodRequest{
			"req-1": acceptedRequest("req-1", "facility-1", "donor-1"),
		}}
		uc := NewVerificationUsecase(repo, &stubFanoutService{}, &stubEventPublisher{}, zap.NewNop())

		_, err := uc.Verify(context.Background(), "facility-2", &requests.VerifyDonation{
			DonorID:   "donor-1",
			RequestID: "req-1",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("unknown request id", func(t *testing.T) {
		repo := &stubRequestRepository{requests: map[string]*models.BloodRequest{}}
		uc := NewVerificationUsecase(repo, &stubFanoutService{}, &stubEventPublisher{}, zap.NewNop())

		_, err := uc.Verify(context.Background(), "facility-1", &requests.VerifyDonation{
			DonorID:   "donor-1",
			RequestID: "ghost",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("outbox failure does not undo the close", func(t *testing.T) {
		repo := &stubRequestRepository{requests: map[string]*models.BloodRequest{
			"req-1": acceptedRequest("req-1", "facility-1", "donor-1"),
		}}
		publisher := &stubEventPublisher{publishErr: errors.New("broker down")}
		uc := NewVerificationUsecase(repo, &stubFanoutService{}, publisher, zap.NewNop())

		response, err := uc.Verify(context.Background(), "facility-1", &requests.VerifyDonation{
			DonorID:   "donor-1",
			RequestID: "req-1",
		})
		require.NoError(t, err)
		assert.Equal(t, string(models.RequestStatusFulfilled), response.Status)
	})
}
