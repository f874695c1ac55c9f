package contracts

import (
	"context"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/dto/responses"
	"time"
)

// RequestRepository owns the blood_requests collection. The conditional
// mutators (AcceptPending, TransitionStatus, CompleteAcceptance) express
// precondition and write as one atomic operation; they return (nil, nil)
// when the precondition did not match any document, so callers can
// distinguish a lost race from an infrastructure failure.
type RequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) (*models.BloodRequest, error)
	FindByID(ctx context.Context, requestID string) (*models.BloodRequest, error)
	FindPendingBroadcast(ctx context.Context, page, pageSize int) ([]models.BloodRequest, error)
	FindByRequesterID(ctx context.Context, requesterID string, page, pageSize int) ([]models.BloodRequest, error)

	// AcceptPending performs the single-winner transition: status
	// pending -> accepted plus the append of one AcceptanceRecord,
	// conditioned on status == pending.
	AcceptPending(ctx context.Context, requestID, donorID string, acceptedAt time.Time) (*models.BloodRequest, error)

	// TransitionStatus flips status to `to` iff the current status is one
	// of `from`.
	TransitionStatus(ctx context.Context, requestID string, from []models.RequestStatus, to models.RequestStatus) (*models.BloodRequest, error)

	// CompleteAcceptance closes the donor's accepted record and marks the
	// request fulfilled in the same write, scoped to the owning facility.
	CompleteAcceptance(ctx context.Context, requestID, facilityID, donorID string, completedAt time.Time) (*models.BloodRequest, error)

	// FindLatestAcceptedByDonor returns the most recently accepted request
	// addressed to the facility on which the donor holds an accepted
	// record, or nil when none exists.
	FindLatestAcceptedByDonor(ctx context.Context, facilityID, donorID string) (*models.BloodRequest, error)
}

type RequestUsecase interface {
	CreateRequest(ctx context.Context, session *models.Session, request *requests.CreateBloodRequest) (*responses.BloodRequest, error)
	FindByID(ctx context.Context, requestID string) (*responses.BloodRequest, error)
	FindPendingBroadcast(ctx context.Context, queryParams *requests.QueryParams) ([]responses.BloodRequest, error)
	FindOwn(ctx context.Context, session *models.Session, queryParams *requests.QueryParams) ([]responses.BloodRequest, error)
	AcceptRequest(ctx context.Context, requestID, donorID string) (*responses.BloodRequest, error)
	RejectRequest(ctx context.Context, requestID, donorID string) (*responses.BloodRequest, error)
	CancelRequest(ctx context.Context, requestID, facilityID string) (*responses.BloodRequest, error)
}
