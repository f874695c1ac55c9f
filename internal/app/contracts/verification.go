package contracts

import (
	"context"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/dto/responses"
)

type VerificationUsecase interface {
	// Verify consumes a physical-presence event at the facility and
	// performs the terminal transition to fulfilled.
	Verify(ctx context.Context, facilityID string, request *requests.VerifyDonation) (*responses.BloodRequest, error)
}
