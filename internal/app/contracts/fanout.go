package contracts

import (
	"context"
	"lifelink-service/internal/app/models"
)

// FanoutService persists one Notification per recipient, then attempts a
// best-effort push. Persistence failures surface per recipient in the
// returned error count semantics of the implementation; push failures are
// swallowed.
type FanoutService interface {
	NotifyDonorsOfRequest(ctx context.Context, request *models.BloodRequest, donors []models.Donor) error
	NotifyUser(ctx context.Context, userID, notificationType string, request *models.BloodRequest) error
}
