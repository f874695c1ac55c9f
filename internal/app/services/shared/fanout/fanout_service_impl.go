package fanout

import (
	"context"
	"fmt"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

type fanoutService struct {
	NotificationRepository contracts.NotificationRepository
	PushBroker             contracts.PushBroker
	Log                    *zap.Logger
}

func NewFanoutService(
	notificationRepository contracts.NotificationRepository,
	pushBroker contracts.PushBroker,
	logger *zap.Logger,
) contracts.FanoutService {
	return &fanoutService{
		NotificationRepository: notificationRepository,
		PushBroker:             pushBroker,
		Log:                    logger,
	}
}

// NotifyDonorsOfRequest persists one notification per matched donor and
// pushes to whoever is connected. One failing recipient never blocks the
// rest of the cohort.
func (svc *fanoutService) NotifyDonorsOfRequest(ctx context.Context, request *models.BloodRequest, donors []models.Donor) error {
	title := constvars.NotificationTitleRequestMatched
	message := fmt.Sprintf(constvars.NotificationMessageRequestMatchedFormat, request.QuantityNeeded, request.BloodType)

	delivered := 0
	for _, donor := range donors {
		err := svc.deliver(ctx, donor.ID, constvars.NotificationTypeRequestMatched, title, message, request.ID)
		if err != nil {
			svc.Log.Error("failed to persist matched-donor notification",
				zap.String(constvars.LoggingBloodRequestKey, request.ID),
				zap.String(constvars.LoggingRecipientKey, donor.ID),
				zap.Error(err),
			)
			continue
		}
		delivered++
	}

	svc.Log.Info("request fanout finished",
		zap.String(constvars.LoggingBloodRequestKey, request.ID),
		zap.Int(constvars.LoggingRecipientCount, delivered),
	)
	return nil
}

// NotifyUser targets a single recipient. The persist failure surfaces to
// the caller; the push never does.
func (svc *fanoutService) NotifyUser(ctx context.Context, userID, notificationType string, request *models.BloodRequest) error {
	var title, message string
	switch notificationType {
	case constvars.NotificationTypeRequestMatched:
		title = constvars.NotificationTitleRequestMatched
		message = fmt.Sprintf(constvars.NotificationMessageRequestMatchedFormat, request.QuantityNeeded, request.BloodType)
	case constvars.NotificationTypeRequestAccepted:
		title = constvars.NotificationTitleRequestAccepted
		message = fmt.Sprintf(constvars.NotificationMessageRequestAcceptedFormat, request.QuantityNeeded, request.BloodType)
	case constvars.NotificationTypeRequestRejected:
		title = constvars.NotificationTitleRequestRejected
		message = fmt.Sprintf(constvars.NotificationMessageRequestRejectedFormat, request.BloodType)
	case constvars.NotificationTypeRequestCancelled:
		title = constvars.NotificationTitleRequestCancelled
		message = fmt.Sprintf(constvars.NotificationMessageRequestCancelledFormat, request.QuantityNeeded, request.BloodType)
	case constvars.NotificationTypeRequestFulfilled:
		title = constvars.NotificationTitleRequestFulfilled
		message = fmt.Sprintf(constvars.NotificationMessageRequestFulfilledFormat, request.BloodType)
	default:
		title = constvars.NotificationTitleRequestMatched
		message = fmt.Sprintf(constvars.NotificationMessageRequestMatchedFormat, request.QuantityNeeded, request.BloodType)
	}

	return svc.deliver(ctx, userID, notificationType, title, message, request.ID)
}

func (svc *fanoutService) deliver(ctx context.Context, recipientID, notificationType, title, message, requestID string) error {
	notification := &models.Notification{
		RecipientID: recipientID,
		Type:        notificationType,
		Title:       title,
		Message:     message,
		RequestID:   requestID,
		IsRead:      false,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := svc.NotificationRepository.Create(ctx, notification)
	if err != nil {
		return err
	}

	pushErr := svc.PushBroker.Publish(recipientID, models.PushMessage{
		Type:      notificationType,
		Title:     title,
		Message:   message,
		RequestID: requestID,
	})
	if pushErr != nil {
		svc.Log.Warn("best-effort push failed",
			zap.String(constvars.LoggingRecipientKey, recipientID),
			zap.Error(pushErr),
		)
	}
	return nil
}
