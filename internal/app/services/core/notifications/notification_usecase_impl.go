package notifications

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/dto/responses"
	"lifelink-service/internal/pkg/exceptions"
	"lifelink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository, logger *zap.Logger) contracts.NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
		Log:                    logger,
	}
}

func (uc *notificationUsecase) FindOwn(ctx context.Context, recipientID string, queryParams *requests.QueryParams) ([]responses.Notification, *responses.Pagination, error) {
	queryParams.Normalize()

	notifications, err := uc.NotificationRepository.FindByRecipientID(ctx, recipientID, queryParams.Page, queryParams.PageSize)
	if err != nil {
		return nil, nil, err
	}

	total, err := uc.NotificationRepository.CountByRecipientID(ctx, recipientID)
	if err != nil {
		return nil, nil, err
	}

	pagination := utils.BuildPaginationResponse(int(total), queryParams.Page, queryParams.PageSize, "/notifications")

	return toNotificationResponses(notifications), pagination, nil
}

func (uc *notificationUsecase) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	return uc.NotificationRepository.CountUnread(ctx, recipientID)
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, notificationID, recipientID string) (*responses.Notification, error) {
	notification, err := uc.NotificationRepository.MarkRead(ctx, notificationID, recipientID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, exceptions.ErrNotificationNotFound(nil)
	}

	uc.Log.Debug("notification marked read",
		zap.String(constvars.LoggingNotificationKey, notificationID),
		zap.String(constvars.LoggingRecipientKey, recipientID),
	)
	return toNotificationResponse(notification), nil
}

func toNotificationResponse(notification *models.Notification) *responses.Notification {
	return &responses.Notification{
		ID:        notification.ID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		RequestID: notification.RequestID,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func toNotificationResponses(notifications []models.Notification) []responses.Notification {
	results := make([]responses.Notification, 0, len(notifications))
	for i := range notifications {
		results = append(results, *toNotificationResponse(&notifications[i]))
	}
	return results
}
