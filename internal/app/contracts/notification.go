package contracts

import (
	"context"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/dto/responses"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	FindByRecipientID(ctx context.Context, recipientID string, page, pageSize int) ([]models.Notification, error)
	CountByRecipientID(ctx context.Context, recipientID string) (int64, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)

	// MarkRead sets isRead scoped to the owning recipient. Returns
	// (nil, nil) when no document matched; marking an already-read
	// notification matches and succeeds.
	MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error)
}

type NotificationUsecase interface {
	FindOwn(ctx context.Context, recipientID string, queryParams *requests.QueryParams) ([]responses.Notification, *responses.Pagination, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) (*responses.Notification, error)
}
