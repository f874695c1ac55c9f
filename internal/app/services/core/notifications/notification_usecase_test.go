package notifications

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

type fakeNotificationRepository struct {
	notifications map[string]*models.Notification
}

func (r *fakeNotificationRepository) Create(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	r.notifications[notification.ID] = notification
	return notification, nil
}

func (r *fakeNotificationRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	notification, ok := r.notifications[notificationID]
	if !ok {
		return nil, nil
	}
	return notification, nil
}

func (r *fakeNotificationRepository) FindByRecipientID(ctx context.Context, recipientID string, page, pageSize int) ([]models.Notification, error) {
	results := make([]models.Notification, 0)
	for _, notification := range r.notifications {
		if notification.RecipientID == recipientID {
			results = append(results, *notification)
		}
	}
	return results, nil
}

func (r *fakeNotificationRepository) CountByRecipientID(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	for _, notification := range r.notifications {
		if notification.RecipientID == recipientID {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	for _, notification := range r.notifications {
		if notification.RecipientID == recipientID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepository) MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	notification, ok := r.notifications[notificationID]
	if !ok || notification.RecipientID != recipientID {
		return nil, nil
	}
	notification.IsRead = true
	return notification, nil
}

func seedNotification(repo *fakeNotificationRepository, id, recipientID string, isRead bool) {
	repo.notifications[id] = &models.Notification{
		ID:          id,
		RecipientID: recipientID,
		Type:        constvars.NotificationTypeRequestMatched,
		Title:       constvars.NotificationTitleRequestMatched,
		Message:     "A facility nearby urgently needs 1 unit(s) of O- blood.",
		IsRead:      isRead,
		CreatedAt:   time.Now(),
	}
}

func TestMarkRead(t *testing.T) {
	t.Run("marks own notification", func(t *testing.T) {
		repo := &fakeNotificationRepository{notifications: map[string]*models.Notification{}}
		seedNotification(repo, "notif-1", "donor-1", false)
		uc := NewNotificationUsecase(repo, zap.NewNop())

		response, err := uc.MarkRead(context.Background(), "notif-1", "donor-1")
		require.NoError(t, err)
		assert.True(t, response.IsRead)
	})

	t.Run("marking twice is idempotent", func(t *testing.T) {
		repo := &fakeNotificationRepository{notifications: map[string]*models.Notification{}}
		seedNotification(repo, "notif-1", "donor-1", true)
		uc := NewNotificationUsecase(repo, zap.NewNop())

		response, err := uc.MarkRead(context.Background(), "notif-1", "donor-1")
		require.NoError(t, err)
		assert.True(t, response.IsRead)
	})

	t.Run("foreign recipient reads as not found", func(t *testing.T) {
		repo := &fakeNotificationRepository{notifications: map[string]*models.Notification{}}
		seedNotification(repo, "notif-1", "donor-1", false)
		uc := NewNotificationUsecase(repo, zap.NewNop())

		_, err := uc.MarkRead(context.Background(), "notif-1", "donor-2")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestCountUnread(t *testing.T) {
	repo := &fakeNotificationRepository{notifications: map[string]*models.Notification{}}
	seedNotification(repo, "notif-1", "donor-1", false)
	seedNotification(repo, "notif-2", "donor-1", true)
	seedNotification(repo, "notif-3", "donor-1", false)
	seedNotification(repo, "notif-4", "donor-2", false)
	uc := NewNotificationUsecase(repo, zap.NewNop())

	count, err := uc.CountUnread(context.Background(), "donor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFindOwn(t *testing.T) {
	repo := &fakeNotificationRepository{notifications: map[string]*models.Notification{}}
	seedNotification(repo, "notif-1", "donor-1", false)
	seedNotification(repo, "notif-2", "donor-2", false)
	uc := NewNotificationUsecase(repo, zap.NewNop())

	results, pagination, err := uc.FindOwn(context.Background(), "donor-1", &requests.QueryParams{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "notif-1", results[0].ID)
	require.NotNil(t, pagination)
	assert.Equal(t, 1, pagination.Total)
}
