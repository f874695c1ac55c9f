package fanout

import (
	"context"
	"errors"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotificationRepository struct {
	created   []*models.Notification
	failFor   map[string]bool
	callOrder *[]string
}

func (r *recordingNotificationRepository) Create(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	if r.callOrder != nil {
		*r.callOrder = append(*r.callOrder, "persist:"+notification.RecipientID)
	}
	if r.failFor[notification.RecipientID] {
		return nil, errors.New("insert failed")
	}
	r.created = append(r.created, notification)
	return notification, nil
}

func (r *recordingNotificationRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	return nil, nil
}

func (r *recordingNotificationRepository) FindByRecipientID(ctx context.Context, recipientID string, page, pageSize int) ([]models.Notification, error) {
	return nil, nil
}

func (r *recordingNotificationRepository) CountByRecipientID(ctx context.Context, recipientID string) (int64, error) {
	return 0, nil
}

func (r *recordingNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	return 0, nil
}

func (r *recordingNotificationRepository) MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	return nil, nil
}

type recordingPushBroker struct {
	published []string
	pushErr   error
	callOrder *[]string
}

func (b *recordingPushBroker) Publish(userID string, message models.PushMessage) error {
	if b.callOrder != nil {
		*b.callOrder = append(*b.callOrder, "push:"+userID)
	}
	if b.pushErr != nil {
		return b.pushErr
	}
	b.published = append(b.published, userID)
	return nil
}

func (b *recordingPushBroker) Broadcast(message models.PushMessage) error {
	return nil
}

func broadcastRequest() *models.BloodRequest {
	return &models.BloodRequest{
		ID:             "req-1",
		RequesterID:    "facility-1",
		BloodType:      models.BloodTypeONeg,
		QuantityNeeded: 3,
		Status:         models.RequestStatusPending,
	}
}

func TestNotifyDonorsOfRequest(t *testing.T) {
	t.Run("persists one notification per donor before pushing", func(t *testing.T) {
		order := []string{}
		repo := &recordingNotificationRepository{callOrder: &order}
		broker := &recordingPushBroker{callOrder: &order}
		svc := NewFanoutService(repo, broker, zap.NewNop())

		donors := []models.Donor{{ID: "donor-1"}, {ID: "donor-2"}}
		err := svc.NotifyDonorsOfRequest(context.Background(), broadcastRequest(), donors)
		require.NoError(t, err)

		require.Len(t, repo.created, 2)
		for _, notification := range repo.created {
			assert.Equal(t, constvars.NotificationTypeRequestMatched, notification.Type)
			assert.Equal(t, "req-1", notification.RequestID)
			assert.False(t, notification.IsRead)
			assert.Contains(t, notification.Message, "3 unit(s) of O- blood")
		}

		require.Equal(t, []string{
			"persist:donor-1", "push:donor-1",
			"persist:donor-2", "push:donor-2",
		}, order, "the durable record lands before the push")
	})

	t.Run("one failing recipient does not block the rest", func(t *testing.T) {
		repo := &recordingNotificationRepository{failFor: map[string]bool{"donor-1": true}}
		broker := &recordingPushBroker{}
		svc := NewFanoutService(repo, broker, zap.NewNop())

		donors := []models.Donor{{ID: "donor-1"}, {ID: "donor-2"}, {ID: "donor-3"}}
		err := svc.NotifyDonorsOfRequest(context.Background(), broadcastRequest(), donors)
		require.NoError(t, err)

		require.Len(t, repo.created, 2)
		assert.Equal(t, []string{"donor-2", "donor-3"}, broker.published)
	})

	t.Run("push failures are swallowed", func(t *testing.T) {
		repo := &recordingNotificationRepository{}
		broker := &recordingPushBroker{pushErr: errors.New("connection gone")}
		svc := NewFanoutService(repo, broker, zap.NewNop())

		err := svc.NotifyDonorsOfRequest(context.Background(), broadcastRequest(), []models.Donor{{ID: "donor-1"}})
		require.NoError(t, err)
		assert.Len(t, repo.created, 1, "the durable notification survives the failed push")
	})
}

func TestNotifyUser(t *testing.T) {
	t.Run("maps notification types to titles and messages", func(t *testing.T) {
		repo := &recordingNotificationRepository{}
		svc := NewFanoutService(repo, &recordingPushBroker{}, zap.NewNop())

		err := svc.NotifyUser(context.Background(), "facility-1", constvars.NotificationTypeRequestAccepted, broadcastRequest())
		require.NoError(t, err)

		require.Len(t, repo.created, 1)
		assert.Equal(t, constvars.NotificationTitleRequestAccepted, repo.created[0].Title)
		assert.Equal(t, "facility-1", repo.created[0].RecipientID)
	})

	t.Run("persist failure surfaces to the caller", func(t *testing.T) {
		repo := &recordingNotificationRepository{failFor: map[string]bool{"facility-1": true}}
		svc := NewFanoutService(repo, &recordingPushBroker{}, zap.NewNop())

		err := svc.NotifyUser(context.Background(), "facility-1", constvars.NotificationTypeRequestAccepted, broadcastRequest())
		require.Error(t, err)
	})
}
