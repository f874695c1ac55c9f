package notifications

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (repo *NotificationMongoRepository) Create(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	if notification.ID == "" {
		notification.ID = primitive.NewObjectID().Hex()
	}
	_, err := repo.Collection.InsertOne(ctx, notification)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return notification, nil
}

func (repo *NotificationMongoRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	var notification models.Notification
	err := repo.Collection.FindOne(ctx, bson.M{"_id": notificationID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &notification, nil
}

func (repo *NotificationMongoRepository) FindByRecipientID(ctx context.Context, recipientID string, page, pageSize int) ([]models.Notification, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, bson.M{"recipientId": recipientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	notifications := make([]models.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (repo *NotificationMongoRepository) CountByRecipientID(ctx context.Context, recipientID string) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"recipientId": recipientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (repo *NotificationMongoRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	filter := bson.M{
		"recipientId": recipientID,
		"isRead":      false,
	}
	count, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

// MarkRead scopes the write to the owning recipient, so a foreign caller
// and a missing document are the same no-match. Re-reading an already
// read notification still matches; the operation is idempotent.
func (repo *NotificationMongoRepository) MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	filter := bson.M{
		"_id":         notificationID,
		"recipientId": recipientID,
	}
	update := bson.M{
		"$set": bson.M{"isRead": true},
	}

	var notification models.Notification
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &notification, nil
}
