package requests

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewRequestMongoRepository(db *mongo.Client, dbName string) contracts.RequestRepository {
	return &RequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBloodRequests),
	}
}

func (repo *RequestMongoRepository) Create(ctx context.Context, request *models.BloodRequest) (*models.BloodRequest, error) {
	if request.ID == "" {
		request.ID = primitive.NewObjectID().Hex()
	}
	_, err := repo.Collection.InsertOne(ctx, request)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return request, nil
}

func (repo *RequestMongoRepository) FindByID(ctx context.Context, requestID string) (*models.BloodRequest, error) {
	var request models.BloodRequest
	err := repo.Collection.FindOne(ctx, bson.M{"_id": requestID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &request, nil
}

func (repo *RequestMongoRepository) FindPendingBroadcast(ctx context.Context, page, pageSize int) ([]models.BloodRequest, error) {
	filter := bson.M{
		"status":   models.RequestStatusPending,
		"isDirect": false,
	}
	return repo.findPage(ctx, filter, page, pageSize)
}

func (repo *RequestMongoRepository) FindByRequesterID(ctx context.Context, requesterID string, page, pageSize int) ([]models.BloodRequest, error) {
	return repo.findPage(ctx, bson.M{"requesterId": requesterID}, page, pageSize)
}

func (repo *RequestMongoRepository) findPage(ctx context.Context, filter bson.M, page, pageSize int) ([]models.BloodRequest, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	requests := make([]models.BloodRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return requests, nil
}

// AcceptPending is the single-winner write. The filter pins the pending
// status so concurrent acceptors race on one document version; exactly
// one update matches, every other caller gets (nil, nil).
func (repo *RequestMongoRepository) AcceptPending(ctx context.Context, requestID, donorID string, acceptedAt time.Time) (*models.BloodRequest, error) {
	filter := bson.M{
		"_id":    requestID,
		"status": models.RequestStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    models.RequestStatusAccepted,
			"updatedAt": acceptedAt,
		},
		"$push": bson.M{
			"acceptedBy": models.AcceptanceRecord{
				DonorID:    donorID,
				AcceptedAt: acceptedAt,
				SubStatus:  models.AcceptanceAccepted,
			},
		},
	}

	var request models.BloodRequest
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &request, nil
}

func (repo *RequestMongoRepository) TransitionStatus(ctx context.Context, requestID string, from []models.RequestStatus, to models.RequestStatus) (*models.BloodRequest, error) {
	filter := bson.M{
		"_id":    requestID,
		"status": bson.M{"$in": from},
	}
	update := bson.M{
		"$set": bson.M{
			"status":    to,
			"updatedAt": time.Now().UTC(),
		},
	}

	var request models.BloodRequest
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &request, nil
}

// CompleteAcceptance closes the donor's accepted record and flips the
// request to fulfilled in one write. The facility scope lives in the
// filter, so a foreign facility's attempt is a plain no-match.
func (repo *RequestMongoRepository) CompleteAcceptance(ctx context.Context, requestID, facilityID, donorID string, completedAt time.Time) (*models.BloodRequest, error) {
	filter := bson.M{
		"_id":         requestID,
		"requesterId": facilityID,
		"status":      models.RequestStatusAccepted,
		"acceptedBy": bson.M{
			"$elemMatch": bson.M{
				"donorId":   donorID,
				"subStatus": models.AcceptanceAccepted,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"status":                   models.RequestStatusFulfilled,
			"acceptedBy.$.subStatus":   models.AcceptanceCompleted,
			"acceptedBy.$.completedAt": completedAt,
			"updatedAt":                completedAt,
		},
	}

	var request models.BloodRequest
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &request, nil
}

func (repo *RequestMongoRepository) FindLatestAcceptedByDonor(ctx context.Context, facilityID, donorID string) (*models.BloodRequest, error) {
	filter := bson.M{
		"requesterId": facilityID,
		"status":      models.RequestStatusAccepted,
		"acceptedBy": bson.M{
			"$elemMatch": bson.M{
				"donorId":   donorID,
				"subStatus": models.AcceptanceAccepted,
			},
		},
	}

	var request models.BloodRequest
	err := repo.Collection.FindOne(
		ctx,
		filter,
		options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}}),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &request, nil
}
