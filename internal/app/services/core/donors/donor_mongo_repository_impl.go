package donors

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DonorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDonorMongoRepository(db *mongo.Client, dbName string) contracts.DonorRepository {
	return &DonorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDonors),
	}
}

// EnsureIndexes creates the 2dsphere index the eligibility query depends
// on. Called once at startup.
func (repo *DonorMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return exceptions.ErrMongoDBEnsureIndexes(err)
	}
	return nil
}

// FindEligible matches on blood type, availability and proximity in one
// query. $nearSphere measures along the sphere, so the radius is meters
// on the ground, not degrees.
func (repo *DonorMongoRepository) FindEligible(ctx context.Context, bloodType models.BloodType, point models.GeoPoint, radiusMeters int) ([]models.Donor, error) {
	filter := bson.M{
		"bloodType":   bloodType,
		"isAvailable": true,
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry":    point,
				"$maxDistance": radiusMeters,
			},
		},
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	donors := make([]models.Donor, 0)
	if err := cursor.All(ctx, &donors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return donors, nil
}

func (repo *DonorMongoRepository) FindByID(ctx context.Context, donorID string) (*models.Donor, error) {
	var donor models.Donor
	err := repo.Collection.FindOne(ctx, bson.M{"_id": donorID}).Decode(&donor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &donor, nil
}

func (repo *DonorMongoRepository) UpdateAvailability(ctx context.Context, donorID string, isAvailable bool) error {
	update := bson.M{
		"$set": bson.M{
			"isAvailable": isAvailable,
			"updatedAt":   time.Now().UTC(),
		},
	}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": donorID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDonorNotFound(nil)
	}
	return nil
}

func (repo *DonorMongoRepository) UpdateProfilePictureURL(ctx context.Context, donorID, pictureURL string) error {
	update := bson.M{
		"$set": bson.M{
			"profilePictureUrl": pictureURL,
			"updatedAt":         time.Now().UTC(),
		},
	}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": donorID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDonorNotFound(nil)
	}
	return nil
}
