package mongodb

import (
	"context"
	"time"

	"github.com/xosoviet/xoso-backend/internal/models"
	"github.com/xosoviet/xoso-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepository implements the repositories.ResultRepository interface
type ResultRepository struct {
	collection *mongo.Collection
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *mongo.Database) repositories.ResultRepository {
	return &ResultRepository{
		collection: db.Collection("results"),
	}
}

// Upsert stores a region's results for its draw date
func (r *ResultRepository) Upsert(ctx context.Context, region models.Region, result *models.RegionResult, source models.ResultSource) error {
	 now := time.Now()
	 filter := bson.M{"region": region, "drawDate": result.Date}
	 update := bson.M{
		 "$set": bson.M{
			 "result":    result,
			 "source":    source,
			 "updatedAt": now,
		 },
		 "$setOnInsert": bson.M{
			 "region":    region,
			 "drawDate":  result.Date,
			 "createdAt": now,
		 },
	 }
	 _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	 return err
}

// FindByDateAndRegion finds an archived result by draw date and region
func (r *ResultRepository) FindByDateAndRegion(ctx context.Context, date string, region models.Region) (*models.ArchivedResult, error) {
	var archived models.ArchivedResult
	 err := r.collection.FindOne(ctx, bson.M{"region": region, "drawDate": date}).Decode(&archived)
	 if err != nil {
		 return nil, err // Returns mongo.ErrNoDocuments if not found
	}
	 return &archived, nil
}

// FindByRegionAndDateRange finds archived results for a region within a
// draw-date range. Draw dates are YYYY-MM-DD strings, so lexicographic
// comparison orders them correctly.
func (r *ResultRepository) FindByRegionAndDateRange(ctx context.Context, region models.Region, from, to string) ([]*models.ArchivedResult, error) {
	filter := bson.M{"region": region}
	 dateFilter := bson.M{}
	 if from != "" {
		 dateFilter["$gte"] = from
	 }
	 if to != "" {
		 dateFilter["$lte"] = to
	 }
	 if len(dateFilter) > 0 {
		 filter["drawDate"] = dateFilter
	 }

	 opts := options.Find().SetSort(bson.M{"drawDate": -1})
	 cursor, err := r.collection.Find(ctx, filter, opts)
	 if err != nil {
		 return nil, err
	}
	 defer cursor.Close(ctx)

	 var results []*models.ArchivedResult
	 if err := cursor.All(ctx, &results); err != nil {
		 return nil, err
	}
	 if results == nil {
		 results = []*models.ArchivedResult{}
	 }
	 return results, nil
}

// Count returns the number of archived results
func (r *ResultRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
