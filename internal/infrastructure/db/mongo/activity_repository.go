package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

const activityCollection = "activities"

// ActivityRepository implements ports.ActivityRepository on MongoDB. The
// feed is append-only; reads always return the newest entries first.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Action    string             `bson:"action"`
	Project   string             `bson:"project"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	doc := mongoActivity{
		User:      activity.User,
		Action:    activity.Action,
		Project:   activity.Project,
		CreatedAt: activity.CreatedAt.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) Latest(ctx context.Context, n int) ([]*domain.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(n))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []*domain.Activity
	for cursor.Next(ctx) {
		var ma mongoActivity
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, &domain.Activity{
			ID:        ma.ID.Hex(),
			User:      ma.User,
			Action:    ma.Action,
			Project:   ma.Project,
			CreatedAt: ma.CreatedAt,
		})
	}
	return activities, cursor.Err()
}
