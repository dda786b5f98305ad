package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// GenerationLog keeps one document per successful generation.
type GenerationLog struct {
	col *mongo.Collection
}

func NewGenerationLog(db *mongo.Database) *GenerationLog {
	return &GenerationLog{col: db.Collection(collectionGenerations)}
}

func (l *GenerationLog) Record(ctx context.Context, rec domain.GenerationRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"account_id": rec.AccountID,
		"kind":       string(rec.Kind),
		"title":      rec.Title,
		"created_at": rec.CreatedAt.UTC(),
	}
	if _, err := l.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

// CountByKind counts generations since the given time; a zero time counts all.
func (l *GenerationLog) CountByKind(ctx context.Context, since time.Time) ([]domain.CountBy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{}
	if !since.IsZero() {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since.UTC()}}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{"_id": "$kind", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	)

	counts, err := countBy(ctx, l.col, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count generations: %w", err)
	}
	return counts, nil
}
