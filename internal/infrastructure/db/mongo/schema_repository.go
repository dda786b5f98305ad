package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// SchemaRegistry records which optional profile columns have been introduced
// and backfills their default into existing profiles.
type SchemaRegistry struct {
	registry *mongo.Collection
	profiles *mongo.Collection
	now      func() time.Time
}

func NewSchemaRegistry(db *mongo.Database) *SchemaRegistry {
	return &SchemaRegistry{
		registry: db.Collection(collectionSchemaColumns),
		profiles: db.Collection(collectionProfiles),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// EnsureColumns reports one result per column and never stops early. A column
// is backfilled before it is registered, so a failed backfill is retried on
// the next call instead of being reported as existing.
func (r *SchemaRegistry) EnsureColumns(ctx context.Context, columns []domain.ColumnSpec) []domain.ColumnResult {
	results := make([]domain.ColumnResult, 0, len(columns))
	for _, col := range columns {
		status, err := r.ensure(ctx, col)
		res := domain.ColumnResult{Column: col.Name, Status: status}
		if err != nil {
			res.Status = domain.ColumnError
			res.Error = err.Error()
		}
		results = append(results, res)
	}
	return results
}

func (r *SchemaRegistry) ensure(ctx context.Context, col domain.ColumnSpec) (domain.ColumnStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	err := r.registry.FindOne(ctx, bson.M{"_id": col.Name}).Err()
	switch {
	case err == nil:
		return domain.ColumnExists, nil
	case !errors.Is(err, mongo.ErrNoDocuments):
		return domain.ColumnError, fmt.Errorf("lookup column: %w", err)
	}

	if _, err := r.profiles.UpdateMany(ctx,
		bson.M{col.Name: bson.M{"$exists": false}},
		bson.M{"$set": bson.M{col.Name: col.Default}},
	); err != nil {
		return domain.ColumnError, fmt.Errorf("backfill %s: %w", col.Name, err)
	}

	res, err := r.registry.UpdateOne(ctx,
		bson.M{"_id": col.Name},
		bson.M{"$setOnInsert": bson.M{"default": col.Default, "registered_at": r.now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return domain.ColumnError, fmt.Errorf("register column: %w", err)
	}
	if res.UpsertedCount == 0 {
		return domain.ColumnExists, nil
	}
	return domain.ColumnAdded, nil
}
