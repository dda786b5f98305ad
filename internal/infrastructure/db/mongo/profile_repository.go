package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

const topHealthGoals = 5

// ProfileRepository stores profile attributes keyed by account id. Field
// names match domain.ProfileColumns so the schema registry can backfill them.
type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

type mongoProfile struct {
	AccountID           string    `bson:"_id"`
	Email               string    `bson:"email"`
	FirstName           string    `bson:"first_name"`
	LastName            string    `bson:"last_name"`
	DietaryRestrictions []string  `bson:"dietary_restrictions"`
	Allergies           []string  `bson:"allergies"`
	DislikedIngredients []string  `bson:"disliked_ingredients"`
	HealthGoals         []string  `bson:"health_goals"`
	ActivityLevel       string    `bson:"activity_level"`
	CurrentWeight       *float64  `bson:"current_weight"`
	TargetWeight        *float64  `bson:"target_weight"`
	Membership          string    `bson:"membership"`
	CreatedAt           time.Time `bson:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at"`
}

func (m mongoProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		AccountID:           m.AccountID,
		Email:               m.Email,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		DietaryRestrictions: nonNil(m.DietaryRestrictions),
		Allergies:           nonNil(m.Allergies),
		DislikedIngredients: nonNil(m.DislikedIngredients),
		HealthGoals:         nonNil(m.HealthGoals),
		ActivityLevel:       domain.ActivityLevel(m.ActivityLevel),
		CurrentWeight:       m.CurrentWeight,
		TargetWeight:        m.TargetWeight,
		Membership:          domain.MembershipTier(m.Membership),
		CreatedAt:           m.CreatedAt.UTC(),
		UpdatedAt:           m.UpdatedAt.UTC(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Upsert replaces every attribute of the profile. created_at is only written
// when the document is inserted.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"email":                p.Email,
		"first_name":           p.FirstName,
		"last_name":            p.LastName,
		"dietary_restrictions": nonNil(p.DietaryRestrictions),
		"allergies":            nonNil(p.Allergies),
		"disliked_ingredients": nonNil(p.DislikedIngredients),
		"health_goals":         nonNil(p.HealthGoals),
		"activity_level":       string(p.ActivityLevel),
		"current_weight":       p.CurrentWeight,
		"target_weight":        p.TargetWeight,
		"membership":           string(p.Membership),
		"updated_at":           p.UpdatedAt.UTC(),
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": p.CreatedAt.UTC()},
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": p.AccountID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", p.AccountID, err)
	}
	return nil
}

func (r *ProfileRepository) FindByAccountID(ctx context.Context, accountID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": accountID}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

// Query lists profiles newest first. Search is a case-insensitive substring
// match on first name, last name and email.
func (r *ProfileRepository) Query(ctx context.Context, f domain.ProfileFilter) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Membership != "" {
		filter["membership"] = string(f.Membership)
	}
	if f.HealthGoal != "" {
		filter["health_goals"] = f.HealthGoal
	}
	if f.Search != "" {
		rx := bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": rx},
			bson.M{"last_name": rx},
			bson.M{"email": rx},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoProfile
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	out := make([]*domain.Profile, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Stats aggregates the admin dashboard counters. Users created at or after
// since count as new.
func (r *ProfileRepository) Stats(ctx context.Context, since time.Time) (*domain.ProfileStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count profiles: %w", err)
	}
	recent, err := r.col.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since.UTC()}})
	if err != nil {
		return nil, fmt.Errorf("count new profiles: %w", err)
	}

	byMembership, err := countBy(ctx, r.col, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$ifNull": bson.A{"$membership", string(domain.TierBasic)}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("stats by membership: %w", err)
	}

	byActivity, err := countBy(ctx, r.col, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"activity_level": bson.M{"$nin": bson.A{nil, ""}}}}},
		{{Key: "$group", Value: bson.M{"_id": "$activity_level", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("stats by activity level: %w", err)
	}

	goals, err := countBy(ctx, r.col, mongo.Pipeline{
		{{Key: "$unwind", Value: "$health_goals"}},
		{{Key: "$group", Value: bson.M{"_id": "$health_goals", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: topHealthGoals}},
	})
	if err != nil {
		return nil, fmt.Errorf("stats by health goal: %w", err)
	}

	return &domain.ProfileStats{
		TotalUsers:      total,
		NewUsersLast7d:  recent,
		ByMembership:    byMembership,
		ByActivityLevel: byActivity,
		TopHealthGoals:  goals,
	}, nil
}

type countRow struct {
	Key   string `bson:"_id"`
	Count int64  `bson:"count"`
}

func countBy(ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline) ([]domain.CountBy, error) {
	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []countRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.CountBy, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CountBy{Key: row.Key, Count: row.Count})
	}
	return out, nil
}
