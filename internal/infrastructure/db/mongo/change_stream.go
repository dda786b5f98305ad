package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

const changeBuffer = 32

// ProfileChangeStream tails the profiles collection with a change stream. It
// requires MongoDB to run as a replica set.
type ProfileChangeStream struct {
	col *mongo.Collection
	log zerolog.Logger
}

func NewProfileChangeStream(db *mongo.Database, log zerolog.Logger) *ProfileChangeStream {
	return &ProfileChangeStream{col: db.Collection(collectionProfiles), log: log}
}

type changeEvent struct {
	OperationType string              `bson:"operationType"`
	ClusterTime   primitive.Timestamp `bson:"clusterTime"`
	DocumentKey   struct {
		ID string `bson:"_id"`
	} `bson:"documentKey"`
	FullDocument *mongoProfile `bson:"fullDocument"`
}

func (e changeEvent) toDomain() domain.ProfileChange {
	ch := domain.ProfileChange{
		Operation: domain.ChangeOperation(e.OperationType),
		AccountID: e.DocumentKey.ID,
		At:        time.Unix(int64(e.ClusterTime.T), 0).UTC(),
	}
	if e.FullDocument != nil {
		ch.Profile = e.FullDocument.toDomain()
	}
	if e.ClusterTime.T == 0 {
		ch.At = time.Now().UTC()
	}
	return ch
}

// Subscribe opens the change stream and pumps events into the returned
// channel until ctx is cancelled or the stream fails.
func (s *ProfileChangeStream) Subscribe(ctx context.Context) (<-chan domain.ProfileChange, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}}}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	cs, err := s.col.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("watch profiles: %w", err)
	}

	out := make(chan domain.ProfileChange, changeBuffer)
	go func() {
		defer close(out)
		defer cs.Close(context.Background())

		for cs.Next(ctx) {
			var ev changeEvent
			if err := cs.Decode(&ev); err != nil {
				s.log.Warn().Err(err).Msg("undecodable profile change skipped")
				continue
			}
			select {
			case out <- ev.toDomain():
			case <-ctx.Done():
				return
			}
		}
		if err := cs.Err(); err != nil && ctx.Err() == nil {
			s.log.Error().Err(err).Msg("profile change stream stopped")
		}
	}()
	return out, nil
}
