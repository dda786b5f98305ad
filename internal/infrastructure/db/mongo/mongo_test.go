package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

func newMockDB(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func ns(mt *mtest.T, collection string) string {
	return mt.DB.Name() + "." + collection
}

func TestAccountRepository(t *testing.T) {
	mt := newMockDB(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	account := &domain.Account{
		ID:           "acc-1",
		Email:        "ola@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mt.Run("create", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		got, err := repo.Create(context.Background(), account)
		require.NoError(mt, err)
		assert.Equal(mt, "acc-1", got.ID)
		assert.Equal(mt, now, got.CreatedAt)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: accounts index: email_1",
		}))

		_, err := repo.Create(context.Background(), account)
		assert.ErrorIs(mt, err, domain.ErrAccountExists)
	})

	mt.Run("other insert failure", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 2, Message: "bad value"}))

		_, err := repo.Create(context.Background(), account)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, domain.ErrAccountExists)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionAccounts), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "acc-1"},
			{Key: "email", Value: "ola@example.com"},
			{Key: "password_hash", Value: "hash"},
			{Key: "role", Value: domain.RoleAdmin},
			{Key: "created_at", Value: now.Unix()},
			{Key: "updated_at", Value: now.Unix()},
		}))

		got, err := repo.FindByEmail(context.Background(), "ola@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "acc-1", got.ID)
		assert.Equal(mt, domain.RoleAdmin, got.Role)
		assert.Equal(mt, now, got.CreatedAt)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionAccounts), mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(mt, err, domain.ErrAccountNotFound)
	})
}

func TestProfileRepository(t *testing.T) {
	mt := newMockDB(t)

	mt.Run("upsert writes created_at only on insert", func(mt *mtest.T) {
		repo := NewProfileRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		err := repo.Upsert(context.Background(), &domain.Profile{
			AccountID:  "acc-1",
			FirstName:  "Ola",
			Membership: domain.TierPro,
			CreatedAt:  created,
			UpdatedAt:  created.Add(time.Hour),
		})
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "update", evt.CommandName)
		updates, ok := evt.Command.Lookup("updates").ArrayOK()
		require.True(mt, ok)
		first, err := updates.IndexErr(0)
		require.NoError(mt, err)
		stmt := first.Value().Document()

		assert.True(mt, stmt.Lookup("upsert").Boolean())
		u := stmt.Lookup("u").Document()
		_, err = u.LookupErr("$setOnInsert", "created_at")
		assert.NoError(mt, err, "created_at belongs to $setOnInsert")
		_, err = u.LookupErr("$set", "created_at")
		assert.Error(mt, err, "created_at must not be overwritten on update")
		assert.Equal(mt, "pro", u.Lookup("$set", "membership").StringValue())
	})

	mt.Run("missing profile", func(mt *mtest.T) {
		repo := NewProfileRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionProfiles), mtest.FirstBatch))

		_, err := repo.FindByAccountID(context.Background(), "acc-1")
		assert.ErrorIs(mt, err, domain.ErrProfileNotFound)
	})

	mt.Run("lists default to empty", func(mt *mtest.T) {
		repo := NewProfileRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionProfiles), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "acc-1"},
			{Key: "first_name", Value: "Ola"},
		}))

		got, err := repo.FindByAccountID(context.Background(), "acc-1")
		require.NoError(mt, err)
		assert.Equal(mt, []string{}, got.Allergies)
		assert.Equal(mt, []string{}, got.HealthGoals)
	})
}

func TestSchemaRegistry_AddedThenExists(t *testing.T) {
	mt := newMockDB(t)

	mt.Run("first call registers", func(mt *mtest.T) {
		reg := NewSchemaRegistry(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, collectionSchemaColumns), mtest.FirstBatch),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}, bson.E{Key: "nModified", Value: 3}),
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 0},
				bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "membership"}}}},
			),
		)

		got := reg.EnsureColumns(context.Background(), []domain.ColumnSpec{domain.MembershipColumn})
		require.Len(mt, got, 1)
		assert.Equal(mt, domain.ColumnResult{Column: "membership", Status: domain.ColumnAdded}, got[0])
	})

	mt.Run("second call reports exists", func(mt *mtest.T) {
		reg := NewSchemaRegistry(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionSchemaColumns), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "membership"},
			{Key: "default", Value: "basic"},
		}))

		got := reg.EnsureColumns(context.Background(), []domain.ColumnSpec{domain.MembershipColumn})
		require.Len(mt, got, 1)
		assert.Equal(mt, domain.ColumnExists, got[0].Status)
		assert.Empty(mt, got[0].Error)
	})

	mt.Run("failed backfill is an error and the batch goes on", func(mt *mtest.T) {
		reg := NewSchemaRegistry(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, collectionSchemaColumns), mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 2, Message: "backfill rejected"}),
			mtest.CreateCursorResponse(0, ns(mt, collectionSchemaColumns), mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "health_goals"},
			}),
		)

		got := reg.EnsureColumns(context.Background(), []domain.ColumnSpec{
			{Name: "allergies", Default: []string{}},
			{Name: "health_goals", Default: []string{}},
		})
		require.Len(mt, got, 2)
		assert.Equal(mt, domain.ColumnError, got[0].Status)
		assert.Contains(mt, got[0].Error, "backfill allergies")
		assert.Equal(mt, domain.ColumnResult{Column: "health_goals", Status: domain.ColumnExists}, got[1])
	})
}
