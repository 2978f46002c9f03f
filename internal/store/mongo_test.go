// internal/store/mongo_test.go
package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/javajoker/unihub-backend/internal/models"
)

func propertyDoc(id, title string, status models.PropertyStatus, created *time.Time) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "price", Value: 1000.0},
		{Key: "status", Value: string(status)},
		{Key: "features", Value: bson.A{}},
		{Key: "media", Value: bson.A{}},
	}
	if created != nil {
		doc = append(doc, bson.E{Key: "createdAt", Value: primitive.NewDateTimeFromTime(*created)})
	}
	return doc
}

func TestMongoStoreListProperties(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ns := "unihub.properties"

	mt.Run("status filter sorts client side", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			propertyDoc("a", "No timestamp", models.PropertyStatusAvailable, nil),
			propertyDoc("b", "Older", models.PropertyStatusAvailable, &older),
			propertyDoc("c", "Newer", models.PropertyStatusAvailable, &newer),
		))

		s := NewMongoStore(mt.DB)
		props, err := s.ListProperties(context.Background(), models.PropertyStatusAvailable)
		require.NoError(mt, err)
		require.Len(mt, props, 3)

		assert.Equal(mt, []string{"c", "b", "a"}, []string{props[0].ID, props[1].ID, props[2].ID})

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		_, err = started.Command.LookupErr("sort")
		assert.Error(mt, err, "filtered query must not request a server-side sort")

		filter := started.Command.Lookup("filter", "status")
		assert.Equal(mt, "available", filter.StringValue())
	})

	mt.Run("unfiltered uses server sort", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			propertyDoc("c", "Newer", models.PropertyStatusOccupied, &newer),
			propertyDoc("b", "Older", models.PropertyStatusAvailable, &older),
		))

		s := NewMongoStore(mt.DB)
		props, err := s.ListProperties(context.Background(), "")
		require.NoError(mt, err)
		require.Len(mt, props, 2)
		assert.Equal(mt, "c", props[0].ID)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		sortDoc, err := started.Command.LookupErr("sort")
		require.NoError(mt, err)
		assert.Equal(mt, int32(-1), sortDoc.Document().Lookup("createdAt").Int32())
	})
}

func TestMongoStoreGetProperty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "unihub.properties", mtest.FirstBatch,
			propertyDoc("p1", "Cozy Studio", models.PropertyStatusAvailable, &created),
		))

		p, err := NewMongoStore(mt.DB).GetProperty(context.Background(), "p1")
		require.NoError(mt, err)
		assert.Equal(mt, "Cozy Studio", p.Title)
		require.NotNil(mt, p.CreatedAt)
		assert.True(mt, created.Equal(*p.CreatedAt))
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "unihub.properties", mtest.FirstBatch))

		_, err := NewMongoStore(mt.DB).GetProperty(context.Background(), "nope")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoStoreCreateProperty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stamps timestamps", func(mt *mtest.T) {
		now := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		s := NewMongoStore(mt.DB, WithClock(func() time.Time { return now }))
		id, err := s.CreateProperty(context.Background(), models.PropertyFields{
			Title:  "Modern 2-Bedroom Apartment in Yaba",
			Price:  1500000,
			Status: models.PropertyStatusAvailable,
		})
		require.NoError(mt, err)
		assert.Len(mt, id, 24)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		doc := started.Command.Lookup("documents", "0").Document()
		assert.Equal(mt, id, doc.Lookup("_id").StringValue())
		assert.Equal(mt, now.UnixMilli(), doc.Lookup("createdAt").DateTime())
		assert.Equal(mt, now.UnixMilli(), doc.Lookup("updatedAt").DateTime())

		_, err = doc.LookupErr("deposit")
		assert.Error(mt, err, "absent deposit is not written")
	})
}

func TestMongoStoreUpdateProperty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("partial update sets only given fields", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		title := "Renamed"
		err := NewMongoStore(mt.DB).UpdateProperty(context.Background(), "p1", models.PropertyUpdate{Title: &title})
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		set := started.Command.Lookup("updates", "0", "u", "$set").Document()
		assert.Equal(mt, "Renamed", set.Lookup("title").StringValue())
		_, err = set.LookupErr("updatedAt")
		assert.NoError(mt, err)
		_, err = set.LookupErr("price")
		assert.Error(mt, err)
	})

	mt.Run("missing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		status := models.PropertyStatusOccupied
		err := NewMongoStore(mt.DB).UpdateProperty(context.Background(), "gone", models.PropertyUpdate{Status: &status})
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoStoreDeleteMissingSucceeds(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := NewMongoStore(mt.DB).DeleteProperty(context.Background(), "gone")
		assert.NoError(mt, err)
	})
}

func TestMongoStoreListCategoriesSortsByOrder(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "unihub.categories", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "c1"}, {Key: "name", Value: "Apartment"}, {Key: "slug", Value: "apartment"}, {Key: "isActive", Value: true}, {Key: "order", Value: 0}},
		))

		cats, err := NewMongoStore(mt.DB).ListCategories(context.Background())
		require.NoError(mt, err)
		require.Len(mt, cats, 1)
		assert.Equal(mt, "apartment", cats[0].Slug)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, int32(1), started.Command.Lookup("sort", "order").Int32())
	})
}

func TestMongoStoreSettings(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("absent settings", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "unihub.settings", mtest.FirstBatch))

		_, err := NewMongoStore(mt.DB).GetSiteSettings(context.Background())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("upsert merges given fields", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		title := "Welcome"
		err := NewMongoStore(mt.DB).UpsertSiteSettings(context.Background(), models.SiteSettingsUpdate{HeroTitle: &title})
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		update := started.Command.Lookup("updates", "0").Document()
		assert.True(mt, update.Lookup("upsert").Boolean())
		assert.Equal(mt, "general", update.Lookup("q", "_id").StringValue())
		set := update.Lookup("u", "$set").Document()
		assert.Equal(mt, "Welcome", set.Lookup("heroTitle").StringValue())
		_, err = set.LookupErr("heroSubtitle")
		assert.Error(mt, err)
	})
}
