package database_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerguide/careerguide-api/internal/config"
	"github.com/careerguide/careerguide-api/internal/database"
)

// TestMongoCollectionRoundTrip runs the Collection surface against a real
// MongoDB in a container. Opt in with MONGO_INTEGRATION=1; it needs a
// working Docker daemon.
func TestMongoCollectionRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	if os.Getenv("MONGO_INTEGRATION") == "" {
		t.Skip("set MONGO_INTEGRATION=1 to run container tests")
	}

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, db, err := database.Connect(&config.Config{
		MongoURL:     uri,
		DBName:       "careerguide_test",
		MongoTimeout: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(client) })

	coll := database.Wrap(db.Collection("probe"))

	id, err := coll.InsertOne(ctx, bson.M{"name": "alpha", "rank": 1})
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	_, err = coll.InsertOne(ctx, bson.M{"name": "beta", "rank": 2})
	require.NoError(t, err)

	var got bson.M
	require.NoError(t, coll.FindOne(ctx, bson.M{"_id": id}, &got))
	assert.Equal(t, "alpha", got["name"])

	var page []bson.M
	require.NoError(t, coll.Find(ctx, bson.M{}, database.FindOptions{Sort: "rank", Order: -1, Limit: 1}, &page))
	require.Len(t, page, 1)
	assert.Equal(t, "beta", page[0]["name"])

	matched, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"rank": 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	n, err := coll.CountDocuments(ctx, bson.M{"rank": bson.M{"$gte": 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var groups []bson.M
	require.NoError(t, coll.Aggregate(ctx, []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$rank"}}},
	}, &groups))
	require.Len(t, groups, 1)

	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	err = coll.FindOne(ctx, bson.M{"_id": id}, &got)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}
