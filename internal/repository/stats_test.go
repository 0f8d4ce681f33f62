package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/repository"
)

func TestCountBy(t *testing.T) {
	coll := database.NewMemoryCollection()
	ctx := context.Background()
	docs := []bson.M{
		{"difficulty": "easy", "is_active": true},
		{"difficulty": "easy", "is_active": true},
		{"difficulty": "hard", "is_active": true},
		{"difficulty": "hard", "is_active": false},
	}
	for _, d := range docs {
		_, err := coll.InsertOne(ctx, d)
		require.NoError(t, err)
	}

	groups, err := repository.CountBy(ctx, coll, "difficulty", nil)
	require.NoError(t, err)
	counts := repository.GroupCountsToMap(groups)
	assert.Equal(t, int64(2), counts["easy"])
	assert.Equal(t, int64(2), counts["hard"])

	groups, err = repository.CountBy(ctx, coll, "difficulty", bson.M{"is_active": true})
	require.NoError(t, err)
	counts = repository.GroupCountsToMap(groups)
	assert.Equal(t, int64(2), counts["easy"])
	assert.Equal(t, int64(1), counts["hard"])
}

func TestSumOf(t *testing.T) {
	coll := database.NewMemoryCollection()
	ctx := context.Background()
	for _, n := range []int{3, 7, 10} {
		_, err := coll.InsertOne(ctx, bson.M{"views_count": n, "kind": "a"})
		require.NoError(t, err)
	}
	_, err := coll.InsertOne(ctx, bson.M{"views_count": 100, "kind": "b"})
	require.NoError(t, err)

	total, err := repository.SumOf(ctx, coll, "views_count", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(120), total)

	total, err = repository.SumOf(ctx, coll, "views_count", bson.M{"kind": "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(20), total)

	total, err = repository.SumOf(ctx, coll, "views_count", bson.M{"kind": "missing"})
	require.NoError(t, err)
	assert.Zero(t, total)
}
