package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

func newRoadmapService() *RoadmapService {
	return NewRoadmapService(repository.New[models.Roadmap](database.NewMemoryCollection(), "title", "description"))
}

func TestRoadmapCreateAssignsNodeIDs(t *testing.T) {
	svc := newRoadmapService()
	ctx := context.Background()

	roadmap := models.NewRoadmap()
	roadmap.Title = "Backend"
	roadmap.Category = "engineering"
	roadmap.Nodes = []models.RoadmapNode{
		{Title: "Basics", Content: strings.Repeat("word ", 1000)},
		{ID: "custom-id", Title: "Advanced"},
	}
	require.NoError(t, svc.Create(ctx, &roadmap))

	assert.NotEmpty(t, roadmap.Nodes[0].ID)
	assert.Equal(t, "custom-id", roadmap.Nodes[1].ID)
	assert.Equal(t, "5 mins", roadmap.ReadingTime)
}

func TestRoadmapNodeLifecycle(t *testing.T) {
	svc := newRoadmapService()
	ctx := context.Background()

	roadmap := models.NewRoadmap()
	roadmap.Title = "Backend"
	roadmap.Category = "engineering"
	require.NoError(t, svc.Create(ctx, &roadmap))
	assert.Equal(t, "0 mins", roadmap.ReadingTime)

	got, err := svc.AddNode(ctx, roadmap.ID.Hex(), models.RoadmapNode{
		Title:   "Basics",
		Content: strings.Repeat("word ", 800),
	})
	require.NoError(t, err)
	require.Len(t, got.Nodes, 1)
	nodeID := got.Nodes[0].ID
	require.NotEmpty(t, nodeID)
	assert.Equal(t, "4 mins", got.ReadingTime)

	got, err = svc.UpdateNode(ctx, roadmap.ID.Hex(), nodeID, models.RoadmapNode{
		Title:   "Basics, revised",
		Content: strings.Repeat("word ", 400),
	})
	require.NoError(t, err)
	assert.Equal(t, "2 mins", got.ReadingTime)
	assert.Equal(t, nodeID, got.Nodes[0].ID, "node keeps its id across updates")

	_, err = svc.UpdateNode(ctx, roadmap.ID.Hex(), "missing", models.RoadmapNode{Title: "X"})
	assert.ErrorIs(t, err, ErrNodeNotFound)

	got, err = svc.DeleteNode(ctx, roadmap.ID.Hex(), nodeID)
	require.NoError(t, err)
	assert.Empty(t, got.Nodes)
	assert.Equal(t, "0 mins", got.ReadingTime)

	_, err = svc.DeleteNode(ctx, roadmap.ID.Hex(), nodeID)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestRoadmapFollow(t *testing.T) {
	svc := newRoadmapService()
	ctx := context.Background()

	roadmap := models.NewRoadmap()
	roadmap.Title = "Backend"
	roadmap.Category = "engineering"
	require.NoError(t, svc.Create(ctx, &roadmap))

	got, err := svc.Follow(ctx, roadmap.ID.Hex(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FollowersCount)

	got, err = svc.Follow(ctx, roadmap.ID.Hex(), -1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.FollowersCount)
}

func TestRoadmapStatistics(t *testing.T) {
	svc := newRoadmapService()
	ctx := context.Background()

	for i, category := range []string{"engineering", "engineering", "design"} {
		roadmap := models.NewRoadmap()
		roadmap.Title = "R"
		roadmap.Category = category
		roadmap.IsPublished = i < 2
		require.NoError(t, svc.Create(ctx, &roadmap))
		require.NoError(t, svc.RecordView(ctx, &roadmap))
	}

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Published)
	assert.Equal(t, int64(3), stats.TotalViews)
	assert.Equal(t, int64(2), stats.ByCategory["engineering"])
	assert.Equal(t, int64(1), stats.ByCategory["design"])
}
