package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

var ErrNodeNotFound = errors.New("Node not found")

// RoadmapService implements roadmap node management and the derived
// reading-time bookkeeping.
type RoadmapService struct {
	roadmaps *repository.Repository[models.Roadmap, *models.Roadmap]
	now      func() time.Time
}

func NewRoadmapService(roadmaps *repository.Repository[models.Roadmap, *models.Roadmap]) *RoadmapService {
	return &RoadmapService{roadmaps: roadmaps, now: time.Now}
}

// Create stores a new roadmap, assigning ids to nodes that came without
// one and computing the initial reading time.
func (s *RoadmapService) Create(ctx context.Context, roadmap *models.Roadmap) error {
	assignNodeIDs(roadmap.Nodes)
	roadmap.ReadingTime = ReadingTime(roadmap.Nodes)
	return s.roadmaps.Create(ctx, roadmap)
}

// Update applies a partial update. When the node list changes, node ids
// are assigned and the reading time is recomputed.
func (s *RoadmapService) Update(ctx context.Context, id string, upd models.RoadmapUpdate) (*models.Roadmap, error) {
	fields := repository.SetFields(upd)
	if upd.Nodes != nil {
		assignNodeIDs(upd.Nodes)
		fields["nodes"] = upd.Nodes
		fields["reading_time"] = ReadingTime(upd.Nodes)
	}
	return s.roadmaps.Update(ctx, id, fields)
}

// AddNode appends a node to the roadmap's graph.
func (s *RoadmapService) AddNode(ctx context.Context, id string, node models.RoadmapNode) (*models.Roadmap, error) {
	roadmap, err := s.roadmaps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	nodes := append(roadmap.Nodes, node)
	return s.saveNodes(ctx, id, nodes)
}

// UpdateNode replaces the node with the given node id.
func (s *RoadmapService) UpdateNode(ctx context.Context, id, nodeID string, node models.RoadmapNode) (*models.Roadmap, error) {
	roadmap, err := s.roadmaps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	nodes := roadmap.Nodes
	found := false
	for i := range nodes {
		if nodes[i].ID == nodeID {
			node.ID = nodeID
			nodes[i] = node
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNodeNotFound
	}
	return s.saveNodes(ctx, id, nodes)
}

// DeleteNode removes the node with the given node id. Links from other
// nodes to the removed id are left in place, matching the loose
// referential model of the graph.
func (s *RoadmapService) DeleteNode(ctx context.Context, id, nodeID string) (*models.Roadmap, error) {
	roadmap, err := s.roadmaps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	nodes := make([]models.RoadmapNode, 0, len(roadmap.Nodes))
	found := false
	for _, n := range roadmap.Nodes {
		if n.ID == nodeID {
			found = true
			continue
		}
		nodes = append(nodes, n)
	}
	if !found {
		return nil, ErrNodeNotFound
	}
	return s.saveNodes(ctx, id, nodes)
}

func (s *RoadmapService) saveNodes(ctx context.Context, id string, nodes []models.RoadmapNode) (*models.Roadmap, error) {
	return s.roadmaps.Update(ctx, id, bson.M{
		"nodes":        nodes,
		"reading_time": ReadingTime(nodes),
	})
}

// RecordView bumps the view counter on a public read.
func (s *RoadmapService) RecordView(ctx context.Context, roadmap *models.Roadmap) error {
	return s.roadmaps.Inc(ctx, roadmap.ID, "views_count", 1)
}

// Follow moves the follower counter by delta (+1 follow, -1 unfollow).
func (s *RoadmapService) Follow(ctx context.Context, id string, delta int64) (*models.Roadmap, error) {
	roadmap, err := s.roadmaps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.roadmaps.Inc(ctx, roadmap.ID, "followers_count", delta); err != nil {
		return nil, err
	}
	return s.roadmaps.Get(ctx, id)
}

// RoadmapStats summarizes the roadmap catalog.
type RoadmapStats struct {
	Total      int64            `json:"total"`
	Published  int64            `json:"published"`
	TotalViews int64            `json:"total_views"`
	ByCategory map[string]int64 `json:"by_category"`
}

// Statistics computes fresh rollups over roadmaps.
func (s *RoadmapService) Statistics(ctx context.Context) (*RoadmapStats, error) {
	total, err := s.roadmaps.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	published, err := s.roadmaps.Count(ctx, bson.M{"is_published": true})
	if err != nil {
		return nil, err
	}
	views, err := repository.SumOf(ctx, s.roadmaps.Collection(), "views_count", nil)
	if err != nil {
		return nil, err
	}
	byCategory, err := repository.CountBy(ctx, s.roadmaps.Collection(), "category", nil)
	if err != nil {
		return nil, err
	}

	return &RoadmapStats{
		Total:      total,
		Published:  published,
		TotalViews: views,
		ByCategory: repository.GroupCountsToMap(byCategory),
	}, nil
}

func assignNodeIDs(nodes []models.RoadmapNode) {
	for i := range nodes {
		if nodes[i].ID == "" {
			nodes[i].ID = uuid.NewString()
		}
	}
}
