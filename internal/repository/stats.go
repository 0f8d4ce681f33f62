package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/database"
)

// GroupCount is one bucket of a grouped count.
type GroupCount struct {
	Key   string `bson:"-" json:"key"`
	ID    any    `bson:"_id" json:"-"`
	Count int64  `bson:"count" json:"count"`
}

// CountBy groups documents matching match by field and counts each bucket.
func CountBy(ctx context.Context, coll database.Collection, field string, match bson.M) ([]GroupCount, error) {
	pipeline := []bson.M{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.M{"$match": match})
	}
	pipeline = append(pipeline,
		bson.M{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
		bson.M{"$sort": bson.M{"count": -1}},
	)

	var groups []GroupCount
	if err := coll.Aggregate(ctx, pipeline, &groups); err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == nil {
			groups[i].Key = "unknown"
		} else {
			groups[i].Key = fmt.Sprintf("%v", groups[i].ID)
		}
	}
	return groups, nil
}

// SumOf totals the named numeric field across documents matching match.
func SumOf(ctx context.Context, coll database.Collection, field string, match bson.M) (int64, error) {
	pipeline := []bson.M{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.M{"$match": match})
	}
	pipeline = append(pipeline, bson.M{"$group": bson.M{
		"_id":   nil,
		"total": bson.M{"$sum": "$" + field},
	}})

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := coll.Aggregate(ctx, pipeline, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

// GroupCountsToMap flattens grouped counts into a key->count map.
func GroupCountsToMap(groups []GroupCount) map[string]int64 {
	m := make(map[string]int64, len(groups))
	for _, g := range groups {
		m[g.Key] = g.Count
	}
	return m
}
