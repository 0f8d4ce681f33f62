package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOptions carries the sort/skip/limit portion of a list query.
type FindOptions struct {
	Sort  string
	Order int // 1 ascending, -1 descending
	Skip  int64
	Limit int64
}

// Collection is the document-store surface the repositories are written
// against: one MongoDB collection, or the in-memory equivalent in tests.
// FindOne returns mongo.ErrNoDocuments when nothing matches, for both
// implementations.
type Collection interface {
	InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error)
	FindOne(ctx context.Context, filter bson.M, out any) error
	Find(ctx context.Context, filter bson.M, opts FindOptions, out any) error
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (matched int64, err error)
	DeleteOne(ctx context.Context, filter bson.M) (deleted int64, err error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
	Aggregate(ctx context.Context, pipeline []bson.M, out any) error
}

type mongoCollection struct {
	coll *mongo.Collection
}

// Wrap adapts a driver collection to the Collection interface.
func Wrap(coll *mongo.Collection) Collection {
	return &mongoCollection{coll: coll}
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, nil
	}
	return id, nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, out any) error {
	return c.coll.FindOne(ctx, filter).Decode(out)
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, out any) error {
	findOpts := options.Find()
	if opts.Sort != "" {
		order := opts.Order
		if order == 0 {
			order = 1
		}
		findOpts.SetSort(bson.D{{Key: opts.Sort, Value: order}})
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := c.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (int64, error) {
	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *mongoCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}

func (c *mongoCollection) Aggregate(ctx context.Context, pipeline []bson.M, out any) error {
	cursor, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
