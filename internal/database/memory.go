package database

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryCollection is an in-memory Collection implementation covering the
// query/update operator subset the repositories emit ($or, $regex, $in,
// $set, $inc, $match/$group/$sort/$limit). It backs the unit tests the same
// way an in-memory database would, without a running MongoDB.
type MemoryCollection struct {
	mu   sync.RWMutex
	docs []bson.M
}

// NewMemoryCollection returns an empty in-memory collection.
func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{}
}

func (c *MemoryCollection) InsertOne(_ context.Context, doc any) (primitive.ObjectID, error) {
	m, err := toDocument(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := m["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		m["_id"] = id
	}

	c.mu.Lock()
	c.docs = append(c.docs, m)
	c.mu.Unlock()
	return id, nil
}

func (c *MemoryCollection) FindOne(_ context.Context, filter bson.M, out any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, d := range c.docs {
		if matchFilter(d, filter) {
			return decodeDocument(d, out)
		}
	}
	return mongo.ErrNoDocuments
}

func (c *MemoryCollection) Find(_ context.Context, filter bson.M, opts FindOptions, out any) error {
	c.mu.RLock()
	matched := make([]bson.M, 0)
	for _, d := range c.docs {
		if matchFilter(d, filter) {
			matched = append(matched, d)
		}
	}
	c.mu.RUnlock()

	if opts.Sort != "" {
		sortDocuments(matched, opts.Sort, opts.Order)
	}
	if opts.Skip > 0 {
		if opts.Skip >= int64(len(matched)) {
			matched = nil
		} else {
			matched = matched[opts.Skip:]
		}
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	return decodeDocuments(matched, out)
}

func (c *MemoryCollection) UpdateOne(_ context.Context, filter bson.M, update bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.docs {
		if matchFilter(d, filter) {
			applyUpdate(d, update)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *MemoryCollection) DeleteOne(_ context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, d := range c.docs {
		if matchFilter(d, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *MemoryCollection) CountDocuments(_ context.Context, filter bson.M) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int64
	for _, d := range c.docs {
		if matchFilter(d, filter) {
			n++
		}
	}
	return n, nil
}

func (c *MemoryCollection) Aggregate(_ context.Context, pipeline []bson.M, out any) error {
	c.mu.RLock()
	docs := make([]bson.M, len(c.docs))
	copy(docs, c.docs)
	c.mu.RUnlock()

	for _, stage := range pipeline {
		for op, arg := range stage {
			switch op {
			case "$match":
				filter, _ := arg.(bson.M)
				kept := docs[:0:0]
				for _, d := range docs {
					if matchFilter(d, filter) {
						kept = append(kept, d)
					}
				}
				docs = kept
			case "$group":
				spec, _ := arg.(bson.M)
				docs = groupDocuments(docs, spec)
			case "$sort":
				for field, order := range arg.(bson.M) {
					o, _ := toInt64(order)
					sortDocuments(docs, field, int(o))
				}
			case "$limit":
				n, _ := toInt64(arg)
				if n > 0 && int64(len(docs)) > n {
					docs = docs[:n]
				}
			default:
				return fmt.Errorf("unsupported pipeline stage %q", op)
			}
		}
	}

	return decodeDocuments(docs, out)
}

// groupDocuments implements $group with "_id" of nil or "$field" and
// accumulators of the form {"$sum": 1} or {"$sum": "$field"}.
func groupDocuments(docs []bson.M, spec bson.M) []bson.M {
	type bucket struct {
		id   any
		sums map[string]float64
	}
	order := make([]string, 0)
	buckets := make(map[string]*bucket)

	for _, d := range docs {
		var idVal any
		if ref, ok := spec["_id"].(string); ok && strings.HasPrefix(ref, "$") {
			idVal = d[ref[1:]]
		}
		key := fmt.Sprintf("%v", idVal)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{id: idVal, sums: make(map[string]float64)}
			buckets[key] = b
			order = append(order, key)
		}
		for name, acc := range spec {
			if name == "_id" {
				continue
			}
			sumSpec, ok := acc.(bson.M)
			if !ok {
				continue
			}
			switch arg := sumSpec["$sum"].(type) {
			case string:
				if strings.HasPrefix(arg, "$") {
					if v, ok := toFloat64(d[arg[1:]]); ok {
						b.sums[name] += v
					}
				}
			default:
				if v, ok := toFloat64(arg); ok {
					b.sums[name] += v
				}
			}
		}
	}

	out := make([]bson.M, 0, len(buckets))
	for _, key := range order {
		b := buckets[key]
		doc := bson.M{"_id": b.id}
		for name, v := range b.sums {
			if v == float64(int64(v)) {
				doc[name] = int64(v)
			} else {
				doc[name] = v
			}
		}
		out = append(out, doc)
	}
	return out
}

func matchFilter(doc bson.M, filter bson.M) bool {
	for key, cond := range filter {
		if key == "$or" {
			if !matchOr(doc, cond) {
				return false
			}
			continue
		}
		if !matchValue(doc[key], cond) {
			return false
		}
	}
	return true
}

func matchOr(doc bson.M, cond any) bool {
	switch branches := cond.(type) {
	case []bson.M:
		for _, b := range branches {
			if matchFilter(doc, b) {
				return true
			}
		}
	case bson.A:
		for _, b := range branches {
			if m, ok := b.(bson.M); ok && matchFilter(doc, m) {
				return true
			}
		}
	}
	return false
}

func matchValue(docVal any, cond any) bool {
	if ops, ok := cond.(bson.M); ok {
		for op, arg := range ops {
			switch op {
			case "$regex":
				if !matchRegex(docVal, fmt.Sprintf("%v", arg)) {
					return false
				}
			case "$options":
				// matchRegex already matches case-insensitively.
			case "$in":
				if !matchIn(docVal, arg) {
					return false
				}
			case "$gte":
				if compareValues(docVal, arg) < 0 {
					return false
				}
			case "$lte":
				if compareValues(docVal, arg) > 0 {
					return false
				}
			case "$ne":
				if equalOrContains(docVal, arg) {
					return false
				}
			default:
				return false
			}
		}
		return true
	}
	return equalOrContains(docVal, cond)
}

// equalOrContains mirrors MongoDB equality: an array field matches a scalar
// condition when any element equals it.
func equalOrContains(docVal any, want any) bool {
	if arr, ok := docVal.(bson.A); ok {
		if _, wantArr := want.(bson.A); !wantArr {
			for _, el := range arr {
				if equalValues(el, want) {
					return true
				}
			}
			return false
		}
	}
	return equalValues(docVal, want)
}

func matchRegex(docVal any, pattern string) bool {
	re, err := regexp.Compile("(?i)" + pattern)
	if arr, ok := docVal.(bson.A); ok {
		for _, el := range arr {
			s := fmt.Sprintf("%v", el)
			if err == nil && re.MatchString(s) {
				return true
			}
			if err != nil && strings.Contains(strings.ToLower(s), strings.ToLower(pattern)) {
				return true
			}
		}
		return false
	}
	s, ok := docVal.(string)
	if !ok {
		return false
	}
	if err != nil {
		return strings.Contains(strings.ToLower(s), strings.ToLower(pattern))
	}
	return re.MatchString(s)
}

func matchIn(docVal any, arg any) bool {
	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if equalOrContains(docVal, rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if oa, ok := a.(primitive.ObjectID); ok {
		ob, ok := b.(primitive.ObjectID)
		return ok && oa == ob
	}
	if fa, ok := toFloat64(a); ok {
		fb, ok := toFloat64(b)
		return ok && fa == fb
	}
	if ta, ok := toTime(a); ok {
		tb, ok := toTime(b)
		return ok && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}

func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if fa, ok := toFloat64(a); ok {
		if fb, ok := toFloat64(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if ta, ok := toTime(a); ok {
		if tb, ok := toTime(b); ok {
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

func sortDocuments(docs []bson.M, field string, order int) {
	if order == 0 {
		order = 1
	}
	sort.SliceStable(docs, func(i, j int) bool {
		cmp := compareValues(docs[i][field], docs[j][field])
		if order < 0 {
			return cmp > 0
		}
		return cmp < 0
	})
}

func applyUpdate(doc bson.M, update bson.M) {
	if set, ok := update["$set"].(bson.M); ok {
		for k, v := range set {
			doc[k] = normalizeValue(v)
		}
	}
	if inc, ok := update["$inc"].(bson.M); ok {
		for k, v := range inc {
			cur, _ := toInt64(doc[k])
			delta, _ := toInt64(v)
			doc[k] = cur + delta
		}
	}
}

// normalizeValue round-trips a value through BSON so stored documents look
// the way the driver would return them (structs become bson.M, time.Time
// becomes primitive.DateTime, and so on).
func normalizeValue(v any) any {
	raw, err := bson.Marshal(bson.M{"v": v})
	if err != nil {
		return v
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return v
	}
	return m["v"]
}

func toDocument(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeDocument(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func decodeDocuments(docs []bson.M, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("out must be a pointer to a slice, got %T", out)
	}
	slice := rv.Elem()
	elemType := slice.Type().Elem()

	result := reflect.MakeSlice(slice.Type(), 0, len(docs))
	for _, d := range docs {
		ev := reflect.New(elemType)
		if err := decodeDocument(d, ev.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, ev.Elem())
	}
	slice.Set(result)
	return nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	f, ok := toFloat64(v)
	return int64(f), ok
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}
