package repository

import (
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ListQuery describes a filtered, paginated list request. All conditions
// are AND-combined; Search expands into a case-insensitive $or over the
// entity's search fields.
type ListQuery struct {
	Search string
	Eq     bson.M
	In     map[string][]string
	Regex  map[string]string
	Sort   string
	Order  int
	Skip   int64
	Limit  int64
}

// Filter builds the MongoDB filter document for the query. searchFields
// names the fields the free-text Search term is matched against.
func (q ListQuery) Filter(searchFields []string) bson.M {
	filter := bson.M{}
	for k, v := range q.Eq {
		filter[k] = v
	}
	for k, vals := range q.In {
		if len(vals) > 0 {
			filter[k] = bson.M{"$in": vals}
		}
	}
	for k, pattern := range q.Regex {
		if pattern != "" {
			filter[k] = bson.M{"$regex": pattern, "$options": "i"}
		}
	}
	if q.Search != "" && len(searchFields) > 0 {
		or := make([]bson.M, 0, len(searchFields))
		for _, f := range searchFields {
			or = append(or, bson.M{f: bson.M{"$regex": q.Search, "$options": "i"}})
		}
		filter["$or"] = or
	}
	return filter
}

// Page is one page of list results. Page number is derived from skip and
// limit, so skip=20 limit=10 reports page 3.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// SetFields collects the non-nil fields of a partial-update struct into a
// $set document keyed by bson tag. Update structs use pointer fields so an
// omitted JSON key stays nil and is left out of the update.
func SetFields(v any) bson.M {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return bson.M{}
		}
		rv = rv.Elem()
	}

	fields := bson.M{}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag.Get("bson"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.Ptr:
			if !fv.IsNil() {
				fields[tag] = fv.Elem().Interface()
			}
		case reflect.Slice, reflect.Map:
			if !fv.IsNil() {
				fields[tag] = fv.Interface()
			}
		default:
			if !fv.IsZero() {
				fields[tag] = fv.Interface()
			}
		}
	}
	return fields
}
