package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/repository"
)

// parseListQuery reads the shared pagination, search and sort parameters.
func parseListQuery(c *fiber.Ctx) repository.ListQuery {
	q := repository.ListQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort_by"),
		Skip:   int64(c.QueryInt("skip", 0)),
		Limit:  int64(c.QueryInt("limit", 10)),
		Eq:     bson.M{},
		Regex:  map[string]string{},
	}
	if q.Sort != "" {
		if c.Query("sort_order", "desc") == "asc" {
			q.Order = 1
		} else {
			q.Order = -1
		}
	}
	return q
}

// eqFilter copies a query parameter into an exact-match filter when set.
func eqFilter(c *fiber.Ctx, q *repository.ListQuery, param, field string) {
	if v := c.Query(param); v != "" {
		q.Eq[field] = v
	}
}

// regexFilter copies a query parameter into a case-insensitive substring
// filter when set.
func regexFilter(c *fiber.Ctx, q *repository.ListQuery, param, field string) {
	if v := c.Query(param); v != "" {
		q.Regex[field] = v
	}
}

// boolFilter copies a true/false query parameter into an exact-match filter
// when set.
func boolFilter(c *fiber.Ctx, q *repository.ListQuery, param, field string) {
	switch c.Query(param) {
	case "true":
		q.Eq[field] = true
	case "false":
		q.Eq[field] = false
	}
}
