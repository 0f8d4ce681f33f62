package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// ArticlesHandler handles article routes.
type ArticlesHandler struct {
	Articles *repository.Repository[models.Article, *models.Article]
}

// Create handles POST /api/admin/articles. The view counter always starts
// at zero, whatever the request carries.
func (h *ArticlesHandler) Create(c *fiber.Ctx) error {
	var article models.Article
	if err := c.BodyParser(&article); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	article.ViewsCount = 0
	if err := h.Articles.Create(c.Context(), &article); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Article created", article)
}

// List handles GET /api/admin/articles
func (h *ArticlesHandler) List(c *fiber.Ctx) error {
	q := h.listQuery(c)
	boolFilter(c, &q, "is_published", "is_published")
	return h.list(c, q)
}

// PublicList handles GET /api/user/articles, restricted to published
// articles.
func (h *ArticlesHandler) PublicList(c *fiber.Ctx) error {
	q := h.listQuery(c)
	q.Eq["is_published"] = true
	return h.list(c, q)
}

func (h *ArticlesHandler) listQuery(c *fiber.Ctx) repository.ListQuery {
	q := parseListQuery(c)
	eqFilter(c, &q, "category", "category")
	eqFilter(c, &q, "tag", "tags")
	regexFilter(c, &q, "author", "author")
	return q
}

func (h *ArticlesHandler) list(c *fiber.Ctx, q repository.ListQuery) error {
	page, err := h.Articles.List(c.Context(), q)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get handles GET /api/admin/articles/:id
func (h *ArticlesHandler) Get(c *fiber.Ctx) error {
	article, err := h.Articles.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, article)
}

// PublicGet handles GET /api/user/articles/:id. Each read of a published
// article bumps its view counter.
func (h *ArticlesHandler) PublicGet(c *fiber.Ctx) error {
	article, err := h.Articles.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.RepoError(c, err)
	}
	if !article.IsPublished {
		return utils.RepoError(c, repository.ErrNotFound)
	}
	if err := h.Articles.Inc(c.Context(), article.ID, "views_count", 1); err != nil {
		return utils.RepoError(c, err)
	}
	article.ViewsCount++
	return utils.Success(c, fiber.StatusOK, article)
}

// Update handles PUT /api/admin/articles/:id
func (h *ArticlesHandler) Update(c *fiber.Ctx) error {
	var upd models.ArticleUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	article, err := h.Articles.Update(c.Context(), c.Params("id"), repository.SetFields(upd))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Article updated", article)
}

// TogglePublish handles PATCH /api/admin/articles/:id/toggle-publish
func (h *ArticlesHandler) TogglePublish(c *fiber.Ctx) error {
	article, err := h.Articles.Toggle(c.Context(), c.Params("id"), "is_published")
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Article publish state toggled", article)
}

// Delete handles DELETE /api/admin/articles/:id
func (h *ArticlesHandler) Delete(c *fiber.Ctx) error {
	if err := h.Articles.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Article deleted", nil)
}
