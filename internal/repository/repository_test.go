package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

func newJobRepo() *repository.Repository[models.Job, *models.Job] {
	return repository.New[models.Job](database.NewMemoryCollection(), "title", "company", "description")
}

func createJob(t *testing.T, repo *repository.Repository[models.Job, *models.Job], title, company string) *models.Job {
	t.Helper()
	job := models.NewJob()
	job.Title = title
	job.Company = company
	job.Description = "Build things"
	job.Location = "Remote"
	job.JobType = "full_time"
	job.Category = "engineering"
	require.NoError(t, repo.Create(context.Background(), &job))
	return &job
}

func TestCreateRoundTrip(t *testing.T) {
	repo := newJobRepo()
	job := createJob(t, repo, "Backend Engineer", "Acme")

	require.False(t, job.ID.IsZero())

	got, err := repo.Get(context.Background(), job.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "USD", got.Currency)
	assert.True(t, got.IsActive)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt), "created_at and updated_at must match on a fresh document")
}

func TestGetErrors(t *testing.T) {
	repo := newJobRepo()

	_, err := repo.Get(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, repository.ErrInvalidID)

	_, err = repo.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	repo := newJobRepo()
	job := createJob(t, repo, "Backend Engineer", "Acme")

	got, err := repo.Update(context.Background(), job.ID.Hex(), bson.M{"title": "Platform Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", got.Title)
	assert.Equal(t, "Acme", got.Company)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestUpdateNoFields(t *testing.T) {
	repo := newJobRepo()
	job := createJob(t, repo, "Backend Engineer", "Acme")

	_, err := repo.Update(context.Background(), job.ID.Hex(), bson.M{})
	assert.ErrorIs(t, err, repository.ErrNoUpdate)
}

func TestUpdateMissing(t *testing.T) {
	repo := newJobRepo()

	_, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), bson.M{"title": "X"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	repo := newJobRepo()
	job := createJob(t, repo, "Backend Engineer", "Acme")

	require.NoError(t, repo.Delete(context.Background(), job.ID.Hex()))

	_, err := repo.Get(context.Background(), job.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(context.Background(), job.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestToggleTwiceRestores(t *testing.T) {
	repo := newJobRepo()
	job := createJob(t, repo, "Backend Engineer", "Acme")
	require.True(t, job.IsActive)

	got, err := repo.Toggle(context.Background(), job.ID.Hex(), "is_active")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = repo.Toggle(context.Background(), job.ID.Hex(), "is_active")
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestListPaginationCoversAll(t *testing.T) {
	repo := newJobRepo()
	titles := []string{"A", "B", "C", "D", "E"}
	for _, title := range titles {
		createJob(t, repo, title, "Acme")
	}

	seen := map[string]bool{}
	for skip := int64(0); skip < 5; skip += 2 {
		page, err := repo.List(context.Background(), repository.ListQuery{Skip: skip, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, skip/2+1, page.Page)
		for _, item := range page.Items {
			assert.False(t, seen[item.Title], "item %q repeated across pages", item.Title)
			seen[item.Title] = true
		}
	}
	assert.Len(t, seen, 5)
}

func TestListFilters(t *testing.T) {
	repo := newJobRepo()
	createJob(t, repo, "Backend Engineer", "Acme")
	createJob(t, repo, "Frontend Engineer", "Globex")
	job := createJob(t, repo, "Data Analyst", "Acme")
	_, err := repo.Update(context.Background(), job.ID.Hex(), bson.M{"is_active": false})
	require.NoError(t, err)

	page, err := repo.List(context.Background(), repository.ListQuery{Search: "engineer", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = repo.List(context.Background(), repository.ListQuery{
		Eq:    bson.M{"is_active": true},
		Regex: map[string]string{"company": "acme"},
		Limit: 10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Backend Engineer", page.Items[0].Title)
}

func TestListDefaultSortNewestFirst(t *testing.T) {
	repo := newJobRepo()
	createJob(t, repo, "First", "Acme")
	createJob(t, repo, "Second", "Acme")

	page, err := repo.List(context.Background(), repository.ListQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	// Timestamps may collide at millisecond precision; both orders of a
	// tie are acceptable, but the newest document must not be last when
	// times differ.
	if page.Items[0].CreatedAt.After(page.Items[1].CreatedAt) {
		assert.Equal(t, "Second", page.Items[0].Title)
	}
}

func TestInc(t *testing.T) {
	repo := newJobRepo()
	job := createJob(t, repo, "Backend Engineer", "Acme")

	require.NoError(t, repo.Inc(context.Background(), job.ID, "salary_min", 1000))
	require.NoError(t, repo.Inc(context.Background(), job.ID, "salary_min", 500))

	got, err := repo.Get(context.Background(), job.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1500, got.SalaryMin)
}

func TestSetFields(t *testing.T) {
	title := "New Title"
	active := false

	fields := repository.SetFields(models.JobUpdate{
		Title:          &title,
		IsActive:       &active,
		SkillsRequired: []string{"go"},
	})
	assert.Equal(t, "New Title", fields["title"])
	assert.Equal(t, false, fields["is_active"])
	assert.Equal(t, []string{"go"}, fields["skills_required"])
	assert.NotContains(t, fields, "company")
	assert.NotContains(t, fields, "salary_min")

	assert.Empty(t, repository.SetFields(models.JobUpdate{}))
}
