package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

func newDSAService() *DSAService {
	questions := repository.New[models.Question](database.NewMemoryCollection(), "title", "description")
	topics := repository.New[models.Topic](database.NewMemoryCollection(), "name")
	sheets := repository.New[models.Sheet](database.NewMemoryCollection(), "name")
	companies := repository.New[models.Company](database.NewMemoryCollection(), "name")
	return NewDSAService(questions, topics, sheets, companies)
}

func createQuestion(t *testing.T, svc *DSAService, title string, topicIDs ...string) *models.Question {
	t.Helper()
	q := models.NewQuestion()
	q.Title = title
	q.Description = "Solve it"
	q.Difficulty = "easy"
	q.Topics = topicIDs
	require.NoError(t, svc.questions.Create(context.Background(), &q))
	return &q
}

func TestAcceptanceRateDerivation(t *testing.T) {
	svc := newDSAService()
	ctx := context.Background()
	q := createQuestion(t, svc, "Two Sum")

	// No submissions yet: rate is absent, not zero.
	got, err := svc.questions.Get(ctx, q.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, got.AcceptanceRate)

	for _, accepted := range []bool{true, true, true, false} {
		got, err = svc.RecordSubmission(ctx, q.ID.Hex(), accepted)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(4), got.TotalSubmissions)
	assert.Equal(t, int64(3), got.TotalAccepted)
	require.NotNil(t, got.AcceptanceRate)
	assert.Equal(t, 75.0, *got.AcceptanceRate)
}

func TestAcceptanceRateRounding(t *testing.T) {
	svc := newDSAService()
	ctx := context.Background()
	q := createQuestion(t, svc, "Three Sum")

	var got *models.Question
	var err error
	for _, accepted := range []bool{true, false, false} {
		got, err = svc.RecordSubmission(ctx, q.ID.Hex(), accepted)
		require.NoError(t, err)
	}

	require.NotNil(t, got.AcceptanceRate)
	assert.Equal(t, 33.33, *got.AcceptanceRate)
}

func TestTopicQuestionCount(t *testing.T) {
	svc := newDSAService()
	ctx := context.Background()

	topic := models.NewTopic()
	topic.Name = "arrays"
	require.NoError(t, svc.topics.Create(ctx, &topic))
	other := models.NewTopic()
	other.Name = "graphs"
	require.NoError(t, svc.topics.Create(ctx, &other))

	createQuestion(t, svc, "Q1", topic.ID.Hex())
	createQuestion(t, svc, "Q2", topic.ID.Hex(), other.ID.Hex())
	createQuestion(t, svc, "Q3")

	topics := []models.Topic{topic, other}
	require.NoError(t, svc.AttachQuestionCounts(ctx, topics))
	assert.Equal(t, int64(2), topics[0].QuestionCount)
	assert.Equal(t, int64(1), topics[1].QuestionCount)
}

func TestSheetQuestionTracking(t *testing.T) {
	svc := newDSAService()
	ctx := context.Background()

	sheet := models.Sheet{Name: "Starter 50"}
	sheet.TotalQuestions = len(sheet.Questions)
	require.NoError(t, svc.sheets.Create(ctx, &sheet))

	got, err := svc.AddSheetQuestion(ctx, sheet.ID.Hex(), models.SheetQuestion{QuestionID: "q1"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalQuestions)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, 1, got.Questions[0].Order)

	got, err = svc.AddSheetQuestion(ctx, sheet.ID.Hex(), models.SheetQuestion{QuestionID: "q2", Order: 7})
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalQuestions)

	// Same question twice is rejected and the count holds.
	_, err = svc.AddSheetQuestion(ctx, sheet.ID.Hex(), models.SheetQuestion{QuestionID: "q1"})
	assert.ErrorIs(t, err, ErrQuestionInSheet)

	got, err = svc.RemoveSheetQuestion(ctx, sheet.ID.Hex(), "q1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalQuestions)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "q2", got.Questions[0].QuestionID)

	_, err = svc.RemoveSheetQuestion(ctx, sheet.ID.Hex(), "q1")
	assert.ErrorIs(t, err, ErrQuestionNotInSheet)
}

func TestCompanyCounters(t *testing.T) {
	svc := newDSAService()
	ctx := context.Background()

	company := models.NewCompany()
	company.Name = "Acme"
	require.NoError(t, svc.companies.Create(ctx, &company))

	got, err := svc.AdjustCompanyCounter(ctx, company.ID.Hex(), "problem_count", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ProblemCount)

	got, err = svc.AdjustCompanyCounter(ctx, company.ID.Hex(), "job_count", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.JobCount)

	got, err = svc.AdjustCompanyCounter(ctx, company.ID.Hex(), "problem_count", -1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.ProblemCount)

	_, err = svc.AdjustCompanyCounter(ctx, company.ID.Hex(), "views_count", 1)
	assert.ErrorIs(t, err, ErrUnknownCounter)
}

func TestQuestionStatistics(t *testing.T) {
	svc := newDSAService()
	ctx := context.Background()

	topic := models.NewTopic()
	topic.Name = "arrays"
	require.NoError(t, svc.topics.Create(ctx, &topic))

	createQuestion(t, svc, "Q1", topic.ID.Hex())
	q2 := models.NewQuestion()
	q2.Title = "Q2"
	q2.Difficulty = "hard"
	require.NoError(t, svc.questions.Create(ctx, &q2))

	stats, err := svc.QuestionStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(2), stats.Active)
	assert.Equal(t, int64(1), stats.ByDifficulty["easy"])
	assert.Equal(t, int64(1), stats.ByDifficulty["hard"])
	assert.Equal(t, int64(1), stats.ByTopic["arrays"])
}
