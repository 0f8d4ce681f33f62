package services

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

var (
	ErrQuestionInSheet    = errors.New("Question already in sheet")
	ErrQuestionNotInSheet = errors.New("Question not in sheet")
	ErrUnknownCounter     = errors.New("Unknown counter field")
)

// DSAService implements the operations on practice questions, sheets,
// topics and companies that go beyond plain CRUD.
type DSAService struct {
	questions *repository.Repository[models.Question, *models.Question]
	topics    *repository.Repository[models.Topic, *models.Topic]
	sheets    *repository.Repository[models.Sheet, *models.Sheet]
	companies *repository.Repository[models.Company, *models.Company]
	now       func() time.Time
}

func NewDSAService(
	questions *repository.Repository[models.Question, *models.Question],
	topics *repository.Repository[models.Topic, *models.Topic],
	sheets *repository.Repository[models.Sheet, *models.Sheet],
	companies *repository.Repository[models.Company, *models.Company],
) *DSAService {
	return &DSAService{
		questions: questions,
		topics:    topics,
		sheets:    sheets,
		companies: companies,
		now:       time.Now,
	}
}

// RecordSubmission counts one submission against a question and refreshes
// its acceptance rate. The counters move atomically; the derived rate is a
// read-modify-write and may briefly lag under concurrent submissions.
func (s *DSAService) RecordSubmission(ctx context.Context, questionID string, accepted bool) (*models.Question, error) {
	question, err := s.questions.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}

	inc := bson.M{"total_submissions": 1}
	if accepted {
		inc["total_accepted"] = 1
	}
	_, err = s.questions.Collection().UpdateOne(ctx, bson.M{"_id": question.ID}, bson.M{"$inc": inc})
	if err != nil {
		return nil, err
	}

	question, err = s.questions.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.TotalSubmissions > 0 {
		rate := math.Round(float64(question.TotalAccepted)/float64(question.TotalSubmissions)*100*100) / 100
		return s.questions.Update(ctx, questionID, bson.M{"acceptance_rate": rate})
	}
	return question, nil
}

// QuestionCount counts all questions tagged with the topic, active or not.
func (s *DSAService) QuestionCount(ctx context.Context, topicID string) (int64, error) {
	return s.questions.Count(ctx, bson.M{"topics": topicID})
}

// AttachQuestionCounts fills the computed question_count on each topic.
func (s *DSAService) AttachQuestionCounts(ctx context.Context, topics []models.Topic) error {
	for i := range topics {
		n, err := s.QuestionCount(ctx, topics[i].ID.Hex())
		if err != nil {
			return err
		}
		topics[i].QuestionCount = n
	}
	return nil
}

// AddSheetQuestion appends a question to a sheet's ordered list. The
// question list is rewritten while total_questions moves by atomic
// increment.
func (s *DSAService) AddSheetQuestion(ctx context.Context, sheetID string, entry models.SheetQuestion) (*models.Sheet, error) {
	sheet, err := s.sheets.Get(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	for _, q := range sheet.Questions {
		if q.QuestionID == entry.QuestionID {
			return nil, ErrQuestionInSheet
		}
	}
	if entry.Order == 0 {
		entry.Order = len(sheet.Questions) + 1
	}

	questions := append(sheet.Questions, entry)
	_, err = s.sheets.Collection().UpdateOne(ctx, bson.M{"_id": sheet.ID}, bson.M{
		"$set": bson.M{"questions": questions, "updated_at": s.now().UTC()},
		"$inc": bson.M{"total_questions": 1},
	})
	if err != nil {
		return nil, err
	}
	return s.sheets.Get(ctx, sheetID)
}

// RemoveSheetQuestion drops a question from a sheet's list.
func (s *DSAService) RemoveSheetQuestion(ctx context.Context, sheetID, questionID string) (*models.Sheet, error) {
	sheet, err := s.sheets.Get(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	questions := make([]models.SheetQuestion, 0, len(sheet.Questions))
	found := false
	for _, q := range sheet.Questions {
		if q.QuestionID == questionID {
			found = true
			continue
		}
		questions = append(questions, q)
	}
	if !found {
		return nil, ErrQuestionNotInSheet
	}

	_, err = s.sheets.Collection().UpdateOne(ctx, bson.M{"_id": sheet.ID}, bson.M{
		"$set": bson.M{"questions": questions, "updated_at": s.now().UTC()},
		"$inc": bson.M{"total_questions": -1},
	})
	if err != nil {
		return nil, err
	}
	return s.sheets.Get(ctx, sheetID)
}

// AdjustCompanyCounter moves one of the two explicitly maintained company
// counters. These are never recomputed from the referencing collections.
func (s *DSAService) AdjustCompanyCounter(ctx context.Context, companyID, field string, delta int64) (*models.Company, error) {
	if field != "problem_count" && field != "job_count" {
		return nil, ErrUnknownCounter
	}
	company, err := s.companies.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := s.companies.Inc(ctx, company.ID, field, delta); err != nil {
		return nil, err
	}
	return s.companies.Get(ctx, companyID)
}

// QuestionStats summarizes the question bank.
type QuestionStats struct {
	Total        int64            `json:"total"`
	Active       int64            `json:"active"`
	ByDifficulty map[string]int64 `json:"by_difficulty"`
	ByTopic      map[string]int64 `json:"by_topic"`
}

// QuestionStatistics computes fresh counts over the question bank.
func (s *DSAService) QuestionStatistics(ctx context.Context) (*QuestionStats, error) {
	total, err := s.questions.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	active, err := s.questions.Count(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	byDifficulty, err := repository.CountBy(ctx, s.questions.Collection(), "difficulty", nil)
	if err != nil {
		return nil, err
	}

	byTopic := make(map[string]int64)
	topics, err := s.topics.List(ctx, repository.ListQuery{Sort: "name", Order: 1, Limit: 1000})
	if err != nil {
		return nil, err
	}
	for _, t := range topics.Items {
		n, err := s.QuestionCount(ctx, t.ID.Hex())
		if err != nil {
			return nil, err
		}
		byTopic[t.Name] = n
	}

	return &QuestionStats{
		Total:        total,
		Active:       active,
		ByDifficulty: repository.GroupCountsToMap(byDifficulty),
		ByTopic:      byTopic,
	}, nil
}

// CompanyStats summarizes the company directory.
type CompanyStats struct {
	Total         int64            `json:"total"`
	Active        int64            `json:"active"`
	TotalProblems int64            `json:"total_problems"`
	TotalJobs     int64            `json:"total_jobs"`
	TopCompanies  []models.Company `json:"top_companies"`
}

// CompanyStatistics computes fresh rollups over companies; the per-company
// counters themselves stay incrementally maintained.
func (s *DSAService) CompanyStatistics(ctx context.Context, topN int64) (*CompanyStats, error) {
	total, err := s.companies.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	active, err := s.companies.Count(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	problems, err := repository.SumOf(ctx, s.companies.Collection(), "problem_count", nil)
	if err != nil {
		return nil, err
	}
	jobs, err := repository.SumOf(ctx, s.companies.Collection(), "job_count", nil)
	if err != nil {
		return nil, err
	}

	if topN <= 0 {
		topN = 5
	}
	top, err := s.companies.List(ctx, repository.ListQuery{
		Eq:    bson.M{"is_active": true},
		Sort:  "problem_count",
		Order: -1,
		Limit: topN,
	})
	if err != nil {
		return nil, err
	}

	return &CompanyStats{
		Total:         total,
		Active:        active,
		TotalProblems: problems,
		TotalJobs:     jobs,
		TopCompanies:  top.Items,
	}, nil
}
