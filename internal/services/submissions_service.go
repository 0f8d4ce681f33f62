package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

var (
	ErrUnknownContentType  = errors.New("Unknown content type")
	ErrAlreadyReviewed     = errors.New("Submission already reviewed")
	ErrInvalidReviewAction = errors.New("Invalid review action")
)

// SubmissionsService implements the user-content review workflow. Approval
// publishes the submitted payload into the collection registered for its
// content type.
type SubmissionsService struct {
	submissions *repository.Repository[models.ContentSubmission, *models.ContentSubmission]
	targets     map[string]database.Collection
	now         func() time.Time
}

func NewSubmissionsService(
	submissions *repository.Repository[models.ContentSubmission, *models.ContentSubmission],
	targets map[string]database.Collection,
) *SubmissionsService {
	return &SubmissionsService{submissions: submissions, targets: targets, now: time.Now}
}

// Submit stores a pending submission.
func (s *SubmissionsService) Submit(ctx context.Context, contentType string, data bson.M, submittedBy string) (*models.ContentSubmission, error) {
	if _, ok := s.targets[contentType]; !ok {
		return nil, ErrUnknownContentType
	}
	submission := &models.ContentSubmission{
		ContentType: contentType,
		ContentData: data,
		SubmittedBy: submittedBy,
		Status:      models.SubmissionPending,
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// List lists submissions.
func (s *SubmissionsService) List(ctx context.Context, q repository.ListQuery) (*repository.Page[models.ContentSubmission], error) {
	return s.submissions.List(ctx, q)
}

// Get fetches one submission.
func (s *SubmissionsService) Get(ctx context.Context, id string) (*models.ContentSubmission, error) {
	return s.submissions.Get(ctx, id)
}

// Review decides a pending submission. action is "approved" or "rejected";
// approval inserts the payload into the target collection. A decided
// submission cannot be reviewed again.
func (s *SubmissionsService) Review(ctx context.Context, id, reviewerID, action, notes string) (*models.ContentSubmission, error) {
	if action != models.SubmissionApproved && action != models.SubmissionRejected {
		return nil, ErrInvalidReviewAction
	}

	submission, err := s.submissions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission.Status != models.SubmissionPending {
		return nil, ErrAlreadyReviewed
	}

	now := s.now().UTC()
	if action == models.SubmissionApproved {
		target, ok := s.targets[submission.ContentType]
		if !ok {
			return nil, ErrUnknownContentType
		}
		payload := bson.M{}
		for k, v := range submission.ContentData {
			payload[k] = v
		}
		payload["created_at"] = now
		payload["updated_at"] = now
		if _, err := target.InsertOne(ctx, payload); err != nil {
			return nil, err
		}
	}

	return s.submissions.Update(ctx, id, bson.M{
		"status":       action,
		"reviewed_by":  reviewerID,
		"reviewed_at":  now,
		"review_notes": notes,
	})
}

// SubmissionStats summarizes the review queue.
type SubmissionStats struct {
	Total         int64                       `json:"total"`
	Pending       int64                       `json:"pending"`
	Approved      int64                       `json:"approved"`
	Rejected      int64                       `json:"rejected"`
	ByContentType map[string]map[string]int64 `json:"by_content_type"`
}

// Statistics computes fresh counts over submissions, broken down by status
// and, per status, by content type.
func (s *SubmissionsService) Statistics(ctx context.Context) (*SubmissionStats, error) {
	total, err := s.submissions.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	stats := &SubmissionStats{Total: total, ByContentType: make(map[string]map[string]int64)}
	for _, status := range []string{models.SubmissionPending, models.SubmissionApproved, models.SubmissionRejected} {
		n, err := s.submissions.Count(ctx, bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		switch status {
		case models.SubmissionPending:
			stats.Pending = n
		case models.SubmissionApproved:
			stats.Approved = n
		case models.SubmissionRejected:
			stats.Rejected = n
		}

		byType, err := repository.CountBy(ctx, s.submissions.Collection(), "content_type", bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		for _, g := range byType {
			if stats.ByContentType[g.Key] == nil {
				stats.ByContentType[g.Key] = make(map[string]int64)
			}
			stats.ByContentType[g.Key][status] = g.Count
		}
	}
	return stats, nil
}
