package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

var ErrAlreadySent = errors.New("Notification already sent")

// NotificationsService manages queued push notifications. Delivery is a
// stub that resolves the recipient count; scheduled_at stays data only and
// no background worker exists.
type NotificationsService struct {
	notifications *repository.Repository[models.PushNotification, *models.PushNotification]
	users         *repository.Repository[models.AppUser, *models.AppUser]
	admins        *repository.Repository[models.AdminUser, *models.AdminUser]
	now           func() time.Time
}

func NewNotificationsService(
	notifications *repository.Repository[models.PushNotification, *models.PushNotification],
	users *repository.Repository[models.AppUser, *models.AppUser],
	admins *repository.Repository[models.AdminUser, *models.AdminUser],
) *NotificationsService {
	return &NotificationsService{
		notifications: notifications,
		users:         users,
		admins:        admins,
		now:           time.Now,
	}
}

// Create queues a notification in pending state.
func (s *NotificationsService) Create(ctx context.Context, n *models.PushNotification) error {
	if n.Target == "" {
		n.Target = models.TargetAll
	}
	n.Status = models.NotificationPending
	n.SentAt = nil
	n.SentCount = 0
	n.FailedCount = 0
	return s.notifications.Create(ctx, n)
}

// List lists notifications.
func (s *NotificationsService) List(ctx context.Context, q repository.ListQuery) (*repository.Page[models.PushNotification], error) {
	return s.notifications.List(ctx, q)
}

// Get fetches one notification.
func (s *NotificationsService) Get(ctx context.Context, id string) (*models.PushNotification, error) {
	return s.notifications.Get(ctx, id)
}

// Delete removes a notification.
func (s *NotificationsService) Delete(ctx context.Context, id string) error {
	return s.notifications.Delete(ctx, id)
}

// Send delivers a pending notification. The delivery itself is mocked: the
// recipient count is resolved from the target and recorded as sent.
func (s *NotificationsService) Send(ctx context.Context, id string) (*models.PushNotification, error) {
	n, err := s.notifications.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Status == models.NotificationSent {
		return nil, ErrAlreadySent
	}

	recipients, err := s.recipientCount(ctx, n)
	if err != nil {
		return nil, err
	}

	return s.notifications.Update(ctx, id, bson.M{
		"status":       models.NotificationSent,
		"sent_at":      s.now().UTC(),
		"sent_count":   recipients,
		"failed_count": int64(0),
	})
}

func (s *NotificationsService) recipientCount(ctx context.Context, n *models.PushNotification) (int64, error) {
	switch n.Target {
	case models.TargetSpecificUsers:
		return int64(len(n.TargetIDs)), nil
	case models.TargetAdmins:
		return s.admins.Count(ctx, bson.M{"is_active": true})
	default:
		return s.users.Count(ctx, bson.M{"is_active": true})
	}
}

// NotificationStats summarizes the notification queue.
type NotificationStats struct {
	Total          int64 `json:"total"`
	Pending        int64 `json:"pending"`
	Sent           int64 `json:"sent"`
	Failed         int64 `json:"failed"`
	RecipientsHit  int64 `json:"recipients_reached"`
	DeliveryFailed int64 `json:"delivery_failures"`
}

// Statistics computes fresh counts over notifications.
func (s *NotificationsService) Statistics(ctx context.Context) (*NotificationStats, error) {
	total, err := s.notifications.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	pending, err := s.notifications.Count(ctx, bson.M{"status": models.NotificationPending})
	if err != nil {
		return nil, err
	}
	sent, err := s.notifications.Count(ctx, bson.M{"status": models.NotificationSent})
	if err != nil {
		return nil, err
	}
	failed, err := s.notifications.Count(ctx, bson.M{"status": models.NotificationFailed})
	if err != nil {
		return nil, err
	}
	reached, err := repository.SumOf(ctx, s.notifications.Collection(), "sent_count", nil)
	if err != nil {
		return nil, err
	}
	failures, err := repository.SumOf(ctx, s.notifications.Collection(), "failed_count", nil)
	if err != nil {
		return nil, err
	}

	return &NotificationStats{
		Total:          total,
		Pending:        pending,
		Sent:           sent,
		Failed:         failed,
		RecipientsHit:  reached,
		DeliveryFailed: failures,
	}, nil
}
