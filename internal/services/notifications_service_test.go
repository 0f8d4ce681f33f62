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

func newNotificationsService(t *testing.T) *NotificationsService {
	t.Helper()
	svc := NewNotificationsService(
		repository.New[models.PushNotification](database.NewMemoryCollection()),
		repository.New[models.AppUser](database.NewMemoryCollection()),
		repository.New[models.AdminUser](database.NewMemoryCollection()),
	)
	ctx := context.Background()
	for _, u := range []*models.AppUser{
		{Email: "a@example.com", FullName: "A", IsActive: true},
		{Email: "b@example.com", FullName: "B", IsActive: true},
		{Email: "c@example.com", FullName: "C", IsActive: false},
	} {
		require.NoError(t, svc.users.Create(ctx, u))
	}
	require.NoError(t, svc.admins.Create(ctx, &models.AdminUser{
		Email: "root@example.com", Username: "root", IsActive: true,
	}))
	return svc
}

func TestNotificationCreateDefaults(t *testing.T) {
	svc := newNotificationsService(t)
	n := &models.PushNotification{Title: "Hi", Message: "News", Status: "sent", SentCount: 99}
	require.NoError(t, svc.Create(context.Background(), n))

	assert.Equal(t, models.TargetAll, n.Target)
	assert.Equal(t, models.NotificationPending, n.Status)
	assert.Zero(t, n.SentCount)
	assert.Nil(t, n.SentAt)
}

func TestSendResolvesRecipientsByTarget(t *testing.T) {
	svc := newNotificationsService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		n      *models.PushNotification
		expect int64
	}{
		{"all active users", &models.PushNotification{Title: "t", Message: "m"}, 2},
		{"active admins", &models.PushNotification{Title: "t", Message: "m", Target: models.TargetAdmins}, 1},
		{"specific users", &models.PushNotification{
			Title: "t", Message: "m",
			Target:    models.TargetSpecificUsers,
			TargetIDs: []string{"u1", "u2", "u3"},
		}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, svc.Create(ctx, tc.n))
			sent, err := svc.Send(ctx, tc.n.ID.Hex())
			require.NoError(t, err)
			assert.Equal(t, models.NotificationSent, sent.Status)
			assert.Equal(t, tc.expect, sent.SentCount)
			assert.NotNil(t, sent.SentAt)
			assert.Zero(t, sent.FailedCount)
		})
	}
}

func TestSendTwiceRejected(t *testing.T) {
	svc := newNotificationsService(t)
	ctx := context.Background()

	n := &models.PushNotification{Title: "t", Message: "m"}
	require.NoError(t, svc.Create(ctx, n))

	_, err := svc.Send(ctx, n.ID.Hex())
	require.NoError(t, err)
	_, err = svc.Send(ctx, n.ID.Hex())
	assert.ErrorIs(t, err, ErrAlreadySent)
}

func TestNotificationStatistics(t *testing.T) {
	svc := newNotificationsService(t)
	ctx := context.Background()

	first := &models.PushNotification{Title: "a", Message: "m"}
	require.NoError(t, svc.Create(ctx, first))
	require.NoError(t, svc.Create(ctx, &models.PushNotification{Title: "b", Message: "m"}))

	_, err := svc.Send(ctx, first.ID.Hex())
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Sent)
	assert.Zero(t, stats.Failed)
	assert.Equal(t, int64(2), stats.RecipientsHit)
	assert.Zero(t, stats.DeliveryFailed)
}
