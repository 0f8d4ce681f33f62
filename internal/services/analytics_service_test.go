package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

func TestDashboardAnalytics(t *testing.T) {
	ctx := context.Background()

	users := repository.New[models.AppUser](database.NewMemoryCollection())
	admins := repository.New[models.AdminUser](database.NewMemoryCollection())

	tools := NewCareerToolsService(
		&stubGenerator{out: "one two three four"},
		repository.New[models.CareerToolTemplate](database.NewMemoryCollection()),
		repository.New[models.CareerToolUsage](database.NewMemoryCollection()),
		users,
	)

	jobsColl := database.NewMemoryCollection()
	articlesColl := database.NewMemoryCollection()
	subs := NewSubmissionsService(
		repository.New[models.ContentSubmission](database.NewMemoryCollection()),
		map[string]database.Collection{"article": articlesColl},
	)
	notifs := NewNotificationsService(
		repository.New[models.PushNotification](database.NewMemoryCollection()),
		users, admins,
	)

	svc := NewAnalyticsService(users, admins, map[string]database.Collection{
		"jobs":     jobsColl,
		"articles": articlesColl,
	}, subs, notifs, tools)

	active := &models.AppUser{Email: "a@example.com", FullName: "A", IsActive: true, IsVerified: true}
	require.NoError(t, users.Create(ctx, active))
	require.NoError(t, users.Create(ctx, &models.AppUser{Email: "b@example.com", FullName: "B", IsActive: true}))
	veteran := &models.AppUser{Email: "c@example.com", FullName: "C"}
	require.NoError(t, users.Create(ctx, veteran))
	_, err := users.Update(ctx, veteran.ID.Hex(), bson.M{
		"created_at": time.Now().UTC().AddDate(0, 0, -60),
	})
	require.NoError(t, err)
	require.NoError(t, admins.Create(ctx, &models.AdminUser{
		Email: "root@example.com", Username: "root", IsActive: true,
	}))

	for _, title := range []string{"one", "two"} {
		_, err := jobsColl.InsertOne(ctx, bson.M{"title": title})
		require.NoError(t, err)
	}

	_, err = subs.Submit(ctx, "article", bson.M{"title": "draft"}, "u1")
	require.NoError(t, err)
	require.NoError(t, notifs.Create(ctx, &models.PushNotification{Title: "t", Message: "m"}))
	for i := 0; i < 2; i++ {
		_, err := tools.Run(ctx, active.ID.Hex(), models.ToolColdEmail, nil)
		require.NoError(t, err)
	}

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), dash.UserEngagement.TotalUsers)
	assert.Equal(t, int64(2), dash.UserEngagement.ActiveUsers)
	assert.Equal(t, int64(1), dash.UserEngagement.VerifiedUsers)
	assert.Equal(t, int64(2), dash.UserEngagement.NewUsersWeek)
	assert.Equal(t, int64(2), dash.UserEngagement.NewUsersMonth)
	assert.Equal(t, int64(1), dash.UserEngagement.TotalAdmins)

	assert.Equal(t, int64(2), dash.ContentTotals["jobs"])
	assert.Zero(t, dash.ContentTotals["articles"])

	assert.Equal(t, int64(1), dash.Submissions.Pending)
	assert.Equal(t, int64(1), dash.Notifications.Pending)

	assert.Equal(t, int64(2), dash.AIUsage.TotalRuns)
	assert.Equal(t, int64(8), dash.AIUsage.TotalTokens)
	require.Len(t, dash.AIUsage.ByTool, 1)
	assert.Equal(t, models.ToolColdEmail, dash.AIUsage.ByTool[0].ToolType)
	assert.False(t, dash.GeneratedAt.IsZero())
}
