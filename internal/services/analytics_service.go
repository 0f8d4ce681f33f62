package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

// AnalyticsService assembles the admin dashboard rollup from the account
// collections, the content collections, and the other services' statistics.
type AnalyticsService struct {
	users         *repository.Repository[models.AppUser, *models.AppUser]
	admins        *repository.Repository[models.AdminUser, *models.AdminUser]
	content       map[string]database.Collection
	submissions   *SubmissionsService
	notifications *NotificationsService
	tools         *CareerToolsService
	now           func() time.Time
}

func NewAnalyticsService(
	users *repository.Repository[models.AppUser, *models.AppUser],
	admins *repository.Repository[models.AdminUser, *models.AdminUser],
	content map[string]database.Collection,
	submissions *SubmissionsService,
	notifications *NotificationsService,
	tools *CareerToolsService,
) *AnalyticsService {
	return &AnalyticsService{
		users:         users,
		admins:        admins,
		content:       content,
		submissions:   submissions,
		notifications: notifications,
		tools:         tools,
		now:           time.Now,
	}
}

// UserEngagement summarizes the account base.
type UserEngagement struct {
	TotalUsers    int64 `json:"total_users"`
	ActiveUsers   int64 `json:"active_users"`
	VerifiedUsers int64 `json:"verified_users"`
	NewUsersWeek  int64 `json:"new_users_week"`
	NewUsersMonth int64 `json:"new_users_month"`
	TotalAdmins   int64 `json:"total_admins"`
}

// AIUsage summarizes career-tool generation activity.
type AIUsage struct {
	TotalRuns   int64           `json:"total_runs"`
	TotalTokens int64           `json:"total_tokens"`
	ByTool      []ToolUsageStat `json:"by_tool"`
}

// DashboardAnalytics is the combined admin dashboard payload.
type DashboardAnalytics struct {
	UserEngagement UserEngagement     `json:"user_engagement"`
	ContentTotals  map[string]int64   `json:"content_totals"`
	Submissions    *SubmissionStats   `json:"submissions"`
	Notifications  *NotificationStats `json:"notifications"`
	AIUsage        AIUsage            `json:"ai_usage"`
	GeneratedAt    time.Time          `json:"generated_at"`
}

// Dashboard computes the rollup fresh on every call.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardAnalytics, error) {
	now := s.now().UTC()

	engagement, err := s.userEngagement(ctx, now)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(s.content))
	for name, coll := range s.content {
		n, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		totals[name] = n
	}

	subStats, err := s.submissions.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	notifStats, err := s.notifications.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	toolStats, err := s.tools.UsageStatistics(ctx)
	if err != nil {
		return nil, err
	}
	usage := AIUsage{ByTool: toolStats}
	for _, t := range toolStats {
		usage.TotalRuns += t.Uses
		usage.TotalTokens += t.TokensUsed
	}

	return &DashboardAnalytics{
		UserEngagement: *engagement,
		ContentTotals:  totals,
		Submissions:    subStats,
		Notifications:  notifStats,
		AIUsage:        usage,
		GeneratedAt:    now,
	}, nil
}

func (s *AnalyticsService) userEngagement(ctx context.Context, now time.Time) (*UserEngagement, error) {
	e := &UserEngagement{}
	counts := []struct {
		dst    *int64
		filter bson.M
	}{
		{&e.TotalUsers, bson.M{}},
		{&e.ActiveUsers, bson.M{"is_active": true}},
		{&e.VerifiedUsers, bson.M{"is_verified": true}},
		{&e.NewUsersWeek, bson.M{"created_at": bson.M{"$gte": now.AddDate(0, 0, -7)}}},
		{&e.NewUsersMonth, bson.M{"created_at": bson.M{"$gte": now.AddDate(0, 0, -30)}}},
	}
	for _, c := range counts {
		n, err := s.users.Count(ctx, c.filter)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	admins, err := s.admins.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	e.TotalAdmins = admins
	return e, nil
}
