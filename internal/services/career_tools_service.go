package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/ai"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

var ErrUnknownTool = errors.New("Unknown career tool")

// CareerToolsService runs the AI career tools, logging each use and
// charging it against the user's counter.
type CareerToolsService struct {
	generator ai.Generator
	templates *repository.Repository[models.CareerToolTemplate, *models.CareerToolTemplate]
	usage     *repository.Repository[models.CareerToolUsage, *models.CareerToolUsage]
	users     *repository.Repository[models.AppUser, *models.AppUser]
}

func NewCareerToolsService(
	generator ai.Generator,
	templates *repository.Repository[models.CareerToolTemplate, *models.CareerToolTemplate],
	usage *repository.Repository[models.CareerToolUsage, *models.CareerToolUsage],
	users *repository.Repository[models.AppUser, *models.AppUser],
) *CareerToolsService {
	return &CareerToolsService{
		generator: generator,
		templates: templates,
		usage:     usage,
		users:     users,
	}
}

// Run executes one tool for the user and returns the generated text. The
// prompt template comes from a stored active override when one exists,
// otherwise from the compiled-in default.
func (s *CareerToolsService) Run(ctx context.Context, userID, toolType string, inputs map[string]string) (string, error) {
	template, err := s.promptTemplate(ctx, toolType)
	if err != nil {
		return "", err
	}

	output, err := s.generator.Generate(ctx, ai.Fill(template, inputs))
	if err != nil {
		return "", err
	}

	inputData := bson.M{}
	for k, v := range inputs {
		inputData[k] = v
	}
	entry := &models.CareerToolUsage{
		UserID:     userID,
		ToolType:   toolType,
		InputData:  inputData,
		OutputData: output,
		TokensUsed: int64(len(strings.Fields(output))),
	}
	if err := s.usage.Create(ctx, entry); err != nil {
		return "", err
	}

	if user, err := s.users.Get(ctx, userID); err == nil {
		if err := s.users.Inc(ctx, user.ID, "career_tools_used", 1); err != nil {
			return "", err
		}
	}

	return output, nil
}

func (s *CareerToolsService) promptTemplate(ctx context.Context, toolType string) (string, error) {
	stored, err := s.templates.GetBy(ctx, bson.M{"tool_type": toolType, "is_active": true})
	if err == nil {
		return stored.PromptTemplate, nil
	}
	if err != repository.ErrNotFound {
		return "", err
	}
	template, ok := ai.DefaultToolTemplates[toolType]
	if !ok {
		return "", ErrUnknownTool
	}
	return template, nil
}

// SetTemplate stores or replaces the prompt-template override for a tool.
func (s *CareerToolsService) SetTemplate(ctx context.Context, toolType, promptTemplate string) (*models.CareerToolTemplate, error) {
	if _, ok := ai.DefaultToolTemplates[toolType]; !ok {
		return nil, ErrUnknownTool
	}

	existing, err := s.templates.GetBy(ctx, bson.M{"tool_type": toolType})
	if err == repository.ErrNotFound {
		template := &models.CareerToolTemplate{
			ToolType:       toolType,
			PromptTemplate: promptTemplate,
			IsActive:       true,
		}
		if err := s.templates.Create(ctx, template); err != nil {
			return nil, err
		}
		return template, nil
	}
	if err != nil {
		return nil, err
	}
	return s.templates.Update(ctx, existing.ID.Hex(), bson.M{
		"prompt_template": promptTemplate,
		"is_active":       true,
	})
}

// ListTemplates lists stored template overrides.
func (s *CareerToolsService) ListTemplates(ctx context.Context, q repository.ListQuery) (*repository.Page[models.CareerToolTemplate], error) {
	return s.templates.List(ctx, q)
}

// UserUsage lists the user's tool invocations, newest first.
func (s *CareerToolsService) UserUsage(ctx context.Context, userID string, q repository.ListQuery) (*repository.Page[models.CareerToolUsage], error) {
	if q.Eq == nil {
		q.Eq = bson.M{}
	}
	q.Eq["user_id"] = userID
	return s.usage.List(ctx, q)
}

// ToolUsageStat is one tool's aggregate usage.
type ToolUsageStat struct {
	ToolType   string `bson:"-" json:"tool_type"`
	ID         any    `bson:"_id" json:"-"`
	Uses       int64  `bson:"uses" json:"uses"`
	TokensUsed int64  `bson:"tokens_used" json:"tokens_used"`
}

// UsageStatistics groups usage by tool type with invocation and token
// totals.
func (s *CareerToolsService) UsageStatistics(ctx context.Context) ([]ToolUsageStat, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":         "$tool_type",
			"uses":        bson.M{"$sum": 1},
			"tokens_used": bson.M{"$sum": "$tokens_used"},
		}},
		{"$sort": bson.M{"uses": -1}},
	}
	var stats []ToolUsageStat
	if err := s.usage.Collection().Aggregate(ctx, pipeline, &stats); err != nil {
		return nil, err
	}
	for i := range stats {
		if name, ok := stats[i].ID.(string); ok {
			stats[i].ToolType = name
		}
	}
	return stats, nil
}
