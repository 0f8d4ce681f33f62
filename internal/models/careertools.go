package models

import "go.mongodb.org/mongo-driver/bson"

// Career tool types.
const (
	ToolResumeReview = "resume_review"
	ToolCoverLetter  = "cover_letter"
	ToolATSHack      = "ats_hack"
	ToolColdEmail    = "cold_email"
)

// CareerToolTemplate is a stored prompt-template override for one tool.
// When absent, the compiled-in default template is used.
type CareerToolTemplate struct {
	Meta           `bson:",inline"`
	ToolType       string `bson:"tool_type" json:"tool_type"`
	PromptTemplate string `bson:"prompt_template" json:"prompt_template"`
	IsActive       bool   `bson:"is_active" json:"is_active"`
}

// CareerToolUsage is one logged invocation of a career tool. TokensUsed is
// a word-count estimate of the generated output.
type CareerToolUsage struct {
	Meta       `bson:",inline"`
	UserID     string `bson:"user_id" json:"user_id"`
	ToolType   string `bson:"tool_type" json:"tool_type"`
	InputData  bson.M `bson:"input_data" json:"input_data"`
	OutputData string `bson:"output_data" json:"output_data"`
	TokensUsed int64  `bson:"tokens_used" json:"tokens_used"`
}
