package models

// Example is a worked input/output pair on a DSA question.
type Example struct {
	Input       string `bson:"input" json:"input"`
	Output      string `bson:"output" json:"output"`
	Explanation string `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

// CodeSolution is a reference solution in one language.
type CodeSolution struct {
	Language string `bson:"language" json:"language"`
	Code     string `bson:"code" json:"code"`
}

// Question is a DSA practice question. AcceptanceRate is derived from the
// submission counters and stays absent until the first submission.
type Question struct {
	Meta             `bson:",inline"`
	Title            string         `bson:"title" json:"title"`
	Description      string         `bson:"description" json:"description"`
	Difficulty       string         `bson:"difficulty" json:"difficulty"`
	Topics           []string       `bson:"topics" json:"topics"`
	Companies        []string       `bson:"companies" json:"companies"`
	Examples         []Example      `bson:"examples" json:"examples"`
	InputFormat      string         `bson:"input_format,omitempty" json:"input_format,omitempty"`
	OutputFormat     string         `bson:"output_format,omitempty" json:"output_format,omitempty"`
	Constraints      []string       `bson:"constraints" json:"constraints"`
	SolutionApproach string         `bson:"solution_approach,omitempty" json:"solution_approach,omitempty"`
	TimeComplexity   string         `bson:"time_complexity,omitempty" json:"time_complexity,omitempty"`
	SpaceComplexity  string         `bson:"space_complexity,omitempty" json:"space_complexity,omitempty"`
	CodeSolutions    []CodeSolution `bson:"code_solutions" json:"code_solutions"`
	Hints            []string       `bson:"hints" json:"hints"`
	TotalSubmissions int64          `bson:"total_submissions" json:"total_submissions"`
	TotalAccepted    int64          `bson:"total_accepted" json:"total_accepted"`
	AcceptanceRate   *float64       `bson:"acceptance_rate,omitempty" json:"acceptance_rate,omitempty"`
	IsActive         bool           `bson:"is_active" json:"is_active"`
	IsPremium        bool           `bson:"is_premium" json:"is_premium"`
}

// NewQuestion returns a Question with creation defaults applied.
func NewQuestion() Question {
	return Question{IsActive: true}
}

// QuestionUpdate is the partial-update payload for Question.
type QuestionUpdate struct {
	Title            *string        `bson:"title" json:"title"`
	Description      *string        `bson:"description" json:"description"`
	Difficulty       *string        `bson:"difficulty" json:"difficulty"`
	Topics           []string       `bson:"topics" json:"topics"`
	Companies        []string       `bson:"companies" json:"companies"`
	Examples         []Example      `bson:"examples" json:"examples"`
	InputFormat      *string        `bson:"input_format" json:"input_format"`
	OutputFormat     *string        `bson:"output_format" json:"output_format"`
	Constraints      []string       `bson:"constraints" json:"constraints"`
	SolutionApproach *string        `bson:"solution_approach" json:"solution_approach"`
	TimeComplexity   *string        `bson:"time_complexity" json:"time_complexity"`
	SpaceComplexity  *string        `bson:"space_complexity" json:"space_complexity"`
	CodeSolutions    []CodeSolution `bson:"code_solutions" json:"code_solutions"`
	Hints            []string       `bson:"hints" json:"hints"`
	IsActive         *bool          `bson:"is_active" json:"is_active"`
	IsPremium        *bool          `bson:"is_premium" json:"is_premium"`
}

// Topic is a DSA topic tag. QuestionCount is computed on read by counting
// the questions that reference the topic, never stored.
type Topic struct {
	Meta          `bson:",inline"`
	Name          string  `bson:"name" json:"name"`
	Description   string  `bson:"description,omitempty" json:"description,omitempty"`
	ParentTopic   *string `bson:"parent_topic,omitempty" json:"parent_topic,omitempty"`
	Icon          string  `bson:"icon,omitempty" json:"icon,omitempty"`
	IsActive      bool    `bson:"is_active" json:"is_active"`
	QuestionCount int64   `bson:"-" json:"question_count"`
}

// NewTopic returns a Topic with creation defaults applied.
func NewTopic() Topic {
	return Topic{IsActive: true}
}

// TopicUpdate is the partial-update payload for Topic.
type TopicUpdate struct {
	Name        *string `bson:"name" json:"name"`
	Description *string `bson:"description" json:"description"`
	ParentTopic *string `bson:"parent_topic" json:"parent_topic"`
	Icon        *string `bson:"icon" json:"icon"`
	IsActive    *bool   `bson:"is_active" json:"is_active"`
}

// SheetQuestion is one entry in a practice sheet's ordered question list.
type SheetQuestion struct {
	QuestionID  string `bson:"question_id" json:"question_id"`
	Order       int    `bson:"order" json:"order"`
	IsCompleted bool   `bson:"is_completed" json:"is_completed"`
}

// Sheet is a curated list of DSA questions. TotalQuestions tracks
// len(Questions) across create, update and add/remove operations.
type Sheet struct {
	Meta                `bson:",inline"`
	Name                string          `bson:"name" json:"name"`
	Description         string          `bson:"description,omitempty" json:"description,omitempty"`
	Author              string          `bson:"author,omitempty" json:"author,omitempty"`
	Level               string          `bson:"level,omitempty" json:"level,omitempty"`
	Tags                []string        `bson:"tags" json:"tags"`
	Questions           []SheetQuestion `bson:"questions" json:"questions"`
	TotalQuestions      int             `bson:"total_questions" json:"total_questions"`
	DifficultyBreakdown map[string]int  `bson:"difficulty_breakdown,omitempty" json:"difficulty_breakdown,omitempty"`
	EstimatedTime       string          `bson:"estimated_time,omitempty" json:"estimated_time,omitempty"`
	IsPublished         bool            `bson:"is_published" json:"is_published"`
	IsFeatured          bool            `bson:"is_featured" json:"is_featured"`
	IsPremium           bool            `bson:"is_premium" json:"is_premium"`
}

// SheetUpdate is the partial-update payload for Sheet.
type SheetUpdate struct {
	Name                *string         `bson:"name" json:"name"`
	Description         *string         `bson:"description" json:"description"`
	Author              *string         `bson:"author" json:"author"`
	Level               *string         `bson:"level" json:"level"`
	Tags                []string        `bson:"tags" json:"tags"`
	Questions           []SheetQuestion `bson:"questions" json:"questions"`
	DifficultyBreakdown map[string]int  `bson:"difficulty_breakdown" json:"difficulty_breakdown"`
	EstimatedTime       *string         `bson:"estimated_time" json:"estimated_time"`
	IsPublished         *bool           `bson:"is_published" json:"is_published"`
	IsFeatured          *bool           `bson:"is_featured" json:"is_featured"`
	IsPremium           *bool           `bson:"is_premium" json:"is_premium"`
}

// Company is a hiring company referenced by questions and jobs. The two
// counters are maintained by explicit increments, not recomputed.
type Company struct {
	Meta         `bson:",inline"`
	Name         string `bson:"name" json:"name"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
	Industry     string `bson:"industry,omitempty" json:"industry,omitempty"`
	Logo         string `bson:"logo,omitempty" json:"logo,omitempty"`
	Website      string `bson:"website,omitempty" json:"website,omitempty"`
	IsActive     bool   `bson:"is_active" json:"is_active"`
	ProblemCount int64  `bson:"problem_count" json:"problem_count"`
	JobCount     int64  `bson:"job_count" json:"job_count"`
}

// NewCompany returns a Company with creation defaults applied.
func NewCompany() Company {
	return Company{IsActive: true}
}

// CompanyUpdate is the partial-update payload for Company.
type CompanyUpdate struct {
	Name        *string `bson:"name" json:"name"`
	Description *string `bson:"description" json:"description"`
	Industry    *string `bson:"industry" json:"industry"`
	Logo        *string `bson:"logo" json:"logo"`
	Website     *string `bson:"website" json:"website"`
	IsActive    *bool   `bson:"is_active" json:"is_active"`
}
