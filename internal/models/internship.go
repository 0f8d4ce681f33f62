package models

import "time"

// Internship is a posted internship opening.
type Internship struct {
	Meta                `bson:",inline"`
	Title               string     `bson:"title" json:"title"`
	Company             string     `bson:"company" json:"company"`
	Description         string     `bson:"description" json:"description"`
	Location            string     `bson:"location" json:"location"`
	InternshipType      string     `bson:"internship_type" json:"internship_type"`
	Category            string     `bson:"category" json:"category"`
	Duration            string     `bson:"duration" json:"duration"`
	StipendAmount       int        `bson:"stipend_amount,omitempty" json:"stipend_amount,omitempty"`
	Currency            string     `bson:"currency" json:"currency"`
	SkillsRequired      []string   `bson:"skills_required" json:"skills_required"`
	Qualifications      []string   `bson:"qualifications" json:"qualifications"`
	Responsibilities    []string   `bson:"responsibilities" json:"responsibilities"`
	LearningOutcomes    []string   `bson:"learning_outcomes" json:"learning_outcomes"`
	Benefits            []string   `bson:"benefits" json:"benefits"`
	ApplicationDeadline *time.Time `bson:"application_deadline,omitempty" json:"application_deadline,omitempty"`
	CompanyLogo         string     `bson:"company_logo,omitempty" json:"company_logo,omitempty"`
	ApplyLink           string     `bson:"apply_link,omitempty" json:"apply_link,omitempty"`
	IsActive            bool       `bson:"is_active" json:"is_active"`
}

// NewInternship returns an Internship with creation defaults applied.
func NewInternship() Internship {
	return Internship{Currency: "USD", IsActive: true}
}

// InternshipUpdate is the partial-update payload for Internship.
type InternshipUpdate struct {
	Title               *string    `bson:"title" json:"title"`
	Company             *string    `bson:"company" json:"company"`
	Description         *string    `bson:"description" json:"description"`
	Location            *string    `bson:"location" json:"location"`
	InternshipType      *string    `bson:"internship_type" json:"internship_type"`
	Category            *string    `bson:"category" json:"category"`
	Duration            *string    `bson:"duration" json:"duration"`
	StipendAmount       *int       `bson:"stipend_amount" json:"stipend_amount"`
	Currency            *string    `bson:"currency" json:"currency"`
	SkillsRequired      []string   `bson:"skills_required" json:"skills_required"`
	Qualifications      []string   `bson:"qualifications" json:"qualifications"`
	Responsibilities    []string   `bson:"responsibilities" json:"responsibilities"`
	LearningOutcomes    []string   `bson:"learning_outcomes" json:"learning_outcomes"`
	Benefits            []string   `bson:"benefits" json:"benefits"`
	ApplicationDeadline *time.Time `bson:"application_deadline" json:"application_deadline"`
	CompanyLogo         *string    `bson:"company_logo" json:"company_logo"`
	ApplyLink           *string    `bson:"apply_link" json:"apply_link"`
	IsActive            *bool      `bson:"is_active" json:"is_active"`
}
