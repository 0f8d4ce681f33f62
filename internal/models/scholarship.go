package models

import "time"

// Scholarship is a posted scholarship offer.
type Scholarship struct {
	Meta                `bson:",inline"`
	Title               string     `bson:"title" json:"title"`
	Provider            string     `bson:"provider" json:"provider"`
	Description         string     `bson:"description" json:"description"`
	Amount              int        `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency            string     `bson:"currency" json:"currency"`
	EligibilityCriteria []string   `bson:"eligibility_criteria" json:"eligibility_criteria"`
	Benefits            []string   `bson:"benefits" json:"benefits"`
	ApplicationProcess  string     `bson:"application_process,omitempty" json:"application_process,omitempty"`
	Deadline            *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
	ScholarshipType     string     `bson:"scholarship_type" json:"scholarship_type"`
	FieldOfStudy        string     `bson:"field_of_study,omitempty" json:"field_of_study,omitempty"`
	EducationLevel      string     `bson:"education_level,omitempty" json:"education_level,omitempty"`
	Country             string     `bson:"country,omitempty" json:"country,omitempty"`
	ApplyLink           string     `bson:"apply_link,omitempty" json:"apply_link,omitempty"`
	IsActive            bool       `bson:"is_active" json:"is_active"`
}

// NewScholarship returns a Scholarship with creation defaults applied.
func NewScholarship() Scholarship {
	return Scholarship{Currency: "USD", IsActive: true}
}

// ScholarshipUpdate is the partial-update payload for Scholarship.
type ScholarshipUpdate struct {
	Title               *string    `bson:"title" json:"title"`
	Provider            *string    `bson:"provider" json:"provider"`
	Description         *string    `bson:"description" json:"description"`
	Amount              *int       `bson:"amount" json:"amount"`
	Currency            *string    `bson:"currency" json:"currency"`
	EligibilityCriteria []string   `bson:"eligibility_criteria" json:"eligibility_criteria"`
	Benefits            []string   `bson:"benefits" json:"benefits"`
	ApplicationProcess  *string    `bson:"application_process" json:"application_process"`
	Deadline            *time.Time `bson:"deadline" json:"deadline"`
	ScholarshipType     *string    `bson:"scholarship_type" json:"scholarship_type"`
	FieldOfStudy        *string    `bson:"field_of_study" json:"field_of_study"`
	EducationLevel      *string    `bson:"education_level" json:"education_level"`
	Country             *string    `bson:"country" json:"country"`
	ApplyLink           *string    `bson:"apply_link" json:"apply_link"`
	IsActive            *bool      `bson:"is_active" json:"is_active"`
}
