package models

import "time"

// Job is a posted job opening.
type Job struct {
	Meta                `bson:",inline"`
	Title               string     `bson:"title" json:"title"`
	Company             string     `bson:"company" json:"company"`
	Description         string     `bson:"description" json:"description"`
	Location            string     `bson:"location" json:"location"`
	JobType             string     `bson:"job_type" json:"job_type"`
	Category            string     `bson:"category" json:"category"`
	SalaryMin           int        `bson:"salary_min,omitempty" json:"salary_min,omitempty"`
	SalaryMax           int        `bson:"salary_max,omitempty" json:"salary_max,omitempty"`
	Currency            string     `bson:"currency" json:"currency"`
	ExperienceLevel     string     `bson:"experience_level,omitempty" json:"experience_level,omitempty"`
	SkillsRequired      []string   `bson:"skills_required" json:"skills_required"`
	Qualifications      []string   `bson:"qualifications" json:"qualifications"`
	Responsibilities    []string   `bson:"responsibilities" json:"responsibilities"`
	Benefits            []string   `bson:"benefits" json:"benefits"`
	ApplicationDeadline *time.Time `bson:"application_deadline,omitempty" json:"application_deadline,omitempty"`
	CompanyLogo         string     `bson:"company_logo,omitempty" json:"company_logo,omitempty"`
	ApplyLink           string     `bson:"apply_link,omitempty" json:"apply_link,omitempty"`
	IsActive            bool       `bson:"is_active" json:"is_active"`
}

// NewJob returns a Job with creation defaults applied. Callers parse the
// request body over it so omitted keys keep the defaults.
func NewJob() Job {
	return Job{Currency: "USD", IsActive: true}
}

// JobUpdate is the partial-update payload for Job. Pointer fields
// distinguish "omitted" from "set to zero value".
type JobUpdate struct {
	Title               *string    `bson:"title" json:"title"`
	Company             *string    `bson:"company" json:"company"`
	Description         *string    `bson:"description" json:"description"`
	Location            *string    `bson:"location" json:"location"`
	JobType             *string    `bson:"job_type" json:"job_type"`
	Category            *string    `bson:"category" json:"category"`
	SalaryMin           *int       `bson:"salary_min" json:"salary_min"`
	SalaryMax           *int       `bson:"salary_max" json:"salary_max"`
	Currency            *string    `bson:"currency" json:"currency"`
	ExperienceLevel     *string    `bson:"experience_level" json:"experience_level"`
	SkillsRequired      []string   `bson:"skills_required" json:"skills_required"`
	Qualifications      []string   `bson:"qualifications" json:"qualifications"`
	Responsibilities    []string   `bson:"responsibilities" json:"responsibilities"`
	Benefits            []string   `bson:"benefits" json:"benefits"`
	ApplicationDeadline *time.Time `bson:"application_deadline" json:"application_deadline"`
	CompanyLogo         *string    `bson:"company_logo" json:"company_logo"`
	ApplyLink           *string    `bson:"apply_link" json:"apply_link"`
	IsActive            *bool      `bson:"is_active" json:"is_active"`
}
