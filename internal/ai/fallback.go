package ai

import "github.com/careerguide/careerguide-api/internal/models"

// Fallback constructors build a minimal valid entity straight from the
// request inputs when the generated output cannot be parsed.

func FallbackJob(title, company, location string) models.Job {
	job := models.NewJob()
	job.Title = title
	job.Company = company
	job.Location = location
	job.Description = "Details for this position at " + company + " will be published shortly."
	job.JobType = "full_time"
	job.Category = "general"
	return job
}

func FallbackInternship(title, company, location string) models.Internship {
	in := models.NewInternship()
	in.Title = title
	in.Company = company
	in.Location = location
	in.Description = "Details for this internship at " + company + " will be published shortly."
	in.InternshipType = "onsite"
	in.Category = "general"
	in.Duration = "3 months"
	return in
}

func FallbackScholarship(title, provider, country string) models.Scholarship {
	sch := models.NewScholarship()
	sch.Title = title
	sch.Provider = provider
	sch.Country = country
	sch.Description = "Details for this scholarship from " + provider + " will be published shortly."
	sch.ScholarshipType = "merit"
	return sch
}

func FallbackQuestion(topic, difficulty string) models.Question {
	q := models.NewQuestion()
	q.Title = "Practice problem: " + topic
	q.Description = "Solve a " + difficulty + " problem on " + topic + "."
	q.Difficulty = difficulty
	return q
}
