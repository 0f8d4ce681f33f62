package ai

import "strings"

// Fill substitutes {name} placeholders in a prompt template.
func Fill(template string, vars map[string]string) string {
	for k, v := range vars {
		template = strings.ReplaceAll(template, "{"+k+"}", v)
	}
	return template
}

// JobPrompt asks for a complete job posting as JSON.
func JobPrompt(title, company, location string) string {
	return Fill(`Generate a complete job posting as a JSON object for the position below.
Position: {title}
Company: {company}
Location: {location}
Return only JSON with keys: title, company, description, location, job_type,
category, salary_min, salary_max, currency, experience_level, skills_required,
qualifications, responsibilities, benefits, apply_link.`,
		map[string]string{"title": title, "company": company, "location": location})
}

// InternshipPrompt asks for a complete internship posting as JSON.
func InternshipPrompt(title, company, location string) string {
	return Fill(`Generate a complete internship posting as a JSON object for the position below.
Position: {title}
Company: {company}
Location: {location}
Return only JSON with keys: title, company, description, location,
internship_type, category, duration, stipend_amount, currency,
skills_required, qualifications, responsibilities, learning_outcomes,
benefits, apply_link.`,
		map[string]string{"title": title, "company": company, "location": location})
}

// ScholarshipPrompt asks for a complete scholarship listing as JSON.
func ScholarshipPrompt(title, provider, country string) string {
	return Fill(`Generate a complete scholarship listing as a JSON object.
Scholarship: {title}
Provider: {provider}
Country: {country}
Return only JSON with keys: title, provider, description, amount, currency,
eligibility_criteria, benefits, application_process, scholarship_type,
field_of_study, education_level, country, apply_link.`,
		map[string]string{"title": title, "provider": provider, "country": country})
}

// QuestionPrompt asks for a complete DSA practice question as JSON.
func QuestionPrompt(topic, difficulty string) string {
	return Fill(`Generate a complete data-structures-and-algorithms practice question as a JSON object.
Topic: {topic}
Difficulty: {difficulty}
Return only JSON with keys: title, description, difficulty, examples
(array of input/output/explanation), input_format, output_format,
constraints, solution_approach, time_complexity, space_complexity, hints.`,
		map[string]string{"topic": topic, "difficulty": difficulty})
}

// Default career-tool prompt templates, overridable through stored
// templates. Placeholder names match the tool input payloads.
var DefaultToolTemplates = map[string]string{
	"resume_review": `You are an expert career coach. Review the following resume for a
{target_role} role and give specific, actionable feedback on structure,
impact statements, and missing skills.

Resume:
{resume_text}`,

	"cover_letter": `Write a concise, professional cover letter for the role below.
Role: {job_title} at {company}
Candidate background: {background}
Job description: {job_description}`,

	"ats_hack": `You are an applicant-tracking-system expert. Rewrite the resume
content below to pass ATS screening for a {target_role} role. Preserve the
facts, surface relevant keywords from the job description, and keep the
formatting plain.

Resume:
{resume_text}

Job description:
{job_description}`,

	"cold_email": `Write a short, personable cold outreach email.
Sender: {sender_name}, {sender_background}
Recipient: {recipient_name}, {recipient_role} at {company}
Goal: {goal}`,
}
