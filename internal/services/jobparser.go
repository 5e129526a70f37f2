package services

// JobParsingResult is the structured output of job-description parsing.
type JobParsingResult struct {
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Location          string   `json:"location"`
	JobType           string   `json:"job_type"`
	Description       string   `json:"description"`
	RequiredSkills    []string `json:"required_skills"`
	PreferredSkills   []string `json:"preferred_skills"`
	Responsibilities  []string `json:"responsibilities"`
	Qualifications    []string `json:"qualifications"`
	YearsOfExperience *int     `json:"years_of_experience"`
	EducationLevel    *string  `json:"education_level"`
}

// JobParserService extracts structure from free-text job descriptions.
// TODO: wire an NLP extraction pipeline; today this returns mock data.
type JobParserService struct{}

// NewJobParserService creates a new JobParserService.
func NewJobParserService() *JobParserService {
	return &JobParserService{}
}

// ParseJobDescription returns a mock structured result for the given
// description text.
func (s *JobParserService) ParseJobDescription(jobDescription string) *JobParsingResult {
	return &JobParsingResult{
		Title:            "Software Engineer",
		Company:          "Company Name",
		Location:         "Remote",
		JobType:          "Full-time",
		Description:      jobDescription,
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		Responsibilities: []string{},
		Qualifications:   []string{},
	}
}
