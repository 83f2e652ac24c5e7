package models

// JobContext holds the free-form inputs of the resume and cover-letter forms.
type JobContext struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	CompanyName    string `json:"companyName,omitempty"`
	RecipientName  string `json:"recipientName,omitempty"`
}

// MaxSkills caps how many skills are extracted from a job description.
const MaxSkills = 10

// MinSelectedSkills is the fewest skills a user may select before generating.
const MinSelectedSkills = 3

// DefaultSelectedSkills is how many top-ranked skills start out selected.
const DefaultSelectedSkills = 5
