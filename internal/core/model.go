package core

import (
	"time"
)

// InboundEmail represents a forwarded job application email. It is transient
// and never persisted by this pipeline.
type InboundEmail struct {
	Subject     string
	From        string
	Body        string
	Attachments []string
}

// JobPosting is a read-only view of a job posting joined to its company.
type JobPosting struct {
	ID             int64
	CompanyID      int64
	CompanyName    string
	Title          string
	Description    string
	RequiredSkills []string
}

// Company represents an employer that owns job postings.
type Company struct {
	ID   int64
	Name string
}

// ClassificationResult is the outcome of classifying an inbound email against
// the known job postings. When Matched is false the job and company fields are
// zero, but the candidate identity fields are always populated.
type ClassificationResult struct {
	Matched        bool
	JobPostingID   int64
	CompanyID      int64
	JobTitle       string
	CompanyName    string
	CandidateEmail string
	CandidateName  string
	Attachments    []string

	// Job carries the matched posting so callers can score against it
	// without a second lookup. Nil when Matched is false.
	Job *JobPosting
}

// PersonalInfo holds the identity fields extracted from a resume.
type PersonalInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ParsedResume is the structured form of a free-text resume. Every field is
// optional; a ParsedResume is always well-formed, possibly all-empty.
type ParsedResume struct {
	Personal   PersonalInfo      `json:"personal"`
	Education  []string          `json:"education"`
	Experience []string          `json:"experience"`
	Skills     []string          `json:"skills"`
	Links      map[string]string `json:"links"`
	Awards     []string          `json:"awards"`
	Projects   []string          `json:"projects"`
}

// EmptyParsedResume returns a well-formed resume with no content. All
// collection fields are non-nil so the JSON form is stable.
func EmptyParsedResume() *ParsedResume {
	return &ParsedResume{
		Education:  []string{},
		Experience: []string{},
		Skills:     []string{},
		Links:      map[string]string{},
		Awards:     []string{},
		Projects:   []string{},
	}
}

// Normalize replaces nil collection fields with empty ones.
func (r *ParsedResume) Normalize() {
	if r.Education == nil {
		r.Education = []string{}
	}
	if r.Experience == nil {
		r.Experience = []string{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Links == nil {
		r.Links = map[string]string{}
	}
	if r.Awards == nil {
		r.Awards = []string{}
	}
	if r.Projects == nil {
		r.Projects = []string{}
	}
}

// CandidateStatus is a terminal evaluation state derived solely from the
// numeric score.
type CandidateStatus string

const (
	StatusShortlist CandidateStatus = "SHORTLIST"
	StatusFlagged   CandidateStatus = "FLAGGED"
	StatusRejected  CandidateStatus = "REJECTED"
)

// ScoringResult binds a 0-100 score to its derived status. Status is always
// recomputed from Score by the decision policy, never taken from the model.
type ScoringResult struct {
	Score     int
	Status    CandidateStatus
	Reasoning string
}

// Application is the persistent record of a candidate's submission, unique
// per (job posting, email) pair.
type Application struct {
	ID               int64
	JobPostingID     int64
	CompanyID        int64
	CandidateName    string
	Email            string
	Phone            string
	ResumeURL        string
	ParsedResumeJSON string
	AIScore          int
	AIStatus         CandidateStatus
	Reasoning        string
	InterviewTime    *time.Time
	InterviewLink    string
	InterviewStatus  string
	CreatedAt        time.Time
}

// ScreeningOutcome is what processing one inbound email produced.
type ScreeningOutcome struct {
	Classification *ClassificationResult
	ApplicationID  int64
	Resume         *ParsedResume
	Scoring        *ScoringResult
}
