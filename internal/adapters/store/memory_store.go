package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
)

type appKey struct {
	jobPostingID int64
	email        string
}

// MemoryStore is an in-memory implementation of the ApplicationStore
// interface, used by tests and the one-shot CLI.
type MemoryStore struct {
	mu     sync.RWMutex
	jobs   []*core.JobPosting
	apps   map[appKey]*core.Application
	nextID int64
	logger *zap.Logger
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		apps:   make(map[appKey]*core.Application),
		nextID: 1,
		logger: logger,
	}
}

// AddJobPosting registers a posting for lookup
func (s *MemoryStore) AddJobPosting(job *core.JobPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

// FindJobPosting resolves a (job title, company name) pair case-insensitively
func (s *MemoryStore) FindJobPosting(_ context.Context, jobTitle, companyName string) (*core.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if strings.EqualFold(job.Title, jobTitle) && strings.EqualFold(job.CompanyName, companyName) {
			return job, nil
		}
	}
	return nil, core.ErrNotFound
}

// UpsertApplication creates the application or updates the candidate fields
// of the existing (job_posting_id, email) row
func (s *MemoryStore) UpsertApplication(_ context.Context, app *core.Application) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := appKey{jobPostingID: app.JobPostingID, email: app.Email}
	if existing, ok := s.apps[key]; ok {
		existing.CandidateName = app.CandidateName
		existing.Phone = app.Phone
		existing.ResumeURL = app.ResumeURL
		return existing.ID, nil
	}

	stored := *app
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.nextID++
	s.apps[key] = &stored
	return stored.ID, nil
}

// UpdateScore writes the scoring output to an existing application
func (s *MemoryStore) UpdateScore(_ context.Context, applicationID int64, score int, status core.CandidateStatus, reasoning string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app := s.findByID(applicationID)
	if app == nil {
		return fmt.Errorf("application %d: %w", applicationID, core.ErrNotFound)
	}
	app.AIScore = score
	app.AIStatus = status
	app.Reasoning = reasoning
	return nil
}

// UpdateResume writes the resume URL and parsed resume JSON
func (s *MemoryStore) UpdateResume(_ context.Context, applicationID int64, resumeURL, parsedResumeJSON string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app := s.findByID(applicationID)
	if app == nil {
		return fmt.Errorf("application %d: %w", applicationID, core.ErrNotFound)
	}
	app.ResumeURL = resumeURL
	app.ParsedResumeJSON = parsedResumeJSON
	return nil
}

// UpdateInterview writes interview scheduling fields
func (s *MemoryStore) UpdateInterview(_ context.Context, applicationID int64, interviewTime time.Time, link, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app := s.findByID(applicationID)
	if app == nil {
		return fmt.Errorf("application %d: %w", applicationID, core.ErrNotFound)
	}
	t := interviewTime
	app.InterviewTime = &t
	app.InterviewLink = link
	app.InterviewStatus = status
	return nil
}

// GetApplication returns a copy of the stored application, if any.
func (s *MemoryStore) GetApplication(jobPostingID int64, email string) (*core.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.apps[appKey{jobPostingID: jobPostingID, email: email}]
	if !ok {
		return nil, false
	}
	copied := *app
	return &copied, true
}

// Len returns the number of stored applications.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.apps)
}

func (s *MemoryStore) findByID(applicationID int64) *core.Application {
	for _, app := range s.apps {
		if app.ID == applicationID {
			return app
		}
	}
	return nil
}
