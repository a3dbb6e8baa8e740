package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
)

// SQLiteStore is a SQLite implementation of the ApplicationStore interface,
// intended for local and single-node deployments. It bootstraps the full
// schema, including the posting tables, so a fresh file is usable directly.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			company_id INTEGER PRIMARY KEY AUTOINCREMENT,
			company_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS job_postings (
			job_posting_id INTEGER PRIMARY KEY AUTOINCREMENT,
			company_id INTEGER NOT NULL,
			job_title TEXT NOT NULL,
			description TEXT,
			required_skills TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			application_id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_posting_id INTEGER NOT NULL,
			company_id INTEGER NOT NULL,
			candidate_name TEXT,
			email TEXT NOT NULL,
			phone TEXT,
			resume_url TEXT,
			parsed_resume_json TEXT,
			ai_score INTEGER,
			ai_status TEXT,
			reasoning TEXT,
			interview_time TIMESTAMP,
			interview_link TEXT,
			interview_status TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (job_posting_id, email)
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// FindJobPosting resolves a (job title, company name) pair case-insensitively
func (s *SQLiteStore) FindJobPosting(ctx context.Context, jobTitle, companyName string) (*core.JobPosting, error) {
	var job core.JobPosting
	var skills sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT j.job_posting_id, j.company_id, j.job_title, j.description, j.required_skills, c.company_name
		FROM job_postings j
		JOIN companies c ON c.company_id = j.company_id
		WHERE LOWER(j.job_title) = LOWER(?) AND LOWER(c.company_name) = LOWER(?)
		LIMIT 1
	`, jobTitle, companyName).Scan(&job.ID, &job.CompanyID, &job.Title, &job.Description, &skills, &job.CompanyName)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query job posting: %w", err)
	}

	job.RequiredSkills = decodeSkills(skills.String)
	return &job, nil
}

// UpsertApplication creates the application or updates the candidate fields
// of the existing (job_posting_id, email) row
func (s *SQLiteStore) UpsertApplication(ctx context.Context, app *core.Application) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO applications (job_posting_id, company_id, candidate_name, email, phone, resume_url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (job_posting_id, email) DO UPDATE SET
			candidate_name = excluded.candidate_name,
			phone = excluded.phone,
			resume_url = excluded.resume_url
		RETURNING application_id
	`, app.JobPostingID, app.CompanyID, app.CandidateName, app.Email, app.Phone, app.ResumeURL).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to upsert application: %w", err)
	}
	return id, nil
}

// UpdateScore writes the scoring output to an existing application
func (s *SQLiteStore) UpdateScore(ctx context.Context, applicationID int64, score int, status core.CandidateStatus, reasoning string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET ai_score = ?, ai_status = ?, reasoning = ?
		WHERE application_id = ?
	`, score, string(status), reasoning, applicationID)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}
	return checkAffected(res, applicationID)
}

// UpdateResume writes the resume URL and parsed resume JSON
func (s *SQLiteStore) UpdateResume(ctx context.Context, applicationID int64, resumeURL, parsedResumeJSON string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET resume_url = ?, parsed_resume_json = ?
		WHERE application_id = ?
	`, resumeURL, parsedResumeJSON, applicationID)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	return checkAffected(res, applicationID)
}

// UpdateInterview writes interview scheduling fields
func (s *SQLiteStore) UpdateInterview(ctx context.Context, applicationID int64, interviewTime time.Time, link, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET interview_time = ?, interview_link = ?, interview_status = ?
		WHERE application_id = ?
	`, interviewTime, link, status, applicationID)
	if err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}
	return checkAffected(res, applicationID)
}

// SeedJobPosting inserts a company and job posting, reusing the company row
// when one with the same name exists. Intended for local setups and tests.
func (s *SQLiteStore) SeedJobPosting(ctx context.Context, companyName, jobTitle, description string, requiredSkills []string) (int64, error) {
	var companyID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT company_id FROM companies WHERE LOWER(company_name) = LOWER(?)
	`, companyName).Scan(&companyID)
	if err == sql.ErrNoRows {
		res, err := s.db.ExecContext(ctx, `INSERT INTO companies (company_name) VALUES (?)`, companyName)
		if err != nil {
			return 0, fmt.Errorf("failed to insert company: %w", err)
		}
		companyID, err = res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get company ID: %w", err)
		}
	} else if err != nil {
		return 0, fmt.Errorf("failed to query company: %w", err)
	}

	skills, err := json.Marshal(requiredSkills)
	if err != nil {
		return 0, fmt.Errorf("failed to encode skills: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO job_postings (company_id, job_title, description, required_skills)
		VALUES (?, ?, ?, ?)
	`, companyID, jobTitle, description, string(skills))
	if err != nil {
		return 0, fmt.Errorf("failed to insert job posting: %w", err)
	}
	return res.LastInsertId()
}

func checkAffected(res sql.Result, applicationID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("application %d: %w", applicationID, core.ErrNotFound)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
