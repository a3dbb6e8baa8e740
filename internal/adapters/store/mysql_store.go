package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
)

// MySQLStore is a MySQL implementation of the ApplicationStore interface.
// The job_postings and companies tables are owned by the web application;
// only the applications table is bootstrapped here.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore creates a new MySQL store
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS applications (
			application_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			job_posting_id BIGINT NOT NULL,
			company_id BIGINT NOT NULL,
			candidate_name VARCHAR(255),
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(64),
			resume_url TEXT,
			parsed_resume_json MEDIUMTEXT,
			ai_score INT,
			ai_status VARCHAR(16),
			reasoning TEXT,
			interview_time TIMESTAMP NULL,
			interview_link TEXT,
			interview_status VARCHAR(32),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_job_email (job_posting_id, email)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create applications table: %w", err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// FindJobPosting resolves a (job title, company name) pair case-insensitively
func (s *MySQLStore) FindJobPosting(ctx context.Context, jobTitle, companyName string) (*core.JobPosting, error) {
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
// of the existing (job_posting_id, email) row. The LAST_INSERT_ID trick makes
// the duplicate branch report the existing row's ID.
func (s *MySQLStore) UpsertApplication(ctx context.Context, app *core.Application) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO applications (job_posting_id, company_id, candidate_name, email, phone, resume_url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			candidate_name = VALUES(candidate_name),
			phone = VALUES(phone),
			resume_url = VALUES(resume_url),
			application_id = LAST_INSERT_ID(application_id)
	`, app.JobPostingID, app.CompanyID, app.CandidateName, app.Email, app.Phone, app.ResumeURL)

	if err != nil {
		return 0, fmt.Errorf("failed to upsert application: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get application ID: %w", err)
	}
	return id, nil
}

// UpdateScore writes the scoring output to an existing application
func (s *MySQLStore) UpdateScore(ctx context.Context, applicationID int64, score int, status core.CandidateStatus, reasoning string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET ai_score = ?, ai_status = ?, reasoning = ?
		WHERE application_id = ?
	`, score, string(status), reasoning, applicationID)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}

	return s.checkUpdated(ctx, res, applicationID)
}

// UpdateResume writes the resume URL and parsed resume JSON
func (s *MySQLStore) UpdateResume(ctx context.Context, applicationID int64, resumeURL, parsedResumeJSON string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET resume_url = ?, parsed_resume_json = ?
		WHERE application_id = ?
	`, resumeURL, parsedResumeJSON, applicationID)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}

	return s.checkUpdated(ctx, res, applicationID)
}

// UpdateInterview writes interview scheduling fields
func (s *MySQLStore) UpdateInterview(ctx context.Context, applicationID int64, interviewTime time.Time, link, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET interview_time = ?, interview_link = ?, interview_status = ?
		WHERE application_id = ?
	`, interviewTime, link, status, applicationID)
	if err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}

	return s.checkUpdated(ctx, res, applicationID)
}

// checkUpdated distinguishes a missing row from an update that changed
// nothing: MySQL reports zero affected rows in both cases.
func (s *MySQLStore) checkUpdated(ctx context.Context, res sql.Result, applicationID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		s.logger.Warn("Failed to get rows affected", zap.Error(err))
		return nil
	}
	if affected > 0 {
		return nil
	}

	var one int
	err = s.db.QueryRowContext(ctx, `SELECT 1 FROM applications WHERE application_id = ?`, applicationID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("application %d: %w", applicationID, core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to verify application %d: %w", applicationID, err)
	}
	return nil
}

// Close closes the database connection
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
