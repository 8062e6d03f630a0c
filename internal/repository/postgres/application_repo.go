package postgres

import (
	"context"
	"job-board-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationSelect = `
	SELECT
		a.id, a.job_seeker_id, a.job_id, a.status, a.cover_letter, a.resume_url, a.applied_at, a.updated_at,
		u.email, u.full_name, u.role,
		j.title, j.created_by
	FROM applications a
	JOIN users u ON u.id = a.job_seeker_id
	JOIN jobs j ON j.id = a.job_id`

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var (
		app    domain.Application
		seeker domain.UserSummary
		job    domain.JobSummary
	)
	err := row.Scan(
		&app.ID, &app.JobSeekerID, &app.JobID, &app.Status, &app.CoverLetter, &app.ResumeURL, &app.AppliedAt, &app.UpdatedAt,
		&seeker.Email, &seeker.FullName, &seeker.Role,
		&job.Title, &job.CreatedByID,
	)
	if err != nil {
		return nil, err
	}
	seeker.ID = app.JobSeekerID
	job.ID = app.JobID
	app.JobSeeker = &seeker
	app.Job = &job
	return &app, nil
}

func (r *applicationRepo) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "")
	}
	defer rows.Close()

	applications := make([]domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, translateError(err, "")
		}
		applications = append(applications, *app)
	}
	return applications, translateError(rows.Err(), "")
}

// Create inserts a new application. The unique constraint on
// (job_seeker_id, job_id) settles concurrent duplicate inserts; the loser
// gets DuplicateApplication. A job deleted since the caller's lookup gives
// NotFound.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_seeker_id, job_id, status, cover_letter, resume_url, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusSubmitted
	}

	err := r.db.QueryRow(ctx, query,
		app.JobSeekerID,
		app.JobID,
		string(app.Status),
		app.CoverLetter,
		app.ResumeURL,
		app.AppliedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
	return translateApplicationInsertError(err)
}

// GetByID retrieves an application by ID with joined seeker and job data
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, translateError(err, "Application not found")
	}
	return app, nil
}

// Exists checks if an application already exists for the seeker/job combination
func (r *applicationRepo) Exists(ctx context.Context, seekerID, jobID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_seeker_id = $1 AND job_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, seekerID, jobID).Scan(&exists)
	return exists, translateError(err, "")
}

// UpdateStatus overwrites the status, bumps updated_at and returns the fresh
// row in the same statement.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	query := `
		WITH a AS (
			UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1
			RETURNING id, job_seeker_id, job_id, status, cover_letter, resume_url, applied_at, updated_at
		)
		SELECT
			a.id, a.job_seeker_id, a.job_id, a.status, a.cover_letter, a.resume_url, a.applied_at, a.updated_at,
			u.email, u.full_name, u.role,
			j.title, j.created_by
		FROM a
		JOIN users u ON u.id = a.job_seeker_id
		JOIN jobs j ON j.id = a.job_id`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id, string(status), time.Now()))
	if err != nil {
		return nil, translateError(err, "Application not found")
	}
	return app, nil
}

func (r *applicationRepo) ListBySeeker(ctx context.Context, seekerID int64) ([]domain.Application, error) {
	return r.queryApplications(ctx, applicationSelect+` WHERE a.job_seeker_id = $1 ORDER BY a.applied_at DESC, a.id DESC`, seekerID)
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return r.queryApplications(ctx, applicationSelect+` WHERE a.job_id = $1 ORDER BY a.applied_at DESC, a.id DESC`, jobID)
}

// ListByJobOwner returns applications across every job created by ownerID.
func (r *applicationRepo) ListByJobOwner(ctx context.Context, ownerID int64) ([]domain.Application, error) {
	return r.queryApplications(ctx, applicationSelect+` WHERE j.created_by = $1 ORDER BY a.applied_at DESC, a.id DESC`, ownerID)
}
