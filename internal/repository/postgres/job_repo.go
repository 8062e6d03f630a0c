package postgres

import (
	"context"
	"fmt"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobSelect = `
	SELECT
		j.id, j.created_by, j.title, j.description, j.category, j.required_skills,
		j.salary_range, j.location, j.job_type, j.is_active, j.created_at, j.updated_at,
		u.email, u.full_name, u.role
	FROM jobs j
	JOIN users u ON u.id = j.created_by`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var (
		job     domain.Job
		creator domain.UserSummary
		skills  pq.StringArray
	)
	err := row.Scan(
		&job.ID, &job.CreatedByID, &job.Title, &job.Description, &job.Category, &skills,
		&job.SalaryRange, &job.Location, &job.JobType, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
		&creator.Email, &creator.FullName, &creator.Role,
	)
	if err != nil {
		return nil, err
	}
	if skills != nil {
		job.RequiredSkills = []string(skills)
	}
	creator.ID = job.CreatedByID
	job.CreatedBy = &creator
	return &job, nil
}

func (r *jobRepo) queryJobs(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "")
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, translateError(err, "")
		}
		jobs = append(jobs, *job)
	}
	return jobs, translateError(rows.Err(), "")
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (created_by, title, description, category, required_skills, salary_range, location, job_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	err := r.db.QueryRow(ctx, query,
		job.CreatedByID, job.Title, job.Description, job.Category, pq.Array(job.RequiredSkills),
		job.SalaryRange, job.Location, string(job.JobType), job.IsActive, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	return translateError(err, "")
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
	if err != nil {
		return nil, translateError(err, "Job not found")
	}
	return job, nil
}

// GetActiveByID behaves like GetByID but reports inactive jobs as not found.
func (r *jobRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1 AND j.is_active = TRUE`, id))
	if err != nil {
		return nil, translateError(err, "Job not found")
	}
	return job, nil
}

// ListActive returns active jobs in a stable order (oldest first) so that
// equal match scores rank deterministically.
func (r *jobRepo) ListActive(ctx context.Context) ([]domain.Job, error) {
	return r.queryJobs(ctx, jobSelect+` WHERE j.is_active = TRUE ORDER BY j.id ASC`)
}

func (r *jobRepo) ListByCreator(ctx context.Context, userID int64) ([]domain.Job, error) {
	return r.queryJobs(ctx, jobSelect+` WHERE j.created_by = $1 ORDER BY j.created_at DESC, j.id DESC`, userID)
}

func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	var (
		conds []string
		args  []any
	)
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, containsPattern(q))
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(j.title ILIKE $%d ESCAPE '\' OR j.description ILIKE $%d ESCAPE '\' OR j.category ILIKE $%d ESCAPE '\' OR j.location ILIKE $%d ESCAPE '\')`, n, n, n, n))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, containsPattern(loc))
		conds = append(conds, fmt.Sprintf(`j.location ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if cat := strings.TrimSpace(filter.Category); cat != "" {
		args = append(args, containsPattern(cat))
		conds = append(conds, fmt.Sprintf(`j.category ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if filter.JobType != "" {
		args = append(args, string(filter.JobType))
		conds = append(conds, fmt.Sprintf("j.job_type = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("j.is_active = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j`+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err, "")
	}

	pageArgs := append(append([]any{}, args...), limit, offset)
	query := jobSelect + where + fmt.Sprintf(" ORDER BY j.created_at DESC, j.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	jobs, err := r.queryJobs(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// likeEscaper makes user input match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a substring ILIKE pattern for s.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, category = $4, required_skills = $5, salary_range = $6,
		    location = $7, job_type = $8, is_active = $9, updated_at = $10
		WHERE id = $1`

	job.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Category, pq.Array(job.RequiredSkills), job.SalaryRange,
		job.Location, string(job.JobType), job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "Job not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Job not found")
	}
	return nil
}

func (r *jobRepo) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.Exec(ctx, `UPDATE jobs SET is_active = $2, updated_at = $3 WHERE id = $1`, id, active, time.Now())
	if err != nil {
		return translateError(err, "Job not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Job not found")
	}
	return nil
}

// Delete removes the job; its applications go with it via ON DELETE CASCADE.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "Job not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Job not found")
	}
	return nil
}
