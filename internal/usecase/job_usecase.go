package usecase

import (
	"context"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/policy"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/logger"
	"job-board-backend/pkg/metrics"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, userRepo domain.UserRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// CreateJob records actor as the creator. New jobs are active unless the
// input says otherwise.
func (u *jobUsecase) CreateJob(ctx context.Context, actor *domain.User, in domain.JobInput) (*domain.Job, error) {
	if err := policy.CanAct(actor, policy.ActionCreateJob, policy.Target{}).Err("Permission denied"); err != nil {
		return nil, err
	}
	return u.create(ctx, actor, in)
}

// AdminCreateJob creates a job owned by createdByID, or by the admin when nil.
// The named owner must be a recruiter or an admin.
func (u *jobUsecase) AdminCreateJob(ctx context.Context, actor *domain.User, createdByID *int64, in domain.JobInput) (*domain.Job, error) {
	// Authorize before any lookup so non-admins learn nothing about user ids
	decision := policy.CanAct(actor, policy.ActionCreateJobOnBehalf, policy.Target{})
	if err := decision.Err("Only admins can create jobs on behalf of other users"); err != nil {
		return nil, err
	}

	owner := actor
	if createdByID != nil && *createdByID != actor.ID {
		user, err := u.userRepo.GetByID(ctx, *createdByID)
		if err != nil {
			return nil, err
		}
		owner = user
	}
	if owner.Role == domain.RoleJobSeeker {
		return nil, apperror.BadRequest("Job owner must be a recruiter or admin")
	}
	return u.create(ctx, owner, in)
}

func (u *jobUsecase) create(ctx context.Context, owner *domain.User, in domain.JobInput) (*domain.Job, error) {
	job := &domain.Job{CreatedByID: owner.ID, IsActive: true}
	in.Apply(job)

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	summary := owner.Summary()
	job.CreatedBy = &summary

	metrics.JobsCreatedTotal.WithLabelValues(string(job.JobType)).Inc()
	logger.Log.Info("job created", "job_id", job.ID, "created_by", owner.ID)
	return job, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	return u.jobRepo.GetByID(ctx, id)
}

func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Search(ctx, filter, pageSize, offset)
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, actor *domain.User) ([]domain.Job, error) {
	return u.jobRepo.ListByCreator(ctx, actor.ID)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actor *domain.User, id int64, in domain.JobInput) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAct(actor, policy.ActionUpdateJob, policy.Target{Job: job}).Err("You can only update your own jobs"); err != nil {
		return nil, err
	}

	in.Apply(job)
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// ToggleActive flips is_active and returns the updated job.
func (u *jobUsecase) ToggleActive(ctx context.Context, actor *domain.User, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAct(actor, policy.ActionToggleJob, policy.Target{Job: job}).Err("You can only modify your own jobs"); err != nil {
		return nil, err
	}

	if err := u.jobRepo.SetActive(ctx, job.ID, !job.IsActive); err != nil {
		return nil, err
	}
	job.IsActive = !job.IsActive

	logger.Log.Info("job toggled", "job_id", job.ID, "is_active", job.IsActive, "actor_id", actor.ID)
	return job, nil
}

// DeleteJob removes the job and, through the store, its applications.
func (u *jobUsecase) DeleteJob(ctx context.Context, actor *domain.User, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAct(actor, policy.ActionDeleteJob, policy.Target{Job: job}).Err("You can only delete your own jobs"); err != nil {
		return nil, err
	}

	if err := u.jobRepo.Delete(ctx, job.ID); err != nil {
		return nil, err
	}

	logger.Log.Info("job deleted", "job_id", job.ID, "actor_id", actor.ID)
	return job, nil
}
