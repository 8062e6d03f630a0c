package usecase

import (
	"context"
	"errors"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/policy"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/logger"
	"job-board-backend/pkg/metrics"
	"sort"
	"strings"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits an application from seeker to an active job.
func (uc *applicationUsecase) Apply(ctx context.Context, seeker *domain.User, jobID int64, in domain.ApplyInput) (*domain.Application, error) {
	// 1. Only job seekers apply
	if err := policy.CanAct(seeker, policy.ActionCreateApplication, policy.Target{}).Err("Only job seekers can apply for jobs"); err != nil {
		return nil, err
	}

	// 2. Job must exist and be active
	job, err := uc.jobRepo.GetActiveByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	// 3. Fast-path duplicate check; the store's unique constraint is authoritative
	exists, err := uc.applicationRepo.Exists(ctx, seeker.ID, job.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		metrics.ApplicationsDuplicateTotal.WithLabelValues("precheck").Inc()
		return nil, apperror.DuplicateApplication("You have already applied for this job", nil)
	}

	// 4. Create application
	app := &domain.Application{
		JobSeekerID: seeker.ID,
		JobID:       job.ID,
		Status:      domain.ApplicationStatusSubmitted,
		CoverLetter: in.CoverLetter,
		ResumeURL:   strings.TrimSpace(in.ResumeURL),
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, apperror.ErrDuplicateApplication) {
			metrics.ApplicationsDuplicateTotal.WithLabelValues("constraint").Inc()
		}
		return nil, err
	}

	summary := seeker.Summary()
	app.JobSeeker = &summary
	app.Job = &domain.JobSummary{ID: job.ID, Title: job.Title, CreatedByID: job.CreatedByID}

	metrics.ApplicationsSubmittedTotal.Inc()
	logger.Log.Info("application submitted", "application_id", app.ID, "job_id", job.ID, "job_seeker_id", seeker.ID)
	return app, nil
}

// UpdateStatus sets any defined status; transitions are not ordered.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actor *domain.User, applicationID int64, status string) (*domain.Application, error) {
	// 1. Get application
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	// 2. Validate status
	newStatus := domain.ApplicationStatus(status)
	if !newStatus.Valid() {
		return nil, apperror.InvalidStatus("Invalid status. Must be one of: submitted, viewed, shortlisted, rejected, hired")
	}

	// 3. Only the job's creator or an admin may change it
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	decision := policy.CanAct(actor, policy.ActionUpdateApplicationStatus, policy.Target{Job: job, Application: app})
	if err := decision.Err("Permission denied"); err != nil {
		return nil, err
	}

	// 4. Persist (also bumps updated_at)
	updated, err := uc.applicationRepo.UpdateStatus(ctx, app.ID, newStatus)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationStatusUpdatesTotal.WithLabelValues(string(newStatus)).Inc()
	logger.Log.Info("application status updated",
		"application_id", app.ID, "from", app.Status, "to", newStatus, "actor_id", actor.ID)
	return updated, nil
}

// GetApplication returns one application if actor may see it. Applications
// outside the actor's view are reported as not found.
func (uc *applicationUsecase) GetApplication(ctx context.Context, actor *domain.User, applicationID int64) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	decision := policy.CanAct(actor, policy.ActionViewApplication, policy.Target{Job: job, Application: app})
	if err := decision.Err("Application not found"); err != nil {
		return nil, err
	}
	return app, nil
}

// ListVisible returns a seeker's own applications, or for recruiters and
// admins the applications on jobs they created.
func (uc *applicationUsecase) ListVisible(ctx context.Context, actor *domain.User) ([]domain.Application, error) {
	if actor.Role == domain.RoleJobSeeker {
		return uc.ListForSeeker(ctx, actor)
	}
	return uc.ListForRecruiter(ctx, actor)
}

// ListForSeeker returns the seeker's applications, newest first.
func (uc *applicationUsecase) ListForSeeker(ctx context.Context, seeker *domain.User) ([]domain.Application, error) {
	if seeker.Role != domain.RoleJobSeeker {
		return nil, apperror.Forbidden("Only job seekers can view their applications")
	}

	apps, err := uc.applicationRepo.ListBySeeker(ctx, seeker.ID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(apps)
	return apps, nil
}

// ListForJobOwner returns every application on a job for its creator or an admin.
func (uc *applicationUsecase) ListForJobOwner(ctx context.Context, actor *domain.User, jobID int64) (*domain.JobApplications, error) {
	// 1. Job must exist
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	// 2. Validate ownership
	if err := policy.CanAct(actor, policy.ActionViewJobApplications, policy.Target{Job: job}).Err("Permission denied"); err != nil {
		return nil, err
	}

	// 3. Fetch applications
	apps, err := uc.applicationRepo.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(apps)

	return &domain.JobApplications{
		JobID:             job.ID,
		JobTitle:          job.Title,
		TotalApplications: len(apps),
		Applications:      domain.NewApplicationResponses(apps),
	}, nil
}

// ListForRecruiter returns applications across the actor's own jobs.
// Job seekers get an empty list rather than an error.
func (uc *applicationUsecase) ListForRecruiter(ctx context.Context, actor *domain.User) ([]domain.Application, error) {
	switch actor.Role {
	case domain.RoleRecruiter, domain.RoleAdmin:
	default:
		return []domain.Application{}, nil
	}

	apps, err := uc.applicationRepo.ListByJobOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(apps)
	return apps, nil
}

func sortNewestFirst(apps []domain.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedAt.After(apps[j].AppliedAt)
	})
}
