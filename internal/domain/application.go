package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

// No ordering is enforced between statuses; any status may follow any other.
const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusViewed      ApplicationStatus = "viewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusHired       ApplicationStatus = "hired"
)

// ApplicationStatuses lists every defined status in display order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusSubmitted,
	ApplicationStatusViewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusHired,
}

func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application is unique per (JobSeekerID, JobID).
type Application struct {
	ID          int64             `json:"id"`
	JobSeekerID int64             `json:"job_seeker_id"`
	JobID       int64             `json:"job_id"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"cover_letter"`
	ResumeURL   string            `json:"resume_url"`
	AppliedAt   time.Time         `json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Joined data for list responses
	JobSeeker *UserSummary `json:"job_seeker,omitempty"`
	Job       *JobSummary  `json:"job,omitempty"`
}

// ApplyInput is the write shape for a new application.
type ApplyInput struct {
	CoverLetter string `json:"cover_letter" binding:"max=10000"`
	ResumeURL   string `json:"resume_url" binding:"omitempty,url"`
}

// ApplicationResponse is the read shape of an Application.
type ApplicationResponse struct {
	ID          int64             `json:"id"`
	JobSeeker   *UserSummary      `json:"job_seeker,omitempty"`
	Job         *JobSummary       `json:"job,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"cover_letter"`
	ResumeURL   string            `json:"resume_url"`
	AppliedAt   time.Time         `json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// JobApplications is the owner's view of every application on one job.
type JobApplications struct {
	JobID             int64                 `json:"job_id"`
	JobTitle          string                `json:"job_title"`
	TotalApplications int                   `json:"total_applications"`
	Applications      []ApplicationResponse `json:"applications"`
}

func NewApplicationResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobSeeker:   a.JobSeeker,
		Job:         a.Job,
		Status:      a.Status,
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewApplicationResponses(apps []Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}

// ApplicationRepository defines data access methods for applications.
// Create must report a (job_seeker, job) uniqueness violation as
// apperror.DuplicateApplication.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	Exists(ctx context.Context, seekerID, jobID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) (*Application, error)
	ListBySeeker(ctx context.Context, seekerID int64) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	ListByJobOwner(ctx context.Context, ownerID int64) ([]Application, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	Apply(ctx context.Context, seeker *User, jobID int64, in ApplyInput) (*Application, error)
	UpdateStatus(ctx context.Context, actor *User, applicationID int64, status string) (*Application, error)
	GetApplication(ctx context.Context, actor *User, applicationID int64) (*Application, error)
	ListVisible(ctx context.Context, actor *User) ([]Application, error)
	ListForSeeker(ctx context.Context, seeker *User) ([]Application, error)
	ListForJobOwner(ctx context.Context, actor *User, jobID int64) (*JobApplications, error)
	ListForRecruiter(ctx context.Context, actor *User) ([]Application, error)
}
