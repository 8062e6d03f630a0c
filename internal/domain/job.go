package domain

import (
	"context"
	"strings"
	"time"
)

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
	JobTypeHybrid   JobType = "hybrid"
	JobTypeOnsite   JobType = "onsite"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote, JobTypeHybrid, JobTypeOnsite:
		return true
	}
	return false
}

type Job struct {
	ID             int64        `json:"id"`
	CreatedByID    int64        `json:"created_by_id"`
	CreatedBy      *UserSummary `json:"created_by,omitempty"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Category       string       `json:"category"`
	RequiredSkills []string     `json:"required_skills"` // nil when never set
	SalaryRange    string       `json:"salary_range"`
	Location       string       `json:"location"`
	JobType        JobType      `json:"job_type"`
	IsActive       bool         `json:"is_active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// JobInput is the write shape for creating and updating jobs.
type JobInput struct {
	Title          string   `json:"title" binding:"required,max=255,no_emoji"`
	Description    string   `json:"description" binding:"required"`
	Category       string   `json:"category" binding:"required,max=255"`
	RequiredSkills []string `json:"required_skills" binding:"omitempty,max=100,dive,skill"`
	SalaryRange    string   `json:"salary_range" binding:"required,max=255"`
	Location       string   `json:"location" binding:"required,max=255"`
	JobType        JobType  `json:"job_type" binding:"required,job_type"`
	IsActive       *bool    `json:"is_active"`
}

// JobResponse is the read shape of a Job.
type JobResponse struct {
	ID             int64        `json:"id"`
	CreatedBy      *UserSummary `json:"created_by,omitempty"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Category       string       `json:"category"`
	RequiredSkills []string     `json:"required_skills"`
	SalaryRange    string       `json:"salary_range"`
	Location       string       `json:"location"`
	JobType        JobType      `json:"job_type"`
	IsActive       bool         `json:"is_active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// JobSummary is the nested read shape used inside applications.
type JobSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	CreatedByID int64  `json:"created_by_id"`
}

// JobFilter narrows public job listings. Empty fields do not filter.
type JobFilter struct {
	Query    string
	Location string
	Category string
	JobType  JobType
	IsActive *bool
}

func NewJobResponse(j *Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		CreatedBy:      j.CreatedBy,
		Title:          j.Title,
		Description:    j.Description,
		Category:       j.Category,
		RequiredSkills: nonNil(j.RequiredSkills),
		SalaryRange:    j.SalaryRange,
		Location:       j.Location,
		JobType:        j.JobType,
		IsActive:       j.IsActive,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func NewJobResponses(jobs []Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}

// Apply copies in onto j. IsActive is only touched when provided.
func (in JobInput) Apply(j *Job) {
	j.Title = strings.TrimSpace(in.Title)
	j.Description = in.Description
	j.Category = strings.TrimSpace(in.Category)
	if in.RequiredSkills != nil {
		j.RequiredSkills = NormalizeSkills(in.RequiredSkills)
	} else {
		j.RequiredSkills = nil
	}
	j.SalaryRange = strings.TrimSpace(in.SalaryRange)
	j.Location = strings.TrimSpace(in.Location)
	j.JobType = in.JobType
	if in.IsActive != nil {
		j.IsActive = *in.IsActive
	}
}

// NormalizeSkills trims entries and drops blanks, keeping order and case.
// Matching is case-sensitive, so "go" and "Go" stay distinct.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetActiveByID(ctx context.Context, id int64) (*Job, error)
	ListActive(ctx context.Context) ([]Job, error)
	ListByCreator(ctx context.Context, userID int64) ([]Job, error)
	Search(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor *User, in JobInput) (*Job, error)
	AdminCreateJob(ctx context.Context, actor *User, createdByID *int64, in JobInput) (*Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	SearchJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]Job, int64, error)
	ListMyJobs(ctx context.Context, actor *User) ([]Job, error)
	UpdateJob(ctx context.Context, actor *User, id int64, in JobInput) (*Job, error)
	ToggleActive(ctx context.Context, actor *User, id int64) (*Job, error)
	DeleteJob(ctx context.Context, actor *User, id int64) (*Job, error)
}
