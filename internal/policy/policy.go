// Package policy decides whether an actor may perform an action on a target.
// Every function here is pure; callers fetch the target first and consult
// CanAct before mutating anything.
package policy

import (
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
)

type Action int

const (
	ActionCreateJob Action = iota
	ActionCreateJobOnBehalf
	ActionUpdateJob
	ActionDeleteJob
	ActionToggleJob
	ActionViewJobApplications
	ActionCreateApplication
	ActionUpdateApplicationStatus
	ActionViewApplication
	ActionVerifyUser
	ActionDeleteUser
)

var actionNames = map[Action]string{
	ActionCreateJob:               "create_job",
	ActionCreateJobOnBehalf:       "create_job_on_behalf",
	ActionUpdateJob:               "update_job",
	ActionDeleteJob:               "delete_job",
	ActionToggleJob:               "toggle_job",
	ActionViewJobApplications:     "view_job_applications",
	ActionCreateApplication:       "create_application",
	ActionUpdateApplicationStatus: "update_application_status",
	ActionViewApplication:         "view_application",
	ActionVerifyUser:              "verify_user",
	ActionDeleteUser:              "delete_user",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Target carries whatever the action operates on. Job must be set for
// application actions that check ownership of the parent job.
type Target struct {
	User        *domain.User
	Job         *domain.Job
	Application *domain.Application
}

type Reason int

const (
	ReasonNone Reason = iota
	ReasonForbidden
	// ReasonNotFound hides the existence of a resource the actor may not see.
	ReasonNotFound
	ReasonSelfDeletion
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

var allow = Decision{Allowed: true}

func deny(r Reason) Decision {
	return Decision{Reason: r}
}

// Err converts a deny into the matching AppError, using message as the
// user-facing text. It returns nil for an allow.
func (d Decision) Err(message string) error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonNotFound:
		return apperror.NotFound(message)
	case ReasonSelfDeletion:
		return apperror.SelfDeletionForbidden(message)
	default:
		return apperror.Forbidden(message)
	}
}

// CanAct evaluates the rules in precedence order: role-bound actions first,
// then the admin rule, then the per-action ownership rules.
func CanAct(actor *domain.User, action Action, target Target) Decision {
	if actor == nil {
		return deny(ReasonForbidden)
	}

	// Only job seekers can be the applicant on an application, admins included.
	if action == ActionCreateApplication {
		if actor.Role == domain.RoleJobSeeker {
			return allow
		}
		return deny(ReasonForbidden)
	}

	switch actor.Role {
	case domain.RoleAdmin:
		if action == ActionDeleteUser && target.User != nil && target.User.ID == actor.ID {
			return deny(ReasonSelfDeletion)
		}
		return allow
	case domain.RoleRecruiter, domain.RoleJobSeeker:
		return memberRule(actor, action, target)
	default:
		return deny(ReasonForbidden)
	}
}

func memberRule(actor *domain.User, action Action, target Target) Decision {
	switch action {
	case ActionCreateJob:
		return allow
	case ActionUpdateJob, ActionDeleteJob, ActionToggleJob, ActionViewJobApplications,
		ActionUpdateApplicationStatus:
		return ownsJob(actor, target.Job)
	case ActionViewApplication:
		if target.Application != nil && target.Application.JobSeekerID == actor.ID {
			return allow
		}
		if ownsJob(actor, target.Job).Allowed {
			return allow
		}
		return deny(ReasonNotFound)
	case ActionCreateJobOnBehalf, ActionVerifyUser, ActionDeleteUser:
		return deny(ReasonForbidden)
	default:
		return deny(ReasonForbidden)
	}
}

func ownsJob(actor *domain.User, job *domain.Job) Decision {
	if job != nil && job.CreatedByID == actor.ID {
		return allow
	}
	return deny(ReasonForbidden)
}
