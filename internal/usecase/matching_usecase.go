package usecase

import (
	"context"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/domain/matching"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/logger"
	"job-board-backend/pkg/metrics"
)

const (
	msgSeekersOnly    = "This endpoint is only for job seekers"
	msgNoSkills       = "Add skills to your profile to get job matches"
	msgNoSkillsToShow = "No skills found. Add skills to your profile."
)

type matchingUsecase struct {
	jobRepo domain.JobRepository
	opts    matching.Options
}

// NewMatchingUsecase ranks active jobs against a seeker's skills using opts.
func NewMatchingUsecase(jobRepo domain.JobRepository, opts matching.Options) domain.MatchingUsecase {
	return &matchingUsecase{jobRepo: jobRepo, opts: opts}
}

func (u *matchingUsecase) MatchJobsForSeeker(ctx context.Context, seeker *domain.User) (*domain.MatchResult, error) {
	if seeker == nil || seeker.Role != domain.RoleJobSeeker {
		return nil, apperror.WrongRole(msgSeekersOnly)
	}

	if len(seeker.Skills) == 0 {
		metrics.MatchRequestsTotal.WithLabelValues("no_skills").Inc()
		return &domain.MatchResult{
			Message:       msgNoSkills,
			UserSkills:    []string{},
			SuggestedJobs: []domain.JobMatch{},
		}, nil
	}

	jobs, err := u.jobRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	matches, total := matching.Rank(seeker.Skills, jobs, u.opts)

	result := &domain.MatchResult{
		UserSkills:        seeker.Skills,
		TotalMatchesFound: total,
		SuggestedJobs:     matches,
	}
	if total == 0 {
		metrics.MatchRequestsTotal.WithLabelValues("no_matches").Inc()
	} else {
		metrics.MatchRequestsTotal.WithLabelValues("matched").Inc()
	}

	logger.Log.Debug("job matches computed",
		"user_id", seeker.ID, "active_jobs", len(jobs), "matches", total, "returned", len(matches))
	return result, nil
}

func (u *matchingUsecase) SkillAnalysis(ctx context.Context, seeker *domain.User) (*domain.SkillAnalysis, error) {
	if seeker == nil || seeker.Role != domain.RoleJobSeeker {
		return nil, apperror.WrongRole(msgSeekersOnly)
	}

	if len(seeker.Skills) == 0 {
		return &domain.SkillAnalysis{
			Message: msgNoSkillsToShow,
			Skills:  []string{},
		}, nil
	}

	return &domain.SkillAnalysis{
		SkillsCount: len(seeker.Skills),
		Skills:      seeker.Skills,
		Analysis:    "Skills successfully analyzed",
	}, nil
}
