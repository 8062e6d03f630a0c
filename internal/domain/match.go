package domain

import "context"

// JobMatch is one ranked job with its overlap against a seeker's skills.
type JobMatch struct {
	Job            Job
	MatchScore     float64
	MatchingSkills []string
	MissingSkills  []string
}

// MatchResult is the outcome of a match request. TotalMatchesFound counts
// every job over the threshold, before truncation to SuggestedJobs.
type MatchResult struct {
	Message           string
	UserSkills        []string
	TotalMatchesFound int
	SuggestedJobs     []JobMatch
}

// JobMatchResponse is the read shape of a JobMatch: the job fields plus scoring.
type JobMatchResponse struct {
	JobResponse
	MatchScore     float64  `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

type MatchResultResponse struct {
	Message           string             `json:"message,omitempty"`
	UserSkills        []string           `json:"user_skills,omitempty"`
	TotalMatchesFound int                `json:"total_matches_found"`
	SuggestedJobs     []JobMatchResponse `json:"suggested_jobs"`
}

type SkillAnalysis struct {
	Message     string   `json:"message,omitempty"`
	SkillsCount int      `json:"skills_count"`
	Skills      []string `json:"skills"`
	Analysis    string   `json:"analysis,omitempty"`
}

func NewMatchResultResponse(r *MatchResult) MatchResultResponse {
	jobs := make([]JobMatchResponse, 0, len(r.SuggestedJobs))
	for i := range r.SuggestedJobs {
		m := &r.SuggestedJobs[i]
		jobs = append(jobs, JobMatchResponse{
			JobResponse:    NewJobResponse(&m.Job),
			MatchScore:     m.MatchScore,
			MatchingSkills: nonNil(m.MatchingSkills),
			MissingSkills:  nonNil(m.MissingSkills),
		})
	}
	return MatchResultResponse{
		Message:           r.Message,
		UserSkills:        r.UserSkills,
		TotalMatchesFound: r.TotalMatchesFound,
		SuggestedJobs:     jobs,
	}
}

type MatchingUsecase interface {
	MatchJobsForSeeker(ctx context.Context, seeker *User) (*MatchResult, error)
	SkillAnalysis(ctx context.Context, seeker *User) (*SkillAnalysis, error)
}
