package matching

import (
	"math"
	"sort"

	"job-board-backend/internal/domain"
)

const (
	DefaultMinScore = 30.0
	DefaultLimit    = 10
)

type Options struct {
	MinScore float64 // inclusive, compared before rounding
	Limit    int     // <= 0 disables truncation
}

func DefaultOptions() Options {
	return Options{MinScore: DefaultMinScore, Limit: DefaultLimit}
}

// Score is the overlap of a seeker's skills with one job's required skills.
// Matching and Missing follow the job's skill order.
type Score struct {
	Percent  float64
	Required int
	Matching []string
	Missing  []string
}

// Compare treats both inputs as sets with exact, case-sensitive equality.
func Compare(seekerSkills, jobSkills []string) Score {
	have := make(map[string]struct{}, len(seekerSkills))
	for _, s := range seekerSkills {
		have[s] = struct{}{}
	}

	seen := make(map[string]struct{}, len(jobSkills))
	matching := make([]string, 0, len(jobSkills))
	missing := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := have[s]; ok {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}

	required := len(seen)
	if required == 0 {
		return Score{Matching: matching, Missing: missing}
	}
	return Score{
		Percent:  float64(len(matching)) / float64(required) * 100,
		Required: required,
		Matching: matching,
		Missing:  missing,
	}
}

// Rank scores every job with at least one required skill, keeps those at or
// above opts.MinScore, and orders them by score descending. Equal scores keep
// their input order. total is the count before truncation to opts.Limit.
func Rank(seekerSkills []string, jobs []domain.Job, opts Options) (matches []domain.JobMatch, total int) {
	matches = make([]domain.JobMatch, 0)
	for _, job := range jobs {
		if len(job.RequiredSkills) == 0 {
			continue
		}
		sc := Compare(seekerSkills, job.RequiredSkills)
		if sc.Required == 0 || sc.Percent < opts.MinScore {
			continue
		}
		matches = append(matches, domain.JobMatch{
			Job:            job,
			MatchScore:     sc.Percent,
			MatchingSkills: sc.Matching,
			MissingSkills:  sc.Missing,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	total = len(matches)
	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}
	for i := range matches {
		matches[i].MatchScore = Round2(matches[i].MatchScore)
	}
	return matches, total
}

// Round2 rounds half to even at two decimals.
func Round2(f float64) float64 {
	return math.RoundToEven(f*100) / 100
}
