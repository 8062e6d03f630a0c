package matching_test

import (
	"fmt"
	"testing"

	"job-board-backend/internal/domain"
	"job-board-backend/internal/domain/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(id int64, skills ...string) domain.Job {
	return domain.Job{ID: id, Title: fmt.Sprintf("job-%d", id), RequiredSkills: skills, IsActive: true}
}

func TestCompare(t *testing.T) {
	t.Run("partial overlap", func(t *testing.T) {
		sc := matching.Compare([]string{"Python", "SQL"}, []string{"Python", "SQL", "Go"})
		assert.InDelta(t, 66.6666, sc.Percent, 0.001)
		assert.Equal(t, []string{"Python", "SQL"}, sc.Matching)
		assert.Equal(t, []string{"Go"}, sc.Missing)
	})

	t.Run("no overlap", func(t *testing.T) {
		sc := matching.Compare([]string{"Python"}, []string{"Java"})
		assert.Equal(t, 0.0, sc.Percent)
		assert.Empty(t, sc.Matching)
		assert.Equal(t, []string{"Java"}, sc.Missing)
	})

	t.Run("case sensitive", func(t *testing.T) {
		sc := matching.Compare([]string{"go"}, []string{"Go"})
		assert.Equal(t, 0.0, sc.Percent)
	})

	t.Run("duplicate job skills count once", func(t *testing.T) {
		sc := matching.Compare([]string{"Go"}, []string{"Go", "Go", "Rust"})
		assert.Equal(t, 50.0, sc.Percent)
		assert.Equal(t, 2, sc.Required)
	})

	t.Run("empty job skills", func(t *testing.T) {
		sc := matching.Compare([]string{"Go"}, nil)
		assert.Equal(t, 0, sc.Required)
		assert.Equal(t, 0.0, sc.Percent)
	})
}

func TestRank(t *testing.T) {
	seeker := []string{"Python", "SQL"}

	t.Run("scores, filters and rounds", func(t *testing.T) {
		jobs := []domain.Job{
			job(1, "Python", "SQL", "Go"),
			job(2, "Java"),
			job(3),
			job(4, "Python"),
		}
		matches, total := matching.Rank(seeker, jobs, matching.DefaultOptions())
		require.Len(t, matches, 2)
		assert.Equal(t, 2, total)

		assert.Equal(t, int64(4), matches[0].Job.ID)
		assert.Equal(t, 100.0, matches[0].MatchScore)

		assert.Equal(t, int64(1), matches[1].Job.ID)
		assert.Equal(t, 66.67, matches[1].MatchScore)
		assert.Equal(t, []string{"Python", "SQL"}, matches[1].MatchingSkills)
		assert.Equal(t, []string{"Go"}, matches[1].MissingSkills)
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		// 3 of 10 = exactly 30%
		jobs := []domain.Job{job(1, "Python", "SQL", "Go", "a", "b", "c", "d", "e", "f", "g")}
		matches, _ := matching.Rank([]string{"Python", "SQL", "Go"}, jobs, matching.DefaultOptions())
		require.Len(t, matches, 1)
		assert.Equal(t, 30.0, matches[0].MatchScore)

		below := []domain.Job{job(2, "Python", "x", "y", "z")}
		matches, total := matching.Rank(seeker, below, matching.DefaultOptions())
		assert.Empty(t, matches)
		assert.Equal(t, 0, total)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		jobs := []domain.Job{job(7, "Python"), job(3, "SQL"), job(5, "Python", "SQL")}
		matches, _ := matching.Rank(seeker, jobs, matching.DefaultOptions())
		require.Len(t, matches, 3)
		assert.Equal(t, []int64{5, 7, 3}, []int64{matches[0].Job.ID, matches[1].Job.ID, matches[2].Job.ID})
	})

	t.Run("truncates to limit but reports total", func(t *testing.T) {
		var jobs []domain.Job
		for i := int64(1); i <= 15; i++ {
			jobs = append(jobs, job(i, "Python"))
		}
		matches, total := matching.Rank(seeker, jobs, matching.DefaultOptions())
		assert.Len(t, matches, 10)
		assert.Equal(t, 15, total)
		assert.Equal(t, int64(1), matches[0].Job.ID)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, matching.Round2(200.0/3))
	assert.Equal(t, 33.33, matching.Round2(100.0/3))
	assert.Equal(t, 100.0, matching.Round2(100))
}
