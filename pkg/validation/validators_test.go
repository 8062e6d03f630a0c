package validation_test

import (
	"strings"
	"testing"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	validation.RegisterValidators(v)
	return v
}

func validJob() domain.JobInput {
	return domain.JobInput{
		Title:          "Backend Engineer",
		Description:    "Build APIs",
		Category:       "Engineering",
		RequiredSkills: []string{"Go", "SQL"},
		SalaryRange:    "100k",
		Location:       "Remote",
		JobType:        domain.JobTypeFullTime,
	}
}

func TestJobInputValidation(t *testing.T) {
	v := newValidator()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Struct(validJob()))
	})

	t.Run("unknown job type", func(t *testing.T) {
		in := validJob()
		in.JobType = "freelance"
		err := v.Struct(in)
		require.Error(t, err)
		msgs := validation.FormatValidationErrors(err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "Job type")
	})

	t.Run("oversized skill", func(t *testing.T) {
		in := validJob()
		in.RequiredSkills = []string{strings.Repeat("x", 101)}
		assert.Error(t, v.Struct(in))
	})

	t.Run("emoji in title", func(t *testing.T) {
		in := validJob()
		in.Title = "Rockstar Engineer 🚀"
		msgs := validation.FormatValidationErrors(v.Struct(in))
		assert.Equal(t, []string{"Title: Must not contain emoji or special symbols"}, msgs)
	})

	t.Run("missing required fields", func(t *testing.T) {
		msgs := validation.FormatValidationErrors(v.Struct(domain.JobInput{JobType: domain.JobTypeRemote}))
		assert.Contains(t, msgs, "Title: This field is required")
		assert.Contains(t, msgs, "Salary range: This field is required")
	})
}

func TestProfileInputValidation(t *testing.T) {
	v := newValidator()

	bad := "not a url"
	err := v.Struct(domain.ProfileInput{ImageURL: &bad})
	require.Error(t, err)
	assert.Equal(t, []string{"Image URL: Invalid URL format"}, validation.FormatValidationErrors(err))

	assert.NoError(t, v.Struct(domain.ProfileInput{Skills: []string{"Go", "PostgreSQL"}}))

	name := "<b>Ada</b>"
	err = v.Struct(domain.ProfileInput{FullName: &name})
	require.Error(t, err)
	assert.Contains(t, validation.FormatValidationErrors(err)[0], "Full name: Only letters")

	ok := "Ada O'Neil-Lovelace"
	assert.NoError(t, v.Struct(domain.ProfileInput{FullName: &ok}))
}
