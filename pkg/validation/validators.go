package validation

import (
	"errors"
	"job-board-backend/internal/domain"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxSkillLength = 100

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("skill", Skill)
	_ = v.RegisterValidation("job_type", JobType)
}

// RegisterGinValidators installs the custom tags on gin's binding engine so
// ShouldBindJSON enforces them.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation: gin binding engine is not go-playground/validator")
	}
	RegisterValidators(v)
	return nil
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// Skill accepts a short, printable skill name. Blank entries pass here and
// are dropped by domain.NormalizeSkills; case is preserved because matching
// is case-sensitive.
func Skill(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if len(val) > maxSkillLength {
		return false
	}
	for _, r := range val {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// JobType accepts only the defined domain.JobType values.
func JobType(fl validator.FieldLevel) bool {
	return domain.JobType(fl.Field().String()).Valid()
}
