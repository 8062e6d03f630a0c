package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// User profile fields
	"Email":          "Email",
	"Password":       "Password",
	"Role":           "Role",
	"FullName":       "Full name",
	"Bio":            "Bio",
	"Skills":         "Skills",
	"PortfolioLinks": "Portfolio links",
	"ImageURL":       "Image URL",

	// Job fields
	"Title":          "Title",
	"Description":    "Description",
	"Category":       "Category",
	"RequiredSkills": "Required skills",
	"SalaryRange":    "Salary range",
	"Location":       "Location",
	"JobType":        "Job type",
	"CreatedBy":      "Created by",

	// Application fields
	"CoverLetter": "Cover letter",
	"ResumeURL":   "Resume URL",
	"Status":      "Status",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must have at least %s items", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must have at most %s items", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "email":
		return fmt.Sprintf("%s: Invalid email format", label)

	case "url":
		return fmt.Sprintf("%s: Invalid URL format", label)

	case "valid_name":
		return fmt.Sprintf("%s: Only letters, numbers, spaces and common punctuation (. ' - /) are allowed", label)

	case "no_emoji":
		return fmt.Sprintf("%s: Must not contain emoji or special symbols", label)

	case "skill":
		return fmt.Sprintf("%s: Each skill must be at most %d printable characters", label, maxSkillLength)

	case "job_type":
		return fmt.Sprintf("%s: Must be one of: full-time, part-time, contract, remote, hybrid, onsite", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
