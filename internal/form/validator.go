package form

import (
	"strings"

	"facultyhub/internal/models"
)

// StepValid reports whether a step's required fields are satisfied.
//
// The policy is deliberately minimal and mirrors the shipped behavior: only
// step 0 of journal and conference is checked, and only for a non-blank
// publication.title. Every other step of every cohort passes
// unconditionally. Strengthening this is a behavior change, not a fix.
func StepValid(c models.Category, step int, fields models.FieldValues) bool {
	if step != 0 {
		return true
	}
	if c != models.CategoryJournal && c != models.CategoryConference {
		return true
	}
	title, _ := fields["publication.title"].(string)
	return strings.TrimSpace(title) != ""
}
