package models

// FieldValues maps dotted field keys (e.g. "publication.title") to values.
// Values are whatever JSON yields: strings for text/date/url inputs,
// []any for multi-selects. Unknown keys are allowed and round-trip
// untouched; validation only inspects keys it knows about.
type FieldValues map[string]any

// Author is one row of the author list. Insertion order is significant for
// display. Duplicates are permitted.
type Author struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

const (
	RoleAuthor        = "Author"
	RoleCorresponding = "Corresponding"
)

// NewAuthor returns the default row appended by the "+ Add Author" action.
func NewAuthor() Author {
	return Author{Role: RoleAuthor}
}

// Draft is the autosaved in-progress submission for one cohort. The JSON
// field names match the persisted draft_<category> layout.
type Draft struct {
	FormData FieldValues `json:"formData"`
	Authors  []Author    `json:"authors"`
}

// EmptyDraft is what Load degrades to when nothing is stored or the stored
// payload fails to parse.
func EmptyDraft() Draft {
	return Draft{FormData: FieldValues{}, Authors: []Author{}}
}

// SubmissionRecord is the append-only last-submission marker written on a
// successful submit. Only the most recent record is retained.
type SubmissionRecord struct {
	ID          string   `json:"id"`
	SubmittedAt string   `json:"submittedAt"`
	Cohort      Category `json:"cohort"`
}
