package models

import "fmt"

// Category is the submission cohort selected by the user. Its string value
// doubles as the storage key suffix (draft_<category>), so the values must
// stay stable.
type Category string

const (
	CategoryJournal    Category = "journal"
	CategoryConference Category = "conference"
	CategoryBook       Category = "book"
	CategoryCopyright  Category = "copyright"
	CategoryPatent     Category = "patent"
)

// Categories lists all cohorts in selector order.
func Categories() []Category {
	return []Category{
		CategoryJournal,
		CategoryConference,
		CategoryBook,
		CategoryCopyright,
		CategoryPatent,
	}
}

// ParseCategory validates a cohort value coming from a request.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryJournal, CategoryConference, CategoryBook, CategoryCopyright, CategoryPatent:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}
