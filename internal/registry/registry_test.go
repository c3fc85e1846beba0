package registry

import (
	"testing"

	"facultyhub/internal/models"
)

func TestTotalSteps(t *testing.T) {
	want := map[models.Category]int{
		models.CategoryJournal:    3,
		models.CategoryConference: 3,
		models.CategoryBook:       3,
		models.CategoryCopyright:  1,
		models.CategoryPatent:     1,
	}
	for c, n := range want {
		if got := TotalSteps(c); got != n {
			t.Fatalf("TotalSteps(%s) = %d, want %d", c, got, n)
		}
		if len(Steps(c)) != n {
			t.Fatalf("Steps(%s) length %d, want %d", c, len(Steps(c)), n)
		}
	}
}

func TestRequiredFields(t *testing.T) {
	// Only the title on step 0 of journal and conference is required.
	for _, c := range models.Categories() {
		for i, step := range Steps(c) {
			for _, f := range step.Fields {
				required := f.Key == "publication.title" && i == 0 &&
					(c == models.CategoryJournal || c == models.CategoryConference)
				if f.Required != required {
					t.Fatalf("%s step %d field %s: required = %v", c, i, f.Key, f.Required)
				}
			}
		}
	}
}

func TestFieldKeysPresent(t *testing.T) {
	cases := map[models.Category][]string{
		models.CategoryJournal: {
			"publication.title", "publication.indexing", "journal.name",
			"journal.volume", "journal.issue", "journal.doi",
			"journal.pages_from", "journal.pages_to", "publication.quartile",
			"proof.link", "proof.file", "publication.sdg",
		},
		models.CategoryConference: {
			"publication.title", "conference.session_name",
			"conference.organising_institution", "conference.place",
			"conference.start_date", "conference.end_date", "conference.level",
			"publication.other_academician", "publication.international_collab",
			"publication.area",
		},
		models.CategoryBook: {
			"book.book_type", "book.title", "book.chapter_title", "book.isbn",
			"book.editor", "book.pages_from", "book.pages_to", "book.publisher",
			"book.total_pages", "book.month_year", "book.url",
		},
		models.CategoryCopyright: {
			"copyright.title", "copyright.class_description",
			"copyright.registration_number", "copyright.applicants",
			"copyright.date_application", "copyright.date_publication",
			"copyright.language",
		},
		models.CategoryPatent: {
			"patent.title", "patent.applicants", "patent.coapplicants",
			"patent.department", "patent.registration_date",
			"patent.registration_number", "patent.filing_date",
			"patent.granted_date", "patent.patent_number", "patent.royalty",
			"patent.ipc", "patent.field",
		},
	}

	for c, keys := range cases {
		have := map[string]bool{}
		for _, step := range Steps(c) {
			for _, f := range step.Fields {
				have[f.Key] = true
			}
		}
		for _, k := range keys {
			if !have[k] {
				t.Fatalf("%s: missing field key %s", c, k)
			}
		}
	}
}
