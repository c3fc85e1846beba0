package form

import (
	"testing"

	"facultyhub/internal/models"
)

func TestStepValidTitleRequired(t *testing.T) {
	for _, c := range []models.Category{models.CategoryJournal, models.CategoryConference} {
		if StepValid(c, 0, models.FieldValues{}) {
			t.Fatalf("%s step 0 with no title should be invalid", c)
		}
		if StepValid(c, 0, models.FieldValues{"publication.title": "   "}) {
			t.Fatalf("%s step 0 with whitespace title should be invalid", c)
		}
		if !StepValid(c, 0, models.FieldValues{"publication.title": "Deep Learning"}) {
			t.Fatalf("%s step 0 with a title should be valid", c)
		}
		// Later steps are never validated.
		if !StepValid(c, 1, models.FieldValues{}) || !StepValid(c, 2, models.FieldValues{}) {
			t.Fatalf("%s steps 1 and 2 should always be valid", c)
		}
	}
}

func TestStepValidOtherCategoriesUnconditional(t *testing.T) {
	for _, c := range []models.Category{models.CategoryBook, models.CategoryCopyright, models.CategoryPatent} {
		if !StepValid(c, 0, models.FieldValues{}) {
			t.Fatalf("%s step 0 should be valid with no fields", c)
		}
	}
}

func TestStepValidNonStringTitle(t *testing.T) {
	// A non-string value for the title key fails the check rather than
	// panicking.
	if StepValid(models.CategoryJournal, 0, models.FieldValues{"publication.title": 42}) {
		t.Fatal("numeric title should not satisfy validation")
	}
}
