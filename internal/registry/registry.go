// Package registry holds the static per-cohort step and field tables the
// submission form is rendered from. The step counts and field keys are a
// fixed contract: form rendering and draft storage depend on them verbatim.
package registry

import "facultyhub/internal/models"

// FieldDefinition describes one input within a step.
type FieldDefinition struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// StepDefinition is one page of a multi-page form.
type StepDefinition struct {
	Title  string            `json:"title"`
	Fields []FieldDefinition `json:"fields"`
}

// Field input types. "text", "number", "date", "month", "url", "email" map
// to the matching HTML inputs; "select" and "multiselect" carry Options;
// "file" stores an opaque reference string.
const (
	TypeText        = "text"
	TypeNumber      = "number"
	TypeDate        = "date"
	TypeMonth       = "month"
	TypeURL         = "url"
	TypeSelect      = "select"
	TypeMultiSelect = "multiselect"
	TypeFile        = "file"
)

var sdgOptions = []string{
	"SDG1", "SDG2", "SDG3", "SDG4", "SDG5", "SDG6", "SDG7", "SDG8", "SDG9",
	"SDG10", "SDG11", "SDG12", "SDG13", "SDG14", "SDG15", "SDG16", "SDG17",
}

var authorsStep = StepDefinition{
	Title: "Authors",
	// The author list itself is structured state, not a keyed field; only
	// the extra keyed inputs shown on the step are listed here.
	Fields: []FieldDefinition{},
}

var steps = map[models.Category][]StepDefinition{
	models.CategoryJournal: {
		{
			Title: "Journal - Basic Info",
			Fields: []FieldDefinition{
				{Key: "publication.title", Label: "Title of Article", Type: TypeText, Required: true},
				{Key: "publication.indexing", Label: "Indexing Agency", Type: TypeMultiSelect,
					Options: []string{"Scopus", "WebOfScience", "IndianCitationIndex", "Other"}},
				{Key: "publication.impact_factor", Label: "Impact Factor", Type: TypeText},
				{Key: "publication.url", Label: "URL", Type: TypeURL, Placeholder: "https://..."},
				{Key: "publication.language", Label: "Language", Type: TypeText},
				{Key: "publication.date", Label: "Date of Publication", Type: TypeDate},
				{Key: "journal.name", Label: "Name of Journal", Type: TypeText},
			},
		},
		{
			Title: "Authors",
			Fields: []FieldDefinition{
				{Key: "publication.sole_coauthored", Label: "Sole / Co-Authored", Type: TypeSelect,
					Options: []string{"Sole", "CoAuthored"}},
				{Key: "publication.num_coauthors", Label: "No. of Co-Authors", Type: TypeNumber},
			},
		},
		{
			Title: "Bibliographic & Verification",
			Fields: []FieldDefinition{
				{Key: "journal.volume", Label: "Volume Number", Type: TypeText},
				{Key: "journal.issue", Label: "Issue Number", Type: TypeText},
				{Key: "journal.doi", Label: "DOI", Type: TypeText, Placeholder: "10.xxxx/xxxxx"},
				{Key: "journal.pages_from", Label: "Pages: From", Type: TypeNumber},
				{Key: "journal.pages_to", Label: "Pages: To", Type: TypeNumber},
				{Key: "publication.publisher_name", Label: "Publisher Name", Type: TypeText},
				{Key: "publication.publisher_address", Label: "Publisher Address", Type: TypeText},
				{Key: "publication.quartile", Label: "Quartile", Type: TypeText, Placeholder: "Q1 / Q2 / Q3 / Q4"},
				{Key: "proof.link", Label: "Proof Link", Type: TypeURL, Placeholder: "Drive link (optional)"},
				{Key: "proof.file", Label: "Proof File", Type: TypeFile},
				{Key: "publication.sdg", Label: "SDG Goals", Type: TypeMultiSelect, Options: sdgOptions},
			},
		},
	},
	models.CategoryConference: {
		{
			Title: "Conference - Basic Info",
			Fields: []FieldDefinition{
				{Key: "publication.title", Label: "Title of Paper", Type: TypeText, Required: true},
				{Key: "conference.session_name", Label: "Name of Session", Type: TypeText},
				{Key: "conference.organising_institution", Label: "Organising Institution", Type: TypeText},
				{Key: "conference.place", Label: "Place", Type: TypeText},
				{Key: "conference.start_date", Label: "Start Date", Type: TypeDate},
				{Key: "conference.end_date", Label: "End Date", Type: TypeDate},
				{Key: "conference.level", Label: "Level", Type: TypeSelect,
					Options: []string{"Local", "National", "International"}},
				{Key: "proof.link", Label: "Proof Link", Type: TypeURL, Placeholder: "https://..."},
				{Key: "proof.file", Label: "Proof File", Type: TypeFile},
			},
		},
		authorsStep,
		{
			Title: "Metadata & Extra",
			Fields: []FieldDefinition{
				{Key: "publication.other_academician", Label: "Other Academician", Type: TypeText},
				{Key: "publication.international_collab", Label: "International Collaboration", Type: TypeSelect,
					Options: []string{"Yes", "No"}},
				{Key: "publication.area", Label: "Area / Keywords", Type: TypeText},
			},
		},
	},
	models.CategoryBook: {
		{
			Title: "Book / Book Chapter - Basic",
			Fields: []FieldDefinition{
				{Key: "book.book_type", Label: "Book Type", Type: TypeSelect,
					Options: []string{"Book", "Book Chapter"}},
				{Key: "book.title", Label: "Title of Book", Type: TypeText},
				{Key: "book.chapter_title", Label: "Title of Chapter / Article", Type: TypeText},
				{Key: "book.isbn", Label: "ISBN", Type: TypeText},
				{Key: "book.editor", Label: "Editor Name", Type: TypeText},
				{Key: "book.pages_from", Label: "Pages: From", Type: TypeNumber},
				{Key: "book.pages_to", Label: "Pages: To", Type: TypeNumber},
				{Key: "book.publisher", Label: "Publishing Company / Institution", Type: TypeText},
				{Key: "book.total_pages", Label: "Total Pages", Type: TypeNumber},
			},
		},
		authorsStep,
		{
			Title: "Extras",
			Fields: []FieldDefinition{
				{Key: "book.month_year", Label: "Month & Year", Type: TypeMonth},
				{Key: "book.url", Label: "URL", Type: TypeURL},
				{Key: "proof.file", Label: "Proof File", Type: TypeFile},
				{Key: "proof.link", Label: "Proof Link", Type: TypeURL, Placeholder: "Drive link"},
			},
		},
	},
	models.CategoryCopyright: {
		{
			Title: "Copyright Registration",
			Fields: []FieldDefinition{
				{Key: "copyright.title", Label: "Title of the Work", Type: TypeText},
				{Key: "copyright.class_description", Label: "Class & Description", Type: TypeText},
				{Key: "copyright.registration_number", Label: "Registration Number", Type: TypeText},
				{Key: "copyright.applicants", Label: "Name of Applicants", Type: TypeText},
				{Key: "copyright.date_application", Label: "Date of Application", Type: TypeDate},
				{Key: "copyright.date_publication", Label: "Date of Publication", Type: TypeDate},
				{Key: "copyright.language", Label: "Language of the Work", Type: TypeText},
				{Key: "proof.file", Label: "Proof File", Type: TypeFile},
				{Key: "proof.link", Label: "Proof Link", Type: TypeURL, Placeholder: "Drive link"},
			},
		},
	},
	models.CategoryPatent: {
		{
			Title: "Patent Details",
			Fields: []FieldDefinition{
				{Key: "patent.title", Label: "Title", Type: TypeText},
				{Key: "patent.applicants", Label: "Applicant(s)", Type: TypeText},
				{Key: "patent.coapplicants", Label: "Co-Applicant(s)", Type: TypeText},
				{Key: "patent.department", Label: "Department", Type: TypeText},
				{Key: "patent.registration_date", Label: "Registration Date", Type: TypeDate},
				{Key: "patent.registration_number", Label: "Registration No", Type: TypeText},
				{Key: "patent.filing_date", Label: "Filing Date", Type: TypeDate},
				{Key: "patent.granted_date", Label: "Granted Date", Type: TypeDate},
				{Key: "patent.patent_number", Label: "Patent Number", Type: TypeText},
				{Key: "patent.royalty", Label: "Royalty Received", Type: TypeText},
				{Key: "patent.ipc", Label: "IPC Classification (IPC No.)", Type: TypeText},
				{Key: "patent.field", Label: "Field of Invention", Type: TypeText},
				{Key: "proof.file", Label: "Proof File", Type: TypeFile},
				{Key: "proof.link", Label: "Proof Link", Type: TypeURL},
			},
		},
	},
}

// Steps returns the ordered step sequence for a cohort.
func Steps(c models.Category) []StepDefinition {
	return steps[c]
}

// TotalSteps returns the fixed step count: 1 for copyright/patent, 3 for
// journal/conference/book.
func TotalSteps(c models.Category) int {
	return len(steps[c])
}
