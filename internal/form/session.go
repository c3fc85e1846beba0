// Package form implements the multi-step submission state machine: cohort
// selection, step navigation, field and author mutation, draft autosave,
// and the simulated submit.
package form

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"facultyhub/internal/models"
	"facultyhub/internal/registry"
)

// State names for the session state machine.
const (
	StateNoCategory = "no_category"
	StateEditing    = "editing"
	StateSubmitted  = "submitted"
)

var (
	// ErrNoCategory is returned by operations that need an active cohort.
	ErrNoCategory = errors.New("no category selected")
	// ErrStepInvalid blocks forward navigation; its text is the user-facing
	// blocking message.
	ErrStepInvalid = errors.New("please fill required fields")
	// ErrNotFinalStep is returned when submit is attempted early.
	ErrNotFinalStep = errors.New("submit is only available on the final step")
	// ErrSubmitPending is returned for mutations between submit and the
	// post-submit reset.
	ErrSubmitPending = errors.New("submission in progress")
)

// DraftStore is the per-cohort draft persistence the session writes through
// to on every mutation.
type DraftStore interface {
	Save(userID string, c models.Category, d models.Draft) error
	Load(userID string, c models.Category) (models.Draft, bool)
	Clear(userID string, c models.Category) error
}

// SubmissionBackend receives the submission record. The shipped backend is
// a local simulation; a real server round trip can be substituted here
// without touching the state machine.
type SubmissionBackend interface {
	Submit(userID string, rec models.SubmissionRecord) error
}

// Options tune a session. Zero values fall back to production defaults.
type Options struct {
	// ResetDelay is how long after a submit the in-memory form state is
	// cleared, mirroring the toast-then-reset flow.
	ResetDelay time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

const defaultResetDelay = 400 * time.Millisecond

// Session is one user's submission form. All methods are safe for
// concurrent use, though the flow is driven one action at a time.
type Session struct {
	mu      sync.Mutex
	userID  string
	store   DraftStore
	backend SubmissionBackend
	opts    Options

	state    string
	category models.Category
	step     int
	fields   models.FieldValues
	authors  []models.Author

	lastTrackingID string
}

// NewSession creates a session in the NoCategorySelected state.
func NewSession(userID string, store DraftStore, backend SubmissionBackend, opts Options) *Session {
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = defaultResetDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		userID:  userID,
		store:   store,
		backend: backend,
		opts:    opts,
		state:   StateNoCategory,
		fields:  models.FieldValues{},
		authors: []models.Author{},
	}
}

// Snapshot is a point-in-time view of the session for rendering.
type Snapshot struct {
	State          string             `json:"state"`
	Category       models.Category    `json:"category,omitempty"`
	Step           int                `json:"step"`
	TotalSteps     int                `json:"totalSteps"`
	Fields         models.FieldValues `json:"fields"`
	Authors        []models.Author    `json:"authors"`
	LastTrackingID string             `json:"lastTrackingId,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := make(models.FieldValues, len(s.fields))
	for k, v := range s.fields {
		fields[k] = v
	}
	authors := append([]models.Author(nil), s.authors...)
	if authors == nil {
		authors = []models.Author{}
	}
	return Snapshot{
		State:          s.state,
		Category:       s.category,
		Step:           s.step,
		TotalSteps:     registry.TotalSteps(s.category),
		Fields:         fields,
		Authors:        authors,
		LastTrackingID: s.lastTrackingID,
	}
}

// SelectCategory switches the active cohort, loading its stored draft and
// resetting the step to 0. In-memory state is fully replaced, never merged,
// so cohorts cannot leak values into each other.
func (s *Session) SelectCategory(c models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, _ := s.store.Load(s.userID, c)
	s.state = StateEditing
	s.category = c
	s.step = 0
	s.fields = draft.FormData
	s.authors = draft.Authors
	return nil
}

// SetField records one field value and writes the draft through.
func (s *Session) SetField(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireEditing(); err != nil {
		return err
	}
	s.fields[key] = value
	return s.save()
}

// AddAuthor appends a default author row.
func (s *Session) AddAuthor() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireEditing(); err != nil {
		return err
	}
	s.authors = append(s.authors, models.NewAuthor())
	return s.save()
}

// RemoveAuthor drops the row at index. Out-of-range indexes are absorbed
// silently.
func (s *Session) RemoveAuthor(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireEditing(); err != nil {
		return err
	}
	if index < 0 || index >= len(s.authors) {
		return nil
	}
	s.authors = append(s.authors[:index], s.authors[index+1:]...)
	return s.save()
}

// UpdateAuthor sets one field of the row at index. Unknown fields and
// out-of-range indexes are absorbed silently.
func (s *Session) UpdateAuthor(index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireEditing(); err != nil {
		return err
	}
	if index < 0 || index >= len(s.authors) {
		return nil
	}
	switch field {
	case "name":
		s.authors[index].Name = value
	case "department":
		s.authors[index].Department = value
	case "email":
		s.authors[index].Email = value
	case "role":
		s.authors[index].Role = value
	default:
		return nil
	}
	return s.save()
}

// NextStep advances iff the current step validates and a next step exists.
// A failed validation leaves the step unchanged and returns ErrStepInvalid.
func (s *Session) NextStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireEditing(); err != nil {
		return err
	}
	if !StepValid(s.category, s.step, s.fields) {
		return ErrStepInvalid
	}
	if s.step+1 < registry.TotalSteps(s.category) {
		s.step++
	}
	return nil
}

// PrevStep steps back; a no-op on the first step.
func (s *Session) PrevStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireEditing(); err != nil {
		return err
	}
	if s.step > 0 {
		s.step--
	}
	return nil
}

// Submit finalizes the form from the last step: it records the submission,
// clears the stored draft, and schedules the in-memory reset. No network
// call happens; the backend is a local simulation of the server round trip.
func (s *Session) Submit() (models.SubmissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireEditing(); err != nil {
		return models.SubmissionRecord{}, err
	}
	if s.step != registry.TotalSteps(s.category)-1 {
		return models.SubmissionRecord{}, ErrNotFinalStep
	}

	now := s.opts.Now()
	rec := models.SubmissionRecord{
		ID:          trackingID(now),
		SubmittedAt: now.UTC().Format(time.RFC3339),
		Cohort:      s.category,
	}
	if err := s.backend.Submit(s.userID, rec); err != nil {
		return models.SubmissionRecord{}, err
	}
	if err := s.store.Clear(s.userID, s.category); err != nil {
		return models.SubmissionRecord{}, err
	}

	s.state = StateSubmitted
	s.lastTrackingID = rec.ID

	time.AfterFunc(s.opts.ResetDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.state != StateSubmitted {
			return
		}
		s.state = StateEditing
		s.step = 0
		s.fields = models.FieldValues{}
		s.authors = []models.Author{}
	})

	return rec, nil
}

func (s *Session) requireEditing() error {
	switch s.state {
	case StateEditing:
		return nil
	case StateSubmitted:
		return ErrSubmitPending
	default:
		return ErrNoCategory
	}
}

func (s *Session) save() error {
	return s.store.Save(s.userID, s.category, models.Draft{
		FormData: s.fields,
		Authors:  s.authors,
	})
}

// trackingID derives a display identifier from the clock: "R" plus the last
// eight characters of the upper-cased base-36 unix milliseconds. Collisions
// are a cosmetic risk only.
func trackingID(t time.Time) string {
	s := strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
	if len(s) > 8 {
		s = s[len(s)-8:]
	}
	return "R" + s
}
