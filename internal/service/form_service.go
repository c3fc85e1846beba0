package service

import (
	"sync"
	"time"

	"facultyhub/internal/form"
	"facultyhub/internal/models"
	"facultyhub/internal/repository"
)

// FormService hands out one form session per user, all backed by the same
// draft repository and the local submission backend.
type FormService struct {
	drafts     *repository.DraftRepo
	resetDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*form.Session
}

func NewFormService(drafts *repository.DraftRepo, resetDelay time.Duration) *FormService {
	return &FormService{
		drafts:     drafts,
		resetDelay: resetDelay,
		sessions:   make(map[string]*form.Session),
	}
}

// Session returns the user's form session, creating it on first use.
func (s *FormService) Session(userID string) *form.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		backend := &localBackend{drafts: s.drafts}
		sess = form.NewSession(userID, s.drafts, backend, form.Options{ResetDelay: s.resetDelay})
		s.sessions[userID] = sess
	}
	return sess
}

// LastSubmission exposes the most recent submission record for display.
func (s *FormService) LastSubmission(userID string) (models.SubmissionRecord, bool) {
	return s.drafts.LastSubmission(userID)
}

// localBackend simulates the server side of a submission: the record is
// written to the local last-submission slot and nothing leaves the process.
type localBackend struct {
	drafts *repository.DraftRepo
}

func (b *localBackend) Submit(userID string, rec models.SubmissionRecord) error {
	return b.drafts.RecordLastSubmission(userID, rec)
}
