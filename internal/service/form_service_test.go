package service

import (
	"path/filepath"
	"testing"
	"time"

	"facultyhub/internal/db"
	"facultyhub/internal/models"
	"facultyhub/internal/repository"
)

// Drives the form session against the real bbolt-backed draft store.
func TestFormServiceEndToEnd(t *testing.T) {
	store, err := db.Open(filepath.Join(t.TempDir(), "facultyhub.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	drafts := repository.NewDraftRepo(store)
	svc := NewFormService(drafts, time.Millisecond)

	sess := svc.Session("u1")
	if same := svc.Session("u1"); same != sess {
		t.Fatal("expected one session per user")
	}
	if other := svc.Session("u2"); other == sess {
		t.Fatal("sessions should be per user")
	}

	if err := sess.SelectCategory(models.CategoryConference); err != nil {
		t.Fatalf("select category: %v", err)
	}
	sess.SetField("publication.title", "Edge AI for Maintenance")
	sess.SetField("conference.level", "International")
	sess.AddAuthor()
	sess.UpdateAuthor(0, "name", "Dr. Deepak")
	sess.NextStep()
	sess.NextStep()

	rec, err := sess.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// The local backend recorded the submission and the draft is gone.
	got, ok := svc.LastSubmission("u1")
	if !ok || got.ID != rec.ID || got.Cohort != models.CategoryConference {
		t.Fatalf("last submission = %+v (ok=%v)", got, ok)
	}
	if _, ok := drafts.Load("u1", models.CategoryConference); ok {
		t.Fatal("draft should be cleared after submit")
	}
	if _, ok := svc.LastSubmission("u2"); ok {
		t.Fatal("submission leaked across users")
	}
}
