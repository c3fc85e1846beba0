package repository

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"facultyhub/internal/db"
	"facultyhub/internal/models"
)

// DraftRepo persists in-progress submissions and the last-submission
// marker. Keys follow the draft_<category> convention, prefixed by user ID
// so one data file can hold many profiles.
type DraftRepo struct {
	store *db.Store
}

func NewDraftRepo(store *db.Store) *DraftRepo {
	return &DraftRepo{store: store}
}

func draftKey(userID string, c models.Category) []byte {
	return []byte(userID + "/draft_" + string(c))
}

func lastSubmissionKey(userID string) []byte {
	return []byte(userID + "/lastSubmission")
}

// Save writes the draft for one cohort, replacing any prior value. Called
// after every mutation: write-through, no debouncing, no merge.
func (r *DraftRepo) Save(userID string, c models.Category, d models.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return r.store.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketDrafts)).Put(draftKey(userID, c), payload)
	})
}

// Load returns the stored draft for a cohort. A missing or unparseable
// payload degrades to an empty draft; the bool reports whether a parseable
// draft existed.
func (r *DraftRepo) Load(userID string, c models.Category) (models.Draft, bool) {
	var raw []byte
	_ = r.store.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(db.BucketDrafts)).Get(draftKey(userID, c)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if raw == nil {
		return models.EmptyDraft(), false
	}

	var d models.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		// Corrupt drafts are not an error the user can act on.
		return models.EmptyDraft(), false
	}
	if d.FormData == nil {
		d.FormData = models.FieldValues{}
	}
	if d.Authors == nil {
		d.Authors = []models.Author{}
	}
	return d, true
}

// Clear removes the persisted draft for a cohort. Called once, right after
// a successful submission.
func (r *DraftRepo) Clear(userID string, c models.Category) error {
	return r.store.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketDrafts)).Delete(draftKey(userID, c))
	})
}

// RecordLastSubmission overwrites the single last-submission slot. Not
// cohort-keyed; only one record is retained per user.
func (r *DraftRepo) RecordLastSubmission(userID string, rec models.SubmissionRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal submission record: %w", err)
	}
	return r.store.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketSubmissions)).Put(lastSubmissionKey(userID), payload)
	})
}

// LastSubmission returns the most recent submission record, if any.
func (r *DraftRepo) LastSubmission(userID string) (models.SubmissionRecord, bool) {
	var raw []byte
	_ = r.store.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(db.BucketSubmissions)).Get(lastSubmissionKey(userID)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if raw == nil {
		return models.SubmissionRecord{}, false
	}
	var rec models.SubmissionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.SubmissionRecord{}, false
	}
	return rec, true
}
