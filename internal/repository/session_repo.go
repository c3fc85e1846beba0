package repository

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"facultyhub/internal/db"
	"facultyhub/internal/models"
)

// SessionRepo persists the current-session record per user. Presence of a
// record is what "logged in" means; logout deletes it.
type SessionRepo struct {
	store *db.Store
}

func NewSessionRepo(store *db.Store) *SessionRepo {
	return &SessionRepo{store: store}
}

func (r *SessionRepo) Put(rec models.SessionRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return r.store.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketSessions)).Put([]byte(rec.UserID), payload)
	})
}

func (r *SessionRepo) Get(userID string) (models.SessionRecord, bool) {
	var raw []byte
	_ = r.store.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(db.BucketSessions)).Get([]byte(userID)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if raw == nil {
		return models.SessionRecord{}, false
	}
	var rec models.SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.SessionRecord{}, false
	}
	return rec, true
}

func (r *SessionRepo) Delete(userID string) error {
	return r.store.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketSessions)).Delete([]byte(userID))
	})
}
