package repository

import (
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"facultyhub/internal/db"
	"facultyhub/internal/models"
)

// ConferenceRepo stores the conference event cards shown on the dashboard.
type ConferenceRepo struct {
	store *db.Store
}

func NewConferenceRepo(store *db.Store) *ConferenceRepo {
	return &ConferenceRepo{store: store}
}

func (r *ConferenceRepo) Create(ev *models.ConferenceEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal conference event: %w", err)
	}
	return r.store.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketConferences)).Put([]byte(ev.ID), payload)
	})
}

// List returns all events ordered by creation time.
func (r *ConferenceRepo) List() ([]models.ConferenceEvent, error) {
	var events []models.ConferenceEvent
	err := r.store.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketConferences)).ForEach(func(_, v []byte) error {
			var ev models.ConferenceEvent
			if err := json.Unmarshal(v, &ev); err != nil {
				return nil
			}
			events = append(events, ev)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].CreatedAt != events[j].CreatedAt {
			return events[i].CreatedAt < events[j].CreatedAt
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (r *ConferenceRepo) Count() (int, error) {
	n := 0
	err := r.store.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket([]byte(db.BucketConferences)).Stats().KeyN
		return nil
	})
	return n, err
}
