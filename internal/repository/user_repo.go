package repository

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.etcd.io/bbolt"

	"facultyhub/internal/db"
	"facultyhub/internal/models"
)

// UserRepo stores faculty accounts keyed by ID. Lookups by username or
// email scan the bucket; the credential store holds a handful of users.
type UserRepo struct {
	store *db.Store
}

func NewUserRepo(store *db.Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Create(user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return r.store.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketUsers)).Put([]byte(user.ID), payload)
	})
}

// Update overwrites an existing account record.
func (r *UserRepo) Update(user *models.User) error {
	return r.Create(user)
}

func (r *UserRepo) FindByID(id string) (*models.User, error) {
	var raw []byte
	err := r.store.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(db.BucketUsers)).Get([]byte(id)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

// FindByLogin matches a trimmed, case-insensitive username or email.
func (r *UserRepo) FindByLogin(usernameOrEmail string) (*models.User, error) {
	needle := strings.ToLower(strings.TrimSpace(usernameOrEmail))
	if needle == "" {
		return nil, nil
	}
	var found *models.User
	err := r.store.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketUsers)).ForEach(func(_, v []byte) error {
			if found != nil {
				return nil
			}
			var u models.User
			if err := json.Unmarshal(v, &u); err != nil {
				return nil
			}
			if strings.ToLower(strings.TrimSpace(u.Username)) == needle ||
				strings.ToLower(strings.TrimSpace(u.Email)) == needle {
				found = &u
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List returns all accounts ordered by username.
func (r *UserRepo) List() ([]models.User, error) {
	var users []models.User
	err := r.store.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(db.BucketUsers)).ForEach(func(_, v []byte) error {
			var u models.User
			if err := json.Unmarshal(v, &u); err != nil {
				return nil
			}
			users = append(users, u)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}
