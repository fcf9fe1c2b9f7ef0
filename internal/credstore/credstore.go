// Package credstore persists the bearer token and user identity across
// process restarts. It is the only shared mutable state in the client;
// every write happens inside a single badger transaction so readers never
// observe a half-written session.
package credstore

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger"

	"triptales/internal/models"
)

// Storage keys. These mirror the key-value pairs the mobile client kept,
// one entry per field with no schema versioning.
const (
	keyToken        = "token"
	keyUserID       = "user_id"
	keyUsername     = "username"
	keyEmail        = "email"
	keyExpireAt     = "expire_at"
	keyProfileImage = "profile_image"
)

var allKeys = []string{keyToken, keyUserID, keyUsername, keyEmail, keyExpireAt, keyProfileImage}

// Store is a badger-backed credential store.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the credential store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("while opening credential store %q: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSession writes every session field in one transaction.
func (s *Store) SaveSession(sess models.Session) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		fields := map[string]string{
			keyToken:        sess.Token,
			keyUserID:       sess.UserID,
			keyUsername:     sess.Username,
			keyEmail:        sess.Email,
			keyProfileImage: sess.ProfileImageURL,
		}
		if !sess.ExpiresAt.IsZero() {
			fields[keyExpireAt] = sess.ExpiresAt.Format(time.RFC3339)
		} else {
			fields[keyExpireAt] = ""
		}
		for k, v := range fields {
			if err := txn.Set([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("while saving session: %w", err)
	}
	return nil
}

// LoadSession reads the persisted session. The second return value is false
// when no token is stored, which is the logged-out state.
func (s *Store) LoadSession() (models.Session, bool, error) {
	var sess models.Session
	err := s.db.View(func(txn *badger.Txn) error {
		get := func(key string) (string, error) {
			item, err := txn.Get([]byte(key))
			if err == badger.ErrKeyNotFound {
				return "", nil
			}
			if err != nil {
				return "", err
			}
			val, err := item.ValueCopy(nil)
			if err != nil {
				return "", err
			}
			return string(val), nil
		}

		var err error
		if sess.Token, err = get(keyToken); err != nil {
			return err
		}
		if sess.UserID, err = get(keyUserID); err != nil {
			return err
		}
		if sess.Username, err = get(keyUsername); err != nil {
			return err
		}
		if sess.Email, err = get(keyEmail); err != nil {
			return err
		}
		if sess.ProfileImageURL, err = get(keyProfileImage); err != nil {
			return err
		}
		expire, err := get(keyExpireAt)
		if err != nil {
			return err
		}
		if expire != "" {
			if t, perr := time.Parse(time.RFC3339, expire); perr == nil {
				sess.ExpiresAt = t
			}
		}
		return nil
	})
	if err != nil {
		return models.Session{}, false, fmt.Errorf("while loading session: %w", err)
	}
	return sess, sess.LoggedIn(), nil
}

// Clear removes the token and every identity-derived field.
func (s *Store) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, k := range allKeys {
			if err := txn.Delete([]byte(k)); err != nil && err != badger.ErrKeyNotFound {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("while clearing session: %w", err)
	}
	return nil
}
