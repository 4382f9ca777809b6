// Package tokenstore persists the CLI's token pair in a local bolt database.
// The SDK itself never stores tokens; this is a collaborator of the CLI only.
package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// dirPerm is the permission mode for the state directory (~/.medium/).
	dirPerm = fs.FileMode(0o700)

	// filePerm is the permission mode for the credentials database file.
	filePerm = fs.FileMode(0o600)

	// openTimeout is the maximum time to wait for the bolt database lock.
	openTimeout = 5 * time.Second
)

var (
	authBucket = []byte("auth")
	tokenKey   = []byte("token")
)

// ErrNoToken is returned when no token has been stored.
var ErrNoToken = errors.New("no token stored")

// Token is the persisted credential pair.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Store is a handle to the credentials database.
type Store struct {
	db *bolt.DB
}

// DefaultPath returns ~/.medium/credentials.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".medium", "credentials.db"), nil
}

// Open opens the store at path, creating the directory and database as
// needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := bolt.Open(path, filePerm, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open credentials db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database lock.
func (s *Store) Close() error { return s.db.Close() }

// SaveToken overwrites the stored token pair.
func (s *Store) SaveToken(t Token) error {
	buf, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(authBucket)
		if err != nil {
			return err
		}
		return b.Put(tokenKey, buf)
	})
}

// Token returns the stored token pair, or ErrNoToken.
func (s *Store) Token() (Token, error) {
	var t Token
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(authBucket)
		if b == nil {
			return ErrNoToken
		}
		raw := b.Get(tokenKey)
		if raw == nil {
			return ErrNoToken
		}
		return json.Unmarshal(raw, &t)
	})
	return t, err
}

// DeleteToken removes the stored token pair. Deleting when nothing is stored
// is not an error.
func (s *Store) DeleteToken() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(authBucket)
		if b == nil {
			return nil
		}
		return b.Delete(tokenKey)
	})
}
