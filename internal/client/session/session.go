// Package session persists the CLI's signed-in state between runs: the
// session token and the public user projection, stored as a JSON file under
// the per-user config directory.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/campusreg/lostfound/internal/client/api"
)

// Session is the signed-in state returned by register/login.
type Session struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// FileStore reads and writes a Session at a fixed file path.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the per-user session file location,
// <user config dir>/lostfound/session.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lostfound", "session.json"), nil
}

// Load reads the persisted session. A missing file yields (nil, nil):
// the user is simply not signed in.
func (s *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	sess := &Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Save writes the session, creating parent directories as needed. The file
// is user-only readable since it holds a bearer token.
func (s *FileStore) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the session file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
