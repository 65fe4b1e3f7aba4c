package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists one credential per version as a small JSON file, so
// a restart does not force a fresh login.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(v Version) string {
	return filepath.Join(s.dir, fmt.Sprintf("auth_token_%s.json", v))
}

func (s *FileStore) Load(v Version) (*Credential, error) {
	data, err := os.ReadFile(s.path(v))
	if err != nil {
		return nil, fmt.Errorf("read %s credential: %w", v, err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("parse %s credential: %w", v, err)
	}
	return &cred, nil
}

func (s *FileStore) Save(v Version, cred *Credential) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshal %s credential: %w", v, err)
	}

	if err := os.WriteFile(s.path(v), data, 0o600); err != nil {
		return fmt.Errorf("write %s credential: %w", v, err)
	}
	return nil
}
