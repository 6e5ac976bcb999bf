package proof

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store holds an uploaded proof on disk while it is being relayed.
type Store interface {
	Save(ctx context.Context, fileName string, content []byte) (string, error)
	Remove(ctx context.Context, path string) error
}

type localStore struct {
	dir string
}

func NewLocalStore(dir string) Store {
	return &localStore{dir: dir}
}

func (s *localStore) Save(_ context.Context, fileName string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// fileName is generated server side, but never let it leave the upload dir
	path := filepath.Join(s.dir, filepath.Base(fileName))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write proof: %w", err)
	}
	return path, nil
}

func (s *localStore) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove proof: %w", err)
	}
	return nil
}
