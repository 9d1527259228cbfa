package store

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore keeps each slot in its own JSON file under a data
// directory. It is the default backend: the local, single-session
// equivalent of browser storage. Writes go through a temp file and a
// rename so a slot is always either the old value or the new one.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the slot contents, or ErrSlotEmpty if no file exists.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		s.logger.Error("slot read failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}
	return data, nil
}

// Set atomically replaces the slot contents.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		s.logger.Error("slot write failed",
			zap.String("key", key),
			zap.Error(err))
		return err
	}

	s.logger.Debug("slot written",
		zap.String("key", key),
		zap.Int("bytes", len(value)))
	return nil
}
