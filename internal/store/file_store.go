package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/limbo/godsaeng/pkg/entity"
)

// FileStore keeps the profile document in a single JSON file, the way
// the app has always persisted it. Writes go through a temp file and a
// rename so a crash never leaves a half-written document behind.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Load(ctx context.Context) (*entity.Document, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("unreadable data file, starting from default document", slog.String("path", fs.path), slog.String("error", err.Error()))
		}
		return DefaultDocument(), nil
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Warn("malformed data file, starting from default document", slog.String("path", fs.path), slog.String("error", err.Error()))
		return DefaultDocument(), nil
	}
	return normalize(&doc), nil
}

func (fs *FileStore) Save(ctx context.Context, doc *entity.Document) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.New("encoding document error: " + err.Error())
	}
	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, ".godsaeng-*.json")
	if err != nil {
		return errors.New("creating temp file error: " + err.Error())
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.New("writing document error: " + err.Error())
	}
	if err := tmp.Close(); err != nil {
		return errors.New("closing temp file error: " + err.Error())
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return errors.New("replacing data file error: " + err.Error())
	}
	return nil
}
