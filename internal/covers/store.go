// Package covers stores downloaded cover images on local disk.
package covers

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxCoverSize = 5 << 20 // 5 MB

type Store struct {
	dir    string
	client *http.Client
	log    *zap.Logger
}

func NewStore(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "covers dir")
	}
	return &Store{
		dir:    dir,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log.Named("covers"),
	}, nil
}

// Download fetches the image at url and stores it under a unique name.
// Returns the file name to persist as the book's local cover reference.
func (s *Store) Download(ctx context.Context, url, isbn string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "fetch cover")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("fetch cover: status %d", resp.StatusCode)
	}

	ext := ".jpg"
	if resp.Header.Get("Content-Type") == "image/png" {
		ext = ".png"
	}
	name := isbn + "_" + uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "create cover file")
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(resp.Body, maxCoverSize)); err != nil {
		_ = os.Remove(f.Name())
		return "", errors.Wrap(err, "write cover file")
	}
	return name, nil
}

// Remove deletes a stored cover. A missing file is not an error.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("remove cover", zap.String("name", name), zap.Error(err))
	}
}
