// Package openlibrary probes the Open Library cover catalog. It is the
// preferred cover source; the metadata provider's own image is the
// fallback.
package openlibrary

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/config"
	"github.com/openbookmanager/openbookmanager/internal/errs"
)

type Service struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
}

func NewService(log *zap.Logger, cfg config.Metadata) *Service {
	return &Service{
		log:     log.Named("openlibrary"),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.OpenLibraryURL, "/"),
	}
}

// ProbeCover checks cheaply whether a large cover exists for the ISBN and
// returns its URL. default=false makes Open Library 404 instead of serving
// a placeholder.
func (s *Service) ProbeCover(ctx context.Context, isbn string) (string, error) {
	url := fmt.Sprintf("%s/b/isbn/%s-L.jpg?default=false", s.baseURL, isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Debug("cover probe failed", zap.String("isbn", isbn), zap.Error(err))
		return "", errs.ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.ErrNotFound
	}
	return url, nil
}
