// Package googlebooks implements the metadata provider contract against
// the Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/config"
	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
)

type Service struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
}

func NewService(log *zap.Logger, cfg config.Metadata) *Service {
	return &Service{
		log:     log.Named("googlebooks"),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.GoogleBooksURL, "/"),
	}
}

type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title         string   `json:"title"`
			Subtitle      string   `json:"subtitle"`
			Authors       []string `json:"authors"`
			Publisher     string   `json:"publisher"`
			PublishedDate string   `json:"publishedDate"`
			PageCount     int      `json:"pageCount"`
			Language      string   `json:"language"`
			Description   string   `json:"description"`
			ImageLinks    struct {
				Thumbnail      string `json:"thumbnail"`
				SmallThumbnail string `json:"smallThumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// FetchByISBN queries the volumes API for a normalized ISBN. Timeouts,
// malformed responses and empty result sets all degrade to
// errs.ErrMetadataUnavailable; the pipeline never sees a hard failure.
func (s *Service) FetchByISBN(ctx context.Context, isbn string) (model.BookMetadata, error) {
	url := fmt.Sprintf("%s/volumes?q=isbn:%s", s.baseURL, isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return model.BookMetadata{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("volumes request failed", zap.String("isbn", isbn), zap.Error(err))
		return model.BookMetadata{}, errs.ErrMetadataUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("volumes request status", zap.String("isbn", isbn), zap.Int("status", resp.StatusCode))
		return model.BookMetadata{}, errs.ErrMetadataUnavailable
	}

	var vr volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		s.log.Warn("volumes decode failed", zap.String("isbn", isbn), zap.Error(err))
		return model.BookMetadata{}, errs.ErrMetadataUnavailable
	}
	if vr.TotalItems == 0 || len(vr.Items) == 0 {
		return model.BookMetadata{}, errs.ErrMetadataUnavailable
	}

	info := vr.Items[0].VolumeInfo
	if info.Title == "" {
		return model.BookMetadata{}, errs.ErrMetadataUnavailable
	}

	meta := model.BookMetadata{
		ISBN:    isbn,
		Title:   info.Title,
		Authors: info.Authors,
	}
	meta.Subtitle = optional(info.Subtitle)
	meta.Publisher = optional(info.Publisher)
	meta.Language = optional(info.Language)
	meta.Description = optional(info.Description)
	if info.PageCount > 0 {
		meta.Pages = &info.PageCount
	}
	if year := parseYear(info.PublishedDate); year != 0 {
		meta.PublishedYear = &year
	}
	if cover := coverURL(info.ImageLinks.Thumbnail, info.ImageLinks.SmallThumbnail); cover != "" {
		meta.CoverURL = &cover
	}
	return meta, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseYear extracts the year from dates like "2019", "2019-05" or
// "2019-05-17".
func parseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

func coverURL(thumbnail, small string) string {
	u := thumbnail
	if u == "" {
		u = small
	}
	// the API hands out http links
	return strings.Replace(u, "http://", "https://", 1)
}
