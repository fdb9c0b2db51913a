package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
)

// ParseAuthorNames splits free-form author text into structured name
// pairs. The raw string is split on every comma first, then each
// fragment is parsed on its own. A fragment can therefore never contain
// a comma, so "King, Stephen" parses as two single-token authors — a
// known limitation of the heuristic, inherited from the import UI and
// kept deliberately.
func ParseAuthorNames(raw string) []model.AuthorCandidate {
	var out []model.AuthorCandidate
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		out = append(out, splitName(name))
	}
	return out
}

// splitName parses a single name: "Last, First" when a comma is
// present, otherwise the final whitespace token is the last name and
// everything before it the first. A lone token is a last name.
func splitName(name string) model.AuthorCandidate {
	if i := strings.Index(name, ","); i >= 0 {
		return model.AuthorCandidate{
			LastName:  strings.TrimSpace(name[:i]),
			FirstName: strings.TrimSpace(name[i+1:]),
		}
	}
	fields := strings.Fields(name)
	if len(fields) == 1 {
		return model.AuthorCandidate{LastName: fields[0]}
	}
	return model.AuthorCandidate{
		FirstName: strings.Join(fields[:len(fields)-1], " "),
		LastName:  fields[len(fields)-1],
	}
}

// ParseAndMatchAuthors parses raw author text and tags every candidate
// that already exists in the catalog (case-insensitive on both fields)
// with its id. Pure query + transform: no authors are created here.
func (s *Service) ParseAndMatchAuthors(ctx context.Context, raw string) ([]model.AuthorCandidate, error) {
	candidates := ParseAuthorNames(raw)
	for i := range candidates {
		author, err := s.repo.FindAuthorByName(ctx, candidates[i].FirstName, candidates[i].LastName)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				continue
			}
			return nil, err
		}
		id := author.ID
		candidates[i].ExistingID = &id
		// surface the stored spelling, not the scanned one
		candidates[i].FirstName = author.FirstName
		candidates[i].LastName = author.LastName
	}
	return candidates, nil
}
