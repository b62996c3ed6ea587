package source

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/playerpulse/playerpulse/internal/api"
	"github.com/playerpulse/playerpulse/internal/model"
)

// CatalogSource discovers games from the full-catalog endpoint. It has broad
// coverage but carries names only, no player counts.
type CatalogSource struct {
	client   *api.Client
	maxPages int
}

// NewCatalogSource creates a catalog adapter reading at most maxPages pages.
func NewCatalogSource(client *api.Client, maxPages int) *CatalogSource {
	return &CatalogSource{client: client, maxPages: maxPages}
}

func (s *CatalogSource) Name() string { return "catalog" }

func (s *CatalogSource) Priority() int { return PriorityCatalog }

// Discover pages through the catalog until an empty page or the page cap.
// A mid-pagination failure returns the pages gathered so far plus the error.
func (s *CatalogSource) Discover(ctx context.Context) ([]model.Candidate, error) {
	var candidates []model.Candidate

	for page := 0; page < s.maxPages; page++ {
		entries, err := s.client.GetCatalogPage(ctx, page)
		if err != nil {
			return candidates, fmt.Errorf("catalog: page %d: %w", page, err)
		}
		if len(entries) == 0 {
			break
		}

		// Pages are JSON objects; sort by app id so candidate order does
		// not depend on map iteration.
		sorted := make([]api.CatalogEntry, 0, len(entries))
		for _, e := range entries {
			if e.AppID == 0 {
				continue
			}
			sorted = append(sorted, e)
		}
		slices.SortFunc(sorted, func(a, b api.CatalogEntry) int {
			return cmp.Compare(a.AppID, b.AppID)
		})

		for _, e := range sorted {
			candidates = append(candidates, model.Candidate{
				AppID:    e.AppID,
				Name:     e.Name,
				Priority: PriorityCatalog,
				Origin:   s.Name(),
			})
		}
	}

	return candidates, nil
}
