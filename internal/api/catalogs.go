package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetTopGames fetches one page of the charts top list. Pages start at 1.
func (c *Client) GetTopGames(ctx context.Context, page int) (*ChartsResponse, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var resp ChartsResponse
	if err := c.get(ctx, "/top", query, &resp); err != nil {
		return nil, fmt.Errorf("get top games page %d: %w", page, err)
	}

	return &resp, nil
}

// GetAllTopGames fetches the complete top list by paginating through results.
func (c *Client) GetAllTopGames(ctx context.Context) ([]ChartGame, error) {
	var allGames []ChartGame

	for page := 1; ; page++ {
		resp, err := c.GetTopGames(ctx, page)
		if err != nil {
			return nil, err
		}

		allGames = append(allGames, resp.Games...)

		if resp.TotalPages == 0 || page >= resp.TotalPages {
			break
		}
	}

	return allGames, nil
}

// GetCatalogPage fetches one page of the full catalog. Pages start at 0;
// an empty page means the catalog is exhausted.
func (c *Client) GetCatalogPage(ctx context.Context, page int) (CatalogPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var resp CatalogPage
	if err := c.get(ctx, "/all", query, &resp); err != nil {
		return nil, fmt.Errorf("get catalog page %d: %w", page, err)
	}

	return resp, nil
}
