package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetCurrentPlayers fetches the live concurrent player count for one app.
// It performs exactly one request; the fetcher owns the retry schedule.
func (c *Client) GetCurrentPlayers(ctx context.Context, appID int64) (int64, error) {
	query := url.Values{}
	query.Set("appid", strconv.FormatInt(appID, 10))

	var resp PlayersResponse
	if err := c.getOnce(ctx, "/players", query, &resp); err != nil {
		return 0, fmt.Errorf("get players %d: %w", appID, err)
	}

	if resp.Response.Result != 1 {
		return 0, fmt.Errorf("get players %d: result %d", appID, resp.Response.Result)
	}
	if resp.Response.PlayerCount < 0 {
		return 0, fmt.Errorf("get players %d: negative count %d", appID, resp.Response.PlayerCount)
	}

	return resp.Response.PlayerCount, nil
}
