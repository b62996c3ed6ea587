// Command probe fetches the live player count for a single app id.
// Useful for checking the players endpoint without running a full
// reconciliation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/playerpulse/playerpulse/internal/api"
	"github.com/playerpulse/playerpulse/internal/config"
)

func main() {
	playersURL := flag.String("players-url", config.DefaultPlayersURL, "players endpoint base URL")
	appID := flag.Int64("appid", 0, "app id to probe")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	if *appID == 0 {
		fmt.Fprintln(os.Stderr, "usage: probe -appid <id> [-players-url <url>]")
		os.Exit(2)
	}

	client := api.NewClient(*playersURL, api.WithTimeout(*timeout))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	players, err := client.GetCurrentPlayers(ctx, *appID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe %d: %v\n", *appID, err)
		os.Exit(1)
	}

	fmt.Printf("%d\n", players)
}
