package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowbe/go-qbittorrent-api/filter"
	"github.com/flowbe/go-qbittorrent-api/qbittorrent"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List torrents matching the filter criteria",
	Long:  `List all torrents known to qBittorrent that match the specified filter expression.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// filterTorrents fetches all torrents and keeps those matching the
// expression. An empty expression keeps everything.
func filterTorrents(ctx context.Context, expression string) ([]qbittorrent.Torrent, error) {
	torrents, err := client.List(ctx, qbittorrent.ListOptions{})
	if err != nil {
		return nil, err
	}

	if expression == "" {
		return torrents, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return f.Apply(torrents)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// The list command treats a missing filter as "everything".
	expression := filterExpr
	if expression == "" && preset != "" {
		var err error
		expression, err = getFilterExpression()
		if err != nil {
			return err
		}
	}

	torrents, err := filterTorrents(ctx, expression)
	if err != nil {
		return err
	}

	if len(torrents) == 0 {
		fmt.Println("No torrents found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d torrents:\n", len(torrents))
	fmt.Println(strings.Repeat("-", 80))

	for _, t := range torrents {
		fmt.Printf("• %s [%s]", t.Name, t.State)
		fmt.Println()
		if cfg.Safety.ShowDetails {
			fmt.Printf("  Hash: %s\n", t.Hash)
			if t.Category != "" {
				fmt.Printf("  Category: %s\n", t.Category)
			}
			if t.Tags != "" {
				fmt.Printf("  Tags: %s\n", t.Tags)
			}
			fmt.Printf("  Size: %.2f GiB  Ratio: %.2f  Progress: %.0f%%\n",
				float64(t.Size)/(1<<30), t.Ratio, t.Progress*100)
			fmt.Printf("  Added: %s\n", t.Added().Format(time.DateOnly))
		}
	}

	return nil
}
