package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/flowbe/go-qbittorrent-api/qbittorrent"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the qBittorrent instance status",
	Long:  `Display version, transfer statistics and torrent counts of the connected qBittorrent instance.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	var (
		version    string
		apiVersion string
		transfer   *qbittorrent.TransferInfo
		torrents   []qbittorrent.Torrent
		altLimits  bool
	)

	// The status fields are independent, fetch them concurrently.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)

	g.Go(func() error {
		var err error
		version, err = client.Version(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		apiVersion, err = client.WebAPIVersion(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		transfer, err = client.TransferInfo(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		torrents, err = client.List(ctx, qbittorrent.ListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		altLimits, err = client.SpeedLimitsMode(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch status: %w", err)
	}

	var seeding, downloading, paused int
	for _, t := range torrents {
		switch {
		case t.State.IsSeeding():
			seeding++
		case t.State.IsDownloading():
			downloading++
		case t.State.IsPaused():
			paused++
		}
	}

	fmt.Printf("qBittorrent %s (WebUI API %s) at %s\n\n", version, apiVersion, client.Origin())
	fmt.Printf("Connection: %s  DHT nodes: %d\n", transfer.ConnectionStatus, transfer.DHTNodes)
	fmt.Printf("Download:   %s/s (session total %s)\n", formatBytes(transfer.DlInfoSpeed), formatBytes(transfer.DlInfoData))
	fmt.Printf("Upload:     %s/s (session total %s)\n", formatBytes(transfer.UpInfoSpeed), formatBytes(transfer.UpInfoData))
	fmt.Printf("Alternative speed limits: %s\n\n", boolToStatus(altLimits))
	fmt.Printf("Torrents: %d total, %d seeding, %d downloading, %d paused\n",
		len(torrents), seeding, downloading, paused)

	return nil
}

func boolToStatus(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
