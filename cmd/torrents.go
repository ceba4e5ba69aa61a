package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowbe/go-qbittorrent-api/qbittorrent"
)

var (
	deleteFiles bool
	addCategory string
	addSavePath string
	addPaused   bool
	addTags     []string
)

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause torrents matching the filter criteria",
	RunE:  runPause,
}

// resumeCmd represents the resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume torrents matching the filter criteria",
	RunE:  runResume,
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete torrents matching the filter criteria",
	Long:  `Delete torrents from qBittorrent that match the specified filter expression.`,
	RunE:  runDelete,
}

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [urls...]",
	Short: "Add torrents from URLs or magnet links",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(addCmd)

	for _, c := range []*cobra.Command{pauseCmd, resumeCmd, deleteCmd} {
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
		c.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	}
	deleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
	deleteCmd.Flags().BoolVar(&deleteFiles, "delete-files", false, "also delete downloaded data from disk")

	addCmd.Flags().StringVar(&addCategory, "category", "", "category to assign")
	addCmd.Flags().StringVar(&addSavePath, "save-path", "", "download directory")
	addCmd.Flags().BoolVar(&addPaused, "paused", false, "add in paused state")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "tags to assign")
}

func hashesOf(torrents []qbittorrent.Torrent) []string {
	hashes := make([]string, len(torrents))
	for i, t := range torrents {
		hashes[i] = t.Hash
	}
	return hashes
}

func runPause(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	torrents, err := selectTorrents(ctx)
	if err != nil {
		return err
	}
	if len(torrents) == 0 {
		fmt.Println("No torrents found matching the filter criteria.")
		return nil
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would pause %d torrents\n", len(torrents))
		return nil
	}

	if err := client.Pause(ctx, hashesOf(torrents)); err != nil {
		return fmt.Errorf("failed to pause torrents: %w", err)
	}

	fmt.Printf("✓ Paused %d torrents\n", len(torrents))
	return nil
}

func runResume(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	torrents, err := selectTorrents(ctx)
	if err != nil {
		return err
	}
	if len(torrents) == 0 {
		fmt.Println("No torrents found matching the filter criteria.")
		return nil
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would resume %d torrents\n", len(torrents))
		return nil
	}

	if err := client.Resume(ctx, hashesOf(torrents)); err != nil {
		return fmt.Errorf("failed to resume torrents: %w", err)
	}

	fmt.Printf("✓ Resumed %d torrents\n", len(torrents))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	torrents, err := selectTorrents(ctx)
	if err != nil {
		return err
	}
	if len(torrents) == 0 {
		fmt.Println("No torrents found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nSelected %d torrents for deletion:\n", len(torrents))
	for _, t := range torrents {
		fmt.Printf("  • %s\n", t.Name)
	}

	if cfg.Safety.DryRun {
		fmt.Printf("\n[DRY RUN] Would delete %d torrents (delete files: %v)\n", len(torrents), deleteFiles)
		return nil
	}

	if cfg.Safety.ConfirmDelete && !noConfirm {
		fmt.Printf("\nAre you sure you want to delete %d torrents? [y/N]: ", len(torrents))
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	if err := client.Delete(ctx, hashesOf(torrents), deleteFiles); err != nil {
		return fmt.Errorf("failed to delete torrents: %w", err)
	}

	fmt.Printf("✓ Deleted %d torrents\n", len(torrents))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would add %d torrents\n", len(args))
		return nil
	}

	opts := qbittorrent.AddOptions{
		SavePath: addSavePath,
		Category: addCategory,
		Tags:     addTags,
		Paused:   addPaused,
	}

	if err := client.Add(ctx, args, opts); err != nil {
		return fmt.Errorf("failed to add torrents: %w", err)
	}

	fmt.Printf("✓ Added %d torrents\n", len(args))
	return nil
}
