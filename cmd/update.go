package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "flowbe/go-qbittorrent-api"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of qbt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("qbt %s (built %s, %s/%s)\n", appVersion, appBuildTime, runtime.GOOS, runtime.GOARCH)
	},
	// No config or connection needed to print a version string.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update qbt to the latest release",
	RunE:  runUpdate,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	current, err := semver.ParseTolerant(strings.TrimPrefix(appVersion, "v"))
	if err != nil {
		// Development builds carry versions like "dev"; update anyway.
		fmt.Printf("Current version %q is not a release, updating to %s\n", appVersion, latest.Version())
	} else {
		latestVersion, err := semver.ParseTolerant(latest.Version())
		if err != nil {
			return fmt.Errorf("failed to parse latest version %q: %w", latest.Version(), err)
		}
		if latestVersion.LTE(current) {
			fmt.Printf("qbt %s is up to date\n", appVersion)
			return nil
		}
		fmt.Printf("Updating qbt %s to %s\n", appVersion, latest.Version())
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Printf("✓ Updated to %s\n", latest.Version())
	return nil
}
