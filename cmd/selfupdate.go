package cmd

import (
	"context"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the GitHub repository checked for new releases.
const githubRepoSlug = "allensrj/mcp-cdisc-library"

// newSelfUpdateCmd creates the command that updates the binary in place from
// the latest GitHub release.
func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update mcp-cdisc-library to the latest version",
		Long: `Checks for the latest release of mcp-cdisc-library on GitHub and
updates the current binary if a newer version is found.`,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	// Development builds are not releases and do not follow semantic
	// versioning, so there is nothing sensible to compare against.
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintln(out, "Checking for updates...")

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(context.Background(), selfupdate.ParseSlug(githubRepoSlug))
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest release for %s could not be found", githubRepoSlug)
	}

	if !latest.GreaterThan(currentVersion) {
		fmt.Fprintln(out, "Current version is the latest.")
		return nil
	}

	fmt.Fprintf(out, "Found newer version: %s (published at %s)\n", latest.Version(), latest.PublishedAt)

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Fprintf(out, "Updating %s to version %s...\n", exe, latest.Version())
	if err := updater.UpdateTo(context.Background(), latest, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}
