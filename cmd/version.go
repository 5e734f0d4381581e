package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/wolfchan/internal/selfupdate"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("wolfchan", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}
		res, err := selfupdate.NewChecker().Check(context.Background(), &selfupdate.CheckInput{Version: version})
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Development build; skipping update check.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if res.UpdateAvailable {
			fmt.Printf("Update available: %s → %s\n%s\n", res.CurrentVersion, res.LatestVersion, res.ReleaseURL)
		} else {
			fmt.Println("You are on the latest release.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
