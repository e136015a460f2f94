package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/szymonw/studylog/internal/selfupdate"
)

var updateTarget string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update studylog to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		input := &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  updateTarget,
		}
		err := checker.Update(ctx, input, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo studylog update", err)
		default:
			return err
		}
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTarget, "to", "", "update to a specific release tag instead of the latest")
}
