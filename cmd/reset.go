package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all locally recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Println("This deletes every locally recorded task and session.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Purge(cmd.Context()); err != nil {
			return fmt.Errorf("purge store: %w", err)
		}
		fmt.Println("Local ledger cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}
