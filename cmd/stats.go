package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-subject study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := st.SubjectBreakdown(cmd.Context())
		if err != nil {
			return fmt.Errorf("load statistics: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SUBJECT\tSESSIONS\tTASKS\tACCURACY\tMINUTES\tLAST")
		for _, r := range rows {
			last := "-"
			if !r.LastStudied.IsZero() {
				last = r.LastStudied.Local().Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%d%%\t%d\t%s\n",
				r.Subject, r.Sessions, r.TotalTasks, r.AccuracyPercent, r.StudyMinutes, last)
		}
		return w.Flush()
	},
}
