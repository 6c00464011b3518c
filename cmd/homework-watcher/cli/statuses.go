package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/davarch/homework-watcher/internal/domain"
	"github.com/spf13/cobra"
)

var statusesCmd = &cobra.Command{
	Use:   "statuses",
	Short: "List known review statuses and their verdicts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "STATUS\tVERDICT")
		for _, code := range domain.Statuses() {
			v, err := domain.Verdict(code)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\n", code, v)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statusesCmd)
}
