package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and report missing variables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadChecked()
		if err != nil {
			return err
		}

		fmt.Printf("ok: endpoint=%s every=%s chat=%s\n", cfg.Practicum.Endpoint, cfg.Poll.Interval, cfg.Secrets.ChatID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
