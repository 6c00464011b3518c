package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	onceFrom int64
	onceJSON bool
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run a single polling cycle and print its outcome",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadChecked()
		if err != nil {
			return err
		}

		log := newLogger(cfg)
		defer func() { _ = log.Sync() }()

		from := onceFrom
		if !cmd.Flags().Changed("from") {
			from = time.Now().Unix()
		}

		uc, err := newPollUseCase(cfg, log, from)
		if err != nil {
			return err
		}

		o := uc.PollOnce(cmd.Context())

		if onceJSON {
			type out struct {
				Kind      string `json:"kind,omitempty"`
				Error     string `json:"error,omitempty"`
				Text      string `json:"text,omitempty"`
				Notified  bool   `json:"notified"`
				Delivered bool   `json:"delivered"`
				Watermark int64  `json:"from_date"`
			}
			v := out{
				Kind:      string(o.Kind),
				Text:      o.Text,
				Notified:  o.Notified,
				Delivered: o.Notified && o.DispatchErr == nil,
				Watermark: o.Watermark,
			}
			if o.Err != nil {
				v.Error = o.Err.Error()
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}

		switch {
		case o.Err != nil:
			fmt.Printf("failed (%s): %v\n", o.Kind, o.Err)
		case o.Text == "":
			fmt.Println("no status updates")
		default:
			fmt.Println(o.Text)
		}
		fmt.Printf("from_date: %d\n", o.Watermark)
		return nil
	},
}

func init() {
	onceCmd.Flags().Int64Var(&onceFrom, "from", 0, "from_date to query (default: now)")
	onceCmd.Flags().BoolVar(&onceJSON, "json", false, "print JSON")

	rootCmd.AddCommand(onceCmd)
}
