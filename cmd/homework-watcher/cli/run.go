package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/davarch/homework-watcher/internal/application"
	"github.com/davarch/homework-watcher/internal/infrastructure/pause_fs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll the status endpoint forever and notify on changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadChecked()
		if err != nil {
			return err
		}

		log := newLogger(cfg)
		defer func() { _ = log.Sync() }()

		uc, err := newPollUseCase(cfg, log, time.Now().Unix())
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		pause := pause_fs.New(cfg.Poll.PauseFile, log)
		if err := pause.Watch(ctx); err != nil {
			log.Warn("pause file watch failed, falling back to polling it", zap.Error(err))
		}

		sched := application.NewScheduler(log, uc, cfg.Poll.Interval, application.WithPauser(pause))

		log.Info("start",
			zap.String("version", version),
			zap.Duration("every", cfg.Poll.Interval),
			zap.String("endpoint", cfg.Practicum.Endpoint),
			zap.String("status_path", cfg.Status.Path),
			zap.String("pause_file", cfg.Poll.PauseFile),
		)
		sched.Run(ctx)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
