package cli

import (
	"time"

	"github.com/davarch/homework-watcher/internal/application"
	"github.com/davarch/homework-watcher/internal/domain"
	"github.com/davarch/homework-watcher/internal/infrastructure/cache_fs"
	"github.com/davarch/homework-watcher/internal/infrastructure/config"
	"github.com/davarch/homework-watcher/internal/infrastructure/logging"
	"github.com/davarch/homework-watcher/internal/infrastructure/practicum_http"
	"github.com/davarch/homework-watcher/internal/infrastructure/telegram_bot"
	"go.uber.org/zap"
)

// loadChecked loads the config and fails with a ConfigurationError naming
// every missing secret.
func loadChecked() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	if missing := cfg.Validate(); len(missing) > 0 {
		return cfg, &domain.ConfigurationError{Missing: missing}
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *zap.Logger {
	return logging.New(cfg.Log.Level)
}

func newPollUseCase(cfg config.Config, log *zap.Logger, from int64) (*application.PollUseCase, error) {
	src := practicum_http.New(cfg.Practicum.Endpoint, cfg.Secrets.APIToken, cfg.Practicum.Timeout,
		practicum_http.WithRetry(cfg.Practicum.Retries, time.Second))

	bot, err := telegram_bot.New(cfg.Secrets.BotToken, cfg.Practicum.Timeout, cfg.Telegram.APIURL)
	if err != nil {
		return nil, err
	}

	var cache domain.StatusCache
	if cfg.Status.Path != "" {
		cache = cache_fs.New(cfg.Status.Path)
	}

	return application.NewPollUseCase(log, src, bot, cache, application.PollConfig{
		ChatID:    cfg.Secrets.ChatID,
		Timeout:   cfg.Practicum.Timeout,
		Watermark: from,
	}), nil
}
