package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvAPIToken = "PRACTICUM_TOKEN"
	EnvBotToken = "TELEGRAM_TOKEN"
	EnvChatID   = "TELEGRAM_CHAT_ID"

	DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultInterval = 600 * time.Second
	DefaultTimeout  = 10 * time.Second
)

// Secrets come from the environment only and are never written to disk.
type Secrets struct {
	APIToken string `yaml:"-"`
	BotToken string `yaml:"-"`
	ChatID   string `yaml:"-"`
}

type Config struct {
	Secrets Secrets `yaml:"-"`

	Practicum struct {
		Endpoint string        `yaml:"endpoint"`
		Timeout  time.Duration `yaml:"timeout"`
		Retries  uint64        `yaml:"retries"`
	} `yaml:"practicum"`

	Telegram struct {
		APIURL string `yaml:"api_url,omitempty"`
	} `yaml:"telegram"`

	Poll struct {
		Interval  time.Duration `yaml:"interval"`
		PauseFile string        `yaml:"pause_file"`
	} `yaml:"poll"`

	Status struct {
		Path string `yaml:"path"`
	} `yaml:"status"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Validate returns the names of missing required environment variables.
func (c Config) Validate() []string {
	var missing []string
	if strings.TrimSpace(c.Secrets.APIToken) == "" {
		missing = append(missing, EnvAPIToken)
	}
	if strings.TrimSpace(c.Secrets.BotToken) == "" {
		missing = append(missing, EnvBotToken)
	}
	if strings.TrimSpace(c.Secrets.ChatID) == "" {
		missing = append(missing, EnvChatID)
	}
	return missing
}

func Default() Config {
	var c Config
	c.Practicum.Endpoint = DefaultEndpoint
	c.Practicum.Timeout = DefaultTimeout
	c.Practicum.Retries = 2
	c.Poll.Interval = DefaultInterval
	c.Log.Level = "info"
	return c
}

// Load reads .env from the working directory (if any), then the YAML file at
// path (if any), then environment overrides. Missing secrets are not an error
// here; see Validate.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, err
			}
		case !errors.Is(err, os.ErrNotExist):
			return c, err
		}
	}

	c.Secrets = Secrets{
		APIToken: os.Getenv(EnvAPIToken),
		BotToken: os.Getenv(EnvBotToken),
		ChatID:   os.Getenv(EnvChatID),
	}

	if v := os.Getenv("PRACTICUM_ENDPOINT"); v != "" {
		c.Practicum.Endpoint = v
	}

	if v := os.Getenv("POLL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Practicum.Timeout = d
		}
	}

	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Poll.Interval = d
		}
	}

	if v := os.Getenv("PAUSE_FILE"); v != "" {
		c.Poll.PauseFile = v
	}

	if v := os.Getenv("STATUS_PATH"); v != "" {
		c.Status.Path = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if c.Practicum.Endpoint == "" {
		c.Practicum.Endpoint = DefaultEndpoint
	}

	if c.Poll.Interval <= 0 {
		c.Poll.Interval = DefaultInterval
	}

	if c.Practicum.Timeout <= 0 {
		c.Practicum.Timeout = DefaultTimeout
	}

	c.Poll.PauseFile = expandHome(c.Poll.PauseFile)
	c.Status.Path = expandHome(c.Status.Path)

	return c, nil
}

// Save writes the non-secret part of c to path atomically.
func Save(path string, c Config) error {
	if path == "" {
		return errors.New("empty config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lockFile := path + ".lock"
	lf, err := os.OpenFile(lockFile, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = lf.Close() }()

	if runtime.GOOS != "windows" {
		if err := syscall.Flock(int(lf.Fd()), syscall.LOCK_EX); err != nil {
			return err
		}
		defer func() { _ = syscall.Flock(int(lf.Fd()), syscall.LOCK_UN) }()
	}

	b, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	if _, err := f.Write(b); err != nil {
		return err
	}

	if err := f.Sync(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if h, _ := os.UserHomeDir(); h != "" {
			return h + p[1:]
		}
	}
	return p
}
