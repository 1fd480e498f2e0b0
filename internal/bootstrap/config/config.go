package config

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Defaults for a stock stackpad project. Everything is overridable via
// STACKPAD_* environment variables or an optional stackpad.yml in the
// project root.
const (
	DefaultComposeFile  = "docker-compose.yml"
	DefaultEnvFile      = ".env"
	DefaultEnvTemplate  = ".env.example"
	DefaultHealthURL    = "http://localhost:3001/health"
	DefaultPollInterval = 5 * time.Second
	DefaultReadyTimeout = 2 * time.Minute
)

// Config is loaded once at process start and threaded explicitly through
// every constructor; nothing reads the process environment after Load
// returns.
type Config struct {
	ProjectName  string        `mapstructure:"project_name"`
	ComposeFile  string        `mapstructure:"compose_file"`
	EnvFile      string        `mapstructure:"env_file"`
	EnvTemplate  string        `mapstructure:"env_template"`
	HealthURL    string        `mapstructure:"health_url"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	ReadyTimeout time.Duration `mapstructure:"ready_timeout"`

	root string
}

// Load reads configuration for the project rooted at root. A missing
// stackpad.yml is fine; a malformed one is not.
func Load(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("project_name", filepath.Base(root))
	v.SetDefault("compose_file", DefaultComposeFile)
	v.SetDefault("env_file", DefaultEnvFile)
	v.SetDefault("env_template", DefaultEnvTemplate)
	v.SetDefault("health_url", DefaultHealthURL)
	v.SetDefault("poll_interval", DefaultPollInterval)
	v.SetDefault("ready_timeout", DefaultReadyTimeout)

	v.SetEnvPrefix("stackpad")
	v.AutomaticEnv()

	v.SetConfigName("stackpad")
	v.SetConfigType("yml")
	v.AddConfigPath(root)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.root = root
	return &cfg, nil
}

func (c *Config) Root() string {
	return c.root
}

func (c *Config) ComposeFilePath() string {
	return filepath.Join(c.root, c.ComposeFile)
}

func (c *Config) EnvFilePath() string {
	return filepath.Join(c.root, c.EnvFile)
}

func (c *Config) EnvTemplatePath() string {
	return filepath.Join(c.root, c.EnvTemplate)
}
