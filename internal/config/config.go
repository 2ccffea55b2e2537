package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix          = "BULBEATS"
	defaultHTTPAddress = "0.0.0.0:8080"
	defaultLogLevel    = "info"
	defaultManualTool  = "https://yt-mp3s.me"
	defaultOutputDir   = "/tmp/bulbeats-downloads"
)

var defaultCobaltInstances = []string{
	"https://api.cobalt.tools",
	"https://cobalt-api.kwiatekmiki.com",
	"https://cobalt.api.timelessnesses.me",
}

// AppConfig captures runtime configuration for the API server.
type AppConfig struct {
	HTTPAddress    string
	ProjectID      string
	YouTubeAPIKey  string
	LogLevel       string
	AllowedOrigins []string

	CobaltInstances []string
	CobaltTimeout   time.Duration
	RelayURL        string
	RelayTimeout    time.Duration
	YtdlpPath       string
	YtdlpOutputDir  string
	YtdlpTimeout    time.Duration
	ManualToolURL   string
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("http.address", defaultHTTPAddress)
	configViper.SetDefault("log.level", defaultLogLevel)
	configViper.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	configViper.SetDefault("resolver.cobalt_instances", defaultCobaltInstances)
	configViper.SetDefault("resolver.cobalt_timeout", "8s")
	configViper.SetDefault("resolver.relay_timeout", "15s")
	configViper.SetDefault("resolver.ytdlp_path", "")
	configViper.SetDefault("resolver.ytdlp_output_dir", defaultOutputDir)
	configViper.SetDefault("resolver.ytdlp_timeout", "30s")
	configViper.SetDefault("resolver.manual_tool_url", defaultManualTool)
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddress:     configViper.GetString("http.address"),
		ProjectID:       configViper.GetString("google.project_id"),
		YouTubeAPIKey:   configViper.GetString("youtube.api_key"),
		LogLevel:        configViper.GetString("log.level"),
		AllowedOrigins:  configViper.GetStringSlice("cors.allowed_origins"),
		CobaltInstances: configViper.GetStringSlice("resolver.cobalt_instances"),
		CobaltTimeout:   configViper.GetDuration("resolver.cobalt_timeout"),
		RelayURL:        configViper.GetString("resolver.relay_url"),
		RelayTimeout:    configViper.GetDuration("resolver.relay_timeout"),
		YtdlpPath:       configViper.GetString("resolver.ytdlp_path"),
		YtdlpOutputDir:  configViper.GetString("resolver.ytdlp_output_dir"),
		YtdlpTimeout:    configViper.GetDuration("resolver.ytdlp_timeout"),
		ManualToolURL:   configViper.GetString("resolver.manual_tool_url"),
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return fmt.Errorf("google.project_id is required")
	}
	if strings.TrimSpace(c.YouTubeAPIKey) == "" {
		return fmt.Errorf("youtube.api_key is required")
	}
	if len(c.CobaltInstances) == 0 {
		return fmt.Errorf("resolver.cobalt_instances must not be empty")
	}
	if c.CobaltTimeout <= 0 || c.RelayTimeout <= 0 || c.YtdlpTimeout <= 0 {
		return fmt.Errorf("resolver timeouts must be positive")
	}
	return nil
}
