package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	OrgURL         string        `mapstructure:"org_url"`
	PAT            string        `mapstructure:"pat"`
	AccessToken    string        `mapstructure:"access_token"`
	Project        string        `mapstructure:"project"`
	Repository     string        `mapstructure:"repository"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		RequestTimeout: 60 * time.Second,
		LogLevel:       "info",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Credentials are optional at load time - only validated when a
	// remote operation actually needs them.
	if c.OrgURL != "" {
		if err := ValidateOrgURL(c.OrgURL); err != nil {
			return fmt.Errorf("invalid org_url: %w", err)
		}
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	return nil
}

// ValidateForRemoteOperations validates that an organization URL and a
// credential are present for operations that call the remote API.
func (c *Config) ValidateForRemoteOperations() error {
	if c.OrgURL == "" {
		return fmt.Errorf("org_url is required for remote operations (set AZDO_ORG_URL)")
	}
	if c.PAT == "" && c.AccessToken == "" {
		return fmt.Errorf("a credential is required for remote operations (set AZDO_PAT or AZDO_ACCESS_TOKEN)")
	}
	return c.Validate()
}

// ValidateOrgURL validates an Azure DevOps organization base URL. Both
// https://dev.azure.com/{org} and https://{org}.visualstudio.com forms are
// accepted.
func ValidateOrgURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("url must include an http(s) scheme: %s", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("url must include a host: %s", raw)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".publishpr")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Configure environment variables
	viper.SetEnvPrefix("PUBLISHPR")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables - BindEnv checks them in order
	if err := viper.BindEnv("org_url", "AZDO_ORG_URL", "PUBLISHPR_ORG_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind org_url env: %w", err)
	}
	if err := viper.BindEnv("pat", "AZDO_PAT", "PUBLISHPR_PAT"); err != nil {
		return nil, fmt.Errorf("failed to bind pat env: %w", err)
	}
	if err := viper.BindEnv("access_token", "AZDO_ACCESS_TOKEN", "PUBLISHPR_ACCESS_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind access_token env: %w", err)
	}
	if err := viper.BindEnv("project", "AZDO_PROJECT", "PUBLISHPR_PROJECT"); err != nil {
		return nil, fmt.Errorf("failed to bind project env: %w", err)
	}
	if err := viper.BindEnv("repository", "AZDO_REPOSITORY", "PUBLISHPR_REPOSITORY"); err != nil {
		return nil, fmt.Errorf("failed to bind repository env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("request_timeout", defaults.RequestTimeout)
	viper.SetDefault("log_level", defaults.LogLevel)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.OrgURL = strings.TrimRight(strings.TrimSpace(config.OrgURL), "/")
	// Fill org/project/repository from the local checkout's origin remote
	// when the environment left them empty.
	if err := populateRepositoryDefaults(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
