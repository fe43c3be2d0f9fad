package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/seqren/internal/renamer"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Log formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Naming  NamingConfig      `yaml:"naming"`
	Renamer RenamerConfig     `yaml:"renamer"`
	Serve   ServeConfig       `yaml:"serve"`
	Auth    AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Naming.Validate(); err != nil {
		return err
	}
	if err := c.Renamer.Validate(); err != nil {
		return err
	}
	if err := c.Serve.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
	HTTP      HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatJSON, LogFormatText)),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// NamingConfig holds the final and temporary name stems.
type NamingConfig struct {
	Prefix     string `yaml:"prefix"`
	TempPrefix string `yaml:"temp_prefix"`
}

// Validate validates the naming configuration.
func (c *NamingConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Prefix, validation.Required),
		validation.Field(&c.TempPrefix, validation.Required),
	); err != nil {
		return err
	}
	return c.Naming().Validate()
}

// Naming converts the section into the renamer's type.
func (c *NamingConfig) Naming() renamer.Naming {
	return renamer.Naming{Prefix: c.Prefix, TempPrefix: c.TempPrefix}
}

// RenamerConfig holds per-batch behavior switches.
type RenamerConfig struct {
	FollowSymlinks bool          `yaml:"follow_symlinks"`
	Verify         bool          `yaml:"verify"`
	Monitor        bool          `yaml:"monitor"`
	MonitorSettle  time.Duration `yaml:"monitor_settle"`
}

// Validate validates the renamer configuration.
func (c *RenamerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MonitorSettle, validation.Min(time.Duration(0)), validation.Max(10*time.Second)),
	)
}

// ServeConfig restricts which directories the network-facing shells
// (HTTP, MCP) may operate on.
type ServeConfig struct {
	Root string `yaml:"root"`
}

// Validate validates the serve configuration.
func (c *ServeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
}

// AuthConfig holds authentication configuration for the HTTP API.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local use.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// RenamerOptions builds renamer options from the configuration.
func (c *Config) RenamerOptions(logger *slog.Logger) []renamer.Option {
	return []renamer.Option{
		renamer.WithNaming(c.Naming.Naming()),
		renamer.WithFollowSymlinks(c.Renamer.FollowSymlinks),
		renamer.WithVerify(c.Renamer.Verify),
		renamer.WithMonitor(c.Renamer.Monitor, c.Renamer.MonitorSettle),
		renamer.WithLogger(logger),
	}
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatJSON,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Naming: NamingConfig{
			Prefix:     renamer.DefaultPrefix,
			TempPrefix: renamer.DefaultTempPrefix,
		},
		Renamer: RenamerConfig{
			MonitorSettle: 100 * time.Millisecond,
		},
		Serve: ServeConfig{
			Root: ".",
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
