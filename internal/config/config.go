// Package config loads the command line tool's settings.
//
// Sources are layered, later ones winning:
//  1. Defaults
//  2. A YAML file: the explicit path, $TRAKT_CONFIG, or trakt/config.yaml
//     under the user config directory
//  3. TRAKT_* environment variables, e.g. TRAKT_CLIENT_ID -> client_id
//
// Command line flags are applied by the caller after Load.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ansg191/trakt"
)

// EnvPrefix prefixes every environment variable Load reads.
const EnvPrefix = "TRAKT_"

// PathEnvVar names the environment variable that selects the config file.
const PathEnvVar = EnvPrefix + "CONFIG"

type Config struct {
	BaseURL      string        `koanf:"base_url" validate:"required,url"`
	ClientID     string        `koanf:"client_id" validate:"required"`
	ClientSecret string        `koanf:"client_secret"`
	OAuthToken   string        `koanf:"oauth_token"`
	LogLevel     string        `koanf:"log_level" validate:"oneof=debug info warn error"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
}

// Default returns the settings used when no other source sets a key.
func Default() Config {
	return Config{
		BaseURL:  trakt.DefaultBaseURL,
		LogLevel: "info",
		Timeout:  30 * time.Second,
	}
}

// Load reads the layered configuration. path may be empty. An explicit path,
// or one named by PathEnvVar, must exist; the default location is optional.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	path, required := resolvePath(path)
	if path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		switch {
		case err == nil:
		case !required && errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func resolvePath(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if p := os.Getenv(PathEnvVar); p != "" {
		return p, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "trakt", "config.yaml"), false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return name
	})
	return v
}

// Validate reports every invalid key, naming the key as it appears in files.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs[i] = fmt.Sprintf("%s is required", fe.Field())
		case "oneof":
			msgs[i] = fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
		default:
			msgs[i] = fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Context returns the trakt.Context the configuration describes.
func (c Config) Context() trakt.Context {
	return trakt.NewContext(c.BaseURL, c.ClientID).WithToken(c.OAuthToken)
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
