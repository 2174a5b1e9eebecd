package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	_ "time/tzdata" // dates.timezone must resolve in minimal images

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	environ   func() []string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithEnviron replaces os.Environ as the source of APP_* overrides.
func WithEnviron(environ func() []string) Option {
	return func(o *loadOptions) { o.environ = environ }
}

// Load resolves the configuration for profile from four layers, later
// layers winning:
//
//	built-in defaults
//	<dir>/base.yaml
//	<dir>/<profile>.yaml
//	APP_* environment variables
//
// An environment variable names a key by its path with dots written as
// underscores, so APP_CLIENT_RETRY_MAX_ATTEMPTS sets client.retry.max_attempts
// and APP_DATES_MIN_YEAR sets dates.min_year. Variables that match no known
// key, APP_PROFILE among them, are ignored.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	overrides := env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyResolver(k.Keys()),
		EnvironFunc:   o.environ,
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, fmt.Errorf("reading %s* environment: %w", envPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// checkProfile rejects names that would escape the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare file name", profile)
	}
	return nil
}

// envKeyResolver maps APP_SERVER_READ_TIMEOUT to server.read_timeout by
// looking the underscored form up among the keys already loaded. Splitting on
// underscores alone would yield server.read.timeout.
func envKeyResolver(known []string) func(string, string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}
	return func(name, value string) (string, any) {
		return byEnvName[strings.ToLower(strings.TrimPrefix(name, envPrefix))], value
	}
}
