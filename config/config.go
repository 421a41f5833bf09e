// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Config is the root configuration for the service.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// App holds site-level settings.
	App struct {
		// BaseURL is the externally visible URL of the site, used to build
		// login links and post-login redirects.
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
		// TemplatesGlob locates the HTML templates.
		TemplatesGlob string `json:"templatesGlob" yaml:"templatesGlob"`
		// AssetsDir is served under /assets.
		AssetsDir string `json:"assetsDir" yaml:"assetsDir"`
	} `json:"app" yaml:"app"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

// Log configures the process logger.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PostgresConfig describes the database connection.
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// MailConfig describes the SMTP transport used for login links.
type MailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	// From is the sender address on outgoing mail.
	From string `json:"from" yaml:"from"`
}

// AuthConfig tunes the passwordless login flow.
type AuthConfig struct {
	// LoginTokenTTL bounds how long a mailed login link stays valid.
	LoginTokenTTL time.Duration `json:"loginTokenTtl" yaml:"loginTokenTtl"`
	// SessionTokenTTL bounds how long a session cookie stays valid.
	SessionTokenTTL time.Duration `json:"sessionTokenTtl" yaml:"sessionTokenTtl"`
	// SecureCookies controls the Secure attribute on the session cookie.
	// Disable only for plain-HTTP local development.
	SecureCookies bool `json:"secureCookies" yaml:"secureCookies"`
}

// Defaults applied when the auth section is missing or partial.
const (
	DefaultLoginTokenTTL   = 30 * time.Minute
	DefaultSessionTokenTTL = 180 * 24 * time.Hour
)

// LoadWithEnv loads .yaml files through koanf, then applies environment
// variable overrides (MAIL_HOST -> mail.host and so on).
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// MAIL_HOST -> mail.host
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads the service configuration and fills in auth defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.LoginTokenTTL == 0 {
		cfg.Auth.LoginTokenTTL = DefaultLoginTokenTTL
	}
	if cfg.Auth.SessionTokenTTL == 0 {
		cfg.Auth.SessionTokenTTL = DefaultSessionTokenTTL
	}
	if cfg.App.TemplatesGlob == "" {
		cfg.App.TemplatesGlob = "templates/*.html"
	}
	if cfg.App.AssetsDir == "" {
		cfg.App.AssetsDir = "assets"
	}

	return cfg, nil
}
