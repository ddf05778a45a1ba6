// Package config loads the settings of the qb command.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/golobby/qb"
)

var AppFs = afero.NewOsFs()

const envPrefix = "QB"

// Config holds the command configuration
type Config struct {
	Driver     string
	DSN        string
	PrimaryKey string
	ErrorMode  string
	LogLevel   string
}

// flag name -> config key
var flagKeys = map[string]string{
	"driver":      "driver",
	"dsn":         "dsn",
	"primary-key": "primary_key",
	"error-mode":  "error_mode",
	"log-level":   "log_level",
}

// Load reads, lowest priority first, the defaults, qb.yaml (or file when it
// is not empty), .env and .env.local, QB_* environment variables and the
// flags that were set on the command line.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(AppFs)

	v.SetDefault("driver", "sqlite3")
	v.SetDefault("dsn", "")
	v.SetDefault("primary_key", qb.DefaultPrimaryKey)
	v.SetDefault("error_mode", qb.ErrorModeException.String())
	v.SetDefault("log_level", "none")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", file)
		}
	} else {
		v.SetConfigName("qb")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "qb"))
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "reading qb.yaml")
			}
		}
	}

	for _, name := range []string{".env", ".env.local"} {
		values, err := readDotenv(name)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, errors.Wrapf(err, "merging %s", name)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{
		Driver:     v.GetString("driver"),
		DSN:        v.GetString("dsn"),
		PrimaryKey: v.GetString("primary_key"),
		ErrorMode:  v.GetString("error_mode"),
		LogLevel:   v.GetString("log_level"),
	}
	if cfg.DSN == "" {
		cfg.DSN = os.Getenv("DATABASE_URL")
	}
	return cfg, nil
}

// readDotenv returns the QB_* entries of a dotenv file as config keys. A
// missing file yields nothing.
func readDotenv(name string) (map[string]interface{}, error) {
	f, err := AppFs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{}, nil
		}
		return nil, err
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", name)
	}
	values := map[string]interface{}{}
	for k, val := range env {
		if key, ok := strings.CutPrefix(k, envPrefix+"_"); ok {
			values[strings.ToLower(key)] = val
		}
	}
	return values, nil
}

// Connection turns the loaded settings into a ConnectionConfig.
func (c *Config) Connection() (qb.ConnectionConfig, error) {
	mode, err := parseErrorMode(c.ErrorMode)
	if err != nil {
		return qb.ConnectionConfig{}, err
	}
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return qb.ConnectionConfig{}, err
	}
	return qb.ConnectionConfig{
		Driver:           c.Driver,
		ConnectionString: c.DSN,
		Config: qb.Config{
			PrimaryKey: c.PrimaryKey,
			ErrorMode:  mode,
			LogLevel:   level,
		},
	}, nil
}

func parseErrorMode(s string) (qb.ErrorMode, error) {
	for _, m := range []qb.ErrorMode{qb.ErrorModeException, qb.ErrorModeWarning, qb.ErrorModeSilent} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown error mode %q", s)
}

func parseLogLevel(s string) (qb.LogLevel, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return qb.LogLevelNone, nil
	case "dev":
		return qb.LogLevelDev, nil
	case "prod":
		return qb.LogLevelProd, nil
	default:
		return 0, errors.Errorf("unknown log level %q", s)
	}
}
