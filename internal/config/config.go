package config

import (
	"errors"
	"fmt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"strings"
)

const (
	configFileName = "salesdir"
	configFileType = "yaml"
	envPrefix      = "SALESDIR"

	// Config keys, flags with the same name but dashes override them
	KeyDataFile   = "data_file"
	KeyBuckets    = "buckets"
	KeyMaxRecords = "max_records"
	KeyLogLevel   = "log_level"

	DefaultDataFile   = "sales_data.dat"
	DefaultBuckets    = 1000
	DefaultMaxRecords = 1000
	DefaultLogLevel   = "warn"
)

// Config - Resolved settings for a salesdir run
//   - DataFile is the name of the data file (including path)
//   - Buckets is the fixed number of buckets of the directory
//   - MaxRecords is the max number of records the directory accepts
//   - LogLevel is a zap level name, e.g. debug, info or warn
type Config struct {
	DataFile   string `mapstructure:"data_file"`
	Buckets    int64  `mapstructure:"buckets"`
	MaxRecords int64  `mapstructure:"max_records"`
	LogLevel   string `mapstructure:"log_level"`
}

// Load - Resolves configuration from defaults, an optional salesdir.yaml, SALESDIR_ prefixed environment
// variables and finally command line flags, each overriding the one before.
//   - configFile is an explicit config file, empty searches the working directory for salesdir.yaml
//   - flags is the flag set holding data-file and log-level, may be nil
//
// It returns:
//   - cfg is the resolved configuration
//   - err is a standard error if the config file could not be read or holds invalid values
func Load(configFile string, flags *pflag.FlagSet) (cfg Config, err error) {
	v := viper.New()
	v.SetDefault(KeyDataFile, DefaultDataFile)
	v.SetDefault(KeyBuckets, DefaultBuckets)
	v.SetDefault(KeyMaxRecords, DefaultMaxRecords)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err = v.ReadInConfig(); err != nil {
		// A missing salesdir.yaml is fine, a missing explicit config file is not
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			err = fmt.Errorf("read config: %w", err)
			return
		}
		err = nil
	}

	if flags != nil {
		for _, key := range []string{KeyDataFile, KeyLogLevel} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					err = fmt.Errorf("bind flag %s: %w", f.Name, err)
					return
				}
			}
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		err = fmt.Errorf("decode config: %w", err)
		return
	}

	err = cfg.validate()

	return
}

// validate - Checks the resolved values
func (c Config) validate() (err error) {
	if c.DataFile == "" {
		err = fmt.Errorf("%s must not be empty", KeyDataFile)
		return
	}
	if c.Buckets <= 0 {
		err = fmt.Errorf("%s must be a positive value higher than 0 (zero)", KeyBuckets)
		return
	}
	if c.MaxRecords <= 0 {
		err = fmt.Errorf("%s must be a positive value higher than 0 (zero)", KeyMaxRecords)
		return
	}

	return
}
