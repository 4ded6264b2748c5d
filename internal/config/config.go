package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"paytrack/internal/logger"
)

type DBConfig struct {
	File        string `toml:"file"`
	JournalMode string `toml:"journal_mode"`
	Synchronous string `toml:"synchronous"`
}

type Config struct {
	Addr         string        `toml:"addr"`
	SeedDemoData bool          `toml:"seed_demo_data"`
	DB           DBConfig      `toml:"db"`
	Logger       logger.Config `toml:"logger"`
}

const (
	defaultAddr        = ":8080"
	defaultDBFile      = "paytrack.db"
	defaultJournalMode = "WAL"
	defaultSynchronous = "NORMAL"
	defaultLogLevel    = logger.LevelInfo
	defaultLogFormat   = logger.FormatText
	defaultLogOutput   = "stdout"
)

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = defaultAddr
	}

	if c.DB.File == "" {
		c.DB.File = defaultDBFile
	}

	if c.DB.JournalMode == "" {
		c.DB.JournalMode = defaultJournalMode
	}

	if c.DB.Synchronous == "" {
		c.DB.Synchronous = defaultSynchronous
	}

	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}

	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}

	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}

func (c *Config) parseEnv() {
	if addr := os.Getenv("PAYTRACK_ADDR"); addr != "" {
		c.Addr = addr
	}

	if db := os.Getenv("PAYTRACK_DB"); db != "" {
		c.DB.File = db
	}

	if seed := os.Getenv("PAYTRACK_SEED_DEMO_DATA"); seed != "" {
		if value, err := strconv.ParseBool(seed); err == nil {
			c.SeedDemoData = value
		}
	}

	if level := os.Getenv("PAYTRACK_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("PAYTRACK_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("PAYTRACK_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

// Parse loads configuration from the optional TOML file at path, then
// applies PAYTRACK_* environment overrides. A .env file in the working
// directory is honored before the environment is read.
func Parse(path string) (*Config, error) {
	// Missing .env is not an error.
	_ = godotenv.Load()

	conf := &Config{}

	if path != "" {
		bytes, err := os.ReadFile(path)
		if err == nil {
			if err = toml.Unmarshal(bytes, conf); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	conf.parseEnv()
	conf.applyDefaults()

	return conf, nil
}
