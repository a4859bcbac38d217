package shared

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// OpsDisabled as OPS_ADDR turns the ops server off.
const OpsDisabled = "off"

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"prod"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	OpsAddr  string `env:"OPS_ADDR" envDefault:":9100"`

	MySQLDSN string `env:"MYSQL_DSN"`

	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPass       string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	RedisJournalKey string `env:"REDIS_JOURNAL_KEY" envDefault:"hotel:journal"`
	RedisJournalMax int    `env:"REDIS_JOURNAL_MAX" envDefault:"1000"`

	JournalTimeout time.Duration `env:"JOURNAL_TIMEOUT" envDefault:"2s"`

	SeedClients []string `env:"SEED_CLIENTS" envSeparator:"," envDefault:"Juan Pérez,María López"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.RedisJournalMax <= 0 {
		return Config{}, fmt.Errorf("REDIS_JOURNAL_MAX must be positive, got %d", c.RedisJournalMax)
	}
	if c.JournalTimeout <= 0 {
		return Config{}, fmt.Errorf("JOURNAL_TIMEOUT must be positive, got %s", c.JournalTimeout)
	}
	seeds := c.SeedClients[:0]
	for _, n := range c.SeedClients {
		if n = strings.TrimSpace(n); n != "" {
			seeds = append(seeds, n)
		}
	}
	c.SeedClients = seeds
	return c, nil
}

func (c Config) OpsEnabled() bool { return c.OpsAddr != "" && c.OpsAddr != OpsDisabled }
