package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/moneybank/moneybank/internal/account"
	"github.com/moneybank/moneybank/internal/ledger"
)

// EnvPrefix prefixes environment overrides, e.g. MONEYBANK_CHECKING_WITHDRAWAL_FEE.
const EnvPrefix = "MONEYBANK"

// Config represents the top-level moneybank.yaml configuration.
type Config struct {
	Bank     BankConfig     `yaml:"bank" mapstructure:"bank"`
	Savings  SavingsConfig  `yaml:"savings" mapstructure:"savings"`
	Checking CheckingConfig `yaml:"checking" mapstructure:"checking"`
	Opening  OpeningConfig  `yaml:"opening" mapstructure:"opening"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// BankConfig controls presentation.
type BankConfig struct {
	Name           string `yaml:"name" mapstructure:"name"`
	CurrencySymbol string `yaml:"currency_symbol" mapstructure:"currency_symbol"`
}

// SavingsConfig sets the bonus added to savings deposits.
type SavingsConfig struct {
	BonusRate float64 `yaml:"bonus_rate" mapstructure:"bonus_rate"` // 0.02 = 2%
}

// CheckingConfig sets the flat fee charged on checking withdrawals.
type CheckingConfig struct {
	WithdrawalFee float64 `yaml:"withdrawal_fee" mapstructure:"withdrawal_fee"`
}

// OpeningConfig constrains new accounts.
type OpeningConfig struct {
	MinimumBalance float64 `yaml:"minimum_balance" mapstructure:"minimum_balance"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level   string `yaml:"level" mapstructure:"level"`
	Console bool   `yaml:"console" mapstructure:"console"`
}

// Load reads a moneybank.yaml file and applies MONEYBANK_* environment overrides.
// An empty path yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("bank.name", d.Bank.Name)
	v.SetDefault("bank.currency_symbol", d.Bank.CurrencySymbol)
	v.SetDefault("savings.bonus_rate", d.Savings.BonusRate)
	v.SetDefault("checking.withdrawal_fee", d.Checking.WithdrawalFee)
	v.SetDefault("opening.minimum_balance", d.Opening.MinimumBalance)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.console", d.Log.Console)
	return v
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// Default returns a Config with the standard bank rules.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Name:           "Money Bank",
			CurrencySymbol: "€",
		},
		Savings: SavingsConfig{
			BonusRate: 0.02,
		},
		Checking: CheckingConfig{
			WithdrawalFee: 1.50,
		},
		Opening: OpeningConfig{
			MinimumBalance: 1,
		},
		Log: LogConfig{
			Level:   "warn",
			Console: false,
		},
	}
}

// Validate rejects non-finite or negative rates, fees and minimums.
func (c *Config) Validate() error {
	rules := []struct {
		key   string
		value float64
	}{
		{"savings.bonus_rate", c.Savings.BonusRate},
		{"checking.withdrawal_fee", c.Checking.WithdrawalFee},
		{"opening.minimum_balance", c.Opening.MinimumBalance},
	}
	for _, r := range rules {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", r.key, r.value)
		}
		if r.value < 0 {
			return fmt.Errorf("%s must not be negative, got %v", r.key, r.value)
		}
	}
	return nil
}

// LedgerOptions converts the bank rules into ledger options.
func (c *Config) LedgerOptions() ledger.Options {
	return ledger.Options{
		Rates: account.Rates{
			BonusRate:     decimal.NewFromFloat(c.Savings.BonusRate),
			WithdrawalFee: decimal.NewFromFloat(c.Checking.WithdrawalFee),
		},
		MinimumOpening: decimal.NewFromFloat(c.Opening.MinimumBalance),
	}
}
