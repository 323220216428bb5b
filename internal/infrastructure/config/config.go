package config

import (
	"fmt"
	"strings"
	"time"

	"repasse_imoveis/internal/domain/billing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config is the service configuration.
//
// Values come from environment variables (a .env file is loaded by the entrypoint);
// key "app.port" is read from APP_PORT, and so on.
type Config struct {
	App         AppConfig
	Log         LogConfig
	DynamoDB    DynamoDBConfig
	Tables      TableNames
	LateFee     LateFeeConfig
	Lock        LockConfig
	CORS        CORSConfig
	MercadoPago MercadoPagoConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

type DynamoDBConfig struct {
	Region           string
	Endpoint         string
	AccessKeyID      string
	SecretAccessKey  string
	AutoCreateTables bool
}

type TableNames struct {
	Invoices          string
	Settlements       string
	Payouts           string
	Contracts         string
	Owners            string
	RetentionConfigs  string
	CorrectionIndexes string
}

// LateFeeConfig holds the contractual rates. DailyInterestRate, when set, overrides
// the rate derived from MonthlyInterestRate.
type LateFeeConfig struct {
	MonthlyInterestRate decimal.Decimal
	DailyInterestRate   *decimal.Decimal
	PenaltyRate         decimal.Decimal
}

// Rates converts the configuration into engine rates.
func (c LateFeeConfig) Rates() billing.LateFeeRates {
	rates := billing.NewLateFeeRates(c.MonthlyInterestRate, c.PenaltyRate)
	if c.DailyInterestRate != nil {
		rates.DailyInterestRate = *c.DailyInterestRate
	}
	return rates
}

// LockConfig selects the invoice lock backend. An empty RedisURL keeps locks in
// process, which is only correct for a single replica.
type LockConfig struct {
	RedisURL string
	TTL      time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type MercadoPagoConfig struct {
	AccessToken string
	Mock        bool
	Timeout     time.Duration
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetInt("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		DynamoDB: DynamoDBConfig{
			Region:           v.GetString("aws.region"),
			Endpoint:         v.GetString("dynamodb.endpoint"),
			AccessKeyID:      v.GetString("aws.access_key_id"),
			SecretAccessKey:  v.GetString("aws.secret_access_key"),
			AutoCreateTables: v.GetBool("dynamodb.auto_create_tables"),
		},
		Tables: TableNames{
			Invoices:          v.GetString("invoices.table"),
			Settlements:       v.GetString("settlements.table"),
			Payouts:           v.GetString("payouts.table"),
			Contracts:         v.GetString("contracts.table"),
			Owners:            v.GetString("owners.table"),
			RetentionConfigs:  v.GetString("retention_configs.table"),
			CorrectionIndexes: v.GetString("correction_indexes.table"),
		},
		Lock: LockConfig{
			RedisURL: v.GetString("redis.url"),
			TTL:      v.GetDuration("lock.ttl"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: v.GetString("mercadopago.access_token"),
			Mock:        v.GetBool("payment_gateway.mock") || v.GetBool("mercadopago.mock"),
			Timeout:     v.GetDuration("mercadopago.timeout"),
		},
	}

	var err error
	if cfg.LateFee.MonthlyInterestRate, err = decimalKey(v, "late_fee.monthly_interest_rate"); err != nil {
		return nil, err
	}
	if cfg.LateFee.PenaltyRate, err = decimalKey(v, "late_fee.penalty_rate"); err != nil {
		return nil, err
	}
	if raw := strings.TrimSpace(v.GetString("late_fee.daily_interest_rate")); raw != "" {
		daily, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LATE_FEE_DAILY_INTEREST_RATE %q: %w", raw, err)
		}
		cfg.LateFee.DailyInterestRate = &daily
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "repasse-imoveis")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("dynamodb.auto_create_tables", false)
	v.SetDefault("invoices.table", "invoices")
	v.SetDefault("settlements.table", "settlements")
	v.SetDefault("payouts.table", "owner_payouts")
	v.SetDefault("contracts.table", "contracts")
	v.SetDefault("owners.table", "owners")
	v.SetDefault("retention_configs.table", "retention_configs")
	v.SetDefault("correction_indexes.table", "correction_indexes")
	v.SetDefault("late_fee.monthly_interest_rate", "0.01")
	v.SetDefault("late_fee.penalty_rate", "0.02")
	v.SetDefault("lock.ttl", 30*time.Second)
	v.SetDefault("mercadopago.timeout", 5*time.Second)
}

func (c *Config) validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.App.Port)
	}
	if c.Lock.TTL <= 0 {
		return fmt.Errorf("LOCK_TTL must be positive, got %s", c.Lock.TTL)
	}
	if c.LateFee.MonthlyInterestRate.IsNegative() || c.LateFee.PenaltyRate.IsNegative() {
		return fmt.Errorf("late fee rates cannot be negative")
	}
	if c.LateFee.DailyInterestRate != nil && c.LateFee.DailyInterestRate.IsNegative() {
		return fmt.Errorf("late fee rates cannot be negative")
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func decimalKey(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", strings.ToUpper(strings.ReplaceAll(key, ".", "_")), raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
