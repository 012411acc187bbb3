package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the labor-law parameters. Every value the pay and
// settlement calculations use comes from here; the calculators themselves
// carry no business literals.
type PayrollConfig struct {
	StandardShift       time.Duration
	WorkingDaysPerMonth int
	OvertimeMultiplier  decimal.Decimal
	INSSRate            decimal.Decimal
	TransportRate       decimal.Decimal
	FGTSRate            decimal.Decimal
	FGTSPenaltyRate     decimal.Decimal
}

func Load() (*Config, error) {
	// A missing .env file is fine; variables may come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ponto"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll configuration
	shiftHours, err := strconv.Atoi(getEnv("STANDARD_SHIFT_HOURS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_SHIFT_HOURS: %w", err)
	}
	workingDays, err := strconv.Atoi(getEnv("WORKING_DAYS_PER_MONTH", "22"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKING_DAYS_PER_MONTH: %w", err)
	}

	config.Payroll = PayrollConfig{
		StandardShift:       time.Duration(shiftHours) * time.Hour,
		WorkingDaysPerMonth: workingDays,
	}
	rates := []struct {
		name   string
		target *decimal.Decimal
		def    string
	}{
		{"OVERTIME_MULTIPLIER", &config.Payroll.OvertimeMultiplier, "1.5"},
		{"INSS_RATE", &config.Payroll.INSSRate, "0.08"},
		{"TRANSPORT_RATE", &config.Payroll.TransportRate, "0.05"},
		{"FGTS_RATE", &config.Payroll.FGTSRate, "0.08"},
		{"FGTS_PENALTY_RATE", &config.Payroll.FGTSPenaltyRate, "0.40"},
	}
	for _, rate := range rates {
		value, err := decimal.NewFromString(getEnv(rate.name, rate.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", rate.name, err)
		}
		*rate.target = value
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.StandardShift <= 0 {
		return fmt.Errorf("STANDARD_SHIFT_HOURS must be positive")
	}
	if c.Payroll.WorkingDaysPerMonth <= 0 {
		return fmt.Errorf("WORKING_DAYS_PER_MONTH must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
