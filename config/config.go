/*
Package config loads server configuration and builds the logger.

SOURCES (highest priority first):
  1. Command-line flags (-port, -db, -env)
  2. Environment variables
  3. A .env file, if present (loaded with godotenv, never overriding the
     real environment)
  4. Defaults

KEYS:
  PORT                    HTTP port                      8080
  DB_PATH                 SQLite path or ":memory:"      cashdrop.db
  LOG_LEVEL               logrus level                   info
  LOG_FORMAT              json | text                    json
  BUSINESS_TIMEZONE       IANA zone for "today"          America/Los_Angeles
  MAX_CASH_DROPS_PER_DAY  daily submission cap           10
  STARTING_AMOUNT         default register float         200.00
  CORS_ALLOWED_ORIGINS    comma separated                http://localhost:3000,http://localhost:5173
  SHIFTS                  comma separated shift names    (empty)
  WORKSTATIONS            comma separated register ids   (empty)

  MAX_CASH_DROPS_PER_DAY, STARTING_AMOUNT, SHIFTS and WORKSTATIONS seed the
  settings row on first start. After that the admin-settings endpoint is
  authoritative.
*/
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/warp/cash-office/cashdrop"
)

type Config struct {
	Port           int      `validate:"min=1,max=65535"`
	DBPath         string   `validate:"required"`
	LogLevel       string   `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat      string   `validate:"oneof=json text"`
	Timezone       string   `validate:"required"`
	MaxDropsPerDay int      `validate:"min=1"`
	StartingAmount string   `validate:"required,numeric"`
	AllowedOrigins []string `validate:"dive,required"`
	Shifts         []string `validate:"dive,required"`
	Workstations   []string `validate:"dive,required"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:           8080,
		DBPath:         "cashdrop.db",
		LogLevel:       "info",
		LogFormat:      "json",
		Timezone:       "America/Los_Angeles",
		MaxDropsPerDay: cashdrop.DefaultMaxCashDropsPerDay,
		StartingAmount: cashdrop.DefaultStartingAmount.StringFixed(2),
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Load reads configuration from args (typically os.Args[1:]), the
// environment, and an optional .env file.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	port := fs.Int("port", 0, "HTTP server port")
	dbPath := fs.String("db", "", "SQLite database path (\":memory:\" for in-memory)")
	envFile := fs.String("env", ".env", "dotenv file to load if it exists")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if _, err := os.Stat(*envFile); err == nil {
		if err := godotenv.Load(*envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", *envFile, err)
		}
	}

	cfg := Defaults()
	if err := fromEnv(&cfg); err != nil {
		return Config{}, err
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		cfg.Port = n
	}
	if v := os.Getenv("MAX_CASH_DROPS_PER_DAY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MAX_CASH_DROPS_PER_DAY: %w", err)
		}
		cfg.MaxDropsPerDay = n
	}
	setString(&cfg.DBPath, "DB_PATH")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")
	setString(&cfg.Timezone, "BUSINESS_TIMEZONE")
	setString(&cfg.StartingAmount, "STARTING_AMOUNT")
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("SHIFTS"); v != "" {
		cfg.Shifts = splitList(v)
	}
	if v := os.Getenv("WORKSTATIONS"); v != "" {
		cfg.Workstations = splitList(v)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var validate = validator.New()

// Validate checks struct tags, then the values that need parsing.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Settings(); err != nil {
		return err
	}
	return nil
}

// Location resolves the business timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Settings is the configured seed for the settings row.
func (c Config) Settings() (cashdrop.Settings, error) {
	amount, err := decimal.NewFromString(c.StartingAmount)
	if err != nil {
		return cashdrop.Settings{}, fmt.Errorf("invalid STARTING_AMOUNT %q: %w", c.StartingAmount, err)
	}
	s := cashdrop.Settings{
		MaxCashDropsPerDay: c.MaxDropsPerDay,
		StartingAmount:     amount,
		Shifts:             c.Shifts,
		Workstations:       c.Workstations,
	}
	if err := s.Validate(); err != nil {
		return cashdrop.Settings{}, err
	}
	return s, nil
}
