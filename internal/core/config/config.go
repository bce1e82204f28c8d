package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Rates holds the rate-table source configuration.
	Rates RatesConfig `mapstructure:",squash"`

	// Distance holds the distance provider configuration.
	Distance DistanceConfig `mapstructure:",squash"`

	// Pricing holds the quote policy limits.
	Pricing PricingConfig `mapstructure:",squash"`

	// Proxy holds the outbound proxy used by the HTTP distance client.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// RatesConfig describes where rate tables are loaded from.
type RatesConfig struct {
	// Source selects the rate provider: "file" or "postgres".
	Source string `mapstructure:"RATE_SOURCE" default:"file"`
	// File is the YAML rate file used when Source is "file".
	File string `mapstructure:"RATE_FILE" default:"rates.yaml"`
	// DatabaseURL is the Postgres DSN used when Source is "postgres".
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// RefreshTimeout bounds a single reload of all rate tables.
	RefreshTimeout time.Duration `mapstructure:"RATE_REFRESH_TIMEOUT" default:"10s"`
	// RefreshInterval enables periodic reloads when greater than zero.
	RefreshInterval time.Duration `mapstructure:"RATE_REFRESH_INTERVAL"`
}

// DistanceConfig describes how road/great-circle miles are obtained.
type DistanceConfig struct {
	// Provider selects the distance backend: "haversine" or "http".
	Provider string `mapstructure:"DISTANCE_PROVIDER" default:"haversine"`
	// CentroidsFile is a geonames US.txt dump used by the haversine provider.
	CentroidsFile string `mapstructure:"ZIP_CENTROIDS_FILE" default:"US.txt"`
	// APIURL is the distance-matrix endpoint used by the http provider.
	APIURL string `mapstructure:"DISTANCE_API_URL"`
	// APIKey is sent as the key query parameter to the distance API.
	APIKey string `mapstructure:"DISTANCE_API_KEY"`
	// Timeout bounds a single distance lookup.
	Timeout time.Duration `mapstructure:"DISTANCE_TIMEOUT" default:"3s"`
	// FailurePolicy is "fail" (reject the quote) or "zero" (price as 0 miles).
	FailurePolicy string `mapstructure:"DISTANCE_FAILURE_POLICY" default:"fail"`
	// CacheTTL is how long a looked-up distance stays in Redis.
	CacheTTL time.Duration `mapstructure:"DISTANCE_CACHE_TTL" default:"24h"`
	// RedisURL enables distance caching when set.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// PricingConfig holds the advisory limits and the guarantee fallback.
type PricingConfig struct {
	// AirWeightLimit is the billable weight above which air quotes are flagged.
	AirWeightLimit float64 `mapstructure:"AIR_WEIGHT_LIMIT" default:"1200"`
	// WeightLimit is the billable weight above which any quote is flagged.
	WeightLimit float64 `mapstructure:"WEIGHT_LIMIT" default:"3000"`
	// TotalLimit is the quote total above which any quote is flagged.
	TotalLimit float64 `mapstructure:"TOTAL_LIMIT" default:"6000"`
	// GuaranteeDefaultPct is used when the catalog has no guarantee percentage.
	GuaranteeDefaultPct float64 `mapstructure:"GUARANTEE_DEFAULT_PCT" default:"0.25"`
}

// ProxyConfig holds the outbound proxy credentials.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USER"`
	Password string `mapstructure:"PROXY_PASS"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// validate lower-cases the enumerated settings and checks them along with
// cross-field requirements.
func (c *AppConfig) validate() error {
	c.Rates.Source = strings.ToLower(strings.TrimSpace(c.Rates.Source))
	c.Distance.Provider = strings.ToLower(strings.TrimSpace(c.Distance.Provider))
	c.Distance.FailurePolicy = strings.ToLower(strings.TrimSpace(c.Distance.FailurePolicy))

	switch c.Rates.Source {
	case "file":
	case "postgres":
		if c.Rates.DatabaseURL == "" {
			return fmt.Errorf("missing required configuration: DATABASE_URL (RATE_SOURCE=postgres)")
		}
	default:
		return fmt.Errorf("invalid RATE_SOURCE %q: must be file or postgres", c.Rates.Source)
	}

	switch c.Distance.Provider {
	case "haversine":
	case "http":
		if c.Distance.APIURL == "" {
			return fmt.Errorf("missing required configuration: DISTANCE_API_URL (DISTANCE_PROVIDER=http)")
		}
	default:
		return fmt.Errorf("invalid DISTANCE_PROVIDER %q: must be haversine or http", c.Distance.Provider)
	}

	switch c.Distance.FailurePolicy {
	case "fail", "zero":
	default:
		return fmt.Errorf("invalid DISTANCE_FAILURE_POLICY %q: must be fail or zero", c.Distance.FailurePolicy)
	}

	return nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
