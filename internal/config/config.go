package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Remote spreadsheet (Apps Script web app)
	SheetsScriptURL    string
	SheetsTimeout      time.Duration
	SheetsWriteRetries int

	// Gemini diagnosis
	GeminiAPIKey      string
	GeminiAPIBaseURL  string
	GeminiModel       string
	DiagnosisLanguage string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string
	SupabaseEventsTable    string

	// Local snapshots
	DatabaseURL  string
	SnapshotFile string

	// Staff auth
	StaffPassword     string
	StaffPasswordHash string
	JWTSecret         string
	JWTTTL            time.Duration

	// Twilio SMS
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	SMSCountryCode   string

	// Background sync
	SyncSchedule string

	// Tracing
	OTLPEndpoint string

	// Server
	Port               string
	Environment        string
	BaseURL            string
	ShopTimezone       string
	CORSAllowedOrigins string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		SheetsScriptURL: getEnv("SHEETS_SCRIPT_URL", ""),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiAPIBaseURL:  getEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com/"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-3-pro-preview"),
		DiagnosisLanguage: getEnv("DIAGNOSIS_LANGUAGE", "Thai"),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "repair-photos"),
		SupabaseEventsTable:    getEnv("SUPABASE_EVENTS_TABLE", "repair_events"),

		DatabaseURL:  getEnv("DATABASE_URL", ""),
		SnapshotFile: getEnv("SNAPSHOT_FILE", "./autoservice_snapshots.json"),

		StaffPassword:     getEnv("STAFF_PASSWORD", ""),
		StaffPasswordHash: getEnv("STAFF_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		SMSCountryCode:   getEnv("SMS_COUNTRY_CODE", "66"),

		SyncSchedule: os.Getenv("SYNC_SCHEDULE"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),

		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		ShopTimezone:       getEnv("SHOP_TIMEZONE", "Asia/Bangkok"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
	if _, ok := os.LookupEnv("SYNC_SCHEDULE"); !ok {
		cfg.SyncSchedule = "@every 5m"
	}

	var err error
	if cfg.SheetsTimeout, err = getDuration("SHEETS_TIMEOUT", 30*time.Second); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 12*time.Hour); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.SheetsWriteRetries, err = getInt("SHEETS_WRITE_RETRIES", 3); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.StaffPassword == "" && c.StaffPasswordHash == "" {
		return fmt.Errorf("STAFF_PASSWORD or STAFF_PASSWORD_HASH is required")
	}
	if c.SheetsWriteRetries < 1 {
		return fmt.Errorf("SHEETS_WRITE_RETRIES must be at least 1")
	}
	if _, err := time.LoadLocation(c.ShopTimezone); err != nil {
		return fmt.Errorf("SHOP_TIMEZONE is invalid: %w", err)
	}
	return nil
}

// Location returns the shop's time zone; ticket ids are stamped in it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ShopTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) SheetsEnabled() bool {
	return c.SheetsScriptURL != ""
}

func (c *Config) DiagnosisEnabled() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) StorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabasePublishableKey != ""
}

func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
