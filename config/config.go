package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"
)

type Config struct {
	Port            string
	DatabaseURL     string // Postgres connection string
	JWTSecret       string
	GeminiAPIKey    string // empty disables generated advice
	GeminiModel     string
	LogLevel        string
	DefaultHorizon  int
	MaxHorizon      int
	ExportSheetName string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:            get("PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		JWTSecret:       must("JWT_SECRET"),
		GeminiAPIKey:    get("GEMINI_API_KEY", ""),
		GeminiModel:     get("GEMINI_MODEL", "gemini-2.5-pro"),
		LogLevel:        get("LOG_LEVEL", "info"),
		DefaultHorizon:  getInt("DEFAULT_HORIZON_MONTHS", 24),
		MaxHorizon:      getInt("MAX_HORIZON_MONTHS", 120),
		ExportSheetName: get("EXPORT_SHEET_NAME", "Monthly"),
	}
	if cfg.DefaultHorizon > cfg.MaxHorizon {
		cfg.DefaultHorizon = cfg.MaxHorizon
	}
	return cfg
}

// SetupLogger points the package-level phuslu logger at the console with the
// configured level.
func SetupLogger(level string) {
	log.DefaultLogger = log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: "15:04:05",
		Caller:     1,
		Writer: &log.ConsoleWriter{
			ColorOutput:    true,
			EndWithMessage: true,
		},
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("invalid integer env, using default")
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatal().Str("key", k).Msg("missing required env")
	}
	return v
}
