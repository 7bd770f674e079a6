package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"skincare-recommender/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	// CatalogSource is "file" (CSV/XLSX from the object store) or "postgres".
	CatalogSource   string
	CatalogPath     string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	DatabaseURL     string

	RecommendLimit int
	Policy         PolicyConfig

	RateLimitRPS   float64
	RateLimitBurst int
}

// PolicyConfig carries the matching rule switches.
type PolicyConfig struct {
	AgeHard              bool
	BudgetHard           bool
	ProblemsMatch        string
	BlankBudgetUnlimited bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	if files := existing(".env", "cmd/.env"); len(files) > 0 {
		_ = godotenv.Load(files...)
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	source := normalizeCatalogSource(getEnv("CATALOG_SOURCE", "file"))
	dbURL := os.Getenv("DATABASE_URL")

	if source == "postgres" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"catalog_source": source})
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		CatalogSource:   source,
		CatalogPath:     getEnv("CATALOG_PATH", "services.xlsx"),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		DatabaseURL:     dbURL,
		RecommendLimit:  getEnvInt("RECOMMEND_LIMIT", 0),
		Policy: PolicyConfig{
			AgeHard:              getEnvBool("POLICY_AGE_HARD", true),
			BudgetHard:           getEnvBool("POLICY_BUDGET_HARD", true),
			ProblemsMatch:        strings.ToLower(getEnv("POLICY_PROBLEMS_MATCH", "any")),
			BlankBudgetUnlimited: getEnvBool("POLICY_BLANK_BUDGET_UNLIMITED", true),
		},
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func existing(paths ...string) []string {
	var out []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid_int", map[string]any{"key": key, "error": err.Error()})
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid_float", map[string]any{"key": key, "error": err.Error()})
		return def
	}
	return val
}

func getEnvBool(key string, def bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		telemetry.Warn("config.invalid_bool", map[string]any{"key": key, "error": err.Error()})
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeCatalogSource(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg", "db":
		return "postgres"
	default:
		return "file"
	}
}
