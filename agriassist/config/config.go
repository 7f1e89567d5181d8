package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Search    SearchConfig
	Translate TranslateConfig
	LLM       LLMConfig
	Predictor PredictorConfig
	Chatbot   ChatbotConfig
	Log       LogConfig
}

type ServerConfig struct {
	Addr           string
	RequestTimeout time.Duration
	AllowedOrigins []string
}

type DatabaseConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type SearchConfig struct {
	Provider       string // "google" or "duckduckgo"
	GoogleAPIKey   string
	GoogleEngineID string
	GoogleEndpoint string
	Timeout        time.Duration
}

type TranslateConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

type LLMConfig struct {
	Provider string // "gemini" or "openai"
	APIKey   string
	Model    string
	BaseURL  string
}

type PredictorConfig struct {
	URL     string
	Timeout time.Duration
}

type ChatbotConfig struct {
	PolicyFile string
}

type LogConfig struct {
	Dir string
}

// envFiles are tried in order; the first one found wins.
var envFiles = []string{".env", "../.env"}

func LoadConfig() Config {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			break
		}
	}

	googleKey := getEnv("GOOGLE_API_KEY", "")
	searchKey := getEnv("GOOGLE_SEARCH_API_KEY", googleKey)
	engineID := getEnv("GOOGLE_SEARCH_ENGINE_ID", "")
	defaultProvider := "duckduckgo"
	if searchKey != "" && engineID != "" {
		defaultProvider = "google"
	}

	return Config{
		Server: ServerConfig{
			Addr:           getEnv("SERVER_ADDR", ":8000"),
			RequestTimeout: getDuration("SERVER_REQUEST_TIMEOUT_SECONDS", 60),
			AllowedOrigins: []string{getEnv("CORS_ALLOWED_ORIGIN", "*")},
		},
		Database: DatabaseConfig{
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "agriassist"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenTTL:      time.Duration(getInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "chatbot-data"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Search: SearchConfig{
			Provider:       getEnv("SEARCH_PROVIDER", defaultProvider),
			GoogleAPIKey:   searchKey,
			GoogleEngineID: engineID,
			GoogleEndpoint: getEnv("GOOGLE_SEARCH_ENDPOINT", "https://www.googleapis.com/customsearch/v1"),
			Timeout:        getDuration("SEARCH_TIMEOUT_SECONDS", 10),
		},
		Translate: TranslateConfig{
			APIKey:   getEnv("GOOGLE_TRANSLATE_API_KEY", googleKey),
			Endpoint: getEnv("GOOGLE_TRANSLATE_ENDPOINT", "https://translation.googleapis.com/language/translate/v2"),
			Timeout:  getDuration("TRANSLATE_TIMEOUT_SECONDS", 10),
		},
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", "gemini"),
			APIKey:   getEnv("GEMINI_API_KEY", getEnv("OPENAI_API_KEY", "")),
			Model:    getEnv("LLM_MODEL", "gemini-1.5-flash"),
			BaseURL:  getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		},
		Predictor: PredictorConfig{
			URL:     getEnv("PREDICTOR_URL", "https://agri-assist-models.onrender.com/predict"),
			Timeout: getDuration("PREDICTOR_TIMEOUT_SECONDS", 30),
		},
		Chatbot: ChatbotConfig{
			PolicyFile: getEnv("CHATBOT_POLICY_FILE", ""),
		},
		Log: LogConfig{
			Dir: getEnv("LOG_DIR", "./logs"),
		},
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallbackSeconds int) time.Duration {
	return time.Duration(getInt(key, fallbackSeconds)) * time.Second
}
