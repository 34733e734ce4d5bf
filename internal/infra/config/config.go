package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env                 string
	Port                string
	MongoURI            string
	MongoDatabase       string
	MongoCollection     string
	MongoTimeout        time.Duration
	OllamaURL           string
	OllamaModel         string
	GenerateTimeout     time.Duration
	DefaultTemperature  float64
	VoiceTemperature    float64
	DefaultMaxDocuments int
	VoiceMaxDocuments   int
	MaxContextLength    int
	SearchLimit         int
	ReportFetchLimit    int
	SourceContentLimit  int
	RefreshInterval     time.Duration
	Persona             string
}

func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		Port:                getEnv("PORT", "9020"),
		MongoURI:            getSecret("MONGO_URI", "MONGO_URI_FILE", "mongodb://localhost:27017"),
		MongoDatabase:       getEnv("MONGO_DB", "nagrik"),
		MongoCollection:     getEnv("MONGO_REPORTS_COLLECTION", "reports"),
		MongoTimeout:        getEnvDuration("MONGO_TIMEOUT", 5*time.Second),
		OllamaURL:           getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:         getEnv("OLLAMA_MODEL", "llama3.1"),
		GenerateTimeout:     getEnvDuration("GENERATE_TIMEOUT", 60*time.Second),
		DefaultTemperature:  getEnvFloat("RAG_DEFAULT_TEMPERATURE", 0.3),
		VoiceTemperature:    getEnvFloat("RAG_VOICE_TEMPERATURE", 0.2),
		DefaultMaxDocuments: getEnvInt("RAG_DEFAULT_MAX_DOCUMENTS", 5),
		VoiceMaxDocuments:   getEnvInt("RAG_VOICE_MAX_DOCUMENTS", 3),
		MaxContextLength:    getEnvInt("RAG_MAX_CONTEXT_LENGTH", 6000),
		SearchLimit:         getEnvInt("RAG_SEARCH_LIMIT", 10),
		ReportFetchLimit:    getEnvInt("RAG_REPORT_FETCH_LIMIT", 200),
		SourceContentLimit:  getEnvInt("RAG_SOURCE_CONTENT_LIMIT", 400),
		RefreshInterval:     getEnvDuration("RAG_REFRESH_INTERVAL", 5*time.Minute),
		Persona:             getEnv("RAG_PERSONA", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getSecret(envKey, fileEnvKey, fallback string) string {
	if value, ok := os.LookupEnv(envKey); ok {
		return value
	}
	if filePath, ok := os.LookupEnv(fileEnvKey); ok {
		content, err := os.ReadFile(filePath)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
