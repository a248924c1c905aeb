package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port          string
	SourceBackend string // "sheet" or "sqlite"
	SheetAPIURL   string
	SheetAPIToken string
	SheetTable    string
	DBPath        string
	JWTSecret     string // empty disables API auth
	FetchTimeout  time.Duration
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	backend := os.Getenv("SOURCE_BACKEND")
	if backend == "" {
		backend = "sheet"
	}

	sheetURL := os.Getenv("SHEET_API_URL")
	if sheetURL == "" {
		sheetURL = "http://localhost:9090"
	}

	table := os.Getenv("SHEET_TABLE")
	if table == "" {
		table = "helmet_observations"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/observations.db"
	}

	timeoutMS := 10000
	if v := os.Getenv("FETCH_TIMEOUT_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutMS = parsed
		}
	}

	return &Config{
		Port:          port,
		SourceBackend: backend,
		SheetAPIURL:   sheetURL,
		SheetAPIToken: os.Getenv("SHEET_API_TOKEN"),
		SheetTable:    table,
		DBPath:        dbPath,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		FetchTimeout:  time.Duration(timeoutMS) * time.Millisecond,
	}
}
