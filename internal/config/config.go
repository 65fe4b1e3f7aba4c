package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// seasonCodePattern matches season codes like Y1S1 or Y10S3. Season
// indexes only run 1 through 4, so an invalid code can never terminate
// the season-code generator.
var seasonCodePattern = regexp.MustCompile(`^Y[1-9][0-9]*S[1-4]$`)

type Config struct {
	UbiEmail      string
	UbiPassword   string
	UserAgent     string
	TokenDir      string
	CurrentSeason string
	ServerPort    string
	LogLevel      string
	RatePerSecond int
}

func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		UbiEmail:      getEnv("UBI_EMAIL", ""),
		UbiPassword:   getEnv("UBI_PASSWORD", ""),
		UserAgent:     getEnv("HTTP_USER_AGENT", "r6-tracker"),
		TokenDir:      getEnv("TOKEN_DIR", "private"),
		CurrentSeason: getEnv("CURRENT_SEASON", "Y9S2"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RatePerSecond: getEnvInt("MAX_REQUESTS_PER_SECOND", 5),
	}

	if cfg.UbiEmail == "" || cfg.UbiPassword == "" {
		return nil, fmt.Errorf("UBI_EMAIL and UBI_PASSWORD are required")
	}
	if !seasonCodePattern.MatchString(cfg.CurrentSeason) {
		return nil, fmt.Errorf("CURRENT_SEASON %q is not a valid season code", cfg.CurrentSeason)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
