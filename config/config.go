// Package config reads application settings from the environment, after
// loading an optional .env file.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultReportTitle = "Total Paper Evaluation Report"
	defaultSessionTTL  = 12 * time.Hour
	defaultStaticDir   = "./static"
)

// Config holds the settings that are not PocketBase serve flags.
type Config struct {
	ReportTitle string
	SessionTTL  time.Duration
	StaticDir   string
}

// Load reads .env files (missing files are ignored) and then the process
// environment. Invalid values fall back to their defaults with a warning.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("config: could not load env file: %v", err)
	}

	cfg := Config{
		ReportTitle: defaultReportTitle,
		SessionTTL:  defaultSessionTTL,
		StaticDir:   defaultStaticDir,
	}

	if v := os.Getenv("PAPERRATE_REPORT_TITLE"); v != "" {
		cfg.ReportTitle = v
	}
	if v := os.Getenv("PAPERRATE_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("PAPERRATE_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl < 0 {
			log.Printf("config: invalid PAPERRATE_SESSION_TTL %q, using %s", v, defaultSessionTTL)
		} else {
			cfg.SessionTTL = ttl
		}
	}

	return cfg
}
