// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerAddr  string `yaml:"server_addr"`
	DatabaseDSN string `yaml:"database_dsn"`

	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	JWTAudience   string `yaml:"jwt_audience"`
	JWTExpireDays int    `yaml:"jwt_expire_days"`

	SMTPHost  string `yaml:"smtp_host"`
	SMTPPort  int    `yaml:"smtp_port"`
	EmailFrom string `yaml:"email_from"`

	UploadDir string `yaml:"upload_dir"`
	SeedDemo  bool   `yaml:"seed_demo"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	// Override with env vars
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.JWTIssuer = v
	}
	if v := os.Getenv("JWT_AUDIENCE"); v != "" {
		cfg.JWTAudience = v
	}
	if v := os.Getenv("JWT_EXPIRE_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid JWT_EXPIRE_DAYS: %v", err)
		}
		cfg.JWTExpireDays = days
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid SMTP_PORT: %v", err)
		}
		cfg.SMTPPort = port
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		cfg.EmailFrom = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("SEED_DEMO"); v != "" {
		cfg.SeedDemo = v == "true" || v == "1"
	}

	// Set default values if not set
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "jobboard"
	}
	if cfg.JWTAudience == "" {
		cfg.JWTAudience = "jobboard"
	}
	if cfg.JWTExpireDays == 0 {
		cfg.JWTExpireDays = 7
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "localhost"
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 25
	}
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = "noreply@jobboard.local"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	// Validate required fields
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}
