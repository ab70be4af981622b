package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Storage     StorageConfig     `yaml:"storage"`
	SES         SESConfig         `yaml:"ses"`
	Auth        AuthConfig        `yaml:"auth"`
	Syndication SyndicationConfig `yaml:"syndication"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig holds DynamoDB settings for the document store
type DatabaseConfig struct {
	TableName string `yaml:"table_name"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	// Endpoint overrides the service endpoint, used for DynamoDB Local.
	Endpoint string `yaml:"endpoint"`
}

// StorageConfig holds S3 settings for uploaded files
type StorageConfig struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	// PublicBaseURL is the URL prefix stored documents are served from.
	// Defaults to the standard virtual-hosted S3 URL for the bucket.
	PublicBaseURL string `yaml:"public_base_url"`
}

// SESConfig holds AWS SES email settings
type SESConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Region         string `yaml:"region"`
	AccessKey      string `yaml:"access_key"`
	SecretKey      string `yaml:"secret_key"`
	FromAddress    string `yaml:"from_address"`
	FromName       string `yaml:"from_name"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	LogoPath       string `yaml:"logo_path"`
}

// AuthConfig holds admin login settings
type AuthConfig struct {
	// AdminPassword overrides the password stored in the document
	// store when set. Intended for local development.
	AdminPassword string `yaml:"admin_password"`
}

// SyndicationConfig holds the external news feed settings
type SyndicationConfig struct {
	NewsFeedURL    string `yaml:"news_feed_url"`
	NewsMaxItems   int    `yaml:"news_max_items"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:5173"}
	}
	if cfg.Database.TableName == "" {
		cfg.Database.TableName = "club-site"
	}
	if cfg.Database.Region == "" {
		cfg.Database.Region = "us-east-2"
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = cfg.Database.Region
	}
	if cfg.SES.Region == "" {
		cfg.SES.Region = cfg.Database.Region
	}
	if cfg.SES.TimeoutSeconds == 0 {
		cfg.SES.TimeoutSeconds = 30
	}
	if cfg.Syndication.NewsMaxItems == 0 {
		cfg.Syndication.NewsMaxItems = 10
	}
	if cfg.Syndication.TimeoutSeconds == 0 {
		cfg.Syndication.TimeoutSeconds = 15
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It loads a .env file (if present) before reading env vars, so secrets
// can live in .env locally and in real env vars in production.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if table := os.Getenv("DYNAMO_TABLE"); table != "" {
		cfg.Database.TableName = table
	}
	if region := os.Getenv("AWS_DYNAMO_REGION"); region != "" {
		cfg.Database.Region = region
	}
	if accessKey := os.Getenv("AWS_DYNAMO_ACCESS_KEY"); accessKey != "" {
		cfg.Database.AccessKey = accessKey
	}
	if secretKey := os.Getenv("AWS_DYNAMO_SECRET_KEY"); secretKey != "" {
		cfg.Database.SecretKey = secretKey
	}
	if endpoint := os.Getenv("DYNAMO_ENDPOINT"); endpoint != "" {
		cfg.Database.Endpoint = endpoint
	}
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		cfg.Storage.Bucket = bucket
	}
	if region := os.Getenv("AWS_S3_REGION"); region != "" {
		cfg.Storage.Region = region
	}
	if accessKey := os.Getenv("AWS_S3_ACCESS_KEY"); accessKey != "" {
		cfg.Storage.AccessKey = accessKey
	}
	if secretKey := os.Getenv("AWS_S3_SECRET_KEY"); secretKey != "" {
		cfg.Storage.SecretKey = secretKey
	}
	if accessKey := os.Getenv("AWS_SES_ACCESS_KEY"); accessKey != "" {
		cfg.SES.AccessKey = accessKey
	}
	if secretKey := os.Getenv("AWS_SES_SECRET_KEY"); secretKey != "" {
		cfg.SES.SecretKey = secretKey
	}
	if region := os.Getenv("AWS_SES_REGION"); region != "" {
		cfg.SES.Region = region
	}
	if from := os.Getenv("SES_FROM_ADDRESS"); from != "" {
		cfg.SES.FromAddress = from
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		cfg.Auth.AdminPassword = password
	}
	if feedURL := os.Getenv("NEWS_FEED_URL"); feedURL != "" {
		cfg.Syndication.NewsFeedURL = feedURL
	}

	// Email sending stays off unless SES credentials are actually present.
	if cfg.SES.AccessKey == "" || cfg.SES.SecretKey == "" {
		cfg.SES.Enabled = false
	}

	return cfg, nil
}
