package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
	Storage  StorageConfig  `yaml:"storage"`
	Upload   UploadConfig   `yaml:"upload"`
	Email    EmailConfig    `yaml:"email"`
}

type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST"`
	Port int    `yaml:"port" env:"PORT"`
	Env  string `yaml:"env" env:"SERVER_ENV"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER"` // postgres or sqlite
	DSN    string `yaml:"url" env:"DATABASE_URL"`
}

type AuthConfig struct {
	SecretKey     string `yaml:"secret_key" env:"SECRET_KEY"`
	SessionMaxAge int    `yaml:"session_max_age" env:"SESSION_MAX_AGE"` // seconds
	AdminUsername string `yaml:"admin_username" env:"ADMIN_USERNAME"`
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD"`
	SecureCookie  bool   `yaml:"secure_cookie" env:"SECURE_COOKIE"`
}

type CORSConfig struct {
	FrontendURL  string `yaml:"frontend_url" env:"FRONTEND_URL"`
	DeployURL    string `yaml:"deploy_url" env:"DEPLOY_URL"`
	CustomDomain string `yaml:"custom_domain" env:"CUSTOM_DOMAIN"`
}

// Origins lists the configured, non-empty allowed origins.
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range []string{c.FrontendURL, c.DeployURL, c.CustomDomain} {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

type StorageConfig struct {
	BasePath  string `yaml:"base_path" env:"UPLOAD_DIR"`
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Region    string `yaml:"region" env:"S3_REGION"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
}

// UseRemote reports whether every setting the remote backend needs is present.
func (s StorageConfig) UseRemote() bool {
	return s.Endpoint != "" && s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

type UploadConfig struct {
	MaxSize        int64    `yaml:"max_size" env:"MAX_FILE_SIZE"`
	AllowedTypes   []string `yaml:"allowed_types" env:"ALLOWED_TYPES" envSeparator:","`
	OptimizeImages bool     `yaml:"optimize_images" env:"OPTIMIZE_IMAGES"`
	MaxWidth       int      `yaml:"max_width" env:"IMAGE_MAX_WIDTH"`
	ImageQuality   int      `yaml:"image_quality" env:"IMAGE_QUALITY"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT"`
	SMTPUsername string `yaml:"smtp_user" env:"SMTP_USER"`
	SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
	FromEmail    string `yaml:"from_email" env:"SMTP_FROM"`
	NotifyEmail  string `yaml:"notify_email" env:"CONTACT_NOTIFY_EMAIL"`
}

// Enabled reports whether contact notifications can be sent.
func (e EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.NotifyEmail != ""
}

// Default returns the settings used when neither the file nor the
// environment says otherwise.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000, Env: "development"},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "sitecms.db",
		},
		Auth: AuthConfig{
			SessionMaxAge: 86400,
			AdminUsername: "admin",
		},
		CORS:    CORSConfig{FrontendURL: "http://localhost:3000"},
		Storage: StorageConfig{BasePath: "static", Region: "auto"},
		Upload: UploadConfig{
			MaxSize:      10 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
			MaxWidth:     1920,
			ImageQuality: 85,
		},
		Email: EmailConfig{SMTPPort: 587},
	}
}

// LoadConfig reads the YAML file named by CONFIG_PATH (or config/config.yaml
// when it exists) and then applies environment overrides.
func LoadConfig() (*Config, error) {
	cfg := Default()

	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit {
		path = defaultConfigPath
	}
	if err := loadFile(cfg, path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}
	if c.Upload.MaxSize <= 0 {
		return errors.New("upload.max_size must be positive")
	}
	if len(c.Upload.AllowedTypes) == 0 {
		return errors.New("upload.allowed_types must not be empty")
	}
	if c.Upload.ImageQuality < 1 || c.Upload.ImageQuality > 100 {
		return errors.New("upload.image_quality must be between 1 and 100")
	}
	if c.Server.Env != "development" && c.Auth.SecretKey == "" {
		return errors.New("auth.secret_key is required outside development")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
