package utils

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	LogFile string `yaml:"LOG_FILE"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// JWT
	JWTSecret        string `yaml:"JWT_SECRET"`
	JWTExpireMinutes int    `yaml:"JWT_EXPIRE_MINUTES"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey         string `yaml:"GEMINI_API_KEY"`
	GeminiModel          string `yaml:"GEMINI_MODEL"`
	GeminiTimeoutSeconds int    `yaml:"GEMINI_TIMEOUT_SECONDS"`
}

var config Config

// LoadConfig reads config.yaml, then lets a .env file or the process
// environment override any key.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Warnf("Error reading YAML file: %s", err)
	} else if err = yaml.Unmarshal(file, &config); err != nil {
		log.Warnf("Error parsing YAML file: %s", err)
	}

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using config.yaml and environment variables")
	}

	overrideFromEnv(&config)
}

func overrideFromEnv(c *Config) {
	str := map[string]*string{
		"APP_PORT":           &c.AppPort,
		"LOG_FILE":           &c.LogFile,
		"DB_DRIVER":          &c.DBDriver,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_PATH":            &c.DBPath,
		"JWT_SECRET":         &c.JWTSecret,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
		"GEMINI_API_KEY":     &c.GeminiAPIKey,
		"GEMINI_MODEL":       &c.GeminiModel,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"JWT_EXPIRE_MINUTES":     &c.JWTExpireMinutes,
		"GEMINI_TIMEOUT_SECONDS": &c.GeminiTimeoutSeconds,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Warnf("ignoring %s=%q: %v", key, v, err)
			continue
		}
		*dst = n
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		if config.AppPort == "" {
			return "8080"
		}
		return config.AppPort
	case "LOG_FILE":
		if config.LogFile == "" {
			return "./logs/app.log"
		}
		return config.LogFile
	case "DB_DRIVER":
		if config.DBDriver == "" {
			return "postgres"
		}
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_PATH":
		if config.DBPath == "" {
			return "balance_eat.db"
		}
		return config.DBPath
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		if config.GeminiModel == "" {
			return "gemini-2.0-flash"
		}
		return config.GeminiModel
	default:
		return ""
	}
}

// GetIntConfig returns numeric settings, falling back to def when unset.
func GetIntConfig(key string, def int) int {
	var v int
	switch key {
	case "JWT_EXPIRE_MINUTES":
		v = config.JWTExpireMinutes
	case "GEMINI_TIMEOUT_SECONDS":
		v = config.GeminiTimeoutSeconds
	}
	if v <= 0 {
		return def
	}
	return v
}
