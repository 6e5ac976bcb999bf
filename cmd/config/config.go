package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/muhammadheryan/fw-development/constant"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Mail        MailConfig
	Order       OrderConfig
	Payment     PaymentConfig
	Invoice     InvoiceConfig
	Storage     StorageConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port            string
	PublicURL       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret         string
	JWTExpiration     time.Duration
	SessionExpTime    time.Duration
	AdminUsername     string
	AdminName         string
	AdminPasswordHash string
}

type MailConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	FromName      string
	BusinessEmail string
}

type OrderConfig struct {
	IDPrefix      string
	OrderTTL      time.Duration
	StrictCatalog bool
	CatalogPath   string
}

type PaymentConfig struct {
	MaxProofSize  int64
	UploadDir     string
	Method        string
	AccountNumber string
	AccountName   string
}

type InvoiceConfig struct {
	IssuerName    string
	IssuerTagline string
	ContactEmail  string
	ContactPhone  string
	Timezone      string
}

type StorageConfig struct {
	ProofBucket string
	AWSRegion   string
}

type InternalConfig struct {
	APIKey string
	APIURL string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getenv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:            getenv("SERVER_PORT", "8080"),
			PublicURL:       strings.TrimRight(getenv("PUBLIC_URL", ""), "/"),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getBool("RABBITMQ_ENABLED", false),
			Host:     getenv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getenv("RABBITMQ_USER", "guest"),
			Password: getenv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:         getenv("JWT_SECRET", "change-me"),
			JWTExpiration:     getDuration("JWT_EXPIRATION", 12*time.Hour),
			SessionExpTime:    getDuration("SESSION_EXP_TIME", 12*time.Hour),
			AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
			AdminName:         getenv("ADMIN_NAME", "FW Development"),
			AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),
		},
		Mail: MailConfig{
			Host:          getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:          getInt("SMTP_PORT", 587),
			Username:      getenv("GMAIL_USER", ""),
			Password:      getenv("GMAIL_APP_PASSWORD", ""),
			FromName:      getenv("MAIL_FROM_NAME", "FW Development"),
			BusinessEmail: getenv("BUSINESS_EMAIL", "fadjri.w@gmail.com"),
		},
		Order: OrderConfig{
			IDPrefix:      getenv("ORDER_ID_PREFIX", constant.DefaultOrderIDPrefix),
			OrderTTL:      getDuration("ORDER_TTL", constant.DefaultOrderTTL),
			StrictCatalog: getBool("ORDER_STRICT_CATALOG", false),
			CatalogPath:   getenv("CATALOG_PATH", ""),
		},
		Payment: PaymentConfig{
			MaxProofSize:  int64(getInt("PAYMENT_MAX_PROOF_SIZE", int(constant.MaxPaymentProofSize))),
			UploadDir:     getenv("PAYMENT_UPLOAD_DIR", filepath.Join(os.TempDir(), "payment-proofs")),
			Method:        getenv("PAYMENT_METHOD", "OVO Transfer"),
			AccountNumber: getenv("PAYMENT_ACCOUNT_NUMBER", "085391000900"),
			AccountName:   getenv("PAYMENT_ACCOUNT_NAME", "Fadjri Wivindi"),
		},
		Invoice: InvoiceConfig{
			IssuerName:    getenv("INVOICE_ISSUER_NAME", "FW Development"),
			IssuerTagline: getenv("INVOICE_ISSUER_TAGLINE", "Professional Development Services with Quality Results"),
			ContactEmail:  getenv("INVOICE_CONTACT_EMAIL", "fadjri.w@gmail.com"),
			ContactPhone:  getenv("INVOICE_CONTACT_PHONE", "+62 853-91000-900"),
			Timezone:      getenv("INVOICE_TIMEZONE", "Asia/Makassar"),
		},
		Storage: StorageConfig{
			ProofBucket: getenv("PAYMENT_PROOF_BUCKET", ""),
			AWSRegion:   getenv("AWS_REGION", "ap-southeast-3"),
		},
		Internal: InternalConfig{
			APIKey: getenv("INTERNAL_API_KEY", ""),
			APIURL: strings.TrimRight(getenv("INTERNAL_API_URL", "http://localhost:8080"), "/"),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getDuration accepts Go duration strings ("30s") or plain seconds.
func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return def
}

// Location resolves the invoice timezone, falling back to WITA (UTC+8) when tzdata is missing.
func (c InvoiceConfig) Location() *time.Location {
	if c.Timezone != "" {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone("WITA", 8*60*60)
}
