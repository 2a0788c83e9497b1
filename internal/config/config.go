package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

// SMTPConfig carries settings for the SMTP mailer.
// TLSMode: "" (plain), "starttls" or "tls".
type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string
	SkipVerifyTLS bool
}

// MailtrapConfig carries settings for the Mailtrap HTTP sender.
type MailtrapConfig struct {
	APIURL string
	APIKey string
}

// ContactConfig holds the addresses used by the contact notification fan-out.
type ContactConfig struct {
	FromAddr  string // sender address for outbound mail
	FromName  string
	OwnerAddr string // where new-message notifications go
	OwnerName string
}

type SessionConfig struct {
	CookieName string
	Secret     []byte
	Secure     bool
	TTL        time.Duration
}

type UploadConfig struct {
	MaxBytes int64
}

type Config struct {
	Addr     string
	DBDSN    string
	SMTP     SMTPConfig
	Mailtrap MailtrapConfig
	Contact  ContactConfig
	Session  SessionConfig
	Upload   UploadConfig
}

// Load reads configuration from the environment. DB_DSN and SESSION_SECRET
// are required; everything else has a development default.
func Load() (Config, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return Config{}, fmt.Errorf("config: DB_DSN is required")
	}
	if _, err := mysql.ParseDSN(dsn); err != nil {
		return Config{}, fmt.Errorf("config: invalid DB_DSN: %w", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("config: SESSION_SECRET is required")
	}

	cfg := Config{
		Addr:  ":" + envOr("PORT", "8080"),
		DBDSN: dsn,
		SMTP: SMTPConfig{
			Host:          envOr("SMTP_HOST", "localhost"),
			Port:          envOr("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS"),
		},
		Mailtrap: MailtrapConfig{
			APIURL: os.Getenv("MAILTRAP_API_URL"),
			APIKey: os.Getenv("MAILTRAP_API_TOKEN"),
		},
		Contact: ContactConfig{
			FromAddr:  envOr("EMAIL_FROM", "no-reply@localhost"),
			FromName:  envOr("EMAIL_FROM_NAME", "Portfolio"),
			OwnerAddr: os.Getenv("CONTACT_OWNER_EMAIL"),
			OwnerName: os.Getenv("CONTACT_OWNER_NAME"),
		},
		Session: SessionConfig{
			CookieName: envOr("SESSION_COOKIE_NAME", "portfolio_session"),
			Secret:     []byte(secret),
			Secure:     envBool("SESSION_COOKIE_SECURE"),
			TTL:        envDuration("SESSION_TTL", 24*time.Hour),
		},
		Upload: UploadConfig{
			MaxBytes: envInt64("UPLOAD_MAX_BYTES", 5<<20),
		},
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string) bool {
	v, _ := strconv.ParseBool(os.Getenv(k))
	return v
}

func envInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
