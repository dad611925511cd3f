package connection

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"randevuapi/model"
	"randevuapi/services/recaptcha"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*model.Config, error) {
	// .env is a local convenience; hosted deployments set RENDER
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	cfg := &model.Config{
		Port:           getenvDefault("PORT", "3000"),
		TrustedProxies:  trustedProxies(),
		TrustedPlatform: os.Getenv("TRUSTED_PLATFORM"),
		ServiceName:     getenvDefault("SERVICE_NAME", "Dr. Çağrı Yapar Randevu API"),
		Email: model.EmailConfig{
			Host:      getenvDefault("SMTP_HOST", "smtp.yandex.ru"),
			Port:      getenvDefault("SMTP_PORT", "465"),
			Username:  os.Getenv("EMAIL_USER"),
			Password:  os.Getenv("EMAIL_PASSWORD"),
			Secure:    getenvBoolDefault("SMTP_SECURE", true),
			Timeout:   getenvDurationDefault("SMTP_TIMEOUT", 15*time.Second),
			FromName:  getenvDefault("MAIL_FROM_NAME", "Dr. Çağrı Yapar Randevu"),
			Recipient: os.Getenv("RECIPIENT_EMAIL"),
			Title:     getenvDefault("MAIL_TITLE", "Op. Dr. Çağrı Yapar"),
			Site:      getenvDefault("SITE_NAME", "drcagriyapar.com"),
		},
		Recaptcha: model.RecaptchaConfig{
			Provider:        strings.ToLower(getenvDefault("RECAPTCHA_PROVIDER", model.RecaptchaSiteVerify)),
			SecretKey:       os.Getenv("RECAPTCHA_SECRET_KEY"),
			ProjectID:       os.Getenv("RECAPTCHA_PROJECT_ID"),
			SiteKey:         os.Getenv("RECAPTCHA_SITE_KEY"),
			CredentialsFile: os.Getenv("RECAPTCHA_CREDENTIALS_FILE"),
			VerifyURL:       getenvDefault("RECAPTCHA_VERIFY_URL", recaptcha.DefaultVerifyURL),
			MinScore:        float32(getenvFloatDefault("RECAPTCHA_MIN_SCORE", float64(recaptcha.DefaultMinScore))),
			Actions:         getenvListDefault("RECAPTCHA_ACTIONS", recaptcha.DefaultActions),
			Timeout:         getenvDurationDefault("RECAPTCHA_TIMEOUT", 10*time.Second),
		},
		RateLimit: model.RateLimitConfig{
			Max:           getenvIntDefault("RATE_LIMIT_MAX", 10),
			Window:        getenvDurationDefault("RATE_LIMIT_WINDOW", 24*time.Hour),
			Sweep:         getenvDefault("RATE_LIMIT_SWEEP", "@every 10m"),
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getenvIntDefault("REDIS_DB", 0),
			RedisPrefix:   getenvDefault("REDIS_PREFIX", "ratelimit:randevu"),
		},
		CORS: model.CORSConfig{
			AllowedOrigins: getenvList("ALLOWED_ORIGINS"),
			AllowAll:       strings.TrimSpace(os.Getenv("CORS_ORIGIN")) == "*",
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Printf("SMTP Config: Host=%s, Port=%s, Username=%s, Secure=%v", cfg.Email.Host, cfg.Email.Port, cfg.Email.Username, cfg.Email.Secure)
	return cfg, nil
}

// PrivateNetworks are the ranges hosted load balancers forward from.
var PrivateNetworks = []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16", "fc00::/7"}

// trustedProxies reads TRUSTED_PROXIES. On Render, where every request
// arrives through the platform balancer, the private ranges are trusted by
// default so the rightmost public X-Forwarded-For hop is the client.
func trustedProxies() []string {
	if l := getenvList("TRUSTED_PROXIES"); len(l) > 0 {
		return l
	}
	if os.Getenv("RENDER") != "" {
		return PrivateNetworks
	}
	log.Println("Warning: TRUSTED_PROXIES not set, rate limiting keys on the peer address")
	return nil
}

func getenvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	i, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return i
}

func getenvFloatDefault(k string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(k), 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBoolDefault(k string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return b
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil {
		return def
	}
	return d
}

// getenvList splits a comma separated variable, dropping empty items.
func getenvList(k string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(k), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getenvListDefault(k string, def []string) []string {
	if l := getenvList(k); len(l) > 0 {
		return l
	}
	return def
}
