package model

import "time"

type Config struct {
	Port            string `validate:"required"`
	// TrustedProxies are the CIDRs whose X-Forwarded-For is believed when
	// resolving the client IP. Empty means the peer address is the client.
	TrustedProxies  []string
	// TrustedPlatform names a header carrying the client IP set by the
	// hosting edge (gin.PlatformCloudflare, gin.PlatformGoogleAppEngine).
	TrustedPlatform string
	ServiceName     string

	Email     EmailConfig
	Recaptcha RecaptchaConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

const (
	RecaptchaSiteVerify = "siteverify"
	RecaptchaEnterprise = "enterprise"
)

type RecaptchaConfig struct {
	Provider        string        `validate:"oneof=siteverify enterprise"`
	SecretKey       string        `validate:"required_if=Provider siteverify"`
	ProjectID       string        `validate:"required_if=Provider enterprise"`
	SiteKey         string        `validate:"required_if=Provider enterprise"`
	CredentialsFile string        `validate:"omitempty,file"`
	VerifyURL       string        `validate:"omitempty,url"`
	MinScore        float32       `validate:"gte=0,lte=1"`
	Actions         []string      `validate:"dive,required"`
	Timeout         time.Duration `validate:"gte=0"`
}

type RateLimitConfig struct {
	Max    int           `validate:"gt=0"`
	Window time.Duration `validate:"gt=0"`
	// Sweep is a cron expression for pruning expired in-memory windows.
	Sweep string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowAll       bool
}
