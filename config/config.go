package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // SITE_TIMEZONE must resolve on minimal images

	"cleanpro-web/internal/domain"
	"cleanpro-web/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// SiteURL is the canonical origin, without trailing slash.
	SiteURL  string
	Location *time.Location
	// EmailJS routing. Any empty identifier switches the contact form to simulated delivery.
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string
	EmailJSAPIURL     string
	// Contact form
	ContactSimulatedDelay time.Duration
	ContactFormTTL        time.Duration
	StaticDir             string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
	LogLevel                  string
}

func LoadConfig() (*Config, error) {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	tzName := getEnv("SITE_TIMEZONE", "Africa/Nairobi")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("config: SITE_TIMEZONE %q: %w", tzName, err)
	}

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		// Trailing slash would produce double slashes in sitemap entries
		SiteURL:  strings.TrimRight(getEnv("SITE_URL", "https://avatarcleanpro.com"), "/"),
		Location: loc,
		// EmailJS
		EmailJSServiceID:  getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID: getEnv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey:  getEnv("EMAILJS_PUBLIC_KEY", ""),
		EmailJSPrivateKey: getEnv("EMAILJS_PRIVATE_KEY", ""),
		EmailJSAPIURL:     getEnv("EMAILJS_API_URL", "https://api.emailjs.com/api/v1.0/email/send"),
		// Contact form
		ContactSimulatedDelay: getEnvDuration("CONTACT_SIMULATED_DELAY_MS", 1500*time.Millisecond, time.Millisecond),
		ContactFormTTL:        getEnvDuration("CONTACT_FORM_TTL_MINUTES", 30*time.Minute, time.Minute),
		StaticDir:             getEnv("STATIC_DIR", "./public"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// Warn logs configuration that degrades behaviour without being fatal.
func (c *Config) Warn() {
	if !c.EmailJSConfigured() {
		logger.Log.Warn("EmailJS is not fully configured, contact submissions are simulated")
	}
	if c.UpstashRedisURL == "" {
		logger.Log.Warn("UPSTASH_REDIS_URL not configured, rate limiting uses in-memory fallback")
	}
}

// EmailJSConfigured reports whether all three routing identifiers are present.
func (c *Config) EmailJSConfigured() bool {
	return c.EmailJSServiceID != "" && c.EmailJSTemplateID != "" && c.EmailJSPublicKey != ""
}

// RateLimitWindow is RateLimitWindowSeconds as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// whatsAppGreeting pre-fills the chat opened from the contact page.
const whatsAppGreeting = `Hello Avatar CleanPro! 👋

I'm interested in your cleaning services. I would like to inquire about:

• Service type: [Please specify]
• Location: [Your location]
• Preferred date: [Your preferred date]

Looking forward to hearing from you!`

// Site returns the business information rendered in chrome, contact page and structured data.
func (c *Config) Site() domain.Site {
	const whatsAppNumber = "0115671073"
	return domain.Site{
		Name:            "Avatar CleanPro",
		Description:     "Professional cleaning services for homes and businesses",
		URL:             c.SiteURL,
		OGImage:         c.SiteURL + "/images/og-image.jpg",
		Email:           "contact@avatarcleanpro.com",
		Phone:           "0115671073",
		Address:         "Nairobi, Kenya",
		Locality:        "Nairobi",
		CountryCode:     "KE",
		Latitude:        -1.286389,
		Longitude:       36.817223,
		WhatsAppNumber:  whatsAppNumber,
		FacebookURL:     "https://facebook.com/avatarcleanpro",
		InstagramURL:    "https://instagram.com/avatarcleanpro",
		WhatsAppURL:     WhatsAppLink(whatsAppNumber, whatsAppGreeting),
		GoogleMapsEmbed: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d255282.32390054924!2d36.68258395533563!3d-1.303203560219592!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x182f1172d84d49a7%3A0xf7cf0254b297924c!2sNairobi!5e0!3m2!1sen!2ske!4v1769052487793!5m2!1sen!2ske",
		Hours: domain.BusinessHours{
			Weekdays: "8:00 AM - 6:00 PM",
			Saturday: "9:00 AM - 4:00 PM",
			Sunday:   "Closed",
		},
	}
}

// WhatsAppLink builds a wa.me chat link; non-digits are stripped from number.
func WhatsAppLink(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration reads an integer count of unit; negative or invalid values yield fallback.
func getEnvDuration(key string, fallback, unit time.Duration) time.Duration {
	n := getEnvInt(key, -1)
	if n < 0 {
		return fallback
	}
	return time.Duration(n) * unit
}
