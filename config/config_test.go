package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.test/")
	t.Setenv("EMAILJS_SERVICE_ID", "")
	t.Setenv("CONTACT_SIMULATED_DELAY_MS", "250")
	t.Setenv("CONTACT_FORM_TTL_MINUTES", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.test", cfg.SiteURL)
	assert.Equal(t, 250*time.Millisecond, cfg.ContactSimulatedDelay)
	assert.Equal(t, 30*time.Minute, cfg.ContactFormTTL)
	assert.Equal(t, "Africa/Nairobi", cfg.Location.String())
	assert.False(t, cfg.EmailJSConfigured())
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
}

func TestLoadConfigRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("SITE_TIMEZONE", "Mars/Olympus")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "SITE_TIMEZONE")
}

func TestEmailJSConfiguredNeedsAllThreeIDs(t *testing.T) {
	cfg := &Config{EmailJSServiceID: "svc", EmailJSTemplateID: "tpl"}
	assert.False(t, cfg.EmailJSConfigured())

	cfg.EmailJSPublicKey = "pk"
	assert.True(t, cfg.EmailJSConfigured())
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("0115 671-073", "Hi there & welcome")
	assert.Equal(t, "https://wa.me/0115671073?text=Hi%20there%20%26%20welcome", link)
}

func TestSiteUsesConfiguredURL(t *testing.T) {
	cfg := &Config{SiteURL: "https://example.test"}
	site := cfg.Site()

	assert.Equal(t, "Avatar CleanPro", site.Name)
	assert.Equal(t, "https://example.test/images/og-image.jpg", site.OGImage)
	assert.True(t, strings.HasPrefix(site.WhatsAppURL, "https://wa.me/0115671073?text=Hello%20Avatar%20CleanPro"))
	assert.Equal(t, "Closed", site.Hours.Sunday)
}
