package domain

import (
	"context"
	"time"
)

// Site holds the business details rendered across pages and structured data.
type Site struct {
	Name            string
	Description     string
	URL             string
	OGImage         string
	Email           string
	Phone           string
	Address         string
	Locality        string
	CountryCode     string
	Latitude        float64
	Longitude       float64
	WhatsAppNumber  string
	FacebookURL     string
	InstagramURL    string
	WhatsAppURL     string
	GoogleMapsEmbed string
	Hours           BusinessHours
}

// BusinessHours are display strings, not parsed schedules.
type BusinessHours struct {
	Weekdays string
	Saturday string
	Sunday   string
}

// NavLink is a navigation entry; Active is derived from the current route.
type NavLink struct {
	Href   string `json:"href"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Testimonial is a customer review shown on the home page.
type Testimonial struct {
	ID      int
	Name    string
	Role    string
	Content string
	Rating  int
}

// SitemapURL is one <url> entry of sitemap.xml.
type SitemapURL struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// SEOUsecase produces crawler-facing documents.
type SEOUsecase interface {
	Sitemap(ctx context.Context, now time.Time) []SitemapURL
	Robots(ctx context.Context) string
	// Structured data documents, each ready to be JSON encoded into a ld+json script.
	LocalBusinessSchema() map[string]any
	WebsiteSchema() map[string]any
	ServiceSchemas() []map[string]any
}
