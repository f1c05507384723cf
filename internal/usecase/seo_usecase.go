package usecase

import (
	"context"
	"strings"
	"time"

	"cleanpro-web/internal/catalog"
	"cleanpro-web/internal/domain"
)

// Change frequencies understood by sitemap consumers.
const (
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
	ChangeYearly  = "yearly"
)

type staticRoute struct {
	path     string
	freq     string
	priority float64
}

var staticRoutes = []staticRoute{
	{"", ChangeWeekly, 1.0},
	{"/services", ChangeWeekly, 0.9},
	{"/contact", ChangeMonthly, 0.8},
	{"/privacy", ChangeYearly, 0.3},
	{"/terms", ChangeYearly, 0.3},
}

// Paths crawlers should skip.
var robotsDisallow = []string{"/api/", "/_next/", "/admin/"}

type seoUsecase struct {
	site    domain.Site
	catalog *catalog.Catalog
}

func NewSEOUsecase(site domain.Site, c *catalog.Catalog) domain.SEOUsecase {
	return &seoUsecase{site: site, catalog: c}
}

// Sitemap lists the static pages followed by one anchor per category, all stamped with now.
func (u *seoUsecase) Sitemap(ctx context.Context, now time.Time) []domain.SitemapURL {
	base := u.site.URL
	urls := make([]domain.SitemapURL, 0, len(staticRoutes)+u.catalog.CategoryCount())
	for _, r := range staticRoutes {
		urls = append(urls, domain.SitemapURL{Loc: base + r.path, LastMod: now, ChangeFreq: r.freq, Priority: r.priority})
	}
	for _, cat := range u.catalog.Categories() {
		urls = append(urls, domain.SitemapURL{
			Loc:        base + "/services#" + cat.Slug,
			LastMod:    now,
			ChangeFreq: ChangeMonthly,
			Priority:   0.7,
		})
	}
	return urls
}

func (u *seoUsecase) Robots(ctx context.Context) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, p := range robotsDisallow {
		b.WriteString("Disallow: " + p + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Host: " + u.site.URL + "\n")
	b.WriteString("Sitemap: " + u.site.URL + "/sitemap.xml\n")
	return b.String()
}

func (u *seoUsecase) organizationRef() map[string]any {
	return map[string]any{"@id": u.site.URL + "#organization"}
}

func nairobi(locality string) map[string]any {
	return map[string]any{"@type": "City", "name": locality}
}

func (u *seoUsecase) LocalBusinessSchema() map[string]any {
	s := u.site
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"@id":         s.URL + "#organization",
		"name":        s.Name,
		"description": s.Description,
		"url":         s.URL,
		"logo":        s.URL + "/images/cleanpro-logo.jpg",
		"image":       s.OGImage,
		"telephone":   s.Phone,
		"email":       s.Email,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": s.Locality,
			"addressCountry":  s.CountryCode,
		},
		"geo": map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  s.Latitude,
			"longitude": s.Longitude,
		},
		"openingHoursSpecification": []map[string]any{
			{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				"opens":     "08:00",
				"closes":    "18:00",
			},
			{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": "Saturday",
				"opens":     "09:00",
				"closes":    "16:00",
			},
		},
		"priceRange": "$$",
		"areaServed": nairobi(s.Locality),
		"sameAs":     []string{s.FacebookURL, s.InstagramURL},
	}
}

func (u *seoUsecase) WebsiteSchema() map[string]any {
	s := u.site
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"@id":         s.URL + "#website",
		"url":         s.URL,
		"name":        s.Name,
		"description": s.Description,
		"publisher":   u.organizationRef(),
		"potentialAction": map[string]any{
			"@type": "SearchAction",
			"target": map[string]any{
				"@type":       "EntryPoint",
				"urlTemplate": s.URL + "/services?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	}
}

// ServiceSchemas returns one Service document per category, each with its offers.
func (u *seoUsecase) ServiceSchemas() []map[string]any {
	cats := u.catalog.Categories()
	out := make([]map[string]any, 0, len(cats))
	for _, cat := range cats {
		offers := make([]map[string]any, 0, len(cat.Services))
		for _, svc := range cat.Services {
			offers = append(offers, map[string]any{
				"@type": "Offer",
				"itemOffered": map[string]any{
					"@type":       "Service",
					"name":        svc.Name,
					"description": svc.Description,
				},
			})
		}
		out = append(out, map[string]any{
			"@context":    "https://schema.org",
			"@type":       "Service",
			"@id":         u.site.URL + "/services#" + cat.Slug,
			"name":        cat.Name,
			"description": cat.Description,
			"provider":    u.organizationRef(),
			"areaServed":  nairobi(u.site.Locality),
			"hasOfferCatalog": map[string]any{
				"@type":           "OfferCatalog",
				"name":            cat.Name + " Services",
				"itemListElement": offers,
			},
		})
	}
	return out
}
