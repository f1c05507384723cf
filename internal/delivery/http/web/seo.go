package web

import (
	"encoding/xml"
	"net/http"
	"strconv"

	"cleanpro-web/internal/domain"
	"cleanpro-web/pkg/logger"

	"github.com/gin-gonic/gin"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// MarshalSitemap encodes entries as a sitemaps.org urlset document.
func MarshalSitemap(entries []domain.SitemapURL) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        e.Loc,
			LastMod:    e.LastMod.UTC().Format("2006-01-02T15:04:05.000Z"),
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func (h *Handler) Sitemap(c *gin.Context) {
	body, err := MarshalSitemap(h.deps.SEOUC.Sitemap(c.Request.Context(), h.deps.Now()))
	if err != nil {
		logger.Log.Error("Failed to encode sitemap", "error", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *Handler) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.deps.SEOUC.Robots(c.Request.Context()))
}
