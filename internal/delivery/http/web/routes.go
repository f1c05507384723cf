package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware groups applied by RegisterRoutes.
type Middleware struct {
	// Site runs on every page (CSRF, theme).
	Site []gin.HandlerFunc
	// Form runs on the contact form routes (form session).
	Form []gin.HandlerFunc
	// Submit runs only on contact submissions (rate limit).
	Submit []gin.HandlerFunc
}

// RegisterRoutes mounts the site pages, static assets and crawler documents.
func (h *Handler) RegisterRoutes(r gin.IRouter, mw Middleware) {
	r.StaticFS("/static", http.FS(staticFiles()))
	r.GET("/images/*file", h.Image)
	r.GET("/sitemap.xml", h.Sitemap)
	r.GET("/robots.txt", h.Robots)

	pages := r.Group("", mw.Site...)
	{
		pages.GET("/", h.Home)
		pages.GET("/services", h.Services)
		pages.GET("/privacy", h.Privacy)
		pages.GET("/terms", h.Terms)
		pages.POST("/theme", h.ToggleTheme)
	}

	form := pages.Group("/contact", mw.Form...)
	{
		form.GET("", h.Contact)
		form.POST("", append(mw.Submit, h.SubmitContact)...)
		form.POST("/reset", h.ResetContact)
	}
}
