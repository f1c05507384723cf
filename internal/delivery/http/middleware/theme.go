package middleware

import (
	"cleanpro-web/internal/ui/theme"

	"github.com/gin-gonic/gin"
)

// Theme resolves the visitor's colour scheme once per request and stores it in
// the request context for templates.
func Theme() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(theme.CookieName)
		pref := theme.Resolve(cookie, c.GetHeader(theme.HintHeader))

		c.Request = c.Request.WithContext(theme.WithContext(c.Request.Context(), pref))
		c.Header("Accept-CH", theme.HintHeader)
		c.Writer.Header().Add("Vary", theme.HintHeader)
		c.Next()
	}
}
