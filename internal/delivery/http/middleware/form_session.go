package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// FormSessionCookieName identifies a visitor's contact form instance.
	FormSessionCookieName = "cp_form"
	formSessionKey        = "form_id"
)

// FormSession ensures every visitor carries a form id cookie. The id only selects a
// form instance; it grants nothing.
func FormSession(ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(FormSessionCookieName)
		if _, parseErr := uuid.Parse(id); err != nil || parseErr != nil {
			id = uuid.NewString()
		}
		// Refresh on every visit so the cookie outlives an active form.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(FormSessionCookieName, id, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(formSessionKey, id)
		c.Next()
	}
}

// FormID returns the id FormSession attached to the request.
func FormID(c *gin.Context) string {
	return c.GetString(formSessionKey)
}
