// Package theme resolves the light/dark preference of a visitor. The
// preference is read once per request, carried in the request context and
// only changed through an explicit toggle.
package theme

import (
	"context"
	"strings"
)

type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// CookieName stores the visitor's explicit choice.
const CookieName = "theme"

// HintHeader is the client hint browsers send for the OS color scheme.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// Parse accepts light, dark or system (case-insensitive).
func Parse(s string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark, System:
		return t, true
	}
	return "", false
}

// Preference pairs the visitor's choice with the system default.
type Preference struct {
	Chosen Theme
	System Theme
}

// Resolve builds a Preference from the stored cookie value and the client hint.
// Missing or unknown values fall back to following the system, which itself
// defaults to light.
func Resolve(cookieValue, systemHint string) Preference {
	p := Preference{Chosen: System, System: Light}
	if t, ok := Parse(cookieValue); ok {
		p.Chosen = t
	}
	if t, ok := Parse(systemHint); ok && t != System {
		p.System = t
	}
	return p
}

// Resolved is the theme actually applied.
func (p Preference) Resolved() Theme {
	if p.Chosen == Light || p.Chosen == Dark {
		return p.Chosen
	}
	if p.System == Dark {
		return Dark
	}
	return Light
}

// Toggle returns the preference after the user flips the switch.
func (p Preference) Toggle() Preference {
	next := Dark
	if p.Resolved() == Dark {
		next = Light
	}
	return Preference{Chosen: next, System: p.System}
}

// ToggleLabel is the accessible label of the toggle button.
func (p Preference) ToggleLabel() string {
	if p.Resolved() == Dark {
		return "Switch to light theme"
	}
	return "Switch to dark theme"
}

type ctxKey struct{}

// WithContext stores p in ctx.
func WithContext(ctx context.Context, p Preference) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the preference stored in ctx, or the default.
func FromContext(ctx context.Context) Preference {
	if p, ok := ctx.Value(ctxKey{}).(Preference); ok {
		return p
	}
	return Resolve("", "")
}
