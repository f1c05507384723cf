// Package icon maps the fixed set of icon names used by the catalog and the
// site chrome onto symbols of the static SVG sprite.
package icon

import (
	"fmt"
	"html/template"
	"sort"

	"cleanpro-web/internal/domain"
)

// SpritePath is where the sprite sheet is served from.
const SpritePath = "/static/icons.svg"

var symbols = map[domain.IconName]string{
	// catalog
	"Armchair":      "armchair",
	"Award":         "award",
	"Baby":          "baby",
	"Bath":          "bath",
	"Bed":           "bed",
	"BookOpen":      "book-open",
	"Briefcase":     "briefcase",
	"Bug":           "bug",
	"Building":      "building",
	"Building2":     "building-2",
	"Calendar":      "calendar",
	"CalendarCheck": "calendar-check",
	"Clock":         "clock",
	"Droplets":      "droplets",
	"FolderOpen":    "folder-open",
	"Frame":         "frame",
	"GraduationCap": "graduation-cap",
	"Hammer":        "hammer",
	"Home":          "home",
	"Layers":        "layers",
	"LayoutGrid":    "layout-grid",
	"Shield":        "shield",
	"Shirt":         "shirt",
	"Sofa":          "sofa",
	"Sparkles":      "sparkles",
	"Square":        "square",
	"Star":          "star",
	"UserCheck":     "user-check",
	"Wind":          "wind",

	// chrome
	"AlertCircle":   "alert-circle",
	"ArrowRight":    "arrow-right",
	"CheckCircle2":  "check-circle-2",
	"Facebook":      "facebook",
	"ChevronLeft":   "chevron-left",
	"ChevronRight":  "chevron-right",
	"Instagram":     "instagram",
	"Leaf":          "leaf",
	"Mail":          "mail",
	"MapPin":        "map-pin",
	"Menu":          "menu",
	"MessageCircle": "message-circle",
	"Moon":          "moon",
	"Phone":         "phone",
	"Quote":         "quote",
	"Send":          "send",
	"Sun":           "sun",
	"ThumbsUp":      "thumbs-up",
	"Users":         "users",
	"Wallet":        "wallet",
	"X":             "x",
}

// Valid reports whether name belongs to the icon set.
func Valid(name domain.IconName) bool {
	_, ok := symbols[name]
	return ok
}

// Symbol returns the sprite symbol id for name.
func Symbol(name domain.IconName) (string, error) {
	id, ok := symbols[name]
	if !ok {
		return "", fmt.Errorf("unknown icon %q", name)
	}
	return id, nil
}

// Render returns the inline <svg> referencing the sprite symbol. Unknown names
// render nothing; the catalog rejects them at load time.
func Render(name domain.IconName, class string) template.HTML {
	id, ok := symbols[name]
	if !ok {
		return ""
	}
	cls := "icon"
	if class != "" {
		cls += " " + class
	}
	return template.HTML(fmt.Sprintf(
		`<svg class="%s" aria-hidden="true" focusable="false"><use href="%s#%s"></use></svg>`,
		template.HTMLEscapeString(cls), SpritePath, id,
	))
}

// Names lists every known icon, sorted.
func Names() []domain.IconName {
	names := make([]domain.IconName, 0, len(symbols))
	for n := range symbols {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
