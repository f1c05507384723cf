package navigation

import (
	"strings"

	"cleanpro-web/internal/domain"
)

// MainLinks are the primary navigation entries in display order.
var MainLinks = []domain.NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/services", Label: "Services"},
	{Href: "/contact", Label: "Contact"},
}

// Links returns a copy of links with the entry matching currentPath marked active.
func Links(links []domain.NavLink, currentPath string) []domain.NavLink {
	path := normalize(currentPath)
	out := make([]domain.NavLink, len(links))
	for i, l := range links {
		l.Active = normalize(l.Href) == path
		out[i] = l
	}
	return out
}

func normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}
