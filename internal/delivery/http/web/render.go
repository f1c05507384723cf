package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"cleanpro-web/internal/domain"
	"cleanpro-web/internal/ui/icon"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages rendered from templates/<name>.html inside the shared layout.
const (
	pageHome     = "home"
	pageServices = "services"
	pageContact  = "contact"
	pagePrivacy  = "privacy"
	pageTerms    = "terms"
	pageNotFound = "not_found"
)

var pageNames = []string{pageHome, pageServices, pageContact, pagePrivacy, pageTerms, pageNotFound}

var templateFuncs = template.FuncMap{
	"icon": func(name domain.IconName, class string) template.HTML {
		return icon.Render(name, class)
	},
	"pricing": func(p domain.PricingModel) string {
		return p.Label()
	},
	"stars": func(rating int) []bool {
		out := make([]bool, 5)
		for i := range out {
			out[i] = i < rating
		}
		return out
	},
	"firstWord": func(s string) string {
		if i := strings.IndexByte(s, ' '); i > 0 {
			return s[:i]
		}
		return s
	},
	"add": func(a, b int) int { return a + b },
	"quoteFor": func(service string) string {
		return "/contact?service=" + template.URLQueryEscaper(service)
	},
}

// renderer holds one template set per page, each layered on the shared layout.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	base, err := template.New("layout").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		t, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *renderer) html(c *gin.Context, code int, page string, data any) {
	c.Render(code, render.HTML{Template: r.pages[page], Name: "layout", Data: data})
}

// staticFiles is the embedded asset tree served under /static.
func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
