// Package web serves the HTML pages of the site: the shared chrome, home,
// services, contact and legal pages, plus crawler documents and images.
package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cleanpro-web/internal/delivery/http/middleware"
	"cleanpro-web/internal/delivery/http/response"
	"cleanpro-web/internal/domain"
	"cleanpro-web/internal/ui/carousel"
	"cleanpro-web/internal/ui/navigation"
	"cleanpro-web/internal/ui/theme"
	"cleanpro-web/pkg/apperror"
	"cleanpro-web/pkg/validation"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators of the page handlers.
type Deps struct {
	Site      domain.Site
	CatalogUC domain.CatalogUsecase
	ContactUC domain.ContactUsecase
	SEOUC     domain.SEOUsecase
	// StaticDir holds the photos served by /images.
	StaticDir string
	// SecureCookies marks the theme cookie Secure.
	SecureCookies bool
	Now           func() time.Time
}

type Handler struct {
	deps   Deps
	render *renderer
	images *imageHandler
}

func NewHandler(deps Deps) (*Handler, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{deps: deps, render: r, images: newImageHandler(deps.StaticDir)}, nil
}

// layoutData is what the shared layout, header, mobile menu and footer read.
type layoutData struct {
	Site         domain.Site
	Title        string
	Description  string
	Path         string
	Canonical    string
	Nav          []domain.NavLink
	FooterLinks  []domain.NavLink
	ServiceLinks []domain.NavLink
	Theme        theme.Preference
	CSRFToken    string
	Year         int
	Schemas      []map[string]any
	Page         any
}

func (h *Handler) layout(c *gin.Context, title, description string, page any) layoutData {
	path := c.Request.URL.Path
	canonical := h.deps.Site.URL
	if path != "/" {
		canonical += path
	}
	if description == "" {
		description = h.deps.Site.Description
	}
	return layoutData{
		Site:         h.deps.Site,
		Title:        title,
		Description:  description,
		Path:         path,
		Canonical:    canonical,
		Nav:          navigation.Links(navigation.MainLinks, path),
		FooterLinks:  navigation.MainLinks,
		ServiceLinks: footerServiceLinks,
		Theme:        theme.FromContext(c.Request.Context()),
		CSRFToken:    middleware.CSRFToken(c),
		Year:         h.deps.Now().Year(),
		Schemas:      []map[string]any{h.deps.SEOUC.LocalBusinessSchema(), h.deps.SEOUC.WebsiteSchema()},
		Page:         page,
	}
}

type homePage struct {
	Stats        domain.CatalogStats
	Featured     []domain.ServiceCategory
	Indicators   []indicator
	Benefits     []benefit
	Testimonials []domain.Testimonial
	Carousel     carouselView
}

// carouselView is the server-rendered testimonial slider.
type carouselView struct {
	View     carousel.Breakpoint
	Index    int
	Visible  []domain.Testimonial
	PrevHref string
	NextHref string
	CanPrev  bool
	CanNext  bool
	Dots     []carouselDot
}

type carouselDot struct {
	Href   string
	Active bool
	Label  string
}

func newCarouselView(items []domain.Testimonial, view carousel.Breakpoint, requested int) carouselView {
	switch view {
	case carousel.Mobile, carousel.Tablet, carousel.Desktop:
	default:
		view = carousel.Desktop
	}
	s := carousel.New(len(items), carousel.VisibleFor(view))
	s.GoTo(requested)

	href := func(i int) string {
		return "/?t=" + strconv.Itoa(i) + "&view=" + string(view) + "#testimonials"
	}
	v := carouselView{
		View:     view,
		Index:    s.Index(),
		Visible:  items[s.Index():min(s.Index()+s.VisibleCount(), len(items))],
		PrevHref: href(max(s.Index()-1, 0)),
		NextHref: href(min(s.Index()+1, s.MaxIndex())),
		CanPrev:  s.CanPrev(),
		CanNext:  s.CanNext(),
	}
	for i := range items {
		v.Dots = append(v.Dots, carouselDot{
			Href:   href(min(i, s.MaxIndex())),
			Active: s.DotActive(i),
			Label:  "Go to testimonial " + strconv.Itoa(i+1),
		})
	}
	return v
}

func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	cats := h.deps.CatalogUC.ListCategories(ctx)
	if len(cats) > featuredCategories {
		cats = cats[:featuredCategories]
	}
	t, _ := strconv.Atoi(c.Query("t"))

	page := homePage{
		Stats:        h.deps.CatalogUC.Stats(ctx),
		Featured:     cats,
		Indicators:   indicators,
		Benefits:     benefits,
		Testimonials: testimonials,
		Carousel:     newCarouselView(testimonials, carousel.Breakpoint(strings.ToLower(c.Query("view"))), t),
	}
	h.render.html(c, http.StatusOK, pageHome, h.layout(c, h.deps.Site.Name+" | Professional Cleaning Services", "", page))
}

type servicesPage struct {
	Query        string
	Stats        domain.CatalogStats
	Categories   []domain.ServiceCategory
	Results      []domain.Service
	HeaderOffset int
	SpyTop       float64
	SpyBottom    float64
}

func (h *Handler) Services(c *gin.Context) {
	ctx := c.Request.Context()
	q := strings.TrimSpace(c.Query("q"))
	page := servicesPage{
		Query:        q,
		Stats:        h.deps.CatalogUC.Stats(ctx),
		Categories:   h.deps.CatalogUC.ListCategories(ctx),
		HeaderOffset: navigation.HeaderOffset,
		SpyTop:       navigation.DefaultBand.TopMargin,
		SpyBottom:    navigation.DefaultBand.BottomMargin,
	}
	if q != "" {
		page.Results = h.deps.CatalogUC.ListServices(ctx, q)
	}

	data := h.layout(c, "Our Services", "Explore our professional cleaning services: laundry, house cleaning, carpet cleaning, fumigation, nanny placement and more in Nairobi.", page)
	data.Schemas = append(data.Schemas, h.deps.SEOUC.ServiceSchemas()...)
	h.render.html(c, http.StatusOK, pageServices, data)
}

type contactPage struct {
	Choices []domain.ServiceChoice
	Values  domain.ContactRequest
	Errors  validation.FieldErrors
	Outcome domain.SubmissionOutcome
	Notice  string
}

func (h *Handler) contactData(c *gin.Context, page contactPage) layoutData {
	page.Choices = h.deps.ContactUC.ServiceChoices()
	return h.layout(c, "Contact Us", "Get a free quote from Avatar CleanPro. Call, WhatsApp or send us a message.", page)
}

func (h *Handler) Contact(c *gin.Context) {
	state := h.deps.ContactUC.State(c.Request.Context(), middleware.FormID(c))
	values := state.Values
	if values.Service == "" {
		values.Service = h.prefillService(c, c.Query("service"))
	}
	h.render.html(c, http.StatusOK, pageContact, h.contactData(c, contactPage{Values: values, Outcome: state.Outcome}))
}

// prefillService maps a ?service= value (a choice, a category slug or a service
// slug) onto the select option it belongs to.
func (h *Handler) prefillService(c *gin.Context, q string) string {
	if q == "" {
		return ""
	}
	for _, ch := range h.deps.ContactUC.ServiceChoices() {
		if ch.Value == q {
			return q
		}
	}
	ctx := c.Request.Context()
	slug := q
	if svc, err := h.deps.CatalogUC.GetService(ctx, q); err == nil {
		slug = svc.Category
	}
	if cat, err := h.deps.CatalogUC.GetCategory(ctx, slug); err == nil {
		return cat.Name
	}
	return ""
}

// SubmitContact handles the plain HTML form. Finished submissions redirect back
// to the form; field errors and in-flight submits re-render it directly.
func (h *Handler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, "/contact#contact-form")
		return
	}

	out, err := h.deps.ContactUC.Submit(c.Request.Context(), middleware.FormID(c), req)
	var appErr *apperror.AppError
	switch {
	case err == nil, out.Status == domain.StatusError:
		c.Redirect(http.StatusSeeOther, "/contact#contact-form")
	case errors.As(err, &appErr) && appErr.Code == http.StatusUnprocessableEntity:
		fieldErrs, _ := appErr.Details.(validation.FieldErrors)
		h.render.html(c, http.StatusUnprocessableEntity, pageContact, h.contactData(c, contactPage{Values: req, Errors: fieldErrs, Outcome: out}))
	default:
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}
		h.render.html(c, appErr.Code, pageContact, h.contactData(c, contactPage{Values: req, Outcome: out, Notice: appErr.Message}))
	}
}

func (h *Handler) ResetContact(c *gin.Context) {
	h.deps.ContactUC.Reset(c.Request.Context(), middleware.FormID(c))
	c.Redirect(http.StatusSeeOther, "/contact#contact-form")
}

type legalPage struct {
	LastUpdated string
}

func (h *Handler) Privacy(c *gin.Context) {
	h.render.html(c, http.StatusOK, pagePrivacy, h.layout(c, "Privacy Policy",
		"Learn how Avatar CleanPro collects, uses, and protects your personal information. Your privacy is important to us.",
		legalPage{LastUpdated: legalLastUpdated}))
}

func (h *Handler) Terms(c *gin.Context) {
	h.render.html(c, http.StatusOK, pageTerms, h.layout(c, "Terms of Service",
		"Read the terms and conditions for using Avatar CleanPro's cleaning services.",
		legalPage{LastUpdated: legalLastUpdated}))
}

// NotFound renders the 404 page, or the JSON envelope under /api/.
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.Error(c, http.StatusNotFound, "Resource not found", nil)
		return
	}
	h.render.html(c, http.StatusNotFound, pageNotFound, h.layout(c, "Page Not Found", "", nil))
}

// ToggleTheme flips the stored theme and sends the visitor back where they were.
func (h *Handler) ToggleTheme(c *gin.Context) {
	next := theme.FromContext(c.Request.Context()).Toggle()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(theme.CookieName, string(next.Chosen), int((365 * 24 * time.Hour).Seconds()), "/", "", h.deps.SecureCookies, false)
	c.Redirect(http.StatusSeeOther, safeRedirect(c.PostForm("redirect")))
}

// safeRedirect only allows same-site absolute paths.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
