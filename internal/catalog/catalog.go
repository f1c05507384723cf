// Package catalog holds the static service catalog. The dataset is embedded,
// validated once at load and read-only afterwards, so a *Catalog is safe for
// concurrent use.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"cleanpro-web/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed data/services.yaml
var defaultData []byte

type document struct {
	Categories []domain.ServiceCategory `yaml:"categories" validate:"required,min=1,dive"`
}

// Catalog is the loaded, validated dataset.
type Catalog struct {
	categories     []domain.ServiceCategory
	all            []domain.Service
	serviceBySlug  map[string]int
	categoryBySlug map[string]int
	categoryByID   map[string]int
	names          map[string]struct{}
}

// Default loads the embedded dataset.
func Default() (*Catalog, error) {
	return Load(defaultData)
}

// MustDefault is Default for callers that cannot continue without a catalog.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load parses a YAML document and validates it. Unknown keys are rejected.
func Load(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &IntegrityError{Problems: []string{"catalog is empty"}}
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(doc.Categories)
}

// New validates categories and indexes them. Every integrity problem is
// reported at once in an *IntegrityError.
func New(categories []domain.ServiceCategory) (*Catalog, error) {
	if problems := check(categories); len(problems) > 0 {
		return nil, &IntegrityError{Problems: problems}
	}

	c := &Catalog{
		categories:     cloneCategories(categories),
		serviceBySlug:  make(map[string]int),
		categoryBySlug: make(map[string]int, len(categories)),
		categoryByID:   make(map[string]int, len(categories)),
		names:          map[string]struct{}{domain.GeneralInquiry: {}},
	}
	for ci, cat := range c.categories {
		c.categoryBySlug[cat.Slug] = ci
		c.categoryByID[cat.ID] = ci
		c.names[cat.Name] = struct{}{}
		for _, svc := range cat.Services {
			c.serviceBySlug[svc.Slug] = len(c.all)
			c.names[svc.Name] = struct{}{}
			c.all = append(c.all, svc)
		}
	}
	return c, nil
}

// Categories returns every category in display order.
func (c *Catalog) Categories() []domain.ServiceCategory {
	return cloneCategories(c.categories)
}

// AllServices flattens every category, keeping category then service order.
func (c *Catalog) AllServices() []domain.Service {
	return append([]domain.Service(nil), c.all...)
}

// PopularServices is the subsequence of AllServices flagged popular.
func (c *Catalog) PopularServices() []domain.Service {
	var out []domain.Service
	for _, s := range c.all {
		if s.Popular {
			out = append(out, s)
		}
	}
	return out
}

// ServiceBySlug finds a service anywhere in the catalog.
func (c *Catalog) ServiceBySlug(slug string) (domain.Service, bool) {
	i, ok := c.serviceBySlug[slug]
	if !ok {
		return domain.Service{}, false
	}
	return c.all[i], true
}

// CategoryBySlug finds a category by its anchor slug.
func (c *Catalog) CategoryBySlug(slug string) (domain.ServiceCategory, bool) {
	i, ok := c.categoryBySlug[slug]
	if !ok {
		return domain.ServiceCategory{}, false
	}
	return cloneCategory(c.categories[i]), true
}

// ServicesByCategory returns the services owned by categoryID, or an empty slice.
func (c *Catalog) ServicesByCategory(categoryID string) []domain.Service {
	i, ok := c.categoryByID[categoryID]
	if !ok {
		return []domain.Service{}
	}
	return append([]domain.Service(nil), c.categories[i].Services...)
}

// TotalServiceCount is the number of services across all categories.
func (c *Catalog) TotalServiceCount() int { return len(c.all) }

// CategoryCount is the number of categories.
func (c *Catalog) CategoryCount() int { return len(c.categories) }

// Search returns services whose name or description, or whose category name,
// contains query (case-insensitive). An empty query matches everything.
func (c *Catalog) Search(query string) []domain.Service {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.AllServices()
	}
	var out []domain.Service
	for _, cat := range c.categories {
		catHit := strings.Contains(strings.ToLower(cat.Name), q)
		for _, s := range cat.Services {
			if catHit ||
				strings.Contains(strings.ToLower(s.Name), q) ||
				strings.Contains(strings.ToLower(s.Description), q) {
				out = append(out, s)
			}
		}
	}
	return out
}

// HasServiceName reports whether name is accepted by the contact form: the
// general inquiry value or any category or service display name.
func (c *Catalog) HasServiceName(name string) bool {
	_, ok := c.names[name]
	return ok
}

// ServiceChoices lists the contact form select options.
func (c *Catalog) ServiceChoices() []domain.ServiceChoice {
	out := make([]domain.ServiceChoice, 0, len(c.categories)+1)
	out = append(out, domain.ServiceChoice{Value: domain.GeneralInquiry, Label: "General Inquiry"})
	for _, cat := range c.categories {
		out = append(out, domain.ServiceChoice{Value: cat.Name, Label: cat.Name})
	}
	return out
}

func cloneCategories(in []domain.ServiceCategory) []domain.ServiceCategory {
	out := make([]domain.ServiceCategory, len(in))
	for i, cat := range in {
		out[i] = cloneCategory(cat)
	}
	return out
}

func cloneCategory(cat domain.ServiceCategory) domain.ServiceCategory {
	cat.Services = append([]domain.Service(nil), cat.Services...)
	return cat
}
