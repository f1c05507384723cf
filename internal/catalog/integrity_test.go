package catalog_test

import (
	"testing"

	"cleanpro-web/internal/catalog"
	"cleanpro-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCategory(id string, services ...domain.Service) domain.ServiceCategory {
	return domain.ServiceCategory{
		ID:          id,
		Name:        "Category " + id,
		Slug:        id,
		Description: "desc",
		Icon:        "Sparkles",
		Color:       "teal",
		Services:    services,
	}
}

func validService(id, category string) domain.Service {
	return domain.Service{
		ID:           id,
		Name:         "Service " + id,
		Slug:         id,
		Description:  "desc",
		PricingModel: domain.PricingPerRoom,
		Category:     category,
		Icon:         "Home",
	}
}

func integrityProblems(t *testing.T, cats ...domain.ServiceCategory) []string {
	t.Helper()
	_, err := catalog.New(cats)
	require.Error(t, err)
	var ie *catalog.IntegrityError
	require.ErrorAs(t, err, &ie)
	return ie.Problems
}

func TestNewAcceptsValidCatalog(t *testing.T) {
	c, err := catalog.New([]domain.ServiceCategory{
		validCategory("a", validService("a-1", "a")),
		validCategory("b", validService("b-1", "b"), validService("b-2", "b")),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.TotalServiceCount())
}

func TestDuplicateSlugsAreFatal(t *testing.T) {
	problems := integrityProblems(t,
		validCategory("a", validService("shared", "a")),
		validCategory("b", validService("shared", "b")),
	)
	assert.Len(t, problems, 2) // duplicate id and duplicate slug
	assert.Contains(t, problems[1], `duplicate service slug "shared"`)
}

func TestDuplicateCategorySlug(t *testing.T) {
	a := validCategory("a", validService("a-1", "a"))
	b := validCategory("b", validService("b-1", "b"))
	b.Slug = "a"
	problems := integrityProblems(t, a, b)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], `duplicate category slug "a"`)
}

func TestDanglingCategoryReference(t *testing.T) {
	problems := integrityProblems(t, validCategory("a", validService("a-1", "ghost")))
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], `category "ghost" does not match owning category "a"`)
}

func TestEmptyServices(t *testing.T) {
	problems := integrityProblems(t, validCategory("a"))
	require.NotEmpty(t, problems)
	assert.Contains(t, problems[0], "Services")
}

func TestUnknownIconAndPricingModel(t *testing.T) {
	svc := validService("a-1", "a")
	svc.Icon = "Rocket"
	svc.PricingModel = "per-minute"
	problems := integrityProblems(t, validCategory("a", svc))
	assert.Len(t, problems, 2)
}

func TestBadSlug(t *testing.T) {
	svc := validService("a-1", "a")
	svc.Slug = "Not A Slug"
	problems := integrityProblems(t, validCategory("a", svc))
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], `"slug"`)
}

func TestNoCategories(t *testing.T) {
	assert.Equal(t, []string{"catalog has no categories"}, integrityProblems(t))
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := catalog.Load([]byte("categories:\n  - id: a\n    colour: teal\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadEmptyDocument(t *testing.T) {
	_, err := catalog.Load(nil)
	var ie *catalog.IntegrityError
	require.ErrorAs(t, err, &ie)
}

func TestLoadYAML(t *testing.T) {
	doc := `
categories:
  - id: nanny
    name: Nanny
    slug: nanny
    description: Childcare
    icon: Baby
    color: pink
    services:
      - id: nanny-monthly
        name: Book a Nanny
        slug: nanny-monthly
        description: Monthly placement
        pricing_model: monthly
        category: nanny
        icon: UserCheck
        popular: true
`
	c, err := catalog.Load([]byte(doc))
	require.NoError(t, err)
	s, ok := c.ServiceBySlug("nanny-monthly")
	require.True(t, ok)
	assert.Equal(t, domain.PricingMonthly, s.PricingModel)
	assert.True(t, s.Popular)
}
