package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"cleanpro-web/internal/domain"
	"cleanpro-web/internal/ui/icon"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// IntegrityError lists every problem found in a dataset.
type IntegrityError struct {
	Problems []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity check failed (%d problems): %s",
		len(e.Problems), strings.Join(e.Problems, "; "))
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("pricing_model", func(fl validator.FieldLevel) bool {
			return domain.PricingModel(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
			return icon.Valid(domain.IconName(fl.Field().String()))
		})

		validateInst = v
	})
	return validateInst
}

// check returns every integrity violation: struct constraints, duplicate
// ids or slugs, and services pointing at a category other than their owner.
func check(categories []domain.ServiceCategory) []string {
	var problems []string
	if len(categories) == 0 {
		return []string{"catalog has no categories"}
	}

	v := validatorInstance()
	categoryIDs := map[string]bool{}
	categorySlugs := map[string]bool{}
	serviceIDs := map[string]string{}
	serviceSlugs := map[string]string{}

	for ci, cat := range categories {
		where := fmt.Sprintf("categories[%d] (%s)", ci, cat.ID)
		if err := v.Struct(cat); err != nil {
			problems = append(problems, describe(where, err)...)
		}

		if categoryIDs[cat.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate category id %q", where, cat.ID))
		}
		categoryIDs[cat.ID] = true
		if categorySlugs[cat.Slug] {
			problems = append(problems, fmt.Sprintf("%s: duplicate category slug %q", where, cat.Slug))
		}
		categorySlugs[cat.Slug] = true

		for si, svc := range cat.Services {
			swhere := fmt.Sprintf("%s.services[%d] (%s)", where, si, svc.ID)
			if svc.Category != cat.ID {
				problems = append(problems, fmt.Sprintf("%s: category %q does not match owning category %q", swhere, svc.Category, cat.ID))
			}
			if prev, dup := serviceIDs[svc.ID]; dup {
				problems = append(problems, fmt.Sprintf("%s: duplicate service id %q (also in %s)", swhere, svc.ID, prev))
			} else {
				serviceIDs[svc.ID] = cat.ID
			}
			if prev, dup := serviceSlugs[svc.Slug]; dup {
				problems = append(problems, fmt.Sprintf("%s: duplicate service slug %q (also in %s)", swhere, svc.Slug, prev))
			} else {
				serviceSlugs[svc.Slug] = cat.ID
			}
		}
	}
	return problems
}

func describe(where string, err error) []string {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{fmt.Sprintf("%s: %v", where, err)}
	}
	out := make([]string, 0, len(ves))
	for _, fe := range ves {
		field := strings.TrimPrefix(fe.StructNamespace(), "ServiceCategory.")
		out = append(out, fmt.Sprintf("%s: %s failed %q (value %q)", where, field, fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return out
}
