package usecase

import (
	"context"

	"cleanpro-web/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]any
}

// Pinger reports the health of an optional backing service such as the rate limit store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthUsecase struct {
	catalog domain.CatalogUsecase
	store   Pinger
	emailJS bool
}

// NewHealthUsecase reports catalog size, relay mode and, when store is non-nil, its reachability.
func NewHealthUsecase(catalog domain.CatalogUsecase, store Pinger, emailJSConfigured bool) HealthUsecase {
	return &healthUsecase{catalog: catalog, store: store, emailJS: emailJSConfigured}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]any {
	delivery := "emailjs"
	if !u.emailJS {
		delivery = "simulated"
	}
	rateLimit := "memory"
	if u.store != nil {
		rateLimit = "redis"
		if err := u.store.Ping(ctx); err != nil {
			rateLimit = "redis_unreachable"
		}
	}
	return map[string]any{
		"status":     "ok",
		"catalog":    u.catalog.Stats(ctx),
		"delivery":   delivery,
		"rate_limit": rateLimit,
	}
}
