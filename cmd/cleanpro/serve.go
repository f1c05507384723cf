package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cleanpro-web/config"
	_ "cleanpro-web/docs" // Important for Swagger
	"cleanpro-web/internal/catalog"
	"cleanpro-web/internal/delivery/http/middleware"
	v1 "cleanpro-web/internal/delivery/http/v1"
	"cleanpro-web/internal/domain"
	"cleanpro-web/internal/usecase"
	"cleanpro-web/pkg/audit"
	"cleanpro-web/pkg/email"
	"cleanpro-web/pkg/logger"
	"cleanpro-web/pkg/redis"
	"cleanpro-web/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the website and the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting Avatar CleanPro", "port", cfg.Port, "site_url", cfg.SiteURL)
	cfg.Warn()
	auditLog := audit.Init("cleanpro-web", audit.Environment(cfg.GinMode))
	defer func() { _ = auditLog.Sync() }()

	// 1. Catalog
	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	v := validation.New(cat)

	// 2. Email relay
	var delivery domain.DeliveryClient
	if cfg.EmailJSConfigured() {
		delivery = email.NewClient(email.Config{
			Endpoint:   cfg.EmailJSAPIURL,
			PrivateKey: cfg.EmailJSPrivateKey,
			Origin:     cfg.SiteURL,
		})
	}

	// 3. Rate limit store
	var (
		counter middleware.Counter
		pinger  usecase.Pinger
	)
	if cfg.UpstashRedisURL != "" {
		client, err := redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
		} else {
			defer client.Close()
			c := redis.NewCounter(client)
			counter, pinger = c, c
		}
	}

	// 4. UseCases
	formCfg := usecase.FormConfig{
		ServiceID:      cfg.EmailJSServiceID,
		TemplateID:     cfg.EmailJSTemplateID,
		PublicKey:      cfg.EmailJSPublicKey,
		SimulatedDelay: cfg.ContactSimulatedDelay,
		Location:       cfg.Location,
	}
	store := usecase.NewFormStore(cfg.ContactFormTTL, func() *usecase.ContactForm {
		return usecase.NewContactForm(formCfg, delivery, v)
	})
	catalogUC := usecase.NewCatalogUsecase(cat)

	// 5. Router
	router, err := v1.NewRouter(v1.RouterDeps{
		CatalogUC: catalogUC,
		ContactUC: usecase.NewContactUsecase(store, cat.ServiceChoices()),
		SEOUC:     usecase.NewSEOUsecase(cfg.Site(), cat),
		HealthUC:  usecase.NewHealthUsecase(catalogUC, pinger, cfg.EmailJSConfigured()),
		Counter:   counter,
		Config:    cfg,
	})
	if err != nil {
		return err
	}

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return store.Run(gctx, sweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	err = g.Wait()
	logger.Log.Info("Server exiting")
	return err
}
