package main

import (
	"time"

	"cleanpro-web/config"
	"cleanpro-web/internal/catalog"
	"cleanpro-web/internal/delivery/http/web"
	"cleanpro-web/internal/usecase"

	"github.com/spf13/cobra"
)

func newSitemapCmd() *cobra.Command {
	var robots bool

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print sitemap.xml (or robots.txt) for the configured SITE_URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			seo := usecase.NewSEOUsecase(cfg.Site(), cat)

			if robots {
				_, err = cmd.OutOrStdout().Write([]byte(seo.Robots(cmd.Context())))
				return err
			}
			body, err := web.MarshalSitemap(seo.Sitemap(cmd.Context(), time.Now()))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(body, '\n'))
			return err
		},
	}

	cmd.Flags().BoolVar(&robots, "robots", false, "Print robots.txt instead")
	return cmd
}
