package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/insightdelivered/sme-finance-analyzer/internal/api"
	"github.com/insightdelivered/sme-finance-analyzer/internal/bookkeeping"
	"github.com/insightdelivered/sme-finance-analyzer/internal/config"
	"github.com/insightdelivered/sme-finance-analyzer/internal/logger"
	"github.com/insightdelivered/sme-finance-analyzer/internal/pipeline"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log := logger.New()

			app := fiber.New(fiber.Config{
				BodyLimit:             cfg.Server.MaxUploadMB << 20,
				DisableStartupMessage: true,
			})

			h := &api.Handler{
				Pipeline: pipeline.New(bookkeeping.NewWithExtras(cfg.ExtraKeywords), nil),
				Log:      log,
			}
			h.Register(app)

			log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
			return app.Listen(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
