package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/splitkit/pkg/api"
	"github.com/dmitrymomot/splitkit/pkg/httpserver"
)

func serveCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP validation API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router, err := api.NewRouter(a.validator,
				api.WithTranslator(a.translator),
				api.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}
			return httpserver.NewFromConfig(cfg, httpserver.WithLogger(a.log)).Run(ctx, router)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default SPLITKIT_HTTP_ADDR)")
	return cmd
}
