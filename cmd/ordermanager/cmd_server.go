package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/ordermanager/app/routes"
	"github.com/shashiranjanraj/ordermanager/config"
	"github.com/shashiranjanraj/ordermanager/internal/server"
	"github.com/shashiranjanraj/ordermanager/pkg/app"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
)

var noGRPC bool

// ordermanager serve
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Start the HTTP API and the gRPC health server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := boot()
		if err != nil {
			return err
		}
		defer rt.close()

		a := app.New().HealthCheck("database", pingDB(rt.db))
		defer a.Close()
		store, err := rt.tokenStore(ctx, a)
		if err != nil {
			return err
		}
		a.Routes(routes.API(rt.db, auth.NewAuthenticator(store)))

		opts := server.Options{HTTPAddr: ":" + config.AppPort()}
		if !noGRPC {
			opts.GRPCAddr = ":" + config.GRPCPort()
		}
		return server.Run(ctx, a.Handler(), opts)
	},
}

// ordermanager route:list
var routeListCmd = &cobra.Command{
	Use:     "route:list",
	Aliases: []string{"routes"},
	Short:   "List every registered route",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.New().WithLimits(app.Limits{}).
			Routes(routes.API(nil, auth.NewAuthenticator(nil)))
		return app.PrintRoutes(cmd.OutOrStdout(), a.Router().Routes())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&noGRPC, "no-grpc", false, "do not start the gRPC health server")
}
