package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/caue-mor/saas-solar/api"
	httpAdapter "github.com/caue-mor/saas-solar/internal/adapters/http"
	"github.com/caue-mor/saas-solar/pkg/flow"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flow definition HTTP server",
	Long:  `Starts the SolarFlow API: flow CRUD per company, templates, validation and the node catalog, exposed as JSON over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("listen") {
			cfg.Listen, _ = cmd.Flags().GetString("listen")
		}

		logger, err := newLogger(cfg)
		if err != nil {
			fmt.Printf("Error configuring logger: %v\n", err)
			os.Exit(1)
		}

		// Fail fast on a broken embedded contract.
		if _, err := api.Load(); err != nil {
			fmt.Printf("Invalid OpenAPI contract: %v\n", err)
			os.Exit(1)
		}

		store, err := newStore(cfg, logger)
		if err != nil {
			fmt.Printf("Error configuring store: %v\n", err)
			os.Exit(1)
		}

		reg := prometheus.NewRegistry()
		svc := flow.NewService(store,
			flow.WithLogger(logger),
			flow.WithMetrics(flow.NewMetrics(reg)),
		)
		handler := httpAdapter.NewHandler(svc, logger, reg)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting SolarFlow Server on %s (store: %s)\n", srv.Addr, cfg.Store.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("SolarFlow Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":8080", "Address to listen on")
}
