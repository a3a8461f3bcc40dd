package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/bayeux"
	httpAdapter "github.com/aretw0/bayeux/internal/adapters/http"
	"github.com/aretw0/bayeux/internal/presentation/tui"
	"github.com/aretw0/bayeux/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the inference HTTP server",
	Long:  `Starts the Bayeux engine in server mode, exposing posterior queries as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		networkPath, _ := cmd.Flags().GetString("network")
		port, _ := cmd.Flags().GetString("port")
		redisURL, _ := cmd.Flags().GetString("redis-url")

		engineOpts := []bayeux.Option{}
		if redisURL != "" {
			engineOpts = append(engineOpts, bayeux.WithCache(redis.New(redisURL, "", 0)))
		}

		engine, err := bayeux.New(networkPath, engineOpts...)
		if err != nil {
			fmt.Printf("Error initializing bayeux: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(engine.Asker())

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		tui.PrintBanner(bayeux.Version)

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Bayeux Server on %s\n", srv.Addr)
			fmt.Printf("Serving network: %s\n", networkPath)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Bayeux Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis-url", os.Getenv("REDIS_URL"), "Redis address for posterior caching (defaults to $REDIS_URL)")
}
