// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/hospital-api/config"
	"github.com/ariebrainware/hospital-api/endpoint"
	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// @title           Hospital API
// @version         1.0
// @description     Doctors, patients, rooms and appointments of a hospital.
// @BasePath        /hospital/api
func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-api",
		Short: "Hospital management REST API",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetUint16("port")
			return runServer(port)
		},
	}
	cmd.Flags().Uint16("port", 0, "Listen port, overrides APPPORT")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			util.InitLogger(cfg.AppEnv, cfg.LogLevel)

			db, err := config.ConnectDB()
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			if err := model.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			util.Logger().Info().Str("driver", cfg.DBDriver).Msg("schema migrated")
			return nil
		},
	}
}

func runServer(port uint16) error {
	cfg := config.LoadConfig()
	util.InitLogger(cfg.AppEnv, cfg.LogLevel)
	logger := util.Logger()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.ConnectDB()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	// nothing else creates the schema of a throwaway database
	if cfg.IsTest() || cfg.DBDriver == "sqlite" {
		if err := model.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if _, err := config.ConnectRedis(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
	}

	if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
		logger.Warn().Err(err).Msg("geoip database not loaded")
	}
	defer util.CloseGeoIP()

	if cfg.RequestLogPersist {
		util.SetRequestLogDB(db)
	}

	router, err := endpoint.SetupRouter(db, cfg)
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	if port == 0 {
		port = cfg.AppPort
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("env", cfg.AppEnv).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	hits, misses, cached := util.GetGeoIPCacheMetrics()
	logger.Info().Int64("geoip_cache_hits", hits).Int64("geoip_cache_misses", misses).Int("geoip_cache_size", cached).Msg("server stopped")
	return nil
}
