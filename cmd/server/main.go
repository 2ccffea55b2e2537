package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bulbeats/api/internal/config"
	"github.com/bulbeats/api/internal/handlers"
	"github.com/bulbeats/api/internal/logging"
	"github.com/bulbeats/api/internal/middleware"
	"github.com/bulbeats/api/internal/resolver"
	"github.com/bulbeats/api/internal/services"
	"github.com/bulbeats/api/internal/youtube"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bulbeats-api",
		Short: "Beat discovery backend service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().String("http-address", defaults.GetString("http.address"), "HTTP listen address")
	cmd.PersistentFlags().String("project-id", "", "Google Cloud project ID")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("relay-url", "", "Extraction relay URL (optional proxy tier)")
	cmd.PersistentFlags().String("ytdlp-path", "", "Path to yt-dlp binary (enables local extraction)")

	bindFlag(cmd, "http.address", "http-address")
	bindFlag(cmd, "google.project_id", "project-id")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "resolver.relay_url", "relay-url")
	bindFlag(cmd, "resolver.ytdlp_path", "ytdlp-path")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	// Initialize Firebase and the Firestore client
	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID})
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize Firestore: %w", err)
	}
	defer firestoreClient.Close()

	// Initialize services
	userService := services.NewUserService(firestoreClient)
	voteService := services.NewVoteService(firestoreClient)
	searchClient := youtube.NewClient(cfg.YouTubeAPIKey)
	downloadResolver, filesDir := buildResolver(cfg, logger)

	// Initialize handlers
	userHandlers := handlers.NewUserHandlers(userService)
	voteHandlers := handlers.NewVoteHandlers(voteService)
	searchHandlers := handlers.NewSearchHandlers(searchClient)
	downloadHandlers := handlers.NewDownloadHandlers(downloadResolver, filesDir)

	// Set up Gin router
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	router.GET("/heartbeat", handlers.Heartbeat)

	v1 := router.Group("/v1")
	{
		v1.POST("/users", userHandlers.EnsureUser)
		v1.GET("/rankings", voteHandlers.GetRankings)

		beats := v1.Group("/beats")
		{
			beats.GET("/search", searchHandlers.Search)
			beats.POST("/:id/votes", voteHandlers.CastVote)
		}

		downloads := v1.Group("/downloads")
		{
			downloads.POST("/resolve", downloadHandlers.Resolve)
			downloads.GET("/files/:name", downloadHandlers.ServeFile)
		}
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", zap.String("address", cfg.HTTPAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("server shutdown complete")
	return nil
}

// buildResolver assembles the fallback cascade: direct cobalt instances
// first, then the proxy tier (relay, local yt-dlp) when configured, the
// manual fallback always last.
func buildResolver(cfg config.AppConfig, logger *zap.Logger) (*resolver.Resolver, string) {
	var descriptors []resolver.Descriptor
	priority := 1

	for i, instance := range cfg.CobaltInstances {
		descriptors = append(descriptors, resolver.Descriptor{
			Priority: priority,
			Backend:  resolver.NewCobaltBackend(fmt.Sprintf("cobalt-%d", i+1), instance, cfg.CobaltTimeout),
		})
		priority++
	}

	if cfg.RelayURL != "" {
		descriptors = append(descriptors, resolver.Descriptor{
			Priority: priority,
			Backend:  resolver.NewRelayBackend(cfg.RelayURL, cfg.RelayTimeout),
		})
		priority++
	}

	filesDir := ""
	if cfg.YtdlpPath != "" {
		filesDir = cfg.YtdlpOutputDir
		descriptors = append(descriptors, resolver.Descriptor{
			Priority: priority,
			Backend:  resolver.NewYtdlpBackend(cfg.YtdlpPath, cfg.YtdlpOutputDir, "/v1/downloads/files", cfg.YtdlpTimeout),
		})
		priority++
	}

	descriptors = append(descriptors, resolver.Descriptor{
		Priority: priority,
		Backend:  resolver.NewManualBackend(cfg.ManualToolURL),
	})

	return resolver.New(logger, descriptors...), filesDir
}
