package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heroscores/adapters/excel"
	"heroscores/app"
	"heroscores/internal"
	"heroscores/internal/config"
	"heroscores/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger = internal.NewLogger(internal.ParseLogLevel(appConfig.LogLevel))
	gin.SetMode(appConfig.Server.GinMode)

	reader := excel.NewReaderFromConfig(excel.SourceConfig{
		FilePath: appConfig.Data.ScoresFile,
		URL:      appConfig.Data.ScoresURL,
		Timeout:  appConfig.Data.FetchTimeout,
	})
	scoreService := app.NewScoreService(reader, int64(appConfig.Data.MaxLoads))

	server, err := ui.NewServer(ui.Options{
		Reader:       scoreService,
		PublicDir:    appConfig.Data.PublicDir,
		ViewTTL:      appConfig.Views.TTL,
		MaxViews:     appConfig.Views.Max,
		FetchTimeout: appConfig.Data.FetchTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	defer server.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("🚀 Starting Hero Scores on port %s", appConfig.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		server.Boards().Run(gctx, appConfig.Views.SweepInterval)
		return nil
	})

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		pprofServer := &http.Server{
			Addr:              ":" + appConfig.Profiling.Port,
			Handler:           http.DefaultServeMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		g.Go(func() error {
			log.Printf("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			return pprofServer.Shutdown(context.Background())
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Println("Shutting down Hero Scores")
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
