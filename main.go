package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alpaca_dashboard/client"
	"alpaca_dashboard/config"
	sqlite "alpaca_dashboard/db"
	"alpaca_dashboard/interfaces"
	"alpaca_dashboard/logger"
	"alpaca_dashboard/metrics"
	"alpaca_dashboard/server"

	"github.com/joho/godotenv"
)

func main() {
	// Set up logging
	logLevel := flag.String("log", "info", "Log level: debug, info, warn, error")
	listenAddr := flag.String("addr", "", "Listen address, overrides DASH_LISTEN_ADDR")
	noRecorder := flag.Bool("no-recorder", false, "Disable the background snapshot recorder")
	flag.Parse()
	logger.InitLogger(logLevel)

	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}

	// Create Alpaca client
	cl := client.NewAlpacaClient(cfg)

	// Initialize snapshot database unless the recorder is disabled
	var store *sqlite.SQLite
	if !*noRecorder && cfg.SnapshotDBPath != "" {
		store, err = sqlite.InitDB(cfg.SnapshotDBPath)
		if err != nil {
			log.Fatalf("Failed to initialize snapshot database: %v", err)
		}
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if store != nil {
		go metrics.MonitorPerformance(ctx, cl, store, cfg)
	}

	// A nil *SQLite must not become a non-nil SnapshotStore interface.
	var snapStore interfaces.SnapshotStore
	if store != nil {
		snapStore = store
	}

	srv := server.New(cfg, cl, snapStore)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Dashboard server failed: %v", err)
		}
	}()
	logger.Infof("/// Dashboard started on %s ///", cfg.ListenAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Errorf("Shutdown: %v", err)
	}
	log.Println("Dashboard stopped")
}
