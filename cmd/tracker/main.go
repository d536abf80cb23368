package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"GoogChfTracker/internal/cache"
	"GoogChfTracker/internal/collector"
	"GoogChfTracker/internal/config"
	"GoogChfTracker/internal/dashboard"
	"GoogChfTracker/internal/scheduler"
	"GoogChfTracker/internal/server"
	"GoogChfTracker/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] GoogChfTracker starting...")

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s (%s / %s)", fetcher.Name(), cfg.DataSource.Symbol, cfg.DataSource.FxPair)
	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, cfg.DataSource.FxPair)

	// Init calendar store
	var cs store.CalendarStore
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			cs = store.NewNoopStore()
		} else {
			cs = ss
			defer ss.Close()
		}
	} else {
		cs = store.NewNoopStore()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init service
	svc := dashboard.NewService(col, cache.NewDatasetCache(cfg.DatasetTTL()), cs, cfg.CalendarTTL())
	svc.RestoreCalendar(ctx)

	// Init scheduler
	hub := server.NewHub()
	sched := scheduler.NewScheduler(ctx, svc, hub)
	if err := sched.RegisterAll(cfg.Schedule.CalendarCron, cfg.Schedule.QuoteCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: warm the default timeframe on start
	if os.Getenv("WARM_ON_START") == "true" {
		log.Println("[INFO] WARM_ON_START enabled, pre-fetching default timeframe")
		go sched.WarmDefault()
	}

	// Start HTTP server
	srv := server.NewServer(cfg.Server.Addr, cfg.Server.StaticDir, svc, hub)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	log.Println("[INFO] GoogChfTracker is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}
	log.Println("[INFO] GoogChfTracker stopped")
}
