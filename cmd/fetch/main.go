package main

import (
	"log"
	"os"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/recorder"
	"GoldSentinel/internal/runner"
	"GoldSentinel/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] GoldSentinel fetch starting...")

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

	// Init provider clients
	fred := collector.NewFredClient(cfg.Fred.BaseURL, cfg.Fred.APIKey, cfg.Fred.ObservationStart, cfg.Proxy)
	alpha := collector.NewAlphaClient(cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.APIKey, cfg.Proxy)
	gold := collector.NewGoldFetcher(alpha, fred)
	sheets := collector.NewSheetClient(cfg.Proxy)

	// Init JSON store
	st, err := store.NewJSONStore(cfg.Output.DataDir)
	if err != nil {
		log.Fatalf("[FATAL] init store: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	r := runner.NewRunner(fred, alpha, gold, sheets, st, rec, cfg.CbSheets.CSVURL)
	if err := r.Run(); err != nil {
		log.Fatalf("[FATAL] run: %v", err)
	}
	log.Println("[INFO] GoldSentinel fetch finished")
}
