package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/crewledger/crewledger/internal/server"
	"github.com/crewledger/crewledger/internal/service"
	"github.com/crewledger/crewledger/internal/storage/sqlite"
	"github.com/crewledger/crewledger/pkg/config"
	"github.com/crewledger/crewledger/pkg/logging"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.SlogLevel())

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("storage initialized", "database", cfg.DBPath)

	svc := service.NewSettlementService(store, logger)
	srv := server.New(store, svc, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
