package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/subosito/gotenv"

	"github.com/minsukim/tossu/pkg/config"
	"github.com/minsukim/tossu/pkg/server"
)

func main() {
	_ = gotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "tossu-server",
	})

	cfg, err := config.Build(os.Getenv("TOSSU_CONFIG"), nil)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	logger.Info("starting server", "addr", cfg.ListenAddr)
	srv := server.New(cfg, logger)
	if err := srv.Start(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
