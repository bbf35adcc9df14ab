package main

import (
	"context"
	"log"
	"os"

	"go-airline-tickets/config"
	"go-airline-tickets/internal/cli"
	"go-airline-tickets/internal/service"
	"go-airline-tickets/internal/storage"
	"go-airline-tickets/pkg/logger"

	"github.com/spf13/pflag"
)

func main() {
	cfg := config.LoadConfig()
	// 互動介面預設只記錄 warn 以上，避免洗版
	cfg.LogLevel = "warn"

	pflag.StringVar(&cfg.Storage.Backend, "storage", cfg.Storage.Backend, "storage backend: file, redis, postgres or dynamodb")
	pflag.StringVarP(&cfg.Storage.DataFile, "data-file", "f", cfg.Storage.DataFile, "JSON data file for the file backend")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	pflag.Parse()

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.LogLevel, err)
	}
	defer logger.L.Sync()

	ctx := context.Background()

	store, closeStore, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	ticketService, err := service.NewTicketService(ctx, store)
	if err != nil {
		log.Fatalf("Failed to initialize ticket service: %v", err)
	}

	if err := cli.NewConsole(ticketService, os.Stdin, os.Stdout).Run(ctx); err != nil {
		log.Fatalf("Console stopped: %v", err)
	}
}
