package main

import (
	"context"
	"log"

	"go-airline-tickets/config"
	"go-airline-tickets/internal/handler"
	"go-airline-tickets/internal/service"
	"go-airline-tickets/internal/storage"
	"go-airline-tickets/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	pflag.StringVar(&cfg.HTTP.Addr, "addr", cfg.HTTP.Addr, "HTTP listen address")
	pflag.StringVar(&cfg.Storage.Backend, "storage", cfg.Storage.Backend, "storage backend: file, redis, postgres or dynamodb")
	pflag.StringVar(&cfg.Storage.DataFile, "data-file", cfg.Storage.DataFile, "JSON data file for the file backend")
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

	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	handler.NewTicketHandler(ticketService).RegisterRoutes(router)

	logger.L.Info("server starting", zap.String("addr", cfg.HTTP.Addr))
	if err := router.Run(cfg.HTTP.Addr); err != nil {
		logger.L.Fatal("server stopped", zap.Error(err))
	}
}
