package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/app"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/internal/config"
	"github.com/AroubAlRizq/Agriculture-Web-NDVI/pkg/logger"
)

const serviceName = "agro-assess-panel"

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, serviceName)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	application := app.New(*cfg, l, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := application.Init()
	if err != nil {
		log.Panicf("failed to initialize application: %v", err)
	}
	defer application.Stop(container)

	if err := application.Run(ctx, container); err != nil {
		log.Panicf("command loop failed: %v", err)
	}
}
