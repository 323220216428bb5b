package main

import (
	"fmt"
	"os"

	"repasse_imoveis/internal/adapter/http/routes"
	"repasse_imoveis/internal/infrastructure/config"
	"repasse_imoveis/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Repasse Imóveis API
// @version         1.0
// @description     Boletos de aluguel, prestação de contas e repasses a proprietários, persistidos em DynamoDB.

// @host localhost:8080

// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("[server][main] failed to startup the application", zap.Error(err))
	}
}
