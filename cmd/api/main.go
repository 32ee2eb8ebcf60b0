package main

import (
	"flag"
	"log"

	_ "printshop_ops/docs"
	"printshop_ops/internal/adapter/http/routes"
	"printshop_ops/internal/infrastructure/config"
	"printshop_ops/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Print Shop Operations API
// @version         1.0
// @description     Sales-to-delivery operations for a print and signage shop: quotes, orders, projects, approvals, invoices and dashboard metrics.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
