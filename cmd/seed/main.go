// Command seed writes the demo dataset into the DynamoDB seed table so the API
// can boot with SEED_SOURCE=dynamodb.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"printshop_ops/internal/adapter/persistence/repository"
	"printshop_ops/internal/infrastructure/config"
	"printshop_ops/internal/infrastructure/database"
	"printshop_ops/internal/infrastructure/logging"
	"printshop_ops/internal/infrastructure/seed"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

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

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		logger.Fatal("[seed] connect dynamodb", zap.Error(err))
	}

	ds := seed.DemoDataset(time.Now().UTC())
	written, err := repository.NewSeedDynamoRepository(ddb, cfg.Seed.Table).Save(ctx, ds)
	if err != nil {
		logger.Fatal("[seed] save failed", zap.Error(err), zap.Int("written", written))
	}
	logger.Info("[seed] demo dataset written", zap.String("table", cfg.Seed.Table), zap.Int("items", written))
}
