// main.go
package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/cmd"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/repository"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/wire"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/database"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to the flow-state store (nil client falls back to in-process)
	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
	} else {
		logger.Info("No redis configured, using in-process flow state")
	}

	// Initialize flow-state repositories
	repos := repository.NewRepository(
		rdb,
		time.Duration(config.Flow.TTLMinutes)*time.Minute,
		time.Duration(config.OTP.ResendCooldownSeconds)*time.Second,
		logger,
	)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
