// main.go
package main

import (
	"context"
	"log"
	"time"

	"studio-site/cmd"
	"studio-site/internal/data/repository"
	"studio-site/internal/wire"
	"studio-site/pkg/database"
	"studio-site/pkg/mailer"
	"studio-site/pkg/metrics"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
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

	metrics.Register()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoSchema {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			logger.Fatal("Failed to apply schema", zap.Error(err))
		}
		logger.Info("Schema ensured")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	sender := mailer.NewSMTPSender(mailer.Config{
		Host:     config.Email.Host,
		Port:     config.Email.Port,
		User:     config.Email.User,
		Password: config.Email.Password,
	})
	if !config.Email.Configured() {
		logger.Warn("SMTP credentials missing, booking email is disabled")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, db, sender, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
