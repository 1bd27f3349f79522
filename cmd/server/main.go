package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kbjutracker/internal/config"
	"kbjutracker/internal/server"
	"kbjutracker/internal/vision"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	configPath := flag.String("config", config.GetConfigPath(), "path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize vision model
	model, err := vision.NewModel(cfg.Vision.Provider)
	if err != nil {
		log.Fatal("Failed to create vision model:", err)
	}

	if err := model.Load(context.Background()); err != nil {
		log.Fatal("Failed to load vision model:", err)
	}

	// Initialize and start server
	srv := server.New(model, cfg.Server.Debug)
	if err := srv.Start(cfg.Server.Port, cfg.Server.StaticDir, cfg.Server.AllowOrigins); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
