package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/chronicler-app/chronicler/internal/config"
	"github.com/chronicler-app/chronicler/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	srv := server.NewServer(cfg)
	r := srv.SetupRouter()

	log.Printf("Starting completion gateway on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
