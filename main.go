package main

import (
	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
	"runwayplanner/backend/config"
	"runwayplanner/backend/database"
	"runwayplanner/backend/middlewares"
	"runwayplanner/backend/routes"
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg.LogLevel)
	database.Connect(cfg.DatabaseURL)
	defer database.Close()
	database.EnsureSchema()
	r := gin.Default()
	r.Use(middlewares.CORS())
	routes.Register(r, cfg)
	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
