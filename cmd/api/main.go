package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/config"
	dbpkg "github.com/Raybod-Code/ayneh-beauty-sub002/internal/db"
	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/routes"
)

func main() {

	// Local dev reads .env; in production the variables come from the
	// environment and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
