package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SweetDelights01/bakery-storefront/internal/cache"
	"github.com/SweetDelights01/bakery-storefront/internal/config"
	dbpkg "github.com/SweetDelights01/bakery-storefront/internal/db"
	"github.com/SweetDelights01/bakery-storefront/internal/middleware"
	"github.com/SweetDelights01/bakery-storefront/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedis(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
