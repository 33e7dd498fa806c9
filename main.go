package main

import (
	"fmt"
	"log"

	"github.com/omarionnn/BigOrders/configs"
	"github.com/omarionnn/BigOrders/middlewares"
	"github.com/omarionnn/BigOrders/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + reference data
	configs.SetupDatabase()
	if err := configs.SeedRestaurants(); err != nil {
		log.Fatalf("seed restaurants failed: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
