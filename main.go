package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/configs"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/middlewares"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/routes"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.OpenDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	kv, err := store.NewGorm(db)
	if err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	colls := repository.NewCollections(kv, configs.SeedData())
	if err := configs.SeedAdmin(colls); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded files (avatars, catalog images)
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, cfg, colls)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
