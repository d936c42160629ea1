// @title BinBuddy tracker API
// @description API for the waste-disposal tracking app "BinBuddy"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"time"

	"github.com/binbuddy/tracker/internal/api"
	"github.com/binbuddy/tracker/internal/catalog"
	"github.com/binbuddy/tracker/internal/repository"
	"github.com/binbuddy/tracker/internal/service"
	"github.com/binbuddy/tracker/pkg/cleanup"
	"github.com/binbuddy/tracker/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	var store repository.StoreRepositoryI
	switch cfg.GetString("STORAGE_DRIVER") {
	case "redis":
		store = repository.NewRedisStore(&repository.RedisCfg{
			Addr:     cfg.GetString("REDIS_ADDR"),
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB"),
		})
	default:
		store = repository.NewPostgresStore(&repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		})
	}
	trashCatalog, err := catalog.Load()
	if err != nil {
		log.Fatal("loading catalog error: " + err.Error())
	}
	trackerService := service.NewTrackerService(store, trashCatalog)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	if err := trackerService.Initialize(ctx); err != nil {
		log.Fatal("initializing tracker error: " + err.Error())
	}
	serv := api.New(&api.ServicesList{
		TrackerService: trackerService,
		Catalog:        trashCatalog,
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
