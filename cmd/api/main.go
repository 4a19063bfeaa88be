// @title Godsaeng API
// @description API for the study & habit RPG "Godsaeng Tamagotchi"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/godsaeng/internal/api"
	"github.com/limbo/godsaeng/internal/service"
	"github.com/limbo/godsaeng/internal/store"
	"github.com/limbo/godsaeng/pkg/cleanup"
	"github.com/limbo/godsaeng/pkg/config"
	jwtservice "github.com/limbo/godsaeng/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	var docStore store.DocumentStoreI
	switch cfg.GetStringDefault("STORE_DRIVER", "file") {
	case "postgres":
		dbCfg := store.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		docStore = store.NewPGStore(&dbCfg, cfg.GetStringDefault("PROFILE_ID", "default"))
	default:
		docStore = store.NewFileStore(cfg.GetStringDefault("DATA_FILE", "user_data.json"))
	}
	serv := api.New(&api.ServicesList{
		ProgressService: service.NewProgressService(docStore),
		TimerService:    service.NewTimerService(docStore),
		FriendService:   service.NewFriendService(docStore),
		AdviceService:   service.NewAdviceService(cfg.Advice()),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	defer cleanup.CleanUp()
	err := serv.Run(cfg.GetStringDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
