package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/config"
	"github.com/zenova/gamehub-backend/internal/database"
	"github.com/zenova/gamehub-backend/internal/handler"
	"github.com/zenova/gamehub-backend/internal/queue"
	"github.com/zenova/gamehub-backend/internal/repository"
	"github.com/zenova/gamehub-backend/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the response cache and rate limiter
	// degrade to pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	games := repository.NewGameRepo(db)
	categories := repository.NewCategoryRepo(db)
	scores := repository.NewScoreRepo(db)
	rewards := repository.NewRewardRepo(db)
	purchases := repository.NewPurchaseRepo(db)

	h := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, users),
		UserAdmin:   handler.NewUserAdminHandler(users),
		Game:        handler.NewGameHandler(games, categories, users, purchases),
		Category:    handler.NewCategoryHandler(categories),
		Play:        handler.NewPlayHandler(scores, games, users),
		Leaderboard: handler.NewLeaderboardHandler(scores, games),
		Reward:      handler.NewRewardHandler(rewards, scores, users),
	}

	e := echo.New()
	router.Register(e, cfg, h, rdb)

	// Background consumer appends published domain events to the
	// activity log; it reconnects on its own for the process lifetime.
	go queue.StartActivityConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
