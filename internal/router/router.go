// Package router maps the public API paths onto handlers and applies
// middleware per route group. The paths under /api/v1 are a published
// contract and must not change.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/zenova/gamehub-backend/internal/config"
	"github.com/zenova/gamehub-backend/internal/handler"
	"github.com/zenova/gamehub-backend/internal/middleware"
	"github.com/zenova/gamehub-backend/internal/model"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	UserAdmin   *handler.UserAdminHandler
	Game        *handler.GameHandler
	Category    *handler.CategoryHandler
	Play        *handler.PlayHandler
	Leaderboard *handler.LeaderboardHandler
	Reward      *handler.RewardHandler
}

// Register wires all routes. Public reads get the Redis response cache;
// score submission gets the token-bucket limiter; every other protected
// route just needs JWT (and for mutations, the ADMIN role).
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	jwt := middleware.JWTAuth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	api := e.Group("/api/v1")

	// Users. Register and login are the only unauthenticated writes.
	user := api.Group("/user")
	user.POST("/register", h.Auth.Register)
	user.POST("/login", h.Auth.Login)
	user.GET("/me", h.Auth.Me, jwt)
	user.PUT("/updateInfo", h.Auth.UpdateInfo, jwt)
	user.GET("/getAll", h.UserAdmin.GetAll, jwt, adminOnly)
	user.GET("/all-developers", h.UserAdmin.AllDevelopers, jwt, adminOnly)
	user.PUT("/update", h.UserAdmin.Update, jwt, adminOnly)
	user.POST("/deactivate", h.UserAdmin.Deactivate, jwt, adminOnly)
	user.POST("/activate", h.UserAdmin.Activate, jwt, adminOnly)

	// Game catalog.
	game := api.Group("/game")
	game.GET("/all", h.Game.GetAll, cache)
	game.GET("/all-active", h.Game.GetAllActive, cache)
	game.POST("/add", h.Game.Add, jwt, adminOnly)
	game.PUT("/update", h.Game.Update, jwt, adminOnly)
	game.POST("/deactivate", h.Game.Deactivate, jwt, adminOnly)
	game.POST("/purchase", h.Game.Purchase, jwt)
	game.GET("/my-purchases", h.Game.MyPurchases, jwt)
	game.POST("/upload", h.Game.Upload, jwt)

	// Categories.
	category := api.Group("/category")
	category.GET("/all", h.Category.GetAll, cache)
	category.GET("/all-active", h.Category.GetAllActive, cache)
	category.POST("/add", h.Category.Add, jwt, adminOnly)
	category.PUT("/update", h.Category.Update, jwt, adminOnly)
	category.POST("/deactivate/:id", h.Category.Deactivate, jwt, adminOnly)

	// Score ledger and leaderboard.
	api.POST("/play/game", h.Play.Game, jwt, limit)
	api.GET("/leaderboard/top", h.Leaderboard.Top, cache)
	api.GET("/leaderboard/rank", h.Leaderboard.Rank, jwt)

	// Weekly rewards.
	rewardGroup := api.Group("/reward", jwt)
	rewardGroup.GET("/weekly", h.Reward.Weekly)
	rewardGroup.POST("/claim/:dayOfWeek", h.Reward.Claim)
}
