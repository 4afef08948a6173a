package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/repository"
)

// LeaderboardHandler serves the derived per-game rankings. Nothing here
// writes; rank is recomputed from the score ledger on every request.
type LeaderboardHandler struct {
	Scores *repository.ScoreRepo
	Games  *repository.GameRepo
}

func NewLeaderboardHandler(s *repository.ScoreRepo, g *repository.GameRepo) *LeaderboardHandler {
	return &LeaderboardHandler{Scores: s, Games: g}
}

type rankedRow struct {
	Rank       int    `json:"rank"`
	UserID     uint64 `json:"userId"`
	Name       string `json:"name"`
	TotalScore int64  `json:"totalScore"`
}

// Top returns every user who scored in the game ordered by summed score
// descending; rank is the 1-based position. Ties keep query order.
func (h *LeaderboardHandler) Top(c echo.Context) error {
	gameID, err := strconv.ParseUint(c.QueryParam("gameId"), 10, 64)
	if err != nil || gameID == 0 {
		return respond(c, http.StatusBadRequest, "invalid gameId", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Games.GetByID(ctx, gameID); err != nil {
		if err == repository.ErrGameNotFound {
			return respond(c, http.StatusNotFound, "game not found", nil)
		}
		return internalError(c)
	}
	rows, err := h.Scores.TopByGame(ctx, gameID)
	if err != nil {
		return internalError(c)
	}
	ranked := make([]rankedRow, 0, len(rows))
	for i, r := range rows {
		ranked = append(ranked, rankedRow{
			Rank: i + 1, UserID: r.UserID, Name: r.Name, TotalScore: r.TotalScore,
		})
	}
	return c.JSON(http.StatusOK, ranked)
}

// Rank returns the caller's rank within a game: one plus the number of
// users whose summed score strictly exceeds the caller's sum, so it
// always agrees with the caller's position in Top.
func (h *LeaderboardHandler) Rank(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
	}
	gameID, err := strconv.ParseUint(c.QueryParam("gameId"), 10, 64)
	if err != nil || gameID == 0 {
		return respond(c, http.StatusBadRequest, "invalid gameId", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Games.GetByID(ctx, gameID); err != nil {
		if err == repository.ErrGameNotFound {
			return respond(c, http.StatusNotFound, "game not found", nil)
		}
		return internalError(c)
	}
	rank, err := h.Scores.RankOf(ctx, gameID, id.UserID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"gameId": gameID, "rank": rank})
}
