package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/queue"
	"github.com/zenova/gamehub-backend/internal/repository"
	queue_publisher "github.com/zenova/gamehub-backend/internal/service"
)

// PlayHandler records play results into the append-only score ledger.
type PlayHandler struct {
	Scores *repository.ScoreRepo
	Games  *repository.GameRepo
	Users  *repository.UserRepo
}

func NewPlayHandler(s *repository.ScoreRepo, g *repository.GameRepo, u *repository.UserRepo) *PlayHandler {
	return &PlayHandler{Scores: s, Games: g, Users: u}
}

type playReq struct {
	GameID     uint64 `json:"gameId"`
	ScoreValue int64  `json:"scoreValue"`
}

type scoreResp struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	GameID    uint64    `json:"gameId"`
	Score     int64     `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// Game validates that the caller and the game exist, appends a score row
// with the current timestamp and returns the persisted record. There is
// no upper bound on the value; a negative one is rejected. The recorded
// score feeds every later rank and reward-tier computation.
func (h *PlayHandler) Game(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
	}
	var req playReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}
	if req.GameID == 0 {
		return respond(c, http.StatusBadRequest, "gameId required", nil)
	}
	if req.ScoreValue < 0 {
		return fieldErrors(c, map[string]string{"scoreValue": "Score should not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, id.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return respond(c, http.StatusNotFound, "user not found", nil)
		}
		return internalError(c)
	}
	g, err := h.Games.GetByID(ctx, req.GameID)
	if err != nil {
		if err == repository.ErrGameNotFound {
			return respond(c, http.StatusNotFound, "game not found", nil)
		}
		return internalError(c)
	}

	s, err := h.Scores.Create(ctx, u.ID, g.ID, req.ScoreValue)
	if err != nil {
		return internalError(c)
	}

	_ = queue_publisher.Publish(ctx, queue.ScoreRecordedQueue, queue.ScoreRecordedEvent{
		ScoreID:    s.ID,
		UserID:     u.ID,
		UserEmail:  u.Email,
		GameID:     g.ID,
		GameName:   g.Name,
		Score:      s.Score,
		RecordedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	})
	return respond(c, http.StatusOK, "Score recorded and leaderboard updated", scoreResp{
		ID: s.ID, UserID: s.UserID, GameID: s.GameID, Score: s.Score, CreatedAt: s.CreatedAt,
	})
}
