package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/model"
	"github.com/zenova/gamehub-backend/internal/repository"
	"github.com/zenova/gamehub-backend/internal/reward"
)

// RewardHandler serves the weekly reward ledger.
type RewardHandler struct {
	Rewards *repository.RewardRepo
	Scores  *repository.ScoreRepo
	Users   *repository.UserRepo

	// now is swappable for tests; production uses time.Now.
	now func() time.Time
}

func NewRewardHandler(r *repository.RewardRepo, s *repository.ScoreRepo, u *repository.UserRepo) *RewardHandler {
	return &RewardHandler{Rewards: r, Scores: s, Users: u, now: time.Now}
}

// rewardResp is one day of the ledger decorated with the computed day
// name and claimability.
type rewardResp struct {
	DayOfWeek int    `json:"dayOfWeek"`
	DayName   string `json:"dayName"`
	Points    int    `json:"points"`
	Claimed   bool   `json:"claimed"`
	Claimable bool   `json:"claimable"`
}

func decorate(entries []model.RewardEntry, today time.Time) []rewardResp {
	out := make([]rewardResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, rewardResp{
			DayOfWeek: e.DayOfWeek,
			DayName:   reward.DayName(e.DayOfWeek),
			Points:    e.Points,
			Claimed:   e.Claimed,
			Claimable: reward.Claimable(e.WeekStart, e.DayOfWeek, today),
		})
	}
	return out
}

// Weekly returns the seven entries of the caller's current reward week,
// generating them on first access. The per-day points are a tier
// snapshot of the caller's lifetime total score taken at generation and
// held for the whole week; a duplicate-key race against a concurrent
// first access resolves to the already-generated rows, so two calls in
// one week always see the identical ledger.
func (h *RewardHandler) Weekly(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
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

	today := h.now().UTC()
	weekStart := reward.WeekStart(today)

	entries, err := h.Rewards.ListWeek(ctx, u.ID, weekStart)
	if err != nil {
		return internalError(c)
	}
	if len(entries) == 0 {
		total, err := h.Scores.TotalForUser(ctx, u.ID)
		if err != nil {
			return internalError(c)
		}
		entries, err = h.Rewards.GenerateWeek(ctx, u.ID, weekStart, reward.DailyPoints(total))
		if err != nil {
			return internalError(c)
		}
	}
	return respond(c, http.StatusOK, "Weekly rewards are fetched", decorate(entries, today))
}

// Claim marks one day of the current week as claimed. Claiming a day
// that has no entry, has not arrived, or was already claimed fails with
// 404, 409 and 409 respectively.
func (h *RewardHandler) Claim(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
	}
	dayOfWeek, err := strconv.Atoi(c.Param("dayOfWeek"))
	if err != nil || dayOfWeek < 1 || dayOfWeek > reward.DaysPerWeek {
		return respond(c, http.StatusBadRequest, "dayOfWeek must be 1..7", nil)
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

	today := h.now().UTC()
	weekStart := reward.WeekStart(today)

	e, err := h.Rewards.Claim(ctx, u.ID, weekStart, dayOfWeek, today)
	switch err {
	case nil:
	case repository.ErrRewardNotFound:
		return respond(c, http.StatusNotFound, "Reward not found", nil)
	case repository.ErrRewardNotYetClaimable:
		return respond(c, http.StatusConflict, "Reward is not claimable yet", nil)
	case repository.ErrRewardAlreadyClaimed:
		return respond(c, http.StatusConflict, "Reward already claimed", nil)
	default:
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Reward claimed", rewardResp{
		DayOfWeek: e.DayOfWeek,
		DayName:   reward.DayName(e.DayOfWeek),
		Points:    e.Points,
		Claimed:   true,
		Claimable: true,
	})
}
