package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenova/gamehub-backend/internal/model"
	"github.com/zenova/gamehub-backend/internal/queue"
	"github.com/zenova/gamehub-backend/internal/repository"
	queue_publisher "github.com/zenova/gamehub-backend/internal/service"
)

// GameHandler bundles dependencies for the catalog, purchase and upload
// endpoints.
type GameHandler struct {
	Games      *repository.GameRepo
	Categories *repository.CategoryRepo
	Users      *repository.UserRepo
	Purchases  *repository.PurchaseRepo
}

func NewGameHandler(g *repository.GameRepo, cat *repository.CategoryRepo,
	u *repository.UserRepo, p *repository.PurchaseRepo) *GameHandler {
	return &GameHandler{Games: g, Categories: cat, Users: u, Purchases: p}
}

type gameReq struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  uint64 `json:"categoryId"`
	Rules       string `json:"rules"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	HostedURL   string `json:"hostedUrl"`
	Approved    bool   `json:"approved"`
	UploadedBy  uint64 `json:"uploadedBy"`
}

type gameResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  uint64 `json:"categoryId"`
	Rules       string `json:"rules"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	HostedURL   string `json:"hostedUrl"`
	Active      bool   `json:"active"`
	UploadedBy  uint64 `json:"uploadedBy,omitempty"`
	Approved    bool   `json:"approved"`
}

func toGameResp(g model.Game) gameResp {
	return gameResp{
		ID: g.ID, Name: g.Name, Description: g.Description, CategoryID: g.CategoryID,
		Rules: g.Rules, Price: g.Price, Image: g.Image, HostedURL: g.HostedURL,
		Active: g.IsActive, UploadedBy: g.UploadedBy, Approved: g.Approved,
	}
}

func toGameResps(games []model.Game) []gameResp {
	out := make([]gameResp, 0, len(games))
	for _, g := range games {
		out = append(out, toGameResp(g))
	}
	return out
}

// bindGame binds the common game payload. It never writes a response:
// a bind failure comes back as err, a rejected payload as a non-empty
// field→message map, and the caller writes the 400.
func bindGame(c echo.Context) (gameReq, map[string]string, error) {
	var req gameReq
	if err := c.Bind(&req); err != nil {
		return req, nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	return req, validateGame(req.Name, req.Description, req.Rules, req.Price), nil
}

// GetAll returns every game including inactive ones.
func (h *GameHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	games, err := h.Games.ListAll(ctx)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, toGameResps(games))
}

// GetAllActive returns the games visible in the store.
func (h *GameHandler) GetAllActive(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	games, err := h.Games.ListActive(ctx)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, toGameResps(games))
}

// Add creates an approved, active catalog entry (ADMIN only). When the
// payload names an uploader who is still USER, the ownership transfer of
// an approved game promotes them to ADMIN; the promotion is explicit,
// guarded in the repository and published for audit.
func (h *GameHandler) Add(c echo.Context) error {
	req, errs, err := bindGame(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}
	if len(errs) > 0 {
		return fieldErrors(c, errs)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Categories.GetByID(ctx, req.CategoryID); err != nil {
		if err == repository.ErrCategoryNotFound {
			return respond(c, http.StatusNotFound, "category not found", nil)
		}
		return internalError(c)
	}

	price := req.Price
	if price == "" {
		price = "0.00"
	}
	g := model.Game{
		Name: req.Name, Description: req.Description, CategoryID: req.CategoryID,
		Rules: req.Rules, Price: price, Image: req.Image, HostedURL: req.HostedURL,
		IsActive: true, UploadedBy: req.UploadedBy, Approved: true,
	}
	if err := h.Games.Create(ctx, &g); err != nil {
		return internalError(c)
	}

	if req.UploadedBy != 0 {
		h.promote(ctx, req.UploadedBy, model.RoleAdmin, "approved game ownership")
	}
	return respond(c, http.StatusCreated, "Game Added", toGameResp(g))
}

// Update rewrites a game's catalog fields (ADMIN only).
func (h *GameHandler) Update(c echo.Context) error {
	req, errs, err := bindGame(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}
	if len(errs) > 0 {
		return fieldErrors(c, errs)
	}
	if req.ID == 0 {
		return respond(c, http.StatusBadRequest, "id required", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	current, err := h.Games.GetByID(ctx, req.ID)
	if err != nil {
		if err == repository.ErrGameNotFound {
			return respond(c, http.StatusNotFound, "game not found", nil)
		}
		return internalError(c)
	}
	price := req.Price
	if price == "" {
		price = current.Price
	}
	g := model.Game{
		ID: req.ID, Name: req.Name, Description: req.Description,
		CategoryID: req.CategoryID, Rules: req.Rules, Price: price,
		Image: req.Image, HostedURL: req.HostedURL, Approved: req.Approved,
	}
	if err := h.Games.Update(ctx, &g); err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Game Updated", toGameResp(g))
}

// Deactivate hides a game from the store (ADMIN only).
func (h *GameHandler) Deactivate(c echo.Context) error {
	id, err := strconv.ParseUint(c.QueryParam("id"), 10, 64)
	if err != nil || id == 0 {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Games.Deactivate(ctx, id); err != nil {
		if err == repository.ErrGameNotFound {
			return respond(c, http.StatusNotFound, "game not found", nil)
		}
		return internalError(c)
	}
	g, err := h.Games.GetByID(ctx, id)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, "Game Deactivated", toGameResp(g))
}

// Purchase appends a purchase of an active game for the caller and
// publishes a purchase.completed event. The publish is best-effort; a
// broker outage never fails the purchase.
func (h *GameHandler) Purchase(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
	}
	gameID, err := strconv.ParseUint(c.QueryParam("id"), 10, 64)
	if err != nil || gameID == 0 {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Games.GetByID(ctx, gameID)
	if err != nil {
		if err == repository.ErrGameNotFound {
			return respond(c, http.StatusNotFound, "game not found or inactive", nil)
		}
		return internalError(c)
	}
	if !g.IsActive {
		return respond(c, http.StatusNotFound, "game not found or inactive", nil)
	}
	p, err := h.Purchases.Create(ctx, id.UserID, gameID)
	if err != nil {
		return internalError(c)
	}

	_ = queue_publisher.Publish(ctx, queue.PurchaseCompletedQueue, queue.PurchaseCompletedEvent{
		PurchaseID:  p.ID,
		UserID:      id.UserID,
		UserEmail:   id.Email,
		GameID:      g.ID,
		GameName:    g.Name,
		Price:       g.Price,
		PurchasedAt: p.PurchasedAt.UTC().Format(time.RFC3339),
	})
	return respond(c, http.StatusOK, "Game Purchased", echo.Map{
		"purchaseId":  p.ID,
		"gameId":      g.ID,
		"purchasedAt": p.PurchasedAt,
	})
}

// MyPurchases lists the caller's purchase history, newest first.
func (h *GameHandler) MyPurchases(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	purchases, err := h.Purchases.ListByUser(ctx, id.UserID)
	if err != nil {
		return internalError(c)
	}
	type purchaseResp struct {
		ID          uint64    `json:"id"`
		GameID      uint64    `json:"gameId"`
		PurchasedAt time.Time `json:"purchasedAt"`
	}
	out := make([]purchaseResp, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, purchaseResp{ID: p.ID, GameID: p.GameID, PurchasedAt: p.PurchasedAt})
	}
	return respond(c, http.StatusOK, "Success", out)
}

// Upload lets any authenticated user submit a game. Uploads start
// unapproved and active, priced "0.00" unless stated. A USER uploader is
// promoted to DEVELOPER, explicitly and with an audit event.
func (h *GameHandler) Upload(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return respond(c, http.StatusUnauthorized, "unauthorized", nil)
	}
	req, errs, err := bindGame(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}
	if len(errs) > 0 {
		return fieldErrors(c, errs)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Categories.GetByID(ctx, req.CategoryID); err != nil {
		if err == repository.ErrCategoryNotFound {
			return respond(c, http.StatusNotFound, "category not found", nil)
		}
		return internalError(c)
	}

	price := req.Price
	if price == "" {
		price = "0.00"
	}
	g := model.Game{
		Name: req.Name, Description: req.Description, CategoryID: req.CategoryID,
		Rules: req.Rules, Price: price, Image: req.Image, HostedURL: req.HostedURL,
		IsActive: true, UploadedBy: id.UserID, Approved: false,
	}
	if err := h.Games.Create(ctx, &g); err != nil {
		return internalError(c)
	}

	h.promote(ctx, id.UserID, model.RoleDeveloper, "first game upload")
	return respond(c, http.StatusOK, "Game Uploaded", toGameResp(g))
}

// promote performs the guarded USER→target promotion and, when it fires,
// publishes the audit event. Failures are logged inside the repository
// and publisher; they never fail the catalog operation that triggered
// the promotion.
func (h *GameHandler) promote(ctx context.Context, userID uint64, to, reason string) {
	promoted, err := h.Users.PromoteRole(ctx, userID, model.RoleUser, to)
	if err != nil || !promoted {
		return
	}
	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return
	}
	_ = queue_publisher.Publish(ctx, queue.RolePromotedQueue, queue.RolePromotedEvent{
		UserID:     userID,
		UserEmail:  u.Email,
		FromRole:   model.RoleUser,
		ToRole:     to,
		Reason:     reason,
		PromotedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
