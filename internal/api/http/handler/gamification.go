package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/amparasaude/ampara_backend/pkg/paseto"

	"github.com/amparasaude/ampara_backend/internal/service/gamification"
)

type GamificationHandler struct {
	svc gamification.Service
}

func NewGamificationHandler(svc gamification.Service) *GamificationHandler {
	return &GamificationHandler{svc: svc}
}

func mapGamificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gamification.ErrDisabled):
		return conflict(c, err.Error())
	case errors.Is(err, gamification.ErrUnknownActivity):
		return badRequest(c, err.Error())
	case errors.Is(err, gamification.ErrRewardNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /gamification/award
func (h *GamificationHandler) Award(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	var body struct {
		ActivityType string         `json:"activity_type"`
		Metadata     map[string]any `json:"metadata"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ActivityType == "" {
		return badRequest(c, "activity_type is required")
	}
	// System-verified activities (diary entries, attended sessions) are
	// awarded by the event workers; the API only accepts self-reported ones.
	if !gamification.SelfReportable(body.ActivityType) {
		return forbidden(c)
	}

	result, err := h.svc.Award(c.Context(), claims.UserID, body.ActivityType, body.Metadata)
	if err != nil {
		return mapGamificationError(c, err)
	}

	return ok(c, result)
}

// GET /gamification/progress
func (h *GamificationHandler) Progress(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	progress, err := h.svc.UserProgress(c.Context(), claims.UserID)
	if err != nil {
		return mapGamificationError(c, err)
	}

	return ok(c, progress)
}

// GET /gamification/rewards
func (h *GamificationHandler) ListRewards(c fiber.Ctx) error {
	rewards, err := h.svc.ListRewards(c.Context())
	if err != nil {
		return mapGamificationError(c, err)
	}

	return ok(c, rewards)
}

// PUT /gamification/rewards
func (h *GamificationHandler) UpsertReward(c fiber.Ctx) error {
	var body struct {
		ActivityType    string `json:"activity_type"`
		Points          int    `json:"points"`
		XP              int    `json:"xp"`
		MinLevel        int    `json:"min_level"`
		MaxDailyCount   int    `json:"max_daily_count"`
		CooldownMinutes int    `json:"cooldown_minutes"`
		Enabled         bool   `json:"enabled"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ActivityType == "" {
		return badRequest(c, "activity_type is required")
	}

	if err := h.svc.UpsertReward(c.Context(), gamification.Reward{
		ActivityType:    body.ActivityType,
		Points:          body.Points,
		XP:              body.XP,
		MinLevel:        body.MinLevel,
		MaxDailyCount:   body.MaxDailyCount,
		CooldownMinutes: body.CooldownMinutes,
		Enabled:         body.Enabled,
	}); err != nil {
		return mapGamificationError(c, err)
	}

	return noContent(c)
}

// POST /gamification/rewards/refresh
func (h *GamificationHandler) RefreshCache(c fiber.Ctx) error {
	if err := h.svc.RefreshCache(c.Context()); err != nil {
		return mapGamificationError(c, err)
	}

	return noContent(c)
}
