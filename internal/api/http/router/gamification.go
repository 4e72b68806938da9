package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerGamificationRoutes(
	api fiber.Router,
	h *handler.GamificationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	g := api.Group("/gamification", authRequired)

	g.Post("/award", h.Award)
	g.Get("/progress", requirePerm(authorize.ResourceProgress, authorize.ActionRead), h.Progress)
	g.Get("/rewards", h.ListRewards)

	// Reward catalog management is a platform concern.
	g.Put("/rewards", requirePerm(authorize.ResourceReward, authorize.ActionManage), h.UpsertReward)
	g.Post("/rewards/refresh", requirePerm(authorize.ResourceReward, authorize.ActionManage), h.RefreshCache)
}
