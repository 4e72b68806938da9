package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerConflictRoutes(
	api fiber.Router,
	h *handler.ConflictHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	conflicts := api.Group("/conflicts", authRequired, clinicHeader,
		requirePerm(authorize.ResourceSession, authorize.ActionRead))

	conflicts.Post("/check", h.Check)
	conflicts.Post("/validate", h.Validate)
	conflicts.Post("/suggestions", h.Suggestions)
	conflicts.Get("/timezone-check", h.TimezoneCheck)
	conflicts.Get("/session-load", h.SessionLoad)

	api.Get("/availability", authRequired, clinicHeader,
		requirePerm(authorize.ResourceSession, authorize.ActionRead), h.Availability)
}
