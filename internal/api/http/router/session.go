package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerSessionRoutes(
	api fiber.Router,
	h *handler.SessionHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	sessions := api.Group("/sessions", authRequired, clinicHeader)

	sessions.Get("/", requirePerm(authorize.ResourceSession, authorize.ActionRead), h.List)
	sessions.Post("/", requirePerm(authorize.ResourceSession, authorize.ActionCreate), h.Schedule)

	s := sessions.Group("/:id")
	s.Get("/", requirePerm(authorize.ResourceSession, authorize.ActionRead), h.GetByID)
	s.Patch("/reschedule", requirePerm(authorize.ResourceSession, authorize.ActionUpdate), h.Reschedule)
	s.Patch("/confirm", requirePerm(authorize.ResourceSession, authorize.ActionUpdate), h.Confirm)
	s.Patch("/start", requirePerm(authorize.ResourceSession, authorize.ActionUpdate), h.Start)
	s.Patch("/complete", requirePerm(authorize.ResourceSession, authorize.ActionUpdate), h.Complete)
	s.Patch("/no-show", requirePerm(authorize.ResourceSession, authorize.ActionUpdate), h.MarkNoShow)
	s.Patch("/cancel", requirePerm(authorize.ResourceSession, authorize.ActionUpdate), h.Cancel)
}
