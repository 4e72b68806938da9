package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerProfileRoutes(
	api fiber.Router,
	h *handler.ProfileHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	profile := api.Group("/profile", authRequired, clinicHeader)

	profile.Get("/", requirePerm(authorize.ResourceProfile, authorize.ActionRead), h.Get)
	profile.Post("/", requirePerm(authorize.ResourceProfile, authorize.ActionCreate), h.Create)
	profile.Patch("/", requirePerm(authorize.ResourceProfile, authorize.ActionUpdate), h.Update)
	profile.Patch("/accepting", requirePerm(authorize.ResourceProfile, authorize.ActionUpdate), h.SetAccepting)

	blocks := api.Group("/unavailability", authRequired, clinicHeader)
	blocks.Get("/", requirePerm(authorize.ResourceUnavailability, authorize.ActionRead), h.ListBlocks)
	blocks.Post("/", requirePerm(authorize.ResourceUnavailability, authorize.ActionCreate), h.AddBlock)
	blocks.Delete("/:id", requirePerm(authorize.ResourceUnavailability, authorize.ActionDelete), h.RemoveBlock)
}
