package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, authRequired fiber.Handler) {
	me := api.Group("/users/me", authRequired)
	me.Get("/", h.GetMe)
	me.Patch("/", h.UpdateMe)
	me.Post("/email/verify-request", h.RequestEmailVerification)
	me.Post("/email/verify", h.VerifyEmail)
}
