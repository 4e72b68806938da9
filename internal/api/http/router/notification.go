package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerNotificationRoutes(api fiber.Router, h *handler.NotificationHandler, authRequired fiber.Handler) {
	notifs := api.Group("/notifications", authRequired)
	notifs.Get("/", h.List)
	notifs.Patch("/read-all", h.MarkAllRead)
	notifs.Patch("/:id/read", h.MarkRead)
	notifs.Post("/register-device", h.RegisterDevice)

	prefs := api.Group("/users/me/notification-prefs", authRequired)
	prefs.Get("/", h.GetPrefs)
	prefs.Put("/", h.UpdatePrefs)
}
