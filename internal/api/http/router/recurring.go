package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerRecurringRoutes(
	api fiber.Router,
	h *handler.RecurringHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	rec := api.Group("/recurring", authRequired, clinicHeader)

	rec.Post("/validate", requirePerm(authorize.ResourceRecurringSeries, authorize.ActionRead), h.Validate)
	rec.Post("/", requirePerm(authorize.ResourceRecurringSeries, authorize.ActionCreate), h.CreateSeries)

	// Occurrence-scoped edits take a session id plus a ?scope= query.
	rec.Patch("/sessions/:id", requirePerm(authorize.ResourceRecurringSeries, authorize.ActionUpdate), h.UpdateOccurrences)
	rec.Patch("/sessions/:id/cancel", requirePerm(authorize.ResourceRecurringSeries, authorize.ActionUpdate), h.CancelSeries)
	rec.Patch("/sessions/:id/skip", requirePerm(authorize.ResourceRecurringSeries, authorize.ActionUpdate), h.SkipOccurrence)

	rec.Get("/:seriesID/sessions", requirePerm(authorize.ResourceRecurringSeries, authorize.ActionRead), h.SeriesSessions)
	rec.Get("/:seriesID/statistics", requirePerm(authorize.ResourceRecurringSeries, authorize.ActionRead), h.SeriesStatistics)
}
