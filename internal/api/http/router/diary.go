package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerDiaryRoutes(
	api fiber.Router,
	h *handler.DiaryHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	diary := api.Group("/patients/:patientID/diary", authRequired, clinicHeader)

	diary.Post("/", requirePerm(authorize.ResourceDiaryEntry, authorize.ActionCreate), h.CreateEntry)
	diary.Get("/", requirePerm(authorize.ResourceDiaryEntry, authorize.ActionRead), h.ListEntries)
	diary.Get("/export", requirePerm(authorize.ResourceDiaryEntry, authorize.ActionRead), h.Export)
	diary.Patch("/:entryID", requirePerm(authorize.ResourceDiaryEntry, authorize.ActionUpdate), h.UpdateEntry)
	diary.Delete("/:entryID", requirePerm(authorize.ResourceDiaryEntry, authorize.ActionDelete), h.DeleteEntry)

	// Psychologist views gated by care-link consent inside the service.
	diary.Get("/shared", requirePerm(authorize.ResourceDiaryEntry, authorize.ActionRead), h.ListEntriesShared)
	diary.Get("/mood-trend", requirePerm(authorize.ResourceDiaryEntry, authorize.ActionRead), h.MoodTrend)
}
