package router

import (
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired, clinicHeader)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), h.Create)

	p := patients.Group("/:patientID")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.GetByID)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.Update)
	// CPF reveal carries manage so assistants with plain read never see it.
	p.Get("/cpf", requirePerm(authorize.ResourcePatient, authorize.ActionManage), h.RevealCPF)

	// Care links
	p.Get("/links", requirePerm(authorize.ResourceCareLink, authorize.ActionRead), h.ListLinks)
	p.Post("/links", requirePerm(authorize.ResourceCareLink, authorize.ActionCreate), h.InviteLink)

	links := api.Group("/links", authRequired, clinicHeader)
	links.Post("/accept", h.AcceptLink)
	links.Patch("/:linkID/consent", requirePerm(authorize.ResourceCareLink, authorize.ActionUpdate), h.UpdateConsent)
	links.Patch("/:linkID/revoke", requirePerm(authorize.ResourceCareLink, authorize.ActionUpdate), h.RevokeLink)
}
