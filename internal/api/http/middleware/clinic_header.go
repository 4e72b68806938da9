package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entclinic "github.com/amparasaude/ampara_backend/internal/repo/clinic"
	entmember "github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	entpatient "github.com/amparasaude/ampara_backend/internal/repo/patient"
	pasetotoken "github.com/amparasaude/ampara_backend/pkg/paseto"
)

const LocalsPatientID = "patient_id"

// ClinicHeader reads the clinic ID from the X-Clinic-ID header (used for
// non-nested routes like /patients, /sessions, /diary that are clinic-scoped).
// It validates the clinic is active and that the authenticated user belongs to
// it, either as a staff member or as a patient. On success it sets the same
// Locals keys as ClinicContext so downstream middleware (RequirePermission)
// works identically for both entry paths.
func ClinicHeader(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Clinic-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Clinic-ID header is required")
		}

		clinicID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Clinic-ID value")
		}

		// Verify clinic exists and is active
		exists, err := db.Clinic.Query().
			Where(entclinic.ID(clinicID), entclinic.IsActive(true), entclinic.DeletedAtIsNil()).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		c.Locals(LocalsClinicID, clinicID.String())

		// Staff member?
		m, err := db.ClinicMember.Query().
			Where(
				entmember.ClinicID(clinicID),
				entmember.UserID(claims.UserID),
				entmember.IsActive(true),
			).
			Only(c.Context())
		if err == nil {
			c.Locals(LocalsMemberRole, string(m.Role))
			c.Locals(LocalsMemberID, m.ID.String())
			return c.Next()
		}
		if !repo.IsNotFound(err) {
			return err
		}

		// Patient of this clinic?
		p, err := db.Patient.Query().
			Where(
				entpatient.ClinicID(clinicID),
				entpatient.UserID(claims.UserID),
				entpatient.DeletedAtIsNil(),
			).
			Only(c.Context())
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrForbidden
			}
			return err
		}

		c.Locals(LocalsPatientID, p.ID.String())
		return c.Next()
	}
}
