package clinic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entperm "github.com/amparasaude/ampara_backend/internal/repo/clinicpermission"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
)

type SetPermissionRequest struct {
	UserID       uuid.UUID
	ResourceType string
	ResourceID   *uuid.UUID
	Action       string
	Granted      bool
}

// GetPermissions lists per-user permission overrides for a clinic.
func (s *clinicService) GetPermissions(ctx context.Context, clinicID uuid.UUID) ([]*repo.ClinicPermission, error) {
	perms, err := s.db.ClinicPermission.Query().
		Where(entperm.ClinicID(clinicID)).
		Order(entperm.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return perms, nil
}

// SetPermission upserts a per-user override and syncs it to the policy engine.
// Overrides are direct user policies in the clinic domain, so they sit on top
// of whatever the member's role already grants.
func (s *clinicService) SetPermission(ctx context.Context, clinicID uuid.UUID, req SetPermissionRequest) error {
	resource := authorize.Resource(req.ResourceType)
	action := authorize.Action(req.Action)
	if _, ok := authorize.KnownResources[resource]; !ok {
		return ErrInvalidPermission
	}
	if _, ok := authorize.KnownActions[action]; !ok {
		return ErrInvalidPermission
	}

	q := s.db.ClinicPermission.Query().
		Where(
			entperm.ClinicID(clinicID),
			entperm.UserID(req.UserID),
			entperm.ResourceType(req.ResourceType),
			entperm.Action(req.Action),
		)
	if req.ResourceID != nil {
		q = q.Where(entperm.ResourceID(*req.ResourceID))
	} else {
		q = q.Where(entperm.ResourceIDIsNil())
	}

	existing, err := q.First(ctx)
	switch {
	case err == nil:
		if _, err := s.db.ClinicPermission.UpdateOne(existing).SetGranted(req.Granted).Save(ctx); err != nil {
			return fmt.Errorf("update permission: %w", err)
		}
	case repo.IsNotFound(err):
		create := s.db.ClinicPermission.Create().
			SetClinicID(clinicID).
			SetUserID(req.UserID).
			SetResourceType(req.ResourceType).
			SetAction(req.Action).
			SetGranted(req.Granted)
		if req.ResourceID != nil {
			create = create.SetResourceID(*req.ResourceID)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create permission: %w", err)
		}
	default:
		return fmt.Errorf("query permission: %w", err)
	}

	// Sync to Casbin: user id as direct policy subject in the clinic domain.
	domain := string(authorize.ClinicDomain(clinicID.String()))
	subject := req.UserID.String()
	effect := string(authorize.EffectAllow)
	opposite := string(authorize.EffectDeny)
	if !req.Granted {
		effect, opposite = opposite, effect
	}

	enforcer := s.auth.Raw()
	if _, err := enforcer.RemovePolicy(subject, domain, req.ResourceType, req.Action, opposite); err != nil {
		return fmt.Errorf("remove stale policy: %w", err)
	}
	if _, err := enforcer.AddPolicy(subject, domain, req.ResourceType, req.Action, effect); err != nil {
		return fmt.Errorf("add policy: %w", err)
	}
	return nil
}
