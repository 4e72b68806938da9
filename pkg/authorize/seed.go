package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinic-level policies (domain: clinic:*)
	clinicPolicies := []PermissionPolicy{
		// Owner: full control within the clinic
		{RoleClinicOwner, WildcardDomain, WildcardResource, ActionManage, EffectAllow},
		{RoleClinicOwner, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleClinicOwner, WildcardDomain, ResourceRBAC, ActionRevoke, EffectAllow},

		// Admin: manage the clinic but not RBAC grants
		{RoleClinicAdmin, WildcardDomain, ResourceClinic, ActionUpdate, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceClinicSettings, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceClinicMember, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourcePatient, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceSession, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceRecurringSeries, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceProfile, ActionRead, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},

		// Psychologist: own calendar and clinical records
		{RoleClinicPsychologist, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicPsychologist, WildcardDomain, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleClinicPsychologist, WildcardDomain, ResourceSession, ActionManage, EffectAllow},
		{RoleClinicPsychologist, WildcardDomain, ResourceRecurringSeries, ActionManage, EffectAllow},
		{RoleClinicPsychologist, WildcardDomain, ResourceProfile, ActionManage, EffectAllow},
		{RoleClinicPsychologist, WildcardDomain, ResourceUnavailability, ActionManage, EffectAllow},
		{RoleClinicPsychologist, WildcardDomain, ResourceCareLink, ActionManage, EffectAllow},
		{RoleClinicPsychologist, WildcardDomain, ResourceDiaryEntry, ActionRead, EffectAllow},

		// Assistant: front-desk scheduling, no clinical data
		{RoleClinicAssistant, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicAssistant, WildcardDomain, ResourcePatient, ActionCreate, EffectAllow},
		{RoleClinicAssistant, WildcardDomain, ResourceSession, ActionManage, EffectAllow},
		{RoleClinicAssistant, WildcardDomain, ResourceRecurringSeries, ActionCreate, EffectAllow},
		{RoleClinicAssistant, WildcardDomain, ResourceRecurringSeries, ActionRead, EffectAllow},

		// Patient: own sessions and own diary
		{RoleClinicPatient, WildcardDomain, ResourceSession, ActionRead, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceDiaryEntry, ActionManage, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceCareLink, ActionRead, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceCareLink, ActionUpdate, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceProgress, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUserDevice, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceDiaryEntry, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceProgress, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceClinic, ActionCreate, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, clinicPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignClinicOwnerRole assigns the clinic:owner role to a user for a specific
// clinic. Call this when creating a new clinic.
func AssignClinicOwnerRole(ctx context.Context, auth IAuthorization, userID, clinicID string) error {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleClinicOwner, domain)
	return err
}

// AssignClinicRole assigns a clinic role to a user for a specific clinic.
// Use this when adding members to a clinic with a specific role.
// Valid roles: RoleClinicAdmin, RoleClinicPsychologist, RoleClinicAssistant, RoleClinicPatient
func AssignClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	switch role {
	case RoleClinicOwner, RoleClinicAdmin, RoleClinicPsychologist, RoleClinicAssistant, RoleClinicPatient:
		// valid clinic roles
	default:
		return ErrInvalidArgs
	}

	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveClinicRole removes a clinic role from a user for a specific clinic.
func RemoveClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetClinicRoles returns all roles a user has in a specific clinic.
func GetClinicRoles(ctx context.Context, auth IAuthorization, userID, clinicID string) ([]Role, error) {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignPlatformRole assigns a platform-level role to a user.
// Note: RolePlatformSuperAdmin should be assigned manually/carefully.
func AssignPlatformRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	if role != RolePlatformSuperAdmin {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemovePlatformRole removes a platform-level role from a user.
func RemovePlatformRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
