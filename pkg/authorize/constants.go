package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Lifecycle actions
	ActionArchive Action = "archive"
	ActionClose   Action = "close"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionArchive: {}, ActionClose: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"
	ResourceOTP          Resource = "otp"

	// Clinic (tenant management)
	ResourceClinic         Resource = "clinic"
	ResourceClinicMember   Resource = "clinic_member"
	ResourceClinicSettings Resource = "clinic_settings"

	// Clinical records
	ResourcePatient    Resource = "patient"
	ResourceCareLink   Resource = "care_link"
	ResourceDiaryEntry Resource = "diary_entry"

	// Scheduling
	ResourceSession         Resource = "session"
	ResourceRecurringSeries Resource = "recurring_series"
	ResourceProfile         Resource = "psychologist_profile"
	ResourceUnavailability  Resource = "unavailability"

	// Engagement
	ResourceReward   Resource = "reward"
	ResourceProgress Resource = "progress"

	// Communication
	ResourceNotification Resource = "notification"
	ResourceUserDevice   Resource = "user_device"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {}, ResourceOTP: {},
	ResourceClinic: {}, ResourceClinicMember: {}, ResourceClinicSettings: {},
	ResourcePatient: {}, ResourceCareLink: {}, ResourceDiaryEntry: {},
	ResourceSession: {}, ResourceRecurringSeries: {}, ResourceProfile: {}, ResourceUnavailability: {},
	ResourceReward: {}, ResourceProgress: {},
	ResourceNotification: {}, ResourceUserDevice: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Clinic roles (domain = clinic:<uuid>)
	RoleClinicOwner        Role = "role:clinic:owner"
	RoleClinicAdmin        Role = "role:clinic:admin"
	RoleClinicPsychologist Role = "role:clinic:psychologist"
	RoleClinicAssistant    Role = "role:clinic:assistant"
	RoleClinicPatient      Role = "role:clinic:patient"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleClinicOwner:        {},
	RoleClinicAdmin:        {},
	RoleClinicPsychologist: {},
	RoleClinicAssistant:    {},
	RoleClinicPatient:      {},
	RoleUserSelf:           {},
}

// Brazilian Portuguese display names
var RoleDisplayNamesPT = map[Role]string{
	RolePlatformSuperAdmin: "Superadministrador da plataforma",
	RoleClinicOwner:        "Dono da clínica",
	RoleClinicAdmin:        "Administrador da clínica",
	RoleClinicPsychologist: "Psicólogo",
	RoleClinicAssistant:    "Assistente",
	RoleClinicPatient:      "Paciente",
	RoleUserSelf:           "Próprio usuário",
}

// Clinic member role strings (stored in DB clinic_members.role column)
const (
	ClinicMemberRoleOwner        = "owner"
	ClinicMemberRoleAdmin        = "admin"
	ClinicMemberRolePsychologist = "psychologist"
	ClinicMemberRoleAssistant    = "assistant"
)

// ClinicMemberRoleToRBACRole maps DB role values to Casbin roles
var ClinicMemberRoleToRBACRole = map[string]Role{
	ClinicMemberRoleOwner:        RoleClinicOwner,
	ClinicMemberRoleAdmin:        RoleClinicAdmin,
	ClinicMemberRolePsychologist: RoleClinicPsychologist,
	ClinicMemberRoleAssistant:    RoleClinicAssistant,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixClinic Domain = "clinic:"
	DomainPrefixUser   Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func ClinicDomain(clinicID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixClinic, clinicID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixClinic) && s[:len(DomainPrefixClinic)] == string(DomainPrefixClinic):
		return reUUID.MatchString(s[len(DomainPrefixClinic):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
