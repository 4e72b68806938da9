// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CareLinksColumns holds the columns for the "care_links" table.
	CareLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "invite_code", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "revoked", "expired"}, Default: "pending"},
		{Name: "share_diary", Type: field.TypeBool, Default: false},
		{Name: "share_mood", Type: field.TypeBool, Default: false},
		{Name: "invited_at", Type: field.TypeTime, Nullable: true},
		{Name: "consented_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoke_reason", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// CareLinksTable holds the schema information for the "care_links" table.
	CareLinksTable = &schema.Table{
		Name:       "care_links",
		Columns:    CareLinksColumns,
		PrimaryKey: []*schema.Column{CareLinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "carelink_psychologist_id_patient_id",
				Unique:  true,
				Columns: []*schema.Column{CareLinksColumns[4], CareLinksColumns[5]},
			},
			{
				Name:    "carelink_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{CareLinksColumns[5], CareLinksColumns[7]},
			},
			{
				Name:    "carelink_invite_code",
				Unique:  false,
				Columns: []*schema.Column{CareLinksColumns[6]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "state", Type: field.TypeString, Nullable: true, Size: 2},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "America/Sao_Paulo"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_slug",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[5]},
			},
		},
	}
	// ClinicMembersColumns holds the columns for the "clinic_members" table.
	ClinicMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "psychologist", "assistant"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ClinicMembersTable holds the schema information for the "clinic_members" table.
	ClinicMembersTable = &schema.Table{
		Name:       "clinic_members",
		Columns:    ClinicMembersColumns,
		PrimaryKey: []*schema.Column{ClinicMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clinic_members_clinics_members",
				Columns:    []*schema.Column{ClinicMembersColumns[4]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "clinic_members_users_user",
				Columns:    []*schema.Column{ClinicMembersColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clinicmember_clinic_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ClinicMembersColumns[4], ClinicMembersColumns[5]},
			},
			{
				Name:    "clinicmember_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicMembersColumns[4]},
			},
			{
				Name:    "clinicmember_user_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicMembersColumns[5]},
			},
		},
	}
	// ClinicPermissionsColumns holds the columns for the "clinic_permissions" table.
	ClinicPermissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resource_type", Type: field.TypeString, Size: 50},
		{Name: "resource_id", Type: field.TypeUUID, Nullable: true},
		{Name: "action", Type: field.TypeString, Size: 20},
		{Name: "granted", Type: field.TypeBool, Default: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ClinicPermissionsTable holds the schema information for the "clinic_permissions" table.
	ClinicPermissionsTable = &schema.Table{
		Name:       "clinic_permissions",
		Columns:    ClinicPermissionsColumns,
		PrimaryKey: []*schema.Column{ClinicPermissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clinic_permissions_clinics_permissions",
				Columns:    []*schema.Column{ClinicPermissionsColumns[6]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "clinic_permissions_users_user",
				Columns:    []*schema.Column{ClinicPermissionsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clinicpermission_clinic_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicPermissionsColumns[6], ClinicPermissionsColumns[7]},
			},
		},
	}
	// ClinicSettingsColumns holds the columns for the "clinic_settings" table.
	ClinicSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "cancellation_window_hours", Type: field.TypeInt, Default: 24},
		{Name: "allow_patient_self_book", Type: field.TypeBool, Default: true},
		{Name: "default_session_duration_min", Type: field.TypeInt, Default: 50},
		{Name: "default_session_price_cents", Type: field.TypeInt64, Default: 0},
		{Name: "working_hours", Type: field.TypeJSON, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID, Unique: true},
	}
	// ClinicSettingsTable holds the schema information for the "clinic_settings" table.
	ClinicSettingsTable = &schema.Table{
		Name:       "clinic_settings",
		Columns:    ClinicSettingsColumns,
		PrimaryKey: []*schema.Column{ClinicSettingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clinic_settings_clinics_settings",
				Columns:    []*schema.Column{ClinicSettingsColumns[8]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// DiaryEntriesColumns holds the columns for the "diary_entries" table.
	DiaryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "entry_date", Type: field.TypeTime},
		{Name: "mood", Type: field.TypeInt},
		{Name: "energy", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "emotions", Type: field.TypeJSON, Nullable: true},
	}
	// DiaryEntriesTable holds the schema information for the "diary_entries" table.
	DiaryEntriesTable = &schema.Table{
		Name:       "diary_entries",
		Columns:    DiaryEntriesColumns,
		PrimaryKey: []*schema.Column{DiaryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diaryentry_patient_id_entry_date",
				Unique:  true,
				Columns: []*schema.Column{DiaryEntriesColumns[3], DiaryEntriesColumns[4]},
			},
			{
				Name:    "diaryentry_patient_id",
				Unique:  false,
				Columns: []*schema.Column{DiaryEntriesColumns[3]},
			},
		},
	}
	// GamificationAwardsColumns holds the columns for the "gamification_awards" table.
	GamificationAwardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "activity_type", Type: field.TypeString, Size: 64},
		{Name: "points", Type: field.TypeInt},
		{Name: "xp", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// GamificationAwardsTable holds the schema information for the "gamification_awards" table.
	GamificationAwardsTable = &schema.Table{
		Name:       "gamification_awards",
		Columns:    GamificationAwardsColumns,
		PrimaryKey: []*schema.Column{GamificationAwardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gamificationaward_user_id_activity_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{GamificationAwardsColumns[2], GamificationAwardsColumns[3], GamificationAwardsColumns[1]},
			},
		},
	}
	// GamificationRewardsColumns holds the columns for the "gamification_rewards" table.
	GamificationRewardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "activity_type", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "points", Type: field.TypeInt},
		{Name: "xp", Type: field.TypeInt},
		{Name: "min_level", Type: field.TypeInt, Default: 1},
		{Name: "max_daily_count", Type: field.TypeInt, Default: 0},
		{Name: "cooldown_minutes", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
	}
	// GamificationRewardsTable holds the schema information for the "gamification_rewards" table.
	GamificationRewardsTable = &schema.Table{
		Name:       "gamification_rewards",
		Columns:    GamificationRewardsColumns,
		PrimaryKey: []*schema.Column{GamificationRewardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gamificationreward_activity_type",
				Unique:  true,
				Columns: []*schema.Column{GamificationRewardsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "is_pushed", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// NotificationPrefsColumns holds the columns for the "notification_prefs" table.
	NotificationPrefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "session_sms", Type: field.TypeBool, Default: true},
		{Name: "session_push", Type: field.TypeBool, Default: true},
		{Name: "diary_reminder_push", Type: field.TypeBool, Default: true},
		{Name: "reward_push", Type: field.TypeBool, Default: true},
	}
	// NotificationPrefsTable holds the schema information for the "notification_prefs" table.
	NotificationPrefsTable = &schema.Table{
		Name:       "notification_prefs",
		Columns:    NotificationPrefsColumns,
		PrimaryKey: []*schema.Column{NotificationPrefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationpref_user_id",
				Unique:  true,
				Columns: []*schema.Column{NotificationPrefsColumns[3]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "file_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "waiting", "inactive", "discharged"}, Default: "active"},
		{Name: "cpf_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "America/Sao_Paulo"},
		{Name: "session_count", Type: field.TypeInt, Default: 0},
		{Name: "total_cancellations", Type: field.TypeInt, Default: 0},
		{Name: "last_cancel_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "has_discount", Type: field.TypeBool, Default: false},
		{Name: "discount_percent", Type: field.TypeInt, Default: 0},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "referral_source", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "chief_complaint", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "emergency_contact_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "emergency_contact_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "assigned_psychologist_id", Type: field.TypeUUID, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_clinics_patients",
				Columns:    []*schema.Column{PatientsColumns[19]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patients_users_user",
				Columns:    []*schema.Column{PatientsColumns[20]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patients_clinic_members_assigned_psychologist",
				Columns:    []*schema.Column{PatientsColumns[21]},
				RefColumns: []*schema.Column{ClinicMembersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_clinic_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[19], PatientsColumns[20]},
			},
			{
				Name:    "patient_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[19]},
			},
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[20]},
			},
			{
				Name:    "patient_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[19], PatientsColumns[5]},
			},
			{
				Name:    "patient_clinic_id_file_number",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[19], PatientsColumns[4]},
			},
		},
	}
	// PsychologistProfilesColumns holds the columns for the "psychologist_profiles" table.
	PsychologistProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "crp_license", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "approach", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "specialties", Type: field.TypeJSON, Nullable: true},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_price_cents", Type: field.TypeInt64, Nullable: true},
		{Name: "session_duration_min", Type: field.TypeInt, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "America/Sao_Paulo"},
		{Name: "working_hours", Type: field.TypeJSON, Nullable: true},
		{Name: "slot_granularity_min", Type: field.TypeInt, Default: 30},
		{Name: "is_accepting", Type: field.TypeBool, Default: true},
		{Name: "clinic_member_id", Type: field.TypeUUID, Unique: true},
	}
	// PsychologistProfilesTable holds the schema information for the "psychologist_profiles" table.
	PsychologistProfilesTable = &schema.Table{
		Name:       "psychologist_profiles",
		Columns:    PsychologistProfilesColumns,
		PrimaryKey: []*schema.Column{PsychologistProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "psychologist_profiles_clinic_members_psychologist_profile",
				Columns:    []*schema.Column{PsychologistProfilesColumns[13]},
				RefColumns: []*schema.Column{ClinicMembersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "America/Sao_Paulo"},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"therapy", "consultation"}, Default: "therapy"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "in_progress", "completed", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "series_id", Type: field.TypeUUID, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "price_cents", Type: field.TypeInt64, Default: 0},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancel_requested_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"patient", "psychologist", "clinic"}},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_clinic_id_psychologist_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[4], SessionsColumns[6]},
			},
			{
				Name:    "session_psychologist_id_status_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4], SessionsColumns[10], SessionsColumns[6]},
			},
			{
				Name:    "session_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5], SessionsColumns[10]},
			},
			{
				Name:    "session_series_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[11], SessionsColumns[6]},
			},
		},
	}
	// UnavailabilitiesColumns holds the columns for the "unavailabilities" table.
	UnavailabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// UnavailabilitiesTable holds the schema information for the "unavailabilities" table.
	UnavailabilitiesTable = &schema.Table{
		Name:       "unavailabilities",
		Columns:    UnavailabilitiesColumns,
		PrimaryKey: []*schema.Column{UnavailabilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unavailability_psychologist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{UnavailabilitiesColumns[3], UnavailabilitiesColumns[5]},
			},
			{
				Name:    "unavailability_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{UnavailabilitiesColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Unique: true, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "must_change_password", Type: field.TypeBool, Default: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "phone_verified", Type: field.TypeBool, Default: false},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "twofa_phone_enabled", Type: field.TypeBool, Default: false},
		{Name: "twofa_email_enabled", Type: field.TypeBool, Default: false},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "America/Sao_Paulo"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserDevicesColumns holds the columns for the "user_devices" table.
	UserDevicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "device_token", Type: field.TypeString, Size: 512},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"web", "android", "ios"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UserDevicesTable holds the schema information for the "user_devices" table.
	UserDevicesTable = &schema.Table{
		Name:       "user_devices",
		Columns:    UserDevicesColumns,
		PrimaryKey: []*schema.Column{UserDevicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userdevice_user_id_device_token",
				Unique:  true,
				Columns: []*schema.Column{UserDevicesColumns[2], UserDevicesColumns[3]},
			},
			{
				Name:    "userdevice_user_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{UserDevicesColumns[2], UserDevicesColumns[5]},
			},
		},
	}
	// UserProgressesColumns holds the columns for the "user_progresses" table.
	UserProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "total_xp", Type: field.TypeInt, Default: 0},
		{Name: "current_level", Type: field.TypeInt, Default: 1},
		{Name: "weekly_points", Type: field.TypeInt, Default: 0},
		{Name: "monthly_points", Type: field.TypeInt, Default: 0},
		{Name: "week_anchor", Type: field.TypeTime, Nullable: true},
		{Name: "month_anchor", Type: field.TypeTime, Nullable: true},
	}
	// UserProgressesTable holds the schema information for the "user_progresses" table.
	UserProgressesTable = &schema.Table{
		Name:       "user_progresses",
		Columns:    UserProgressesColumns,
		PrimaryKey: []*schema.Column{UserProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprogress_user_id",
				Unique:  true,
				Columns: []*schema.Column{UserProgressesColumns[3]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CareLinksTable,
		ClinicsTable,
		ClinicMembersTable,
		ClinicPermissionsTable,
		ClinicSettingsTable,
		DiaryEntriesTable,
		GamificationAwardsTable,
		GamificationRewardsTable,
		NotificationsTable,
		NotificationPrefsTable,
		PatientsTable,
		PsychologistProfilesTable,
		SessionsTable,
		UnavailabilitiesTable,
		UsersTable,
		UserDevicesTable,
		UserProgressesTable,
		UserSessionsTable,
	}
)

func init() {
	ClinicMembersTable.ForeignKeys[0].RefTable = ClinicsTable
	ClinicMembersTable.ForeignKeys[1].RefTable = UsersTable
	ClinicPermissionsTable.ForeignKeys[0].RefTable = ClinicsTable
	ClinicPermissionsTable.ForeignKeys[1].RefTable = UsersTable
	ClinicSettingsTable.ForeignKeys[0].RefTable = ClinicsTable
	PatientsTable.ForeignKeys[0].RefTable = ClinicsTable
	PatientsTable.ForeignKeys[1].RefTable = UsersTable
	PatientsTable.ForeignKeys[2].RefTable = ClinicMembersTable
	PsychologistProfilesTable.ForeignKeys[0].RefTable = ClinicMembersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
