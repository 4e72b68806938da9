// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/amparasaude/ampara_backend/internal/repo/carelink"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicpermission"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicsettings"
	"github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationaward"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationreward"
	"github.com/amparasaude/ampara_backend/internal/repo/notification"
	"github.com/amparasaude/ampara_backend/internal/repo/notificationpref"
	"github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	"github.com/amparasaude/ampara_backend/internal/repo/session"
	"github.com/amparasaude/ampara_backend/internal/repo/unavailability"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/amparasaude/ampara_backend/internal/repo/userdevice"
	"github.com/amparasaude/ampara_backend/internal/repo/userprogress"
	"github.com/amparasaude/ampara_backend/internal/repo/usersession"
	"github.com/amparasaude/ampara_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	carelinkMixin := schema.CareLink{}.Mixin()
	carelinkMixinFields0 := carelinkMixin[0].Fields()
	_ = carelinkMixinFields0
	carelinkMixinFields1 := carelinkMixin[1].Fields()
	_ = carelinkMixinFields1
	carelinkFields := schema.CareLink{}.Fields()
	_ = carelinkFields
	// carelinkDescCreatedAt is the schema descriptor for created_at field.
	carelinkDescCreatedAt := carelinkMixinFields1[0].Descriptor()
	// carelink.DefaultCreatedAt holds the default value on creation for the created_at field.
	carelink.DefaultCreatedAt = carelinkDescCreatedAt.Default.(func() time.Time)
	// carelinkDescUpdatedAt is the schema descriptor for updated_at field.
	carelinkDescUpdatedAt := carelinkMixinFields1[1].Descriptor()
	// carelink.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	carelink.DefaultUpdatedAt = carelinkDescUpdatedAt.Default.(func() time.Time)
	// carelink.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	carelink.UpdateDefaultUpdatedAt = carelinkDescUpdatedAt.UpdateDefault.(func() time.Time)
	// carelinkDescInviteCode is the schema descriptor for invite_code field.
	carelinkDescInviteCode := carelinkFields[3].Descriptor()
	// carelink.InviteCodeValidator is a validator for the "invite_code" field. It is called by the builders before save.
	carelink.InviteCodeValidator = carelinkDescInviteCode.Validators[0].(func(string) error)
	// carelinkDescShareDiary is the schema descriptor for share_diary field.
	carelinkDescShareDiary := carelinkFields[5].Descriptor()
	// carelink.DefaultShareDiary holds the default value on creation for the share_diary field.
	carelink.DefaultShareDiary = carelinkDescShareDiary.Default.(bool)
	// carelinkDescShareMood is the schema descriptor for share_mood field.
	carelinkDescShareMood := carelinkFields[6].Descriptor()
	// carelink.DefaultShareMood holds the default value on creation for the share_mood field.
	carelink.DefaultShareMood = carelinkDescShareMood.Default.(bool)
	// carelinkDescRevokeReason is the schema descriptor for revoke_reason field.
	carelinkDescRevokeReason := carelinkFields[10].Descriptor()
	// carelink.RevokeReasonValidator is a validator for the "revoke_reason" field. It is called by the builders before save.
	carelink.RevokeReasonValidator = carelinkDescRevokeReason.Validators[0].(func(string) error)
	// carelinkDescID is the schema descriptor for id field.
	carelinkDescID := carelinkMixinFields0[0].Descriptor()
	// carelink.DefaultID holds the default value on creation for the id field.
	carelink.DefaultID = carelinkDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = func() func(string) error {
		validators := clinicDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescSlug is the schema descriptor for slug field.
	clinicDescSlug := clinicFields[1].Descriptor()
	// clinic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	clinic.SlugValidator = func() func(string) error {
		validators := clinicDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescPhone is the schema descriptor for phone field.
	clinicDescPhone := clinicFields[3].Descriptor()
	// clinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinic.PhoneValidator = clinicDescPhone.Validators[0].(func(string) error)
	// clinicDescCity is the schema descriptor for city field.
	clinicDescCity := clinicFields[5].Descriptor()
	// clinic.CityValidator is a validator for the "city" field. It is called by the builders before save.
	clinic.CityValidator = clinicDescCity.Validators[0].(func(string) error)
	// clinicDescState is the schema descriptor for state field.
	clinicDescState := clinicFields[6].Descriptor()
	// clinic.StateValidator is a validator for the "state" field. It is called by the builders before save.
	clinic.StateValidator = clinicDescState.Validators[0].(func(string) error)
	// clinicDescTimezone is the schema descriptor for timezone field.
	clinicDescTimezone := clinicFields[7].Descriptor()
	// clinic.DefaultTimezone holds the default value on creation for the timezone field.
	clinic.DefaultTimezone = clinicDescTimezone.Default.(string)
	// clinic.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	clinic.TimezoneValidator = clinicDescTimezone.Validators[0].(func(string) error)
	// clinicDescIsActive is the schema descriptor for is_active field.
	clinicDescIsActive := clinicFields[8].Descriptor()
	// clinic.DefaultIsActive holds the default value on creation for the is_active field.
	clinic.DefaultIsActive = clinicDescIsActive.Default.(bool)
	// clinicDescIsVerified is the schema descriptor for is_verified field.
	clinicDescIsVerified := clinicFields[9].Descriptor()
	// clinic.DefaultIsVerified holds the default value on creation for the is_verified field.
	clinic.DefaultIsVerified = clinicDescIsVerified.Default.(bool)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	clinicmemberMixin := schema.ClinicMember{}.Mixin()
	clinicmemberMixinFields0 := clinicmemberMixin[0].Fields()
	_ = clinicmemberMixinFields0
	clinicmemberFields := schema.ClinicMember{}.Fields()
	_ = clinicmemberFields
	// clinicmemberDescIsActive is the schema descriptor for is_active field.
	clinicmemberDescIsActive := clinicmemberFields[3].Descriptor()
	// clinicmember.DefaultIsActive holds the default value on creation for the is_active field.
	clinicmember.DefaultIsActive = clinicmemberDescIsActive.Default.(bool)
	// clinicmemberDescJoinedAt is the schema descriptor for joined_at field.
	clinicmemberDescJoinedAt := clinicmemberFields[4].Descriptor()
	// clinicmember.DefaultJoinedAt holds the default value on creation for the joined_at field.
	clinicmember.DefaultJoinedAt = clinicmemberDescJoinedAt.Default.(func() time.Time)
	// clinicmemberDescID is the schema descriptor for id field.
	clinicmemberDescID := clinicmemberMixinFields0[0].Descriptor()
	// clinicmember.DefaultID holds the default value on creation for the id field.
	clinicmember.DefaultID = clinicmemberDescID.Default.(func() uuid.UUID)
	clinicpermissionMixin := schema.ClinicPermission{}.Mixin()
	clinicpermissionMixinFields0 := clinicpermissionMixin[0].Fields()
	_ = clinicpermissionMixinFields0
	clinicpermissionMixinFields1 := clinicpermissionMixin[1].Fields()
	_ = clinicpermissionMixinFields1
	clinicpermissionFields := schema.ClinicPermission{}.Fields()
	_ = clinicpermissionFields
	// clinicpermissionDescCreatedAt is the schema descriptor for created_at field.
	clinicpermissionDescCreatedAt := clinicpermissionMixinFields1[0].Descriptor()
	// clinicpermission.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinicpermission.DefaultCreatedAt = clinicpermissionDescCreatedAt.Default.(func() time.Time)
	// clinicpermissionDescResourceType is the schema descriptor for resource_type field.
	clinicpermissionDescResourceType := clinicpermissionFields[2].Descriptor()
	// clinicpermission.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	clinicpermission.ResourceTypeValidator = func() func(string) error {
		validators := clinicpermissionDescResourceType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(resource_type string) error {
			for _, fn := range fns {
				if err := fn(resource_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicpermissionDescAction is the schema descriptor for action field.
	clinicpermissionDescAction := clinicpermissionFields[4].Descriptor()
	// clinicpermission.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	clinicpermission.ActionValidator = func() func(string) error {
		validators := clinicpermissionDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicpermissionDescGranted is the schema descriptor for granted field.
	clinicpermissionDescGranted := clinicpermissionFields[5].Descriptor()
	// clinicpermission.DefaultGranted holds the default value on creation for the granted field.
	clinicpermission.DefaultGranted = clinicpermissionDescGranted.Default.(bool)
	// clinicpermissionDescID is the schema descriptor for id field.
	clinicpermissionDescID := clinicpermissionMixinFields0[0].Descriptor()
	// clinicpermission.DefaultID holds the default value on creation for the id field.
	clinicpermission.DefaultID = clinicpermissionDescID.Default.(func() uuid.UUID)
	clinicsettingsMixin := schema.ClinicSettings{}.Mixin()
	clinicsettingsMixinFields0 := clinicsettingsMixin[0].Fields()
	_ = clinicsettingsMixinFields0
	clinicsettingsMixinFields1 := clinicsettingsMixin[1].Fields()
	_ = clinicsettingsMixinFields1
	clinicsettingsFields := schema.ClinicSettings{}.Fields()
	_ = clinicsettingsFields
	// clinicsettingsDescCreatedAt is the schema descriptor for created_at field.
	clinicsettingsDescCreatedAt := clinicsettingsMixinFields1[0].Descriptor()
	// clinicsettings.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinicsettings.DefaultCreatedAt = clinicsettingsDescCreatedAt.Default.(func() time.Time)
	// clinicsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	clinicsettingsDescUpdatedAt := clinicsettingsMixinFields1[1].Descriptor()
	// clinicsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinicsettings.DefaultUpdatedAt = clinicsettingsDescUpdatedAt.Default.(func() time.Time)
	// clinicsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinicsettings.UpdateDefaultUpdatedAt = clinicsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicsettingsDescCancellationWindowHours is the schema descriptor for cancellation_window_hours field.
	clinicsettingsDescCancellationWindowHours := clinicsettingsFields[1].Descriptor()
	// clinicsettings.DefaultCancellationWindowHours holds the default value on creation for the cancellation_window_hours field.
	clinicsettings.DefaultCancellationWindowHours = clinicsettingsDescCancellationWindowHours.Default.(int)
	// clinicsettingsDescAllowPatientSelfBook is the schema descriptor for allow_patient_self_book field.
	clinicsettingsDescAllowPatientSelfBook := clinicsettingsFields[2].Descriptor()
	// clinicsettings.DefaultAllowPatientSelfBook holds the default value on creation for the allow_patient_self_book field.
	clinicsettings.DefaultAllowPatientSelfBook = clinicsettingsDescAllowPatientSelfBook.Default.(bool)
	// clinicsettingsDescDefaultSessionDurationMin is the schema descriptor for default_session_duration_min field.
	clinicsettingsDescDefaultSessionDurationMin := clinicsettingsFields[3].Descriptor()
	// clinicsettings.DefaultDefaultSessionDurationMin holds the default value on creation for the default_session_duration_min field.
	clinicsettings.DefaultDefaultSessionDurationMin = clinicsettingsDescDefaultSessionDurationMin.Default.(int)
	// clinicsettingsDescDefaultSessionPriceCents is the schema descriptor for default_session_price_cents field.
	clinicsettingsDescDefaultSessionPriceCents := clinicsettingsFields[4].Descriptor()
	// clinicsettings.DefaultDefaultSessionPriceCents holds the default value on creation for the default_session_price_cents field.
	clinicsettings.DefaultDefaultSessionPriceCents = clinicsettingsDescDefaultSessionPriceCents.Default.(int64)
	// clinicsettingsDescID is the schema descriptor for id field.
	clinicsettingsDescID := clinicsettingsMixinFields0[0].Descriptor()
	// clinicsettings.DefaultID holds the default value on creation for the id field.
	clinicsettings.DefaultID = clinicsettingsDescID.Default.(func() uuid.UUID)
	diaryentryMixin := schema.DiaryEntry{}.Mixin()
	diaryentryMixinFields0 := diaryentryMixin[0].Fields()
	_ = diaryentryMixinFields0
	diaryentryMixinFields1 := diaryentryMixin[1].Fields()
	_ = diaryentryMixinFields1
	diaryentryFields := schema.DiaryEntry{}.Fields()
	_ = diaryentryFields
	// diaryentryDescCreatedAt is the schema descriptor for created_at field.
	diaryentryDescCreatedAt := diaryentryMixinFields1[0].Descriptor()
	// diaryentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	diaryentry.DefaultCreatedAt = diaryentryDescCreatedAt.Default.(func() time.Time)
	// diaryentryDescUpdatedAt is the schema descriptor for updated_at field.
	diaryentryDescUpdatedAt := diaryentryMixinFields1[1].Descriptor()
	// diaryentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	diaryentry.DefaultUpdatedAt = diaryentryDescUpdatedAt.Default.(func() time.Time)
	// diaryentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	diaryentry.UpdateDefaultUpdatedAt = diaryentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// diaryentryDescMood is the schema descriptor for mood field.
	diaryentryDescMood := diaryentryFields[2].Descriptor()
	// diaryentry.MoodValidator is a validator for the "mood" field. It is called by the builders before save.
	diaryentry.MoodValidator = diaryentryDescMood.Validators[0].(func(int) error)
	// diaryentryDescEnergy is the schema descriptor for energy field.
	diaryentryDescEnergy := diaryentryFields[3].Descriptor()
	// diaryentry.EnergyValidator is a validator for the "energy" field. It is called by the builders before save.
	diaryentry.EnergyValidator = diaryentryDescEnergy.Validators[0].(func(int) error)
	// diaryentryDescID is the schema descriptor for id field.
	diaryentryDescID := diaryentryMixinFields0[0].Descriptor()
	// diaryentry.DefaultID holds the default value on creation for the id field.
	diaryentry.DefaultID = diaryentryDescID.Default.(func() uuid.UUID)
	gamificationawardMixin := schema.GamificationAward{}.Mixin()
	gamificationawardMixinFields0 := gamificationawardMixin[0].Fields()
	_ = gamificationawardMixinFields0
	gamificationawardMixinFields1 := gamificationawardMixin[1].Fields()
	_ = gamificationawardMixinFields1
	gamificationawardFields := schema.GamificationAward{}.Fields()
	_ = gamificationawardFields
	// gamificationawardDescCreatedAt is the schema descriptor for created_at field.
	gamificationawardDescCreatedAt := gamificationawardMixinFields1[0].Descriptor()
	// gamificationaward.DefaultCreatedAt holds the default value on creation for the created_at field.
	gamificationaward.DefaultCreatedAt = gamificationawardDescCreatedAt.Default.(func() time.Time)
	// gamificationawardDescActivityType is the schema descriptor for activity_type field.
	gamificationawardDescActivityType := gamificationawardFields[1].Descriptor()
	// gamificationaward.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	gamificationaward.ActivityTypeValidator = func() func(string) error {
		validators := gamificationawardDescActivityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(activity_type string) error {
			for _, fn := range fns {
				if err := fn(activity_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// gamificationawardDescID is the schema descriptor for id field.
	gamificationawardDescID := gamificationawardMixinFields0[0].Descriptor()
	// gamificationaward.DefaultID holds the default value on creation for the id field.
	gamificationaward.DefaultID = gamificationawardDescID.Default.(func() uuid.UUID)
	gamificationrewardMixin := schema.GamificationReward{}.Mixin()
	gamificationrewardMixinFields0 := gamificationrewardMixin[0].Fields()
	_ = gamificationrewardMixinFields0
	gamificationrewardMixinFields1 := gamificationrewardMixin[1].Fields()
	_ = gamificationrewardMixinFields1
	gamificationrewardFields := schema.GamificationReward{}.Fields()
	_ = gamificationrewardFields
	// gamificationrewardDescCreatedAt is the schema descriptor for created_at field.
	gamificationrewardDescCreatedAt := gamificationrewardMixinFields1[0].Descriptor()
	// gamificationreward.DefaultCreatedAt holds the default value on creation for the created_at field.
	gamificationreward.DefaultCreatedAt = gamificationrewardDescCreatedAt.Default.(func() time.Time)
	// gamificationrewardDescUpdatedAt is the schema descriptor for updated_at field.
	gamificationrewardDescUpdatedAt := gamificationrewardMixinFields1[1].Descriptor()
	// gamificationreward.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	gamificationreward.DefaultUpdatedAt = gamificationrewardDescUpdatedAt.Default.(func() time.Time)
	// gamificationreward.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	gamificationreward.UpdateDefaultUpdatedAt = gamificationrewardDescUpdatedAt.UpdateDefault.(func() time.Time)
	// gamificationrewardDescActivityType is the schema descriptor for activity_type field.
	gamificationrewardDescActivityType := gamificationrewardFields[0].Descriptor()
	// gamificationreward.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	gamificationreward.ActivityTypeValidator = func() func(string) error {
		validators := gamificationrewardDescActivityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(activity_type string) error {
			for _, fn := range fns {
				if err := fn(activity_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// gamificationrewardDescPoints is the schema descriptor for points field.
	gamificationrewardDescPoints := gamificationrewardFields[1].Descriptor()
	// gamificationreward.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	gamificationreward.PointsValidator = gamificationrewardDescPoints.Validators[0].(func(int) error)
	// gamificationrewardDescXp is the schema descriptor for xp field.
	gamificationrewardDescXp := gamificationrewardFields[2].Descriptor()
	// gamificationreward.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	gamificationreward.XpValidator = gamificationrewardDescXp.Validators[0].(func(int) error)
	// gamificationrewardDescMinLevel is the schema descriptor for min_level field.
	gamificationrewardDescMinLevel := gamificationrewardFields[3].Descriptor()
	// gamificationreward.DefaultMinLevel holds the default value on creation for the min_level field.
	gamificationreward.DefaultMinLevel = gamificationrewardDescMinLevel.Default.(int)
	// gamificationrewardDescMaxDailyCount is the schema descriptor for max_daily_count field.
	gamificationrewardDescMaxDailyCount := gamificationrewardFields[4].Descriptor()
	// gamificationreward.DefaultMaxDailyCount holds the default value on creation for the max_daily_count field.
	gamificationreward.DefaultMaxDailyCount = gamificationrewardDescMaxDailyCount.Default.(int)
	// gamificationrewardDescCooldownMinutes is the schema descriptor for cooldown_minutes field.
	gamificationrewardDescCooldownMinutes := gamificationrewardFields[5].Descriptor()
	// gamificationreward.DefaultCooldownMinutes holds the default value on creation for the cooldown_minutes field.
	gamificationreward.DefaultCooldownMinutes = gamificationrewardDescCooldownMinutes.Default.(int)
	// gamificationrewardDescEnabled is the schema descriptor for enabled field.
	gamificationrewardDescEnabled := gamificationrewardFields[6].Descriptor()
	// gamificationreward.DefaultEnabled holds the default value on creation for the enabled field.
	gamificationreward.DefaultEnabled = gamificationrewardDescEnabled.Default.(bool)
	// gamificationrewardDescID is the schema descriptor for id field.
	gamificationrewardDescID := gamificationrewardMixinFields0[0].Descriptor()
	// gamificationreward.DefaultID holds the default value on creation for the id field.
	gamificationreward.DefaultID = gamificationrewardDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescIsPushed is the schema descriptor for is_pushed field.
	notificationDescIsPushed := notificationFields[6].Descriptor()
	// notification.DefaultIsPushed holds the default value on creation for the is_pushed field.
	notification.DefaultIsPushed = notificationDescIsPushed.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	notificationprefMixin := schema.NotificationPref{}.Mixin()
	notificationprefMixinFields0 := notificationprefMixin[0].Fields()
	_ = notificationprefMixinFields0
	notificationprefMixinFields1 := notificationprefMixin[1].Fields()
	_ = notificationprefMixinFields1
	notificationprefFields := schema.NotificationPref{}.Fields()
	_ = notificationprefFields
	// notificationprefDescCreatedAt is the schema descriptor for created_at field.
	notificationprefDescCreatedAt := notificationprefMixinFields1[0].Descriptor()
	// notificationpref.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationpref.DefaultCreatedAt = notificationprefDescCreatedAt.Default.(func() time.Time)
	// notificationprefDescUpdatedAt is the schema descriptor for updated_at field.
	notificationprefDescUpdatedAt := notificationprefMixinFields1[1].Descriptor()
	// notificationpref.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationpref.DefaultUpdatedAt = notificationprefDescUpdatedAt.Default.(func() time.Time)
	// notificationpref.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationpref.UpdateDefaultUpdatedAt = notificationprefDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationprefDescSessionSms is the schema descriptor for session_sms field.
	notificationprefDescSessionSms := notificationprefFields[1].Descriptor()
	// notificationpref.DefaultSessionSms holds the default value on creation for the session_sms field.
	notificationpref.DefaultSessionSms = notificationprefDescSessionSms.Default.(bool)
	// notificationprefDescSessionPush is the schema descriptor for session_push field.
	notificationprefDescSessionPush := notificationprefFields[2].Descriptor()
	// notificationpref.DefaultSessionPush holds the default value on creation for the session_push field.
	notificationpref.DefaultSessionPush = notificationprefDescSessionPush.Default.(bool)
	// notificationprefDescDiaryReminderPush is the schema descriptor for diary_reminder_push field.
	notificationprefDescDiaryReminderPush := notificationprefFields[3].Descriptor()
	// notificationpref.DefaultDiaryReminderPush holds the default value on creation for the diary_reminder_push field.
	notificationpref.DefaultDiaryReminderPush = notificationprefDescDiaryReminderPush.Default.(bool)
	// notificationprefDescRewardPush is the schema descriptor for reward_push field.
	notificationprefDescRewardPush := notificationprefFields[4].Descriptor()
	// notificationpref.DefaultRewardPush holds the default value on creation for the reward_push field.
	notificationpref.DefaultRewardPush = notificationprefDescRewardPush.Default.(bool)
	// notificationprefDescID is the schema descriptor for id field.
	notificationprefDescID := notificationprefMixinFields0[0].Descriptor()
	// notificationpref.DefaultID holds the default value on creation for the id field.
	notificationpref.DefaultID = notificationprefDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFileNumber is the schema descriptor for file_number field.
	patientDescFileNumber := patientFields[3].Descriptor()
	// patient.FileNumberValidator is a validator for the "file_number" field. It is called by the builders before save.
	patient.FileNumberValidator = patientDescFileNumber.Validators[0].(func(string) error)
	// patientDescTimezone is the schema descriptor for timezone field.
	patientDescTimezone := patientFields[7].Descriptor()
	// patient.DefaultTimezone holds the default value on creation for the timezone field.
	patient.DefaultTimezone = patientDescTimezone.Default.(string)
	// patient.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	patient.TimezoneValidator = patientDescTimezone.Validators[0].(func(string) error)
	// patientDescSessionCount is the schema descriptor for session_count field.
	patientDescSessionCount := patientFields[8].Descriptor()
	// patient.DefaultSessionCount holds the default value on creation for the session_count field.
	patient.DefaultSessionCount = patientDescSessionCount.Default.(int)
	// patientDescTotalCancellations is the schema descriptor for total_cancellations field.
	patientDescTotalCancellations := patientFields[9].Descriptor()
	// patient.DefaultTotalCancellations holds the default value on creation for the total_cancellations field.
	patient.DefaultTotalCancellations = patientDescTotalCancellations.Default.(int)
	// patientDescHasDiscount is the schema descriptor for has_discount field.
	patientDescHasDiscount := patientFields[11].Descriptor()
	// patient.DefaultHasDiscount holds the default value on creation for the has_discount field.
	patient.DefaultHasDiscount = patientDescHasDiscount.Default.(bool)
	// patientDescDiscountPercent is the schema descriptor for discount_percent field.
	patientDescDiscountPercent := patientFields[12].Descriptor()
	// patient.DefaultDiscountPercent holds the default value on creation for the discount_percent field.
	patient.DefaultDiscountPercent = patientDescDiscountPercent.Default.(int)
	// patientDescReferralSource is the schema descriptor for referral_source field.
	patientDescReferralSource := patientFields[14].Descriptor()
	// patient.ReferralSourceValidator is a validator for the "referral_source" field. It is called by the builders before save.
	patient.ReferralSourceValidator = patientDescReferralSource.Validators[0].(func(string) error)
	// patientDescEmergencyContactName is the schema descriptor for emergency_contact_name field.
	patientDescEmergencyContactName := patientFields[16].Descriptor()
	// patient.EmergencyContactNameValidator is a validator for the "emergency_contact_name" field. It is called by the builders before save.
	patient.EmergencyContactNameValidator = patientDescEmergencyContactName.Validators[0].(func(string) error)
	// patientDescEmergencyContactPhone is the schema descriptor for emergency_contact_phone field.
	patientDescEmergencyContactPhone := patientFields[17].Descriptor()
	// patient.EmergencyContactPhoneValidator is a validator for the "emergency_contact_phone" field. It is called by the builders before save.
	patient.EmergencyContactPhoneValidator = patientDescEmergencyContactPhone.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	psychologistprofileMixin := schema.PsychologistProfile{}.Mixin()
	psychologistprofileMixinFields0 := psychologistprofileMixin[0].Fields()
	_ = psychologistprofileMixinFields0
	psychologistprofileMixinFields1 := psychologistprofileMixin[1].Fields()
	_ = psychologistprofileMixinFields1
	psychologistprofileFields := schema.PsychologistProfile{}.Fields()
	_ = psychologistprofileFields
	// psychologistprofileDescCreatedAt is the schema descriptor for created_at field.
	psychologistprofileDescCreatedAt := psychologistprofileMixinFields1[0].Descriptor()
	// psychologistprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	psychologistprofile.DefaultCreatedAt = psychologistprofileDescCreatedAt.Default.(func() time.Time)
	// psychologistprofileDescUpdatedAt is the schema descriptor for updated_at field.
	psychologistprofileDescUpdatedAt := psychologistprofileMixinFields1[1].Descriptor()
	// psychologistprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	psychologistprofile.DefaultUpdatedAt = psychologistprofileDescUpdatedAt.Default.(func() time.Time)
	// psychologistprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	psychologistprofile.UpdateDefaultUpdatedAt = psychologistprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// psychologistprofileDescCrpLicense is the schema descriptor for crp_license field.
	psychologistprofileDescCrpLicense := psychologistprofileFields[1].Descriptor()
	// psychologistprofile.CrpLicenseValidator is a validator for the "crp_license" field. It is called by the builders before save.
	psychologistprofile.CrpLicenseValidator = psychologistprofileDescCrpLicense.Validators[0].(func(string) error)
	// psychologistprofileDescApproach is the schema descriptor for approach field.
	psychologistprofileDescApproach := psychologistprofileFields[2].Descriptor()
	// psychologistprofile.ApproachValidator is a validator for the "approach" field. It is called by the builders before save.
	psychologistprofile.ApproachValidator = psychologistprofileDescApproach.Validators[0].(func(string) error)
	// psychologistprofileDescTimezone is the schema descriptor for timezone field.
	psychologistprofileDescTimezone := psychologistprofileFields[7].Descriptor()
	// psychologistprofile.DefaultTimezone holds the default value on creation for the timezone field.
	psychologistprofile.DefaultTimezone = psychologistprofileDescTimezone.Default.(string)
	// psychologistprofile.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	psychologistprofile.TimezoneValidator = psychologistprofileDescTimezone.Validators[0].(func(string) error)
	// psychologistprofileDescSlotGranularityMin is the schema descriptor for slot_granularity_min field.
	psychologistprofileDescSlotGranularityMin := psychologistprofileFields[9].Descriptor()
	// psychologistprofile.DefaultSlotGranularityMin holds the default value on creation for the slot_granularity_min field.
	psychologistprofile.DefaultSlotGranularityMin = psychologistprofileDescSlotGranularityMin.Default.(int)
	// psychologistprofileDescIsAccepting is the schema descriptor for is_accepting field.
	psychologistprofileDescIsAccepting := psychologistprofileFields[10].Descriptor()
	// psychologistprofile.DefaultIsAccepting holds the default value on creation for the is_accepting field.
	psychologistprofile.DefaultIsAccepting = psychologistprofileDescIsAccepting.Default.(bool)
	// psychologistprofileDescID is the schema descriptor for id field.
	psychologistprofileDescID := psychologistprofileMixinFields0[0].Descriptor()
	// psychologistprofile.DefaultID holds the default value on creation for the id field.
	psychologistprofile.DefaultID = psychologistprofileDescID.Default.(func() uuid.UUID)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionMixinFields1 := sessionMixin[1].Fields()
	_ = sessionMixinFields1
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields1[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionMixinFields1[1].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescDurationMinutes is the schema descriptor for duration_minutes field.
	sessionDescDurationMinutes := sessionFields[4].Descriptor()
	// session.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	session.DurationMinutesValidator = sessionDescDurationMinutes.Validators[0].(func(int) error)
	// sessionDescTimezone is the schema descriptor for timezone field.
	sessionDescTimezone := sessionFields[5].Descriptor()
	// session.DefaultTimezone holds the default value on creation for the timezone field.
	session.DefaultTimezone = sessionDescTimezone.Default.(string)
	// session.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	session.TimezoneValidator = sessionDescTimezone.Validators[0].(func(string) error)
	// sessionDescPriceCents is the schema descriptor for price_cents field.
	sessionDescPriceCents := sessionFields[10].Descriptor()
	// session.DefaultPriceCents holds the default value on creation for the price_cents field.
	session.DefaultPriceCents = sessionDescPriceCents.Default.(int64)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionMixinFields0[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	unavailabilityMixin := schema.Unavailability{}.Mixin()
	unavailabilityMixinFields0 := unavailabilityMixin[0].Fields()
	_ = unavailabilityMixinFields0
	unavailabilityMixinFields1 := unavailabilityMixin[1].Fields()
	_ = unavailabilityMixinFields1
	unavailabilityFields := schema.Unavailability{}.Fields()
	_ = unavailabilityFields
	// unavailabilityDescCreatedAt is the schema descriptor for created_at field.
	unavailabilityDescCreatedAt := unavailabilityMixinFields1[0].Descriptor()
	// unavailability.DefaultCreatedAt holds the default value on creation for the created_at field.
	unavailability.DefaultCreatedAt = unavailabilityDescCreatedAt.Default.(func() time.Time)
	// unavailabilityDescUpdatedAt is the schema descriptor for updated_at field.
	unavailabilityDescUpdatedAt := unavailabilityMixinFields1[1].Descriptor()
	// unavailability.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	unavailability.DefaultUpdatedAt = unavailabilityDescUpdatedAt.Default.(func() time.Time)
	// unavailability.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	unavailability.UpdateDefaultUpdatedAt = unavailabilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// unavailabilityDescReason is the schema descriptor for reason field.
	unavailabilityDescReason := unavailabilityFields[4].Descriptor()
	// unavailability.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	unavailability.ReasonValidator = unavailabilityDescReason.Validators[0].(func(string) error)
	// unavailabilityDescID is the schema descriptor for id field.
	unavailabilityDescID := unavailabilityMixinFields0[0].Descriptor()
	// unavailability.DefaultID holds the default value on creation for the id field.
	unavailability.DefaultID = unavailabilityDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescMustChangePassword is the schema descriptor for must_change_password field.
	userDescMustChangePassword := userFields[5].Descriptor()
	// user.DefaultMustChangePassword holds the default value on creation for the must_change_password field.
	user.DefaultMustChangePassword = userDescMustChangePassword.Default.(bool)
	// userDescPhoneVerified is the schema descriptor for phone_verified field.
	userDescPhoneVerified := userFields[7].Descriptor()
	// user.DefaultPhoneVerified holds the default value on creation for the phone_verified field.
	user.DefaultPhoneVerified = userDescPhoneVerified.Default.(bool)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[8].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescTwofaPhoneEnabled is the schema descriptor for twofa_phone_enabled field.
	userDescTwofaPhoneEnabled := userFields[9].Descriptor()
	// user.DefaultTwofaPhoneEnabled holds the default value on creation for the twofa_phone_enabled field.
	user.DefaultTwofaPhoneEnabled = userDescTwofaPhoneEnabled.Default.(bool)
	// userDescTwofaEmailEnabled is the schema descriptor for twofa_email_enabled field.
	userDescTwofaEmailEnabled := userFields[10].Descriptor()
	// user.DefaultTwofaEmailEnabled holds the default value on creation for the twofa_email_enabled field.
	user.DefaultTwofaEmailEnabled = userDescTwofaEmailEnabled.Default.(bool)
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[11].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// user.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	user.TimezoneValidator = userDescTimezone.Validators[0].(func(string) error)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[13].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescMetadata is the schema descriptor for metadata field.
	userDescMetadata := userFields[16].Descriptor()
	// user.DefaultMetadata holds the default value on creation for the metadata field.
	user.DefaultMetadata = userDescMetadata.Default.(map[string]interface{})
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	userdeviceMixin := schema.UserDevice{}.Mixin()
	userdeviceMixinFields0 := userdeviceMixin[0].Fields()
	_ = userdeviceMixinFields0
	userdeviceMixinFields1 := userdeviceMixin[1].Fields()
	_ = userdeviceMixinFields1
	userdeviceFields := schema.UserDevice{}.Fields()
	_ = userdeviceFields
	// userdeviceDescCreatedAt is the schema descriptor for created_at field.
	userdeviceDescCreatedAt := userdeviceMixinFields1[0].Descriptor()
	// userdevice.DefaultCreatedAt holds the default value on creation for the created_at field.
	userdevice.DefaultCreatedAt = userdeviceDescCreatedAt.Default.(func() time.Time)
	// userdeviceDescDeviceToken is the schema descriptor for device_token field.
	userdeviceDescDeviceToken := userdeviceFields[1].Descriptor()
	// userdevice.DeviceTokenValidator is a validator for the "device_token" field. It is called by the builders before save.
	userdevice.DeviceTokenValidator = userdeviceDescDeviceToken.Validators[0].(func(string) error)
	// userdeviceDescIsActive is the schema descriptor for is_active field.
	userdeviceDescIsActive := userdeviceFields[3].Descriptor()
	// userdevice.DefaultIsActive holds the default value on creation for the is_active field.
	userdevice.DefaultIsActive = userdeviceDescIsActive.Default.(bool)
	// userdeviceDescID is the schema descriptor for id field.
	userdeviceDescID := userdeviceMixinFields0[0].Descriptor()
	// userdevice.DefaultID holds the default value on creation for the id field.
	userdevice.DefaultID = userdeviceDescID.Default.(func() uuid.UUID)
	userprogressMixin := schema.UserProgress{}.Mixin()
	userprogressMixinFields0 := userprogressMixin[0].Fields()
	_ = userprogressMixinFields0
	userprogressMixinFields1 := userprogressMixin[1].Fields()
	_ = userprogressMixinFields1
	userprogressFields := schema.UserProgress{}.Fields()
	_ = userprogressFields
	// userprogressDescCreatedAt is the schema descriptor for created_at field.
	userprogressDescCreatedAt := userprogressMixinFields1[0].Descriptor()
	// userprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprogress.DefaultCreatedAt = userprogressDescCreatedAt.Default.(func() time.Time)
	// userprogressDescUpdatedAt is the schema descriptor for updated_at field.
	userprogressDescUpdatedAt := userprogressMixinFields1[1].Descriptor()
	// userprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprogress.DefaultUpdatedAt = userprogressDescUpdatedAt.Default.(func() time.Time)
	// userprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprogress.UpdateDefaultUpdatedAt = userprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userprogressDescTotalPoints is the schema descriptor for total_points field.
	userprogressDescTotalPoints := userprogressFields[1].Descriptor()
	// userprogress.DefaultTotalPoints holds the default value on creation for the total_points field.
	userprogress.DefaultTotalPoints = userprogressDescTotalPoints.Default.(int)
	// userprogress.TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	userprogress.TotalPointsValidator = userprogressDescTotalPoints.Validators[0].(func(int) error)
	// userprogressDescTotalXp is the schema descriptor for total_xp field.
	userprogressDescTotalXp := userprogressFields[2].Descriptor()
	// userprogress.DefaultTotalXp holds the default value on creation for the total_xp field.
	userprogress.DefaultTotalXp = userprogressDescTotalXp.Default.(int)
	// userprogress.TotalXpValidator is a validator for the "total_xp" field. It is called by the builders before save.
	userprogress.TotalXpValidator = userprogressDescTotalXp.Validators[0].(func(int) error)
	// userprogressDescCurrentLevel is the schema descriptor for current_level field.
	userprogressDescCurrentLevel := userprogressFields[3].Descriptor()
	// userprogress.DefaultCurrentLevel holds the default value on creation for the current_level field.
	userprogress.DefaultCurrentLevel = userprogressDescCurrentLevel.Default.(int)
	// userprogress.CurrentLevelValidator is a validator for the "current_level" field. It is called by the builders before save.
	userprogress.CurrentLevelValidator = userprogressDescCurrentLevel.Validators[0].(func(int) error)
	// userprogressDescWeeklyPoints is the schema descriptor for weekly_points field.
	userprogressDescWeeklyPoints := userprogressFields[4].Descriptor()
	// userprogress.DefaultWeeklyPoints holds the default value on creation for the weekly_points field.
	userprogress.DefaultWeeklyPoints = userprogressDescWeeklyPoints.Default.(int)
	// userprogressDescMonthlyPoints is the schema descriptor for monthly_points field.
	userprogressDescMonthlyPoints := userprogressFields[5].Descriptor()
	// userprogress.DefaultMonthlyPoints holds the default value on creation for the monthly_points field.
	userprogress.DefaultMonthlyPoints = userprogressDescMonthlyPoints.Default.(int)
	// userprogressDescID is the schema descriptor for id field.
	userprogressDescID := userprogressMixinFields0[0].Descriptor()
	// userprogress.DefaultID holds the default value on creation for the id field.
	userprogress.DefaultID = userprogressDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
