// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CareLink is the predicate function for carelink builders.
type CareLink func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// ClinicMember is the predicate function for clinicmember builders.
type ClinicMember func(*sql.Selector)

// ClinicPermission is the predicate function for clinicpermission builders.
type ClinicPermission func(*sql.Selector)

// ClinicSettings is the predicate function for clinicsettings builders.
type ClinicSettings func(*sql.Selector)

// DiaryEntry is the predicate function for diaryentry builders.
type DiaryEntry func(*sql.Selector)

// GamificationAward is the predicate function for gamificationaward builders.
type GamificationAward func(*sql.Selector)

// GamificationReward is the predicate function for gamificationreward builders.
type GamificationReward func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// NotificationPref is the predicate function for notificationpref builders.
type NotificationPref func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PsychologistProfile is the predicate function for psychologistprofile builders.
type PsychologistProfile func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Unavailability is the predicate function for unavailability builders.
type Unavailability func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserDevice is the predicate function for userdevice builders.
type UserDevice func(*sql.Selector)

// UserProgress is the predicate function for userprogress builders.
type UserProgress func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
