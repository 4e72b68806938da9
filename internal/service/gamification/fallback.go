package gamification

// Reward is the rule set for one activity type. MaxDailyCount zero means
// unlimited; CooldownMinutes zero means no cooldown.
type Reward struct {
	ActivityType    string
	Points          int
	XP              int
	MinLevel        int
	MaxDailyCount   int
	CooldownMinutes int
	Enabled         bool
}

// selfReportable lists the activities a user may claim directly over the
// API. Activities tied to verifiable records (diary entries, attended
// sessions, streaks) are awarded only by the event workers, so clients
// cannot farm them.
var selfReportable = map[string]bool{
	"mood_logged":          true,
	"meditation_completed": true,
}

// SelfReportable reports whether an activity may be claimed by the user
// rather than granted by the system.
func SelfReportable(activityType string) bool {
	return selfReportable[activityType]
}

// fallbackRewards is the compile-time reward table used only when the
// database is unreachable. It must stay in sync with the seeded
// gamification_rewards rows.
var fallbackRewards = map[string]Reward{
	"diary_entry_created": {
		ActivityType:    "diary_entry_created",
		Points:          10,
		XP:              15,
		MinLevel:        1,
		MaxDailyCount:   1,
		CooldownMinutes: 0,
		Enabled:         true,
	},
	"mood_logged": {
		ActivityType:    "mood_logged",
		Points:          5,
		XP:              5,
		MinLevel:        1,
		MaxDailyCount:   3,
		CooldownMinutes: 60,
		Enabled:         true,
	},
	"meditation_completed": {
		ActivityType:    "meditation_completed",
		Points:          15,
		XP:              20,
		MinLevel:        1,
		MaxDailyCount:   0,
		CooldownMinutes: 30,
		Enabled:         true,
	},
	"session_attended": {
		ActivityType:    "session_attended",
		Points:          25,
		XP:              40,
		MinLevel:        1,
		MaxDailyCount:   0,
		CooldownMinutes: 0,
		Enabled:         true,
	},
	"weekly_streak": {
		ActivityType:    "weekly_streak",
		Points:          50,
		XP:              75,
		MinLevel:        2,
		MaxDailyCount:   1,
		CooldownMinutes: 0,
		Enabled:         true,
	},
}
