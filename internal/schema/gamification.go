package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// GamificationReward — per-activity reward configuration
// ---------------------------------------------------------------------------

// GamificationReward configures how one activity type is rewarded. Rows are
// served through a TTL cache; a compile-time fallback table covers store
// outages.
type GamificationReward struct {
	ent.Schema
}

func (GamificationReward) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (GamificationReward) Fields() []ent.Field {
	return []ent.Field{
		field.String("activity_type").
			Unique().
			NotEmpty().
			MaxLen(64).
			Comment("e.g. diary_entry, meditation_completed, session_completed"),

		field.Int("points").
			NonNegative(),

		field.Int("xp").
			NonNegative(),

		field.Int("min_level").
			Default(1).
			Comment("User must be at least this level to qualify"),

		field.Int("max_daily_count").
			Default(0).
			Comment("Max qualifying awards per calendar day; 0 = unlimited"),

		field.Int("cooldown_minutes").
			Default(0).
			Comment("Minimum minutes between two qualifying awards; 0 = none"),

		field.Bool("enabled").
			Default(true),
	}
}

func (GamificationReward) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_type").Unique(),
	}
}

// ---------------------------------------------------------------------------
// GamificationAward — append-only audit of granted rewards
// ---------------------------------------------------------------------------

type GamificationAward struct {
	ent.Schema
}

func (GamificationAward) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (GamificationAward) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("activity_type").
			NotEmpty().
			MaxLen(64),

		field.Int("points"),

		field.Int("xp"),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Comment("Caller-supplied context, e.g. the session or diary id"),
	}
}

func (GamificationAward) Indexes() []ent.Index {
	return []ent.Index{
		// cooldown and daily-count guards scan this
		index.Fields("user_id", "activity_type", "created_at"),
	}
}

// ---------------------------------------------------------------------------
// UserProgress — cumulative XP, level and rolling counters
// ---------------------------------------------------------------------------

type UserProgress struct {
	ent.Schema
}

func (UserProgress) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (UserProgress) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Int("total_points").
			Default(0).
			NonNegative(),

		field.Int("total_xp").
			Default(0).
			NonNegative(),

		field.Int("current_level").
			Default(1).
			Min(1),

		field.Int("weekly_points").
			Default(0),

		field.Int("monthly_points").
			Default(0),

		field.Time("week_anchor").
			Optional().
			Nillable().
			Comment("Monday of the ISO week weekly_points counts; rolls over on mismatch"),

		field.Time("month_anchor").
			Optional().
			Nillable().
			Comment("First day of the month monthly_points counts"),
	}
}

func (UserProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
