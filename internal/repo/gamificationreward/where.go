// Code generated by ent, DO NOT EDIT.

package gamificationreward

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldUpdatedAt, v))
}

// ActivityType applies equality check predicate on the "activity_type" field. It's identical to ActivityTypeEQ.
func ActivityType(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldActivityType, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldPoints, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldXp, v))
}

// MinLevel applies equality check predicate on the "min_level" field. It's identical to MinLevelEQ.
func MinLevel(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldMinLevel, v))
}

// MaxDailyCount applies equality check predicate on the "max_daily_count" field. It's identical to MaxDailyCountEQ.
func MaxDailyCount(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldMaxDailyCount, v))
}

// CooldownMinutes applies equality check predicate on the "cooldown_minutes" field. It's identical to CooldownMinutesEQ.
func CooldownMinutes(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldCooldownMinutes, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldUpdatedAt, v))
}

// ActivityTypeEQ applies the EQ predicate on the "activity_type" field.
func ActivityTypeEQ(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldActivityType, v))
}

// ActivityTypeNEQ applies the NEQ predicate on the "activity_type" field.
func ActivityTypeNEQ(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldActivityType, v))
}

// ActivityTypeIn applies the In predicate on the "activity_type" field.
func ActivityTypeIn(vs ...string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldActivityType, vs...))
}

// ActivityTypeNotIn applies the NotIn predicate on the "activity_type" field.
func ActivityTypeNotIn(vs ...string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldActivityType, vs...))
}

// ActivityTypeGT applies the GT predicate on the "activity_type" field.
func ActivityTypeGT(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldActivityType, v))
}

// ActivityTypeGTE applies the GTE predicate on the "activity_type" field.
func ActivityTypeGTE(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldActivityType, v))
}

// ActivityTypeLT applies the LT predicate on the "activity_type" field.
func ActivityTypeLT(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldActivityType, v))
}

// ActivityTypeLTE applies the LTE predicate on the "activity_type" field.
func ActivityTypeLTE(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldActivityType, v))
}

// ActivityTypeContains applies the Contains predicate on the "activity_type" field.
func ActivityTypeContains(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldContains(FieldActivityType, v))
}

// ActivityTypeHasPrefix applies the HasPrefix predicate on the "activity_type" field.
func ActivityTypeHasPrefix(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldHasPrefix(FieldActivityType, v))
}

// ActivityTypeHasSuffix applies the HasSuffix predicate on the "activity_type" field.
func ActivityTypeHasSuffix(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldHasSuffix(FieldActivityType, v))
}

// ActivityTypeEqualFold applies the EqualFold predicate on the "activity_type" field.
func ActivityTypeEqualFold(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEqualFold(FieldActivityType, v))
}

// ActivityTypeContainsFold applies the ContainsFold predicate on the "activity_type" field.
func ActivityTypeContainsFold(v string) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldContainsFold(FieldActivityType, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldPoints, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldXp, v))
}

// MinLevelEQ applies the EQ predicate on the "min_level" field.
func MinLevelEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldMinLevel, v))
}

// MinLevelNEQ applies the NEQ predicate on the "min_level" field.
func MinLevelNEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldMinLevel, v))
}

// MinLevelIn applies the In predicate on the "min_level" field.
func MinLevelIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldMinLevel, vs...))
}

// MinLevelNotIn applies the NotIn predicate on the "min_level" field.
func MinLevelNotIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldMinLevel, vs...))
}

// MinLevelGT applies the GT predicate on the "min_level" field.
func MinLevelGT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldMinLevel, v))
}

// MinLevelGTE applies the GTE predicate on the "min_level" field.
func MinLevelGTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldMinLevel, v))
}

// MinLevelLT applies the LT predicate on the "min_level" field.
func MinLevelLT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldMinLevel, v))
}

// MinLevelLTE applies the LTE predicate on the "min_level" field.
func MinLevelLTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldMinLevel, v))
}

// MaxDailyCountEQ applies the EQ predicate on the "max_daily_count" field.
func MaxDailyCountEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldMaxDailyCount, v))
}

// MaxDailyCountNEQ applies the NEQ predicate on the "max_daily_count" field.
func MaxDailyCountNEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldMaxDailyCount, v))
}

// MaxDailyCountIn applies the In predicate on the "max_daily_count" field.
func MaxDailyCountIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldMaxDailyCount, vs...))
}

// MaxDailyCountNotIn applies the NotIn predicate on the "max_daily_count" field.
func MaxDailyCountNotIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldMaxDailyCount, vs...))
}

// MaxDailyCountGT applies the GT predicate on the "max_daily_count" field.
func MaxDailyCountGT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldMaxDailyCount, v))
}

// MaxDailyCountGTE applies the GTE predicate on the "max_daily_count" field.
func MaxDailyCountGTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldMaxDailyCount, v))
}

// MaxDailyCountLT applies the LT predicate on the "max_daily_count" field.
func MaxDailyCountLT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldMaxDailyCount, v))
}

// MaxDailyCountLTE applies the LTE predicate on the "max_daily_count" field.
func MaxDailyCountLTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldMaxDailyCount, v))
}

// CooldownMinutesEQ applies the EQ predicate on the "cooldown_minutes" field.
func CooldownMinutesEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldCooldownMinutes, v))
}

// CooldownMinutesNEQ applies the NEQ predicate on the "cooldown_minutes" field.
func CooldownMinutesNEQ(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldCooldownMinutes, v))
}

// CooldownMinutesIn applies the In predicate on the "cooldown_minutes" field.
func CooldownMinutesIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldIn(FieldCooldownMinutes, vs...))
}

// CooldownMinutesNotIn applies the NotIn predicate on the "cooldown_minutes" field.
func CooldownMinutesNotIn(vs ...int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNotIn(FieldCooldownMinutes, vs...))
}

// CooldownMinutesGT applies the GT predicate on the "cooldown_minutes" field.
func CooldownMinutesGT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGT(FieldCooldownMinutes, v))
}

// CooldownMinutesGTE applies the GTE predicate on the "cooldown_minutes" field.
func CooldownMinutesGTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldGTE(FieldCooldownMinutes, v))
}

// CooldownMinutesLT applies the LT predicate on the "cooldown_minutes" field.
func CooldownMinutesLT(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLT(FieldCooldownMinutes, v))
}

// CooldownMinutesLTE applies the LTE predicate on the "cooldown_minutes" field.
func CooldownMinutesLTE(v int) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldLTE(FieldCooldownMinutes, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.GamificationReward {
	return predicate.GamificationReward(sql.FieldNEQ(FieldEnabled, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GamificationReward) predicate.GamificationReward {
	return predicate.GamificationReward(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GamificationReward) predicate.GamificationReward {
	return predicate.GamificationReward(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GamificationReward) predicate.GamificationReward {
	return predicate.GamificationReward(sql.NotPredicates(p))
}
