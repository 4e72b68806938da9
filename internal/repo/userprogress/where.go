// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUserID, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalXp applies equality check predicate on the "total_xp" field. It's identical to TotalXpEQ.
func TotalXp(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalXp, v))
}

// CurrentLevel applies equality check predicate on the "current_level" field. It's identical to CurrentLevelEQ.
func CurrentLevel(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCurrentLevel, v))
}

// WeeklyPoints applies equality check predicate on the "weekly_points" field. It's identical to WeeklyPointsEQ.
func WeeklyPoints(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldWeeklyPoints, v))
}

// MonthlyPoints applies equality check predicate on the "monthly_points" field. It's identical to MonthlyPointsEQ.
func MonthlyPoints(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldMonthlyPoints, v))
}

// WeekAnchor applies equality check predicate on the "week_anchor" field. It's identical to WeekAnchorEQ.
func WeekAnchor(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldWeekAnchor, v))
}

// MonthAnchor applies equality check predicate on the "month_anchor" field. It's identical to MonthAnchorEQ.
func MonthAnchor(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldMonthAnchor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldUserID, v))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldTotalPoints, v))
}

// TotalXpEQ applies the EQ predicate on the "total_xp" field.
func TotalXpEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldTotalXp, v))
}

// TotalXpNEQ applies the NEQ predicate on the "total_xp" field.
func TotalXpNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldTotalXp, v))
}

// TotalXpIn applies the In predicate on the "total_xp" field.
func TotalXpIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldTotalXp, vs...))
}

// TotalXpNotIn applies the NotIn predicate on the "total_xp" field.
func TotalXpNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldTotalXp, vs...))
}

// TotalXpGT applies the GT predicate on the "total_xp" field.
func TotalXpGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldTotalXp, v))
}

// TotalXpGTE applies the GTE predicate on the "total_xp" field.
func TotalXpGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldTotalXp, v))
}

// TotalXpLT applies the LT predicate on the "total_xp" field.
func TotalXpLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldTotalXp, v))
}

// TotalXpLTE applies the LTE predicate on the "total_xp" field.
func TotalXpLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldTotalXp, v))
}

// CurrentLevelEQ applies the EQ predicate on the "current_level" field.
func CurrentLevelEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCurrentLevel, v))
}

// CurrentLevelNEQ applies the NEQ predicate on the "current_level" field.
func CurrentLevelNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCurrentLevel, v))
}

// CurrentLevelIn applies the In predicate on the "current_level" field.
func CurrentLevelIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCurrentLevel, vs...))
}

// CurrentLevelNotIn applies the NotIn predicate on the "current_level" field.
func CurrentLevelNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCurrentLevel, vs...))
}

// CurrentLevelGT applies the GT predicate on the "current_level" field.
func CurrentLevelGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCurrentLevel, v))
}

// CurrentLevelGTE applies the GTE predicate on the "current_level" field.
func CurrentLevelGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCurrentLevel, v))
}

// CurrentLevelLT applies the LT predicate on the "current_level" field.
func CurrentLevelLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCurrentLevel, v))
}

// CurrentLevelLTE applies the LTE predicate on the "current_level" field.
func CurrentLevelLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCurrentLevel, v))
}

// WeeklyPointsEQ applies the EQ predicate on the "weekly_points" field.
func WeeklyPointsEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldWeeklyPoints, v))
}

// WeeklyPointsNEQ applies the NEQ predicate on the "weekly_points" field.
func WeeklyPointsNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldWeeklyPoints, v))
}

// WeeklyPointsIn applies the In predicate on the "weekly_points" field.
func WeeklyPointsIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldWeeklyPoints, vs...))
}

// WeeklyPointsNotIn applies the NotIn predicate on the "weekly_points" field.
func WeeklyPointsNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldWeeklyPoints, vs...))
}

// WeeklyPointsGT applies the GT predicate on the "weekly_points" field.
func WeeklyPointsGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldWeeklyPoints, v))
}

// WeeklyPointsGTE applies the GTE predicate on the "weekly_points" field.
func WeeklyPointsGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldWeeklyPoints, v))
}

// WeeklyPointsLT applies the LT predicate on the "weekly_points" field.
func WeeklyPointsLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldWeeklyPoints, v))
}

// WeeklyPointsLTE applies the LTE predicate on the "weekly_points" field.
func WeeklyPointsLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldWeeklyPoints, v))
}

// MonthlyPointsEQ applies the EQ predicate on the "monthly_points" field.
func MonthlyPointsEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldMonthlyPoints, v))
}

// MonthlyPointsNEQ applies the NEQ predicate on the "monthly_points" field.
func MonthlyPointsNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldMonthlyPoints, v))
}

// MonthlyPointsIn applies the In predicate on the "monthly_points" field.
func MonthlyPointsIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldMonthlyPoints, vs...))
}

// MonthlyPointsNotIn applies the NotIn predicate on the "monthly_points" field.
func MonthlyPointsNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldMonthlyPoints, vs...))
}

// MonthlyPointsGT applies the GT predicate on the "monthly_points" field.
func MonthlyPointsGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldMonthlyPoints, v))
}

// MonthlyPointsGTE applies the GTE predicate on the "monthly_points" field.
func MonthlyPointsGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldMonthlyPoints, v))
}

// MonthlyPointsLT applies the LT predicate on the "monthly_points" field.
func MonthlyPointsLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldMonthlyPoints, v))
}

// MonthlyPointsLTE applies the LTE predicate on the "monthly_points" field.
func MonthlyPointsLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldMonthlyPoints, v))
}

// WeekAnchorEQ applies the EQ predicate on the "week_anchor" field.
func WeekAnchorEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldWeekAnchor, v))
}

// WeekAnchorNEQ applies the NEQ predicate on the "week_anchor" field.
func WeekAnchorNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldWeekAnchor, v))
}

// WeekAnchorIn applies the In predicate on the "week_anchor" field.
func WeekAnchorIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldWeekAnchor, vs...))
}

// WeekAnchorNotIn applies the NotIn predicate on the "week_anchor" field.
func WeekAnchorNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldWeekAnchor, vs...))
}

// WeekAnchorGT applies the GT predicate on the "week_anchor" field.
func WeekAnchorGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldWeekAnchor, v))
}

// WeekAnchorGTE applies the GTE predicate on the "week_anchor" field.
func WeekAnchorGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldWeekAnchor, v))
}

// WeekAnchorLT applies the LT predicate on the "week_anchor" field.
func WeekAnchorLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldWeekAnchor, v))
}

// WeekAnchorLTE applies the LTE predicate on the "week_anchor" field.
func WeekAnchorLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldWeekAnchor, v))
}

// WeekAnchorIsNil applies the IsNil predicate on the "week_anchor" field.
func WeekAnchorIsNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIsNull(FieldWeekAnchor))
}

// WeekAnchorNotNil applies the NotNil predicate on the "week_anchor" field.
func WeekAnchorNotNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotNull(FieldWeekAnchor))
}

// MonthAnchorEQ applies the EQ predicate on the "month_anchor" field.
func MonthAnchorEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldMonthAnchor, v))
}

// MonthAnchorNEQ applies the NEQ predicate on the "month_anchor" field.
func MonthAnchorNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldMonthAnchor, v))
}

// MonthAnchorIn applies the In predicate on the "month_anchor" field.
func MonthAnchorIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldMonthAnchor, vs...))
}

// MonthAnchorNotIn applies the NotIn predicate on the "month_anchor" field.
func MonthAnchorNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldMonthAnchor, vs...))
}

// MonthAnchorGT applies the GT predicate on the "month_anchor" field.
func MonthAnchorGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldMonthAnchor, v))
}

// MonthAnchorGTE applies the GTE predicate on the "month_anchor" field.
func MonthAnchorGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldMonthAnchor, v))
}

// MonthAnchorLT applies the LT predicate on the "month_anchor" field.
func MonthAnchorLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldMonthAnchor, v))
}

// MonthAnchorLTE applies the LTE predicate on the "month_anchor" field.
func MonthAnchorLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldMonthAnchor, v))
}

// MonthAnchorIsNil applies the IsNil predicate on the "month_anchor" field.
func MonthAnchorIsNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIsNull(FieldMonthAnchor))
}

// MonthAnchorNotNil applies the NotNil predicate on the "month_anchor" field.
func MonthAnchorNotNil() predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotNull(FieldMonthAnchor))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.NotPredicates(p))
}
