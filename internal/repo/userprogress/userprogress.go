// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the userprogress type in the database.
	Label = "user_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldTotalXp holds the string denoting the total_xp field in the database.
	FieldTotalXp = "total_xp"
	// FieldCurrentLevel holds the string denoting the current_level field in the database.
	FieldCurrentLevel = "current_level"
	// FieldWeeklyPoints holds the string denoting the weekly_points field in the database.
	FieldWeeklyPoints = "weekly_points"
	// FieldMonthlyPoints holds the string denoting the monthly_points field in the database.
	FieldMonthlyPoints = "monthly_points"
	// FieldWeekAnchor holds the string denoting the week_anchor field in the database.
	FieldWeekAnchor = "week_anchor"
	// FieldMonthAnchor holds the string denoting the month_anchor field in the database.
	FieldMonthAnchor = "month_anchor"
	// Table holds the table name of the userprogress in the database.
	Table = "user_progresses"
)

// Columns holds all SQL columns for userprogress fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldTotalPoints,
	FieldTotalXp,
	FieldCurrentLevel,
	FieldWeeklyPoints,
	FieldMonthlyPoints,
	FieldWeekAnchor,
	FieldMonthAnchor,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultTotalPoints holds the default value on creation for the "total_points" field.
	DefaultTotalPoints int
	// TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	TotalPointsValidator func(int) error
	// DefaultTotalXp holds the default value on creation for the "total_xp" field.
	DefaultTotalXp int
	// TotalXpValidator is a validator for the "total_xp" field. It is called by the builders before save.
	TotalXpValidator func(int) error
	// DefaultCurrentLevel holds the default value on creation for the "current_level" field.
	DefaultCurrentLevel int
	// CurrentLevelValidator is a validator for the "current_level" field. It is called by the builders before save.
	CurrentLevelValidator func(int) error
	// DefaultWeeklyPoints holds the default value on creation for the "weekly_points" field.
	DefaultWeeklyPoints int
	// DefaultMonthlyPoints holds the default value on creation for the "monthly_points" field.
	DefaultMonthlyPoints int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UserProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByTotalXp orders the results by the total_xp field.
func ByTotalXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalXp, opts...).ToFunc()
}

// ByCurrentLevel orders the results by the current_level field.
func ByCurrentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentLevel, opts...).ToFunc()
}

// ByWeeklyPoints orders the results by the weekly_points field.
func ByWeeklyPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyPoints, opts...).ToFunc()
}

// ByMonthlyPoints orders the results by the monthly_points field.
func ByMonthlyPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyPoints, opts...).ToFunc()
}

// ByWeekAnchor orders the results by the week_anchor field.
func ByWeekAnchor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekAnchor, opts...).ToFunc()
}

// ByMonthAnchor orders the results by the month_anchor field.
func ByMonthAnchor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthAnchor, opts...).ToFunc()
}
