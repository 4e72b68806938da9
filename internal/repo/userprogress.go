// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/userprogress"
	"github.com/google/uuid"
)

// UserProgress is the model entity for the UserProgress schema.
type UserProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// TotalPoints holds the value of the "total_points" field.
	TotalPoints int `json:"total_points,omitempty"`
	// TotalXp holds the value of the "total_xp" field.
	TotalXp int `json:"total_xp,omitempty"`
	// CurrentLevel holds the value of the "current_level" field.
	CurrentLevel int `json:"current_level,omitempty"`
	// WeeklyPoints holds the value of the "weekly_points" field.
	WeeklyPoints int `json:"weekly_points,omitempty"`
	// MonthlyPoints holds the value of the "monthly_points" field.
	MonthlyPoints int `json:"monthly_points,omitempty"`
	// Monday of the ISO week weekly_points counts; rolls over on mismatch
	WeekAnchor *time.Time `json:"week_anchor,omitempty"`
	// First day of the month monthly_points counts
	MonthAnchor  *time.Time `json:"month_anchor,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldTotalPoints, userprogress.FieldTotalXp, userprogress.FieldCurrentLevel, userprogress.FieldWeeklyPoints, userprogress.FieldMonthlyPoints:
			values[i] = new(sql.NullInt64)
		case userprogress.FieldCreatedAt, userprogress.FieldUpdatedAt, userprogress.FieldWeekAnchor, userprogress.FieldMonthAnchor:
			values[i] = new(sql.NullTime)
		case userprogress.FieldID, userprogress.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProgress fields.
func (_m *UserProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case userprogress.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case userprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case userprogress.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case userprogress.FieldTotalPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points", values[i])
			} else if value.Valid {
				_m.TotalPoints = int(value.Int64)
			}
		case userprogress.FieldTotalXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_xp", values[i])
			} else if value.Valid {
				_m.TotalXp = int(value.Int64)
			}
		case userprogress.FieldCurrentLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_level", values[i])
			} else if value.Valid {
				_m.CurrentLevel = int(value.Int64)
			}
		case userprogress.FieldWeeklyPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_points", values[i])
			} else if value.Valid {
				_m.WeeklyPoints = int(value.Int64)
			}
		case userprogress.FieldMonthlyPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_points", values[i])
			} else if value.Valid {
				_m.MonthlyPoints = int(value.Int64)
			}
		case userprogress.FieldWeekAnchor:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field week_anchor", values[i])
			} else if value.Valid {
				_m.WeekAnchor = new(time.Time)
				*_m.WeekAnchor = value.Time
			}
		case userprogress.FieldMonthAnchor:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field month_anchor", values[i])
			} else if value.Valid {
				_m.MonthAnchor = new(time.Time)
				*_m.MonthAnchor = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserProgress.
// This includes values selected through modifiers, order, etc.
func (_m *UserProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserProgress.
// Note that you need to call UserProgress.Unwrap() before calling this method if this UserProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserProgress) Update() *UserProgressUpdateOne {
	return NewUserProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserProgress) Unwrap() *UserProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: UserProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserProgress) String() string {
	var builder strings.Builder
	builder.WriteString("UserProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("total_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPoints))
	builder.WriteString(", ")
	builder.WriteString("total_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalXp))
	builder.WriteString(", ")
	builder.WriteString("current_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentLevel))
	builder.WriteString(", ")
	builder.WriteString("weekly_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeeklyPoints))
	builder.WriteString(", ")
	builder.WriteString("monthly_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyPoints))
	builder.WriteString(", ")
	if v := _m.WeekAnchor; v != nil {
		builder.WriteString("week_anchor=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MonthAnchor; v != nil {
		builder.WriteString("month_anchor=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UserProgresses is a parsable slice of UserProgress.
type UserProgresses []*UserProgress
