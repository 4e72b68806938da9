// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationreward"
	"github.com/google/uuid"
)

// GamificationReward is the model entity for the GamificationReward schema.
type GamificationReward struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// e.g. diary_entry, meditation_completed, session_completed
	ActivityType string `json:"activity_type,omitempty"`
	// Points holds the value of the "points" field.
	Points int `json:"points,omitempty"`
	// Xp holds the value of the "xp" field.
	Xp int `json:"xp,omitempty"`
	// User must be at least this level to qualify
	MinLevel int `json:"min_level,omitempty"`
	// Max qualifying awards per calendar day; 0 = unlimited
	MaxDailyCount int `json:"max_daily_count,omitempty"`
	// Minimum minutes between two qualifying awards; 0 = none
	CooldownMinutes int `json:"cooldown_minutes,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled      bool `json:"enabled,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GamificationReward) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gamificationreward.FieldEnabled:
			values[i] = new(sql.NullBool)
		case gamificationreward.FieldPoints, gamificationreward.FieldXp, gamificationreward.FieldMinLevel, gamificationreward.FieldMaxDailyCount, gamificationreward.FieldCooldownMinutes:
			values[i] = new(sql.NullInt64)
		case gamificationreward.FieldActivityType:
			values[i] = new(sql.NullString)
		case gamificationreward.FieldCreatedAt, gamificationreward.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case gamificationreward.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GamificationReward fields.
func (_m *GamificationReward) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gamificationreward.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gamificationreward.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gamificationreward.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case gamificationreward.FieldActivityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_type", values[i])
			} else if value.Valid {
				_m.ActivityType = value.String
			}
		case gamificationreward.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case gamificationreward.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				_m.Xp = int(value.Int64)
			}
		case gamificationreward.FieldMinLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_level", values[i])
			} else if value.Valid {
				_m.MinLevel = int(value.Int64)
			}
		case gamificationreward.FieldMaxDailyCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_daily_count", values[i])
			} else if value.Valid {
				_m.MaxDailyCount = int(value.Int64)
			}
		case gamificationreward.FieldCooldownMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_minutes", values[i])
			} else if value.Valid {
				_m.CooldownMinutes = int(value.Int64)
			}
		case gamificationreward.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GamificationReward.
// This includes values selected through modifiers, order, etc.
func (_m *GamificationReward) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GamificationReward.
// Note that you need to call GamificationReward.Unwrap() before calling this method if this GamificationReward
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GamificationReward) Update() *GamificationRewardUpdateOne {
	return NewGamificationRewardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GamificationReward entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GamificationReward) Unwrap() *GamificationReward {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: GamificationReward is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GamificationReward) String() string {
	var builder strings.Builder
	builder.WriteString("GamificationReward(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("activity_type=")
	builder.WriteString(_m.ActivityType)
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	builder.WriteString("xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Xp))
	builder.WriteString(", ")
	builder.WriteString("min_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinLevel))
	builder.WriteString(", ")
	builder.WriteString("max_daily_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDailyCount))
	builder.WriteString(", ")
	builder.WriteString("cooldown_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.CooldownMinutes))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteByte(')')
	return builder.String()
}

// GamificationRewards is a parsable slice of GamificationReward.
type GamificationRewards []*GamificationReward
