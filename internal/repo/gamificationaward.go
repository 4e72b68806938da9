// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationaward"
	"github.com/google/uuid"
)

// GamificationAward is the model entity for the GamificationAward schema.
type GamificationAward struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// ActivityType holds the value of the "activity_type" field.
	ActivityType string `json:"activity_type,omitempty"`
	// Points holds the value of the "points" field.
	Points int `json:"points,omitempty"`
	// Xp holds the value of the "xp" field.
	Xp int `json:"xp,omitempty"`
	// Caller-supplied context, e.g. the session or diary id
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GamificationAward) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gamificationaward.FieldMetadata:
			values[i] = new([]byte)
		case gamificationaward.FieldPoints, gamificationaward.FieldXp:
			values[i] = new(sql.NullInt64)
		case gamificationaward.FieldActivityType:
			values[i] = new(sql.NullString)
		case gamificationaward.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case gamificationaward.FieldID, gamificationaward.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GamificationAward fields.
func (_m *GamificationAward) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gamificationaward.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gamificationaward.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gamificationaward.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case gamificationaward.FieldActivityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_type", values[i])
			} else if value.Valid {
				_m.ActivityType = value.String
			}
		case gamificationaward.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case gamificationaward.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				_m.Xp = int(value.Int64)
			}
		case gamificationaward.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GamificationAward.
// This includes values selected through modifiers, order, etc.
func (_m *GamificationAward) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GamificationAward.
// Note that you need to call GamificationAward.Unwrap() before calling this method if this GamificationAward
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GamificationAward) Update() *GamificationAwardUpdateOne {
	return NewGamificationAwardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GamificationAward entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GamificationAward) Unwrap() *GamificationAward {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: GamificationAward is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GamificationAward) String() string {
	var builder strings.Builder
	builder.WriteString("GamificationAward(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
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
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// GamificationAwards is a parsable slice of GamificationAward.
type GamificationAwards []*GamificationAward
