package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Unavailability is a time-off block declared by a psychologist. Availability
// computation subtracts these from the working-hours template alongside
// booked sessions.
type Unavailability struct {
	ent.Schema
}

func (Unavailability) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Unavailability) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("psychologist_id", uuid.UUID{}).
			Comment("FK → clinic_members.id"),

		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.String("reason").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (Unavailability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("psychologist_id", "start_time"),
		index.Fields("clinic_id"),
	}
}
