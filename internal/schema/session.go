package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Session is one scheduled clinical appointment between a psychologist and a
// patient. Sessions generated from a recurrence spec share a series_id.
type Session struct {
	ent.Schema
}

func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("psychologist_id", uuid.UUID{}).
			Comment("FK → clinic_members.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → patients.id; nil for blocked/internal sessions"),

		field.Time("scheduled_at").
			Comment("Session start, stored as UTC instant"),

		field.Int("duration_minutes").
			Positive(),

		field.String("timezone").
			MaxLen(64).
			Default("America/Sao_Paulo").
			Comment("IANA zone the session was scheduled in, for display"),

		field.Enum("type").
			Values("therapy", "consultation").
			Default("therapy"),

		field.Enum("status").
			Values("scheduled", "confirmed", "in_progress", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.UUID("series_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Shared id stamping every occurrence generated from one recurrence spec"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Int64("price_cents").
			Default(0).
			Comment("Snapshotted session price in BRL centavos"),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Enum("cancel_requested_by").
			Values("patient", "psychologist", "clinic").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "psychologist_id", "scheduled_at"),
		index.Fields("psychologist_id", "status", "scheduled_at"),
		index.Fields("patient_id", "status"),
		index.Fields("series_id", "scheduled_at"),
	}
}
