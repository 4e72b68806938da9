package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// PsychologistProfile extends a ClinicMember (role=psychologist) with clinical
// credentials and the scheduling template conflict checks run against.
type PsychologistProfile struct {
	ent.Schema
}

func (PsychologistProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PsychologistProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_member_id", uuid.UUID{}).
			Unique().
			Comment("FK → clinic_members.id (1:1)"),

		field.String("crp_license").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("Conselho Regional de Psicologia registration number"),

		field.String("approach").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Therapeutic approach, e.g. CBT, ACT"),

		field.JSON("specialties", []string{}).
			Optional().
			Comment("List of specialty tags"),

		field.Text("bio").
			Optional().
			Nillable(),

		field.Int64("session_price_cents").
			Optional().
			Nillable().
			Comment("Default session price in BRL centavos; nil = clinic default"),

		field.Int("session_duration_min").
			Optional().
			Nillable().
			Comment("Default session duration in minutes"),

		field.String("timezone").
			MaxLen(64).
			Default("America/Sao_Paulo"),

		// Working-hours template keyed by lowercase weekday name:
		// {"monday": {"start": "08:00", "end": "18:00"}, ...}
		// Days absent from the map are non-working days.
		field.JSON("working_hours", map[string]any{}).
			Optional(),

		field.Int("slot_granularity_min").
			Default(30).
			Comment("Step used when computing availability and alternative slots"),

		field.Bool("is_accepting").
			Default(true).
			Comment("Whether this psychologist is accepting new patients"),
	}
}

func (PsychologistProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("member", ClinicMember.Type).
			Ref("psychologist_profile").
			Unique().
			Required().
			Field("clinic_member_id"),
	}
}
