package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CareLink binds a psychologist to a patient under explicit consent. Diary
// and mood data only become visible to the psychologist while the link is
// active and the matching consent flag is on.
type CareLink struct {
	ent.Schema
}

func (CareLink) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CareLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("psychologist_id", uuid.UUID{}).
			Comment("FK → clinic_members.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("invite_code").
			Unique().
			MaxLen(32).
			Immutable().
			Comment("Random code the patient redeems to accept the link"),

		field.Enum("status").
			Values("pending", "active", "revoked", "expired").
			Default("pending"),

		field.Bool("share_diary").
			Default(false).
			Comment("Patient consents to the psychologist reading diary entries"),

		field.Bool("share_mood").
			Default(false).
			Comment("Patient consents to mood/energy trend visibility"),

		field.Time("invited_at").
			Optional().
			Nillable(),

		field.Time("consented_at").
			Optional().
			Nillable(),

		field.Time("revoked_at").
			Optional().
			Nillable(),

		field.String("revoke_reason").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (CareLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("psychologist_id", "patient_id").Unique(),
		index.Fields("patient_id", "status"),
		index.Fields("invite_code"),
	}
}
