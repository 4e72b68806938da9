package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient represents a per-clinic patient record.
// A user can be a patient in multiple clinics.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (the patient's user account)"),

		field.UUID("assigned_psychologist_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → clinic_members.id (primary psychologist)"),

		field.String("file_number").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("Internal file/case number assigned by clinic"),

		field.Enum("status").
			Values("active", "waiting", "inactive", "discharged").
			Default("active"),

		field.String("cpf_encrypted").
			Optional().
			Nillable().
			Sensitive().
			Comment("AES-256-GCM encrypted CPF, base64-encoded"),

		field.Time("birth_date").
			Optional().
			Nillable(),

		field.String("timezone").
			MaxLen(64).
			Default("America/Sao_Paulo"),

		field.Int("session_count").
			Default(0),

		field.Int("total_cancellations").
			Default(0),

		field.Text("last_cancel_reason").
			Optional().
			Nillable(),

		field.Bool("has_discount").
			Default(false),

		field.Int("discount_percent").
			Default(0),

		field.Text("notes").
			Optional().
			Nillable(),

		field.String("referral_source").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("chief_complaint").
			Optional().
			Nillable().
			Comment("Presenting problem reported at intake"),

		field.String("emergency_contact_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("emergency_contact_phone").
			Optional().
			Nillable().
			MaxLen(20),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("patients").
			Unique().
			Required().
			Field("clinic_id"),
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
		edge.To("assigned_psychologist", ClinicMember.Type).
			Unique().
			Field("assigned_psychologist_id"),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "user_id").Unique(),
		index.Fields("clinic_id"),
		index.Fields("user_id"),
		index.Fields("clinic_id", "status"),
		index.Fields("clinic_id", "file_number"),
	}
}
