package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DiaryEntry is a patient-authored mood/diary record. One entry per patient
// per calendar day; writing one is a gamifiable activity.
type DiaryEntry struct {
	ent.Schema
}

func (DiaryEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DiaryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("entry_date").
			Comment("Calendar day the entry refers to (midnight UTC)"),

		field.Int("mood").
			Range(1, 10),

		field.Int("energy").
			Range(1, 10),

		field.Text("content").
			Optional().
			Nillable(),

		field.JSON("emotions", []string{}).
			Optional().
			Comment("Free-form emotion tags picked by the patient"),
	}
}

func (DiaryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "entry_date").Unique(),
		index.Fields("patient_id"),
	}
}
