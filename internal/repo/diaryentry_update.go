// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DiaryEntryUpdate is the builder for updating DiaryEntry entities.
type DiaryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DiaryEntryMutation
}

// Where appends a list predicates to the DiaryEntryUpdate builder.
func (_u *DiaryEntryUpdate) Where(ps ...predicate.DiaryEntry) *DiaryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiaryEntryUpdate) SetUpdatedAt(v time.Time) *DiaryEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DiaryEntryUpdate) SetPatientID(v uuid.UUID) *DiaryEntryUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillablePatientID(v *uuid.UUID) *DiaryEntryUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetEntryDate sets the "entry_date" field.
func (_u *DiaryEntryUpdate) SetEntryDate(v time.Time) *DiaryEntryUpdate {
	_u.mutation.SetEntryDate(v)
	return _u
}

// SetNillableEntryDate sets the "entry_date" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillableEntryDate(v *time.Time) *DiaryEntryUpdate {
	if v != nil {
		_u.SetEntryDate(*v)
	}
	return _u
}

// SetMood sets the "mood" field.
func (_u *DiaryEntryUpdate) SetMood(v int) *DiaryEntryUpdate {
	_u.mutation.ResetMood()
	_u.mutation.SetMood(v)
	return _u
}

// SetNillableMood sets the "mood" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillableMood(v *int) *DiaryEntryUpdate {
	if v != nil {
		_u.SetMood(*v)
	}
	return _u
}

// AddMood adds value to the "mood" field.
func (_u *DiaryEntryUpdate) AddMood(v int) *DiaryEntryUpdate {
	_u.mutation.AddMood(v)
	return _u
}

// SetEnergy sets the "energy" field.
func (_u *DiaryEntryUpdate) SetEnergy(v int) *DiaryEntryUpdate {
	_u.mutation.ResetEnergy()
	_u.mutation.SetEnergy(v)
	return _u
}

// SetNillableEnergy sets the "energy" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillableEnergy(v *int) *DiaryEntryUpdate {
	if v != nil {
		_u.SetEnergy(*v)
	}
	return _u
}

// AddEnergy adds value to the "energy" field.
func (_u *DiaryEntryUpdate) AddEnergy(v int) *DiaryEntryUpdate {
	_u.mutation.AddEnergy(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *DiaryEntryUpdate) SetContent(v string) *DiaryEntryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillableContent(v *string) *DiaryEntryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *DiaryEntryUpdate) ClearContent() *DiaryEntryUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetEmotions sets the "emotions" field.
func (_u *DiaryEntryUpdate) SetEmotions(v []string) *DiaryEntryUpdate {
	_u.mutation.SetEmotions(v)
	return _u
}

// AppendEmotions appends value to the "emotions" field.
func (_u *DiaryEntryUpdate) AppendEmotions(v []string) *DiaryEntryUpdate {
	_u.mutation.AppendEmotions(v)
	return _u
}

// ClearEmotions clears the value of the "emotions" field.
func (_u *DiaryEntryUpdate) ClearEmotions() *DiaryEntryUpdate {
	_u.mutation.ClearEmotions()
	return _u
}

// Mutation returns the DiaryEntryMutation object of the builder.
func (_u *DiaryEntryUpdate) Mutation() *DiaryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiaryEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiaryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiaryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiaryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiaryEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := diaryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiaryEntryUpdate) check() error {
	if v, ok := _u.mutation.Mood(); ok {
		if err := diaryentry.MoodValidator(v); err != nil {
			return &ValidationError{Name: "mood", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.mood": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Energy(); ok {
		if err := diaryentry.EnergyValidator(v); err != nil {
			return &ValidationError{Name: "energy", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.energy": %w`, err)}
		}
	}
	return nil
}

func (_u *DiaryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diaryentry.Table, diaryentry.Columns, sqlgraph.NewFieldSpec(diaryentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(diaryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(diaryentry.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EntryDate(); ok {
		_spec.SetField(diaryentry.FieldEntryDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Mood(); ok {
		_spec.SetField(diaryentry.FieldMood, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMood(); ok {
		_spec.AddField(diaryentry.FieldMood, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Energy(); ok {
		_spec.SetField(diaryentry.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnergy(); ok {
		_spec.AddField(diaryentry.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(diaryentry.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(diaryentry.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Emotions(); ok {
		_spec.SetField(diaryentry.FieldEmotions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmotions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diaryentry.FieldEmotions, value)
		})
	}
	if _u.mutation.EmotionsCleared() {
		_spec.ClearField(diaryentry.FieldEmotions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diaryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiaryEntryUpdateOne is the builder for updating a single DiaryEntry entity.
type DiaryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiaryEntryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiaryEntryUpdateOne) SetUpdatedAt(v time.Time) *DiaryEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DiaryEntryUpdateOne) SetPatientID(v uuid.UUID) *DiaryEntryUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillablePatientID(v *uuid.UUID) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetEntryDate sets the "entry_date" field.
func (_u *DiaryEntryUpdateOne) SetEntryDate(v time.Time) *DiaryEntryUpdateOne {
	_u.mutation.SetEntryDate(v)
	return _u
}

// SetNillableEntryDate sets the "entry_date" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillableEntryDate(v *time.Time) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetEntryDate(*v)
	}
	return _u
}

// SetMood sets the "mood" field.
func (_u *DiaryEntryUpdateOne) SetMood(v int) *DiaryEntryUpdateOne {
	_u.mutation.ResetMood()
	_u.mutation.SetMood(v)
	return _u
}

// SetNillableMood sets the "mood" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillableMood(v *int) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetMood(*v)
	}
	return _u
}

// AddMood adds value to the "mood" field.
func (_u *DiaryEntryUpdateOne) AddMood(v int) *DiaryEntryUpdateOne {
	_u.mutation.AddMood(v)
	return _u
}

// SetEnergy sets the "energy" field.
func (_u *DiaryEntryUpdateOne) SetEnergy(v int) *DiaryEntryUpdateOne {
	_u.mutation.ResetEnergy()
	_u.mutation.SetEnergy(v)
	return _u
}

// SetNillableEnergy sets the "energy" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillableEnergy(v *int) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetEnergy(*v)
	}
	return _u
}

// AddEnergy adds value to the "energy" field.
func (_u *DiaryEntryUpdateOne) AddEnergy(v int) *DiaryEntryUpdateOne {
	_u.mutation.AddEnergy(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *DiaryEntryUpdateOne) SetContent(v string) *DiaryEntryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillableContent(v *string) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *DiaryEntryUpdateOne) ClearContent() *DiaryEntryUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetEmotions sets the "emotions" field.
func (_u *DiaryEntryUpdateOne) SetEmotions(v []string) *DiaryEntryUpdateOne {
	_u.mutation.SetEmotions(v)
	return _u
}

// AppendEmotions appends value to the "emotions" field.
func (_u *DiaryEntryUpdateOne) AppendEmotions(v []string) *DiaryEntryUpdateOne {
	_u.mutation.AppendEmotions(v)
	return _u
}

// ClearEmotions clears the value of the "emotions" field.
func (_u *DiaryEntryUpdateOne) ClearEmotions() *DiaryEntryUpdateOne {
	_u.mutation.ClearEmotions()
	return _u
}

// Mutation returns the DiaryEntryMutation object of the builder.
func (_u *DiaryEntryUpdateOne) Mutation() *DiaryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiaryEntryUpdate builder.
func (_u *DiaryEntryUpdateOne) Where(ps ...predicate.DiaryEntry) *DiaryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiaryEntryUpdateOne) Select(field string, fields ...string) *DiaryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiaryEntry entity.
func (_u *DiaryEntryUpdateOne) Save(ctx context.Context) (*DiaryEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiaryEntryUpdateOne) SaveX(ctx context.Context) *DiaryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiaryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiaryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiaryEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := diaryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiaryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Mood(); ok {
		if err := diaryentry.MoodValidator(v); err != nil {
			return &ValidationError{Name: "mood", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.mood": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Energy(); ok {
		if err := diaryentry.EnergyValidator(v); err != nil {
			return &ValidationError{Name: "energy", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.energy": %w`, err)}
		}
	}
	return nil
}

func (_u *DiaryEntryUpdateOne) sqlSave(ctx context.Context) (_node *DiaryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diaryentry.Table, diaryentry.Columns, sqlgraph.NewFieldSpec(diaryentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DiaryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diaryentry.FieldID)
		for _, f := range fields {
			if !diaryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != diaryentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(diaryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(diaryentry.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EntryDate(); ok {
		_spec.SetField(diaryentry.FieldEntryDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Mood(); ok {
		_spec.SetField(diaryentry.FieldMood, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMood(); ok {
		_spec.AddField(diaryentry.FieldMood, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Energy(); ok {
		_spec.SetField(diaryentry.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnergy(); ok {
		_spec.AddField(diaryentry.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(diaryentry.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(diaryentry.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Emotions(); ok {
		_spec.SetField(diaryentry.FieldEmotions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmotions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diaryentry.FieldEmotions, value)
		})
	}
	if _u.mutation.EmotionsCleared() {
		_spec.ClearField(diaryentry.FieldEmotions, field.TypeJSON)
	}
	_node = &DiaryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diaryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
