// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mcqgen/ent/mcqrecord"
	"github.com/abhisek/mcqgen/ent/predicate"
)

// MCQRecordUpdate is the builder for updating MCQRecord entities.
type MCQRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MCQRecordMutation
}

// Where appends a list predicates to the MCQRecordUpdate builder.
func (_u *MCQRecordUpdate) Where(ps ...predicate.MCQRecord) *MCQRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MCQRecordUpdate) SetSessionID(v string) *MCQRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableSessionID(v *string) *MCQRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *MCQRecordUpdate) SetQuestionNumber(v int) *MCQRecordUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableQuestionNumber(v *int) *MCQRecordUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *MCQRecordUpdate) AddQuestionNumber(v int) *MCQRecordUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *MCQRecordUpdate) SetQuestionID(v string) *MCQRecordUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableQuestionID(v *string) *MCQRecordUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConceptName sets the "concept_name" field.
func (_u *MCQRecordUpdate) SetConceptName(v string) *MCQRecordUpdate {
	_u.mutation.SetConceptName(v)
	return _u
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableConceptName(v *string) *MCQRecordUpdate {
	if v != nil {
		_u.SetConceptName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *MCQRecordUpdate) SetDifficulty(v string) *MCQRecordUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableDifficulty(v *string) *MCQRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetStem sets the "stem" field.
func (_u *MCQRecordUpdate) SetStem(v string) *MCQRecordUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableStem(v *string) *MCQRecordUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *MCQRecordUpdate) SetOptions(v map[string]string) *MCQRecordUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// SetCorrectLetter sets the "correct_letter" field.
func (_u *MCQRecordUpdate) SetCorrectLetter(v string) *MCQRecordUpdate {
	_u.mutation.SetCorrectLetter(v)
	return _u
}

// SetNillableCorrectLetter sets the "correct_letter" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableCorrectLetter(v *string) *MCQRecordUpdate {
	if v != nil {
		_u.SetCorrectLetter(*v)
	}
	return _u
}

// SetExplanations sets the "explanations" field.
func (_u *MCQRecordUpdate) SetExplanations(v map[string]string) *MCQRecordUpdate {
	_u.mutation.SetExplanations(v)
	return _u
}

// ClearExplanations clears the value of the "explanations" field.
func (_u *MCQRecordUpdate) ClearExplanations() *MCQRecordUpdate {
	_u.mutation.ClearExplanations()
	return _u
}

// SetValidationScore sets the "validation_score" field.
func (_u *MCQRecordUpdate) SetValidationScore(v float64) *MCQRecordUpdate {
	_u.mutation.ResetValidationScore()
	_u.mutation.SetValidationScore(v)
	return _u
}

// SetNillableValidationScore sets the "validation_score" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableValidationScore(v *float64) *MCQRecordUpdate {
	if v != nil {
		_u.SetValidationScore(*v)
	}
	return _u
}

// AddValidationScore adds value to the "validation_score" field.
func (_u *MCQRecordUpdate) AddValidationScore(v float64) *MCQRecordUpdate {
	_u.mutation.AddValidationScore(v)
	return _u
}

// SetWasCorrected sets the "was_corrected" field.
func (_u *MCQRecordUpdate) SetWasCorrected(v bool) *MCQRecordUpdate {
	_u.mutation.SetWasCorrected(v)
	return _u
}

// SetNillableWasCorrected sets the "was_corrected" field if the given value is not nil.
func (_u *MCQRecordUpdate) SetNillableWasCorrected(v *bool) *MCQRecordUpdate {
	if v != nil {
		_u.SetWasCorrected(*v)
	}
	return _u
}

// Mutation returns the MCQRecordMutation object of the builder.
func (_u *MCQRecordUpdate) Mutation() *MCQRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MCQRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MCQRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MCQRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MCQRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MCQRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := mcqrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := mcqrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stem(); ok {
		if err := mcqrecord.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectLetter(); ok {
		if err := mcqrecord.CorrectLetterValidator(v); err != nil {
			return &ValidationError{Name: "correct_letter", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.correct_letter": %w`, err)}
		}
	}
	return nil
}

func (_u *MCQRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mcqrecord.Table, mcqrecord.Columns, sqlgraph.NewFieldSpec(mcqrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(mcqrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(mcqrecord.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(mcqrecord.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(mcqrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptName(); ok {
		_spec.SetField(mcqrecord.FieldConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(mcqrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(mcqrecord.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(mcqrecord.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CorrectLetter(); ok {
		_spec.SetField(mcqrecord.FieldCorrectLetter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanations(); ok {
		_spec.SetField(mcqrecord.FieldExplanations, field.TypeJSON, value)
	}
	if _u.mutation.ExplanationsCleared() {
		_spec.ClearField(mcqrecord.FieldExplanations, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationScore(); ok {
		_spec.SetField(mcqrecord.FieldValidationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValidationScore(); ok {
		_spec.AddField(mcqrecord.FieldValidationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WasCorrected(); ok {
		_spec.SetField(mcqrecord.FieldWasCorrected, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mcqrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MCQRecordUpdateOne is the builder for updating a single MCQRecord entity.
type MCQRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MCQRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *MCQRecordUpdateOne) SetSessionID(v string) *MCQRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableSessionID(v *string) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *MCQRecordUpdateOne) SetQuestionNumber(v int) *MCQRecordUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableQuestionNumber(v *int) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *MCQRecordUpdateOne) AddQuestionNumber(v int) *MCQRecordUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *MCQRecordUpdateOne) SetQuestionID(v string) *MCQRecordUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableQuestionID(v *string) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConceptName sets the "concept_name" field.
func (_u *MCQRecordUpdateOne) SetConceptName(v string) *MCQRecordUpdateOne {
	_u.mutation.SetConceptName(v)
	return _u
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableConceptName(v *string) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetConceptName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *MCQRecordUpdateOne) SetDifficulty(v string) *MCQRecordUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableDifficulty(v *string) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetStem sets the "stem" field.
func (_u *MCQRecordUpdateOne) SetStem(v string) *MCQRecordUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableStem(v *string) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *MCQRecordUpdateOne) SetOptions(v map[string]string) *MCQRecordUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// SetCorrectLetter sets the "correct_letter" field.
func (_u *MCQRecordUpdateOne) SetCorrectLetter(v string) *MCQRecordUpdateOne {
	_u.mutation.SetCorrectLetter(v)
	return _u
}

// SetNillableCorrectLetter sets the "correct_letter" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableCorrectLetter(v *string) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetCorrectLetter(*v)
	}
	return _u
}

// SetExplanations sets the "explanations" field.
func (_u *MCQRecordUpdateOne) SetExplanations(v map[string]string) *MCQRecordUpdateOne {
	_u.mutation.SetExplanations(v)
	return _u
}

// ClearExplanations clears the value of the "explanations" field.
func (_u *MCQRecordUpdateOne) ClearExplanations() *MCQRecordUpdateOne {
	_u.mutation.ClearExplanations()
	return _u
}

// SetValidationScore sets the "validation_score" field.
func (_u *MCQRecordUpdateOne) SetValidationScore(v float64) *MCQRecordUpdateOne {
	_u.mutation.ResetValidationScore()
	_u.mutation.SetValidationScore(v)
	return _u
}

// SetNillableValidationScore sets the "validation_score" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableValidationScore(v *float64) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetValidationScore(*v)
	}
	return _u
}

// AddValidationScore adds value to the "validation_score" field.
func (_u *MCQRecordUpdateOne) AddValidationScore(v float64) *MCQRecordUpdateOne {
	_u.mutation.AddValidationScore(v)
	return _u
}

// SetWasCorrected sets the "was_corrected" field.
func (_u *MCQRecordUpdateOne) SetWasCorrected(v bool) *MCQRecordUpdateOne {
	_u.mutation.SetWasCorrected(v)
	return _u
}

// SetNillableWasCorrected sets the "was_corrected" field if the given value is not nil.
func (_u *MCQRecordUpdateOne) SetNillableWasCorrected(v *bool) *MCQRecordUpdateOne {
	if v != nil {
		_u.SetWasCorrected(*v)
	}
	return _u
}

// Mutation returns the MCQRecordMutation object of the builder.
func (_u *MCQRecordUpdateOne) Mutation() *MCQRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MCQRecordUpdate builder.
func (_u *MCQRecordUpdateOne) Where(ps ...predicate.MCQRecord) *MCQRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MCQRecordUpdateOne) Select(field string, fields ...string) *MCQRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MCQRecord entity.
func (_u *MCQRecordUpdateOne) Save(ctx context.Context) (*MCQRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MCQRecordUpdateOne) SaveX(ctx context.Context) *MCQRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MCQRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MCQRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MCQRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := mcqrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := mcqrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stem(); ok {
		if err := mcqrecord.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectLetter(); ok {
		if err := mcqrecord.CorrectLetterValidator(v); err != nil {
			return &ValidationError{Name: "correct_letter", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.correct_letter": %w`, err)}
		}
	}
	return nil
}

func (_u *MCQRecordUpdateOne) sqlSave(ctx context.Context) (_node *MCQRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mcqrecord.Table, mcqrecord.Columns, sqlgraph.NewFieldSpec(mcqrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MCQRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mcqrecord.FieldID)
		for _, f := range fields {
			if !mcqrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mcqrecord.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(mcqrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(mcqrecord.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(mcqrecord.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(mcqrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptName(); ok {
		_spec.SetField(mcqrecord.FieldConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(mcqrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(mcqrecord.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(mcqrecord.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CorrectLetter(); ok {
		_spec.SetField(mcqrecord.FieldCorrectLetter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanations(); ok {
		_spec.SetField(mcqrecord.FieldExplanations, field.TypeJSON, value)
	}
	if _u.mutation.ExplanationsCleared() {
		_spec.ClearField(mcqrecord.FieldExplanations, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationScore(); ok {
		_spec.SetField(mcqrecord.FieldValidationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValidationScore(); ok {
		_spec.AddField(mcqrecord.FieldValidationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WasCorrected(); ok {
		_spec.SetField(mcqrecord.FieldWasCorrected, field.TypeBool, value)
	}
	_node = &MCQRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mcqrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
