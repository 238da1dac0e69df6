// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mcqgen/ent/mcqrecord"
)

// MCQRecordCreate is the builder for creating a MCQRecord entity.
type MCQRecordCreate struct {
	config
	mutation *MCQRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MCQRecordCreate) SetSequence(v int64) *MCQRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MCQRecordCreate) SetTimestamp(v time.Time) *MCQRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MCQRecordCreate) SetNillableTimestamp(v *time.Time) *MCQRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *MCQRecordCreate) SetSessionID(v string) *MCQRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *MCQRecordCreate) SetQuestionNumber(v int) *MCQRecordCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_c *MCQRecordCreate) SetNillableQuestionNumber(v *int) *MCQRecordCreate {
	if v != nil {
		_c.SetQuestionNumber(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *MCQRecordCreate) SetQuestionID(v string) *MCQRecordCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetConceptName sets the "concept_name" field.
func (_c *MCQRecordCreate) SetConceptName(v string) *MCQRecordCreate {
	_c.mutation.SetConceptName(v)
	return _c
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_c *MCQRecordCreate) SetNillableConceptName(v *string) *MCQRecordCreate {
	if v != nil {
		_c.SetConceptName(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *MCQRecordCreate) SetDifficulty(v string) *MCQRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *MCQRecordCreate) SetNillableDifficulty(v *string) *MCQRecordCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetStem sets the "stem" field.
func (_c *MCQRecordCreate) SetStem(v string) *MCQRecordCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *MCQRecordCreate) SetOptions(v map[string]string) *MCQRecordCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectLetter sets the "correct_letter" field.
func (_c *MCQRecordCreate) SetCorrectLetter(v string) *MCQRecordCreate {
	_c.mutation.SetCorrectLetter(v)
	return _c
}

// SetExplanations sets the "explanations" field.
func (_c *MCQRecordCreate) SetExplanations(v map[string]string) *MCQRecordCreate {
	_c.mutation.SetExplanations(v)
	return _c
}

// SetValidationScore sets the "validation_score" field.
func (_c *MCQRecordCreate) SetValidationScore(v float64) *MCQRecordCreate {
	_c.mutation.SetValidationScore(v)
	return _c
}

// SetNillableValidationScore sets the "validation_score" field if the given value is not nil.
func (_c *MCQRecordCreate) SetNillableValidationScore(v *float64) *MCQRecordCreate {
	if v != nil {
		_c.SetValidationScore(*v)
	}
	return _c
}

// SetWasCorrected sets the "was_corrected" field.
func (_c *MCQRecordCreate) SetWasCorrected(v bool) *MCQRecordCreate {
	_c.mutation.SetWasCorrected(v)
	return _c
}

// SetNillableWasCorrected sets the "was_corrected" field if the given value is not nil.
func (_c *MCQRecordCreate) SetNillableWasCorrected(v *bool) *MCQRecordCreate {
	if v != nil {
		_c.SetWasCorrected(*v)
	}
	return _c
}

// Mutation returns the MCQRecordMutation object of the builder.
func (_c *MCQRecordCreate) Mutation() *MCQRecordMutation {
	return _c.mutation
}

// Save creates the MCQRecord in the database.
func (_c *MCQRecordCreate) Save(ctx context.Context) (*MCQRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MCQRecordCreate) SaveX(ctx context.Context) *MCQRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MCQRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MCQRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MCQRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := mcqrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		v := mcqrecord.DefaultQuestionNumber
		_c.mutation.SetQuestionNumber(v)
	}
	if _, ok := _c.mutation.ConceptName(); !ok {
		v := mcqrecord.DefaultConceptName
		_c.mutation.SetConceptName(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := mcqrecord.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.ValidationScore(); !ok {
		v := mcqrecord.DefaultValidationScore
		_c.mutation.SetValidationScore(v)
	}
	if _, ok := _c.mutation.WasCorrected(); !ok {
		v := mcqrecord.DefaultWasCorrected
		_c.mutation.SetWasCorrected(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MCQRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MCQRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MCQRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MCQRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := mcqrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "MCQRecord.question_number"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "MCQRecord.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := mcqrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptName(); !ok {
		return &ValidationError{Name: "concept_name", err: errors.New(`ent: missing required field "MCQRecord.concept_name"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "MCQRecord.difficulty"`)}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "MCQRecord.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := mcqrecord.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "MCQRecord.options"`)}
	}
	if _, ok := _c.mutation.CorrectLetter(); !ok {
		return &ValidationError{Name: "correct_letter", err: errors.New(`ent: missing required field "MCQRecord.correct_letter"`)}
	}
	if v, ok := _c.mutation.CorrectLetter(); ok {
		if err := mcqrecord.CorrectLetterValidator(v); err != nil {
			return &ValidationError{Name: "correct_letter", err: fmt.Errorf(`ent: validator failed for field "MCQRecord.correct_letter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidationScore(); !ok {
		return &ValidationError{Name: "validation_score", err: errors.New(`ent: missing required field "MCQRecord.validation_score"`)}
	}
	if _, ok := _c.mutation.WasCorrected(); !ok {
		return &ValidationError{Name: "was_corrected", err: errors.New(`ent: missing required field "MCQRecord.was_corrected"`)}
	}
	return nil
}

func (_c *MCQRecordCreate) sqlSave(ctx context.Context) (*MCQRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MCQRecordCreate) createSpec() (*MCQRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MCQRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mcqrecord.Table, sqlgraph.NewFieldSpec(mcqrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(mcqrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(mcqrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(mcqrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(mcqrecord.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(mcqrecord.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.ConceptName(); ok {
		_spec.SetField(mcqrecord.FieldConceptName, field.TypeString, value)
		_node.ConceptName = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(mcqrecord.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(mcqrecord.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(mcqrecord.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectLetter(); ok {
		_spec.SetField(mcqrecord.FieldCorrectLetter, field.TypeString, value)
		_node.CorrectLetter = value
	}
	if value, ok := _c.mutation.Explanations(); ok {
		_spec.SetField(mcqrecord.FieldExplanations, field.TypeJSON, value)
		_node.Explanations = value
	}
	if value, ok := _c.mutation.ValidationScore(); ok {
		_spec.SetField(mcqrecord.FieldValidationScore, field.TypeFloat64, value)
		_node.ValidationScore = value
	}
	if value, ok := _c.mutation.WasCorrected(); ok {
		_spec.SetField(mcqrecord.FieldWasCorrected, field.TypeBool, value)
		_node.WasCorrected = value
	}
	return _node, _spec
}

// MCQRecordCreateBulk is the builder for creating many MCQRecord entities in bulk.
type MCQRecordCreateBulk struct {
	config
	err      error
	builders []*MCQRecordCreate
}

// Save creates the MCQRecord entities in the database.
func (_c *MCQRecordCreateBulk) Save(ctx context.Context) ([]*MCQRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MCQRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MCQRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MCQRecordCreateBulk) SaveX(ctx context.Context) []*MCQRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MCQRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MCQRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
