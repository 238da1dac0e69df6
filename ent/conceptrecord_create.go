// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mcqgen/ent/conceptrecord"
)

// ConceptRecordCreate is the builder for creating a ConceptRecord entity.
type ConceptRecordCreate struct {
	config
	mutation *ConceptRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ConceptRecordCreate) SetSequence(v int64) *ConceptRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ConceptRecordCreate) SetTimestamp(v time.Time) *ConceptRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableTimestamp(v *time.Time) *ConceptRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ConceptRecordCreate) SetSessionID(v string) *ConceptRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ConceptRecordCreate) SetConceptID(v string) *ConceptRecordCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableConceptID(v *string) *ConceptRecordCreate {
	if v != nil {
		_c.SetConceptID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ConceptRecordCreate) SetName(v string) *ConceptRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFormula sets the "formula" field.
func (_c *ConceptRecordCreate) SetFormula(v string) *ConceptRecordCreate {
	_c.mutation.SetFormula(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ConceptRecordCreate) SetDifficulty(v string) *ConceptRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *ConceptRecordCreate) SetContext(v string) *ConceptRecordCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableContext(v *string) *ConceptRecordCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *ConceptRecordCreate) SetPrerequisites(v []string) *ConceptRecordCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetWorkedExample sets the "worked_example" field.
func (_c *ConceptRecordCreate) SetWorkedExample(v string) *ConceptRecordCreate {
	_c.mutation.SetWorkedExample(v)
	return _c
}

// SetNillableWorkedExample sets the "worked_example" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableWorkedExample(v *string) *ConceptRecordCreate {
	if v != nil {
		_c.SetWorkedExample(*v)
	}
	return _c
}

// Mutation returns the ConceptRecordMutation object of the builder.
func (_c *ConceptRecordCreate) Mutation() *ConceptRecordMutation {
	return _c.mutation
}

// Save creates the ConceptRecord in the database.
func (_c *ConceptRecordCreate) Save(ctx context.Context) (*ConceptRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptRecordCreate) SaveX(ctx context.Context) *ConceptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := conceptrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		v := conceptrecord.DefaultConceptID
		_c.mutation.SetConceptID(v)
	}
	if _, ok := _c.mutation.Context(); !ok {
		v := conceptrecord.DefaultContext
		_c.mutation.SetContext(v)
	}
	if _, ok := _c.mutation.WorkedExample(); !ok {
		v := conceptrecord.DefaultWorkedExample
		_c.mutation.SetWorkedExample(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ConceptRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ConceptRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ConceptRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := conceptrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ConceptRecord.concept_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ConceptRecord.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := conceptrecord.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Formula(); !ok {
		return &ValidationError{Name: "formula", err: errors.New(`ent: missing required field "ConceptRecord.formula"`)}
	}
	if v, ok := _c.mutation.Formula(); ok {
		if err := conceptrecord.FormulaValidator(v); err != nil {
			return &ValidationError{Name: "formula", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.formula": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ConceptRecord.difficulty"`)}
	}
	if _, ok := _c.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "ConceptRecord.context"`)}
	}
	if _, ok := _c.mutation.WorkedExample(); !ok {
		return &ValidationError{Name: "worked_example", err: errors.New(`ent: missing required field "ConceptRecord.worked_example"`)}
	}
	return nil
}

func (_c *ConceptRecordCreate) sqlSave(ctx context.Context) (*ConceptRecord, error) {
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

func (_c *ConceptRecordCreate) createSpec() (*ConceptRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptrecord.Table, sqlgraph.NewFieldSpec(conceptrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(conceptrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(conceptrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(conceptrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(conceptrecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(conceptrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Formula(); ok {
		_spec.SetField(conceptrecord.FieldFormula, field.TypeString, value)
		_node.Formula = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(conceptrecord.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(conceptrecord.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(conceptrecord.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	if value, ok := _c.mutation.WorkedExample(); ok {
		_spec.SetField(conceptrecord.FieldWorkedExample, field.TypeString, value)
		_node.WorkedExample = value
	}
	return _node, _spec
}

// ConceptRecordCreateBulk is the builder for creating many ConceptRecord entities in bulk.
type ConceptRecordCreateBulk struct {
	config
	err      error
	builders []*ConceptRecordCreate
}

// Save creates the ConceptRecord entities in the database.
func (_c *ConceptRecordCreateBulk) Save(ctx context.Context) ([]*ConceptRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptRecordMutation)
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
func (_c *ConceptRecordCreateBulk) SaveX(ctx context.Context) []*ConceptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
