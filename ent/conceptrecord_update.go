// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mcqgen/ent/conceptrecord"
	"github.com/abhisek/mcqgen/ent/predicate"
)

// ConceptRecordUpdate is the builder for updating ConceptRecord entities.
type ConceptRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptRecordMutation
}

// Where appends a list predicates to the ConceptRecordUpdate builder.
func (_u *ConceptRecordUpdate) Where(ps ...predicate.ConceptRecord) *ConceptRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ConceptRecordUpdate) SetSessionID(v string) *ConceptRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableSessionID(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptRecordUpdate) SetConceptID(v string) *ConceptRecordUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableConceptID(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConceptRecordUpdate) SetName(v string) *ConceptRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableName(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFormula sets the "formula" field.
func (_u *ConceptRecordUpdate) SetFormula(v string) *ConceptRecordUpdate {
	_u.mutation.SetFormula(v)
	return _u
}

// SetNillableFormula sets the "formula" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableFormula(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetFormula(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ConceptRecordUpdate) SetDifficulty(v string) *ConceptRecordUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableDifficulty(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ConceptRecordUpdate) SetContext(v string) *ConceptRecordUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableContext(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *ConceptRecordUpdate) SetPrerequisites(v []string) *ConceptRecordUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *ConceptRecordUpdate) AppendPrerequisites(v []string) *ConceptRecordUpdate {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *ConceptRecordUpdate) ClearPrerequisites() *ConceptRecordUpdate {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetWorkedExample sets the "worked_example" field.
func (_u *ConceptRecordUpdate) SetWorkedExample(v string) *ConceptRecordUpdate {
	_u.mutation.SetWorkedExample(v)
	return _u
}

// SetNillableWorkedExample sets the "worked_example" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableWorkedExample(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetWorkedExample(*v)
	}
	return _u
}

// Mutation returns the ConceptRecordMutation object of the builder.
func (_u *ConceptRecordUpdate) Mutation() *ConceptRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := conceptrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := conceptrecord.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Formula(); ok {
		if err := conceptrecord.FormulaValidator(v); err != nil {
			return &ValidationError{Name: "formula", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.formula": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptrecord.Table, conceptrecord.Columns, sqlgraph.NewFieldSpec(conceptrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(conceptrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(conceptrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(conceptrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Formula(); ok {
		_spec.SetField(conceptrecord.FieldFormula, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(conceptrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(conceptrecord.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(conceptrecord.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conceptrecord.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(conceptrecord.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkedExample(); ok {
		_spec.SetField(conceptrecord.FieldWorkedExample, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptRecordUpdateOne is the builder for updating a single ConceptRecord entity.
type ConceptRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ConceptRecordUpdateOne) SetSessionID(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableSessionID(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptRecordUpdateOne) SetConceptID(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableConceptID(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConceptRecordUpdateOne) SetName(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableName(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFormula sets the "formula" field.
func (_u *ConceptRecordUpdateOne) SetFormula(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetFormula(v)
	return _u
}

// SetNillableFormula sets the "formula" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableFormula(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetFormula(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ConceptRecordUpdateOne) SetDifficulty(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableDifficulty(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ConceptRecordUpdateOne) SetContext(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableContext(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *ConceptRecordUpdateOne) SetPrerequisites(v []string) *ConceptRecordUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *ConceptRecordUpdateOne) AppendPrerequisites(v []string) *ConceptRecordUpdateOne {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *ConceptRecordUpdateOne) ClearPrerequisites() *ConceptRecordUpdateOne {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetWorkedExample sets the "worked_example" field.
func (_u *ConceptRecordUpdateOne) SetWorkedExample(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetWorkedExample(v)
	return _u
}

// SetNillableWorkedExample sets the "worked_example" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableWorkedExample(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetWorkedExample(*v)
	}
	return _u
}

// Mutation returns the ConceptRecordMutation object of the builder.
func (_u *ConceptRecordUpdateOne) Mutation() *ConceptRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptRecordUpdate builder.
func (_u *ConceptRecordUpdateOne) Where(ps ...predicate.ConceptRecord) *ConceptRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptRecordUpdateOne) Select(field string, fields ...string) *ConceptRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptRecord entity.
func (_u *ConceptRecordUpdateOne) Save(ctx context.Context) (*ConceptRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptRecordUpdateOne) SaveX(ctx context.Context) *ConceptRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := conceptrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := conceptrecord.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Formula(); ok {
		if err := conceptrecord.FormulaValidator(v); err != nil {
			return &ValidationError{Name: "formula", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.formula": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptRecordUpdateOne) sqlSave(ctx context.Context) (_node *ConceptRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptrecord.Table, conceptrecord.Columns, sqlgraph.NewFieldSpec(conceptrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptrecord.FieldID)
		for _, f := range fields {
			if !conceptrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptrecord.FieldID {
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
		_spec.SetField(conceptrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(conceptrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(conceptrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Formula(); ok {
		_spec.SetField(conceptrecord.FieldFormula, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(conceptrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(conceptrecord.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(conceptrecord.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conceptrecord.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(conceptrecord.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkedExample(); ok {
		_spec.SetField(conceptrecord.FieldWorkedExample, field.TypeString, value)
	}
	_node = &ConceptRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
