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
	"github.com/abhisek/mcqgen/ent/generationsession"
	"github.com/abhisek/mcqgen/ent/predicate"
	"github.com/abhisek/mcqgen/ent/schema"
)

// GenerationSessionUpdate is the builder for updating GenerationSession entities.
type GenerationSessionUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationSessionMutation
}

// Where appends a list predicates to the GenerationSessionUpdate builder.
func (_u *GenerationSessionUpdate) Where(ps ...predicate.GenerationSession) *GenerationSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GenerationSessionUpdate) SetSessionID(v string) *GenerationSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableSessionID(v *string) *GenerationSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *GenerationSessionUpdate) SetSourceName(v string) *GenerationSessionUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableSourceName(v *string) *GenerationSessionUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *GenerationSessionUpdate) SetPhase(v string) *GenerationSessionUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillablePhase(v *string) *GenerationSessionUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetConceptsExtracted sets the "concepts_extracted" field.
func (_u *GenerationSessionUpdate) SetConceptsExtracted(v int) *GenerationSessionUpdate {
	_u.mutation.ResetConceptsExtracted()
	_u.mutation.SetConceptsExtracted(v)
	return _u
}

// SetNillableConceptsExtracted sets the "concepts_extracted" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableConceptsExtracted(v *int) *GenerationSessionUpdate {
	if v != nil {
		_u.SetConceptsExtracted(*v)
	}
	return _u
}

// AddConceptsExtracted adds value to the "concepts_extracted" field.
func (_u *GenerationSessionUpdate) AddConceptsExtracted(v int) *GenerationSessionUpdate {
	_u.mutation.AddConceptsExtracted(v)
	return _u
}

// SetQuestionsGenerated sets the "questions_generated" field.
func (_u *GenerationSessionUpdate) SetQuestionsGenerated(v int) *GenerationSessionUpdate {
	_u.mutation.ResetQuestionsGenerated()
	_u.mutation.SetQuestionsGenerated(v)
	return _u
}

// SetNillableQuestionsGenerated sets the "questions_generated" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableQuestionsGenerated(v *int) *GenerationSessionUpdate {
	if v != nil {
		_u.SetQuestionsGenerated(*v)
	}
	return _u
}

// AddQuestionsGenerated adds value to the "questions_generated" field.
func (_u *GenerationSessionUpdate) AddQuestionsGenerated(v int) *GenerationSessionUpdate {
	_u.mutation.AddQuestionsGenerated(v)
	return _u
}

// SetQuestionsValidated sets the "questions_validated" field.
func (_u *GenerationSessionUpdate) SetQuestionsValidated(v int) *GenerationSessionUpdate {
	_u.mutation.ResetQuestionsValidated()
	_u.mutation.SetQuestionsValidated(v)
	return _u
}

// SetNillableQuestionsValidated sets the "questions_validated" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableQuestionsValidated(v *int) *GenerationSessionUpdate {
	if v != nil {
		_u.SetQuestionsValidated(*v)
	}
	return _u
}

// AddQuestionsValidated adds value to the "questions_validated" field.
func (_u *GenerationSessionUpdate) AddQuestionsValidated(v int) *GenerationSessionUpdate {
	_u.mutation.AddQuestionsValidated(v)
	return _u
}

// SetAnswersCorrected sets the "answers_corrected" field.
func (_u *GenerationSessionUpdate) SetAnswersCorrected(v int) *GenerationSessionUpdate {
	_u.mutation.ResetAnswersCorrected()
	_u.mutation.SetAnswersCorrected(v)
	return _u
}

// SetNillableAnswersCorrected sets the "answers_corrected" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableAnswersCorrected(v *int) *GenerationSessionUpdate {
	if v != nil {
		_u.SetAnswersCorrected(*v)
	}
	return _u
}

// AddAnswersCorrected adds value to the "answers_corrected" field.
func (_u *GenerationSessionUpdate) AddAnswersCorrected(v int) *GenerationSessionUpdate {
	_u.mutation.AddAnswersCorrected(v)
	return _u
}

// SetQuestionsDropped sets the "questions_dropped" field.
func (_u *GenerationSessionUpdate) SetQuestionsDropped(v int) *GenerationSessionUpdate {
	_u.mutation.ResetQuestionsDropped()
	_u.mutation.SetQuestionsDropped(v)
	return _u
}

// SetNillableQuestionsDropped sets the "questions_dropped" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableQuestionsDropped(v *int) *GenerationSessionUpdate {
	if v != nil {
		_u.SetQuestionsDropped(*v)
	}
	return _u
}

// AddQuestionsDropped adds value to the "questions_dropped" field.
func (_u *GenerationSessionUpdate) AddQuestionsDropped(v int) *GenerationSessionUpdate {
	_u.mutation.AddQuestionsDropped(v)
	return _u
}

// SetMcqCount sets the "mcq_count" field.
func (_u *GenerationSessionUpdate) SetMcqCount(v int) *GenerationSessionUpdate {
	_u.mutation.ResetMcqCount()
	_u.mutation.SetMcqCount(v)
	return _u
}

// SetNillableMcqCount sets the "mcq_count" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableMcqCount(v *int) *GenerationSessionUpdate {
	if v != nil {
		_u.SetMcqCount(*v)
	}
	return _u
}

// AddMcqCount adds value to the "mcq_count" field.
func (_u *GenerationSessionUpdate) AddMcqCount(v int) *GenerationSessionUpdate {
	_u.mutation.AddMcqCount(v)
	return _u
}

// SetDrops sets the "drops" field.
func (_u *GenerationSessionUpdate) SetDrops(v []schema.DropSummary) *GenerationSessionUpdate {
	_u.mutation.SetDrops(v)
	return _u
}

// AppendDrops appends value to the "drops" field.
func (_u *GenerationSessionUpdate) AppendDrops(v []schema.DropSummary) *GenerationSessionUpdate {
	_u.mutation.AppendDrops(v)
	return _u
}

// ClearDrops clears the value of the "drops" field.
func (_u *GenerationSessionUpdate) ClearDrops() *GenerationSessionUpdate {
	_u.mutation.ClearDrops()
	return _u
}

// SetDifficultyDistribution sets the "difficulty_distribution" field.
func (_u *GenerationSessionUpdate) SetDifficultyDistribution(v map[string]int) *GenerationSessionUpdate {
	_u.mutation.SetDifficultyDistribution(v)
	return _u
}

// ClearDifficultyDistribution clears the value of the "difficulty_distribution" field.
func (_u *GenerationSessionUpdate) ClearDifficultyDistribution() *GenerationSessionUpdate {
	_u.mutation.ClearDifficultyDistribution()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *GenerationSessionUpdate) SetDurationMs(v int64) *GenerationSessionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *GenerationSessionUpdate) SetNillableDurationMs(v *int64) *GenerationSessionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *GenerationSessionUpdate) AddDurationMs(v int64) *GenerationSessionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the GenerationSessionMutation object of the builder.
func (_u *GenerationSessionUpdate) Mutation() *GenerationSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := generationsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GenerationSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceName(); ok {
		if err := generationsession.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "GenerationSession.source_name": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationsession.Table, generationsession.Columns, sqlgraph.NewFieldSpec(generationsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(generationsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(generationsession.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(generationsession.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptsExtracted(); ok {
		_spec.SetField(generationsession.FieldConceptsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptsExtracted(); ok {
		_spec.AddField(generationsession.FieldConceptsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsGenerated(); ok {
		_spec.SetField(generationsession.FieldQuestionsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsGenerated(); ok {
		_spec.AddField(generationsession.FieldQuestionsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsValidated(); ok {
		_spec.SetField(generationsession.FieldQuestionsValidated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsValidated(); ok {
		_spec.AddField(generationsession.FieldQuestionsValidated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswersCorrected(); ok {
		_spec.SetField(generationsession.FieldAnswersCorrected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswersCorrected(); ok {
		_spec.AddField(generationsession.FieldAnswersCorrected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsDropped(); ok {
		_spec.SetField(generationsession.FieldQuestionsDropped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsDropped(); ok {
		_spec.AddField(generationsession.FieldQuestionsDropped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.McqCount(); ok {
		_spec.SetField(generationsession.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMcqCount(); ok {
		_spec.AddField(generationsession.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Drops(); ok {
		_spec.SetField(generationsession.FieldDrops, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDrops(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generationsession.FieldDrops, value)
		})
	}
	if _u.mutation.DropsCleared() {
		_spec.ClearField(generationsession.FieldDrops, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyDistribution(); ok {
		_spec.SetField(generationsession.FieldDifficultyDistribution, field.TypeJSON, value)
	}
	if _u.mutation.DifficultyDistributionCleared() {
		_spec.ClearField(generationsession.FieldDifficultyDistribution, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(generationsession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(generationsession.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationSessionUpdateOne is the builder for updating a single GenerationSession entity.
type GenerationSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *GenerationSessionUpdateOne) SetSessionID(v string) *GenerationSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableSessionID(v *string) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *GenerationSessionUpdateOne) SetSourceName(v string) *GenerationSessionUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableSourceName(v *string) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *GenerationSessionUpdateOne) SetPhase(v string) *GenerationSessionUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillablePhase(v *string) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetConceptsExtracted sets the "concepts_extracted" field.
func (_u *GenerationSessionUpdateOne) SetConceptsExtracted(v int) *GenerationSessionUpdateOne {
	_u.mutation.ResetConceptsExtracted()
	_u.mutation.SetConceptsExtracted(v)
	return _u
}

// SetNillableConceptsExtracted sets the "concepts_extracted" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableConceptsExtracted(v *int) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetConceptsExtracted(*v)
	}
	return _u
}

// AddConceptsExtracted adds value to the "concepts_extracted" field.
func (_u *GenerationSessionUpdateOne) AddConceptsExtracted(v int) *GenerationSessionUpdateOne {
	_u.mutation.AddConceptsExtracted(v)
	return _u
}

// SetQuestionsGenerated sets the "questions_generated" field.
func (_u *GenerationSessionUpdateOne) SetQuestionsGenerated(v int) *GenerationSessionUpdateOne {
	_u.mutation.ResetQuestionsGenerated()
	_u.mutation.SetQuestionsGenerated(v)
	return _u
}

// SetNillableQuestionsGenerated sets the "questions_generated" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableQuestionsGenerated(v *int) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsGenerated(*v)
	}
	return _u
}

// AddQuestionsGenerated adds value to the "questions_generated" field.
func (_u *GenerationSessionUpdateOne) AddQuestionsGenerated(v int) *GenerationSessionUpdateOne {
	_u.mutation.AddQuestionsGenerated(v)
	return _u
}

// SetQuestionsValidated sets the "questions_validated" field.
func (_u *GenerationSessionUpdateOne) SetQuestionsValidated(v int) *GenerationSessionUpdateOne {
	_u.mutation.ResetQuestionsValidated()
	_u.mutation.SetQuestionsValidated(v)
	return _u
}

// SetNillableQuestionsValidated sets the "questions_validated" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableQuestionsValidated(v *int) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsValidated(*v)
	}
	return _u
}

// AddQuestionsValidated adds value to the "questions_validated" field.
func (_u *GenerationSessionUpdateOne) AddQuestionsValidated(v int) *GenerationSessionUpdateOne {
	_u.mutation.AddQuestionsValidated(v)
	return _u
}

// SetAnswersCorrected sets the "answers_corrected" field.
func (_u *GenerationSessionUpdateOne) SetAnswersCorrected(v int) *GenerationSessionUpdateOne {
	_u.mutation.ResetAnswersCorrected()
	_u.mutation.SetAnswersCorrected(v)
	return _u
}

// SetNillableAnswersCorrected sets the "answers_corrected" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableAnswersCorrected(v *int) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetAnswersCorrected(*v)
	}
	return _u
}

// AddAnswersCorrected adds value to the "answers_corrected" field.
func (_u *GenerationSessionUpdateOne) AddAnswersCorrected(v int) *GenerationSessionUpdateOne {
	_u.mutation.AddAnswersCorrected(v)
	return _u
}

// SetQuestionsDropped sets the "questions_dropped" field.
func (_u *GenerationSessionUpdateOne) SetQuestionsDropped(v int) *GenerationSessionUpdateOne {
	_u.mutation.ResetQuestionsDropped()
	_u.mutation.SetQuestionsDropped(v)
	return _u
}

// SetNillableQuestionsDropped sets the "questions_dropped" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableQuestionsDropped(v *int) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsDropped(*v)
	}
	return _u
}

// AddQuestionsDropped adds value to the "questions_dropped" field.
func (_u *GenerationSessionUpdateOne) AddQuestionsDropped(v int) *GenerationSessionUpdateOne {
	_u.mutation.AddQuestionsDropped(v)
	return _u
}

// SetMcqCount sets the "mcq_count" field.
func (_u *GenerationSessionUpdateOne) SetMcqCount(v int) *GenerationSessionUpdateOne {
	_u.mutation.ResetMcqCount()
	_u.mutation.SetMcqCount(v)
	return _u
}

// SetNillableMcqCount sets the "mcq_count" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableMcqCount(v *int) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetMcqCount(*v)
	}
	return _u
}

// AddMcqCount adds value to the "mcq_count" field.
func (_u *GenerationSessionUpdateOne) AddMcqCount(v int) *GenerationSessionUpdateOne {
	_u.mutation.AddMcqCount(v)
	return _u
}

// SetDrops sets the "drops" field.
func (_u *GenerationSessionUpdateOne) SetDrops(v []schema.DropSummary) *GenerationSessionUpdateOne {
	_u.mutation.SetDrops(v)
	return _u
}

// AppendDrops appends value to the "drops" field.
func (_u *GenerationSessionUpdateOne) AppendDrops(v []schema.DropSummary) *GenerationSessionUpdateOne {
	_u.mutation.AppendDrops(v)
	return _u
}

// ClearDrops clears the value of the "drops" field.
func (_u *GenerationSessionUpdateOne) ClearDrops() *GenerationSessionUpdateOne {
	_u.mutation.ClearDrops()
	return _u
}

// SetDifficultyDistribution sets the "difficulty_distribution" field.
func (_u *GenerationSessionUpdateOne) SetDifficultyDistribution(v map[string]int) *GenerationSessionUpdateOne {
	_u.mutation.SetDifficultyDistribution(v)
	return _u
}

// ClearDifficultyDistribution clears the value of the "difficulty_distribution" field.
func (_u *GenerationSessionUpdateOne) ClearDifficultyDistribution() *GenerationSessionUpdateOne {
	_u.mutation.ClearDifficultyDistribution()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *GenerationSessionUpdateOne) SetDurationMs(v int64) *GenerationSessionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *GenerationSessionUpdateOne) SetNillableDurationMs(v *int64) *GenerationSessionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *GenerationSessionUpdateOne) AddDurationMs(v int64) *GenerationSessionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the GenerationSessionMutation object of the builder.
func (_u *GenerationSessionUpdateOne) Mutation() *GenerationSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationSessionUpdate builder.
func (_u *GenerationSessionUpdateOne) Where(ps ...predicate.GenerationSession) *GenerationSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationSessionUpdateOne) Select(field string, fields ...string) *GenerationSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationSession entity.
func (_u *GenerationSessionUpdateOne) Save(ctx context.Context) (*GenerationSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationSessionUpdateOne) SaveX(ctx context.Context) *GenerationSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := generationsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GenerationSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceName(); ok {
		if err := generationsession.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "GenerationSession.source_name": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationSessionUpdateOne) sqlSave(ctx context.Context) (_node *GenerationSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationsession.Table, generationsession.Columns, sqlgraph.NewFieldSpec(generationsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationsession.FieldID)
		for _, f := range fields {
			if !generationsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationsession.FieldID {
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
		_spec.SetField(generationsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(generationsession.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(generationsession.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptsExtracted(); ok {
		_spec.SetField(generationsession.FieldConceptsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptsExtracted(); ok {
		_spec.AddField(generationsession.FieldConceptsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsGenerated(); ok {
		_spec.SetField(generationsession.FieldQuestionsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsGenerated(); ok {
		_spec.AddField(generationsession.FieldQuestionsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsValidated(); ok {
		_spec.SetField(generationsession.FieldQuestionsValidated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsValidated(); ok {
		_spec.AddField(generationsession.FieldQuestionsValidated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswersCorrected(); ok {
		_spec.SetField(generationsession.FieldAnswersCorrected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswersCorrected(); ok {
		_spec.AddField(generationsession.FieldAnswersCorrected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsDropped(); ok {
		_spec.SetField(generationsession.FieldQuestionsDropped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsDropped(); ok {
		_spec.AddField(generationsession.FieldQuestionsDropped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.McqCount(); ok {
		_spec.SetField(generationsession.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMcqCount(); ok {
		_spec.AddField(generationsession.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Drops(); ok {
		_spec.SetField(generationsession.FieldDrops, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDrops(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generationsession.FieldDrops, value)
		})
	}
	if _u.mutation.DropsCleared() {
		_spec.ClearField(generationsession.FieldDrops, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyDistribution(); ok {
		_spec.SetField(generationsession.FieldDifficultyDistribution, field.TypeJSON, value)
	}
	if _u.mutation.DifficultyDistributionCleared() {
		_spec.ClearField(generationsession.FieldDifficultyDistribution, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(generationsession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(generationsession.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &GenerationSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
