// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mcqgen/ent/generationsession"
	"github.com/abhisek/mcqgen/ent/schema"
)

// GenerationSessionCreate is the builder for creating a GenerationSession entity.
type GenerationSessionCreate struct {
	config
	mutation *GenerationSessionMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GenerationSessionCreate) SetSequence(v int64) *GenerationSessionCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GenerationSessionCreate) SetTimestamp(v time.Time) *GenerationSessionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GenerationSessionCreate) SetNillableTimestamp(v *time.Time) *GenerationSessionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GenerationSessionCreate) SetSessionID(v string) *GenerationSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *GenerationSessionCreate) SetSourceName(v string) *GenerationSessionCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *GenerationSessionCreate) SetPhase(v string) *GenerationSessionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetConceptsExtracted sets the "concepts_extracted" field.
func (_c *GenerationSessionCreate) SetConceptsExtracted(v int) *GenerationSessionCreate {
	_c.mutation.SetConceptsExtracted(v)
	return _c
}

// SetNillableConceptsExtracted sets the "concepts_extracted" field if the given value is not nil.
func (_c *GenerationSessionCreate) SetNillableConceptsExtracted(v *int) *GenerationSessionCreate {
	if v != nil {
		_c.SetConceptsExtracted(*v)
	}
	return _c
}

// SetQuestionsGenerated sets the "questions_generated" field.
func (_c *GenerationSessionCreate) SetQuestionsGenerated(v int) *GenerationSessionCreate {
	_c.mutation.SetQuestionsGenerated(v)
	return _c
}

// SetNillableQuestionsGenerated sets the "questions_generated" field if the given value is not nil.
func (_c *GenerationSessionCreate) SetNillableQuestionsGenerated(v *int) *GenerationSessionCreate {
	if v != nil {
		_c.SetQuestionsGenerated(*v)
	}
	return _c
}

// SetQuestionsValidated sets the "questions_validated" field.
func (_c *GenerationSessionCreate) SetQuestionsValidated(v int) *GenerationSessionCreate {
	_c.mutation.SetQuestionsValidated(v)
	return _c
}

// SetNillableQuestionsValidated sets the "questions_validated" field if the given value is not nil.
func (_c *GenerationSessionCreate) SetNillableQuestionsValidated(v *int) *GenerationSessionCreate {
	if v != nil {
		_c.SetQuestionsValidated(*v)
	}
	return _c
}

// SetAnswersCorrected sets the "answers_corrected" field.
func (_c *GenerationSessionCreate) SetAnswersCorrected(v int) *GenerationSessionCreate {
	_c.mutation.SetAnswersCorrected(v)
	return _c
}

// SetNillableAnswersCorrected sets the "answers_corrected" field if the given value is not nil.
func (_c *GenerationSessionCreate) SetNillableAnswersCorrected(v *int) *GenerationSessionCreate {
	if v != nil {
		_c.SetAnswersCorrected(*v)
	}
	return _c
}

// SetQuestionsDropped sets the "questions_dropped" field.
func (_c *GenerationSessionCreate) SetQuestionsDropped(v int) *GenerationSessionCreate {
	_c.mutation.SetQuestionsDropped(v)
	return _c
}

// SetNillableQuestionsDropped sets the "questions_dropped" field if the given value is not nil.
func (_c *GenerationSessionCreate) SetNillableQuestionsDropped(v *int) *GenerationSessionCreate {
	if v != nil {
		_c.SetQuestionsDropped(*v)
	}
	return _c
}

// SetMcqCount sets the "mcq_count" field.
func (_c *GenerationSessionCreate) SetMcqCount(v int) *GenerationSessionCreate {
	_c.mutation.SetMcqCount(v)
	return _c
}

// SetNillableMcqCount sets the "mcq_count" field if the given value is not nil.
func (_c *GenerationSessionCreate) SetNillableMcqCount(v *int) *GenerationSessionCreate {
	if v != nil {
		_c.SetMcqCount(*v)
	}
	return _c
}

// SetDrops sets the "drops" field.
func (_c *GenerationSessionCreate) SetDrops(v []schema.DropSummary) *GenerationSessionCreate {
	_c.mutation.SetDrops(v)
	return _c
}

// SetDifficultyDistribution sets the "difficulty_distribution" field.
func (_c *GenerationSessionCreate) SetDifficultyDistribution(v map[string]int) *GenerationSessionCreate {
	_c.mutation.SetDifficultyDistribution(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *GenerationSessionCreate) SetDurationMs(v int64) *GenerationSessionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *GenerationSessionCreate) SetNillableDurationMs(v *int64) *GenerationSessionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the GenerationSessionMutation object of the builder.
func (_c *GenerationSessionCreate) Mutation() *GenerationSessionMutation {
	return _c.mutation
}

// Save creates the GenerationSession in the database.
func (_c *GenerationSessionCreate) Save(ctx context.Context) (*GenerationSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationSessionCreate) SaveX(ctx context.Context) *GenerationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationSessionCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := generationsession.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ConceptsExtracted(); !ok {
		v := generationsession.DefaultConceptsExtracted
		_c.mutation.SetConceptsExtracted(v)
	}
	if _, ok := _c.mutation.QuestionsGenerated(); !ok {
		v := generationsession.DefaultQuestionsGenerated
		_c.mutation.SetQuestionsGenerated(v)
	}
	if _, ok := _c.mutation.QuestionsValidated(); !ok {
		v := generationsession.DefaultQuestionsValidated
		_c.mutation.SetQuestionsValidated(v)
	}
	if _, ok := _c.mutation.AnswersCorrected(); !ok {
		v := generationsession.DefaultAnswersCorrected
		_c.mutation.SetAnswersCorrected(v)
	}
	if _, ok := _c.mutation.QuestionsDropped(); !ok {
		v := generationsession.DefaultQuestionsDropped
		_c.mutation.SetQuestionsDropped(v)
	}
	if _, ok := _c.mutation.McqCount(); !ok {
		v := generationsession.DefaultMcqCount
		_c.mutation.SetMcqCount(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := generationsession.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationSessionCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GenerationSession.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GenerationSession.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GenerationSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := generationsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GenerationSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "GenerationSession.source_name"`)}
	}
	if v, ok := _c.mutation.SourceName(); ok {
		if err := generationsession.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "GenerationSession.source_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "GenerationSession.phase"`)}
	}
	if _, ok := _c.mutation.ConceptsExtracted(); !ok {
		return &ValidationError{Name: "concepts_extracted", err: errors.New(`ent: missing required field "GenerationSession.concepts_extracted"`)}
	}
	if _, ok := _c.mutation.QuestionsGenerated(); !ok {
		return &ValidationError{Name: "questions_generated", err: errors.New(`ent: missing required field "GenerationSession.questions_generated"`)}
	}
	if _, ok := _c.mutation.QuestionsValidated(); !ok {
		return &ValidationError{Name: "questions_validated", err: errors.New(`ent: missing required field "GenerationSession.questions_validated"`)}
	}
	if _, ok := _c.mutation.AnswersCorrected(); !ok {
		return &ValidationError{Name: "answers_corrected", err: errors.New(`ent: missing required field "GenerationSession.answers_corrected"`)}
	}
	if _, ok := _c.mutation.QuestionsDropped(); !ok {
		return &ValidationError{Name: "questions_dropped", err: errors.New(`ent: missing required field "GenerationSession.questions_dropped"`)}
	}
	if _, ok := _c.mutation.McqCount(); !ok {
		return &ValidationError{Name: "mcq_count", err: errors.New(`ent: missing required field "GenerationSession.mcq_count"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "GenerationSession.duration_ms"`)}
	}
	return nil
}

func (_c *GenerationSessionCreate) sqlSave(ctx context.Context) (*GenerationSession, error) {
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

func (_c *GenerationSessionCreate) createSpec() (*GenerationSession, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationsession.Table, sqlgraph.NewFieldSpec(generationsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(generationsession.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(generationsession.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(generationsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(generationsession.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(generationsession.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.ConceptsExtracted(); ok {
		_spec.SetField(generationsession.FieldConceptsExtracted, field.TypeInt, value)
		_node.ConceptsExtracted = value
	}
	if value, ok := _c.mutation.QuestionsGenerated(); ok {
		_spec.SetField(generationsession.FieldQuestionsGenerated, field.TypeInt, value)
		_node.QuestionsGenerated = value
	}
	if value, ok := _c.mutation.QuestionsValidated(); ok {
		_spec.SetField(generationsession.FieldQuestionsValidated, field.TypeInt, value)
		_node.QuestionsValidated = value
	}
	if value, ok := _c.mutation.AnswersCorrected(); ok {
		_spec.SetField(generationsession.FieldAnswersCorrected, field.TypeInt, value)
		_node.AnswersCorrected = value
	}
	if value, ok := _c.mutation.QuestionsDropped(); ok {
		_spec.SetField(generationsession.FieldQuestionsDropped, field.TypeInt, value)
		_node.QuestionsDropped = value
	}
	if value, ok := _c.mutation.McqCount(); ok {
		_spec.SetField(generationsession.FieldMcqCount, field.TypeInt, value)
		_node.McqCount = value
	}
	if value, ok := _c.mutation.Drops(); ok {
		_spec.SetField(generationsession.FieldDrops, field.TypeJSON, value)
		_node.Drops = value
	}
	if value, ok := _c.mutation.DifficultyDistribution(); ok {
		_spec.SetField(generationsession.FieldDifficultyDistribution, field.TypeJSON, value)
		_node.DifficultyDistribution = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(generationsession.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// GenerationSessionCreateBulk is the builder for creating many GenerationSession entities in bulk.
type GenerationSessionCreateBulk struct {
	config
	err      error
	builders []*GenerationSessionCreate
}

// Save creates the GenerationSession entities in the database.
func (_c *GenerationSessionCreateBulk) Save(ctx context.Context) ([]*GenerationSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationSessionMutation)
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
func (_c *GenerationSessionCreateBulk) SaveX(ctx context.Context) []*GenerationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
