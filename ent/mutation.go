// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mcqgen/ent/conceptrecord"
	"github.com/abhisek/mcqgen/ent/generationsession"
	"github.com/abhisek/mcqgen/ent/llmrequestevent"
	"github.com/abhisek/mcqgen/ent/mcqrecord"
	"github.com/abhisek/mcqgen/ent/predicate"
	"github.com/abhisek/mcqgen/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConceptRecord     = "ConceptRecord"
	TypeGenerationSession = "GenerationSession"
	TypeLLMRequestEvent   = "LLMRequestEvent"
	TypeMCQRecord         = "MCQRecord"
)

// ConceptRecordMutation represents an operation that mutates the ConceptRecord nodes in the graph.
type ConceptRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	session_id          *string
	concept_id          *string
	name                *string
	formula             *string
	difficulty          *string
	context             *string
	prerequisites       *[]string
	appendprerequisites []string
	worked_example      *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ConceptRecord, error)
	predicates          []predicate.ConceptRecord
}

var _ ent.Mutation = (*ConceptRecordMutation)(nil)

// conceptrecordOption allows management of the mutation configuration using functional options.
type conceptrecordOption func(*ConceptRecordMutation)

// newConceptRecordMutation creates new mutation for the ConceptRecord entity.
func newConceptRecordMutation(c config, op Op, opts ...conceptrecordOption) *ConceptRecordMutation {
	m := &ConceptRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeConceptRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConceptRecordID sets the ID field of the mutation.
func withConceptRecordID(id int) conceptrecordOption {
	return func(m *ConceptRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ConceptRecord
		)
		m.oldValue = func(ctx context.Context) (*ConceptRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConceptRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConceptRecord sets the old ConceptRecord of the mutation.
func withConceptRecord(node *ConceptRecord) conceptrecordOption {
	return func(m *ConceptRecordMutation) {
		m.oldValue = func(context.Context) (*ConceptRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConceptRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConceptRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConceptRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConceptRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConceptRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ConceptRecordMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ConceptRecordMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ConceptRecordMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ConceptRecordMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ConceptRecordMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ConceptRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ConceptRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ConceptRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ConceptRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ConceptRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ConceptRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *ConceptRecordMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *ConceptRecordMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *ConceptRecordMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetName sets the "name" field.
func (m *ConceptRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConceptRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConceptRecordMutation) ResetName() {
	m.name = nil
}

// SetFormula sets the "formula" field.
func (m *ConceptRecordMutation) SetFormula(s string) {
	m.formula = &s
}

// Formula returns the value of the "formula" field in the mutation.
func (m *ConceptRecordMutation) Formula() (r string, exists bool) {
	v := m.formula
	if v == nil {
		return
	}
	return *v, true
}

// OldFormula returns the old "formula" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldFormula(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormula is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormula requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormula: %w", err)
	}
	return oldValue.Formula, nil
}

// ResetFormula resets all changes to the "formula" field.
func (m *ConceptRecordMutation) ResetFormula() {
	m.formula = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ConceptRecordMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ConceptRecordMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ConceptRecordMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetContext sets the "context" field.
func (m *ConceptRecordMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *ConceptRecordMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ResetContext resets all changes to the "context" field.
func (m *ConceptRecordMutation) ResetContext() {
	m.context = nil
}

// SetPrerequisites sets the "prerequisites" field.
func (m *ConceptRecordMutation) SetPrerequisites(s []string) {
	m.prerequisites = &s
	m.appendprerequisites = nil
}

// Prerequisites returns the value of the "prerequisites" field in the mutation.
func (m *ConceptRecordMutation) Prerequisites() (r []string, exists bool) {
	v := m.prerequisites
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisites returns the old "prerequisites" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldPrerequisites(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisites is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisites requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisites: %w", err)
	}
	return oldValue.Prerequisites, nil
}

// AppendPrerequisites adds s to the "prerequisites" field.
func (m *ConceptRecordMutation) AppendPrerequisites(s []string) {
	m.appendprerequisites = append(m.appendprerequisites, s...)
}

// AppendedPrerequisites returns the list of values that were appended to the "prerequisites" field in this mutation.
func (m *ConceptRecordMutation) AppendedPrerequisites() ([]string, bool) {
	if len(m.appendprerequisites) == 0 {
		return nil, false
	}
	return m.appendprerequisites, true
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (m *ConceptRecordMutation) ClearPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	m.clearedFields[conceptrecord.FieldPrerequisites] = struct{}{}
}

// PrerequisitesCleared returns if the "prerequisites" field was cleared in this mutation.
func (m *ConceptRecordMutation) PrerequisitesCleared() bool {
	_, ok := m.clearedFields[conceptrecord.FieldPrerequisites]
	return ok
}

// ResetPrerequisites resets all changes to the "prerequisites" field.
func (m *ConceptRecordMutation) ResetPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	delete(m.clearedFields, conceptrecord.FieldPrerequisites)
}

// SetWorkedExample sets the "worked_example" field.
func (m *ConceptRecordMutation) SetWorkedExample(s string) {
	m.worked_example = &s
}

// WorkedExample returns the value of the "worked_example" field in the mutation.
func (m *ConceptRecordMutation) WorkedExample() (r string, exists bool) {
	v := m.worked_example
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkedExample returns the old "worked_example" field's value of the ConceptRecord entity.
// If the ConceptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptRecordMutation) OldWorkedExample(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkedExample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkedExample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkedExample: %w", err)
	}
	return oldValue.WorkedExample, nil
}

// ResetWorkedExample resets all changes to the "worked_example" field.
func (m *ConceptRecordMutation) ResetWorkedExample() {
	m.worked_example = nil
}

// Where appends a list predicates to the ConceptRecordMutation builder.
func (m *ConceptRecordMutation) Where(ps ...predicate.ConceptRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConceptRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConceptRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConceptRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConceptRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConceptRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConceptRecord).
func (m *ConceptRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConceptRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, conceptrecord.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, conceptrecord.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, conceptrecord.FieldSessionID)
	}
	if m.concept_id != nil {
		fields = append(fields, conceptrecord.FieldConceptID)
	}
	if m.name != nil {
		fields = append(fields, conceptrecord.FieldName)
	}
	if m.formula != nil {
		fields = append(fields, conceptrecord.FieldFormula)
	}
	if m.difficulty != nil {
		fields = append(fields, conceptrecord.FieldDifficulty)
	}
	if m.context != nil {
		fields = append(fields, conceptrecord.FieldContext)
	}
	if m.prerequisites != nil {
		fields = append(fields, conceptrecord.FieldPrerequisites)
	}
	if m.worked_example != nil {
		fields = append(fields, conceptrecord.FieldWorkedExample)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConceptRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conceptrecord.FieldSequence:
		return m.Sequence()
	case conceptrecord.FieldTimestamp:
		return m.Timestamp()
	case conceptrecord.FieldSessionID:
		return m.SessionID()
	case conceptrecord.FieldConceptID:
		return m.ConceptID()
	case conceptrecord.FieldName:
		return m.Name()
	case conceptrecord.FieldFormula:
		return m.Formula()
	case conceptrecord.FieldDifficulty:
		return m.Difficulty()
	case conceptrecord.FieldContext:
		return m.Context()
	case conceptrecord.FieldPrerequisites:
		return m.Prerequisites()
	case conceptrecord.FieldWorkedExample:
		return m.WorkedExample()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConceptRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conceptrecord.FieldSequence:
		return m.OldSequence(ctx)
	case conceptrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case conceptrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case conceptrecord.FieldConceptID:
		return m.OldConceptID(ctx)
	case conceptrecord.FieldName:
		return m.OldName(ctx)
	case conceptrecord.FieldFormula:
		return m.OldFormula(ctx)
	case conceptrecord.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case conceptrecord.FieldContext:
		return m.OldContext(ctx)
	case conceptrecord.FieldPrerequisites:
		return m.OldPrerequisites(ctx)
	case conceptrecord.FieldWorkedExample:
		return m.OldWorkedExample(ctx)
	}
	return nil, fmt.Errorf("unknown ConceptRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conceptrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case conceptrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case conceptrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case conceptrecord.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case conceptrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case conceptrecord.FieldFormula:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormula(v)
		return nil
	case conceptrecord.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case conceptrecord.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case conceptrecord.FieldPrerequisites:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisites(v)
		return nil
	case conceptrecord.FieldWorkedExample:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkedExample(v)
		return nil
	}
	return fmt.Errorf("unknown ConceptRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConceptRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, conceptrecord.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConceptRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conceptrecord.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conceptrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ConceptRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConceptRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conceptrecord.FieldPrerequisites) {
		fields = append(fields, conceptrecord.FieldPrerequisites)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConceptRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConceptRecordMutation) ClearField(name string) error {
	switch name {
	case conceptrecord.FieldPrerequisites:
		m.ClearPrerequisites()
		return nil
	}
	return fmt.Errorf("unknown ConceptRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConceptRecordMutation) ResetField(name string) error {
	switch name {
	case conceptrecord.FieldSequence:
		m.ResetSequence()
		return nil
	case conceptrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case conceptrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case conceptrecord.FieldConceptID:
		m.ResetConceptID()
		return nil
	case conceptrecord.FieldName:
		m.ResetName()
		return nil
	case conceptrecord.FieldFormula:
		m.ResetFormula()
		return nil
	case conceptrecord.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case conceptrecord.FieldContext:
		m.ResetContext()
		return nil
	case conceptrecord.FieldPrerequisites:
		m.ResetPrerequisites()
		return nil
	case conceptrecord.FieldWorkedExample:
		m.ResetWorkedExample()
		return nil
	}
	return fmt.Errorf("unknown ConceptRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConceptRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConceptRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConceptRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConceptRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConceptRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConceptRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConceptRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConceptRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConceptRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConceptRecord edge %s", name)
}

// GenerationSessionMutation represents an operation that mutates the GenerationSession nodes in the graph.
type GenerationSessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	session_id              *string
	source_name             *string
	phase                   *string
	concepts_extracted      *int
	addconcepts_extracted   *int
	questions_generated     *int
	addquestions_generated  *int
	questions_validated     *int
	addquestions_validated  *int
	answers_corrected       *int
	addanswers_corrected    *int
	questions_dropped       *int
	addquestions_dropped    *int
	mcq_count               *int
	addmcq_count            *int
	drops                   *[]schema.DropSummary
	appenddrops             []schema.DropSummary
	difficulty_distribution *map[string]int
	duration_ms             *int64
	addduration_ms          *int64
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*GenerationSession, error)
	predicates              []predicate.GenerationSession
}

var _ ent.Mutation = (*GenerationSessionMutation)(nil)

// generationsessionOption allows management of the mutation configuration using functional options.
type generationsessionOption func(*GenerationSessionMutation)

// newGenerationSessionMutation creates new mutation for the GenerationSession entity.
func newGenerationSessionMutation(c config, op Op, opts ...generationsessionOption) *GenerationSessionMutation {
	m := &GenerationSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationSessionID sets the ID field of the mutation.
func withGenerationSessionID(id int) generationsessionOption {
	return func(m *GenerationSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationSession
		)
		m.oldValue = func(ctx context.Context) (*GenerationSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationSession sets the old GenerationSession of the mutation.
func withGenerationSession(node *GenerationSession) generationsessionOption {
	return func(m *GenerationSessionMutation) {
		m.oldValue = func(context.Context) (*GenerationSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *GenerationSessionMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *GenerationSessionMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *GenerationSessionMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *GenerationSessionMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *GenerationSessionMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *GenerationSessionMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GenerationSessionMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GenerationSessionMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *GenerationSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *GenerationSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *GenerationSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSourceName sets the "source_name" field.
func (m *GenerationSessionMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *GenerationSessionMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *GenerationSessionMutation) ResetSourceName() {
	m.source_name = nil
}

// SetPhase sets the "phase" field.
func (m *GenerationSessionMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *GenerationSessionMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *GenerationSessionMutation) ResetPhase() {
	m.phase = nil
}

// SetConceptsExtracted sets the "concepts_extracted" field.
func (m *GenerationSessionMutation) SetConceptsExtracted(i int) {
	m.concepts_extracted = &i
	m.addconcepts_extracted = nil
}

// ConceptsExtracted returns the value of the "concepts_extracted" field in the mutation.
func (m *GenerationSessionMutation) ConceptsExtracted() (r int, exists bool) {
	v := m.concepts_extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptsExtracted returns the old "concepts_extracted" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldConceptsExtracted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptsExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptsExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptsExtracted: %w", err)
	}
	return oldValue.ConceptsExtracted, nil
}

// AddConceptsExtracted adds i to the "concepts_extracted" field.
func (m *GenerationSessionMutation) AddConceptsExtracted(i int) {
	if m.addconcepts_extracted != nil {
		*m.addconcepts_extracted += i
	} else {
		m.addconcepts_extracted = &i
	}
}

// AddedConceptsExtracted returns the value that was added to the "concepts_extracted" field in this mutation.
func (m *GenerationSessionMutation) AddedConceptsExtracted() (r int, exists bool) {
	v := m.addconcepts_extracted
	if v == nil {
		return
	}
	return *v, true
}

// ResetConceptsExtracted resets all changes to the "concepts_extracted" field.
func (m *GenerationSessionMutation) ResetConceptsExtracted() {
	m.concepts_extracted = nil
	m.addconcepts_extracted = nil
}

// SetQuestionsGenerated sets the "questions_generated" field.
func (m *GenerationSessionMutation) SetQuestionsGenerated(i int) {
	m.questions_generated = &i
	m.addquestions_generated = nil
}

// QuestionsGenerated returns the value of the "questions_generated" field in the mutation.
func (m *GenerationSessionMutation) QuestionsGenerated() (r int, exists bool) {
	v := m.questions_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsGenerated returns the old "questions_generated" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldQuestionsGenerated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsGenerated: %w", err)
	}
	return oldValue.QuestionsGenerated, nil
}

// AddQuestionsGenerated adds i to the "questions_generated" field.
func (m *GenerationSessionMutation) AddQuestionsGenerated(i int) {
	if m.addquestions_generated != nil {
		*m.addquestions_generated += i
	} else {
		m.addquestions_generated = &i
	}
}

// AddedQuestionsGenerated returns the value that was added to the "questions_generated" field in this mutation.
func (m *GenerationSessionMutation) AddedQuestionsGenerated() (r int, exists bool) {
	v := m.addquestions_generated
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsGenerated resets all changes to the "questions_generated" field.
func (m *GenerationSessionMutation) ResetQuestionsGenerated() {
	m.questions_generated = nil
	m.addquestions_generated = nil
}

// SetQuestionsValidated sets the "questions_validated" field.
func (m *GenerationSessionMutation) SetQuestionsValidated(i int) {
	m.questions_validated = &i
	m.addquestions_validated = nil
}

// QuestionsValidated returns the value of the "questions_validated" field in the mutation.
func (m *GenerationSessionMutation) QuestionsValidated() (r int, exists bool) {
	v := m.questions_validated
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsValidated returns the old "questions_validated" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldQuestionsValidated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsValidated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsValidated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsValidated: %w", err)
	}
	return oldValue.QuestionsValidated, nil
}

// AddQuestionsValidated adds i to the "questions_validated" field.
func (m *GenerationSessionMutation) AddQuestionsValidated(i int) {
	if m.addquestions_validated != nil {
		*m.addquestions_validated += i
	} else {
		m.addquestions_validated = &i
	}
}

// AddedQuestionsValidated returns the value that was added to the "questions_validated" field in this mutation.
func (m *GenerationSessionMutation) AddedQuestionsValidated() (r int, exists bool) {
	v := m.addquestions_validated
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsValidated resets all changes to the "questions_validated" field.
func (m *GenerationSessionMutation) ResetQuestionsValidated() {
	m.questions_validated = nil
	m.addquestions_validated = nil
}

// SetAnswersCorrected sets the "answers_corrected" field.
func (m *GenerationSessionMutation) SetAnswersCorrected(i int) {
	m.answers_corrected = &i
	m.addanswers_corrected = nil
}

// AnswersCorrected returns the value of the "answers_corrected" field in the mutation.
func (m *GenerationSessionMutation) AnswersCorrected() (r int, exists bool) {
	v := m.answers_corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswersCorrected returns the old "answers_corrected" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldAnswersCorrected(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswersCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswersCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswersCorrected: %w", err)
	}
	return oldValue.AnswersCorrected, nil
}

// AddAnswersCorrected adds i to the "answers_corrected" field.
func (m *GenerationSessionMutation) AddAnswersCorrected(i int) {
	if m.addanswers_corrected != nil {
		*m.addanswers_corrected += i
	} else {
		m.addanswers_corrected = &i
	}
}

// AddedAnswersCorrected returns the value that was added to the "answers_corrected" field in this mutation.
func (m *GenerationSessionMutation) AddedAnswersCorrected() (r int, exists bool) {
	v := m.addanswers_corrected
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnswersCorrected resets all changes to the "answers_corrected" field.
func (m *GenerationSessionMutation) ResetAnswersCorrected() {
	m.answers_corrected = nil
	m.addanswers_corrected = nil
}

// SetQuestionsDropped sets the "questions_dropped" field.
func (m *GenerationSessionMutation) SetQuestionsDropped(i int) {
	m.questions_dropped = &i
	m.addquestions_dropped = nil
}

// QuestionsDropped returns the value of the "questions_dropped" field in the mutation.
func (m *GenerationSessionMutation) QuestionsDropped() (r int, exists bool) {
	v := m.questions_dropped
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsDropped returns the old "questions_dropped" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldQuestionsDropped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsDropped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsDropped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsDropped: %w", err)
	}
	return oldValue.QuestionsDropped, nil
}

// AddQuestionsDropped adds i to the "questions_dropped" field.
func (m *GenerationSessionMutation) AddQuestionsDropped(i int) {
	if m.addquestions_dropped != nil {
		*m.addquestions_dropped += i
	} else {
		m.addquestions_dropped = &i
	}
}

// AddedQuestionsDropped returns the value that was added to the "questions_dropped" field in this mutation.
func (m *GenerationSessionMutation) AddedQuestionsDropped() (r int, exists bool) {
	v := m.addquestions_dropped
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsDropped resets all changes to the "questions_dropped" field.
func (m *GenerationSessionMutation) ResetQuestionsDropped() {
	m.questions_dropped = nil
	m.addquestions_dropped = nil
}

// SetMcqCount sets the "mcq_count" field.
func (m *GenerationSessionMutation) SetMcqCount(i int) {
	m.mcq_count = &i
	m.addmcq_count = nil
}

// McqCount returns the value of the "mcq_count" field in the mutation.
func (m *GenerationSessionMutation) McqCount() (r int, exists bool) {
	v := m.mcq_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMcqCount returns the old "mcq_count" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldMcqCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMcqCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMcqCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMcqCount: %w", err)
	}
	return oldValue.McqCount, nil
}

// AddMcqCount adds i to the "mcq_count" field.
func (m *GenerationSessionMutation) AddMcqCount(i int) {
	if m.addmcq_count != nil {
		*m.addmcq_count += i
	} else {
		m.addmcq_count = &i
	}
}

// AddedMcqCount returns the value that was added to the "mcq_count" field in this mutation.
func (m *GenerationSessionMutation) AddedMcqCount() (r int, exists bool) {
	v := m.addmcq_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMcqCount resets all changes to the "mcq_count" field.
func (m *GenerationSessionMutation) ResetMcqCount() {
	m.mcq_count = nil
	m.addmcq_count = nil
}

// SetDrops sets the "drops" field.
func (m *GenerationSessionMutation) SetDrops(ss []schema.DropSummary) {
	m.drops = &ss
	m.appenddrops = nil
}

// Drops returns the value of the "drops" field in the mutation.
func (m *GenerationSessionMutation) Drops() (r []schema.DropSummary, exists bool) {
	v := m.drops
	if v == nil {
		return
	}
	return *v, true
}

// OldDrops returns the old "drops" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldDrops(ctx context.Context) (v []schema.DropSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrops is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrops requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrops: %w", err)
	}
	return oldValue.Drops, nil
}

// AppendDrops adds ss to the "drops" field.
func (m *GenerationSessionMutation) AppendDrops(ss []schema.DropSummary) {
	m.appenddrops = append(m.appenddrops, ss...)
}

// AppendedDrops returns the list of values that were appended to the "drops" field in this mutation.
func (m *GenerationSessionMutation) AppendedDrops() ([]schema.DropSummary, bool) {
	if len(m.appenddrops) == 0 {
		return nil, false
	}
	return m.appenddrops, true
}

// ClearDrops clears the value of the "drops" field.
func (m *GenerationSessionMutation) ClearDrops() {
	m.drops = nil
	m.appenddrops = nil
	m.clearedFields[generationsession.FieldDrops] = struct{}{}
}

// DropsCleared returns if the "drops" field was cleared in this mutation.
func (m *GenerationSessionMutation) DropsCleared() bool {
	_, ok := m.clearedFields[generationsession.FieldDrops]
	return ok
}

// ResetDrops resets all changes to the "drops" field.
func (m *GenerationSessionMutation) ResetDrops() {
	m.drops = nil
	m.appenddrops = nil
	delete(m.clearedFields, generationsession.FieldDrops)
}

// SetDifficultyDistribution sets the "difficulty_distribution" field.
func (m *GenerationSessionMutation) SetDifficultyDistribution(value map[string]int) {
	m.difficulty_distribution = &value
}

// DifficultyDistribution returns the value of the "difficulty_distribution" field in the mutation.
func (m *GenerationSessionMutation) DifficultyDistribution() (r map[string]int, exists bool) {
	v := m.difficulty_distribution
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyDistribution returns the old "difficulty_distribution" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldDifficultyDistribution(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyDistribution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyDistribution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyDistribution: %w", err)
	}
	return oldValue.DifficultyDistribution, nil
}

// ClearDifficultyDistribution clears the value of the "difficulty_distribution" field.
func (m *GenerationSessionMutation) ClearDifficultyDistribution() {
	m.difficulty_distribution = nil
	m.clearedFields[generationsession.FieldDifficultyDistribution] = struct{}{}
}

// DifficultyDistributionCleared returns if the "difficulty_distribution" field was cleared in this mutation.
func (m *GenerationSessionMutation) DifficultyDistributionCleared() bool {
	_, ok := m.clearedFields[generationsession.FieldDifficultyDistribution]
	return ok
}

// ResetDifficultyDistribution resets all changes to the "difficulty_distribution" field.
func (m *GenerationSessionMutation) ResetDifficultyDistribution() {
	m.difficulty_distribution = nil
	delete(m.clearedFields, generationsession.FieldDifficultyDistribution)
}

// SetDurationMs sets the "duration_ms" field.
func (m *GenerationSessionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *GenerationSessionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the GenerationSession entity.
// If the GenerationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationSessionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *GenerationSessionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *GenerationSessionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *GenerationSessionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// Where appends a list predicates to the GenerationSessionMutation builder.
func (m *GenerationSessionMutation) Where(ps ...predicate.GenerationSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationSession).
func (m *GenerationSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationSessionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, generationsession.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, generationsession.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, generationsession.FieldSessionID)
	}
	if m.source_name != nil {
		fields = append(fields, generationsession.FieldSourceName)
	}
	if m.phase != nil {
		fields = append(fields, generationsession.FieldPhase)
	}
	if m.concepts_extracted != nil {
		fields = append(fields, generationsession.FieldConceptsExtracted)
	}
	if m.questions_generated != nil {
		fields = append(fields, generationsession.FieldQuestionsGenerated)
	}
	if m.questions_validated != nil {
		fields = append(fields, generationsession.FieldQuestionsValidated)
	}
	if m.answers_corrected != nil {
		fields = append(fields, generationsession.FieldAnswersCorrected)
	}
	if m.questions_dropped != nil {
		fields = append(fields, generationsession.FieldQuestionsDropped)
	}
	if m.mcq_count != nil {
		fields = append(fields, generationsession.FieldMcqCount)
	}
	if m.drops != nil {
		fields = append(fields, generationsession.FieldDrops)
	}
	if m.difficulty_distribution != nil {
		fields = append(fields, generationsession.FieldDifficultyDistribution)
	}
	if m.duration_ms != nil {
		fields = append(fields, generationsession.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationsession.FieldSequence:
		return m.Sequence()
	case generationsession.FieldTimestamp:
		return m.Timestamp()
	case generationsession.FieldSessionID:
		return m.SessionID()
	case generationsession.FieldSourceName:
		return m.SourceName()
	case generationsession.FieldPhase:
		return m.Phase()
	case generationsession.FieldConceptsExtracted:
		return m.ConceptsExtracted()
	case generationsession.FieldQuestionsGenerated:
		return m.QuestionsGenerated()
	case generationsession.FieldQuestionsValidated:
		return m.QuestionsValidated()
	case generationsession.FieldAnswersCorrected:
		return m.AnswersCorrected()
	case generationsession.FieldQuestionsDropped:
		return m.QuestionsDropped()
	case generationsession.FieldMcqCount:
		return m.McqCount()
	case generationsession.FieldDrops:
		return m.Drops()
	case generationsession.FieldDifficultyDistribution:
		return m.DifficultyDistribution()
	case generationsession.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationsession.FieldSequence:
		return m.OldSequence(ctx)
	case generationsession.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case generationsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case generationsession.FieldSourceName:
		return m.OldSourceName(ctx)
	case generationsession.FieldPhase:
		return m.OldPhase(ctx)
	case generationsession.FieldConceptsExtracted:
		return m.OldConceptsExtracted(ctx)
	case generationsession.FieldQuestionsGenerated:
		return m.OldQuestionsGenerated(ctx)
	case generationsession.FieldQuestionsValidated:
		return m.OldQuestionsValidated(ctx)
	case generationsession.FieldAnswersCorrected:
		return m.OldAnswersCorrected(ctx)
	case generationsession.FieldQuestionsDropped:
		return m.OldQuestionsDropped(ctx)
	case generationsession.FieldMcqCount:
		return m.OldMcqCount(ctx)
	case generationsession.FieldDrops:
		return m.OldDrops(ctx)
	case generationsession.FieldDifficultyDistribution:
		return m.OldDifficultyDistribution(ctx)
	case generationsession.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationsession.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case generationsession.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case generationsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case generationsession.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case generationsession.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case generationsession.FieldConceptsExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptsExtracted(v)
		return nil
	case generationsession.FieldQuestionsGenerated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsGenerated(v)
		return nil
	case generationsession.FieldQuestionsValidated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsValidated(v)
		return nil
	case generationsession.FieldAnswersCorrected:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswersCorrected(v)
		return nil
	case generationsession.FieldQuestionsDropped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsDropped(v)
		return nil
	case generationsession.FieldMcqCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMcqCount(v)
		return nil
	case generationsession.FieldDrops:
		v, ok := value.([]schema.DropSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrops(v)
		return nil
	case generationsession.FieldDifficultyDistribution:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyDistribution(v)
		return nil
	case generationsession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationSessionMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, generationsession.FieldSequence)
	}
	if m.addconcepts_extracted != nil {
		fields = append(fields, generationsession.FieldConceptsExtracted)
	}
	if m.addquestions_generated != nil {
		fields = append(fields, generationsession.FieldQuestionsGenerated)
	}
	if m.addquestions_validated != nil {
		fields = append(fields, generationsession.FieldQuestionsValidated)
	}
	if m.addanswers_corrected != nil {
		fields = append(fields, generationsession.FieldAnswersCorrected)
	}
	if m.addquestions_dropped != nil {
		fields = append(fields, generationsession.FieldQuestionsDropped)
	}
	if m.addmcq_count != nil {
		fields = append(fields, generationsession.FieldMcqCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, generationsession.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationsession.FieldSequence:
		return m.AddedSequence()
	case generationsession.FieldConceptsExtracted:
		return m.AddedConceptsExtracted()
	case generationsession.FieldQuestionsGenerated:
		return m.AddedQuestionsGenerated()
	case generationsession.FieldQuestionsValidated:
		return m.AddedQuestionsValidated()
	case generationsession.FieldAnswersCorrected:
		return m.AddedAnswersCorrected()
	case generationsession.FieldQuestionsDropped:
		return m.AddedQuestionsDropped()
	case generationsession.FieldMcqCount:
		return m.AddedMcqCount()
	case generationsession.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationsession.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case generationsession.FieldConceptsExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConceptsExtracted(v)
		return nil
	case generationsession.FieldQuestionsGenerated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsGenerated(v)
		return nil
	case generationsession.FieldQuestionsValidated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsValidated(v)
		return nil
	case generationsession.FieldAnswersCorrected:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswersCorrected(v)
		return nil
	case generationsession.FieldQuestionsDropped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsDropped(v)
		return nil
	case generationsession.FieldMcqCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMcqCount(v)
		return nil
	case generationsession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationsession.FieldDrops) {
		fields = append(fields, generationsession.FieldDrops)
	}
	if m.FieldCleared(generationsession.FieldDifficultyDistribution) {
		fields = append(fields, generationsession.FieldDifficultyDistribution)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationSessionMutation) ClearField(name string) error {
	switch name {
	case generationsession.FieldDrops:
		m.ClearDrops()
		return nil
	case generationsession.FieldDifficultyDistribution:
		m.ClearDifficultyDistribution()
		return nil
	}
	return fmt.Errorf("unknown GenerationSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationSessionMutation) ResetField(name string) error {
	switch name {
	case generationsession.FieldSequence:
		m.ResetSequence()
		return nil
	case generationsession.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case generationsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case generationsession.FieldSourceName:
		m.ResetSourceName()
		return nil
	case generationsession.FieldPhase:
		m.ResetPhase()
		return nil
	case generationsession.FieldConceptsExtracted:
		m.ResetConceptsExtracted()
		return nil
	case generationsession.FieldQuestionsGenerated:
		m.ResetQuestionsGenerated()
		return nil
	case generationsession.FieldQuestionsValidated:
		m.ResetQuestionsValidated()
		return nil
	case generationsession.FieldAnswersCorrected:
		m.ResetAnswersCorrected()
		return nil
	case generationsession.FieldQuestionsDropped:
		m.ResetQuestionsDropped()
		return nil
	case generationsession.FieldMcqCount:
		m.ResetMcqCount()
		return nil
	case generationsession.FieldDrops:
		m.ResetDrops()
		return nil
	case generationsession.FieldDifficultyDistribution:
		m.ResetDifficultyDistribution()
		return nil
	case generationsession.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown GenerationSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationSession edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// MCQRecordMutation represents an operation that mutates the MCQRecord nodes in the graph.
type MCQRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	session_id          *string
	question_number     *int
	addquestion_number  *int
	question_id         *string
	concept_name        *string
	difficulty          *string
	stem                *string
	options             *map[string]string
	correct_letter      *string
	explanations        *map[string]string
	validation_score    *float64
	addvalidation_score *float64
	was_corrected       *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*MCQRecord, error)
	predicates          []predicate.MCQRecord
}

var _ ent.Mutation = (*MCQRecordMutation)(nil)

// mcqrecordOption allows management of the mutation configuration using functional options.
type mcqrecordOption func(*MCQRecordMutation)

// newMCQRecordMutation creates new mutation for the MCQRecord entity.
func newMCQRecordMutation(c config, op Op, opts ...mcqrecordOption) *MCQRecordMutation {
	m := &MCQRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMCQRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMCQRecordID sets the ID field of the mutation.
func withMCQRecordID(id int) mcqrecordOption {
	return func(m *MCQRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MCQRecord
		)
		m.oldValue = func(ctx context.Context) (*MCQRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MCQRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMCQRecord sets the old MCQRecord of the mutation.
func withMCQRecord(node *MCQRecord) mcqrecordOption {
	return func(m *MCQRecordMutation) {
		m.oldValue = func(context.Context) (*MCQRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MCQRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MCQRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MCQRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MCQRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MCQRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *MCQRecordMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MCQRecordMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MCQRecordMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MCQRecordMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MCQRecordMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MCQRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MCQRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MCQRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *MCQRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MCQRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MCQRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionNumber sets the "question_number" field.
func (m *MCQRecordMutation) SetQuestionNumber(i int) {
	m.question_number = &i
	m.addquestion_number = nil
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *MCQRecordMutation) QuestionNumber() (r int, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldQuestionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// AddQuestionNumber adds i to the "question_number" field.
func (m *MCQRecordMutation) AddQuestionNumber(i int) {
	if m.addquestion_number != nil {
		*m.addquestion_number += i
	} else {
		m.addquestion_number = &i
	}
}

// AddedQuestionNumber returns the value that was added to the "question_number" field in this mutation.
func (m *MCQRecordMutation) AddedQuestionNumber() (r int, exists bool) {
	v := m.addquestion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *MCQRecordMutation) ResetQuestionNumber() {
	m.question_number = nil
	m.addquestion_number = nil
}

// SetQuestionID sets the "question_id" field.
func (m *MCQRecordMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *MCQRecordMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *MCQRecordMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetConceptName sets the "concept_name" field.
func (m *MCQRecordMutation) SetConceptName(s string) {
	m.concept_name = &s
}

// ConceptName returns the value of the "concept_name" field in the mutation.
func (m *MCQRecordMutation) ConceptName() (r string, exists bool) {
	v := m.concept_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptName returns the old "concept_name" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldConceptName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptName: %w", err)
	}
	return oldValue.ConceptName, nil
}

// ResetConceptName resets all changes to the "concept_name" field.
func (m *MCQRecordMutation) ResetConceptName() {
	m.concept_name = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *MCQRecordMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *MCQRecordMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *MCQRecordMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetStem sets the "stem" field.
func (m *MCQRecordMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *MCQRecordMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *MCQRecordMutation) ResetStem() {
	m.stem = nil
}

// SetOptions sets the "options" field.
func (m *MCQRecordMutation) SetOptions(value map[string]string) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *MCQRecordMutation) Options() (r map[string]string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldOptions(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ResetOptions resets all changes to the "options" field.
func (m *MCQRecordMutation) ResetOptions() {
	m.options = nil
}

// SetCorrectLetter sets the "correct_letter" field.
func (m *MCQRecordMutation) SetCorrectLetter(s string) {
	m.correct_letter = &s
}

// CorrectLetter returns the value of the "correct_letter" field in the mutation.
func (m *MCQRecordMutation) CorrectLetter() (r string, exists bool) {
	v := m.correct_letter
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectLetter returns the old "correct_letter" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldCorrectLetter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectLetter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectLetter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectLetter: %w", err)
	}
	return oldValue.CorrectLetter, nil
}

// ResetCorrectLetter resets all changes to the "correct_letter" field.
func (m *MCQRecordMutation) ResetCorrectLetter() {
	m.correct_letter = nil
}

// SetExplanations sets the "explanations" field.
func (m *MCQRecordMutation) SetExplanations(value map[string]string) {
	m.explanations = &value
}

// Explanations returns the value of the "explanations" field in the mutation.
func (m *MCQRecordMutation) Explanations() (r map[string]string, exists bool) {
	v := m.explanations
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanations returns the old "explanations" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldExplanations(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanations: %w", err)
	}
	return oldValue.Explanations, nil
}

// ClearExplanations clears the value of the "explanations" field.
func (m *MCQRecordMutation) ClearExplanations() {
	m.explanations = nil
	m.clearedFields[mcqrecord.FieldExplanations] = struct{}{}
}

// ExplanationsCleared returns if the "explanations" field was cleared in this mutation.
func (m *MCQRecordMutation) ExplanationsCleared() bool {
	_, ok := m.clearedFields[mcqrecord.FieldExplanations]
	return ok
}

// ResetExplanations resets all changes to the "explanations" field.
func (m *MCQRecordMutation) ResetExplanations() {
	m.explanations = nil
	delete(m.clearedFields, mcqrecord.FieldExplanations)
}

// SetValidationScore sets the "validation_score" field.
func (m *MCQRecordMutation) SetValidationScore(f float64) {
	m.validation_score = &f
	m.addvalidation_score = nil
}

// ValidationScore returns the value of the "validation_score" field in the mutation.
func (m *MCQRecordMutation) ValidationScore() (r float64, exists bool) {
	v := m.validation_score
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationScore returns the old "validation_score" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldValidationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationScore: %w", err)
	}
	return oldValue.ValidationScore, nil
}

// AddValidationScore adds f to the "validation_score" field.
func (m *MCQRecordMutation) AddValidationScore(f float64) {
	if m.addvalidation_score != nil {
		*m.addvalidation_score += f
	} else {
		m.addvalidation_score = &f
	}
}

// AddedValidationScore returns the value that was added to the "validation_score" field in this mutation.
func (m *MCQRecordMutation) AddedValidationScore() (r float64, exists bool) {
	v := m.addvalidation_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidationScore resets all changes to the "validation_score" field.
func (m *MCQRecordMutation) ResetValidationScore() {
	m.validation_score = nil
	m.addvalidation_score = nil
}

// SetWasCorrected sets the "was_corrected" field.
func (m *MCQRecordMutation) SetWasCorrected(b bool) {
	m.was_corrected = &b
}

// WasCorrected returns the value of the "was_corrected" field in the mutation.
func (m *MCQRecordMutation) WasCorrected() (r bool, exists bool) {
	v := m.was_corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldWasCorrected returns the old "was_corrected" field's value of the MCQRecord entity.
// If the MCQRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCQRecordMutation) OldWasCorrected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasCorrected: %w", err)
	}
	return oldValue.WasCorrected, nil
}

// ResetWasCorrected resets all changes to the "was_corrected" field.
func (m *MCQRecordMutation) ResetWasCorrected() {
	m.was_corrected = nil
}

// Where appends a list predicates to the MCQRecordMutation builder.
func (m *MCQRecordMutation) Where(ps ...predicate.MCQRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MCQRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MCQRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MCQRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MCQRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MCQRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MCQRecord).
func (m *MCQRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MCQRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, mcqrecord.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, mcqrecord.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, mcqrecord.FieldSessionID)
	}
	if m.question_number != nil {
		fields = append(fields, mcqrecord.FieldQuestionNumber)
	}
	if m.question_id != nil {
		fields = append(fields, mcqrecord.FieldQuestionID)
	}
	if m.concept_name != nil {
		fields = append(fields, mcqrecord.FieldConceptName)
	}
	if m.difficulty != nil {
		fields = append(fields, mcqrecord.FieldDifficulty)
	}
	if m.stem != nil {
		fields = append(fields, mcqrecord.FieldStem)
	}
	if m.options != nil {
		fields = append(fields, mcqrecord.FieldOptions)
	}
	if m.correct_letter != nil {
		fields = append(fields, mcqrecord.FieldCorrectLetter)
	}
	if m.explanations != nil {
		fields = append(fields, mcqrecord.FieldExplanations)
	}
	if m.validation_score != nil {
		fields = append(fields, mcqrecord.FieldValidationScore)
	}
	if m.was_corrected != nil {
		fields = append(fields, mcqrecord.FieldWasCorrected)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MCQRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mcqrecord.FieldSequence:
		return m.Sequence()
	case mcqrecord.FieldTimestamp:
		return m.Timestamp()
	case mcqrecord.FieldSessionID:
		return m.SessionID()
	case mcqrecord.FieldQuestionNumber:
		return m.QuestionNumber()
	case mcqrecord.FieldQuestionID:
		return m.QuestionID()
	case mcqrecord.FieldConceptName:
		return m.ConceptName()
	case mcqrecord.FieldDifficulty:
		return m.Difficulty()
	case mcqrecord.FieldStem:
		return m.Stem()
	case mcqrecord.FieldOptions:
		return m.Options()
	case mcqrecord.FieldCorrectLetter:
		return m.CorrectLetter()
	case mcqrecord.FieldExplanations:
		return m.Explanations()
	case mcqrecord.FieldValidationScore:
		return m.ValidationScore()
	case mcqrecord.FieldWasCorrected:
		return m.WasCorrected()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MCQRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mcqrecord.FieldSequence:
		return m.OldSequence(ctx)
	case mcqrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case mcqrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case mcqrecord.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case mcqrecord.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case mcqrecord.FieldConceptName:
		return m.OldConceptName(ctx)
	case mcqrecord.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case mcqrecord.FieldStem:
		return m.OldStem(ctx)
	case mcqrecord.FieldOptions:
		return m.OldOptions(ctx)
	case mcqrecord.FieldCorrectLetter:
		return m.OldCorrectLetter(ctx)
	case mcqrecord.FieldExplanations:
		return m.OldExplanations(ctx)
	case mcqrecord.FieldValidationScore:
		return m.OldValidationScore(ctx)
	case mcqrecord.FieldWasCorrected:
		return m.OldWasCorrected(ctx)
	}
	return nil, fmt.Errorf("unknown MCQRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCQRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mcqrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case mcqrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case mcqrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case mcqrecord.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case mcqrecord.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case mcqrecord.FieldConceptName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptName(v)
		return nil
	case mcqrecord.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case mcqrecord.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case mcqrecord.FieldOptions:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case mcqrecord.FieldCorrectLetter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectLetter(v)
		return nil
	case mcqrecord.FieldExplanations:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanations(v)
		return nil
	case mcqrecord.FieldValidationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationScore(v)
		return nil
	case mcqrecord.FieldWasCorrected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasCorrected(v)
		return nil
	}
	return fmt.Errorf("unknown MCQRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MCQRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, mcqrecord.FieldSequence)
	}
	if m.addquestion_number != nil {
		fields = append(fields, mcqrecord.FieldQuestionNumber)
	}
	if m.addvalidation_score != nil {
		fields = append(fields, mcqrecord.FieldValidationScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MCQRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mcqrecord.FieldSequence:
		return m.AddedSequence()
	case mcqrecord.FieldQuestionNumber:
		return m.AddedQuestionNumber()
	case mcqrecord.FieldValidationScore:
		return m.AddedValidationScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCQRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mcqrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case mcqrecord.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionNumber(v)
		return nil
	case mcqrecord.FieldValidationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidationScore(v)
		return nil
	}
	return fmt.Errorf("unknown MCQRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MCQRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mcqrecord.FieldExplanations) {
		fields = append(fields, mcqrecord.FieldExplanations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MCQRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MCQRecordMutation) ClearField(name string) error {
	switch name {
	case mcqrecord.FieldExplanations:
		m.ClearExplanations()
		return nil
	}
	return fmt.Errorf("unknown MCQRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MCQRecordMutation) ResetField(name string) error {
	switch name {
	case mcqrecord.FieldSequence:
		m.ResetSequence()
		return nil
	case mcqrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case mcqrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case mcqrecord.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case mcqrecord.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case mcqrecord.FieldConceptName:
		m.ResetConceptName()
		return nil
	case mcqrecord.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case mcqrecord.FieldStem:
		m.ResetStem()
		return nil
	case mcqrecord.FieldOptions:
		m.ResetOptions()
		return nil
	case mcqrecord.FieldCorrectLetter:
		m.ResetCorrectLetter()
		return nil
	case mcqrecord.FieldExplanations:
		m.ResetExplanations()
		return nil
	case mcqrecord.FieldValidationScore:
		m.ResetValidationScore()
		return nil
	case mcqrecord.FieldWasCorrected:
		m.ResetWasCorrected()
		return nil
	}
	return fmt.Errorf("unknown MCQRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MCQRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MCQRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MCQRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MCQRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MCQRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MCQRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MCQRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MCQRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MCQRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MCQRecord edge %s", name)
}
