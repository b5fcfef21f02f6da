// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutoriz/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *AttemptEventCreate) SetRecordedAt(v time.Time) *AttemptEventCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableRecordedAt(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AttemptEventCreate) SetTopic(v string) *AttemptEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetProblemText sets the "problem_text" field.
func (_c *AttemptEventCreate) SetProblemText(v string) *AttemptEventCreate {
	_c.mutation.SetProblemText(v)
	return _c
}

// SetTurnsTaken sets the "turns_taken" field.
func (_c *AttemptEventCreate) SetTurnsTaken(v int) *AttemptEventCreate {
	_c.mutation.SetTurnsTaken(v)
	return _c
}

// SetStepCount sets the "step_count" field.
func (_c *AttemptEventCreate) SetStepCount(v int) *AttemptEventCreate {
	_c.mutation.SetStepCount(v)
	return _c
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableStepCount(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetStepCount(*v)
	}
	return _c
}

// SetApproachIndex sets the "approach_index" field.
func (_c *AttemptEventCreate) SetApproachIndex(v int) *AttemptEventCreate {
	_c.mutation.SetApproachIndex(v)
	return _c
}

// SetNillableApproachIndex sets the "approach_index" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableApproachIndex(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetApproachIndex(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *AttemptEventCreate) SetLevel(v string) *AttemptEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetHintsRequested sets the "hints_requested" field.
func (_c *AttemptEventCreate) SetHintsRequested(v int) *AttemptEventCreate {
	_c.mutation.SetHintsRequested(v)
	return _c
}

// SetNillableHintsRequested sets the "hints_requested" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableHintsRequested(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetHintsRequested(*v)
	}
	return _c
}

// SetIncorrectAttempts sets the "incorrect_attempts" field.
func (_c *AttemptEventCreate) SetIncorrectAttempts(v int) *AttemptEventCreate {
	_c.mutation.SetIncorrectAttempts(v)
	return _c
}

// SetNillableIncorrectAttempts sets the "incorrect_attempts" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableIncorrectAttempts(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetIncorrectAttempts(*v)
	}
	return _c
}

// SetClarificationRequests sets the "clarification_requests" field.
func (_c *AttemptEventCreate) SetClarificationRequests(v int) *AttemptEventCreate {
	_c.mutation.SetClarificationRequests(v)
	return _c
}

// SetNillableClarificationRequests sets the "clarification_requests" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableClarificationRequests(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetClarificationRequests(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableSessionID(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := attemptevent.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		v := attemptevent.DefaultStepCount
		_c.mutation.SetStepCount(v)
	}
	if _, ok := _c.mutation.ApproachIndex(); !ok {
		v := attemptevent.DefaultApproachIndex
		_c.mutation.SetApproachIndex(v)
	}
	if _, ok := _c.mutation.HintsRequested(); !ok {
		v := attemptevent.DefaultHintsRequested
		_c.mutation.SetHintsRequested(v)
	}
	if _, ok := _c.mutation.IncorrectAttempts(); !ok {
		v := attemptevent.DefaultIncorrectAttempts
		_c.mutation.SetIncorrectAttempts(v)
	}
	if _, ok := _c.mutation.ClarificationRequests(); !ok {
		v := attemptevent.DefaultClarificationRequests
		_c.mutation.SetClarificationRequests(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "AttemptEvent.recorded_at"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "AttemptEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := attemptevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemText(); !ok {
		return &ValidationError{Name: "problem_text", err: errors.New(`ent: missing required field "AttemptEvent.problem_text"`)}
	}
	if v, ok := _c.mutation.ProblemText(); ok {
		if err := attemptevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TurnsTaken(); !ok {
		return &ValidationError{Name: "turns_taken", err: errors.New(`ent: missing required field "AttemptEvent.turns_taken"`)}
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		return &ValidationError{Name: "step_count", err: errors.New(`ent: missing required field "AttemptEvent.step_count"`)}
	}
	if _, ok := _c.mutation.ApproachIndex(); !ok {
		return &ValidationError{Name: "approach_index", err: errors.New(`ent: missing required field "AttemptEvent.approach_index"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "AttemptEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := attemptevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintsRequested(); !ok {
		return &ValidationError{Name: "hints_requested", err: errors.New(`ent: missing required field "AttemptEvent.hints_requested"`)}
	}
	if _, ok := _c.mutation.IncorrectAttempts(); !ok {
		return &ValidationError{Name: "incorrect_attempts", err: errors.New(`ent: missing required field "AttemptEvent.incorrect_attempts"`)}
	}
	if _, ok := _c.mutation.ClarificationRequests(); !ok {
		return &ValidationError{Name: "clarification_requests", err: errors.New(`ent: missing required field "AttemptEvent.clarification_requests"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(attemptevent.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(attemptevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ProblemText(); ok {
		_spec.SetField(attemptevent.FieldProblemText, field.TypeString, value)
		_node.ProblemText = value
	}
	if value, ok := _c.mutation.TurnsTaken(); ok {
		_spec.SetField(attemptevent.FieldTurnsTaken, field.TypeInt, value)
		_node.TurnsTaken = value
	}
	if value, ok := _c.mutation.StepCount(); ok {
		_spec.SetField(attemptevent.FieldStepCount, field.TypeInt, value)
		_node.StepCount = value
	}
	if value, ok := _c.mutation.ApproachIndex(); ok {
		_spec.SetField(attemptevent.FieldApproachIndex, field.TypeInt, value)
		_node.ApproachIndex = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.HintsRequested(); ok {
		_spec.SetField(attemptevent.FieldHintsRequested, field.TypeInt, value)
		_node.HintsRequested = value
	}
	if value, ok := _c.mutation.IncorrectAttempts(); ok {
		_spec.SetField(attemptevent.FieldIncorrectAttempts, field.TypeInt, value)
		_node.IncorrectAttempts = value
	}
	if value, ok := _c.mutation.ClarificationRequests(); ok {
		_spec.SetField(attemptevent.FieldClarificationRequests, field.TypeInt, value)
		_node.ClarificationRequests = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
