// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutoriz/ent/hintevent"
)

// HintEventCreate is the builder for creating a HintEvent entity.
type HintEventCreate struct {
	config
	mutation *HintEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *HintEventCreate) SetSequence(v int64) *HintEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *HintEventCreate) SetRecordedAt(v time.Time) *HintEventCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *HintEventCreate) SetNillableRecordedAt(v *time.Time) *HintEventCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *HintEventCreate) SetSessionID(v string) *HintEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *HintEventCreate) SetTopic(v string) *HintEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetProblemText sets the "problem_text" field.
func (_c *HintEventCreate) SetProblemText(v string) *HintEventCreate {
	_c.mutation.SetProblemText(v)
	return _c
}

// SetHintText sets the "hint_text" field.
func (_c *HintEventCreate) SetHintText(v string) *HintEventCreate {
	_c.mutation.SetHintText(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *HintEventCreate) SetLevel(v int) *HintEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// Mutation returns the HintEventMutation object of the builder.
func (_c *HintEventCreate) Mutation() *HintEventMutation {
	return _c.mutation
}

// Save creates the HintEvent in the database.
func (_c *HintEventCreate) Save(ctx context.Context) (*HintEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HintEventCreate) SaveX(ctx context.Context) *HintEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HintEventCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := hintevent.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HintEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "HintEvent.sequence"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "HintEvent.recorded_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "HintEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := hintevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "HintEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := hintevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "HintEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemText(); !ok {
		return &ValidationError{Name: "problem_text", err: errors.New(`ent: missing required field "HintEvent.problem_text"`)}
	}
	if v, ok := _c.mutation.ProblemText(); ok {
		if err := hintevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "HintEvent.problem_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintText(); !ok {
		return &ValidationError{Name: "hint_text", err: errors.New(`ent: missing required field "HintEvent.hint_text"`)}
	}
	if v, ok := _c.mutation.HintText(); ok {
		if err := hintevent.HintTextValidator(v); err != nil {
			return &ValidationError{Name: "hint_text", err: fmt.Errorf(`ent: validator failed for field "HintEvent.hint_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "HintEvent.level"`)}
	}
	return nil
}

func (_c *HintEventCreate) sqlSave(ctx context.Context) (*HintEvent, error) {
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

func (_c *HintEventCreate) createSpec() (*HintEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &HintEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hintevent.Table, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(hintevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(hintevent.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(hintevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(hintevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ProblemText(); ok {
		_spec.SetField(hintevent.FieldProblemText, field.TypeString, value)
		_node.ProblemText = value
	}
	if value, ok := _c.mutation.HintText(); ok {
		_spec.SetField(hintevent.FieldHintText, field.TypeString, value)
		_node.HintText = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(hintevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	return _node, _spec
}

// HintEventCreateBulk is the builder for creating many HintEvent entities in bulk.
type HintEventCreateBulk struct {
	config
	err      error
	builders []*HintEventCreate
}

// Save creates the HintEvent entities in the database.
func (_c *HintEventCreateBulk) Save(ctx context.Context) ([]*HintEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HintEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HintEventMutation)
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
func (_c *HintEventCreateBulk) SaveX(ctx context.Context) []*HintEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
