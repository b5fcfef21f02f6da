// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutoriz/ent/predicate"
	"github.com/abhisek/tutoriz/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ReviewEventUpdate) SetTopic(v string) *ReviewEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableTopic(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewEventUpdate) SetQuality(v int) *ReviewEventUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableQuality(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewEventUpdate) AddQuality(v int) *ReviewEventUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewEventUpdate) SetEaseFactor(v float64) *ReviewEventUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableEaseFactor(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewEventUpdate) AddEaseFactor(v float64) *ReviewEventUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdate) SetIntervalDays(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalDays(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdate) AddIntervalDays(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetStrength sets the "strength" field.
func (_u *ReviewEventUpdate) SetStrength(v float64) *ReviewEventUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStrength(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *ReviewEventUpdate) AddStrength(v float64) *ReviewEventUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewEventUpdate) SetNextReview(v time.Time) *ReviewEventUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableNextReview(v *time.Time) *ReviewEventUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := reviewevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(reviewevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(reviewevent.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(reviewevent.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewevent.FieldNextReview, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetTopic sets the "topic" field.
func (_u *ReviewEventUpdateOne) SetTopic(v string) *ReviewEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableTopic(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewEventUpdateOne) SetQuality(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableQuality(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewEventUpdateOne) AddQuality(v int) *ReviewEventUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewEventUpdateOne) SetEaseFactor(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableEaseFactor(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewEventUpdateOne) AddEaseFactor(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdateOne) SetIntervalDays(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalDays(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdateOne) AddIntervalDays(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetStrength sets the "strength" field.
func (_u *ReviewEventUpdateOne) SetStrength(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStrength(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *ReviewEventUpdateOne) AddStrength(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewEventUpdateOne) SetNextReview(v time.Time) *ReviewEventUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableNextReview(v *time.Time) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := reviewevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(reviewevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(reviewevent.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(reviewevent.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewevent.FieldNextReview, field.TypeTime, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
