// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutoriz/ent/attemptevent"
	"github.com/abhisek/tutoriz/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptEventUpdate) SetTopic(v string) *AttemptEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTopic(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetProblemText sets the "problem_text" field.
func (_u *AttemptEventUpdate) SetProblemText(v string) *AttemptEventUpdate {
	_u.mutation.SetProblemText(v)
	return _u
}

// SetNillableProblemText sets the "problem_text" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableProblemText(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetProblemText(*v)
	}
	return _u
}

// SetTurnsTaken sets the "turns_taken" field.
func (_u *AttemptEventUpdate) SetTurnsTaken(v int) *AttemptEventUpdate {
	_u.mutation.ResetTurnsTaken()
	_u.mutation.SetTurnsTaken(v)
	return _u
}

// SetNillableTurnsTaken sets the "turns_taken" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTurnsTaken(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTurnsTaken(*v)
	}
	return _u
}

// AddTurnsTaken adds value to the "turns_taken" field.
func (_u *AttemptEventUpdate) AddTurnsTaken(v int) *AttemptEventUpdate {
	_u.mutation.AddTurnsTaken(v)
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *AttemptEventUpdate) SetStepCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStepCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *AttemptEventUpdate) AddStepCount(v int) *AttemptEventUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetApproachIndex sets the "approach_index" field.
func (_u *AttemptEventUpdate) SetApproachIndex(v int) *AttemptEventUpdate {
	_u.mutation.ResetApproachIndex()
	_u.mutation.SetApproachIndex(v)
	return _u
}

// SetNillableApproachIndex sets the "approach_index" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableApproachIndex(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetApproachIndex(*v)
	}
	return _u
}

// AddApproachIndex adds value to the "approach_index" field.
func (_u *AttemptEventUpdate) AddApproachIndex(v int) *AttemptEventUpdate {
	_u.mutation.AddApproachIndex(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdate) SetLevel(v string) *AttemptEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLevel(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetHintsRequested sets the "hints_requested" field.
func (_u *AttemptEventUpdate) SetHintsRequested(v int) *AttemptEventUpdate {
	_u.mutation.ResetHintsRequested()
	_u.mutation.SetHintsRequested(v)
	return _u
}

// SetNillableHintsRequested sets the "hints_requested" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableHintsRequested(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetHintsRequested(*v)
	}
	return _u
}

// AddHintsRequested adds value to the "hints_requested" field.
func (_u *AttemptEventUpdate) AddHintsRequested(v int) *AttemptEventUpdate {
	_u.mutation.AddHintsRequested(v)
	return _u
}

// SetIncorrectAttempts sets the "incorrect_attempts" field.
func (_u *AttemptEventUpdate) SetIncorrectAttempts(v int) *AttemptEventUpdate {
	_u.mutation.ResetIncorrectAttempts()
	_u.mutation.SetIncorrectAttempts(v)
	return _u
}

// SetNillableIncorrectAttempts sets the "incorrect_attempts" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableIncorrectAttempts(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetIncorrectAttempts(*v)
	}
	return _u
}

// AddIncorrectAttempts adds value to the "incorrect_attempts" field.
func (_u *AttemptEventUpdate) AddIncorrectAttempts(v int) *AttemptEventUpdate {
	_u.mutation.AddIncorrectAttempts(v)
	return _u
}

// SetClarificationRequests sets the "clarification_requests" field.
func (_u *AttemptEventUpdate) SetClarificationRequests(v int) *AttemptEventUpdate {
	_u.mutation.ResetClarificationRequests()
	_u.mutation.SetClarificationRequests(v)
	return _u
}

// SetNillableClarificationRequests sets the "clarification_requests" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableClarificationRequests(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetClarificationRequests(*v)
	}
	return _u
}

// AddClarificationRequests adds value to the "clarification_requests" field.
func (_u *AttemptEventUpdate) AddClarificationRequests(v int) *AttemptEventUpdate {
	_u.mutation.AddClarificationRequests(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AttemptEventUpdate) ClearSessionID() *AttemptEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := attemptevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemText(); ok {
		if err := attemptevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := attemptevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attemptevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemText(); ok {
		_spec.SetField(attemptevent.FieldProblemText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnsTaken(); ok {
		_spec.SetField(attemptevent.FieldTurnsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnsTaken(); ok {
		_spec.AddField(attemptevent.FieldTurnsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(attemptevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(attemptevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApproachIndex(); ok {
		_spec.SetField(attemptevent.FieldApproachIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApproachIndex(); ok {
		_spec.AddField(attemptevent.FieldApproachIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintsRequested(); ok {
		_spec.SetField(attemptevent.FieldHintsRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsRequested(); ok {
		_spec.AddField(attemptevent.FieldHintsRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectAttempts(); ok {
		_spec.SetField(attemptevent.FieldIncorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectAttempts(); ok {
		_spec.AddField(attemptevent.FieldIncorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClarificationRequests(); ok {
		_spec.SetField(attemptevent.FieldClarificationRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClarificationRequests(); ok {
		_spec.AddField(attemptevent.FieldClarificationRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(attemptevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetTopic sets the "topic" field.
func (_u *AttemptEventUpdateOne) SetTopic(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTopic(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetProblemText sets the "problem_text" field.
func (_u *AttemptEventUpdateOne) SetProblemText(v string) *AttemptEventUpdateOne {
	_u.mutation.SetProblemText(v)
	return _u
}

// SetNillableProblemText sets the "problem_text" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableProblemText(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetProblemText(*v)
	}
	return _u
}

// SetTurnsTaken sets the "turns_taken" field.
func (_u *AttemptEventUpdateOne) SetTurnsTaken(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTurnsTaken()
	_u.mutation.SetTurnsTaken(v)
	return _u
}

// SetNillableTurnsTaken sets the "turns_taken" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTurnsTaken(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTurnsTaken(*v)
	}
	return _u
}

// AddTurnsTaken adds value to the "turns_taken" field.
func (_u *AttemptEventUpdateOne) AddTurnsTaken(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTurnsTaken(v)
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *AttemptEventUpdateOne) SetStepCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStepCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *AttemptEventUpdateOne) AddStepCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetApproachIndex sets the "approach_index" field.
func (_u *AttemptEventUpdateOne) SetApproachIndex(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetApproachIndex()
	_u.mutation.SetApproachIndex(v)
	return _u
}

// SetNillableApproachIndex sets the "approach_index" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableApproachIndex(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetApproachIndex(*v)
	}
	return _u
}

// AddApproachIndex adds value to the "approach_index" field.
func (_u *AttemptEventUpdateOne) AddApproachIndex(v int) *AttemptEventUpdateOne {
	_u.mutation.AddApproachIndex(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdateOne) SetLevel(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLevel(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetHintsRequested sets the "hints_requested" field.
func (_u *AttemptEventUpdateOne) SetHintsRequested(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetHintsRequested()
	_u.mutation.SetHintsRequested(v)
	return _u
}

// SetNillableHintsRequested sets the "hints_requested" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableHintsRequested(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetHintsRequested(*v)
	}
	return _u
}

// AddHintsRequested adds value to the "hints_requested" field.
func (_u *AttemptEventUpdateOne) AddHintsRequested(v int) *AttemptEventUpdateOne {
	_u.mutation.AddHintsRequested(v)
	return _u
}

// SetIncorrectAttempts sets the "incorrect_attempts" field.
func (_u *AttemptEventUpdateOne) SetIncorrectAttempts(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetIncorrectAttempts()
	_u.mutation.SetIncorrectAttempts(v)
	return _u
}

// SetNillableIncorrectAttempts sets the "incorrect_attempts" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableIncorrectAttempts(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetIncorrectAttempts(*v)
	}
	return _u
}

// AddIncorrectAttempts adds value to the "incorrect_attempts" field.
func (_u *AttemptEventUpdateOne) AddIncorrectAttempts(v int) *AttemptEventUpdateOne {
	_u.mutation.AddIncorrectAttempts(v)
	return _u
}

// SetClarificationRequests sets the "clarification_requests" field.
func (_u *AttemptEventUpdateOne) SetClarificationRequests(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetClarificationRequests()
	_u.mutation.SetClarificationRequests(v)
	return _u
}

// SetNillableClarificationRequests sets the "clarification_requests" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableClarificationRequests(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetClarificationRequests(*v)
	}
	return _u
}

// AddClarificationRequests adds value to the "clarification_requests" field.
func (_u *AttemptEventUpdateOne) AddClarificationRequests(v int) *AttemptEventUpdateOne {
	_u.mutation.AddClarificationRequests(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AttemptEventUpdateOne) ClearSessionID() *AttemptEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := attemptevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemText(); ok {
		if err := attemptevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := attemptevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemText(); ok {
		_spec.SetField(attemptevent.FieldProblemText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnsTaken(); ok {
		_spec.SetField(attemptevent.FieldTurnsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnsTaken(); ok {
		_spec.AddField(attemptevent.FieldTurnsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(attemptevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(attemptevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApproachIndex(); ok {
		_spec.SetField(attemptevent.FieldApproachIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApproachIndex(); ok {
		_spec.AddField(attemptevent.FieldApproachIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintsRequested(); ok {
		_spec.SetField(attemptevent.FieldHintsRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsRequested(); ok {
		_spec.AddField(attemptevent.FieldHintsRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectAttempts(); ok {
		_spec.SetField(attemptevent.FieldIncorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectAttempts(); ok {
		_spec.AddField(attemptevent.FieldIncorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClarificationRequests(); ok {
		_spec.SetField(attemptevent.FieldClarificationRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClarificationRequests(); ok {
		_spec.AddField(attemptevent.FieldClarificationRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(attemptevent.FieldSessionID, field.TypeString)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
