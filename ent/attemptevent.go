// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutoriz/ent/attemptevent"
)

// AttemptEvent is the model entity for the AttemptEvent schema.
type AttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event log
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was appended
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Topic the problem was classified under
	Topic string `json:"topic,omitempty"`
	// The problem as shown to the student
	ProblemText string `json:"problem_text,omitempty"`
	// Dialogue turns to completion
	TurnsTaken int `json:"turns_taken,omitempty"`
	// Steps in the approach used, 0 when unknown
	StepCount int `json:"step_count,omitempty"`
	// Which solution approach was followed
	ApproachIndex int `json:"approach_index,omitempty"`
	// mastered, competent, or struggling
	Level string `json:"level,omitempty"`
	// HintsRequested holds the value of the "hints_requested" field.
	HintsRequested int `json:"hints_requested,omitempty"`
	// IncorrectAttempts holds the value of the "incorrect_attempts" field.
	IncorrectAttempts int `json:"incorrect_attempts,omitempty"`
	// ClarificationRequests holds the value of the "clarification_requests" field.
	ClarificationRequests int `json:"clarification_requests,omitempty"`
	// Practice session this attempt belonged to
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID, attemptevent.FieldSequence, attemptevent.FieldTurnsTaken, attemptevent.FieldStepCount, attemptevent.FieldApproachIndex, attemptevent.FieldHintsRequested, attemptevent.FieldIncorrectAttempts, attemptevent.FieldClarificationRequests:
			values[i] = new(sql.NullInt64)
		case attemptevent.FieldTopic, attemptevent.FieldProblemText, attemptevent.FieldLevel, attemptevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case attemptevent.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptEvent fields.
func (_m *AttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case attemptevent.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case attemptevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case attemptevent.FieldProblemText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_text", values[i])
			} else if value.Valid {
				_m.ProblemText = value.String
			}
		case attemptevent.FieldTurnsTaken:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turns_taken", values[i])
			} else if value.Valid {
				_m.TurnsTaken = int(value.Int64)
			}
		case attemptevent.FieldStepCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_count", values[i])
			} else if value.Valid {
				_m.StepCount = int(value.Int64)
			}
		case attemptevent.FieldApproachIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field approach_index", values[i])
			} else if value.Valid {
				_m.ApproachIndex = int(value.Int64)
			}
		case attemptevent.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case attemptevent.FieldHintsRequested:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_requested", values[i])
			} else if value.Valid {
				_m.HintsRequested = int(value.Int64)
			}
		case attemptevent.FieldIncorrectAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_attempts", values[i])
			} else if value.Valid {
				_m.IncorrectAttempts = int(value.Int64)
			}
		case attemptevent.FieldClarificationRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clarification_requests", values[i])
			} else if value.Valid {
				_m.ClarificationRequests = int(value.Int64)
			}
		case attemptevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptEvent.
// Note that you need to call AttemptEvent.Unwrap() before calling this method if this AttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptEvent) Update() *AttemptEventUpdateOne {
	return NewAttemptEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptEvent) Unwrap() *AttemptEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("problem_text=")
	builder.WriteString(_m.ProblemText)
	builder.WriteString(", ")
	builder.WriteString("turns_taken=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnsTaken))
	builder.WriteString(", ")
	builder.WriteString("step_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepCount))
	builder.WriteString(", ")
	builder.WriteString("approach_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApproachIndex))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("hints_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsRequested))
	builder.WriteString(", ")
	builder.WriteString("incorrect_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncorrectAttempts))
	builder.WriteString(", ")
	builder.WriteString("clarification_requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClarificationRequests))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// AttemptEvents is a parsable slice of AttemptEvent.
type AttemptEvents []*AttemptEvent
