// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutoriz/ent/hintevent"
)

// HintEvent is the model entity for the HintEvent schema.
type HintEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event log
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was appended
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// ProblemText holds the value of the "problem_text" field.
	ProblemText string `json:"problem_text,omitempty"`
	// HintText holds the value of the "hint_text" field.
	HintText string `json:"hint_text,omitempty"`
	// Escalation level 1-3
	Level        int `json:"level,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HintEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hintevent.FieldID, hintevent.FieldSequence, hintevent.FieldLevel:
			values[i] = new(sql.NullInt64)
		case hintevent.FieldSessionID, hintevent.FieldTopic, hintevent.FieldProblemText, hintevent.FieldHintText:
			values[i] = new(sql.NullString)
		case hintevent.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HintEvent fields.
func (_m *HintEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hintevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hintevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case hintevent.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case hintevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case hintevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case hintevent.FieldProblemText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_text", values[i])
			} else if value.Valid {
				_m.ProblemText = value.String
			}
		case hintevent.FieldHintText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint_text", values[i])
			} else if value.Valid {
				_m.HintText = value.String
			}
		case hintevent.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HintEvent.
// This includes values selected through modifiers, order, etc.
func (_m *HintEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HintEvent.
// Note that you need to call HintEvent.Unwrap() before calling this method if this HintEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HintEvent) Update() *HintEventUpdateOne {
	return NewHintEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HintEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HintEvent) Unwrap() *HintEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HintEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HintEvent) String() string {
	var builder strings.Builder
	builder.WriteString("HintEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("problem_text=")
	builder.WriteString(_m.ProblemText)
	builder.WriteString(", ")
	builder.WriteString("hint_text=")
	builder.WriteString(_m.HintText)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteByte(')')
	return builder.String()
}

// HintEvents is a parsable slice of HintEvent.
type HintEvents []*HintEvent
