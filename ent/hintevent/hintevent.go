// Code generated by ent, DO NOT EDIT.

package hintevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the hintevent type in the database.
	Label = "hint_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldProblemText holds the string denoting the problem_text field in the database.
	FieldProblemText = "problem_text"
	// FieldHintText holds the string denoting the hint_text field in the database.
	FieldHintText = "hint_text"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// Table holds the table name of the hintevent in the database.
	Table = "hint_events"
)

// Columns holds all SQL columns for hintevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldRecordedAt,
	FieldSessionID,
	FieldTopic,
	FieldProblemText,
	FieldHintText,
	FieldLevel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRecordedAt holds the default value on creation for the "recorded_at" field.
	DefaultRecordedAt func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	ProblemTextValidator func(string) error
	// HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	HintTextValidator func(string) error
)

// OrderOption defines the ordering options for the HintEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByProblemText orders the results by the problem_text field.
func ByProblemText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemText, opts...).ToFunc()
}

// ByHintText orders the results by the hint_text field.
func ByHintText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintText, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}
