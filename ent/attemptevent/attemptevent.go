// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldProblemText holds the string denoting the problem_text field in the database.
	FieldProblemText = "problem_text"
	// FieldTurnsTaken holds the string denoting the turns_taken field in the database.
	FieldTurnsTaken = "turns_taken"
	// FieldStepCount holds the string denoting the step_count field in the database.
	FieldStepCount = "step_count"
	// FieldApproachIndex holds the string denoting the approach_index field in the database.
	FieldApproachIndex = "approach_index"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldHintsRequested holds the string denoting the hints_requested field in the database.
	FieldHintsRequested = "hints_requested"
	// FieldIncorrectAttempts holds the string denoting the incorrect_attempts field in the database.
	FieldIncorrectAttempts = "incorrect_attempts"
	// FieldClarificationRequests holds the string denoting the clarification_requests field in the database.
	FieldClarificationRequests = "clarification_requests"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldRecordedAt,
	FieldTopic,
	FieldProblemText,
	FieldTurnsTaken,
	FieldStepCount,
	FieldApproachIndex,
	FieldLevel,
	FieldHintsRequested,
	FieldIncorrectAttempts,
	FieldClarificationRequests,
	FieldSessionID,
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
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	ProblemTextValidator func(string) error
	// DefaultStepCount holds the default value on creation for the "step_count" field.
	DefaultStepCount int
	// DefaultApproachIndex holds the default value on creation for the "approach_index" field.
	DefaultApproachIndex int
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// DefaultHintsRequested holds the default value on creation for the "hints_requested" field.
	DefaultHintsRequested int
	// DefaultIncorrectAttempts holds the default value on creation for the "incorrect_attempts" field.
	DefaultIncorrectAttempts int
	// DefaultClarificationRequests holds the default value on creation for the "clarification_requests" field.
	DefaultClarificationRequests int
)

// OrderOption defines the ordering options for the AttemptEvent queries.
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

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByProblemText orders the results by the problem_text field.
func ByProblemText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemText, opts...).ToFunc()
}

// ByTurnsTaken orders the results by the turns_taken field.
func ByTurnsTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnsTaken, opts...).ToFunc()
}

// ByStepCount orders the results by the step_count field.
func ByStepCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepCount, opts...).ToFunc()
}

// ByApproachIndex orders the results by the approach_index field.
func ByApproachIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproachIndex, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByHintsRequested orders the results by the hints_requested field.
func ByHintsRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsRequested, opts...).ToFunc()
}

// ByIncorrectAttempts orders the results by the incorrect_attempts field.
func ByIncorrectAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectAttempts, opts...).ToFunc()
}

// ByClarificationRequests orders the results by the clarification_requests field.
func ByClarificationRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClarificationRequests, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
