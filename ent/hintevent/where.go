// Code generated by ent, DO NOT EDIT.

package hintevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutoriz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldRecordedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTopic, v))
}

// ProblemText applies equality check predicate on the "problem_text" field. It's identical to ProblemTextEQ.
func ProblemText(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldProblemText, v))
}

// HintText applies equality check predicate on the "hint_text" field. It's identical to HintTextEQ.
func HintText(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldLevel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSequence, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldRecordedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldTopic, v))
}

// ProblemTextEQ applies the EQ predicate on the "problem_text" field.
func ProblemTextEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldProblemText, v))
}

// ProblemTextNEQ applies the NEQ predicate on the "problem_text" field.
func ProblemTextNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldProblemText, v))
}

// ProblemTextIn applies the In predicate on the "problem_text" field.
func ProblemTextIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldProblemText, vs...))
}

// ProblemTextNotIn applies the NotIn predicate on the "problem_text" field.
func ProblemTextNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldProblemText, vs...))
}

// ProblemTextGT applies the GT predicate on the "problem_text" field.
func ProblemTextGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldProblemText, v))
}

// ProblemTextGTE applies the GTE predicate on the "problem_text" field.
func ProblemTextGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldProblemText, v))
}

// ProblemTextLT applies the LT predicate on the "problem_text" field.
func ProblemTextLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldProblemText, v))
}

// ProblemTextLTE applies the LTE predicate on the "problem_text" field.
func ProblemTextLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldProblemText, v))
}

// ProblemTextContains applies the Contains predicate on the "problem_text" field.
func ProblemTextContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldProblemText, v))
}

// ProblemTextHasPrefix applies the HasPrefix predicate on the "problem_text" field.
func ProblemTextHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldProblemText, v))
}

// ProblemTextHasSuffix applies the HasSuffix predicate on the "problem_text" field.
func ProblemTextHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldProblemText, v))
}

// ProblemTextEqualFold applies the EqualFold predicate on the "problem_text" field.
func ProblemTextEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldProblemText, v))
}

// ProblemTextContainsFold applies the ContainsFold predicate on the "problem_text" field.
func ProblemTextContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldProblemText, v))
}

// HintTextEQ applies the EQ predicate on the "hint_text" field.
func HintTextEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// HintTextNEQ applies the NEQ predicate on the "hint_text" field.
func HintTextNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldHintText, v))
}

// HintTextIn applies the In predicate on the "hint_text" field.
func HintTextIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldHintText, vs...))
}

// HintTextNotIn applies the NotIn predicate on the "hint_text" field.
func HintTextNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldHintText, vs...))
}

// HintTextGT applies the GT predicate on the "hint_text" field.
func HintTextGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldHintText, v))
}

// HintTextGTE applies the GTE predicate on the "hint_text" field.
func HintTextGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldHintText, v))
}

// HintTextLT applies the LT predicate on the "hint_text" field.
func HintTextLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldHintText, v))
}

// HintTextLTE applies the LTE predicate on the "hint_text" field.
func HintTextLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldHintText, v))
}

// HintTextContains applies the Contains predicate on the "hint_text" field.
func HintTextContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldHintText, v))
}

// HintTextHasPrefix applies the HasPrefix predicate on the "hint_text" field.
func HintTextHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldHintText, v))
}

// HintTextHasSuffix applies the HasSuffix predicate on the "hint_text" field.
func HintTextHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldHintText, v))
}

// HintTextEqualFold applies the EqualFold predicate on the "hint_text" field.
func HintTextEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldHintText, v))
}

// HintTextContainsFold applies the ContainsFold predicate on the "hint_text" field.
func HintTextContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldHintText, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.NotPredicates(p))
}
