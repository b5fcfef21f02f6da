// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tutoriz/ent/attemptevent"
	"github.com/abhisek/tutoriz/ent/hintevent"
	"github.com/abhisek/tutoriz/ent/llmcallevent"
	"github.com/abhisek/tutoriz/ent/reviewevent"
	"github.com/abhisek/tutoriz/ent/schema"
	"github.com/abhisek/tutoriz/ent/sessionevent"
	"github.com/abhisek/tutoriz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescRecordedAt is the schema descriptor for recorded_at field.
	attempteventDescRecordedAt := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	attemptevent.DefaultRecordedAt = attempteventDescRecordedAt.Default.(func() time.Time)
	// attempteventDescTopic is the schema descriptor for topic field.
	attempteventDescTopic := attempteventFields[0].Descriptor()
	// attemptevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attemptevent.TopicValidator = attempteventDescTopic.Validators[0].(func(string) error)
	// attempteventDescProblemText is the schema descriptor for problem_text field.
	attempteventDescProblemText := attempteventFields[1].Descriptor()
	// attemptevent.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	attemptevent.ProblemTextValidator = attempteventDescProblemText.Validators[0].(func(string) error)
	// attempteventDescStepCount is the schema descriptor for step_count field.
	attempteventDescStepCount := attempteventFields[3].Descriptor()
	// attemptevent.DefaultStepCount holds the default value on creation for the step_count field.
	attemptevent.DefaultStepCount = attempteventDescStepCount.Default.(int)
	// attempteventDescApproachIndex is the schema descriptor for approach_index field.
	attempteventDescApproachIndex := attempteventFields[4].Descriptor()
	// attemptevent.DefaultApproachIndex holds the default value on creation for the approach_index field.
	attemptevent.DefaultApproachIndex = attempteventDescApproachIndex.Default.(int)
	// attempteventDescLevel is the schema descriptor for level field.
	attempteventDescLevel := attempteventFields[5].Descriptor()
	// attemptevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	attemptevent.LevelValidator = attempteventDescLevel.Validators[0].(func(string) error)
	// attempteventDescHintsRequested is the schema descriptor for hints_requested field.
	attempteventDescHintsRequested := attempteventFields[6].Descriptor()
	// attemptevent.DefaultHintsRequested holds the default value on creation for the hints_requested field.
	attemptevent.DefaultHintsRequested = attempteventDescHintsRequested.Default.(int)
	// attempteventDescIncorrectAttempts is the schema descriptor for incorrect_attempts field.
	attempteventDescIncorrectAttempts := attempteventFields[7].Descriptor()
	// attemptevent.DefaultIncorrectAttempts holds the default value on creation for the incorrect_attempts field.
	attemptevent.DefaultIncorrectAttempts = attempteventDescIncorrectAttempts.Default.(int)
	// attempteventDescClarificationRequests is the schema descriptor for clarification_requests field.
	attempteventDescClarificationRequests := attempteventFields[8].Descriptor()
	// attemptevent.DefaultClarificationRequests holds the default value on creation for the clarification_requests field.
	attemptevent.DefaultClarificationRequests = attempteventDescClarificationRequests.Default.(int)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescRecordedAt is the schema descriptor for recorded_at field.
	hinteventDescRecordedAt := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	hintevent.DefaultRecordedAt = hinteventDescRecordedAt.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescTopic is the schema descriptor for topic field.
	hinteventDescTopic := hinteventFields[1].Descriptor()
	// hintevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	hintevent.TopicValidator = hinteventDescTopic.Validators[0].(func(string) error)
	// hinteventDescProblemText is the schema descriptor for problem_text field.
	hinteventDescProblemText := hinteventFields[2].Descriptor()
	// hintevent.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	hintevent.ProblemTextValidator = hinteventDescProblemText.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[3].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	llmcalleventMixin := schema.LLMCallEvent{}.Mixin()
	llmcalleventMixinFields0 := llmcalleventMixin[0].Fields()
	_ = llmcalleventMixinFields0
	llmcalleventFields := schema.LLMCallEvent{}.Fields()
	_ = llmcalleventFields
	// llmcalleventDescRecordedAt is the schema descriptor for recorded_at field.
	llmcalleventDescRecordedAt := llmcalleventMixinFields0[1].Descriptor()
	// llmcallevent.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	llmcallevent.DefaultRecordedAt = llmcalleventDescRecordedAt.Default.(func() time.Time)
	// llmcalleventDescInputTokens is the schema descriptor for input_tokens field.
	llmcalleventDescInputTokens := llmcalleventFields[3].Descriptor()
	// llmcallevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcallevent.DefaultInputTokens = llmcalleventDescInputTokens.Default.(int)
	// llmcalleventDescOutputTokens is the schema descriptor for output_tokens field.
	llmcalleventDescOutputTokens := llmcalleventFields[4].Descriptor()
	// llmcallevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcallevent.DefaultOutputTokens = llmcalleventDescOutputTokens.Default.(int)
	// llmcalleventDescLatencyMs is the schema descriptor for latency_ms field.
	llmcalleventDescLatencyMs := llmcalleventFields[5].Descriptor()
	// llmcallevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcallevent.DefaultLatencyMs = llmcalleventDescLatencyMs.Default.(int64)
	// llmcalleventDescErrorMessage is the schema descriptor for error_message field.
	llmcalleventDescErrorMessage := llmcalleventFields[7].Descriptor()
	// llmcallevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmcallevent.DefaultErrorMessage = llmcalleventDescErrorMessage.Default.(string)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescRecordedAt is the schema descriptor for recorded_at field.
	revieweventDescRecordedAt := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	reviewevent.DefaultRecordedAt = revieweventDescRecordedAt.Default.(func() time.Time)
	// revieweventDescTopic is the schema descriptor for topic field.
	revieweventDescTopic := revieweventFields[0].Descriptor()
	// reviewevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	reviewevent.TopicValidator = revieweventDescTopic.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescRecordedAt is the schema descriptor for recorded_at field.
	sessioneventDescRecordedAt := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	sessionevent.DefaultRecordedAt = sessioneventDescRecordedAt.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescProblemsServed is the schema descriptor for problems_served field.
	sessioneventDescProblemsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultProblemsServed holds the default value on creation for the problems_served field.
	sessionevent.DefaultProblemsServed = sessioneventDescProblemsServed.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
