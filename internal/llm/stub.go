package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// StubProvider plays back a scripted sequence of replies and failures,
// in order, and records every request it sees. Zero value is usable; an
// exhausted (or empty) script fails as an outage.
type StubProvider struct {
	mu       sync.Mutex
	script   []stubTurn
	requests []Request
}

type stubTurn struct {
	content json.RawMessage
	err     error
}

// NewStub returns an empty StubProvider. Chain Reply and Fail to
// build the script.
func NewStub() *StubProvider {
	return &StubProvider{}
}

// Reply appends a successful turn returning content.
func (s *StubProvider) Reply(content json.RawMessage) *StubProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = append(s.script, stubTurn{content: content})
	return s
}

// Fail appends a failing turn returning err.
func (s *StubProvider) Fail(err error) *StubProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = append(s.script, stubTurn{err: err})
	return s
}

func (s *StubProvider) Complete(_ context.Context, req Request) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)

	if len(s.script) == 0 {
		return nil, Unavailable(errors.New("stub script exhausted"))
	}
	turn := s.script[0]
	s.script = s.script[1:]

	if turn.err != nil {
		return nil, turn.err
	}
	return &Result{Content: turn.content, Model: "stub"}, nil
}

func (s *StubProvider) Name() string {
	return "stub"
}

// Calls returns how many requests the stub has served.
func (s *StubProvider) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Request returns the i-th recorded request.
func (s *StubProvider) Request(i int) Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[i]
}
