// Package chat implements the exchange session: the transcript and the
// request lifecycle for one round trip against the inference API.
package chat

import (
	"strings"

	"github.com/diogo/hfchat/internal/api"
	"github.com/diogo/hfchat/internal/models"
)

// RequestState gates whether a new submission is accepted.
type RequestState int

const (
	// StateIdle means no request is in flight; submissions are accepted.
	StateIdle RequestState = iota
	// StatePending means a request is in flight; submissions are rejected.
	StatePending
)

func (s RequestState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	}
	return "unknown"
}

// Session owns the transcript and the request state for one chat session.
// The transcript is append-only and chronological; it lives for the process
// and is never persisted.
//
// A Session is owned by a single goroutine (the TUI event loop or a
// synchronous command path). Submit and Resolve must be called from that
// owner; the inference call itself may run elsewhere, it only touches the
// session through Resolve's arguments.
type Session struct {
	client     api.InferenceClientInterface
	transcript []models.Message
	state      RequestState
	lastErr    error
}

// NewSession creates a session backed by the given client.
func NewSession(client api.InferenceClientInterface) *Session {
	return &Session{client: client}
}

// Client returns the inference client backing this session.
func (s *Session) Client() api.InferenceClientInterface {
	return s.client
}

// State returns the current request state.
func (s *Session) State() RequestState {
	return s.state
}

// Pending reports whether a request is in flight.
func (s *Session) Pending() bool {
	return s.state == StatePending
}

// Transcript returns a copy of the transcript in chronological order.
func (s *Session) Transcript() []models.Message {
	out := make([]models.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Submit accepts a prompt for sending. When the trimmed prompt is non-empty
// and no request is pending, the user entry is appended immediately and the
// session transitions to pending; the trimmed prompt is returned for the
// caller to forward to the inference API. Otherwise nothing changes and ok is
// false.
func (s *Session) Submit(prompt string) (trimmed string, ok bool) {
	trimmed = strings.TrimSpace(prompt)
	if trimmed == "" || s.state != StateIdle {
		return "", false
	}

	s.transcript = append(s.transcript, models.Message{
		Role:    models.RoleUser,
		Content: trimmed,
	})
	s.state = StatePending
	return trimmed, true
}

// Resolve settles the in-flight request. Exactly one assistant entry is
// appended: the generated text on success, the placeholder when the payload
// had no usable text, or an "Error: " entry for any fault. The session always
// returns to idle, so no failure can wedge future submissions.
//
// Calling Resolve without a pending request is a no-op.
func (s *Session) Resolve(output *models.ModelOutput, err error) {
	if s.state != StatePending {
		return
	}

	content := output.Text()
	if err != nil {
		content = "Error: " + err.Error()
	}
	s.lastErr = err

	s.transcript = append(s.transcript, models.Message{
		Role:    models.RoleAssistant,
		Content: content,
	})
	s.state = StateIdle
}

// LastError returns the fault recorded by the most recent settlement, or nil
// when it succeeded. The transcript only keeps the rendered message; callers
// that want to classify the fault (for hints, exit codes) use this.
func (s *Session) LastError() error {
	return s.lastErr
}

// Send performs one full round trip synchronously: Submit, the inference
// call, Resolve. It returns the assistant entry and whether the prompt was
// accepted. Used by the one-shot query path; the TUI drives Submit and
// Resolve itself so its event loop stays responsive.
func (s *Session) Send(prompt string) (models.Message, bool) {
	trimmed, ok := s.Submit(prompt)
	if !ok {
		return models.Message{}, false
	}

	output, err := s.client.GenerateContent(trimmed)
	s.Resolve(output, err)

	return s.transcript[len(s.transcript)-1], true
}
