// Package assist owns the per-field AI suggestion interaction: the
// availability session, the suggestion state machine, and the merge rule that
// folds accepted suggestions into user-owned text.
package assist

import "sync"

// Agent is the credential/parameter bundle selected as default for
// completions. It is sourced from external configuration; the core reads it
// and never mutates or persists it.
type Agent struct {
	ProviderType string
	Model        string
	APIKey       string
	BaseURL      string
	SystemPrompt string
	MaxTokens    int
	Temperature  *float64
}

// Session is the process-wide "is AI available" state: one enabled flag and
// one default agent, initialized at startup, mutable through the setters
// below, not persisted across restarts.
type Session struct {
	mu      sync.RWMutex
	enabled bool
	agent   *Agent
}

func NewSession(agent *Agent) *Session {
	return &Session{
		enabled: agent != nil,
		agent:   agent,
	}
}

// SetEnabled is the single exposed toggle.
func (s *Session) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// SetAgent replaces the default agent. A nil agent removes the AI capability;
// machines observe that on their next transition.
func (s *Session) SetAgent(agent *Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agent = agent
}

// Available reports whether completions can be requested right now, and with
// which agent.
func (s *Session) Available() (*Agent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.enabled || s.agent == nil {
		return nil, false
	}
	return s.agent, true
}
