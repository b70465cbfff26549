package assist

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/chronicler-app/chronicler/internal/completion"
)

// State of a field's suggestion machine.
type State int

const (
	StateIdle State = iota
	StateRequesting
	StateSuggestionReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateSuggestionReady:
		return "suggestion-ready"
	default:
		return "unknown"
	}
}

// Completer is the slice of the gateway client a machine needs.
type Completer interface {
	Complete(ctx context.Context, req completion.CompletionRequest) completion.CompletionResponse
}

// Field binds a machine to the one field it owns: the authoritative value and
// the context snapshot taken at trigger time.
type Field struct {
	// Read returns the field's current value.
	Read func() string
	// Write stores the merged value back; only user edits and accepted
	// suggestions go through here.
	Write func(string)
	// BuildContext projects the campaign snapshot for a request. It runs
	// synchronously inside Trigger so the prompt reflects exactly what the
	// user had typed when they asked.
	BuildContext func(currentValue string) (completion.CompletionContext, error)
}

// Machine is the per-field suggestion state machine:
// Idle -> Requesting -> SuggestionReady -> accepted/rejected -> Idle.
// One machine per editable field; separate fields request concurrently with
// no shared lock. A uuid token per request keeps a superseded request's late
// response from ever surfacing.
type Machine struct {
	session *Session
	client  Completer
	field   Field

	// errSink receives completion failures; it must not block. Defaults to a
	// no-op.
	errSink func(error)

	mu         sync.Mutex
	state      State
	token      string
	suggestion string
}

func NewMachine(session *Session, client Completer, field Field, errSink func(error)) *Machine {
	if errSink == nil {
		errSink = func(error) {}
	}
	return &Machine{
		session: session,
		client:  client,
		field:   field,
		errSink: errSink,
	}
}

// State reports the machine's current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Suggestion returns the pending suggestion text, empty outside
// SuggestionReady.
func (m *Machine) Suggestion() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.suggestion
}

// Trigger starts a completion request for the field. It captures the current
// value and builds context now, not at response time. Triggering while a
// request is in flight supersedes it: the prior response is discarded on
// arrival. Without an available agent the gesture is ignored.
func (m *Machine) Trigger(ctx context.Context, prompt string) {
	agent, ok := m.session.Available()
	if !ok {
		return
	}

	m.mu.Lock()
	current := m.field.Read()
	cctx, err := m.field.BuildContext(current)
	if err != nil {
		m.mu.Unlock()
		m.errSink(err)
		return
	}

	token := uuid.NewString()
	m.state = StateRequesting
	m.token = token
	m.suggestion = ""
	m.mu.Unlock()

	req := completion.CompletionRequest{
		Prompt:       prompt,
		Context:      cctx,
		MaxTokens:    agent.MaxTokens,
		Temperature:  agent.Temperature,
		SystemPrompt: agent.SystemPrompt,
		ProviderType: agent.ProviderType,
		APIKey:       agent.APIKey,
		BaseURL:      agent.BaseURL,
		Model:        agent.Model,
	}

	go func() {
		resp := m.client.Complete(ctx, req)
		m.deliver(token, resp)
	}()
}

// deliver applies a response if it belongs to the live request. A stale token
// means the request was superseded or the machine left Requesting; the
// response is discarded either way.
func (m *Machine) deliver(token string, resp completion.CompletionResponse) {
	m.mu.Lock()
	if m.state != StateRequesting || m.token != token {
		m.mu.Unlock()
		return
	}

	if resp.FinishReason == completion.FinishError || resp.Text == "" {
		m.state = StateIdle
		m.token = ""
		m.mu.Unlock()
		msg := resp.ErrorMessage
		if msg == "" {
			msg = "empty completion"
		}
		m.errSink(errors.New(msg))
		return
	}

	m.suggestion = resp.Text
	m.state = StateSuggestionReady
	m.token = ""
	m.mu.Unlock()
}

// Accept merges the pending suggestion into the field value and returns to
// Idle. Outside SuggestionReady it is a no-op.
func (m *Machine) Accept() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateSuggestionReady {
		return
	}
	m.field.Write(Merge(m.field.Read(), m.suggestion))
	m.suggestion = ""
	m.state = StateIdle
}

// Reject discards the pending suggestion; the field value is unchanged. It
// also covers pointer/focus gestures leaving the suggestion surface.
func (m *Machine) Reject() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateSuggestionReady {
		return
	}
	m.suggestion = ""
	m.state = StateIdle
}

// Disable forces the machine to Idle from any state, discarding a pending
// suggestion and invalidating any in-flight request. Used when the field
// loses the AI capability.
func (m *Machine) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateIdle
	m.token = ""
	m.suggestion = ""
}
