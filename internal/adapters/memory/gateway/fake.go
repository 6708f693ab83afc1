// Package gateway is a scripted in-memory stand-in for the backend gateway
// port, used by workflow tests to observe calls without any network.
package gateway

import (
	"context"
	"sync"
	"time"

	gatewayport "github.com/drk-digital/erstattungsportal/internal/ports/out/gateway"
)

// Call records one dispatched gateway invocation.
type Call struct {
	Action  string
	Token   string
	Body    any
	Timeout time.Duration
}

// Fake implements gatewayport.Caller with scripted per-action results.
// Unscripted actions yield a failed zero Result, matching the port's
// transport-failure shape.
type Fake struct {
	mu        sync.Mutex
	responses map[string]gatewayport.Result
	calls     []Call
}

var _ gatewayport.Caller = (*Fake)(nil)

func NewFake() *Fake {
	return &Fake{responses: make(map[string]gatewayport.Result)}
}

// Respond scripts the result returned for every subsequent call to action.
func (f *Fake) Respond(action string, r gatewayport.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[action] = r
}

func (f *Fake) Call(_ context.Context, action string, body any, timeout time.Duration) gatewayport.Result {
	return f.record(Call{Action: action, Body: body, Timeout: timeout})
}

func (f *Fake) CallAuthenticated(_ context.Context, action string, token string, body any, timeout time.Duration) gatewayport.Result {
	if token == "" {
		return gatewayport.Result{}
	}
	return f.record(Call{Action: action, Token: token, Body: body, Timeout: timeout})
}

func (f *Fake) record(c Call) gatewayport.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.responses[c.Action]
}

// Calls returns every recorded invocation in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many times action was dispatched.
func (f *Fake) CallCount(action string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Action == action {
			n++
		}
	}
	return n
}
