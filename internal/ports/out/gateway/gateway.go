// Package gateway defines the outbound port for the reimbursement backend API.
//
// The contract mirrors the backend's JSON-over-POST surface: every call yields
// a Result, never a Go error. Timeouts, transport faults, and unparsable
// response bodies all fold into Result.Succeeded=false so that callers have a
// single failure path per stage.
package gateway

import (
	"context"
	"time"
)

// Actions understood by the backend.
const (
	ActionLogin    = "login"
	ActionVerify   = "verify"
	ActionRegister = "register"
	ActionGetUser  = "get-user"
	ActionSubmit   = "submit"
)

// Caller issues a single POST per invocation. There is no automatic retry;
// retry policy belongs to the caller.
type Caller interface {
	// Call posts body as JSON to the action endpoint. The request is cancelled
	// if no response arrives within timeout.
	Call(ctx context.Context, action string, body any, timeout time.Duration) Result

	// CallAuthenticated is Call with the session credential attached as a
	// bearer token. It must not be invoked with an empty token; the workflow
	// enforces this before dispatch and implementations fail fast on misuse.
	CallAuthenticated(ctx context.Context, action string, token string, body any, timeout time.Duration) Result
}

// Result is the uniform shape of every backend call.
//
// Succeeded reflects transport-level success (an HTTP 2xx response) only.
// Business-level success additionally requires Data.Status == "success";
// use BusinessSuccess for the combined check.
type Result struct {
	Succeeded  bool
	StatusCode int
	Data       Envelope
}

// BusinessSuccess reports whether the call succeeded at both the transport
// and the application level.
func (r Result) BusinessSuccess() bool {
	return r.Succeeded && r.Data.Status == "success"
}

// Envelope is the best-effort decoding of a backend response body. A non-JSON
// or empty body decodes to the zero Envelope rather than an error.
type Envelope struct {
	Status        string       `json:"status"`
	Message       string       `json:"message"`
	Token         string       `json:"token"`
	User          *UserProfile `json:"user"`
	AntragsNummer string       `json:"antrags_nummer"`
}
