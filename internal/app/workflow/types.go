package workflow

import "time"

// State is the current stage of the claim session.
type State string

const (
	// StateLogin is the initial state: credentials not yet submitted.
	StateLogin State = "LOGIN"
	// StateVerification awaits the 6-digit one-time code.
	StateVerification State = "VERIFICATION"
	// StateRegistration is the optional account-creation branch from Login.
	StateRegistration State = "REGISTRATION"
	// StateConsent holds a staged registration until the user accepts the
	// privacy notice.
	StateConsent State = "CONSENT"
	// StatePrefill is the transient stage between a successful verification
	// and the editable form, while profile data is fetched and applied.
	StatePrefill State = "PREFILL"
	// StateEdit is the editable claim form.
	StateEdit State = "EDIT"
	// StateConfirmed is terminal: the claim was accepted and a confirmation
	// code shown.
	StateConfirmed State = "CONFIRMED"
)

// Timeouts bound each backend call. Zero fields take the portal defaults.
type Timeouts struct {
	Default  time.Duration
	Register time.Duration
	Submit   time.Duration
}

func (t Timeouts) withDefaults() Timeouts {
	if t.Default == 0 {
		t.Default = 15 * time.Second
	}
	if t.Register == 0 {
		t.Register = 20 * time.Second
	}
	if t.Submit == 0 {
		t.Submit = 60 * time.Second
	}
	return t
}

// User-facing messages, verbatim from the portal.
const (
	MsgRegistrationDone = "Registrierung erfolgreich! Bitte melden Sie sich an."
	MsgNoConfirmation   = "Kein Referenzcode gefunden. Diesen erhalten Sie in Ihrer E-Mail."
)
