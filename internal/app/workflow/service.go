// Package workflow drives the claim session through its stages:
// Login -> Verification -> (Registration -> Consent) -> Prefill -> Edit ->
// Confirmed. The service owns the session, the staged registration, the
// editable draft, and the attachment collection; a UI-binding layer invokes
// the transition handlers and renders their outcomes.
package workflow

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/drk-digital/erstattungsportal/internal/app/attachments"
	"github.com/drk-digital/erstattungsportal/internal/domain"
	clockport "github.com/drk-digital/erstattungsportal/internal/ports/out/clock"
	"github.com/drk-digital/erstattungsportal/internal/ports/out/gateway"
)

var codePattern = regexp.MustCompile(`^\d{6}$`)

type Service struct {
	gw       gateway.Caller
	clk      clockport.Clock
	timeouts Timeouts

	mu   sync.Mutex
	busy bool

	state   State
	session domain.Session
	pending *domain.PendingRegistration
	regForm domain.PendingRegistration
	draft   domain.ClaimDraft
	files   attachments.Collection
}

func NewService(gw gateway.Caller, clk clockport.Clock, timeouts Timeouts) *Service {
	return &Service{
		gw:       gw,
		clk:      clk,
		timeouts: timeouts.withDefaults(),
		state:    StateLogin,
	}
}

func (s *Service) State() State            { return s.state }
func (s *Service) Session() domain.Session { return s.session }

// Draft exposes the editable claim for the binding layer and field helpers.
// All mutation happens on the single UI goroutine.
func (s *Service) Draft() *domain.ClaimDraft { return &s.draft }

// Attachments exposes the staged file collection.
func (s *Service) Attachments() *attachments.Collection { return &s.files }

// RegistrationForm returns the last entered registration values. The binding
// layer re-populates the form with them when a consent round trip lands back
// in Registration.
func (s *Service) RegistrationForm() domain.PendingRegistration { return s.regForm }

// Login submits the user's credentials. On success the session remembers the
// identity (not yet a credential) and the workflow advances to Verification.
func (s *Service) Login(ctx context.Context, email, password string) error {
	if s.state != StateLogin {
		return s.wrongState(StateLogin)
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return validationErr("login", "Bitte E-Mail und Passwort eingeben")
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	r := s.gw.Call(ctx, gateway.ActionLogin, gateway.LoginRequest{Email: email, Password: password}, s.timeouts.Default)
	if !r.BusinessSuccess() {
		return failure(r, "Anmeldedaten ungültig.", "Netzwerkfehler beim Anmelden.")
	}

	s.session = domain.Session{Email: email}
	s.state = StateVerification
	return nil
}

// VerifyCode submits the 6-digit one-time code. On success the session
// becomes authenticated and the workflow prefills the draft (from the
// verification response when it embeds profile data, otherwise with a single
// get-user fetch) before entering Edit. Prefill failure is non-fatal.
func (s *Service) VerifyCode(ctx context.Context, code string) error {
	if s.state != StateVerification {
		return s.wrongState(StateVerification)
	}
	if !codePattern.MatchString(code) {
		return validationErr("code", "Bitte geben Sie den vollständigen 6-stelligen Code ein")
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	r := s.gw.Call(ctx, gateway.ActionVerify, gateway.VerifyRequest{Email: s.session.Email, Code: code}, s.timeouts.Default)
	if !r.BusinessSuccess() {
		return failure(r, "Ungültiger Code.", "Netzwerkfehler bei der Verifizierung.")
	}

	s.session.Token = r.Data.Token
	s.state = StatePrefill
	s.prefill(ctx, r.Data.User)
	s.enterEdit()
	return nil
}

// prefill applies profile data to the draft. When verify already embedded a
// profile no fetch happens; otherwise exactly one authenticated get-user call
// is made. Any failure leaves the fields blank.
func (s *Service) prefill(ctx context.Context, embedded *gateway.UserProfile) {
	s.draft.Email = s.session.Email
	if embedded != nil {
		embedded.Apply(&s.draft)
		return
	}
	if !s.session.Authenticated() {
		return
	}
	r := s.gw.CallAuthenticated(ctx, gateway.ActionGetUser, s.session.Token, struct{}{}, s.timeouts.Default)
	if r.BusinessSuccess() && r.Data.User != nil {
		r.Data.User.Apply(&s.draft)
	}
}

func (s *Service) enterEdit() {
	s.draft.Date = s.clk.Now().Format("02.01.2006")
	s.state = StateEdit
}

// StartRegistration branches from Login into the registration form.
func (s *Service) StartRegistration() error {
	if s.state != StateLogin {
		return s.wrongState(StateLogin)
	}
	s.state = StateRegistration
	return nil
}

// CancelRegistration abandons the registration form and returns to Login.
func (s *Service) CancelRegistration() error {
	if s.state != StateRegistration {
		return s.wrongState(StateRegistration)
	}
	s.state = StateLogin
	return nil
}

// SubmitRegistration validates the registration form locally and stages it
// for the consent step. Nothing is sent yet.
func (s *Service) SubmitRegistration(in domain.PendingRegistration) error {
	if s.state != StateRegistration {
		return s.wrongState(StateRegistration)
	}
	in = trimRegistration(in)
	if in.Email == "" || in.Password == "" || in.PasswordConfirm == "" {
		return validationErr("register", "Bitte E-Mail und beide Passwörter angeben.")
	}
	if in.Password != in.PasswordConfirm {
		return validationErr("register", "Passwörter stimmen nicht überein.")
	}
	s.pending = &in
	s.regForm = in
	s.state = StateConsent
	return nil
}

// AcceptConsent sends the staged registration. Accepting clears the staged
// data whatever the outcome: on success the workflow returns to Login (the
// binding layer shows MsgRegistrationDone), on failure it returns to
// Registration with the entered values still available via RegistrationForm.
func (s *Service) AcceptConsent(ctx context.Context) error {
	if s.state != StateConsent {
		return s.wrongState(StateConsent)
	}
	if s.pending == nil {
		return &Error{Code: CodeState, Message: "Keine Registrierung ausstehend."}
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	payload := gateway.NewRegistrationPayload(*s.pending)
	s.pending = nil
	r := s.gw.Call(ctx, gateway.ActionRegister, payload, s.timeouts.Register)
	if !r.BusinessSuccess() {
		s.state = StateRegistration
		return failure(r, "Registrierung fehlgeschlagen.", "Netzwerkfehler bei der Registrierung.")
	}
	s.regForm = domain.PendingRegistration{}
	s.state = StateLogin
	return nil
}

// CancelConsent discards the staged registration and returns to the form.
func (s *Service) CancelConsent() error {
	if s.state != StateConsent {
		return s.wrongState(StateConsent)
	}
	s.pending = nil
	s.state = StateRegistration
	return nil
}

// Submit validates the draft, encodes the attachments, and sends the claim.
// On business success the confirmation code is returned and the workflow is
// done; every failure leaves the workflow in Edit for another attempt.
//
// consent is the state of the privacy checkbox; it is the first check, and
// validation short-circuits on the first failing rule.
func (s *Service) Submit(ctx context.Context, consent bool) (string, error) {
	if s.state != StateEdit {
		return "", s.wrongState(StateEdit)
	}
	if err := s.validateForSubmit(consent); err != nil {
		return "", err
	}
	if !s.session.Authenticated() {
		// Session invariant: never dispatch an authenticated call without a
		// credential.
		return "", &Error{Code: CodeState, Message: "Sitzung ist nicht angemeldet."}
	}
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	files, err := attachments.EncodeAll(ctx, s.files.Files())
	if err != nil {
		return "", &Error{Code: CodeNetwork, Message: "Übermittlung fehlgeschlagen (Datei oder Netzwerk)."}
	}

	body := gateway.SubmitRequest{Payload: gateway.NewClaimPayload(s.draft), Files: files}
	r := s.gw.CallAuthenticated(ctx, gateway.ActionSubmit, s.session.Token, body, s.timeouts.Submit)
	if !r.BusinessSuccess() {
		return "", failure(r, "Übermittlung fehlgeschlagen.", "Übermittlung fehlgeschlagen (Datei oder Netzwerk).")
	}

	s.state = StateConfirmed
	code := r.Data.AntragsNummer
	if code == "" {
		code = MsgNoConfirmation
	}
	return code, nil
}

// validateForSubmit applies the pre-submit checks in their fixed order and
// returns the first failure.
func (s *Service) validateForSubmit(consent bool) *Error {
	if !consent {
		return validationErr("consent", "Bitte bestätigen Sie die Hinweise")
	}
	email := strings.TrimSpace(s.draft.Email)
	if email == "" || !strings.Contains(email, "@") {
		return validationErr("email", "Bitte geben Sie eine gültige E-Mail-Adresse ein")
	}
	iban := strings.TrimSpace(s.draft.IBAN)
	if !strings.HasPrefix(iban, "DE") {
		return validationErr("iban", "Bitte geben Sie eine gültige deutsche IBAN ein")
	}
	if strings.TrimSpace(s.draft.Institute) == "" {
		return validationErr("kreditinstitut", "Bitte geben Sie das Kreditinstitut an")
	}
	if strings.TrimSpace(s.draft.Activity) == "" {
		return validationErr("taetigkeit", "Bitte geben Sie Ihre Tätigkeit an")
	}
	return nil
}

// begin marks the stage's triggering control as in flight. A second
// invocation while the first is outstanding is refused, which is what keeps
// duplicate submissions impossible.
func (s *Service) begin() *Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return &Error{Code: CodeBusy, Message: "Aktion läuft bereits."}
	}
	s.busy = true
	return nil
}

func (s *Service) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Service) wrongState(want State) *Error {
	return &Error{Code: CodeState, Message: "Aktion in diesem Schritt nicht möglich (" + string(s.state) + " statt " + string(want) + ")."}
}

func failure(r gateway.Result, businessFallback, networkFallback string) *Error {
	// StatusCode zero means the request never produced a response: timeout,
	// cancellation, or transport fault.
	if r.StatusCode == 0 {
		return &Error{Code: CodeNetwork, Message: networkFallback}
	}
	msg := r.Data.Message
	if msg == "" {
		msg = businessFallback
	}
	return &Error{Code: CodeBackend, Message: msg}
}

func trimRegistration(in domain.PendingRegistration) domain.PendingRegistration {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.City = strings.TrimSpace(in.City)
	in.SignatureName = strings.TrimSpace(in.SignatureName)
	in.IBAN = strings.TrimSpace(in.IBAN)
	in.Institute = strings.TrimSpace(in.Institute)
	in.Recipient = strings.TrimSpace(in.Recipient)
	in.Activity = strings.TrimSpace(in.Activity)
	in.Email = strings.TrimSpace(in.Email)
	return in
}
