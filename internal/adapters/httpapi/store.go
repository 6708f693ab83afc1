// Package httpapi is a development stand-in for the claim backend: it serves
// the portal's JSON-over-POST API surface with in-memory state so the client
// can be exercised end to end without the deployed service.
package httpapi

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound indicates the account or credential does not exist.
	ErrNotFound = errors.New("account not found")

	// ErrAlreadyExists indicates an account is already registered for the email.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrCodeMismatch indicates the one-time code is wrong or expired.
	ErrCodeMismatch = errors.New("verification code mismatch")
)

// Profile is the prefill data held for an account.
type Profile struct {
	NameVorname       string
	StrasseHausnummer string
	PLZ               string
	Unterschrift      string
	IBAN              string
	Kreditinstitut    string
	Empfaenger        string
	Taetigkeit        string
}

// Account is one registered portal user.
type Account struct {
	Email    string
	Password string
	Profile  Profile
}

// Claim is one accepted submission.
type Claim struct {
	AntragsNummer string
	Email         string
	SubmittedAt   time.Time
	FileNames     []string
}

// Store holds all stand-in state in memory. Safe for concurrent use.
type Store struct {
	mu sync.Mutex

	accounts map[string]Account // by email
	codes    map[string]string  // pending one-time code by email
	tokens   map[string]string  // bearer token -> email
	claims   []Claim
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]Account),
		codes:    make(map[string]string),
		tokens:   make(map[string]string),
	}
}

// Register creates an account. The email is the account key.
func (s *Store) Register(a Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.Email]; ok {
		return ErrAlreadyExists
	}
	s.accounts[a.Email] = a
	return nil
}

// BeginLogin checks the credentials and issues a one-time code for the email.
func (s *Store) BeginLogin(email, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok || a.Password != password {
		return "", ErrNotFound
	}
	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	s.codes[email] = code
	return code, nil
}

// Verify consumes the pending code and issues a bearer token.
func (s *Store) Verify(email, code string) (string, Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want, ok := s.codes[email]
	if !ok || want != code {
		return "", Profile{}, ErrCodeMismatch
	}
	delete(s.codes, email)

	token := uuid.NewString()
	s.tokens[token] = email
	return token, s.accounts[email].Profile, nil
}

// Resolve maps a bearer token back to its account.
func (s *Store) Resolve(token string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.tokens[token]
	if !ok {
		return Account{}, ErrNotFound
	}
	a, ok := s.accounts[email]
	if !ok {
		return Account{}, ErrNotFound
	}
	return a, nil
}

// AcceptClaim records a submission and mints its confirmation code.
func (s *Store) AcceptClaim(email string, fileNames []string, now time.Time) Claim {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := Claim{
		AntragsNummer: fmt.Sprintf("DRK-%d-%s", now.Year(), uuid.NewString()[:8]),
		Email:         email,
		SubmittedAt:   now,
		FileNames:     fileNames,
	}
	s.claims = append(s.claims, c)
	return c
}

// Claims returns all accepted submissions in order.
func (s *Store) Claims() []Claim {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Claim, len(s.claims))
	copy(out, s.claims)
	return out
}
