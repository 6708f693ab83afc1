package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	clockport "github.com/drk-digital/erstattungsportal/internal/ports/out/clock"
)

// Server implements the portal API surface against the in-memory store.
type Server struct {
	store *Store
	clk   clockport.Clock
	logp  *log.Logger
}

func NewServer(store *Store, clk clockport.Clock, logger *log.Logger) *Server {
	return &Server{store: store, clk: clk, logp: logger}
}

// envelope is the uniform response body: status plus the per-action extras.
type envelope struct {
	Status        string       `json:"status"`
	Message       string       `json:"message,omitempty"`
	Token         string       `json:"token,omitempty"`
	User          *userPayload `json:"user,omitempty"`
	AntragsNummer string       `json:"antrags_nummer,omitempty"`
}

// userPayload mirrors the backend's prefill shape; empty fields are omitted
// so the client only applies what is actually known.
type userPayload struct {
	NameVorname       string `json:"name_vorname,omitempty"`
	StrasseHausnummer string `json:"strasse_hausnummer,omitempty"`
	PLZ               string `json:"plz,omitempty"`
	Unterschrift      string `json:"unterschrift,omitempty"`
	IBAN              string `json:"iban,omitempty"`
	Kreditinstitut    string `json:"kreditinstitut,omitempty"`
	Empfaenger        string `json:"empfaenger,omitempty"`
	Taetigkeit        string `json:"taetigkeit,omitempty"`
}

func userFromProfile(p Profile) *userPayload {
	u := userPayload(p)
	if u == (userPayload{}) {
		return nil
	}
	return &u
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	code, err := s.store.BeginLogin(req.Email, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, envelope{Status: "error", Message: "Anmeldedaten ungültig."})
		return
	}
	// The deployed backend mails the code; the stand-in logs it instead.
	s.logf("one-time code for %s: %s", req.Email, code)
	writeJSON(w, http.StatusOK, envelope{Status: "success"})
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !decode(w, r, &req) {
		return
	}
	token, profile, err := s.store.Verify(req.Email, req.Code)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, envelope{Status: "error", Message: "Ungültiger Code."})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: "success", Token: token, User: userFromProfile(profile)})
}

type registerRequest struct {
	Name         string `json:"name"`
	Adresse      string `json:"adresse"`
	PLZ          string `json:"plz"`
	Ort          string `json:"ort"`
	Unterschrift string `json:"unterschrift"`
	IBAN         string `json:"iban"`
	Institut     string `json:"institut"`
	Empfanger    string `json:"empfanger"`
	Taetigkeit   string `json:"taetigkeit"`
	Email        string `json:"email"`
	Pass         string `json:"pass"`
	Pass2        string `json:"pass2"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Pass == "" || req.Pass != req.Pass2 {
		writeJSON(w, http.StatusUnprocessableEntity, envelope{Status: "error", Message: "Registrierung fehlgeschlagen."})
		return
	}

	plz := req.PLZ
	if req.Ort != "" {
		// The claim form carries postal code and city in one field.
		plz = req.PLZ + " " + req.Ort
	}
	err := s.store.Register(Account{
		Email:    req.Email,
		Password: req.Pass,
		Profile: Profile{
			NameVorname:       req.Name,
			StrasseHausnummer: req.Adresse,
			PLZ:               plz,
			Unterschrift:      req.Unterschrift,
			IBAN:              req.IBAN,
			Kreditinstitut:    req.Institut,
			Empfaenger:        req.Empfanger,
			Taetigkeit:        req.Taetigkeit,
		},
	})
	if errors.Is(err, ErrAlreadyExists) {
		writeJSON(w, http.StatusConflict, envelope{Status: "error", Message: "E-Mail bereits registriert."})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: "success"})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, envelope{Status: "error", Message: "Nicht angemeldet."})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: "success", User: userFromProfile(account.Profile)})
}

type submitRequest struct {
	Payload map[string]any `json:"payload"`
	Files   []struct {
		Name       string `json:"name"`
		Type       string `json:"type"`
		Size       int64  `json:"size"`
		DataBase64 string `json:"dataBase64"`
	} `json:"files"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, envelope{Status: "error", Message: "Nicht angemeldet."})
		return
	}
	var req submitRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Payload) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, envelope{Status: "error", Message: "Übermittlung fehlgeschlagen."})
		return
	}

	names := make([]string, 0, len(req.Files))
	for _, f := range req.Files {
		names = append(names, f.Name)
	}
	claim := s.store.AcceptClaim(account.Email, names, s.clk.Now())
	s.logf("claim %s accepted for %s (%d files)", claim.AntragsNummer, account.Email, len(names))
	writeJSON(w, http.StatusOK, envelope{Status: "success", AntragsNummer: claim.AntragsNummer})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) logf(format string, args ...any) {
	if s.logp != nil {
		s.logp.Printf(format, args...)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Status: "error", Message: "Ungültige Anfrage."})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
