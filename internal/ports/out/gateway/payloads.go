package gateway

import (
	"github.com/oapi-codegen/nullable"

	"github.com/drk-digital/erstattungsportal/internal/domain"
)

// LoginRequest is the body of the unauthenticated login action.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest is the body of the one-time-code verification action.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// RegistrationPayload is the body of the register action. Field names follow
// the backend's German form vocabulary.
type RegistrationPayload struct {
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

// NewRegistrationPayload maps a staged registration onto the wire form.
func NewRegistrationPayload(p domain.PendingRegistration) RegistrationPayload {
	return RegistrationPayload{
		Name:         p.Name,
		Adresse:      p.Address,
		PLZ:          p.PostalCode,
		Ort:          p.City,
		Unterschrift: p.SignatureName,
		IBAN:         p.IBAN,
		Institut:     p.Institute,
		Empfanger:    p.Recipient,
		Taetigkeit:   p.Activity,
		Email:        p.Email,
		Pass:         p.Password,
		Pass2:        p.PasswordConfirm,
	}
}

// ClaimPayload is the claim portion of the submit action body.
type ClaimPayload struct {
	NameVorname       string `json:"name_vorname"`
	StrasseHausnummer string `json:"strasse_hausnummer"`
	PLZOrt            string `json:"plz_ort"`
	Vom               string `json:"vom"`
	Bis               string `json:"bis"`
	Taetigkeit        string `json:"taetigkeit"`
	Betrag            string `json:"betrag"`
	Ort               string `json:"ort"`
	Datum             string `json:"datum"`
	Unterschrift      string `json:"unterschrift"`
	IBAN              string `json:"iban"`
	Kreditinstitut    string `json:"kreditinstitut"`
	Empfaenger        string `json:"empfaenger"`
	Zahlungsgrund     string `json:"zahlungsgrund"`
	BetragInEUR       string `json:"betrag_in_eur"`
	BetragInWorten    string `json:"betrag_in_worten"`
	Kommentar         string `json:"kommentar"`
}

// NewClaimPayload maps the editable draft onto the wire form. The draft's
// email is deliberately absent: the backend derives the account from the
// bearer token.
func NewClaimPayload(d domain.ClaimDraft) ClaimPayload {
	return ClaimPayload{
		NameVorname:       d.Name,
		StrasseHausnummer: d.Address,
		PLZOrt:            d.PostalArea,
		Vom:               d.From,
		Bis:               d.To,
		Taetigkeit:        d.Activity,
		Betrag:            d.Amount,
		Ort:               d.Place,
		Datum:             d.Date,
		Unterschrift:      d.SignatureName,
		IBAN:              d.IBAN,
		Kreditinstitut:    d.Institute,
		Empfaenger:        d.Recipient,
		Zahlungsgrund:     d.PaymentReason,
		BetragInEUR:       d.AmountEUR,
		BetragInWorten:    d.AmountInWords,
		Kommentar:         d.Comment,
	}
}

// FilePayload is one encoded attachment inside the submit action body.
type FilePayload struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Size       int64  `json:"size"`
	DataBase64 string `json:"dataBase64"`
}

// SubmitRequest is the body of the submit action.
type SubmitRequest struct {
	Payload ClaimPayload  `json:"payload"`
	Files   []FilePayload `json:"files"`
}

// UserProfile is the prefill data embedded in verify and get-user responses.
// Every field is optional: prefill applies only the fields that are present
// and non-null, leaving the rest of the draft untouched.
type UserProfile struct {
	NameVorname       nullable.Nullable[string] `json:"name_vorname,omitempty"`
	StrasseHausnummer nullable.Nullable[string] `json:"strasse_hausnummer,omitempty"`
	PLZ               nullable.Nullable[string] `json:"plz,omitempty"`
	Unterschrift      nullable.Nullable[string] `json:"unterschrift,omitempty"`
	IBAN              nullable.Nullable[string] `json:"iban,omitempty"`
	Kreditinstitut    nullable.Nullable[string] `json:"kreditinstitut,omitempty"`
	Empfaenger        nullable.Nullable[string] `json:"empfaenger,omitempty"`
	Taetigkeit        nullable.Nullable[string] `json:"taetigkeit,omitempty"`
}

// Apply copies the profile's present, non-null fields into the draft.
func (u UserProfile) Apply(d *domain.ClaimDraft) {
	applyNullable(u.NameVorname, &d.Name)
	applyNullable(u.StrasseHausnummer, &d.Address)
	applyNullable(u.PLZ, &d.PostalArea)
	applyNullable(u.Unterschrift, &d.SignatureName)
	applyNullable(u.IBAN, &d.IBAN)
	applyNullable(u.Kreditinstitut, &d.Institute)
	applyNullable(u.Empfaenger, &d.Recipient)
	applyNullable(u.Taetigkeit, &d.Activity)
}

func applyNullable(src nullable.Nullable[string], dst *string) {
	if v, err := src.Get(); err == nil {
		*dst = v
	}
}
