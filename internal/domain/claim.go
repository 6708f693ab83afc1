package domain

// Session is the authenticated identity for the page session. The token is an
// opaque bearer credential received from the backend and never parsed.
//
// Invariant: Token is non-empty only after a successful verification; it is
// never persisted and dies with the process.
type Session struct {
	Email string
	Token string
}

// Authenticated reports whether the session holds a usable credential.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// PendingRegistration is a registration request staged between the
// registration form submit and the consent-accept action. At most one is
// pending at a time.
type PendingRegistration struct {
	Name            string
	Address         string
	PostalCode      string
	City            string
	SignatureName   string
	IBAN            string
	Institute       string
	Recipient       string
	Activity        string
	Email           string
	Password        string
	PasswordConfirm string
}

// ClaimDraft is the editable reimbursement form. Lifetime is the page session;
// there is no persistence.
type ClaimDraft struct {
	Name          string
	Address       string
	PostalArea    string // combined "PLZ Ort" field on the claim form
	From          string
	To            string
	Activity      string
	Amount        string
	Place         string
	Date          string
	SignatureName string
	IBAN          string
	Institute     string
	Recipient     string
	PaymentReason string
	AmountEUR     string
	AmountInWords string
	Comment       string
	Email         string
}

// AddressSuggestion is one candidate returned by the address-suggestion
// service. Any field may be empty.
type AddressSuggestion struct {
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
}

// StreetLine composes the street and house number the way the form's address
// field expects them.
func (a AddressSuggestion) StreetLine() string {
	if a.HouseNumber == "" {
		return a.Street
	}
	return a.Street + " " + a.HouseNumber
}
