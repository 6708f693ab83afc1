package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/drk-digital/erstattungsportal/internal/adapters/httpgateway"
	"github.com/drk-digital/erstattungsportal/internal/adapters/memory/bankdir"
	"github.com/drk-digital/erstattungsportal/internal/adapters/nominatim"
	"github.com/drk-digital/erstattungsportal/internal/app/attachments"
	"github.com/drk-digital/erstattungsportal/internal/app/fields"
	"github.com/drk-digital/erstattungsportal/internal/app/workflow"
	"github.com/drk-digital/erstattungsportal/internal/domain"
	platformclock "github.com/drk-digital/erstattungsportal/internal/platform/clock"
	"github.com/drk-digital/erstattungsportal/internal/platform/config"
)

func main() {
	cfg, err := config.LoadPortalFromEnv()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	gw := httpgateway.New(cfg.APIBaseURL)
	gw.WarmUp(cfg.WarmupTimeout)

	banks, overridden := bankdir.Load(bankdir.Seed())
	if overridden > 0 {
		log.Printf("bank directory: %d routing codes overridden", overridden)
	}

	svc := workflow.NewService(gw, platformclock.NewSystemClock(), workflow.Timeouts{
		Default:  cfg.DefaultTimeout,
		Register: cfg.RegisterTimeout,
		Submit:   cfg.SubmitTimeout,
	})

	cli := &cli{
		in:   bufio.NewScanner(os.Stdin),
		svc:  svc,
		iban: fields.NewIBANField(banks),
	}
	cli.address = fields.NewAddressField(nominatim.New(cfg.AddressEndpoint), fields.LayoutCombined, cli.deliverSuggestions)
	defer cli.address.Close()

	cli.run()
}

type cli struct {
	in      *bufio.Scanner
	svc     *workflow.Service
	iban    *fields.IBANField
	address *fields.AddressField
	consent bool

	mu          sync.Mutex
	suggestions []domain.AddressSuggestion
}

func (c *cli) run() {
	ctx := context.Background()
	for {
		switch c.svc.State() {
		case workflow.StateLogin:
			c.loginStage(ctx)
		case workflow.StateVerification:
			c.verifyStage(ctx)
		case workflow.StateRegistration:
			c.registerStage()
		case workflow.StateConsent:
			c.consentStage(ctx)
		case workflow.StateEdit:
			if done := c.editStage(ctx); done {
				return
			}
		case workflow.StateConfirmed:
			return
		default:
			return
		}
	}
}

func (c *cli) loginStage(ctx context.Context) {
	fmt.Println("Anmeldung ('neu' für Registrierung)")
	email := c.prompt("E-Mail")
	if email == "neu" {
		report(c.svc.StartRegistration())
		return
	}
	password := c.prompt("Passwort")
	report(c.svc.Login(ctx, email, password))
}

func (c *cli) verifyStage(ctx context.Context) {
	input := fields.NewCodeInput()
	input.Paste(c.prompt("Bestätigungscode (6 Ziffern)"))
	if !input.Complete() {
		fmt.Println("Der Code ist unvollständig.")
		return
	}
	if err := c.svc.VerifyCode(ctx, input.Code()); err != nil {
		fmt.Println(err)
	}
}

func (c *cli) registerStage() {
	// After a consent round trip the previous values come back as defaults.
	prev := c.svc.RegistrationForm()
	var reg domain.PendingRegistration
	reg.Name = c.promptDefault("Name, Vorname", prev.Name)
	reg.Address = c.promptDefault("Straße und Hausnummer", prev.Address)
	reg.PostalCode = c.promptDefault("PLZ", prev.PostalCode)
	reg.City = c.promptDefault("Ort", prev.City)
	reg.SignatureName = c.promptDefault("Unterschrift (Name)", prev.SignatureName)
	reg.IBAN = c.promptDefault("IBAN", prev.IBAN)
	if update := c.iban.Input(reg.IBAN); update.Found {
		reg.Institute = update.Institute
		fmt.Printf("Kreditinstitut erkannt: %s\n", update.Institute)
	} else {
		reg.Institute = c.promptDefault("Kreditinstitut", prev.Institute)
	}
	reg.Recipient = c.promptDefault("Empfänger", prev.Recipient)
	reg.Activity = c.promptDefault("Tätigkeit", prev.Activity)
	reg.Email = c.promptDefault("E-Mail", prev.Email)
	reg.Password = c.prompt("Passwort")
	reg.PasswordConfirm = c.prompt("Passwort wiederholen")
	report(c.svc.SubmitRegistration(reg))
}

func (c *cli) consentStage(ctx context.Context) {
	answer := c.prompt("Datenschutzhinweis akzeptieren? (ja/nein)")
	if answer != "ja" {
		report(c.svc.CancelConsent())
		return
	}
	if err := c.svc.AcceptConsent(ctx); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(workflow.MsgRegistrationDone)
}

func (c *cli) editStage(ctx context.Context) bool {
	line := c.prompt("> ")
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "hilfe":
		fmt.Println("Befehle: anzeigen, setze <feld> <wert>, betrag <wert>, iban <wert>, adresse <suche>, wähle <nr>, datei <pfad>, dateien, entferne <nr>, zustimmung, senden, ende")
	case "anzeigen":
		c.printDraft()
	case "setze":
		field, value, _ := strings.Cut(rest, " ")
		c.setField(field, value)
	case "betrag":
		value, words := fields.AmountInput(rest)
		d := c.svc.Draft()
		d.AmountEUR, d.AmountInWords = value, words
		fmt.Printf("%s EUR, in Worten: %s\n", value, words)
	case "iban":
		c.applyIBAN(rest)
	case "adresse":
		c.address.Input(rest)
	case "wähle":
		c.pickSuggestion(rest)
	case "datei":
		c.attach(rest)
	case "dateien":
		for i, f := range c.svc.Attachments().Files() {
			fmt.Printf("%d: %s (%d Bytes)\n", i, attachments.DisplayName(f.Name), f.Size)
		}
	case "entferne":
		if i, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			c.svc.Attachments().Remove(i)
		}
	case "zustimmung":
		c.consent = !c.consent
		fmt.Printf("Zustimmung: %v\n", c.consent)
	case "senden":
		code, err := c.svc.Submit(ctx, c.consent)
		if err != nil {
			fmt.Println(err)
			return false
		}
		fmt.Printf("Antrag übermittelt. Referenzcode: %s\n", code)
		return true
	case "ende":
		return true
	default:
		fmt.Println("Unbekannter Befehl ('hilfe' für Übersicht).")
	}
	return false
}

func (c *cli) applyIBAN(raw string) {
	update := c.iban.Input(raw)
	d := c.svc.Draft()
	d.IBAN = update.IBAN
	if update.Found {
		d.Institute = update.Institute
		fmt.Printf("Kreditinstitut: %s\n", update.Institute)
	} else if update.PromptManual {
		fmt.Println(fields.ManualEntryPlaceholder)
	}
}

func (c *cli) setField(field, value string) {
	d := c.svc.Draft()
	switch field {
	case "name":
		d.Name = value
	case "strasse":
		d.Address = value
	case "plz":
		d.PostalArea = value
	case "von":
		d.From = value
	case "bis":
		d.To = value
	case "taetigkeit":
		d.Activity = value
	case "anzahl":
		d.Amount = value
	case "ort":
		d.Place = value
	case "unterschrift":
		d.SignatureName = value
	case "kreditinstitut":
		d.Institute = value
	case "empfaenger":
		d.Recipient = value
	case "verwendungszweck":
		d.PaymentReason = value
	case "bemerkung":
		d.Comment = value
	case "email":
		d.Email = value
	default:
		fmt.Println("Unbekanntes Feld.")
	}
}

func (c *cli) printDraft() {
	d := c.svc.Draft()
	fmt.Printf("Name: %s\nStraße: %s\nPLZ/Ort: %s\nZeitraum: %s - %s\nTätigkeit: %s\nOrt: %s\nDatum: %s\nIBAN: %s\nKreditinstitut: %s\nEmpfänger: %s\nBetrag: %s EUR (%s)\nE-Mail: %s\n",
		d.Name, d.Address, d.PostalArea, d.From, d.To, d.Activity, d.Place, d.Date,
		d.IBAN, d.Institute, d.Recipient, d.AmountEUR, d.AmountInWords, d.Email)
}

func (c *cli) attach(path string) {
	path = strings.TrimSpace(path)
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Datei nicht lesbar: %v\n", err)
		return
	}
	mediaType := mime.TypeByExtension(filepath.Ext(path))
	file := attachments.File{
		Name:      filepath.Base(path),
		MediaType: mediaType,
		Size:      info.Size(),
		Open:      func() (io.ReadCloser, error) { return os.Open(path) },
	}
	if err := c.svc.Attachments().Add(file); err != nil {
		fmt.Println(err)
	}
}

func (c *cli) deliverSuggestions(sug []domain.AddressSuggestion) {
	c.mu.Lock()
	c.suggestions = sug
	c.mu.Unlock()
	for i, s := range sug {
		fmt.Printf("%d: %s, %s %s\n", i, s.StreetLine(), s.PostalCode, s.City)
	}
}

func (c *cli) pickSuggestion(rest string) {
	i, err := strconv.Atoi(strings.TrimSpace(rest))
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil || i < 0 || i >= len(c.suggestions) {
		fmt.Println("Keine solche Adresse.")
		return
	}
	sel := c.address.Select(c.suggestions[i])
	d := c.svc.Draft()
	d.Address = sel.StreetLine
	d.PostalArea = sel.PostalArea
}

// promptDefault offers def as the answer for an empty input line.
func (c *cli) promptDefault(label, def string) string {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	if v := c.prompt(label); v != "" {
		return v
	}
	return def
}

func (c *cli) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !c.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(c.in.Text())
}

func report(err error) {
	if err != nil {
		fmt.Println(err)
	}
}
