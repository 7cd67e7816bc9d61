package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	texttemplate "text/template"

	"golang.org/x/text/message"

	"obleafusion/internal/application/notification/dto"
	"obleafusion/internal/infrastructure/email"
	"obleafusion/internal/infrastructure/i18n"
	"obleafusion/internal/shared/biztime"
	"obleafusion/internal/shared/config"
	"obleafusion/internal/shared/logger"
	"obleafusion/internal/shared/services/markdown"
)

const (
	KindBooking = "booking"
	KindContact = "contact"
)

const (
	defaultBrandName = "ObleaFusion"
	defaultOwnerName = "Equipo ObleaFusion"
	currencyMarker   = "$"
)

// plainAmount matches budgets that are reformatted; anything else is shown
// as written. Integer parts longer than 15 digits lose precision as float64.
var plainAmount = regexp.MustCompile(`^[0-9]{1,15}(\.[0-9]+)?$`)

//go:embed templates/*.tmpl
var templateFS embed.FS

type rowField struct {
	Label string
	Value string
}

var templateFuncs = template.FuncMap{
	"field": func(label, value any) rowField {
		return rowField{Label: fmt.Sprint(label), Value: fmt.Sprint(value)}
	},
}

var (
	htmlTemplates = template.Must(template.New("notification").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html.tmpl"))
	textTemplates = texttemplate.Must(texttemplate.New("notification").ParseFS(templateFS, "templates/*.txt.tmpl"))
)

// RenderContext maps template variable names to display-ready values.
// A context is built per request and not modified afterwards.
type RenderContext map[string]any

// Composer builds localized notification contexts and renders them into
// email messages.
type Composer struct {
	email    config.EmailConfig
	brand    config.BrandConfig
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewComposer(
	emailCfg config.EmailConfig,
	brand config.BrandConfig,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *Composer {
	if brand.Name == "" {
		brand.Name = defaultBrandName
	}
	if brand.OwnerName == "" {
		brand.OwnerName = defaultOwnerName
	}
	return &Composer{
		email:    emailCfg,
		brand:    brand,
		markdown: markdownService,
		logger:   logger,
	}
}

// BookingContext assembles the render context of a booking notification.
// Resolution failures degrade to raw values; the result is always complete.
func (c *Composer) BookingContext(req *dto.BookingRequest) RenderContext {
	if req == nil {
		req = &dto.BookingRequest{}
	}
	lang := i18n.ParseLang(req.Language)
	table := i18n.TableFor(lang)

	date := c.safe("date", req.Date, func() string { return FormatDate(req.Date, lang, c.logger) })
	eventType := c.safe("eventType", req.EventType, func() string { return ResolveEventType(req, table) })
	serviceType := c.safe("serviceType", req.ServiceType, func() string { return ResolveServiceType(req, table) })
	referral := c.safe("referralSource", "", func() string { return ResolveReferralSource(req.ReferralSource, table) })

	guests := strings.TrimSpace(req.Guests)
	budget := c.safe("budget", "", func() string { return formatBudget(req.Budget, lang) })
	comments := strings.TrimSpace(req.Comments)

	location, locationLabel, locationLines := c.location(req, table)

	desserts := make([]string, 0, len(req.Desserts))
	for _, d := range req.Desserts {
		if d = strings.TrimSpace(d); d != "" {
			desserts = append(desserts, d)
		}
	}

	rc := c.baseContext(lang, table, req.Name, req.Email, req.Phone)
	rc["subject"] = table.Subject
	rc["eventType"] = eventType
	rc["date"] = date
	rc["time"] = req.Time
	rc["duration"] = req.Duration
	rc["hoursUnit"] = table.Hours
	rc["guests"] = guests
	rc["showGuests"] = guests != ""
	rc["serviceType"] = serviceType
	rc["desserts"] = desserts
	rc["budget"] = budget
	rc["showBudget"] = budget != ""
	rc["location"] = location
	rc["locationLabel"] = locationLabel
	rc["locationLines"] = locationLines
	rc["comments"] = c.renderMarkdown(comments)
	rc["commentsText"] = comments
	rc["showComments"] = comments != ""
	rc["referralSource"] = referral
	rc["showReferral"] = referral != ""
	rc["showAdditional"] = comments != "" || referral != ""
	rc["cta"] = table.ContactClient
	rc["replyLink"] = replyLink(req.Email, fmt.Sprintf("Re: %s %s", table.ReplySubject, date))
	return rc
}

// ContactContext assembles the render context of a contact notification.
func (c *Composer) ContactContext(req *dto.ContactRequest) RenderContext {
	if req == nil {
		req = &dto.ContactRequest{}
	}
	lang := i18n.ParseLang(req.Language)
	table := i18n.TableFor(lang)

	referral := c.safe("referralSource", "", func() string { return ResolveReferralSource(req.ReferralSource, table) })
	msg := strings.TrimSpace(req.Message)

	rc := c.baseContext(lang, table, req.Name, req.Email, req.Phone)
	rc["subject"] = table.Contact.Subject
	rc["copy"] = table.Contact
	rc["greeting"] = table.Greeting
	rc["referralSource"] = referral
	rc["showReferral"] = referral != ""
	rc["message"] = c.renderMarkdown(msg)
	rc["messageText"] = msg
	rc["showMessage"] = msg != ""
	rc["persuasion"] = table.Contact.Persuasion
	rc["cta"] = table.Contact.ContactClient
	rc["replyLink"] = replyLink(req.Email, "Re: "+table.Contact.ReplySubject)
	return rc
}

// ComposeBooking renders the booking notification addressed to the booking inbox.
func (c *Composer) ComposeBooking(req *dto.BookingRequest) (*email.Message, error) {
	if req == nil {
		return nil, fmt.Errorf("compose %s: nil request", KindBooking)
	}
	return c.render(KindBooking, c.BookingContext(req), c.email.BookingTo, req.Email)
}

// ComposeContact renders the contact notification addressed to the contact inbox.
func (c *Composer) ComposeContact(req *dto.ContactRequest) (*email.Message, error) {
	if req == nil {
		return nil, fmt.Errorf("compose %s: nil request", KindContact)
	}
	return c.render(KindContact, c.ContactContext(req), c.email.ContactRecipient(), req.Email)
}

func (c *Composer) render(kind string, rc RenderContext, to, replyTo string) (*email.Message, error) {
	var htmlBody, textBody bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&htmlBody, kind+".html.tmpl", rc); err != nil {
		return nil, fmt.Errorf("failed to render %s html body: %w", kind, err)
	}
	if err := textTemplates.ExecuteTemplate(&textBody, kind+".txt.tmpl", rc); err != nil {
		return nil, fmt.Errorf("failed to render %s text body: %w", kind, err)
	}

	subject, _ := rc["subject"].(string)
	return &email.Message{
		Kind:     kind,
		To:       to,
		ReplyTo:  replyTo,
		Subject:  subject,
		HTMLBody: htmlBody.String(),
		TextBody: textBody.String(),
	}, nil
}

func (c *Composer) baseContext(lang i18n.Lang, table *i18n.Table, name, emailAddr, phone string) RenderContext {
	return RenderContext{
		"lang":      lang,
		"labels":    table,
		"ownerName": c.brand.OwnerName,
		"brandName": c.brand.Name,
		"logoURL":   c.brand.LogoURL,
		"year":      biztime.CurrentYear(),
		"name":      name,
		"email":     emailAddr,
		"phone":     phone,
	}
}

// location picks the structured address when any part is present, otherwise
// the flat location string.
func (c *Composer) location(req *dto.BookingRequest, table *i18n.Table) (string, string, []string) {
	if lines := req.Address.Lines(); len(lines) > 0 {
		return strings.Join(lines, ", "), table.Address, lines
	}
	flat := strings.TrimSpace(req.Location)
	if flat == "" {
		return "", table.Location, nil
	}
	return flat, table.Location, []string{flat}
}

func (c *Composer) renderMarkdown(text string) (out template.HTML) {
	if text == "" {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorw("markdown rendering failed, using escaped text", "panic", fmt.Sprintf("%v", r))
			out = template.HTML(template.HTMLEscapeString(text))
		}
	}()
	if c.markdown != nil {
		rendered, err := c.markdown.ToHTMLSanitized(text)
		if err == nil {
			return template.HTML(rendered)
		}
		c.logger.Warnw("failed to render markdown, using escaped text", "error", err)
	}
	return template.HTML(template.HTMLEscapeString(text))
}

// safe runs a resolver and substitutes fallback if it panics.
func (c *Composer) safe(field, fallback string, fn func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorw("field resolution failed, using fallback",
				"field", field,
				"panic", fmt.Sprintf("%v", r),
			)
			out = fallback
		}
	}()
	return fn()
}

// formatBudget prefixes the currency marker and groups digits for the
// language when the budget is a plain decimal amount.
func formatBudget(raw string, lang i18n.Lang) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, currencyMarker))
	if s == "" {
		return ""
	}
	if !plainAmount.MatchString(s) {
		return currencyMarker + s
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return currencyMarker + s
	}

	p := message.NewPrinter(lang.Tag())
	if !strings.Contains(s, ".") {
		return currencyMarker + p.Sprintf("%d", int64(f))
	}
	return currencyMarker + p.Sprintf("%.2f", f)
}

func replyLink(to, subject string) string {
	u := url.URL{
		Scheme:   "mailto",
		Opaque:   url.PathEscape(to),
		RawQuery: "subject=" + url.PathEscape(subject),
	}
	return u.String()
}
