package services

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/metrics"
)

// MailEnqueuer is the slice of MailQueueService the mail service needs.
type MailEnqueuer interface {
	Enqueue(ctx context.Context, streamName string, item *common.MailQueueItem) error
}

// SubjectSource resolves logical subject names; ("", nil) means use the
// fallback text.
type SubjectSource interface {
	SubjectFor(ctx context.Context, name string) (string, error)
}

// TicketLinkSigner issues the signed manage-booking links embedded in
// ticket mail.
type TicketLinkSigner interface {
	GenerateTicketToken(ticketID uint, email string, ttl time.Duration) (string, error)
}

const registrationMailTemplate = `Welcome aboard!

An account was created for you while booking your flight.

  Login:    {{.Email}}
  Password: {{.Password}}

You can sign in at {{.DomainURL}}/auth/login and change your password
from the cabinet.
`

const ticketMailTemplate = `Your ticket is confirmed.

  Flight:    #{{.FlightNumber}} {{.StartLocation}} -> {{.EndLocation}}
  Departure: {{.StartDate}} {{.StartTime}}
  Passenger: {{.FirstName}} {{.LastName}}
  Seat:      {{.SeatNumber}}
  Ticket:    {{.TicketNumber}}

Manage your booking: {{.ManageURL}}
`

const billMailTemplate = `Payment summary for your booking.

  Flight price:  {{printf "%.2f" .FlightPrice}}
  Options price: {{printf "%.2f" .OptionsPrice}}
  Total:         {{printf "%.2f" .Total}}
`

var (
	registrationTmpl = template.Must(template.New("registration").Parse(registrationMailTemplate))
	ticketTmpl       = template.Must(template.New("ticket").Parse(ticketMailTemplate))
	billTmpl         = template.Must(template.New("bill").Parse(billMailTemplate))
)

// TicketMailData is everything the confirmation template renders.
type TicketMailData struct {
	FlightNumber  uint
	StartLocation string
	EndLocation   string
	StartDate     string
	StartTime     string
	FirstName     string
	LastName      string
	SeatNumber    int
	TicketNumber  uint
	ManageURL     string
}

// BillMailData is the per-passenger bill breakdown.
type BillMailData struct {
	FlightPrice  float64
	OptionsPrice float64
	Total        float64
}

// MailService renders notification bodies and hands them to the
// outbound queue. Enqueue failures are logged and swallowed: mail is
// best-effort and must never fail a booking.
type MailService struct {
	queue      MailEnqueuer
	subjects   SubjectSource
	signer     TicketLinkSigner
	cache      common.CacheInterface
	metricsReg *metrics.MetricsRegistry
	domainURL  string
}

// NewMailService creates a new mail service
func NewMailService(
	queue MailEnqueuer,
	subjects SubjectSource,
	signer TicketLinkSigner,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
	domainURL string,
) *MailService {
	return &MailService{
		queue:      queue,
		subjects:   subjects,
		signer:     signer,
		cache:      cache,
		metricsReg: metricsReg,
		domainURL:  domainURL,
	}
}

// subjectFor resolves the display subject for a logical mail name,
// caching hits so the lookup table is not hammered per passenger.
func (s *MailService) subjectFor(ctx context.Context, name, fallback string) string {
	val, err := s.cache.GetOrSet("mail_subject:"+name, 10*time.Minute, func() (any, error) {
		return s.subjects.SubjectFor(ctx, name)
	})
	if err != nil {
		logging.Warn("Mail subject lookup failed", "name", name, "error", err.Error())
		return fallback
	}

	subject, _ := val.(string)
	if subject == "" {
		return fallback
	}
	return subject
}

// enqueue pushes one rendered message, recording the outcome.
func (s *MailService) enqueue(ctx context.Context, kind, recipient, subject, body string) {
	item := &common.MailQueueItem{
		Kind:      kind,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}

	if err := s.queue.Enqueue(ctx, constants.MailStream, item); err != nil {
		logging.Error("Failed to enqueue mail", "kind", kind, "recipient", recipient, "error", err.Error())
		return
	}

	if s.metricsReg != nil {
		s.metricsReg.MailEnqueuedTotal.WithLabelValues(kind).Inc()
	}
}

// SendRegistrationMail mails freshly generated credentials to an
// auto-created account.
func (s *MailService) SendRegistrationMail(ctx context.Context, email, password string) {
	var body bytes.Buffer
	err := registrationTmpl.Execute(&body, map[string]string{
		"Email":     email,
		"Password":  password,
		"DomainURL": s.domainURL,
	})
	if err != nil {
		logging.Error("Failed to render registration mail", "error", err.Error())
		return
	}

	subject := s.subjectFor(ctx, constants.MailSubjectRegistration, constants.MailFallbackRegistration)
	s.enqueue(ctx, constants.MailSubjectRegistration, email, subject, body.String())
}

// SendTicketMail mails the ticket confirmation with a signed
// manage-booking link.
func (s *MailService) SendTicketMail(ctx context.Context, email string, data TicketMailData) {
	token, err := s.signer.GenerateTicketToken(data.TicketNumber, email, 30*24*time.Hour)
	if err != nil {
		logging.Warn("Failed to sign ticket link, sending without it", "ticket", data.TicketNumber, "error", err.Error())
	} else {
		data.ManageURL = fmt.Sprintf("%s/auth/ticket?token=%s", s.domainURL, token)
	}

	var body bytes.Buffer
	if err := ticketTmpl.Execute(&body, data); err != nil {
		logging.Error("Failed to render ticket mail", "error", err.Error())
		return
	}

	subject := s.subjectFor(ctx, constants.MailSubjectTicket, constants.MailFallbackTicket)
	s.enqueue(ctx, constants.MailSubjectTicket, email, subject, body.String())
}

// SendBillMail mails the per-passenger payment breakdown.
func (s *MailService) SendBillMail(ctx context.Context, email string, data BillMailData) {
	var body bytes.Buffer
	if err := billTmpl.Execute(&body, data); err != nil {
		logging.Error("Failed to render bill mail", "error", err.Error())
		return
	}

	subject := s.subjectFor(ctx, constants.MailSubjectBill, constants.MailFallbackBill)
	s.enqueue(ctx, constants.MailSubjectBill, email, subject, body.String())
}
