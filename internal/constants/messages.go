package constants

// APIStatus is the coarse status carried in every JSON envelope.
type APIStatus string

const (
	APIStatusOk    APIStatus = "Ok"
	APIStatusError APIStatus = "Error"
)

// Boarding validation outcomes, word for word what the gate sees.
const (
	MsgTicketNotFound      = "This ticket does not exist"
	MsgTicketWrongFlight   = "This ticket doesn't match this flight"
	MsgTicketAlreadyBoard  = "Ticket has already been registered"
	MsgTicketRegistered    = "Ticket successfully registered"
)

// Booking validation messages.
const (
	MsgMissingNames      = "Input your First and Last name!"
	MsgPickSeat          = "Pick a seat!"
	MsgPickDistinctSeats = "Pick seats for each passenger!"
	MsgSeatTakenFmt      = "Sorry, but seat %d is already booked!"
	MsgFieldRequiredFmt  = "Field %s is required."
	MsgFieldForAllFmt    = "Input %s for all passengers."
)

// Logical mail subject names looked up in the email_subjects table,
// with the fallback used when no row exists.
const (
	MailSubjectRegistration = "registration"
	MailSubjectTicket       = "ticket"
	MailSubjectBill         = "bill"

	MailFallbackRegistration = "Registration"
	MailFallbackTicket       = "Ticket"
	MailFallbackBill         = "Bill"
)

// MailStream is the Redis stream carrying outbound mail.
const MailStream = "mail:outbound"

// MailConsumerGroup is the consumer group name for mail workers.
const MailConsumerGroup = "mail-workers"
