package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "hilla/internal/domain/ticket/valueobjects"
)

// Ticket is a single support or complaint submission tracked through
// its lifecycle. Anonymization is enforced at construction: an
// anonymous ticket never stores the submitter's name or email.
type Ticket struct {
	id          uint
	userID      *uint
	category    *Category
	ticketType  vo.TicketType
	priority    vo.Priority
	status      vo.TicketStatus
	name        string
	email       string
	subject     string
	message     string
	answer      string
	isAnswered  bool
	isAnonymous bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicketInput carries the submission fields for a new ticket.
type NewTicketInput struct {
	UserID      *uint
	Category    *Category
	Type        vo.TicketType
	Priority    vo.Priority
	Name        string
	Email       string
	Subject     string
	Message     string
	IsAnonymous bool
}

func NewTicket(in NewTicketInput) (*Ticket, error) {
	if in.Category == nil || in.Category.ID() == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if !in.Type.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !in.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(strings.TrimSpace(in.Subject)) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(in.Subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(strings.TrimSpace(in.Message)) == 0 {
		return nil, fmt.Errorf("message is required")
	}

	name := in.Name
	email := in.Email
	if in.IsAnonymous {
		// Cleared regardless of input so identifying data never rests
		// in storage for an anonymous submission.
		name = ""
		email = ""
	} else if in.UserID == nil {
		// Attributed submissions need contact details unless an
		// authenticated identity can backfill them.
		if len(strings.TrimSpace(name)) == 0 {
			return nil, fmt.Errorf("name is required")
		}
		if len(strings.TrimSpace(email)) == 0 {
			return nil, fmt.Errorf("email is required")
		}
	}

	now := time.Now()
	return &Ticket{
		userID:      in.UserID,
		category:    in.Category,
		ticketType:  in.Type,
		priority:    in.Priority,
		status:      vo.StatusOpen,
		name:        name,
		email:       email,
		subject:     in.Subject,
		message:     in.Message,
		isAnonymous: in.IsAnonymous,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	userID *uint,
	category *Category,
	ticketType vo.TicketType,
	priority vo.Priority,
	status vo.TicketStatus,
	name string,
	email string,
	subject string,
	message string,
	answer string,
	isAnswered bool,
	isAnonymous bool,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if category == nil {
		return nil, fmt.Errorf("category is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:          id,
		userID:      userID,
		category:    category,
		ticketType:  ticketType,
		priority:    priority,
		status:      status,
		name:        name,
		email:       email,
		subject:     subject,
		message:     message,
		answer:      answer,
		isAnswered:  isAnswered,
		isAnonymous: isAnonymous,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UserID() *uint {
	return t.userID
}

func (t *Ticket) Category() *Category {
	return t.category
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Name() string {
	return t.name
}

func (t *Ticket) Email() string {
	return t.email
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Message() string {
	return t.message
}

func (t *Ticket) Answer() string {
	return t.answer
}

func (t *Ticket) IsAnswered() bool {
	return t.isAnswered
}

func (t *Ticket) IsAnonymous() bool {
	return t.isAnonymous
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to newStatus. Membership in the status
// enum is the only restriction; closed tickets may reopen.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// SetAnswer records the staff response. A non-empty answer marks the
// ticket answered; clearing it reverts the flag.
func (t *Ticket) SetAnswer(answer string) {
	t.answer = answer
	t.isAnswered = len(strings.TrimSpace(answer)) > 0
	t.updatedAt = time.Now()
}

// UpdateInput carries optional field updates for PUT/PATCH. Nil fields
// are left untouched.
type UpdateInput struct {
	Category *Category
	Type     *vo.TicketType
	Priority *vo.Priority
	Subject  *string
	Message  *string
	Answer   *string
}

func (t *Ticket) Update(in UpdateInput) error {
	if in.Category != nil {
		if in.Category.ID() == 0 {
			return fmt.Errorf("category is required")
		}
		t.category = in.Category
	}
	if in.Type != nil {
		if !in.Type.IsValid() {
			return fmt.Errorf("invalid ticket type")
		}
		t.ticketType = *in.Type
	}
	if in.Priority != nil {
		if !in.Priority.IsValid() {
			return fmt.Errorf("invalid priority")
		}
		t.priority = *in.Priority
	}
	if in.Subject != nil {
		if len(strings.TrimSpace(*in.Subject)) == 0 {
			return fmt.Errorf("subject is required")
		}
		if len(*in.Subject) > 200 {
			return fmt.Errorf("subject exceeds maximum length of 200 characters")
		}
		t.subject = *in.Subject
	}
	if in.Message != nil {
		if len(strings.TrimSpace(*in.Message)) == 0 {
			return fmt.Errorf("message is required")
		}
		t.message = *in.Message
	}
	if in.Answer != nil {
		t.SetAnswer(*in.Answer)
		return nil
	}

	t.updatedAt = time.Now()
	return nil
}
