package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Comment is one entry in a ticket's discussion thread. Comments are
// append-only and are removed only when their ticket is deleted.
type Comment struct {
	id         uint
	ticketID   uint
	authorName string
	text       string
	createdAt  time.Time
}

func NewComment(ticketID uint, authorName, text string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(strings.TrimSpace(authorName)) == 0 {
		return nil, fmt.Errorf("author name is required")
	}
	if len(strings.TrimSpace(text)) == 0 {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if len(text) > 5000 {
		return nil, fmt.Errorf("text exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketID:   ticketID,
		authorName: authorName,
		text:       text,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructComment(id, ticketID uint, authorName, text string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorName: authorName,
		text:       text,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
