package valueobjects

import "fmt"

type TicketType string

const (
	TypeQuestion  TicketType = "question"
	TypeComplaint TicketType = "complaint"
)

var validTicketTypes = map[TicketType]bool{
	TypeQuestion:  true,
	TypeComplaint: true,
}

func (tt TicketType) String() string {
	return string(tt)
}

func (tt TicketType) IsValid() bool {
	return validTicketTypes[tt]
}

func NewTicketType(s string) (TicketType, error) {
	tt := TicketType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}
