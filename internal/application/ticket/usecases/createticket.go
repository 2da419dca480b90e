package usecases

import (
	"context"
	"strings"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	vo "hilla/internal/domain/ticket/valueobjects"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID       *uint
	CategorySlug string
	Type         string
	Priority     string
	Name         string
	Email        string
	Subject      string
	Message      string
	IsAnonymous  bool
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo ticket.CategoryRepository
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo ticket.CategoryRepository,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		logger:       log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"subject", cmd.Subject,
		"anonymous", cmd.IsAnonymous)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	category, err := uc.categoryRepo.GetBySlug(ctx, cmd.CategorySlug)
	if err != nil {
		return nil, errors.NewValidationError("category does not exist", cmd.CategorySlug)
	}

	newTicket, err := ticket.NewTicket(ticket.NewTicketInput{
		UserID:      cmd.UserID,
		Category:    category,
		Type:        vo.TicketType(cmd.Type),
		Priority:    priorityOrDefault(cmd.Priority),
		Name:        cmd.Name,
		Email:       cmd.Email,
		Subject:     cmd.Subject,
		Message:     cmd.Message,
		IsAnonymous: cmd.IsAnonymous,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID())

	result := dto.FromTicket(newTicket, nil)
	return &result, nil
}

// validateCommand reports the first failing field, matching the
// field-level messages the form surface shows.
func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if strings.TrimSpace(cmd.CategorySlug) == "" {
		return errors.NewValidationError("category is required")
	}
	if !vo.TicketType(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid ticket type: " + cmd.Type)
	}
	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority: " + cmd.Priority)
	}
	if !cmd.IsAnonymous && cmd.UserID == nil {
		if strings.TrimSpace(cmd.Name) == "" {
			return errors.NewValidationError("name is required")
		}
		if strings.TrimSpace(cmd.Email) == "" {
			return errors.NewValidationError("email is required")
		}
	}
	if strings.TrimSpace(cmd.Subject) == "" {
		return errors.NewValidationError("subject is required")
	}
	if strings.TrimSpace(cmd.Message) == "" {
		return errors.NewValidationError("message is required")
	}
	return nil
}

func priorityOrDefault(s string) vo.Priority {
	if s == "" {
		return vo.PriorityMedium
	}
	return vo.Priority(s)
}
