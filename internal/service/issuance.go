package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
	"github.com/Flapjack766/vetap-website-sub003/internal/service/ports"
	"github.com/Flapjack766/vetap-website-sub003/internal/token"
)

const defaultTokenRetries = 5

// IssuanceService creates passes with globally unique tokens and mints
// gate access codes. Uniqueness is owned by the store constraint; the
// retry loop here is bounded, and an insert-time constraint violation
// consumes a retry the same way a lookup hit does.
type IssuanceService struct {
	passes     ports.PassRepo
	events     ports.EventRepo
	gates      ports.GateRepo
	notifier   ports.WebhookNotifier
	maxRetries int
	logger     logger.Logger
}

func NewIssuanceService(
	passes ports.PassRepo,
	events ports.EventRepo,
	gates ports.GateRepo,
	notifier ports.WebhookNotifier,
	logger logger.Logger,
) *IssuanceService {
	return &IssuanceService{
		passes:     passes,
		events:     events,
		gates:      gates,
		notifier:   notifier,
		maxRetries: defaultTokenRetries,
		logger:     logger,
	}
}

func (s *IssuanceService) IssuePass(ctx context.Context, input domain.IssuePassInput) (*domain.Pass, error) {
	if input.EventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", domain.ErrValidation)
	}
	if input.GuestID == "" {
		return nil, fmt.Errorf("%w: guest_id is required", domain.ErrValidation)
	}
	if input.MaxUses < 0 {
		return nil, fmt.Errorf("%w: max_uses must not be negative", domain.ErrValidation)
	}
	if input.ValidFrom != nil && input.ValidTo != nil && input.ValidTo.Before(*input.ValidFrom) {
		return nil, fmt.Errorf("%w: valid_to precedes valid_from", domain.ErrValidation)
	}

	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.Status == domain.EventStatusEnded {
		return nil, fmt.Errorf("%w: event has ended", domain.ErrValidation)
	}

	maxUses := input.MaxUses
	if maxUses == 0 {
		maxUses = 1
	}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		tok, err := token.Generate(token.DefaultLength, token.EncodingHex)
		if err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}

		exists, err := s.passes.TokenExists(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("check token: %w", err)
		}
		if exists {
			s.logger.Warn("pass token collision",
				logger.String("event_id", input.EventID),
				logger.Int("attempt", attempt),
			)
			continue
		}

		pass := &domain.Pass{
			ID:        uuid.NewString(),
			EventID:   input.EventID,
			GuestID:   input.GuestID,
			Token:     tok,
			Status:    domain.PassStatusUnused,
			MaxUses:   maxUses,
			ValidFrom: input.ValidFrom,
			ValidTo:   input.ValidTo,
		}

		err = s.passes.Create(ctx, pass)
		if errors.Is(err, domain.ErrDuplicateToken) {
			// Lost a check-then-insert race; the constraint caught it.
			s.logger.Warn("pass token collision on insert",
				logger.String("event_id", input.EventID),
				logger.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create pass: %w", err)
		}

		s.logger.Info("pass issued",
			logger.String("pass_id", pass.ID),
			logger.String("event_id", pass.EventID),
			logger.String("guest_id", pass.GuestID),
		)

		go s.notifier.NotifyPassGenerated(context.WithoutCancel(ctx), pass)

		return pass, nil
	}

	return nil, domain.ErrTokenExhausted
}

// GenerateGateAccessCode mints a short code not yet used within the event.
// The gate row itself is created by event setup, outside this engine.
func (s *IssuanceService) GenerateGateAccessCode(ctx context.Context, eventID string) (string, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return "", fmt.Errorf("check event: %w", err)
	}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		code, err := token.GenerateGateCode()
		if err != nil {
			return "", fmt.Errorf("generate gate code: %w", err)
		}

		exists, err := s.gates.CodeExists(ctx, eventID, code)
		if err != nil {
			return "", fmt.Errorf("check gate code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", domain.ErrTokenExhausted
}
