package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
	"github.com/Flapjack766/vetap-website-sub003/internal/service/ports"
)

// GateAuthService resolves kiosk access codes. Kiosk-mode scanners have no
// user login; a short typed code identifies the gate/event pair instead.
type GateAuthService struct {
	gates  ports.GateRepo
	events ports.EventRepo
}

func NewGateAuthService(gates ports.GateRepo, events ports.EventRepo) *GateAuthService {
	return &GateAuthService{
		gates:  gates,
		events: events,
	}
}

// VerifyCode maps an access code to its gate and event. An unknown code
// reports ErrGateCodeInvalid with no gate or event data attached.
func (s *GateAuthService) VerifyCode(ctx context.Context, code string) (*domain.Gate, *domain.Event, error) {
	if code == "" {
		return nil, nil, domain.ErrGateCodeInvalid
	}

	gate, err := s.gates.GetByAccessCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrGateNotFound) {
			return nil, nil, domain.ErrGateCodeInvalid
		}
		return nil, nil, fmt.Errorf("resolve gate code: %w", err)
	}

	event, err := s.events.GetByID(ctx, gate.EventID)
	if err != nil {
		return nil, nil, fmt.Errorf("load gate event: %w", err)
	}
	if !event.Active() {
		return nil, nil, domain.ErrEventInactive
	}

	return gate, event, nil
}
