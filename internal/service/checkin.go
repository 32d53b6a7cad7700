package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
	"github.com/Flapjack766/vetap-website-sub003/internal/qr"
	"github.com/Flapjack766/vetap-website-sub003/internal/service/ports"
)

// CheckInService is the gate check-in state machine. One call classifies a
// raw QR payload against a pass and performs at most one atomic admission;
// the store's conditional write is the only concurrency control, so the
// at-most-max_uses guarantee holds across processes.
type CheckInService struct {
	passes   ports.PassRepo
	gates    ports.GateRepo
	scanLogs ports.ScanLogRepo
	codec    *qr.Codec
	notifier ports.WebhookNotifier
	logger   logger.Logger
}

func NewCheckInService(
	passes ports.PassRepo,
	gates ports.GateRepo,
	scanLogs ports.ScanLogRepo,
	codec *qr.Codec,
	notifier ports.WebhookNotifier,
	logger logger.Logger,
) *CheckInService {
	return &CheckInService{
		passes:   passes,
		gates:    gates,
		scanLogs: scanLogs,
		codec:    codec,
		notifier: notifier,
		logger:   logger,
	}
}

// CheckIn runs one scan attempt. Every classification is recorded in the
// scan log and fanned out to partner webhooks; neither of those can change
// or delay the outcome returned to the scanner.
func (s *CheckInService) CheckIn(ctx context.Context, in domain.CheckInInput) (*domain.CheckInOutcome, error) {
	gate, err := s.gates.GetByID(ctx, in.GateID)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	outcome, err := s.evaluate(ctx, gate, in.RawPayload)
	if err != nil {
		return nil, err
	}

	s.record(ctx, gate, in, outcome, time.Since(started))

	passID := ""
	if outcome.Pass != nil {
		passID = outcome.Pass.ID
	}
	go s.notifier.NotifyCheckIn(context.WithoutCancel(ctx), gate.EventID, passID, outcome.Result)

	return outcome, nil
}

func (s *CheckInService) evaluate(ctx context.Context, gate *domain.Gate, raw string) (*domain.CheckInOutcome, error) {
	payload, err := s.codec.Decode(raw)
	if err != nil {
		return &domain.CheckInOutcome{Result: domain.ScanResultMalformed, Err: err}, nil
	}

	if err := s.codec.Verify(payload, ""); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsignedPayload):
			// Unsigned is a lower trust tier, tolerated only for legacy
			// bare tokens when the deployment allows them.
			if payload.Format != qr.FormatPlain || !s.codec.AllowsPlainTokens() {
				return &domain.CheckInOutcome{Result: domain.ScanResultUnsigned, Err: err}, nil
			}
		default:
			return &domain.CheckInOutcome{Result: domain.ScanResultInvalidSignature, Err: err}, nil
		}
	}

	pass, err := s.loadPass(ctx, gate, payload)
	if err != nil {
		if errors.Is(err, domain.ErrPassNotFound) {
			return &domain.CheckInOutcome{Result: domain.ScanResultPassNotFound, Err: err}, nil
		}
		return nil, err
	}

	now := time.Now().UTC()
	if pass.Revoked() {
		return &domain.CheckInOutcome{Result: domain.ScanResultRevoked, Pass: pass, Err: domain.ErrPassRevoked}, nil
	}
	if err := pass.WithinWindow(now); err != nil {
		result := domain.ScanResultExpired
		if errors.Is(err, domain.ErrPassNotYetValid) {
			result = domain.ScanResultNotYetValid
		}
		return &domain.CheckInOutcome{Result: result, Pass: pass, Err: err}, nil
	}
	if pass.Exhausted() {
		return &domain.CheckInOutcome{Result: domain.ScanResultAlreadyUsed, Pass: pass, Err: domain.ErrAlreadyUsed}, nil
	}

	updated, err := s.passes.ClaimUse(ctx, pass.ID, now)
	switch {
	case err == nil:
		return &domain.CheckInOutcome{Result: domain.ScanResultValid, Pass: updated}, nil
	case errors.Is(err, domain.ErrAlreadyUsed):
		// A concurrent scan won the conditional write.
		return &domain.CheckInOutcome{Result: domain.ScanResultAlreadyUsed, Pass: updated, Err: err}, nil
	case errors.Is(err, domain.ErrPassRevoked):
		return &domain.CheckInOutcome{Result: domain.ScanResultRevoked, Pass: updated, Err: err}, nil
	default:
		return nil, err
	}
}

func (s *CheckInService) loadPass(ctx context.Context, gate *domain.Gate, payload *qr.Payload) (*domain.Pass, error) {
	var (
		pass *domain.Pass
		err  error
	)
	if payload.PassID != "" {
		eventID := payload.EventID
		if eventID == "" {
			eventID = gate.EventID
		}
		pass, err = s.passes.GetByID(ctx, payload.PassID, eventID)
	} else {
		pass, err = s.passes.GetByToken(ctx, payload.Token)
	}
	if err != nil {
		return nil, err
	}

	// The payload token must match the stored one; a pass id with a wrong
	// token is indistinguishable from an unknown pass on purpose.
	if subtle.ConstantTimeCompare([]byte(pass.Token), []byte(payload.Token)) != 1 {
		return nil, domain.ErrPassNotFound
	}
	if pass.EventID != gate.EventID {
		return nil, domain.ErrPassNotFound
	}

	return pass, nil
}

// record appends the audit row. Scan logging never changes the outcome:
// insert failures are logged and swallowed.
func (s *CheckInService) record(ctx context.Context, gate *domain.Gate, in domain.CheckInInput, outcome *domain.CheckInOutcome, took time.Duration) {
	l := &domain.ScanLog{
		ID:               uuid.NewString(),
		EventID:          gate.EventID,
		GateID:           gate.ID,
		Result:           outcome.Result,
		RawPayload:       in.RawPayload,
		ProcessingTimeMs: took.Milliseconds(),
		ScannedAt:        time.Now().UTC(),
	}
	if outcome.Pass != nil {
		id := outcome.Pass.ID
		l.PassID = &id
	}
	if in.ScannerID != "" {
		id := in.ScannerID
		l.ScannerUserID = &id
	}
	if outcome.Err != nil {
		l.ErrorMessage = outcome.Err.Error()
	}

	if err := s.scanLogs.Insert(ctx, l); err != nil {
		s.logger.Error("failed to record scan attempt",
			logger.String("gate_id", gate.ID),
			logger.String("result", string(outcome.Result)),
			logger.String("error", err.Error()),
		)
	}
}

// VerifyPayload is the read-only verification used by /qr/verify: it
// classifies a payload and loads the pass without consuming an admission.
func (s *CheckInService) VerifyPayload(ctx context.Context, raw, partnerID string) (*domain.Pass, error) {
	payload, err := s.codec.Decode(raw)
	if err != nil {
		return nil, err
	}

	if err := s.codec.Verify(payload, partnerID); err != nil {
		if !errors.Is(err, domain.ErrUnsignedPayload) ||
			payload.Format != qr.FormatPlain || !s.codec.AllowsPlainTokens() {
			return nil, err
		}
	}

	var pass *domain.Pass
	if payload.PassID != "" {
		eventID := payload.EventID
		if eventID != "" {
			pass, err = s.passes.GetByID(ctx, payload.PassID, eventID)
		} else {
			pass, err = s.passes.GetByToken(ctx, payload.Token)
		}
	} else {
		pass, err = s.passes.GetByToken(ctx, payload.Token)
	}
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(pass.Token), []byte(payload.Token)) != 1 {
		return nil, domain.ErrPassNotFound
	}

	now := time.Now().UTC()
	if pass.Revoked() {
		return pass, domain.ErrPassRevoked
	}
	if err := pass.WithinWindow(now); err != nil {
		return pass, err
	}
	if pass.Exhausted() {
		return pass, domain.ErrAlreadyUsed
	}

	return pass, nil
}

// Revoke terminally disables a pass. The pass row is kept for audit.
func (s *CheckInService) Revoke(ctx context.Context, passID string) (*domain.Pass, error) {
	pass, err := s.passes.Revoke(ctx, passID, time.Now().UTC())
	if err != nil {
		return pass, err
	}

	s.logger.Info("pass revoked",
		logger.String("pass_id", pass.ID),
		logger.String("event_id", pass.EventID),
	)

	go s.notifier.NotifyPassRevoked(context.WithoutCancel(ctx), pass)

	return pass, nil
}

func (s *CheckInService) ListScanLogs(ctx context.Context, eventID string, limit int) ([]*domain.ScanLog, error) {
	return s.scanLogs.ListByEvent(ctx, eventID, limit)
}
