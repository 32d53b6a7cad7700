package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
	"github.com/Flapjack766/vetap-website-sub003/internal/qr"
	"github.com/Flapjack766/vetap-website-sub003/internal/service/ports/mocks"
)

const testToken = "4f3c2a1b0d9e8f7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3c"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestCodec() *qr.Codec {
	return qr.NewCodec(qr.Config{Secret: "test-signing-secret", AllowPlainTokens: true})
}

type checkInFixture struct {
	passes   *mocks.MockPassRepo
	gates    *mocks.MockGateRepo
	scanLogs *mocks.MockScanLogRepo
	notifier *mocks.MockWebhookNotifier
	codec    *qr.Codec
	svc      *CheckInService
}

func newCheckInFixture(t *testing.T) *checkInFixture {
	f := &checkInFixture{
		passes:   mocks.NewMockPassRepo(t),
		gates:    mocks.NewMockGateRepo(t),
		scanLogs: mocks.NewMockScanLogRepo(t),
		notifier: mocks.NewMockWebhookNotifier(t),
		codec:    newTestCodec(),
	}
	f.svc = NewCheckInService(f.passes, f.gates, f.scanLogs, f.codec, f.notifier, newTestLogger(t))
	return f
}

func testGate() *domain.Gate {
	return &domain.Gate{ID: "g1", EventID: "e1", Name: "North entrance"}
}

func testPass() *domain.Pass {
	return &domain.Pass{
		ID:      "p1",
		EventID: "e1",
		GuestID: "guest1",
		Token:   testToken,
		Status:  domain.PassStatusUnused,
		MaxUses: 1,
	}
}

func signedPayload(t *testing.T, c *qr.Codec, pass *domain.Pass) string {
	t.Helper()
	raw, err := c.Encode(pass.ID, pass.Token, pass.EventID, qr.FormatV2, true)
	require.NoError(t, err)
	return raw
}

func TestCheckInService_CheckIn_Valid(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()

	used := *pass
	used.UseCount = 1
	used.Status = domain.PassStatusUsed

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(pass, nil)
	f.passes.EXPECT().ClaimUse(mock.Anything, "p1", mock.Anything).Return(&used, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "p1", domain.ScanResultValid).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: signedPayload(t, f.codec, pass),
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultValid, outcome.Result)
	assert.NoError(t, outcome.Err)
	assert.Equal(t, 1, outcome.Pass.UseCount)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCheckInService_CheckIn_SecondScanAlreadyUsed(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()
	pass.UseCount = 1
	pass.Status = domain.PassStatusUsed

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(pass, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "p1", domain.ScanResultAlreadyUsed).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: signedPayload(t, f.codec, pass),
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultAlreadyUsed, outcome.Result)
	assert.ErrorIs(t, outcome.Err, domain.ErrAlreadyUsed)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_ConcurrentLoser(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()

	used := *pass
	used.UseCount = 1
	used.Status = domain.PassStatusUsed

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(pass, nil)
	f.passes.EXPECT().ClaimUse(mock.Anything, "p1", mock.Anything).Return(&used, domain.ErrAlreadyUsed)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "p1", domain.ScanResultAlreadyUsed).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: signedPayload(t, f.codec, pass),
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultAlreadyUsed, outcome.Result)
	assert.ErrorIs(t, outcome.Err, domain.ErrAlreadyUsed)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_Revoked(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()
	revokedAt := time.Now().UTC()
	pass.RevokedAt = &revokedAt
	pass.Status = domain.PassStatusRevoked

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(pass, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "p1", domain.ScanResultRevoked).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: signedPayload(t, f.codec, pass),
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultRevoked, outcome.Result)
	assert.ErrorIs(t, outcome.Err, domain.ErrPassRevoked)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_ExpiredStaysUnused(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()
	validTo := time.Now().UTC().Add(-time.Hour)
	pass.ValidTo = &validTo

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(pass, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "p1", domain.ScanResultExpired).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: signedPayload(t, f.codec, pass),
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultExpired, outcome.Result)
	assert.ErrorIs(t, outcome.Err, domain.ErrPassExpired)
	// Expiry is derived at scan time; the stored status must not change.
	assert.Equal(t, domain.PassStatusUnused, outcome.Pass.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_NotYetValid(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()
	validFrom := time.Now().UTC().Add(time.Hour)
	pass.ValidFrom = &validFrom

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(pass, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "p1", domain.ScanResultNotYetValid).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: signedPayload(t, f.codec, pass),
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultNotYetValid, outcome.Result)
	assert.ErrorIs(t, outcome.Err, domain.ErrPassNotYetValid)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_Malformed(t *testing.T) {
	f := newCheckInFixture(t)

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "", domain.ScanResultMalformed).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: "VETAP:broken",
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultMalformed, outcome.Result)
	assert.Nil(t, outcome.Pass)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_TamperedSignature(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()

	forger := qr.NewCodec(qr.Config{Secret: "attacker-secret"})
	raw, err := forger.Encode(pass.ID, pass.Token, pass.EventID, qr.FormatV2, true)
	require.NoError(t, err)

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "", domain.ScanResultInvalidSignature).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: raw,
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultInvalidSignature, outcome.Result)
	assert.ErrorIs(t, outcome.Err, domain.ErrSignatureMismatch)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_PlainTokenAllowed(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()

	used := *pass
	used.UseCount = 1
	used.Status = domain.PassStatusUsed

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByToken(mock.Anything, testToken).Return(pass, nil)
	f.passes.EXPECT().ClaimUse(mock.Anything, "p1", mock.Anything).Return(&used, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "p1", domain.ScanResultValid).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: testToken,
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultValid, outcome.Result)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_PlainTokenRejectedByPolicy(t *testing.T) {
	passes := mocks.NewMockPassRepo(t)
	gates := mocks.NewMockGateRepo(t)
	scanLogs := mocks.NewMockScanLogRepo(t)
	notifier := mocks.NewMockWebhookNotifier(t)
	codec := qr.NewCodec(qr.Config{Secret: "test-signing-secret", AllowPlainTokens: false})
	svc := NewCheckInService(passes, gates, scanLogs, codec, notifier, newTestLogger(t))

	gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "", domain.ScanResultUnsigned).Return()

	outcome, err := svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: testToken,
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultUnsigned, outcome.Result)
	assert.ErrorIs(t, outcome.Err, domain.ErrUnsignedPayload)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_WrongTokenForPassID(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()

	raw, err := f.codec.Encode(pass.ID, "11112a1b0d9e8f7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e1111", pass.EventID, qr.FormatV2, true)
	require.NoError(t, err)

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(pass, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "", domain.ScanResultPassNotFound).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: raw,
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultPassNotFound, outcome.Result)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_PassFromAnotherEvent(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()
	pass.EventID = "e2"

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByToken(mock.Anything, testToken).Return(pass, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "", domain.ScanResultPassNotFound).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: testToken,
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultPassNotFound, outcome.Result)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_CheckIn_GateNotFound(t *testing.T) {
	f := newCheckInFixture(t)

	f.gates.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrGateNotFound)

	_, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: testToken,
		GateID:     "missing",
	})

	assert.ErrorIs(t, err, domain.ErrGateNotFound)
}

func TestCheckInService_CheckIn_StoreError(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(nil, errors.New("connection reset"))

	_, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: signedPayload(t, f.codec, pass),
		GateID:     "g1",
	})

	assert.Error(t, err)
}

func TestCheckInService_CheckIn_ScanLogFailureDoesNotChangeOutcome(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()

	used := *pass
	used.UseCount = 1
	used.Status = domain.PassStatusUsed

	f.gates.EXPECT().GetByID(mock.Anything, "g1").Return(testGate(), nil)
	f.passes.EXPECT().GetByID(mock.Anything, "p1", "e1").Return(pass, nil)
	f.passes.EXPECT().ClaimUse(mock.Anything, "p1", mock.Anything).Return(&used, nil)
	f.scanLogs.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("disk full"))
	f.notifier.EXPECT().NotifyCheckIn(mock.Anything, "e1", "p1", domain.ScanResultValid).Return()

	outcome, err := f.svc.CheckIn(context.Background(), domain.CheckInInput{
		RawPayload: signedPayload(t, f.codec, pass),
		GateID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ScanResultValid, outcome.Result)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_VerifyPayload_DoesNotConsumeUse(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()

	f.passes.EXPECT().GetByToken(mock.Anything, testToken).Return(pass, nil)

	got, err := f.svc.VerifyPayload(context.Background(), testToken, "")

	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, 0, got.UseCount)
}

func TestCheckInService_VerifyPayload_Exhausted(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()
	pass.UseCount = 1
	pass.Status = domain.PassStatusUsed

	f.passes.EXPECT().GetByToken(mock.Anything, testToken).Return(pass, nil)

	got, err := f.svc.VerifyPayload(context.Background(), testToken, "")

	assert.ErrorIs(t, err, domain.ErrAlreadyUsed)
	assert.NotNil(t, got)
}

func TestCheckInService_VerifyPayload_Malformed(t *testing.T) {
	f := newCheckInFixture(t)

	_, err := f.svc.VerifyPayload(context.Background(), "VETAP:broken", "")

	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestCheckInService_Revoke(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()
	revokedAt := time.Now().UTC()
	pass.Status = domain.PassStatusRevoked
	pass.RevokedAt = &revokedAt

	f.passes.EXPECT().Revoke(mock.Anything, "p1", mock.Anything).Return(pass, nil)
	f.notifier.EXPECT().NotifyPassRevoked(mock.Anything, pass).Return()

	got, err := f.svc.Revoke(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.PassStatusRevoked, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_Revoke_AlreadyRevoked(t *testing.T) {
	f := newCheckInFixture(t)
	pass := testPass()
	pass.Status = domain.PassStatusRevoked

	f.passes.EXPECT().Revoke(mock.Anything, "p1", mock.Anything).Return(pass, domain.ErrAlreadyRevoked)

	_, err := f.svc.Revoke(context.Background(), "p1")

	assert.ErrorIs(t, err, domain.ErrAlreadyRevoked)
}
