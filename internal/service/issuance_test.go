package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
	"github.com/Flapjack766/vetap-website-sub003/internal/service/ports/mocks"
)

type issuanceFixture struct {
	passes   *mocks.MockPassRepo
	events   *mocks.MockEventRepo
	gates    *mocks.MockGateRepo
	notifier *mocks.MockWebhookNotifier
	svc      *IssuanceService
}

func newIssuanceFixture(t *testing.T) *issuanceFixture {
	f := &issuanceFixture{
		passes:   mocks.NewMockPassRepo(t),
		events:   mocks.NewMockEventRepo(t),
		gates:    mocks.NewMockGateRepo(t),
		notifier: mocks.NewMockWebhookNotifier(t),
	}
	f.svc = NewIssuanceService(f.passes, f.events, f.gates, f.notifier, newTestLogger(t))
	return f
}

func activeEvent() *domain.Event {
	return &domain.Event{ID: "e1", Title: "Launch party", Status: domain.EventStatusActive}
}

func TestIssuanceService_IssuePass(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	f.passes.EXPECT().TokenExists(mock.Anything, mock.Anything).Return(false, nil)
	f.passes.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyPassGenerated(mock.Anything, mock.Anything).Return()

	pass, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
		EventID: "e1",
		GuestID: "guest1",
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", pass.EventID)
	assert.Equal(t, "guest1", pass.GuestID)
	assert.Equal(t, domain.PassStatusUnused, pass.Status)
	assert.Equal(t, 1, pass.MaxUses)
	assert.Len(t, pass.Token, 64)
	assert.NotEmpty(t, pass.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestIssuanceService_IssuePass_UniqueTokens(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	f.passes.EXPECT().TokenExists(mock.Anything, mock.Anything).Return(false, nil)
	f.passes.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyPassGenerated(mock.Anything, mock.Anything).Return()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		pass, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
			EventID: "e1",
			GuestID: "guest1",
		})
		require.NoError(t, err)

		_, dup := seen[pass.Token]
		require.False(t, dup, "duplicate token on iteration %d", i)
		seen[pass.Token] = struct{}{}
	}

	time.Sleep(100 * time.Millisecond)
}

func TestIssuanceService_IssuePass_RetriesOnCollision(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	f.passes.EXPECT().TokenExists(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.passes.EXPECT().TokenExists(mock.Anything, mock.Anything).Return(false, nil).Once()
	f.passes.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyPassGenerated(mock.Anything, mock.Anything).Return()

	pass, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
		EventID: "e1",
		GuestID: "guest1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pass.Token)

	time.Sleep(50 * time.Millisecond)
}

func TestIssuanceService_IssuePass_RetriesOnInsertRace(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	f.passes.EXPECT().TokenExists(mock.Anything, mock.Anything).Return(false, nil)
	f.passes.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateToken).Once()
	f.passes.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.EXPECT().NotifyPassGenerated(mock.Anything, mock.Anything).Return()

	_, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
		EventID: "e1",
		GuestID: "guest1",
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestIssuanceService_IssuePass_TokenExhausted(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	f.passes.EXPECT().TokenExists(mock.Anything, mock.Anything).Return(true, nil)

	_, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
		EventID: "e1",
		GuestID: "guest1",
	})

	assert.ErrorIs(t, err, domain.ErrTokenExhausted)
}

func TestIssuanceService_IssuePass_Validation(t *testing.T) {
	f := newIssuanceFixture(t)

	cases := []struct {
		name  string
		input domain.IssuePassInput
	}{
		{"missing event", domain.IssuePassInput{GuestID: "guest1"}},
		{"missing guest", domain.IssuePassInput{EventID: "e1"}},
		{"negative max uses", domain.IssuePassInput{EventID: "e1", GuestID: "guest1", MaxUses: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.IssuePass(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestIssuanceService_IssuePass_WindowInverted(t *testing.T) {
	f := newIssuanceFixture(t)

	from := time.Now().UTC()
	to := from.Add(-time.Hour)

	_, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
		EventID:   "e1",
		GuestID:   "guest1",
		ValidFrom: &from,
		ValidTo:   &to,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIssuanceService_IssuePass_EventEnded(t *testing.T) {
	f := newIssuanceFixture(t)

	ended := &domain.Event{ID: "e1", Status: domain.EventStatusEnded}
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(ended, nil)

	_, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
		EventID: "e1",
		GuestID: "guest1",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIssuanceService_IssuePass_EventNotFound(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
		EventID: "missing",
		GuestID: "guest1",
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestIssuanceService_IssuePass_MultiUse(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	f.passes.EXPECT().TokenExists(mock.Anything, mock.Anything).Return(false, nil)
	f.passes.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyPassGenerated(mock.Anything, mock.Anything).Return()

	pass, err := f.svc.IssuePass(context.Background(), domain.IssuePassInput{
		EventID: "e1",
		GuestID: "guest1",
		MaxUses: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, pass.MaxUses)

	time.Sleep(50 * time.Millisecond)
}

func TestIssuanceService_GenerateGateAccessCode(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	f.gates.EXPECT().CodeExists(mock.Anything, "e1", mock.Anything).Return(false, nil)

	code, err := f.svc.GenerateGateAccessCode(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, code, 8)
}

func TestIssuanceService_GenerateGateAccessCode_RetriesOnCollision(t *testing.T) {
	f := newIssuanceFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	f.gates.EXPECT().CodeExists(mock.Anything, "e1", mock.Anything).Return(true, nil).Once()
	f.gates.EXPECT().CodeExists(mock.Anything, "e1", mock.Anything).Return(false, nil).Once()

	code, err := f.svc.GenerateGateAccessCode(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, code, 8)
}
