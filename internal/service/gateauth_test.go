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

func TestGateAuthService_VerifyCode(t *testing.T) {
	gates := mocks.NewMockGateRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewGateAuthService(gates, events)

	gate := &domain.Gate{ID: "g1", EventID: "e1", Name: "North entrance", AccessCode: "X7K9P2M4"}
	event := &domain.Event{
		ID:       "e1",
		Title:    "Launch party",
		Status:   domain.EventStatusActive,
		StartsAt: time.Now().Add(-time.Hour),
		EndsAt:   time.Now().Add(time.Hour),
	}

	gates.EXPECT().GetByAccessCode(mock.Anything, "X7K9P2M4").Return(gate, nil)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	gotGate, gotEvent, err := svc.VerifyCode(context.Background(), "X7K9P2M4")

	require.NoError(t, err)
	assert.Equal(t, "g1", gotGate.ID)
	assert.Equal(t, "e1", gotEvent.ID)
}

func TestGateAuthService_VerifyCode_UnknownCodeLeaksNothing(t *testing.T) {
	gates := mocks.NewMockGateRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewGateAuthService(gates, events)

	gates.EXPECT().GetByAccessCode(mock.Anything, "WRONGCDE").Return(nil, domain.ErrGateNotFound)

	gate, event, err := svc.VerifyCode(context.Background(), "WRONGCDE")

	assert.ErrorIs(t, err, domain.ErrGateCodeInvalid)
	assert.Nil(t, gate)
	assert.Nil(t, event)
}

func TestGateAuthService_VerifyCode_Empty(t *testing.T) {
	gates := mocks.NewMockGateRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewGateAuthService(gates, events)

	_, _, err := svc.VerifyCode(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrGateCodeInvalid)
}

func TestGateAuthService_VerifyCode_EventInactive(t *testing.T) {
	gates := mocks.NewMockGateRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewGateAuthService(gates, events)

	gate := &domain.Gate{ID: "g1", EventID: "e1", AccessCode: "X7K9P2M4"}
	event := &domain.Event{ID: "e1", Status: domain.EventStatusEnded}

	gates.EXPECT().GetByAccessCode(mock.Anything, "X7K9P2M4").Return(gate, nil)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, _, err := svc.VerifyCode(context.Background(), "X7K9P2M4")

	assert.ErrorIs(t, err, domain.ErrEventInactive)
}
