package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCreatesLazily(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	ctx := svc.Get(42)
	assert.Equal(t, SlotNone, ctx.Pending)
}

func TestSetAndClearPending(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	svc.SetPending(42, SlotAwaitingCity)
	assert.Equal(t, SlotAwaitingCity, svc.Get(42).Pending)

	svc.ClearPending(42)
	assert.Equal(t, SlotNone, svc.Get(42).Pending)
}

func TestConversationsAreIndependent(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	svc.SetPending(1, SlotAwaitingJokeConfirmation)

	assert.Equal(t, SlotAwaitingJokeConfirmation, svc.Get(1).Pending)
	assert.Equal(t, SlotNone, svc.Get(2).Pending)
}
