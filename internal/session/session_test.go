package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphafinders/teabot/internal/models"
)

func TestBeginMarksBusy(t *testing.T) {
	s := NewStore()

	ctx, release, err := s.Begin(context.Background(), 1, "fetching_tokens")
	require.NoError(t, err)
	defer release()

	assert.True(t, s.Busy(1))
	assert.Equal(t, "fetching_tokens", s.Operation(1))
	assert.NoError(t, ctx.Err())
}

func TestBeginWhileBusyFails(t *testing.T) {
	s := NewStore()

	_, release, err := s.Begin(context.Background(), 1, "fetching_tokens")
	require.NoError(t, err)
	defer release()

	_, _, err = s.Begin(context.Background(), 1, "analyzing_contract")
	assert.ErrorIs(t, err, ErrBusy)

	// a different user is unaffected
	_, release2, err := s.Begin(context.Background(), 2, "analyzing_contract")
	require.NoError(t, err)
	release2()
}

func TestReleaseClearsBusy(t *testing.T) {
	s := NewStore()

	_, release, err := s.Begin(context.Background(), 1, "fetching_tokens")
	require.NoError(t, err)
	release()

	assert.False(t, s.Busy(1))
	assert.Empty(t, s.Operation(1))

	_, release2, err := s.Begin(context.Background(), 1, "fetching_tokens")
	require.NoError(t, err)
	release2()
}

func TestStopCancelsContext(t *testing.T) {
	s := NewStore()

	ctx, release, err := s.Begin(context.Background(), 1, "fetching_tokens")
	require.NoError(t, err)
	defer release()

	op, stopped := s.Stop(1)
	assert.True(t, stopped)
	assert.Equal(t, "fetching_tokens", op)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, s.Busy(1))
}

func TestStopWhenIdle(t *testing.T) {
	s := NewStore()

	op, stopped := s.Stop(1)
	assert.False(t, stopped)
	assert.Empty(t, op)
}

func TestStaleReleaseDoesNotClobberNewOperation(t *testing.T) {
	s := NewStore()

	_, oldRelease, err := s.Begin(context.Background(), 1, "fetching_tokens")
	require.NoError(t, err)

	_, stopped := s.Stop(1)
	require.True(t, stopped)

	newCtx, newRelease, err := s.Begin(context.Background(), 1, "analyzing_contract")
	require.NoError(t, err)
	defer newRelease()

	oldRelease()

	assert.True(t, s.Busy(1))
	assert.Equal(t, "analyzing_contract", s.Operation(1))
	assert.NoError(t, newCtx.Err())
}

func TestFindToken(t *testing.T) {
	s := NewStore()

	s.SetLastTokens(1, []models.TokenRecord{
		{ContractAddress: "0xAbC", Symbol: "TEA"},
		{ContractAddress: "0xDeF", Symbol: "LEAF"},
	})

	token, ok := s.FindToken(1, "0xabc")
	require.True(t, ok)
	assert.Equal(t, "TEA", token.Symbol)

	_, ok = s.FindToken(1, "0x999")
	assert.False(t, ok)

	_, ok = s.FindToken(2, "0xabc")
	assert.False(t, ok)
}
