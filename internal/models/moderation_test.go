package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFromApproved(t *testing.T) {
	approved := true
	rejected := false

	assert.Equal(t, StatePending, StateFromApproved(nil))
	assert.Equal(t, StateApproved, StateFromApproved(&approved))
	assert.Equal(t, StateRejected, StateFromApproved(&rejected))
}

func TestStateRoundTrip(t *testing.T) {
	for _, state := range []ModerationState{StatePending, StateApproved, StateRejected} {
		assert.Equal(t, state, StateFromApproved(state.Approved()), "state %s", state)
	}
}

func TestApprovedColumnValues(t *testing.T) {
	assert.Nil(t, StatePending.Approved())

	v := StateApproved.Approved()
	require.NotNil(t, v)
	assert.True(t, *v)

	v = StateRejected.Approved()
	require.NotNil(t, v)
	assert.False(t, *v)
}

func TestIsDecision(t *testing.T) {
	assert.True(t, StateApproved.IsDecision())
	assert.True(t, StateRejected.IsDecision())
	assert.False(t, StatePending.IsDecision())
	assert.False(t, ModerationState("archived").IsDecision())
}

func TestMessageState(t *testing.T) {
	m := Message{}
	assert.Equal(t, StatePending, m.State())

	approved := true
	m.IsApproved = &approved
	assert.Equal(t, StateApproved, m.State())
}
