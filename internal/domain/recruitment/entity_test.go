package recruitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardFlow(t *testing.T) {
	assert.True(t, CanTransition(ApplicantStatusApplied, ApplicantStatusScreening))
	assert.True(t, CanTransition(ApplicantStatusScreening, ApplicantStatusInterview))
	assert.True(t, CanTransition(ApplicantStatusInterview, ApplicantStatusOffered))
	assert.True(t, CanTransition(ApplicantStatusOffered, ApplicantStatusHired))
}

func TestCanTransition_NoSkipping(t *testing.T) {
	assert.False(t, CanTransition(ApplicantStatusApplied, ApplicantStatusInterview))
	assert.False(t, CanTransition(ApplicantStatusApplied, ApplicantStatusHired))
	assert.False(t, CanTransition(ApplicantStatusScreening, ApplicantStatusOffered))
}

func TestCanTransition_NoGoingBack(t *testing.T) {
	assert.False(t, CanTransition(ApplicantStatusInterview, ApplicantStatusScreening))
	assert.False(t, CanTransition(ApplicantStatusOffered, ApplicantStatusApplied))
}

func TestCanTransition_RejectFromAnyNonTerminal(t *testing.T) {
	for _, from := range []ApplicantStatus{
		ApplicantStatusApplied,
		ApplicantStatusScreening,
		ApplicantStatusInterview,
		ApplicantStatusOffered,
	} {
		assert.True(t, CanTransition(from, ApplicantStatusRejected), "reject from %s", from)
	}
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	assert.False(t, CanTransition(ApplicantStatusHired, ApplicantStatusRejected))
	assert.False(t, CanTransition(ApplicantStatusRejected, ApplicantStatusScreening))
	assert.False(t, CanTransition(ApplicantStatusHired, ApplicantStatusOffered))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, ApplicantStatusHired.IsTerminal())
	assert.True(t, ApplicantStatusRejected.IsTerminal())
	assert.False(t, ApplicantStatusOffered.IsTerminal())
}
