package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindSurvivesWrapping(t *testing.T) {
	err := Conflictf("plan %s has active subscriptions", "starter")
	wrapped := fmt.Errorf("delete plan: %w", err)

	require.True(t, Is(wrapped, KindConflict))
	require.False(t, Is(wrapped, KindNotFound))
	require.Equal(t, KindConflict, KindOf(wrapped))
}

func TestInternalPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause)

	require.True(t, errors.Is(err, cause))
	require.Equal(t, KindInternal, KindOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	require.Equal(t, KindInternal, KindOf(errors.New("boom")))
	require.False(t, Is(errors.New("boom"), KindValidation))
}

func TestInternalfWrapChain(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := Internalf("replace plan modules: %w", cause)

	require.True(t, errors.Is(err, cause))
	require.Equal(t, "internal", KindOf(err).String())
}
