package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codefold/user-directory/pkg/helpers"
)

func TestTokenValidator_CombinesAndDeduplicates(t *testing.T) {
	v := helpers.NewTokenValidator(" alpha ", []string{"beta", "alpha", "  ", ""})

	require.True(t, v.HasTokens())
	require.True(t, v.IsValid("alpha"))
	require.True(t, v.IsValid("beta"))
	require.False(t, v.IsValid(""))
}

func TestTokenValidator_TrimsIncomingToken(t *testing.T) {
	v := helpers.NewTokenValidator("alpha", nil)

	require.True(t, v.IsValid("  alpha  "))
}

func TestTokenValidator_CaseSensitive(t *testing.T) {
	v := helpers.NewTokenValidator("alpha", nil)

	require.False(t, v.IsValid("Alpha"))
	require.False(t, v.IsValid("ALPHA"))
}

func TestTokenValidator_Empty(t *testing.T) {
	v := helpers.NewTokenValidator("", []string{" ", ""})

	require.False(t, v.HasTokens())
	require.False(t, v.IsValid("anything"))
}
