package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mbti-chat/internal/types"
)

func TestProfileFor(t *testing.T) {
	profile, err := ProfileFor(types.INTJ)
	require.NoError(t, err)
	require.Equal(t, types.INTJ, profile.Code)
	require.Equal(t, "The Architect", profile.Nickname)
	require.NotEmpty(t, profile.Description)
	require.Contains(t, profile.CognitiveFunctions, "Ni-Te-Fi-Se")
	require.NotEmpty(t, profile.Avatar)
}

func TestProfileForUnknownType(t *testing.T) {
	_, err := ProfileFor(types.TypeCode("ABCD"))
	require.Error(t, err)
}

func TestAllProfilesCoversEveryType(t *testing.T) {
	profiles, err := AllProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, len(types.AllTypes))
	for i, profile := range profiles {
		require.Equal(t, types.AllTypes[i], profile.Code)
		require.NotEmpty(t, profile.Nickname, "missing nickname for %s", profile.Code)
		require.NotEmpty(t, profile.Description, "missing description for %s", profile.Code)
		require.NotEmpty(t, profile.CognitiveFunctions, "missing functions for %s", profile.Code)
	}
}

func TestIsAnalytical(t *testing.T) {
	analytical := []types.TypeCode{types.INTJ, types.INTP, types.ENTJ, types.ENTP, types.ISTJ, types.ESTJ, types.ISTP}
	for _, code := range analytical {
		require.True(t, IsAnalytical(code), "expected %s to be analytical", code)
	}
	for _, code := range []types.TypeCode{types.INFJ, types.ENFP, types.ESFP, types.ISFJ} {
		require.False(t, IsAnalytical(code), "expected %s not to be analytical", code)
	}
}
