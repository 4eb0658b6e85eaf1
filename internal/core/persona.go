// Package core implements the personality engine: the type registry,
// prompt construction, response formatting, the simulation responder,
// and the chat orchestrator.
package core

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"mbti-chat/internal/types"
)

//go:embed profiles.yaml
var profilesYAML []byte

var (
	profilesOnce sync.Once
	profilesByID map[types.TypeCode]types.Profile
	profilesErr  error
)

// analyticalTypes are routed to the analytical provider when available.
var analyticalTypes = map[types.TypeCode]struct{}{
	types.INTJ: {}, types.INTP: {}, types.ENTJ: {}, types.ENTP: {},
	types.ISTJ: {}, types.ESTJ: {}, types.ISTP: {},
}

// expressiveTypes get an exclamation mark appended to flat responses.
var expressiveTypes = map[types.TypeCode]struct{}{
	types.ENFP: {}, types.ESFP: {}, types.ENFJ: {}, types.ENTP: {},
}

// emojiProneTypes occasionally get an emoji appended.
var emojiProneTypes = map[types.TypeCode]struct{}{
	types.ENFP: {}, types.ESFP: {},
}

func loadProfiles() {
	var list []types.Profile
	if err := yaml.Unmarshal(profilesYAML, &list); err != nil {
		profilesErr = errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse embedded profiles").
			WithCause(err)
		return
	}
	ctx := context.Background()
	byID := make(map[types.TypeCode]types.Profile, len(list))
	for _, profile := range list {
		assert.NotEmpty(ctx, string(profile.Code), "profile code must be set")
		assert.NotEmpty(ctx, profile.Nickname, "profile nickname must be set")
		assert.NotEmpty(ctx, profile.Description, "profile description must be set")
		byID[profile.Code] = profile
	}
	for _, code := range types.AllTypes {
		if _, ok := byID[code]; !ok {
			profilesErr = errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("embedded profiles missing %s", code))
			return
		}
	}
	profilesByID = byID
}

// ProfileFor returns the embedded profile for a type code.
func ProfileFor(code types.TypeCode) (types.Profile, error) {
	profilesOnce.Do(loadProfiles)
	if profilesErr != nil {
		return types.Profile{}, profilesErr
	}
	profile, ok := profilesByID[code]
	if !ok {
		return types.Profile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s is not a valid MBTI type", code))
	}
	return profile, nil
}

// AllProfiles returns every profile in canonical type order.
func AllProfiles() ([]types.Profile, error) {
	profilesOnce.Do(loadProfiles)
	if profilesErr != nil {
		return nil, profilesErr
	}
	out := make([]types.Profile, 0, len(types.AllTypes))
	for _, code := range types.AllTypes {
		out = append(out, profilesByID[code])
	}
	return out, nil
}

// IsAnalytical reports whether the type belongs to the analytical group.
func IsAnalytical(code types.TypeCode) bool {
	_, ok := analyticalTypes[code]
	return ok
}
