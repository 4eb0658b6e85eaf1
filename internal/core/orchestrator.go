package core

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mbti-chat/internal/ports"
	"mbti-chat/internal/types"
)

// CascadePolicy yields the provider fallback order for a type.
type CascadePolicy interface {
	Cascade(code types.TypeCode) []types.Provider
}

const (
	// retrievalTopK is how many knowledge fragments ground each reply.
	retrievalTopK = 7

	defaultTemperature = 0.7
	defaultMaxTokens   = 300

	// defaultParticipants is the group size when none is given.
	defaultParticipants = 4
)

// Orchestrator drives single, multi, and group chat over the provider
// and retrieval ports.
type Orchestrator struct {
	Models    map[types.Provider]ports.ChatModelPort
	Vector    ports.VectorStorePort
	Policy    CascadePolicy
	Simulator *Simulator
	Formatter *Formatter

	rng        *rand.Rand
	transcript []types.TranscriptEntry
}

func NewOrchestrator(models map[types.Provider]ports.ChatModelPort, vector ports.VectorStorePort, policy CascadePolicy, rng *rand.Rand) *Orchestrator {
	return &Orchestrator{
		Models:    models,
		Vector:    vector,
		Policy:    policy,
		Simulator: NewSimulator(),
		Formatter: NewFormatter(rng),
		rng:       rng,
	}
}

// ChatWithType answers a query as one personality type.
func (o *Orchestrator) ChatWithType(ctx context.Context, query string, code types.TypeCode) (types.PersonaResponse, error) {
	if !types.IsValidType(code) {
		return types.PersonaResponse{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s is not a valid MBTI type", code))
	}
	response := o.generate(ctx, query, code)
	o.transcript = append(o.transcript, types.TranscriptEntry{
		Query:     query,
		Responses: []types.PersonaResponse{response},
	})
	return response, nil
}

// MultiChat answers a query as several personality types. When include
// is non-empty its valid entries are used; otherwise, or when nothing
// valid remains, a random sample of num types is drawn.
func (o *Orchestrator) MultiChat(ctx context.Context, query string, include []types.TypeCode, num int) ([]types.PersonaResponse, error) {
	selected := o.selectTypes(include, num)
	responses := make([]types.PersonaResponse, 0, len(selected))
	for _, code := range selected {
		responses = append(responses, o.generate(ctx, query, code))
	}
	o.transcript = append(o.transcript, types.TranscriptEntry{Query: query, Responses: responses})
	return responses, nil
}

// GroupDiscussion simulates a multi-round discussion. In round one every
// participant answers the topic; in later rounds each participant
// answers the previous round's comments from the other participants.
// A round never observes responses produced within the same round.
func (o *Orchestrator) GroupDiscussion(ctx context.Context, topic string, participants []types.TypeCode, rounds int) (types.Discussion, error) {
	if topic == "" {
		return types.Discussion{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("discussion topic is required")
	}
	for _, code := range participants {
		if !types.IsValidType(code) {
			return types.Discussion{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s is not a valid MBTI type", code))
		}
	}
	if len(participants) == 0 {
		participants = o.sample(defaultParticipants)
	}
	if rounds < 1 {
		rounds = 1
	}

	discussion := types.Discussion{Topic: topic, Participants: participants}

	previous := make([]types.PersonaResponse, 0, len(participants))
	for _, code := range participants {
		response := o.generate(ctx, topic, code)
		previous = append(previous, response)
		discussion.Entries = append(discussion.Entries, types.DiscussionEntry{
			Type:  code,
			Round: 1,
			Text:  response.Text,
		})
	}

	for round := 2; round <= rounds; round++ {
		current := make([]types.PersonaResponse, 0, len(participants))
		for _, code := range participants {
			others := make([]types.PersonaResponse, 0, len(previous))
			for _, resp := range previous {
				if resp.Type != code {
					others = append(others, resp)
				}
			}
			prompt := DiscussionPrompt(topic, others)
			response := o.generate(ctx, prompt, code)
			current = append(current, response)
			discussion.Entries = append(discussion.Entries, types.DiscussionEntry{
				Type:  code,
				Round: round,
				Text:  response.Text,
			})
		}
		previous = current
	}

	return discussion, nil
}

// Transcript returns the accumulated conversation history.
func (o *Orchestrator) Transcript() []types.TranscriptEntry {
	return o.transcript
}

// generate runs the provider cascade for one type. Retrieval and
// provider errors degrade to the next stage; simulation always answers.
func (o *Orchestrator) generate(ctx context.Context, query string, code types.TypeCode) types.PersonaResponse {
	var hits []types.SearchHit
	if o.Vector != nil {
		retrieved, err := o.Vector.Search(ctx, query, code, retrievalTopK)
		if err != nil {
			log.Warn().Err(err).Str("type", string(code)).Msg("knowledge retrieval failed, continuing without context")
		} else {
			hits = retrieved
		}
	}
	systemPrompt := SystemPrompt(code, hits)

	for _, provider := range o.Policy.Cascade(code) {
		if provider == types.ProviderSimulation {
			break
		}
		model, ok := o.Models[provider]
		if !ok {
			continue
		}
		text, err := model.Generate(ctx, ports.GenerateRequest{
			SystemPrompt: systemPrompt,
			Prompt:       query,
			Temperature:  defaultTemperature,
			MaxTokens:    defaultMaxTokens,
		})
		if err != nil {
			log.Warn().Err(err).
				Str("provider", string(provider)).
				Str("type", string(code)).
				Msg("provider failed, falling back")
			continue
		}
		return types.PersonaResponse{
			Type:     code,
			Text:     o.Formatter.FormatResponse(text, code),
			Provider: provider,
		}
	}

	return types.PersonaResponse{
		Type:     code,
		Text:     o.Formatter.FormatResponse(o.Simulator.Respond(code, query), code),
		Provider: types.ProviderSimulation,
	}
}

// selectTypes keeps the valid requested types, falling back to a random
// sample of num when the request yields nothing usable.
func (o *Orchestrator) selectTypes(include []types.TypeCode, num int) []types.TypeCode {
	var selected []types.TypeCode
	seen := map[types.TypeCode]struct{}{}
	for _, code := range include {
		if !types.IsValidType(code) {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		selected = append(selected, code)
	}
	if len(selected) > 0 {
		return selected
	}
	if num < 1 {
		num = 1
	}
	return o.sample(num)
}

// sample draws n distinct random types in stable (canonical) order.
func (o *Orchestrator) sample(n int) []types.TypeCode {
	if n > len(types.AllTypes) {
		n = len(types.AllTypes)
	}
	indexes := o.rng.Perm(len(types.AllTypes))[:n]
	sort.Ints(indexes)
	selected := make([]types.TypeCode, 0, n)
	for _, idx := range indexes {
		selected = append(selected, types.AllTypes[idx])
	}
	return selected
}
