package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mbti-chat/internal/types"
)

// Setup creates the knowledge schema and imports content for every
// type/category pair. Pairs that already have stored content are
// skipped unless req.Force is set. A failing pair is logged and counted
// but does not abort the rest of the import.
func (s Service) Setup(ctx context.Context, req SetupRequest) (SetupResult, error) {
	if s.Vector == nil {
		return SetupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("vector store is not configured")
	}
	if s.Knowledge == nil {
		return SetupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no knowledge source configured, set an OpenAI key or a seed corpus")
	}

	selected := req.Types
	if len(selected) == 0 {
		selected = types.AllTypes
	}
	for _, code := range selected {
		if !types.IsValidType(code) {
			return SetupResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s is not a valid MBTI type", code))
		}
	}

	if err := s.Vector.EnsureSchema(ctx); err != nil {
		return SetupResult{}, err
	}

	result := SetupResult{}
	for _, code := range selected {
		for _, category := range types.AllCategories {
			if !req.Force {
				exists, err := s.Vector.Exists(ctx, code, category)
				if err != nil {
					return result, err
				}
				if exists {
					result.Skipped++
					continue
				}
			}

			object, err := s.Knowledge.Content(ctx, code, category)
			if err != nil {
				log.Warn().Err(err).
					Str("type", string(code)).
					Str("category", string(category)).
					Msg("knowledge content unavailable, skipping pair")
				result.Failed++
				continue
			}
			if err := s.Vector.Insert(ctx, []types.KnowledgeObject{object}); err != nil {
				log.Warn().Err(err).
					Str("type", string(code)).
					Str("category", string(category)).
					Msg("insert failed, skipping pair")
				result.Failed++
				continue
			}
			result.Imported++
			log.Info().
				Str("type", string(code)).
				Str("category", string(category)).
				Msg("imported knowledge")
		}
	}
	return result, nil
}
