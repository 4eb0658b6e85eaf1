package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mbti-chat/internal/core"
	"mbti-chat/internal/ports"
	"mbti-chat/internal/types"
)

const generationMaxTokens = 1200

const generationTemperature = 0.7

// KnowledgeGeneratorAdapter authors knowledge-base content with an LLM,
// one type/category pair at a time.
type KnowledgeGeneratorAdapter struct {
	model ports.ChatModelPort
}

func NewKnowledgeGeneratorAdapter(model ports.ChatModelPort) KnowledgeGeneratorAdapter {
	return KnowledgeGeneratorAdapter{model: model}
}

func (a KnowledgeGeneratorAdapter) Content(ctx context.Context, code types.TypeCode, category types.Category) (types.KnowledgeObject, error) {
	system, prompt := core.GenerationPrompt(code, category)
	text, err := a.model.Generate(ctx, ports.GenerateRequest{
		SystemPrompt: system,
		Prompt:       prompt,
		Temperature:  generationTemperature,
		MaxTokens:    generationMaxTokens,
	})
	if err != nil {
		return types.KnowledgeObject{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("knowledge generation failed").
			WithCause(err)
	}
	if text == "" {
		return types.KnowledgeObject{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("knowledge generation returned empty content")
	}
	return types.KnowledgeObject{
		Content:  text,
		Type:     code,
		Category: category,
		Source:   "generated",
	}, nil
}
