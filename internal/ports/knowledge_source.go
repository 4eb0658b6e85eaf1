package ports

import (
	"context"

	"mbti-chat/internal/types"
)

// KnowledgeSourcePort supplies knowledge-base content for one
// type/category pair during import, either from an LLM generator or a
// seed corpus file.
type KnowledgeSourcePort interface {
	Content(ctx context.Context, code types.TypeCode, category types.Category) (types.KnowledgeObject, error)
}
