package ports

import (
	"context"

	"mbti-chat/internal/types"
)

// VectorStorePort abstracts the personality knowledge base backed by a
// vector database.
type VectorStorePort interface {
	// EnsureSchema creates the knowledge class when it does not exist.
	EnsureSchema(ctx context.Context) error
	// Search returns the top-matching knowledge fragments for a query,
	// restricted to one personality type.
	Search(ctx context.Context, query string, code types.TypeCode, limit int) ([]types.SearchHit, error)
	// Exists reports whether any object is stored for the type/category pair.
	Exists(ctx context.Context, code types.TypeCode, category types.Category) (bool, error)
	// Insert batch-imports knowledge objects.
	Insert(ctx context.Context, objects []types.KnowledgeObject) error
	// Count returns the total number of stored knowledge objects.
	Count(ctx context.Context) (int, error)
	// DistinctTypes returns the type codes that have at least one object.
	DistinctTypes(ctx context.Context) ([]types.TypeCode, error)
	// Ready reports whether the backing store answers readiness probes.
	Ready(ctx context.Context) bool
	// ServerVersion returns the backing store's reported version.
	ServerVersion(ctx context.Context) (string, error)
}
