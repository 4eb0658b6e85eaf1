package adapters

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"mbti-chat/internal/types"
)

// knowledgeClassName is the Weaviate class holding personality knowledge.
const knowledgeClassName = "MBTIPersonality"

const defaultVectorizer = "text2vec-openai"

// WeaviateStoreAdapter stores and retrieves personality knowledge in a
// Weaviate instance, vectorized with OpenAI embeddings.
type WeaviateStoreAdapter struct {
	client     *weaviate.Client
	vectorizer string
}

// WeaviateConfig carries the connection settings for the vector store.
type WeaviateConfig struct {
	// URL is the full base URL, e.g. http://localhost:8080.
	URL string
	// APIKey authenticates against Weaviate Cloud. Empty for anonymous.
	APIKey string
	// OpenAIAPIKey is forwarded for the text2vec-openai module.
	OpenAIAPIKey string
	// Vectorizer overrides the class vectorizer. Defaults to
	// text2vec-openai; "none" disables server-side vectorization.
	Vectorizer string
}

func NewWeaviateStoreAdapter(config WeaviateConfig) (*WeaviateStoreAdapter, error) {
	parsed, err := url.Parse(config.URL)
	if err != nil || parsed.Host == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid weaviate url %q", config.URL)).
			WithCause(err)
	}

	clientConfig := weaviate.Config{
		Host:   parsed.Host,
		Scheme: parsed.Scheme,
	}
	if config.APIKey != "" {
		clientConfig.AuthConfig = auth.ApiKey{Value: config.APIKey}
	}
	if config.OpenAIAPIKey != "" {
		clientConfig.Headers = map[string]string{"X-OpenAI-Api-Key": config.OpenAIAPIKey}
	}

	client, err := weaviate.NewClient(clientConfig)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to build weaviate client").
			WithCause(err)
	}

	vectorizer := config.Vectorizer
	if vectorizer == "" {
		vectorizer = defaultVectorizer
	}
	return &WeaviateStoreAdapter{client: client, vectorizer: vectorizer}, nil
}

// EnsureSchema creates the knowledge class when missing. An existing
// class is left untouched.
func (a *WeaviateStoreAdapter) EnsureSchema(ctx context.Context) error {
	exists, err := a.client.Schema().ClassExistenceChecker().
		WithClassName(knowledgeClassName).
		Do(ctx)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to check schema").
			WithCause(err)
	}
	if exists {
		log.Debug().Str("class", knowledgeClassName).Msg("schema already present")
		return nil
	}

	class := &models.Class{
		Class:       knowledgeClassName,
		Description: "Knowledge fragments describing MBTI personality types",
		Vectorizer:  a.vectorizer,
		Properties: []*models.Property{
			{Name: "content", DataType: []string{"text"}, Description: "The knowledge text"},
			{Name: "type", DataType: []string{"string"}, Description: "Four-letter MBTI type code"},
			{Name: "category", DataType: []string{"string"}, Description: "Knowledge category"},
			{Name: "source", DataType: []string{"string"}, Description: "Where the content came from"},
		},
	}
	if a.vectorizer == defaultVectorizer {
		class.ModuleConfig = map[string]any{
			defaultVectorizer: map[string]any{
				"model":        "ada",
				"modelVersion": "002",
				"type":         "text",
			},
		}
	}

	if err := a.client.Schema().ClassCreator().WithClass(class).Do(ctx); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create schema").
			WithCause(err)
	}
	log.Info().Str("class", knowledgeClassName).Str("vectorizer", a.vectorizer).Msg("created knowledge schema")
	return nil
}

// Search retrieves the closest knowledge fragments for a query,
// restricted to one personality type.
func (a *WeaviateStoreAdapter) Search(ctx context.Context, query string, code types.TypeCode, limit int) ([]types.SearchHit, error) {
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "category"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}
	nearText := a.client.GraphQL().NearTextArgBuilder().
		WithConcepts([]string{query})
	where := filters.Where().
		WithPath([]string{"type"}).
		WithOperator(filters.Equal).
		WithValueString(string(code))

	result, err := a.client.GraphQL().Get().
		WithClassName(knowledgeClassName).
		WithFields(fields...).
		WithNearText(nearText).
		WithWhere(where).
		WithLimit(limit).
		Do(ctx)
	if err := graphqlError(result, err); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("knowledge search failed").
			WithCause(err)
	}

	var hits []types.SearchHit
	for _, raw := range classObjects(result) {
		hit := types.SearchHit{}
		if content, ok := raw["content"].(string); ok {
			hit.Content = content
		}
		if category, ok := raw["category"].(string); ok {
			hit.Category = types.Category(category)
		}
		if additional, ok := raw["_additional"].(map[string]any); ok {
			if distance, ok := additional["distance"].(float64); ok {
				hit.Score = 1 - float32(distance)
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Exists reports whether any object is stored for the type/category pair.
func (a *WeaviateStoreAdapter) Exists(ctx context.Context, code types.TypeCode, category types.Category) (bool, error) {
	where := filters.Where().
		WithOperator(filters.And).
		WithOperands([]*filters.WhereBuilder{
			filters.Where().WithPath([]string{"type"}).WithOperator(filters.Equal).WithValueString(string(code)),
			filters.Where().WithPath([]string{"category"}).WithOperator(filters.Equal).WithValueString(string(category)),
		})

	result, err := a.client.GraphQL().Get().
		WithClassName(knowledgeClassName).
		WithFields(graphql.Field{Name: "type"}).
		WithWhere(where).
		WithLimit(1).
		Do(ctx)
	if err := graphqlError(result, err); err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("existence check failed").
			WithCause(err)
	}
	return len(classObjects(result)) > 0, nil
}

// Insert batch-imports knowledge objects.
func (a *WeaviateStoreAdapter) Insert(ctx context.Context, objects []types.KnowledgeObject) error {
	if len(objects) == 0 {
		return nil
	}
	batch := make([]*models.Object, 0, len(objects))
	for _, object := range objects {
		batch = append(batch, &models.Object{
			Class: knowledgeClassName,
			ID:    strfmt.UUID(uuid.NewString()),
			Properties: map[string]any{
				"content":  object.Content,
				"type":     string(object.Type),
				"category": string(object.Category),
				"source":   object.Source,
			},
		})
	}

	responses, err := a.client.Batch().ObjectsBatcher().WithObjects(batch...).Do(ctx)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("batch insert failed").
			WithCause(err)
	}
	for _, response := range responses {
		if response.Result != nil && response.Result.Errors != nil && len(response.Result.Errors.Error) > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("batch insert rejected object: %s", response.Result.Errors.Error[0].Message))
		}
	}
	return nil
}

// Count returns the total number of stored knowledge objects.
func (a *WeaviateStoreAdapter) Count(ctx context.Context) (int, error) {
	meta := graphql.Field{Name: "meta", Fields: []graphql.Field{{Name: "count"}}}
	result, err := a.client.GraphQL().Aggregate().
		WithClassName(knowledgeClassName).
		WithFields(meta).
		Do(ctx)
	if err := graphqlError(result, err); err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("count query failed").
			WithCause(err)
	}

	for _, raw := range aggregateObjects(result) {
		if metaField, ok := raw["meta"].(map[string]any); ok {
			if count, ok := metaField["count"].(float64); ok {
				return int(count), nil
			}
		}
	}
	return 0, nil
}

// DistinctTypes returns the type codes with at least one stored object,
// in sorted order.
func (a *WeaviateStoreAdapter) DistinctTypes(ctx context.Context) ([]types.TypeCode, error) {
	grouped := graphql.Field{Name: "groupedBy", Fields: []graphql.Field{{Name: "value"}}}
	result, err := a.client.GraphQL().Aggregate().
		WithClassName(knowledgeClassName).
		WithGroupBy("type").
		WithFields(grouped).
		Do(ctx)
	if err := graphqlError(result, err); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("distinct types query failed").
			WithCause(err)
	}

	var codes []types.TypeCode
	for _, raw := range aggregateObjects(result) {
		groupedBy, ok := raw["groupedBy"].(map[string]any)
		if !ok {
			continue
		}
		if value, ok := groupedBy["value"].(string); ok {
			codes = append(codes, types.TypeCode(value))
		}
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes, nil
}

// Ready reports whether the store answers readiness probes.
func (a *WeaviateStoreAdapter) Ready(ctx context.Context) bool {
	ready, err := a.client.Misc().ReadyChecker().Do(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("weaviate readiness probe failed")
		return false
	}
	return ready
}

// ServerVersion returns the store's reported version string.
func (a *WeaviateStoreAdapter) ServerVersion(ctx context.Context) (string, error) {
	meta, err := a.client.Misc().MetaGetter().Do(ctx)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read server meta").
			WithCause(err)
	}
	return meta.Version, nil
}

// graphqlError folds transport and in-band GraphQL errors into one.
func graphqlError(result *models.GraphQLResponse, err error) error {
	if err != nil {
		return err
	}
	if result != nil && len(result.Errors) > 0 {
		return fmt.Errorf("graphql: %s", result.Errors[0].Message)
	}
	return nil
}

// classObjects unpacks the Get payload for the knowledge class.
func classObjects(result *models.GraphQLResponse) []map[string]any {
	return graphqlPayload(result, "Get")
}

// aggregateObjects unpacks the Aggregate payload for the knowledge class.
func aggregateObjects(result *models.GraphQLResponse) []map[string]any {
	return graphqlPayload(result, "Aggregate")
}

func graphqlPayload(result *models.GraphQLResponse, root string) []map[string]any {
	if result == nil {
		return nil
	}
	rootValue, ok := result.Data[root]
	if !ok {
		return nil
	}
	byClass, ok := rootValue.(map[string]any)
	if !ok {
		return nil
	}
	items, ok := byClass[knowledgeClassName].([]any)
	if !ok {
		return nil
	}
	objects := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if object, ok := item.(map[string]any); ok {
			objects = append(objects, object)
		}
	}
	return objects
}
