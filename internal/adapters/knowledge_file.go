package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"mbti-chat/internal/types"
)

// KnowledgeFileAdapter serves knowledge-base content from a YAML seed
// corpus instead of generating it, for offline imports and tests.
type KnowledgeFileAdapter struct {
	objects map[string]types.KnowledgeObject
}

// seedCorpus is the on-disk format: a flat list of knowledge objects.
type seedCorpus struct {
	Knowledge []types.KnowledgeObject `yaml:"knowledge"`
}

func NewKnowledgeFileAdapter(path string) (KnowledgeFileAdapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KnowledgeFileAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("seed corpus file not found").
			WithCause(err)
	}
	var corpus seedCorpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return KnowledgeFileAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse seed corpus yaml").
			WithCause(err)
	}

	objects := make(map[string]types.KnowledgeObject, len(corpus.Knowledge))
	for _, object := range corpus.Knowledge {
		if !types.IsValidType(object.Type) {
			return KnowledgeFileAdapter{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("seed corpus entry has invalid type %q", object.Type))
		}
		if object.Source == "" {
			object.Source = "seed"
		}
		objects[seedKey(object.Type, object.Category)] = object
	}
	return KnowledgeFileAdapter{objects: objects}, nil
}

func (a KnowledgeFileAdapter) Content(_ context.Context, code types.TypeCode, category types.Category) (types.KnowledgeObject, error) {
	object, ok := a.objects[seedKey(code, category)]
	if !ok {
		return types.KnowledgeObject{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no seed content for %s/%s", code, category))
	}
	return object, nil
}

func seedKey(code types.TypeCode, category types.Category) string {
	return string(code) + "/" + string(category)
}
