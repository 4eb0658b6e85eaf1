package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mbti-chat/internal/manifest"
	"mbti-chat/internal/types"
)

// ManifestFileAdapter loads pip requirements manifests from disk.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) Load(path string) (types.Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	defer file.Close()
	return manifest.Parse(file, path)
}
