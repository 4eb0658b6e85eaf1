package ports

import "mbti-chat/internal/types"

// ManifestSourcePort loads requirements manifests from storage.
type ManifestSourcePort interface {
	Load(path string) (types.Manifest, error)
}
