package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mbti-chat/internal/manifest"
	"mbti-chat/internal/shared"
)

// ManifestInspect loads a requirements manifest and reports any
// consistency problems alongside its parsed contents.
func (s Service) ManifestInspect(req ManifestInspectRequest) (ManifestInspectResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return ManifestInspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	loaded, err := s.Manifests.Load(path)
	if err != nil {
		return ManifestInspectResult{}, err
	}
	return ManifestInspectResult{
		Manifest: loaded,
		Problems: manifest.Validate(loaded),
	}, nil
}

// ManifestCheck reports whether a concrete version satisfies the
// manifest's requirement for one package.
func (s Service) ManifestCheck(req ManifestCheckRequest) (ManifestCheckResult, error) {
	loaded, err := s.Manifests.Load(strings.TrimSpace(req.Path))
	if err != nil {
		return ManifestCheckResult{}, err
	}

	wanted := shared.NormalizeRequirementName(req.Name)
	for _, requirement := range loaded.Requirements {
		if requirement.NormalizedName != wanted {
			continue
		}
		satisfied, err := manifest.Check(requirement, req.Version)
		if err != nil {
			return ManifestCheckResult{}, err
		}
		return ManifestCheckResult{Requirement: requirement, Satisfied: satisfied}, nil
	}
	return ManifestCheckResult{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("package " + wanted + " is not in the manifest")
}
