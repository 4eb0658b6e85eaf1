package app

import "mbti-chat/internal/types"

type ChatRequest struct {
	Query string
	Type  types.TypeCode
}

type ChatResult struct {
	Response types.PersonaResponse
}

type MultiChatRequest struct {
	Query string
	Types []types.TypeCode
	Num   int
}

type MultiChatResult struct {
	Responses []types.PersonaResponse
}

type DiscussRequest struct {
	Topic        string
	Participants []types.TypeCode
	Rounds       int
}

type DiscussResult struct {
	Discussion types.Discussion
}

type SetupRequest struct {
	// Force re-imports pairs that already have stored content.
	Force bool
	// Types restricts the import to the listed types. Empty means all.
	Types []types.TypeCode
}

type SetupResult struct {
	Imported int
	Skipped  int
	Failed   int
}

type DoctorCheck struct {
	Name   string
	Status types.CheckStatus
	Detail string
}

type DoctorResult struct {
	Checks []DoctorCheck
}

// Healthy reports whether no check ended in an error status.
func (r DoctorResult) Healthy() bool {
	for _, check := range r.Checks {
		if check.Status == types.CheckStatusError {
			return false
		}
	}
	return true
}

type ManifestInspectRequest struct {
	Path string
}

type ManifestInspectResult struct {
	Manifest types.Manifest
	Problems []types.ManifestProblem
}

type ManifestCheckRequest struct {
	Path    string
	Name    string
	Version string
}

type ManifestCheckResult struct {
	Requirement types.Requirement
	Satisfied   bool
}
