package app

import (
	"context"
	"fmt"
	"strings"

	"mbti-chat/internal/ports"
	"mbti-chat/internal/shared"
	"mbti-chat/internal/types"
)

// Doctor runs connectivity and data diagnostics. Every check runs to
// completion; failures are reported, never raised.
func (s Service) Doctor(ctx context.Context) DoctorResult {
	result := DoctorResult{}
	result.Checks = append(result.Checks, s.checkVectorStore(ctx)...)
	result.Checks = append(result.Checks, s.checkProvider(ctx, types.ProviderOpenAI))
	result.Checks = append(result.Checks, s.checkProvider(ctx, types.ProviderLlamaCloud))
	result.Checks = append(result.Checks, s.checkKnowledgeData(ctx)...)
	return result
}

func (s Service) checkVectorStore(ctx context.Context) []DoctorCheck {
	if s.Vector == nil {
		return []DoctorCheck{{
			Name:   "weaviate",
			Status: types.CheckStatusWarn,
			Detail: "not configured",
		}}
	}
	if !s.Vector.Ready(ctx) {
		return []DoctorCheck{{
			Name:   "weaviate",
			Status: types.CheckStatusError,
			Detail: "readiness probe failed",
		}}
	}
	checks := []DoctorCheck{{Name: "weaviate", Status: types.CheckStatusOK, Detail: "ready"}}

	version, err := s.Vector.ServerVersion(ctx)
	if err != nil {
		checks = append(checks, DoctorCheck{
			Name:   "weaviate version",
			Status: types.CheckStatusWarn,
			Detail: err.Error(),
		})
		return checks
	}
	checks = append(checks, DoctorCheck{
		Name:   "weaviate version",
		Status: types.CheckStatusOK,
		Detail: version,
	})
	return checks
}

// checkProvider sends a tiny test completion through the provider.
func (s Service) checkProvider(ctx context.Context, provider types.Provider) DoctorCheck {
	name := string(provider)
	model, ok := s.Models[provider]
	if !ok {
		return DoctorCheck{Name: name, Status: types.CheckStatusWarn, Detail: "not configured"}
	}
	_, err := model.Generate(ctx, ports.GenerateRequest{
		SystemPrompt: "You are a connectivity probe.",
		Prompt:       "Say OK.",
		MaxTokens:    5,
	})
	if err != nil {
		return DoctorCheck{Name: name, Status: types.CheckStatusError, Detail: shared.Truncate(err.Error(), 200)}
	}
	return DoctorCheck{Name: name, Status: types.CheckStatusOK, Detail: "test completion succeeded"}
}

func (s Service) checkKnowledgeData(ctx context.Context) []DoctorCheck {
	if s.Vector == nil || !s.Vector.Ready(ctx) {
		return nil
	}

	var checks []DoctorCheck
	count, err := s.Vector.Count(ctx)
	switch {
	case err != nil:
		checks = append(checks, DoctorCheck{Name: "knowledge objects", Status: types.CheckStatusError, Detail: err.Error()})
	case count == 0:
		checks = append(checks, DoctorCheck{Name: "knowledge objects", Status: types.CheckStatusWarn, Detail: "no objects imported, run setup"})
	default:
		checks = append(checks, DoctorCheck{Name: "knowledge objects", Status: types.CheckStatusOK, Detail: fmt.Sprintf("%d objects", count)})
	}

	codes, err := s.Vector.DistinctTypes(ctx)
	if err != nil {
		checks = append(checks, DoctorCheck{Name: "covered types", Status: types.CheckStatusError, Detail: err.Error()})
		return checks
	}
	status := types.CheckStatusOK
	if len(codes) < len(types.AllTypes) {
		status = types.CheckStatusWarn
	}
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, string(code))
	}
	checks = append(checks, DoctorCheck{
		Name:   "covered types",
		Status: status,
		Detail: fmt.Sprintf("%d/%d: %s", len(codes), len(types.AllTypes), strings.Join(names, ", ")),
	})
	return checks
}
