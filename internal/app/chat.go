package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Chat(ctx context.Context, req ChatRequest) (ChatResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return ChatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("query is required")
	}
	response, err := s.orchestrator().ChatWithType(ctx, query, req.Type)
	if err != nil {
		return ChatResult{}, err
	}
	return ChatResult{Response: response}, nil
}

func (s Service) MultiChat(ctx context.Context, req MultiChatRequest) (MultiChatResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return MultiChatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("query is required")
	}
	responses, err := s.orchestrator().MultiChat(ctx, query, req.Types, req.Num)
	if err != nil {
		return MultiChatResult{}, err
	}
	return MultiChatResult{Responses: responses}, nil
}
