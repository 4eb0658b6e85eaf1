package app

import (
	"context"
	"strings"
)

func (s Service) Discuss(ctx context.Context, req DiscussRequest) (DiscussResult, error) {
	discussion, err := s.orchestrator().GroupDiscussion(ctx, strings.TrimSpace(req.Topic), req.Participants, req.Rounds)
	if err != nil {
		return DiscussResult{}, err
	}
	return DiscussResult{Discussion: discussion}, nil
}
