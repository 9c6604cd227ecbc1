package guidance

import (
	"context"

	"healthhub/models"
)

// GuidanceService adapts one chat turn to the text-generation backend.
// No conversation state is kept server-side; the client replays the
// history each turn.
type GuidanceService interface {
	Ask(ctx context.Context, req models.GuidanceRequest) (*models.GuidanceResponse, error)
}

// Generator is the text-generation black box behind the gateway.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
