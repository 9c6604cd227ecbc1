package guidance

import (
	"context"
	"strings"

	"healthhub/models"
	"healthhub/utils"

	"go.uber.org/zap"
)

// systemInstruction frames every guidance turn. The assistant gives
// general health information only, never diagnoses or prescribes, and
// steers users toward booking a consultation.
const systemInstruction = `You are a helpful AI assistant providing preliminary medical guidance. Provide basic health information based on the user's query and suggest if they should book a telemedicine appointment. Do not provide diagnosis or treatment plans. If the user asks a question outside of your scope, gently redirect them to consult with a healthcare professional. Incorporate relevant past messages to maintain context.`

// DefaultGuidanceService is the concrete gateway. One prompt, one
// generator call, no retries, no server-side state.
type DefaultGuidanceService struct {
	Gen Generator
}

// Ask validates the turn, assembles the prompt and forwards it to the
// generator. Any transport failure or empty reply surfaces as
// guidanceUnavailable; cancellation propagates through ctx.
func (s *DefaultGuidanceService) Ask(ctx context.Context, req models.GuidanceRequest) (*models.GuidanceResponse, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(req.UserInput) == "" {
		return nil, NewGuidanceError(CodeInvalidInput, "userInput must not be empty")
	}
	for _, m := range req.PastMessages {
		if m.Role != models.ChatRoleUser && m.Role != models.ChatRoleAssistant {
			return nil, NewGuidanceError(CodeInvalidInput, "past message role must be user or assistant")
		}
	}

	if s.Gen == nil {
		return nil, NewGuidanceError(CodeUnavailable, "the guidance service is not configured")
	}

	prompt := buildPrompt(req)
	reply, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Warn("guidance generation failed", zap.Error(err))
		return nil, NewGuidanceError(CodeUnavailable, "the guidance service is currently unavailable")
	}
	if strings.TrimSpace(reply) == "" {
		return nil, NewGuidanceError(CodeUnavailable, "the guidance service returned an empty response")
	}

	return &models.GuidanceResponse{Response: reply}, nil
}

// buildPrompt concatenates the system instruction, the ordered history
// and the new input into a single prompt.
func buildPrompt(req models.GuidanceRequest) string {
	var sb strings.Builder
	sb.WriteString(systemInstruction)
	sb.WriteString("\n\nPast Messages:\n")
	for _, m := range req.PastMessages {
		sb.WriteString("  ")
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("\nUser Input: ")
	sb.WriteString(req.UserInput)
	return sb.String()
}
