package guidance

import (
	"context"
	"errors"
	"testing"

	"healthhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	prompt string
	reply  string
	err    error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestAskAssemblesPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "Please rest and stay hydrated."}
	svc := &DefaultGuidanceService{Gen: gen}

	resp, err := svc.Ask(context.Background(), models.GuidanceRequest{
		UserInput: "I have a mild fever",
		PastMessages: []models.ChatMessage{
			{Role: models.ChatRoleUser, Content: "Hello"},
			{Role: models.ChatRoleAssistant, Content: "How can I help?"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Please rest and stay hydrated.", resp.Response)

	assert.Contains(t, gen.prompt, systemInstruction)
	assert.Contains(t, gen.prompt, "user: Hello")
	assert.Contains(t, gen.prompt, "assistant: How can I help?")
	assert.Contains(t, gen.prompt, "User Input: I have a mild fever")
}

func TestAskRejectsEmptyInput(t *testing.T) {
	svc := &DefaultGuidanceService{Gen: &fakeGenerator{reply: "hi"}}

	_, err := svc.Ask(context.Background(), models.GuidanceRequest{UserInput: "   "})
	assert.Equal(t, CodeInvalidInput, ErrorCode(err))
}

func TestAskRejectsUnknownRole(t *testing.T) {
	svc := &DefaultGuidanceService{Gen: &fakeGenerator{reply: "hi"}}

	_, err := svc.Ask(context.Background(), models.GuidanceRequest{
		UserInput:    "hello",
		PastMessages: []models.ChatMessage{{Role: "system", Content: "x"}},
	})
	assert.Equal(t, CodeInvalidInput, ErrorCode(err))
}

func TestAskGeneratorFailure(t *testing.T) {
	svc := &DefaultGuidanceService{Gen: &fakeGenerator{err: errors.New("transport down")}}

	_, err := svc.Ask(context.Background(), models.GuidanceRequest{UserInput: "hello"})
	assert.Equal(t, CodeUnavailable, ErrorCode(err))
}

func TestAskEmptyReply(t *testing.T) {
	svc := &DefaultGuidanceService{Gen: &fakeGenerator{reply: "  "}}

	_, err := svc.Ask(context.Background(), models.GuidanceRequest{UserInput: "hello"})
	assert.Equal(t, CodeUnavailable, ErrorCode(err))
}

func TestAskWithoutGenerator(t *testing.T) {
	svc := &DefaultGuidanceService{}

	_, err := svc.Ask(context.Background(), models.GuidanceRequest{UserInput: "hello"})
	assert.Equal(t, CodeUnavailable, ErrorCode(err))
}
