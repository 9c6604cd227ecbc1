package models

// Chat roles accepted in guidance history.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn in a guidance conversation. The server keeps
// no conversation state; the client replays the history on every call.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GuidanceRequest is the input for a guidance chat turn.
type GuidanceRequest struct {
	UserInput    string        `json:"userInput" binding:"required"`
	PastMessages []ChatMessage `json:"pastMessages,omitempty"`
}

// GuidanceResponse wraps the model's reply.
type GuidanceResponse struct {
	Response string `json:"response"`
}
