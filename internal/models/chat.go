package models

// Role identifies who authored a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ParseRole maps the wire value to a Role. Anything unrecognized
// (including the empty string) defaults to RoleUser.
func ParseRole(s string) Role {
	switch s {
	case string(RoleAssistant):
		return RoleAssistant
	case string(RoleSystem):
		return RoleSystem
	default:
		return RoleUser
	}
}

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatQuery is the payload sent to the chat endpoint.
type ChatQuery struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
}

// ChatResponse is the reply from the assistant. Answer is null when a
// pre-seeded greeting was stored without calling the completion service.
type ChatResponse struct {
	Answer *string `json:"answer"`
	Status string  `json:"status,omitempty"`
}

// VehicleInfo is a vehicle detected in a user message, mapped to its
// size category from the vehicle-size reference.
type VehicleInfo struct {
	MakeModel string `json:"make_model"`
	Size      string `json:"size"`
}
