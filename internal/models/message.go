package models

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single transcript entry. Messages are immutable once created
// and only ever appended to the transcript.
type Message struct {
	Role    string // RoleUser or RoleAssistant
	Content string
}
