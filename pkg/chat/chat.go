package chat

const (
	ChatRoleUser   = "user"      // Player choice
	ChatRoleAgent  = "assistant" // Narrator / story continuation
	ChatRoleSystem = "system"    // Prompt instructions
)

// ChatMessage represents a single message in the session history
// and in prompts sent to the LLM. The role/content structure matches
// the OpenAI chat completions API.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}
