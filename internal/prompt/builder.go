package prompt

import "github.com/easeaico/companion-web/internal/types"

// HistoryWindow is how many of the most recent history messages are sent
// with each turn. Older messages are dropped, not summarized.
const HistoryWindow = 10

// Role is the speaker role understood by the completion provider.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// RoleMessage is one entry of the outgoing completion request.
type RoleMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Assemble builds the messages for one chat turn: the system prompt, the last
// HistoryWindow messages of history in their original order, and the new user
// message. history is not modified and message contents are not validated.
func Assemble(systemPrompt string, history []types.Message, newUserMessage string) []RoleMessage {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	messages := make([]RoleMessage, 0, len(history)+2)
	messages = append(messages, RoleMessage{Role: RoleSystem, Content: systemPrompt})
	for _, msg := range history {
		role := RoleAssistant
		if msg.Sender == types.SenderUser {
			role = RoleUser
		}
		messages = append(messages, RoleMessage{Role: role, Content: msg.Content})
	}
	messages = append(messages, RoleMessage{Role: RoleUser, Content: newUserMessage})
	return messages
}
