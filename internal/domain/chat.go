package domain

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// ChatMessage is one entry of a session's append-only conversation history.
// Messages are never edited or removed once appended.
type ChatMessage struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}
