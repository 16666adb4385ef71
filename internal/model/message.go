package model

import "time"

// Role identifies who authored a chat message.
type Role string

// Chat roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one entry in the chat log.
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Module    *Module   `json:"module,omitempty"`
}
