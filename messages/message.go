// Package messages defines the role-tagged chat messages threaded through a
// workflow run and the flattening of a message list into a single text prompt.
package messages

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Known reports whether the role is one of the recognized chat roles.
// Messages with unknown roles are dropped during flattening.
func (r Role) Known() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message is a single turn in the conversation history.
type Message struct {
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	Sender    string          `json:"sender,omitempty"`
	Timestamp strfmt.DateTime `json:"timestamp"`
}

// System creates a system message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content, Timestamp: strfmt.DateTime(time.Now())}
}

// User creates a user message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content, Timestamp: strfmt.DateTime(time.Now())}
}

// Assistant creates an assistant message attributed to sender.
func Assistant(sender, content string) Message {
	return Message{Role: RoleAssistant, Content: content, Sender: sender, Timestamp: strfmt.DateTime(time.Now())}
}
