package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// WelcomeMessage opens a fresh mentor conversation.
const WelcomeMessage = "Hello! I'm your AI financial mentor. I can analyze your financial data and provide personalized advice. What would you like to know about your finances today?"

// Message is one entry of the mentor transcript.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// Validate checks the role and that content is present.
func (m Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidMessage, m.Role)
	}

	if strings.TrimSpace(m.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrInvalidMessage)
	}

	return nil
}

// NewWelcomeMessage returns the assistant greeting stamped at now.
func NewWelcomeMessage(now time.Time) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   WelcomeMessage,
		Timestamp: now,
	}
}
