package messaging

import (
	"errors"
	"strings"
	"time"
)

// MessageStatus is the two-party read receipt. With exactly two participants
// per conversation, "read" unambiguously means "read by the non-sender", so
// no per-reader cursor table is needed.
type MessageStatus string

const (
	StatusSent MessageStatus = "sent"
	StatusRead MessageStatus = "read"
)

// Message is an immutable log entry in a conversation. Only Status ever
// changes after creation, and only sent -> read.
type Message struct {
	ID             string        `db:"id"`
	ConversationID string        `db:"conversation_id"`
	SenderEmail    string        `db:"sender_email"`
	Content        string        `db:"content"`
	Tone           string        `db:"tone"`
	Timestamp      time.Time     `db:"created_at"`
	Status         MessageStatus `db:"status"`
}

// NewMessage validates and normalizes a message before it is persisted.
func NewMessage(conversationID, senderEmail, content, tone string) (*Message, error) {
	content = strings.TrimSpace(content)
	if conversationID == "" || senderEmail == "" {
		return nil, errors.New("messaging: conversation id and sender are required")
	}
	if content == "" {
		return nil, errors.New("messaging: message content is required")
	}

	return &Message{
		ConversationID: conversationID,
		SenderEmail:    senderEmail,
		Content:        content,
		Tone:           tone,
		Timestamp:      time.Now().UTC(),
		Status:         StatusSent,
	}, nil
}

// ReadView returns the messages as the reader sees them after fetching the
// thread: every message from the other participant shows as read, the
// reader's own messages keep their stored status. The input slice is not
// mutated; the persisted transition happens separately in storage.
func ReadView(msgs []Message, reader string) []Message {
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		if m.SenderEmail != reader {
			m.Status = StatusRead
		}
		out[i] = m
	}
	return out
}

// CountUnread counts messages the viewer has not read yet. Messages the
// viewer sent are never counted against them.
func CountUnread(msgs []Message, viewer string) int {
	n := 0
	for _, m := range msgs {
		if m.SenderEmail != viewer && m.Status != StatusRead {
			n++
		}
	}
	return n
}
