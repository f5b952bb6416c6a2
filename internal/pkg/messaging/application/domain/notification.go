package messaging

import "time"

// Notification is a best-effort "new message" alert for the recipient,
// written by the background worker after a send. Losing one never affects
// the message itself.
type Notification struct {
	ID             string     `db:"id"`
	RecipientEmail string     `db:"recipient_email"`
	ConversationID string     `db:"conversation_id"`
	MessageID      string     `db:"message_id"`
	Subject        string     `db:"subject"`
	CreatedAt      time.Time  `db:"created_at"`
	ReadAt         *time.Time `db:"read_at"`
}
