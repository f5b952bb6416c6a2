package messaging

import (
	"sort"
	"time"
)

// ConversationSummary is the inbox view of one thread: the conversation
// fields plus counts recomputed from the live message set, never cached.
type ConversationSummary struct {
	Conversation
	MessageCount  int
	UnreadCount   int
	LastMessageAt *time.Time
}

// Summarize derives the viewer-specific inbox row for a conversation from
// its full message sequence (ordered oldest first).
func Summarize(c Conversation, msgs []Message, viewer string) ConversationSummary {
	s := ConversationSummary{
		Conversation: c,
		MessageCount: len(msgs),
		UnreadCount:  CountUnread(msgs, viewer),
	}
	if len(msgs) > 0 {
		last := msgs[len(msgs)-1].Timestamp
		s.LastMessageAt = &last
	}
	return s
}

// LastActivity prefers the recomputed newest-message timestamp over the
// conversation's stored watermark.
func (s *ConversationSummary) LastActivity() time.Time {
	if s.LastMessageAt != nil {
		return *s.LastMessageAt
	}
	return s.CreatedAt
}

// SortByActivity orders summaries most recently active first.
func SortByActivity(summaries []ConversationSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastActivity().After(summaries[j].LastActivity())
	})
}
