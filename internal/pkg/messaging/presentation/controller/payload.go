package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	"github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// ConversationPayload serializes a freshly created conversation with zero counts.
func ConversationPayload(c *messaging.Conversation) gin.H {
	return gin.H{
		"id":            c.ID,
		"subject":       c.Subject,
		"category":      c.Category,
		"participants":  c.Participants,
		"messageCount":  0,
		"unreadCount":   0,
		"lastMessageAt": nil,
		"isStarred":     c.IsStarred,
		"isArchived":    c.IsArchived,
		"createdAt":     c.CreatedAt.Format(time.RFC3339),
	}
}

// SummaryPayload serializes one inbox row.
func SummaryPayload(s *messaging.ConversationSummary) gin.H {
	var lastMessageAt any
	if s.LastMessageAt != nil {
		lastMessageAt = s.LastMessageAt.Format(time.RFC3339)
	}
	return gin.H{
		"id":            s.ID,
		"subject":       s.Subject,
		"category":      s.Category,
		"participants":  s.Participants,
		"messageCount":  s.MessageCount,
		"unreadCount":   s.UnreadCount,
		"lastMessageAt": lastMessageAt,
		"isStarred":     s.IsStarred,
		"isArchived":    s.IsArchived,
		"createdAt":     s.CreatedAt.Format(time.RFC3339),
	}
}

// MessagePayload serializes a single message.
func MessagePayload(m *messaging.Message) gin.H {
	return gin.H{
		"id":             m.ID,
		"conversationId": m.ConversationID,
		"senderEmail":    m.SenderEmail,
		"content":        m.Content,
		"tone":           m.Tone,
		"timestamp":      m.Timestamp.Format(time.RFC3339),
		"status":         string(m.Status),
	}
}

// respondError maps use case failures onto the HTTP error taxonomy:
// 404 unknown conversation/family, 403 non-participant, 400 unlinked family
// or invalid input, 500 storage failures (logged, never leaked).
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
	case errors.Is(err, familyrepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Family not found"})
	case errors.Is(err, messaging.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, messaging.ErrFamilyNotLinked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot create conversation until family is linked with both parents"})
	case errors.Is(err, usecase.ErrPersistence):
		log.Printf("messaging: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
