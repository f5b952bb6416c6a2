package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	qport "github.com/carolinadevia11/Bridge/internal/infrastructure/queue/port"
	"github.com/carolinadevia11/Bridge/internal/infrastructure/realtime"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/task"
	"github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// SendMessageController handles the send-message endpoint (one controller per
// endpoint). The message is persisted synchronously; notification fan-out to
// the queue and the websocket hub is best-effort and never fails the request.
type SendMessageController struct {
	UC    *usecase.SendMessageUseCase
	Queue qport.Client
	Hub   *realtime.Hub
}

func NewSendMessageController(repo repository.ConversationRepository, queue qport.Client, hub *realtime.Hub) *SendMessageController {
	return &SendMessageController{UC: usecase.NewSendMessageUseCase(repo), Queue: queue, Hub: hub}
}

type sendMessageRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	Content        string `json:"content" binding:"required"`
	Tone           string `json:"tone"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			RequesterEmail: id.Email,
			ConversationID: req.ConversationID,
			Content:        req.Content,
			Tone:           req.Tone,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		h.fanOut(ctx, res)

		c.JSON(http.StatusOK, MessagePayload(&res.Message))
	}
}

// fanOut enqueues the recipient notification and pushes the message to the
// recipient's live session if one is connected.
func (h *SendMessageController) fanOut(ctx context.Context, res *usecase.SendMessageResult) {
	if res.Recipient == "" {
		return
	}

	payload := task.NotifyMessagePayload{
		RecipientEmail: res.Recipient,
		ConversationID: res.Message.ConversationID,
		MessageID:      res.Message.ID,
		Subject:        res.Message.Content,
		SentAt:         res.Message.Timestamp,
	}
	if h.Queue != nil {
		if b, err := json.Marshal(payload); err == nil {
			opts := qport.EnqueueOption{Queue: "messaging", MaxRetry: 10}
			if _, err := h.Queue.Enqueue(ctx, qport.Task{Type: task.NotifyMessageTaskType, Payload: b}, opts); err != nil {
				log.Printf("send message: enqueue notification: %v", err)
			}
		}
	}

	if h.Hub != nil {
		frame := gin.H{"type": "message", "message": MessagePayload(&res.Message)}
		if b, err := json.Marshal(frame); err == nil {
			h.Hub.Notify(res.Recipient, b)
		}
	}
}
