package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

var _ repository.ConversationRepository = (*PgConversationRepository)(nil)

func (r *PgConversationRepository) CreateConversation(ctx context.Context, c messaging.Conversation) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgConversationRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messaging.conversation (family_id, subject, category, participants, is_starred, is_archived, created_at, last_message_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text
	`, c.FamilyID, c.Subject, c.Category, c.Participants, c.IsStarred, c.IsArchived, c.CreatedAt, c.LastMessageAt).Scan(&id)
	return id, err
}

func (r *PgConversationRepository) GetConversation(ctx context.Context, id string) (*messaging.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	var c messaging.Conversation
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, family_id::text, subject, category, participants, is_starred, is_archived, created_at, last_message_at
		FROM messaging.conversation
		WHERE id = $1::uuid
	`, id).Scan(&c.ID, &c.FamilyID, &c.Subject, &c.Category, &c.Participants, &c.IsStarred, &c.IsArchived, &c.CreatedAt, &c.LastMessageAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgConversationRepository) ListConversationsByFamily(ctx context.Context, familyID string, includeArchived bool) ([]messaging.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, family_id::text, subject, category, participants, is_starred, is_archived, created_at, last_message_at
		FROM messaging.conversation
		WHERE family_id = $1::uuid AND (is_archived = false OR $2)
		ORDER BY created_at
	`, familyID, includeArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []messaging.Conversation
	for rows.Next() {
		var c messaging.Conversation
		if err := rows.Scan(&c.ID, &c.FamilyID, &c.Subject, &c.Category, &c.Participants, &c.IsStarred, &c.IsArchived, &c.CreatedAt, &c.LastMessageAt); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *PgConversationRepository) SetStarred(ctx context.Context, conversationID string, starred bool) error {
	if r == nil || r.pool == nil {
		return errors.New("PgConversationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE messaging.conversation
		SET is_starred = $2
		WHERE id = $1::uuid
	`, conversationID, starred)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetArchived is one-way and idempotent: archiving an archived thread is a
// no-op success.
func (r *PgConversationRepository) SetArchived(ctx context.Context, conversationID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgConversationRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE messaging.conversation
		SET is_archived = true
		WHERE id = $1::uuid
	`, conversationID)
	return err
}

func (r *PgConversationRepository) SetLastMessageAt(ctx context.Context, conversationID string, at time.Time) error {
	if r == nil || r.pool == nil {
		return errors.New("PgConversationRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE messaging.conversation
		SET last_message_at = $2
		WHERE id = $1::uuid
	`, conversationID, at)
	return err
}

func (r *PgConversationRepository) SaveMessage(ctx context.Context, m messaging.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgConversationRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messaging.message (conversation_id, sender_email, content, tone, created_at, status)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, m.ConversationID, m.SenderEmail, m.Content, m.Tone, m.Timestamp, string(m.Status)).Scan(&id)
	return id, err
}

// ListMessages returns the full thread oldest first. The seq tiebreak keeps
// insertion order stable for equal timestamps.
func (r *PgConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]messaging.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, conversation_id::text, sender_email, content, tone, created_at, status
		FROM messaging.message
		WHERE conversation_id = $1::uuid
		ORDER BY created_at ASC, seq ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []messaging.Message
	for rows.Next() {
		var (
			m      messaging.Message
			status string
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderEmail, &m.Content, &m.Tone, &m.Timestamp, &status); err != nil {
			return nil, err
		}
		m.Status = messaging.MessageStatus(status)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// MarkMessagesRead is the bulk sent -> read transition: one conditional
// update matching only the other participant's unread messages.
func (r *PgConversationRepository) MarkMessagesRead(ctx context.Context, conversationID, readerEmail string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgConversationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE messaging.message
		SET status = 'read'
		WHERE conversation_id = $1::uuid AND sender_email <> $2 AND status <> 'read'
	`, conversationID, readerEmail)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *PgConversationRepository) SaveNotification(ctx context.Context, n messaging.Notification) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgConversationRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messaging.notification (recipient_email, conversation_id, message_id, subject, created_at, read_at)
		VALUES ($1, $2::uuid, $3::uuid, $4, $5, $6)
		RETURNING id::text
	`, n.RecipientEmail, n.ConversationID, n.MessageID, n.Subject, n.CreatedAt, n.ReadAt).Scan(&id)
	return id, err
}

func (r *PgConversationRepository) ListUnreadNotifications(ctx context.Context, recipientEmail string) ([]messaging.Notification, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, recipient_email, conversation_id::text, message_id::text, subject, created_at, read_at
		FROM messaging.notification
		WHERE recipient_email = $1 AND read_at IS NULL
		ORDER BY created_at DESC
	`, recipientEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ns []messaging.Notification
	for rows.Next() {
		var n messaging.Notification
		if err := rows.Scan(&n.ID, &n.RecipientEmail, &n.ConversationID, &n.MessageID, &n.Subject, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, rows.Err()
}
