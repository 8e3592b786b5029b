package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
	sharedpg "github.com/itchan-dev/msgboard/shared/storage/pg"
)

const messageColumns = `message_index, address, author, title, content, created_us`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (domain.Message, error) {
	var (
		msg       domain.Message
		createdUs int64
	)
	if err := row.Scan(&msg.Index, &msg.Address, &msg.Author, &msg.Title, &msg.Content, &createdUs); err != nil {
		return domain.Message{}, err
	}
	msg.Timestamp = time.UnixMicro(createdUs).UTC()
	return msg, nil
}

func getMessage(ctx context.Context, q sharedpg.Querier, index domain.MsgIndex) (domain.Message, error) {
	msg, err := scanMessage(q.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE message_index = ?`, int64(index)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Message{}, internal_errors.New(internal_errors.ErrNotFound, "Message not found")
		}
		return domain.Message{}, fmt.Errorf("failed to fetch message: %w", err)
	}
	return msg, nil
}

func (s *Storage) GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error) {
	return getMessage(ctx, s.db, index)
}

func (s *Storage) ListMessages(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT `+messageColumns+`
	FROM messages
	WHERE message_index >= ?
	ORDER BY message_index
	LIMIT ?`, int64(from), storage.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return messages, nil
}

func (t *tx) GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error) {
	return getMessage(ctx, t.q, index)
}

func (t *tx) PutMessage(ctx context.Context, msg domain.Message) error {
	_, err := getMessage(ctx, t.q, msg.Index)
	if err == nil {
		return internal_errors.New(internal_errors.ErrAlreadyExists, "Message index already taken")
	}
	if !errors.Is(err, internal_errors.ErrNotFound) {
		return err
	}

	_, err = t.q.ExecContext(ctx, `
	INSERT INTO messages (`+messageColumns+`)
	VALUES (?, ?, ?, ?, ?, ?)`,
		int64(msg.Index), msg.Address, msg.Author, msg.Title, msg.Content, msg.Timestamp.UnixMicro())
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (t *tx) UpdateMessage(ctx context.Context, index domain.MsgIndex, mutate func(*domain.Message) error) (domain.Message, error) {
	msg, err := getMessage(ctx, t.q, index)
	if err != nil {
		return domain.Message{}, err
	}
	updated := msg
	if err := mutate(&updated); err != nil {
		return domain.Message{}, err
	}
	msg.Title, msg.Content = updated.Title, updated.Content

	_, err = t.q.ExecContext(ctx, `UPDATE messages SET title = ?, content = ? WHERE message_index = ?`,
		msg.Title, msg.Content, int64(index))
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to update message: %w", err)
	}
	return msg, nil
}

func (t *tx) RemoveMessage(ctx context.Context, index domain.MsgIndex) error {
	result, err := t.q.ExecContext(ctx, `DELETE FROM messages WHERE message_index = ?`, int64(index))
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.New(internal_errors.ErrNotFound, "Message not found")
	}
	return nil
}
