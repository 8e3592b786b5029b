package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
	sharedpg "github.com/itchan-dev/msgboard/shared/storage/pg"
)

func getBoard(ctx context.Context, q sharedpg.Querier) (domain.BoardState, error) {
	var board domain.BoardState
	err := q.QueryRowContext(ctx, `
	SELECT authority, message_count
	FROM board_state
	WHERE id = 1`).Scan(&board.Authority, &board.MessageCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BoardState{}, internal_errors.New(internal_errors.ErrNotFound, "Board not initialized")
		}
		return domain.BoardState{}, fmt.Errorf("failed to fetch board: %w", err)
	}
	return board, nil
}

func (s *Storage) GetBoard(ctx context.Context) (domain.BoardState, error) {
	return getBoard(ctx, s.db)
}

func (t *tx) Board(ctx context.Context) (domain.BoardState, error) {
	return getBoard(ctx, t.q)
}

func (t *tx) CreateBoard(ctx context.Context, authority domain.Identity) (domain.BoardState, error) {
	_, err := t.q.ExecContext(ctx, `
	INSERT INTO board_state (id, authority, message_count)
	VALUES (1, $1, 0)`, authority)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return domain.BoardState{}, internal_errors.New(internal_errors.ErrAlreadyInitialized, "Board already initialized")
		}
		return domain.BoardState{}, fmt.Errorf("failed to create board: %w", err)
	}
	return domain.BoardState{Authority: authority}, nil
}

func (t *tx) NextIndex(ctx context.Context) (domain.MsgIndex, error) {
	var index domain.MsgIndex
	err := t.q.QueryRowContext(ctx, `
	UPDATE board_state
	SET message_count = message_count + 1
	WHERE id = 1 AND message_count < $1
	RETURNING message_count - 1`, int64(t.limit)).Scan(&index)
	if err == nil {
		return index, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to increment message counter: %w", err)
	}

	// no row updated: either no board or the counter hit the limit
	if _, err := getBoard(ctx, t.q); err != nil {
		return 0, err
	}
	return 0, internal_errors.New(internal_errors.ErrCounterExhausted, "Message counter exhausted")
}
