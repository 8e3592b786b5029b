package memory

import (
	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
)

// counter is the staged board state of a transaction. It mints message
// indices and never hands out the same value twice.
type counter struct {
	board *domain.BoardState
	limit domain.MessageCount
	dirty bool
}

func (c *counter) peek() (domain.MessageCount, error) {
	if c.board == nil {
		return 0, internal_errors.New(internal_errors.ErrNotFound, "Board not initialized")
	}
	return c.board.MessageCount, nil
}

func (c *counter) next() (domain.MsgIndex, error) {
	current, err := c.peek()
	if err != nil {
		return 0, err
	}
	if current >= c.limit {
		return 0, internal_errors.New(internal_errors.ErrCounterExhausted, "Message counter exhausted")
	}
	c.board.MessageCount = current + 1
	c.dirty = true
	return current, nil
}
