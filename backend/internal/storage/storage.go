// Package storage defines the persistence contract of the message board.
//
// A Storage runs every lifecycle operation as a single transaction (WithTx):
// the callback sees a Tx that exposes the board counter and the record store,
// and either all of its writes are committed or none are. Transactions against
// one Storage are serialized.
package storage

import (
	"context"

	"github.com/itchan-dev/msgboard/shared/domain"
)

// MaxListLimit caps ListMessages page size for every engine.
const MaxListLimit = 200

// Tx is the view of the board inside one atomic unit.
type Tx interface {
	// Board returns the board state. errors.ErrNotFound if not initialized.
	Board(ctx context.Context) (domain.BoardState, error)
	// CreateBoard stores a fresh board. errors.ErrAlreadyInitialized if one exists.
	CreateBoard(ctx context.Context, authority domain.Identity) (domain.BoardState, error)
	// NextIndex returns the current counter value and increments it.
	// errors.ErrNotFound without a board, errors.ErrCounterExhausted on overflow.
	NextIndex(ctx context.Context) (domain.MsgIndex, error)

	GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error)
	// PutMessage inserts msg under msg.Index. errors.ErrAlreadyExists if occupied.
	PutMessage(ctx context.Context, msg domain.Message) error
	// UpdateMessage applies mutate to the stored message and persists the result.
	UpdateMessage(ctx context.Context, index domain.MsgIndex, mutate func(*domain.Message) error) (domain.Message, error)
	RemoveMessage(ctx context.Context, index domain.MsgIndex) error
}

// Reader serves committed state outside of transactions.
type Reader interface {
	GetBoard(ctx context.Context) (domain.BoardState, error)
	GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error)
	// ListMessages returns live messages with Index >= from in index order.
	ListMessages(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error)
}

type Storage interface {
	Reader
	WithTx(ctx context.Context, fn func(Tx) error) error
	Ping(ctx context.Context) error
	Cleanup() error
}

// ClampLimit normalizes a page size to (0, MaxListLimit].
func ClampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
