// Package memory is an in-process storage engine. Transactions stage their
// writes and apply them on success while holding the single writer lock.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
)

var _ storage.Storage = (*Storage)(nil)

type Storage struct {
	mu       sync.RWMutex
	board    *domain.BoardState
	messages map[domain.MsgIndex]domain.Message
	limit    domain.MessageCount
}

type Option func(*Storage)

// WithCounterLimit caps the message counter. Defaults to math.MaxUint64.
func WithCounterLimit(limit domain.MessageCount) Option {
	return func(s *Storage) { s.limit = limit }
}

func New(opts ...Option) *Storage {
	s := &Storage{
		messages: make(map[domain.MsgIndex]domain.Message),
		limit:    math.MaxUint64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) WithTx(ctx context.Context, fn func(storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{
		counter: counter{limit: s.limit},
		records: newRecords(s.messages),
	}
	if s.board != nil {
		staged := *s.board
		t.counter.board = &staged
	}

	if err := fn(t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.counter.dirty {
		s.board = t.counter.board
	}
	t.records.commit()
	return nil
}

func (s *Storage) GetBoard(ctx context.Context) (domain.BoardState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.board == nil {
		return domain.BoardState{}, internal_errors.New(internal_errors.ErrNotFound, "Board not initialized")
	}
	return *s.board, nil
}

func (s *Storage) GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.messages[index]
	if !ok {
		return domain.Message{}, internal_errors.New(internal_errors.ErrNotFound, "Message not found")
	}
	return msg, nil
}

func (s *Storage) ListMessages(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error) {
	limit = storage.ClampLimit(limit)

	s.mu.RLock()
	defer s.mu.RUnlock()

	indices := make([]domain.MsgIndex, 0, len(s.messages))
	for index := range s.messages {
		if index >= from {
			indices = append(indices, index)
		}
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	if len(indices) > limit {
		indices = indices[:limit]
	}

	messages := make([]domain.Message, 0, len(indices))
	for _, index := range indices {
		messages = append(messages, s.messages[index])
	}
	return messages, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Cleanup() error {
	return nil
}

type tx struct {
	counter counter
	records *records
}

func (t *tx) Board(ctx context.Context) (domain.BoardState, error) {
	if _, err := t.counter.peek(); err != nil {
		return domain.BoardState{}, err
	}
	return *t.counter.board, nil
}

func (t *tx) CreateBoard(ctx context.Context, authority domain.Identity) (domain.BoardState, error) {
	if t.counter.board != nil {
		return domain.BoardState{}, internal_errors.New(internal_errors.ErrAlreadyInitialized, "Board already initialized")
	}
	t.counter.board = &domain.BoardState{Authority: authority}
	t.counter.dirty = true
	return *t.counter.board, nil
}

func (t *tx) NextIndex(ctx context.Context) (domain.MsgIndex, error) {
	return t.counter.next()
}

func (t *tx) GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error) {
	return t.records.get(index)
}

func (t *tx) PutMessage(ctx context.Context, msg domain.Message) error {
	return t.records.put(msg)
}

func (t *tx) UpdateMessage(ctx context.Context, index domain.MsgIndex, mutate func(*domain.Message) error) (domain.Message, error) {
	return t.records.update(index, mutate)
}

func (t *tx) RemoveMessage(ctx context.Context, index domain.MsgIndex) error {
	return t.records.remove(index)
}
