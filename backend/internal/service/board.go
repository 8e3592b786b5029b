package service

import (
	"context"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/shared/domain"
	"github.com/itchan-dev/msgboard/shared/logger"
)

// to mock service in tests
type BoardService interface {
	Initialize(ctx context.Context, caller domain.Identity) (domain.BoardState, error)
	Get(ctx context.Context) (domain.BoardState, error)
}

type Board struct {
	storage BoardStorage
}

type BoardStorage interface {
	WithTx(ctx context.Context, fn func(storage.Tx) error) error
	GetBoard(ctx context.Context) (domain.BoardState, error)
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage}
}

func (b *Board) Initialize(ctx context.Context, caller domain.Identity) (domain.BoardState, error) {
	var board domain.BoardState
	err := b.storage.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		board, err = tx.CreateBoard(ctx, caller)
		return err
	})
	if err != nil {
		observeError("initialize", err)
		return domain.BoardState{}, err
	}
	logger.FromContext(ctx, "service").Info("board initialized", "authority", caller)
	return board, nil
}

func (b *Board) Get(ctx context.Context) (domain.BoardState, error) {
	return b.storage.GetBoard(ctx)
}
