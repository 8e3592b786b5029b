package service

import (
	"context"
	"errors"
	"testing"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/backend/internal/storage/memory"
	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh store", func(t *testing.T) {
		svc := NewBoard(memory.New())
		board, err := svc.Initialize(ctx, "authority")
		require.NoError(t, err)
		assert.Equal(t, domain.BoardState{Authority: "authority", MessageCount: 0}, board)

		got, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, board, got)
	})

	t.Run("second initialize fails and keeps authority", func(t *testing.T) {
		svc := NewBoard(memory.New())
		_, err := svc.Initialize(ctx, "first")
		require.NoError(t, err)

		_, err = svc.Initialize(ctx, "second")
		assert.ErrorIs(t, err, internal_errors.ErrAlreadyInitialized)

		got, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Identity("first"), got.Authority)
	})

	t.Run("storage error is returned as is", func(t *testing.T) {
		storageErr := errors.New("connection refused")
		svc := NewBoard(&MockStorage{
			withTxFunc: func(ctx context.Context, fn func(storage.Tx) error) error {
				return storageErr
			},
		})
		_, err := svc.Initialize(ctx, "authority")
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestBoardGetUninitialized(t *testing.T) {
	svc := NewBoard(memory.New())
	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, internal_errors.ErrNotFound)
}
