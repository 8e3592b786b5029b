package service

import (
	"context"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/shared/domain"
)

// MockStorage mocks both BoardStorage and MessageStorage.
type MockStorage struct {
	withTxFunc       func(ctx context.Context, fn func(storage.Tx) error) error
	getBoardFunc     func(ctx context.Context) (domain.BoardState, error)
	getMessageFunc   func(ctx context.Context, index domain.MsgIndex) (domain.Message, error)
	listMessagesFunc func(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error)
}

func (m *MockStorage) WithTx(ctx context.Context, fn func(storage.Tx) error) error {
	if m.withTxFunc != nil {
		return m.withTxFunc(ctx, fn)
	}
	return fn(&MockTx{})
}

func (m *MockStorage) GetBoard(ctx context.Context) (domain.BoardState, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(ctx)
	}
	return domain.BoardState{}, nil
}

func (m *MockStorage) GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error) {
	if m.getMessageFunc != nil {
		return m.getMessageFunc(ctx, index)
	}
	return domain.Message{}, nil
}

func (m *MockStorage) ListMessages(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error) {
	if m.listMessagesFunc != nil {
		return m.listMessagesFunc(ctx, from, limit)
	}
	return nil, nil
}

// MockTx mocks storage.Tx. Unset functions succeed with zero values.
type MockTx struct {
	boardFunc         func(ctx context.Context) (domain.BoardState, error)
	createBoardFunc   func(ctx context.Context, authority domain.Identity) (domain.BoardState, error)
	nextIndexFunc     func(ctx context.Context) (domain.MsgIndex, error)
	getMessageFunc    func(ctx context.Context, index domain.MsgIndex) (domain.Message, error)
	putMessageFunc    func(ctx context.Context, msg domain.Message) error
	updateMessageFunc func(ctx context.Context, index domain.MsgIndex, mutate func(*domain.Message) error) (domain.Message, error)
	removeMessageFunc func(ctx context.Context, index domain.MsgIndex) error
}

func (m *MockTx) Board(ctx context.Context) (domain.BoardState, error) {
	if m.boardFunc != nil {
		return m.boardFunc(ctx)
	}
	return domain.BoardState{}, nil
}

func (m *MockTx) CreateBoard(ctx context.Context, authority domain.Identity) (domain.BoardState, error) {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(ctx, authority)
	}
	return domain.BoardState{Authority: authority}, nil
}

func (m *MockTx) NextIndex(ctx context.Context) (domain.MsgIndex, error) {
	if m.nextIndexFunc != nil {
		return m.nextIndexFunc(ctx)
	}
	return 0, nil
}

func (m *MockTx) GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error) {
	if m.getMessageFunc != nil {
		return m.getMessageFunc(ctx, index)
	}
	return domain.Message{}, nil
}

func (m *MockTx) PutMessage(ctx context.Context, msg domain.Message) error {
	if m.putMessageFunc != nil {
		return m.putMessageFunc(ctx, msg)
	}
	return nil
}

func (m *MockTx) UpdateMessage(ctx context.Context, index domain.MsgIndex, mutate func(*domain.Message) error) (domain.Message, error) {
	if m.updateMessageFunc != nil {
		return m.updateMessageFunc(ctx, index, mutate)
	}
	msg := domain.Message{Index: index}
	err := mutate(&msg)
	return msg, err
}

func (m *MockTx) RemoveMessage(ctx context.Context, index domain.MsgIndex) error {
	if m.removeMessageFunc != nil {
		return m.removeMessageFunc(ctx, index)
	}
	return nil
}

// MockMessageValidator mocks MessageValidator.
type MockMessageValidator struct {
	titleFunc   func(title string) error
	contentFunc func(content string) error
}

func (m *MockMessageValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockMessageValidator) Content(content string) error {
	if m.contentFunc != nil {
		return m.contentFunc(content)
	}
	return nil
}
