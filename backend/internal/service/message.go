package service

import (
	"context"
	"time"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/shared/domain"
	"github.com/itchan-dev/msgboard/shared/logger"
)

type MessageService interface {
	Create(ctx context.Context, data domain.MessageCreationData) (domain.Message, error)
	Get(ctx context.Context, index domain.MsgIndex) (domain.Message, error)
	List(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error)
	Edit(ctx context.Context, data domain.MessageEditData) (domain.Message, error)
	Delete(ctx context.Context, caller domain.Identity, index domain.MsgIndex) error
}

type Message struct {
	storage   MessageStorage
	validator MessageValidator
	now       func() time.Time
}

type MessageStorage interface {
	WithTx(ctx context.Context, fn func(storage.Tx) error) error
	GetMessage(ctx context.Context, index domain.MsgIndex) (domain.Message, error)
	ListMessages(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error)
}

type MessageValidator interface {
	Title(title domain.MsgTitle) error
	Content(content domain.MsgContent) error
}

func NewMessage(storage MessageStorage, validator MessageValidator) MessageService {
	return &Message{storage: storage, validator: validator, now: time.Now}
}

func (m *Message) validate(title domain.MsgTitle, content domain.MsgContent) error {
	if err := m.validator.Title(title); err != nil {
		return err
	}
	return m.validator.Content(content)
}

// Create mints the next index and stores the message under it.
// Any failure, including validation after the counter moved, rolls the whole unit back.
func (m *Message) Create(ctx context.Context, data domain.MessageCreationData) (domain.Message, error) {
	var msg domain.Message
	err := m.storage.WithTx(ctx, func(tx storage.Tx) error {
		if _, err := tx.Board(ctx); err != nil {
			return err
		}
		index, err := tx.NextIndex(ctx)
		if err != nil {
			return err
		}
		if err := m.validate(data.Title, data.Content); err != nil {
			return err
		}
		msg = domain.Message{
			Index:     index,
			Address:   domain.MessageAddress(index, data.Author),
			Author:    data.Author,
			Title:     data.Title,
			Content:   data.Content,
			Timestamp: m.now().UTC().Truncate(time.Microsecond),
		}
		return tx.PutMessage(ctx, msg)
	})
	if err != nil {
		observeError("create", err)
		return domain.Message{}, err
	}
	messagesCreated.Inc()
	logger.FromContext(ctx, "service").Info("message created", "index", msg.Index, "author", msg.Author)
	return msg, nil
}

func (m *Message) Get(ctx context.Context, index domain.MsgIndex) (domain.Message, error) {
	return m.storage.GetMessage(ctx, index)
}

func (m *Message) List(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error) {
	return m.storage.ListMessages(ctx, from, limit)
}

// Edit replaces title and content. Author, index and timestamp are kept.
func (m *Message) Edit(ctx context.Context, data domain.MessageEditData) (domain.Message, error) {
	var msg domain.Message
	err := m.storage.WithTx(ctx, func(tx storage.Tx) error {
		current, err := tx.GetMessage(ctx, data.Index)
		if err != nil {
			return err
		}
		if err := Authorize(current.Author, data.Caller); err != nil {
			return err
		}
		if err := m.validate(data.Title, data.Content); err != nil {
			return err
		}
		msg, err = tx.UpdateMessage(ctx, data.Index, func(stored *domain.Message) error {
			stored.Title = data.Title
			stored.Content = data.Content
			return nil
		})
		return err
	})
	if err != nil {
		observeError("edit", err)
		return domain.Message{}, err
	}
	messagesEdited.Inc()
	logger.FromContext(ctx, "service").Info("message edited", "index", msg.Index, "author", msg.Author)
	return msg, nil
}

func (m *Message) Delete(ctx context.Context, caller domain.Identity, index domain.MsgIndex) error {
	err := m.storage.WithTx(ctx, func(tx storage.Tx) error {
		current, err := tx.GetMessage(ctx, index)
		if err != nil {
			return err
		}
		if err := Authorize(current.Author, caller); err != nil {
			return err
		}
		return tx.RemoveMessage(ctx, index)
	})
	if err != nil {
		observeError("delete", err)
		return err
	}
	messagesDeleted.Inc()
	logger.FromContext(ctx, "service").Info("message deleted", "index", index, "author", caller)
	return nil
}
