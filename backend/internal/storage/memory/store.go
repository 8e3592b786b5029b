package memory

import (
	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
)

// records is a write overlay on top of the committed message map.
// A nil entry in staged marks a removal.
type records struct {
	base   map[domain.MsgIndex]domain.Message
	staged map[domain.MsgIndex]*domain.Message
}

func newRecords(base map[domain.MsgIndex]domain.Message) *records {
	return &records{base: base, staged: make(map[domain.MsgIndex]*domain.Message)}
}

func (r *records) lookup(index domain.MsgIndex) (domain.Message, bool) {
	if msg, ok := r.staged[index]; ok {
		if msg == nil {
			return domain.Message{}, false
		}
		return *msg, true
	}
	msg, ok := r.base[index]
	return msg, ok
}

func (r *records) get(index domain.MsgIndex) (domain.Message, error) {
	msg, ok := r.lookup(index)
	if !ok {
		return domain.Message{}, internal_errors.New(internal_errors.ErrNotFound, "Message not found")
	}
	return msg, nil
}

func (r *records) put(msg domain.Message) error {
	if _, ok := r.lookup(msg.Index); ok {
		return internal_errors.New(internal_errors.ErrAlreadyExists, "Message index already taken")
	}
	r.staged[msg.Index] = &msg
	return nil
}

func (r *records) update(index domain.MsgIndex, mutate func(*domain.Message) error) (domain.Message, error) {
	msg, err := r.get(index)
	if err != nil {
		return domain.Message{}, err
	}
	updated := msg
	if err := mutate(&updated); err != nil {
		return domain.Message{}, err
	}
	// only title and content are mutable
	msg.Title, msg.Content = updated.Title, updated.Content
	r.staged[index] = &msg
	return msg, nil
}

func (r *records) remove(index domain.MsgIndex) error {
	if _, err := r.get(index); err != nil {
		return err
	}
	r.staged[index] = nil
	return nil
}

// commit applies staged writes to base.
func (r *records) commit() {
	for index, msg := range r.staged {
		if msg == nil {
			delete(r.base, index)
			continue
		}
		r.base[index] = *msg
	}
}
