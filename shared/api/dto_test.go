package api

import (
	"testing"
	"time"

	"github.com/itchan-dev/msgboard/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageListResponse(t *testing.T) {
	messages := []domain.Message{
		{Index: 3, Author: "alice", Timestamp: time.Unix(0, 0).UTC()},
		{Index: 5, Author: "bob", Timestamp: time.Unix(0, 0).UTC()},
	}

	full := NewMessageListResponse(messages, 2)
	require.NotNil(t, full.Next)
	assert.Equal(t, domain.MsgIndex(6), *full.Next)
	assert.Len(t, full.Messages, 2)

	partial := NewMessageListResponse(messages, 10)
	assert.Nil(t, partial.Next)

	empty := NewMessageListResponse(nil, 10)
	assert.NotNil(t, empty.Messages, "empty list must encode as []")
	assert.Nil(t, empty.Next)
}

func TestMessageResponseRoundTrip(t *testing.T) {
	msg := domain.Message{Index: 1, Address: "addr", Author: "alice", Title: "t", Content: "c", Timestamp: time.Now().UTC()}
	assert.Equal(t, msg, NewMessageResponse(msg).ToDomain())
}
