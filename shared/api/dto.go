package api

import (
	"time"

	"github.com/itchan-dev/msgboard/shared/domain"
)

// Request DTOs shared by backend handlers and the client.
// Pointers tell a missing field from an empty one: empty strings are valid.

type CreateMessageRequest struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

type EditMessageRequest struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

type BoardResponse struct {
	Authority    domain.Identity     `json:"authority"`
	MessageCount domain.MessageCount `json:"message_count"`
}

type MessageResponse struct {
	Index     domain.MsgIndex   `json:"index"`
	Address   domain.MsgAddress `json:"address"`
	Author    domain.Identity   `json:"author"`
	Title     domain.MsgTitle   `json:"title"`
	Content   domain.MsgContent `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	// index to pass as "from" for the next page, absent on the last page
	Next *domain.MsgIndex `json:"next,omitempty"`
}

func NewBoardResponse(b domain.BoardState) BoardResponse {
	return BoardResponse{Authority: b.Authority, MessageCount: b.MessageCount}
}

func NewMessageResponse(m domain.Message) MessageResponse {
	return MessageResponse{
		Index:     m.Index,
		Address:   m.Address,
		Author:    m.Author,
		Title:     m.Title,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

// NewMessageListResponse sets Next when the page is full.
func NewMessageListResponse(messages []domain.Message, limit int) MessageListResponse {
	resp := MessageListResponse{Messages: make([]MessageResponse, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, NewMessageResponse(m))
	}
	if limit > 0 && len(messages) == limit {
		next := messages[len(messages)-1].Index + 1
		resp.Next = &next
	}
	return resp
}

func (r MessageResponse) ToDomain() domain.Message {
	return domain.Message{
		Index:     r.Index,
		Address:   r.Address,
		Author:    r.Author,
		Title:     r.Title,
		Content:   r.Content,
		Timestamp: r.Timestamp,
	}
}
