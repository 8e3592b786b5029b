package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/itchan-dev/msgboard/shared/api"
	"github.com/itchan-dev/msgboard/shared/domain"
)

func messagePath(index domain.MsgIndex) string {
	return fmt.Sprintf("/v1/messages/%d", index)
}

func (c *APIClient) CreateMessage(ctx context.Context, title, content string) (api.MessageResponse, error) {
	var msg api.MessageResponse
	req := api.CreateMessageRequest{Title: &title, Content: &content}
	err := c.do(ctx, http.MethodPost, "/v1/messages", req, &msg, http.StatusCreated)
	return msg, err
}

func (c *APIClient) GetMessage(ctx context.Context, index domain.MsgIndex) (api.MessageResponse, error) {
	var msg api.MessageResponse
	err := c.do(ctx, http.MethodGet, messagePath(index), nil, &msg, http.StatusOK)
	return msg, err
}

// GetMessageHTML returns the rendered content fragment.
func (c *APIClient) GetMessageHTML(ctx context.Context, index domain.MsgIndex) (string, error) {
	resp, err := c.send(ctx, http.MethodGet, messagePath(index)+"/html", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(b), nil
}

// ListMessages returns one page. limit <= 0 lets the server pick its maximum.
func (c *APIClient) ListMessages(ctx context.Context, from domain.MsgIndex, limit int) (api.MessageListResponse, error) {
	q := url.Values{}
	q.Set("from", strconv.FormatUint(from, 10))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var list api.MessageListResponse
	err := c.do(ctx, http.MethodGet, "/v1/messages?"+q.Encode(), nil, &list, http.StatusOK)
	return list, err
}

func (c *APIClient) EditMessage(ctx context.Context, index domain.MsgIndex, title, content string) (api.MessageResponse, error) {
	var msg api.MessageResponse
	req := api.EditMessageRequest{Title: &title, Content: &content}
	err := c.do(ctx, http.MethodPut, messagePath(index), req, &msg, http.StatusOK)
	return msg, err
}

func (c *APIClient) DeleteMessage(ctx context.Context, index domain.MsgIndex) error {
	return c.do(ctx, http.MethodDelete, messagePath(index), nil, nil, http.StatusNoContent)
}
