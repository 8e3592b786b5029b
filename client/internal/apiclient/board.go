package apiclient

import (
	"context"
	"net/http"

	"github.com/itchan-dev/msgboard/shared/api"
)

func (c *APIClient) InitBoard(ctx context.Context) (api.BoardResponse, error) {
	var board api.BoardResponse
	err := c.do(ctx, http.MethodPost, "/v1/board", nil, &board, http.StatusCreated)
	return board, err
}

func (c *APIClient) GetBoard(ctx context.Context) (api.BoardResponse, error) {
	var board api.BoardResponse
	err := c.do(ctx, http.MethodGet, "/v1/board", nil, &board, http.StatusOK)
	return board, err
}
