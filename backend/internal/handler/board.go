package handler

import (
	"net/http"

	"github.com/itchan-dev/msgboard/shared/api"
	mw "github.com/itchan-dev/msgboard/shared/middleware"
	"github.com/itchan-dev/msgboard/shared/utils"
)

// InitBoard makes the caller the board authority.
func (h *Handler) InitBoard(w http.ResponseWriter, r *http.Request) {
	caller := mw.GetIdentityFromContext(r)

	board, err := h.board.Initialize(r.Context(), caller)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.NewBoardResponse(board))
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.board.Get(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewBoardResponse(board))
}
