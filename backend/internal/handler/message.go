package handler

import (
	"fmt"
	"net/http"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/shared/api"
	"github.com/itchan-dev/msgboard/shared/domain"
	mw "github.com/itchan-dev/msgboard/shared/middleware"
	"github.com/itchan-dev/msgboard/shared/utils"
)

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var body api.CreateMessageRequest
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodySize), &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.message.Create(r.Context(), domain.MessageCreationData{
		Author:  mw.GetIdentityFromContext(r),
		Title:   *body.Title,
		Content: *body.Content,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/messages/%d", msg.Index))
	writeJSON(w, http.StatusCreated, api.NewMessageResponse(msg))
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndexParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	msg, err := h.message.Get(r.Context(), index)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewMessageResponse(msg))
}

// GetMessageHTML serves the message content rendered as an HTML fragment.
func (h *Handler) GetMessageHTML(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndexParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	msg, err := h.message.Get(r.Context(), index)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	html, err := h.renderer.Render(msg.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// ListMessages pages through live messages: ?from=<index>&limit=<n>.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	from, err := parseUintQuery(r, "from", 0)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	rawLimit, err := parseUintQuery(r, "limit", storage.MaxListLimit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	limit := storage.MaxListLimit
	if rawLimit < storage.MaxListLimit {
		limit = storage.ClampLimit(int(rawLimit))
	}

	messages, err := h.message.List(r.Context(), from, limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewMessageListResponse(messages, limit))
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndexParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.EditMessageRequest
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodySize), &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.message.Edit(r.Context(), domain.MessageEditData{
		Caller:  mw.GetIdentityFromContext(r),
		Index:   index,
		Title:   *body.Title,
		Content: *body.Content,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewMessageResponse(msg))
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndexParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.message.Delete(r.Context(), mw.GetIdentityFromContext(r), index); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
