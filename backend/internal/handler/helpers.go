package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
)

// maxBodySize bounds request bodies well above the largest valid message.
const maxBodySize = 16 << 10

func badRequest(msg string) error {
	return &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

func parseIndexParam(r *http.Request) (domain.MsgIndex, error) {
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		return 0, badRequest("invalid index: must be a non-negative integer")
	}
	return index, nil
}

// parseUintQuery returns def when the parameter is absent.
func parseUintQuery(r *http.Request, name string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, badRequest("invalid " + name + ": must be a non-negative integer")
	}
	return v, nil
}
