package service

import (
	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
)

// Authorize allows an action on a message only to its author.
func Authorize(author, caller domain.Identity) error {
	if author != caller {
		return internal_errors.New(internal_errors.ErrUnauthorized, "Only the author can modify this message")
	}
	return nil
}
