package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
)

// MessageValidator checks payload sizes in bytes and that the text is
// storable by every engine (PostgreSQL TEXT refuses NUL and bad UTF-8).
type MessageValidator struct{}

func (e *MessageValidator) Title(title domain.MsgTitle) error {
	if len(title) > domain.MaxTitleLen {
		return internal_errors.New(internal_errors.ErrPayloadTooLarge,
			fmt.Sprintf("Title is too long: %d bytes, max %d", len(title), domain.MaxTitleLen))
	}
	return checkText("Title", title)
}

func (e *MessageValidator) Content(content domain.MsgContent) error {
	if len(content) > domain.MaxContentLen {
		return internal_errors.New(internal_errors.ErrPayloadTooLarge,
			fmt.Sprintf("Content is too long: %d bytes, max %d", len(content), domain.MaxContentLen))
	}
	return checkText("Content", content)
}

func checkText(field, s string) error {
	if !utf8.ValidString(s) {
		return internal_errors.New(internal_errors.ErrInvalidPayload, field+" is not valid UTF-8")
	}
	if strings.IndexByte(s, 0) >= 0 {
		return internal_errors.New(internal_errors.ErrInvalidPayload, field+" contains a NUL character")
	}
	return nil
}

func New() *MessageValidator {
	return &MessageValidator{}
}
