package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/itchan-dev/msgboard/client/internal/apiclient"
	"github.com/itchan-dev/msgboard/shared/api"
	"github.com/itchan-dev/msgboard/shared/domain"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the server rejected the operation
	ExitCommandError = 2 // bad arguments or the server could not be reached
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// GetExitCode extracts the exit code from an error.
// API rejections map to ExitFailure, anything else unclassified to ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return ExitFailure
	}
	return ExitCommandError
}

func parseIndex(arg string) (domain.MsgIndex, error) {
	index, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("invalid message index %q", arg), Err: err}
	}
	return index, nil
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (f *OutputFormatter) json(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (f *OutputFormatter) Board(b api.BoardResponse) error {
	if f.Format == "json" {
		return f.json(b)
	}
	_, err := fmt.Fprintf(f.Writer, "%-15s%s\n%-15s%d\n", "authority:", b.Authority, "message_count:", b.MessageCount)
	return err
}

func (f *OutputFormatter) Message(m api.MessageResponse) error {
	if f.Format == "json" {
		return f.json(m)
	}
	_, err := fmt.Fprintf(f.Writer, "%-11s%d\n%-11s%s\n%-11s%s\n%-11s%s\n%-11s%s\n\n%s\n",
		"index:", m.Index,
		"address:", m.Address,
		"author:", m.Author,
		"title:", m.Title,
		"timestamp:", formatTime(m.Timestamp),
		m.Content,
	)
	return err
}

func (f *OutputFormatter) List(l api.MessageListResponse) error {
	if f.Format == "json" {
		return f.json(l)
	}
	if len(l.Messages) == 0 {
		_, err := fmt.Fprintln(f.Writer, "no messages")
		return err
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tAUTHOR\tTIMESTAMP\tTITLE")
	for _, m := range l.Messages {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", m.Index, m.Author, formatTime(m.Timestamp), m.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if l.Next != nil {
		_, err := fmt.Fprintf(f.Writer, "\nnext: %d\n", *l.Next)
		return err
	}
	return nil
}

func (f *OutputFormatter) HTML(index domain.MsgIndex, html string) error {
	if f.Format == "json" {
		return f.json(struct {
			Index domain.MsgIndex `json:"index"`
			HTML  string          `json:"html"`
		}{index, html})
	}
	_, err := io.WriteString(f.Writer, html)
	return err
}

func (f *OutputFormatter) Deleted(index domain.MsgIndex) error {
	if f.Format == "json" {
		return f.json(struct {
			Deleted domain.MsgIndex `json:"deleted"`
		}{index})
	}
	_, err := fmt.Fprintf(f.Writer, "deleted message %d\n", index)
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
