package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/msgboard/client/internal/apiclient"
	"github.com/itchan-dev/msgboard/shared/api"
	"github.com/itchan-dev/msgboard/shared/domain"
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
	"github.com/itchan-dev/msgboard/shared/utils"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtures = []api.MessageResponse{
	{
		Index:     0,
		Address:   "addr-0",
		Author:    "alice",
		Title:     "First Message",
		Content:   "Hello, Solana!",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	},
	{
		Index:     2,
		Address:   "addr-2",
		Author:    "bob",
		Title:     "Second",
		Content:   "**bold** >>0",
		Timestamp: time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC),
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeKind(w http.ResponseWriter, kind error, msg string) {
	w.Header().Set(utils.ErrorKindHeader, internal_errors.Kind(kind))
	http.Error(w, msg, internal_errors.New(kind, msg).StatusCode)
}

func findFixture(index domain.MsgIndex) (api.MessageResponse, bool) {
	for _, m := range fixtures {
		if m.Index == index {
			return m, true
		}
	}
	return api.MessageResponse{}, false
}

// newFakeBoard serves canned board data over the same routes as the API server.
func newFakeBoard(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()

	requireToken := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
				http.Error(w, "Missing or invalid token", http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}
	messageFromURL := func(w http.ResponseWriter, r *http.Request) (api.MessageResponse, bool) {
		index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
		if err != nil {
			http.Error(w, "invalid index", http.StatusBadRequest)
			return api.MessageResponse{}, false
		}
		m, ok := findFixture(index)
		if !ok {
			writeKind(w, internal_errors.ErrNotFound, "Message not found")
		}
		return m, ok
	}

	r.Get("/v1/board", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.BoardResponse{Authority: "admin", MessageCount: 3})
	})
	r.Post("/v1/board", requireToken(func(w http.ResponseWriter, r *http.Request) {
		writeKind(w, internal_errors.ErrAlreadyInitialized, "Board already initialized")
	}))
	r.Get("/v1/messages", func(w http.ResponseWriter, r *http.Request) {
		from, _ := strconv.ParseUint(r.URL.Query().Get("from"), 10, 64)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 {
			limit = 200
		}
		var page []domain.Message
		for _, m := range fixtures {
			if m.Index >= from && len(page) < limit {
				page = append(page, m.ToDomain())
			}
		}
		writeJSON(w, http.StatusOK, api.NewMessageListResponse(page, limit))
	})
	r.Post("/v1/messages", requireToken(func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateMessageRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		writeJSON(w, http.StatusCreated, api.MessageResponse{
			Index:     3,
			Address:   "addr-3",
			Author:    "alice",
			Title:     *req.Title,
			Content:   *req.Content,
			Timestamp: time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
		})
	}))
	r.Get("/v1/messages/{index}", func(w http.ResponseWriter, r *http.Request) {
		if m, ok := messageFromURL(w, r); ok {
			writeJSON(w, http.StatusOK, m)
		}
	})
	r.Get("/v1/messages/{index}/html", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := messageFromURL(w, r); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = io.WriteString(w, "<p>Hello, Solana!</p>\n")
		}
	})
	r.Put("/v1/messages/{index}", requireToken(func(w http.ResponseWriter, r *http.Request) {
		m, ok := messageFromURL(w, r)
		if !ok {
			return
		}
		var req api.EditMessageRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		m.Title, m.Content = *req.Title, *req.Content
		writeJSON(w, http.StatusOK, m)
	}))
	r.Delete("/v1/messages/{index}", requireToken(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := messageFromURL(w, r); ok {
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type cliRun struct {
	stdin io.Reader
}

func (c cliRun) exec(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	if c.stdin != nil {
		cmd.SetIn(c.stdin)
	}
	cmd.SetArgs(append([]string{"--api", srv.URL, "--token", "test-token", "--retries", "0"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func runCLI(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	return cliRun{}.exec(t, srv, args...)
}

func TestGoldenOutput(t *testing.T) {
	srv := newFakeBoard(t)

	tests := []struct {
		name string
		args []string
	}{
		{"board_text", []string{"board"}},
		{"board_json", []string{"board", "--format", "json"}},
		{"get_text", []string{"get", "0"}},
		{"get_json", []string{"get", "2", "--format", "json"}},
		{"get_html", []string{"get", "0", "--html"}},
		{"list_text", []string{"list"}},
		{"list_json", []string{"list", "--format", "json", "--limit", "1"}},
		{"list_page", []string{"list", "--limit", "1"}},
		{"list_all", []string{"list", "--limit", "1", "--all"}},
		{"list_empty", []string{"list", "--from", "5"}},
		{"post_text", []string{"post", "--title", "Third", "--content", "Hello again"}},
		{"edit_text", []string{"edit", "0", "-t", "Updated Title", "-c", "Updated content!"}},
		{"delete_text", []string{"delete", "0"}},
		{"delete_json", []string{"delete", "0", "--format", "json"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, srv, tt.args...)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestPostContentFromStdin(t *testing.T) {
	srv := newFakeBoard(t)

	out, err := cliRun{stdin: strings.NewReader("from stdin")}.exec(t, srv,
		"post", "--title", "", "--content", "-", "--format", "json")
	require.NoError(t, err)

	var msg api.MessageResponse
	require.NoError(t, json.Unmarshal([]byte(out), &msg))
	assert.Equal(t, "", msg.Title)
	assert.Equal(t, "from stdin", msg.Content)
}

func TestAPIErrors(t *testing.T) {
	srv := newFakeBoard(t)

	t.Run("not found", func(t *testing.T) {
		_, err := runCLI(t, srv, "get", "1")
		require.Error(t, err)
		assert.ErrorIs(t, err, internal_errors.ErrNotFound)
		assert.Equal(t, ExitFailure, GetExitCode(err))
	})

	t.Run("already initialized", func(t *testing.T) {
		_, err := runCLI(t, srv, "init")
		assert.ErrorIs(t, err, internal_errors.ErrAlreadyInitialized)
		assert.Equal(t, "Board already initialized (HTTP 409)", err.Error())
	})

	t.Run("missing token", func(t *testing.T) {
		out, err := runCLI(t, srv, "delete", "0", "--token", "")
		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Empty(t, out)
	})
}

func TestCommandErrors(t *testing.T) {
	srv := newFakeBoard(t)

	tests := []struct {
		name string
		args []string
	}{
		{"invalid format", []string{"board", "--format", "yaml"}},
		{"invalid index", []string{"get", "abc"}},
		{"negative index", []string{"delete", "-1"}},
		{"missing title", []string{"post", "--content", "x"}},
		{"extra args", []string{"board", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, srv, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := runCLI(t, srv, "board")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"init", "board", "post", "get", "list", "edit", "delete"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Setenv(tokenEnv, "env-token")
	t.Setenv(apiEnv, "http://board.example:9000")
	cmd := NewRootCommand()

	assert.Equal(t, "env-token", cmd.PersistentFlags().Lookup("token").DefValue)
	assert.Equal(t, "http://board.example:9000", cmd.PersistentFlags().Lookup("api").DefValue)
	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("format").DefValue)
}
