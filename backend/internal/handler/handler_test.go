package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/msgboard/shared/domain"
	mw "github.com/itchan-dev/msgboard/shared/middleware"
)

type MockBoardService struct {
	MockInitialize func(ctx context.Context, caller domain.Identity) (domain.BoardState, error)
	MockGet        func(ctx context.Context) (domain.BoardState, error)
}

func (m *MockBoardService) Initialize(ctx context.Context, caller domain.Identity) (domain.BoardState, error) {
	if m.MockInitialize != nil {
		return m.MockInitialize(ctx, caller)
	}
	return domain.BoardState{Authority: caller}, nil
}

func (m *MockBoardService) Get(ctx context.Context) (domain.BoardState, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx)
	}
	return domain.BoardState{}, nil
}

type MockMessageService struct {
	MockCreate func(ctx context.Context, data domain.MessageCreationData) (domain.Message, error)
	MockGet    func(ctx context.Context, index domain.MsgIndex) (domain.Message, error)
	MockList   func(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error)
	MockEdit   func(ctx context.Context, data domain.MessageEditData) (domain.Message, error)
	MockDelete func(ctx context.Context, caller domain.Identity, index domain.MsgIndex) error
}

func (m *MockMessageService) Create(ctx context.Context, data domain.MessageCreationData) (domain.Message, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Get(ctx context.Context, index domain.MsgIndex) (domain.Message, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, index)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) List(ctx context.Context, from domain.MsgIndex, limit int) ([]domain.Message, error) {
	if m.MockList != nil {
		return m.MockList(ctx, from, limit)
	}
	return nil, nil
}

func (m *MockMessageService) Edit(ctx context.Context, data domain.MessageEditData) (domain.Message, error) {
	if m.MockEdit != nil {
		return m.MockEdit(ctx, data)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Delete(ctx context.Context, caller domain.Identity, index domain.MsgIndex) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, caller, index)
	}
	return nil
}

type MockRenderer struct {
	MockRender func(content string) (string, error)
}

func (m *MockRenderer) Render(content string) (string, error) {
	if m.MockRender != nil {
		return m.MockRender(content)
	}
	return content, nil
}

type MockHealthChecker struct {
	MockPing func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

// setupTestHandler wires a handler with fresh mocks onto a bare chi router.
func setupTestHandler() (*Handler, *chi.Mux) {
	h := New(&MockBoardService{}, &MockMessageService{}, &MockRenderer{}, &MockHealthChecker{})
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Post("/v1/board", h.InitBoard)
	r.Get("/v1/board", h.GetBoard)
	r.Get("/v1/messages", h.ListMessages)
	r.Post("/v1/messages", h.CreateMessage)
	r.Get("/v1/messages/{index}", h.GetMessage)
	r.Get("/v1/messages/{index}/html", h.GetMessageHTML)
	r.Put("/v1/messages/{index}", h.EditMessage)
	r.Delete("/v1/messages/{index}", h.DeleteMessage)
	return h, r
}

// createRequest builds a request as NeedAuth would pass it on for identity.
func createRequest(t *testing.T, method, url, body string, identity domain.Identity) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if identity != "" {
		req = req.WithContext(context.WithValue(req.Context(), mw.IdentityKey, identity))
	}
	return req
}
