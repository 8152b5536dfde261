package wsrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetInput struct {
	Name string `json:"name"`
}

func TestDispatchTypedHandler(t *testing.T) {
	r := New()

	var got greetInput
	var gotType string
	r.Handle("GREET", Handler(func(ctx context.Context, _ *websocket.Conn, input greetInput) error {
		got = input
		gotType = GetMessageTypeFromCtx(ctx)
		return nil
	}))

	err := r.Dispatch(context.Background(), nil, "GREET", json.RawMessage(`{"name":"ada"}`))
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Name)
	assert.Equal(t, "GREET", gotType)
}

func TestDispatchUnknownType(t *testing.T) {
	r := New()

	err := r.Dispatch(context.Background(), nil, "NOPE", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown message type")
}

func TestDispatchMalformedPayload(t *testing.T) {
	r := New()

	called := false
	r.Handle("GREET", Handler(func(_ context.Context, _ *websocket.Conn, _ greetInput) error {
		called = true
		return nil
	}))

	err := r.Dispatch(context.Background(), nil, "GREET", json.RawMessage(`{`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal payload")
	assert.False(t, called, "handler must not run on a malformed payload")
}

func TestDispatchEmptyPayload(t *testing.T) {
	r := New()

	called := false
	r.Handle("PING", Handler(func(_ context.Context, _ *websocket.Conn, _ struct{}) error {
		called = true
		return nil
	}))

	require.NoError(t, r.Dispatch(context.Background(), nil, "PING", nil))
	assert.True(t, called)
}

func TestServeConnRoutesAndReportsErrors(t *testing.T) {
	r := New()

	greeted := make(chan string, 1)
	r.Handle("GREET", Handler(func(_ context.Context, _ *websocket.Conn, input greetInput) error {
		greeted <- input.Name
		return nil
	}))
	r.Handle("FAIL", Handler(func(_ context.Context, _ *websocket.Conn, _ struct{}) error {
		return errors.New("handler blew up")
	}))

	handlerErrs := make(chan error, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			t.Error(err)
			return
		}
		r.ServeConn(req.Context(), conn, func(_ context.Context, err error) {
			handlerErrs <- err
		})
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "GREET", "payload": map[string]string{"name": "ada"}}))
	select {
	case name := <-greeted:
		assert.Equal(t, "ada", name)
	case <-time.After(time.Second):
		t.Fatal("GREET never reached its handler")
	}

	// A handler error goes to onError and must not tear the connection
	// down: the next message still routes.
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "FAIL"}))
	select {
	case err := <-handlerErrs:
		assert.EqualError(t, err, "handler blew up")
	case <-time.After(time.Second):
		t.Fatal("handler error never reached onError")
	}

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "GREET", "payload": map[string]string{"name": "grace"}}))
	select {
	case name := <-greeted:
		assert.Equal(t, "grace", name)
	case <-time.After(time.Second):
		t.Fatal("connection did not survive the handler error")
	}
}
