package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/session"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New()
	return New(srv.URL, srv.Client(), sess, zap.NewNop().Sugar()), sess
}

func TestSendAttachesBearer(t *testing.T) {
	var got string
	gw, sess := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})

	_, err := gw.Send(context.Background(), http.MethodGet, "/me", nil)
	require.NoError(t, err)
	require.Empty(t, got, "no header without a token")

	sess.Set("tok-1")
	_, err = gw.Send(context.Background(), http.MethodGet, "/me", nil)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-1", got)
}

func TestSendEmptyBodyIsNil(t *testing.T) {
	gw, _ := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	raw, err := gw.Send(context.Background(), http.MethodDelete, "/task/1", nil)
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestSendDecodeError(t *testing.T) {
	gw, _ := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := gw.Send(context.Background(), http.MethodGet, "/me", nil)
	require.ErrorIs(t, err, entities.ErrDecode)
}

func TestSendNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := New(url, nil, session.New(), zap.NewNop().Sugar())
	_, err := gw.Send(context.Background(), http.MethodGet, "/me", nil)
	require.ErrorIs(t, err, entities.ErrNetwork)
}

func TestMessageExtractionOrder(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "detail_wins", body: `{"detail":"Project not found","message":"other"}`, expected: "Project not found"},
		{name: "message_fallback", body: `{"message":"Task updated"}`, expected: "Task updated"},
		{name: "raw_body", body: "plain failure text", expected: "plain failure text"},
		{name: "status_line", body: "", expected: "404 Not Found"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gw, _ := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.Send(context.Background(), http.MethodGet, "/projects/1", nil)

			var reqErr *entities.RequestError
			require.ErrorAs(t, err, &reqErr)
			require.Equal(t, http.StatusNotFound, reqErr.Status)
			require.Equal(t, tt.expected, reqErr.Message)
		})
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	gw, sess := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	})

	sess.Set("expired")
	notified := false
	sess.Subscribe(func(token string) { notified = token == "" })

	_, err := gw.Send(context.Background(), http.MethodGet, "/me", nil)
	require.True(t, entities.IsUnauthorized(err))
	require.False(t, sess.Authenticated())
	require.True(t, notified)
}

func TestOtherErrorsKeepSession(t *testing.T) {
	gw, sess := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"Only creator can invite"}`))
	})

	sess.Set("tok")
	_, err := gw.Send(context.Background(), http.MethodPost, "/projects/invite", map[string]int{"user_id": 1})

	var reqErr *entities.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "Only creator can invite", reqErr.Message)
	require.True(t, sess.Authenticated())
}
