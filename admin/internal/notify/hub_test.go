package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHub_Deliver(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zap.NewNop())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(ctx, w, r, 7)
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Connected() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(ctx, model.Event{Type: model.EventPenaltyPaid, UserID: 8, Title: "other"}))
	require.NoError(t, hub.Publish(ctx, model.Event{Type: model.EventPenaltyPaid, UserID: 7, Title: "mine"}))
	require.NoError(t, hub.Publish(ctx, model.Event{Type: model.EventItemLost, Broadcast: true, Title: "all"}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got []string
	for i := 0; i < 2; i++ {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var ev model.Event
		require.NoError(t, json.Unmarshal(data, &ev))
		got = append(got, ev.Title)
	}
	require.Equal(t, []string{"mine", "all"}, got)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Connected() == 0 }, time.Second, 10*time.Millisecond)

	cancel()
	<-done
	srv.Close()
}

func TestHub_PublishCanceled(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < cap(hub.events); i++ {
		require.NoError(t, hub.Publish(context.Background(), model.Event{}))
	}
	require.ErrorIs(t, hub.Publish(ctx, model.Event{}), context.Canceled)
}
