package spectate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlego/internal/game/event"
	"github.com/udisondev/battlego/internal/testutil"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/spectate"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_BroadcastsEvents(t *testing.T) {
	hub := NewHub(8)
	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	a, b := dial(t, srv), dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.Notify(event.Event{
		Kind:   event.KindAttack,
		Round:  3,
		Actor:  "Ash's Pikachu",
		Text:   "Ash's Pikachu used Thunderbolt and dealt 33 dmg (type x1.5)",
		Amount: 33,
	})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var got map[string]any
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, "attack", got["kind"])
		assert.Equal(t, float64(3), got["round"])
		assert.Equal(t, float64(33), got["amount"])
		assert.Equal(t, "Ash's Pikachu used Thunderbolt and dealt 33 dmg (type x1.5)", got["text"])
	}
}

func TestHub_ObserverDisconnect(t *testing.T) {
	hub := NewHub(8)
	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)

	hub.Notify(event.Event{Kind: event.KindRoundStart, Text: "--- TURN 1 ---"})
	assert.Equal(t, uint64(0), hub.Dropped())
}

func TestHub_SlowObserverLosesEvents(t *testing.T) {
	hub := NewHub(2)
	slow := &client{remote: "test", send: make(chan []byte, 2)}
	hub.add(slow)

	for i := range 5 {
		hub.Notify(event.Event{Kind: event.KindAttack, Round: i + 1})
	}

	assert.Len(t, slow.send, 2)
	assert.Equal(t, uint64(3), hub.Dropped())

	hub.remove(slow)
	hub.remove(slow)
	assert.Equal(t, 0, hub.Clients())
}

func TestHub_Recent(t *testing.T) {
	hub := NewHub(3)
	for i := range 5 {
		hub.Notify(event.Event{Kind: event.KindRoundStart, Round: i + 1})
	}

	recent := hub.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, 3, recent[0].Round)
	assert.Equal(t, 5, recent[2].Round)

	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/recent")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.Equal(t, "round_start", got[0]["kind"])
}

func TestServer_RunAndShutdown(t *testing.T) {
	hub := NewHub(4)
	s := NewServer(hub, "127.0.0.1:0")
	ctx, cancel := testutil.ContextWithCancel(t)

	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	var addr string
	select {
	case a := <-s.Ready():
		addr = a.String()
	case err := <-errc:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server not ready")
	}

	resp, err := http.Get("http://" + addr + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/spectate", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}
