package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tickerOnce sync.Once

func startTicker() {
	tickerOnce.Do(func() {
		go HandleListenMessages()
	})
}

func dialTicker(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestListenTickerDeliversUpdates(t *testing.T) {
	startTicker()
	srv := httptest.NewServer(http.HandlerFunc(HandleListenWS))
	defer srv.Close()

	conn := dialTicker(t, srv)
	defer conn.Close()

	// The handler registers the client after the handshake returns, so
	// keep sending until the ticker picks it up.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				SendListenUpdate(42, "203.0.113.9")
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var update ListenUpdate
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, uint(42), update.PodcastID)
	assert.Equal(t, "203.0.113.9", update.IPAddress)
	assert.False(t, update.At.IsZero())
}

// Exercises concurrent connects, disconnects and broadcasts over the
// shared client registry; run with -race.
func TestListenTickerConcurrentClients(t *testing.T) {
	startTicker()
	srv := httptest.NewServer(http.HandlerFunc(HandleListenWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			if !assert.NoError(t, err) {
				return
			}
			for j := 0; j < 20; j++ {
				SendListenUpdate(uint(j+1), "203.0.113.9")
			}
			time.Sleep(10 * time.Millisecond)
			conn.Close()
		}()
	}
	wg.Wait()

	// Keep broadcasting while the closed connections are reaped.
	for j := 0; j < 50; j++ {
		SendListenUpdate(1, "203.0.113.9")
	}
	time.Sleep(50 * time.Millisecond)
}
