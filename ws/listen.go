package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Dashboard clients watching the live listen ticker. Guarded by
// listenMu: connection handlers add and remove entries while the
// broadcaster iterates.
var (
	listenMu      sync.Mutex
	listenClients = make(map[*websocket.Conn]string)
)

var listenBroadcast = make(chan ListenUpdate, 50)

type ListenUpdate struct {
	PodcastID uint      `json:"podcast_id"`
	IPAddress string    `json:"ip_address"`
	At        time.Time `json:"at"`
}

var listenUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleListenWS registers a dashboard connection for live listen events.
func HandleListenWS(w http.ResponseWriter, r *http.Request) {
	conn, err := listenUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("listen WS upgrade error:", err)
		return
	}
	defer conn.Close()

	clientID := uuid.NewString()
	listenMu.Lock()
	listenClients[conn] = clientID
	listenMu.Unlock()
	log.Printf("listen WS connected: %s\n", clientID)

	for {
		// The ticker is one-way; reads only detect disconnects.
		var tmp interface{}
		if err := conn.ReadJSON(&tmp); err != nil {
			listenMu.Lock()
			delete(listenClients, conn)
			listenMu.Unlock()
			return
		}
	}
}

// HandleListenMessages fans broadcast updates out to every client.
func HandleListenMessages() {
	for {
		msg := <-listenBroadcast

		listenMu.Lock()
		for conn := range listenClients {
			if err := conn.WriteJSON(msg); err != nil {
				conn.Close()
				delete(listenClients, conn)
			}
		}
		listenMu.Unlock()
	}
}

// SendListenUpdate publishes a recorded listen to the ticker. Drops the
// update when the buffer is full rather than blocking the request.
func SendListenUpdate(podcastID uint, ip string) {
	select {
	case listenBroadcast <- ListenUpdate{PodcastID: podcastID, IPAddress: ip, At: time.Now()}:
	default:
	}
}
