package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"CitadelCommand/internal/game"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type fireCmd struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type liveConn struct {
	conn     *websocket.Conn
	sendTick *time.Ticker
}

// serveWS attaches one render/input collaborator to a session. The reader
// goroutine forwards fire and start commands into the simulation; the
// writer pushes read-only state frames at StatePushHz. The client never
// mutates anything directly.
func serveWS(h *game.Hub, w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = "default"
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	lc := &liveConn{
		conn:     conn,
		sendTick: time.NewTicker(time.Second / time.Duration(game.StatePushHz)),
	}

	clientID := uuid.NewString()
	sess := h.GetSession(sessionID)
	sess.AddClient()
	log.Printf("client %s joined session %s", clientID, sessionID)

	if err := conn.WriteJSON(welcomeMsg{
		Type: "welcome", ClientID: clientID, Session: sessionID, Meta: playfieldMeta(),
	}); err != nil {
		log.Printf("welcome send error: %v", err)
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader: raw input events, already translated to playfield
	// coordinates by the client.
	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var inbound inboundMessage
			if err := json.Unmarshal(data, &inbound); err != nil {
				log.Printf("invalid JSON message: %v", err)
				continue
			}
			switch inbound.Type {
			case "fire":
				var cmd fireCmd
				if err := json.Unmarshal(inbound.Payload, &cmd); err != nil {
					log.Printf("invalid fire payload: %v", err)
					continue
				}
				sess.Fire(game.Vec2{X: cmd.X, Y: cmd.Y})
			case "start", "reset":
				sess.StartOrReset(time.Now())
			default:
				log.Printf("unknown message type: %s", inbound.Type)
			}
		}
	}()

	// Writer: per-client state pushes.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-lc.sendTick.C:
				msg := stateFromSnapshot(sess.Snapshot())
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("send error: %v", err)
					cancel()
					return
				}
			}
		}
	}()

	<-ctx.Done()
	lc.sendTick.Stop()
	conn.Close()
	sess.RemoveClient()
	log.Printf("client %s left session %s", clientID, sessionID)
}
