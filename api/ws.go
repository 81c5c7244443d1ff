package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"tagcomposer/composer"
	"tagcomposer/insert"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsMessage struct {
	Type   string          `json:"type"`
	Data   string          `json:"data,omitempty"`
	State  *composer.State `json:"state,omitempty"`
	Start  int             `json:"start,omitempty"`
	End    int             `json:"end,omitempty"`
	Cursor *int            `json:"cursor,omitempty"`
}

// handleWS pushes a "state" message on every committed change and a "status"
// message whenever the status text changes. Clients send "selection" as the
// caret moves and "take-cursor" after the editor has re-rendered.
func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WS upgrade error: %v", err)
		return
	}
	defer conn.Close()

	client := uuid.NewString()

	// Serialise all WebSocket writes; gorilla/websocket forbids concurrent writes.
	var writeMu sync.Mutex
	writeMsg := func(msg wsMessage) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}
	pushState := func() {
		s := h.composer.Snapshot()
		if err := writeMsg(wsMessage{Type: "state", State: &s}); err != nil {
			log.Printf("WS %s state push error: %v", client, err)
		}
	}

	pushState()

	stop := h.composer.Subscribe(pushState)
	defer stop()
	sub := h.status.Subscribe(func(message string) {
		_ = writeMsg(wsMessage{Type: "status", Data: message})
	})
	defer sub.Unsubscribe()

	// Main loop: read client messages until the client goes away.
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "selection":
			h.composer.SetSelection(insert.Selection{Start: msg.Start, End: msg.End})
		case "take-cursor":
			if pos, ok := h.composer.TakePendingCursor(); ok {
				if err := writeMsg(wsMessage{Type: "cursor", Cursor: &pos}); err != nil {
					return
				}
			}
		}
	}
}
