package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var (
	// Create upgrade websocket connection
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Solving cross-domain problems
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// live upgrades the connection and attaches the caller as a viewer of a
// running room. Viewers receive the current state first, then every
// observation as the solver makes progress.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.URL.Query().Get("room_id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid room id"))
		return
	}

	room, ok := h.srv.GetRoom(roomID)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("room not found"))
		return
	}

	if room.IsClosed() {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("room has been closed"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Caller().Msg("error upgrading connection")
		return
	}

	room.Join(conn)
}
