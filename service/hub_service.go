package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kodekulture/wordle-solver/solver"
)

const (
	// RoomRetention is how long a finished room stays around so that late
	// viewers can still fetch its result before it is garbage collected.
	RoomRetention = time.Minute * 15
)

type hub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]*solver.Room
}

func newHub(ctx context.Context) *hub {
	h := hub{rooms: make(map[uuid.UUID]*solver.Room)}
	go h.gc(ctx)
	return &h
}

// GetRoom returns the room with the given id and a bool indicating whether the room was found.
func (h *hub) GetRoom(id uuid.UUID) (*solver.Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.rooms[id]
	return r, ok
}

// SetRoom sets the room with the given id to the given room.
func (h *hub) SetRoom(id uuid.UUID, r *solver.Room) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rooms[id] = r
}

// DeleteRoom deletes the room with the given id.
func (h *hub) DeleteRoom(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms, id)
}

func (h *hub) gc(ctx context.Context) {
	ticker := time.NewTicker(RoomRetention)
	defer ticker.Stop()

	isMarkPhase := true
	garbage := make([]uuid.UUID, 0)

	mark := func() {
		garbage = garbage[:0]
		h.mu.RLock()
		defer h.mu.RUnlock()
		for id, r := range h.rooms {
			if !r.IsClosed() {
				continue
			}
			res := r.Result()
			if res.EndedAt != nil && time.Since(*res.EndedAt) >= RoomRetention {
				garbage = append(garbage, id)
			}
		}
	}

	sweep := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for _, id := range garbage {
			delete(h.rooms, id)
		}
		garbage = garbage[:0]
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if isMarkPhase {
				mark()
			} else {
				sweep()
			}
			isMarkPhase = !isMarkPhase
		}
	}
}
