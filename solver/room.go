package solver

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type Event string

const (
	SData        Event = "server/data"
	SObservation Event = "server/observation"
	SSolved      Event = "server/solved"
	SExhausted   Event = "server/exhausted"
)

type Payload struct {
	Type Event       `json:"event"`
	Data interface{} `json:"data"`
}

func newPayload(event Event, data interface{}) Payload {
	return Payload{Type: event, Data: data}
}

// ResultSaver persists the result of a finished run.
type ResultSaver interface {
	SaveResult(context.Context, Result) error
}

// stepInterval paces the solver when it runs inside a room so that live
// viewers see the iterations instead of a single burst.
const stepInterval = 250 * time.Millisecond

// Room drives one asynchronous run and broadcasts its observations to
// websocket viewers. All access to the run goes through the room's mutex;
// viewers are read-only spectators.
type Room struct {
	// ctx guards sends into the room once it starts closing. Check it
	// before touching viewer connections from outside the solve loop.
	ctx       context.Context
	cancelCtx func()

	mu      sync.Mutex
	run     *Run
	viewers map[*viewerConn]struct{}
	closed  bool

	interval time.Duration
	saver    ResultSaver
}

// NewRoom wraps a run for live viewing. The run must not be touched by
// the caller afterwards.
func NewRoom(run *Run, saver ResultSaver) *Room {
	ctx, cancel := context.WithCancel(context.Background())
	return &Room{
		ctx:       ctx,
		cancelCtx: cancel,
		run:       run,
		viewers:   make(map[*viewerConn]struct{}),
		interval:  stepInterval,
		saver:     saver,
	}
}

// ID returns the ID of the room which is the ID of the run.
func (r *Room) ID() string {
	return r.run.ID.String()
}

// Result returns a snapshot of the underlying run.
func (r *Room) Result() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.run.Result()
}

// IsClosed reports whether the run has finished and the room shut down.
func (r *Room) IsClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Start launches the solve loop. It returns immediately.
func (r *Room) Start() {
	go r.loop()
}

// Join adds a websocket viewer and sends it the current state of the run.
func (r *Room) Join(conn *websocket.Conn) {
	v := newViewerConn(conn, r)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		v.write(newPayload(SData, r.run.Result()))
		v.close()
		return
	}
	if err := v.write(newPayload(SData, r.run.Result())); err != nil {
		v.close()
		return
	}
	r.viewers[v] = struct{}{}
}

func (r *Room) loop() {
	r.mu.Lock()
	now := time.Now()
	r.run.StartedAt = &now
	r.mu.Unlock()

	for {
		r.mu.Lock()
		var o *Observation
		st := r.run.Step(ReporterFunc(func(ob Observation) { o = &ob }))
		r.mu.Unlock()

		switch st {
		case Running:
			if o != nil {
				r.sendAll(newPayload(SObservation, *o))
			}
			time.Sleep(r.interval)
		case Solved:
			r.sendAll(newPayload(SSolved, r.Result()))
			r.close()
			return
		case Exhausted:
			r.sendAll(newPayload(SExhausted, r.Result()))
			r.close()
			return
		}
	}
}

// close shuts the room down: viewers are disconnected and the final
// result is handed to the saver.
func (r *Room) close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.cancelCtx()
	for v := range r.viewers {
		v.close()
		delete(r.viewers, v)
	}
	result := r.run.Result()
	r.mu.Unlock()

	if r.saver != nil {
		if err := r.saver.SaveResult(context.Background(), result); err != nil {
			log.Err(err).Caller().Msg("failed to store run result")
		}
	}
}

// sendAll sends the payload to every viewer, dropping the ones whose
// connection failed.
func (r *Room) sendAll(p Payload) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for v := range r.viewers {
		if err := v.write(p); err != nil {
			v.close()
			delete(r.viewers, v)
		}
	}
}

// drop removes a viewer whose connection died on its own.
func (r *Room) drop(v *viewerConn) {
	select {
	case <-r.ctx.Done():
		return
	default:
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.viewers[v]; ok {
		v.close()
		delete(r.viewers, v)
	}
}

var (
	// pongWait is how long we will await any read from the viewer
	pongWait     = 10 * time.Second
	pingInterval = (pongWait * 9) / 10
)

// viewerConn is a single spectator connection. Viewers never send data;
// the read pump only detects a closed connection.
type viewerConn struct {
	conn    *websocket.Conn
	room    *Room
	writeMu sync.Mutex
	active  bool

	t *time.Ticker
}

func newViewerConn(conn *websocket.Conn, room *Room) *viewerConn {
	v := viewerConn{
		conn:   conn,
		room:   room,
		active: true,
		t:      time.NewTicker(pingInterval),
	}
	go v.read()
	go v.ping()
	return &v
}

func (v *viewerConn) close() error {
	v.active = false
	v.t.Stop()
	return v.conn.Close()
}

func (v *viewerConn) ping() {
	defer v.t.Stop()
	for range v.t.C {
		v.writeMu.Lock()
		err := v.conn.WriteMessage(websocket.PingMessage, []byte{})
		v.writeMu.Unlock()
		if err != nil {
			v.room.drop(v)
			return
		}
	}
}

func (v *viewerConn) read() {
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			v.room.drop(v)
			return
		}
	}
}

func (v *viewerConn) write(p Payload) error {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()
	err := v.conn.WriteJSON(p)
	if err != nil && v.active {
		log.Err(err).Caller().Msg("error writing to viewer")
	}
	return err
}
