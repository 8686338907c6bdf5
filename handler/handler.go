package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/req"
	"github.com/lordvidex/x/resp"

	"github.com/kodekulture/wordle-solver/service"
)

const defaultResultsLimit = 20

type Handler struct {
	s      *http.Server
	router chi.Router
	srv    *service.Service
}

func New(srv *service.Service) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		srv:    srv,
	}
	h.setup()
	return h
}

func (h *Handler) Start(port string) error {
	h.s = &http.Server{Addr: ":" + port, Handler: h.router}
	return h.s.ListenAndServe()
}

func (h *Handler) Stop(ctx context.Context) error {
	return h.s.Shutdown(ctx)
}

// ServeHTTP makes the handler usable without a listening server.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) setup() {
	r := h.router
	r.Use(h.logMiddleware)
	r.Use(recoverMiddleware)

	r.Get("/health", h.health)
	r.Post("/solve", h.solve)
	r.Post("/room", h.createRoom)
	r.Get("/room", h.rooms)
	r.Get("/room/{id}", h.room)
	r.Get("/live", h.live)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type solveParams struct {
	Answer string   `json:"answer" validate:"required"`
	Words  []string `json:"words,omitempty"`
}

// solve runs a full solve synchronously and returns the final result,
// history included.
func (h *Handler) solve(w http.ResponseWriter, r *http.Request) {
	var payload solveParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	result, err := h.srv.Solve(r.Context(), payload.Answer, payload.Words)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, result)
}

type roomParams struct {
	Answer string `json:"answer"`
}

type roomIDResponse struct {
	ID string `json:"id"`
}

// createRoom starts an asynchronous solve whose progress can be watched
// on /live. Without an answer a random dictionary word is used.
func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var payload roomParams
	defer r.Body.Close()
	if r.ContentLength != 0 {
		if err := req.I.Will().Bind(r, &payload).Err(); err != nil {
			resp.Error(w, err)
			return
		}
	}
	id, err := h.srv.NewRoom(payload.Answer)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, roomIDResponse{ID: id})
}

func (h *Handler) rooms(w http.ResponseWriter, r *http.Request) {
	limit := defaultResultsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			resp.Error(w, errs.B().Code(errs.InvalidArgument).Msg("invalid limit").Err())
			return
		}
		limit = n
	}
	results, err := h.srv.RecentResults(r.Context(), limit)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, results)
}

func (h *Handler) room(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	uid, err := uuid.Parse(id)
	if err != nil {
		resp.Error(w, errs.B().Code(errs.InvalidArgument).Msg("invalid parameters").Err())
		return
	}
	result, err := h.srv.GetResult(r.Context(), uid)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, result)
}
