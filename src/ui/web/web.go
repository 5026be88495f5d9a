package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"
	"sync"
	"tilepuzzle/src"
	"tilepuzzle/src/base"
	"tilepuzzle/src/imageio"
	"tilepuzzle/src/logic/rules"
	"tilepuzzle/src/logx"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	maxUpload = 10 << 20
	// largest board side in pixels a client may ask for
	maxContainer = 2048
)

var errNoSession = errors.New("no such game")

type session struct {
	mu sync.Mutex
	gb *src.GameBuilder
}

// Server keeps every running game in memory, keyed by session id.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*session
	logger   logx.Logger
	// builder factory, replaced in tests
	newBuilder func() *src.GameBuilder
}

func NewServer(logger logx.Logger) *Server {
	return &Server{
		sessions:   make(map[string]*session),
		logger:     logger,
		newBuilder: func() *src.GameBuilder { return src.NewGameBuilder(logger) },
	}
}

type gameView struct {
	Session string        `json:"session"`
	Status  string        `json:"status"`
	Correct int           `json:"correct"`
	Game    base.Snapshot `json:"game"`
}

type pointerReq struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/games", func(r chi.Router) {
		r.Post("/", s.createGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getGame)
			r.Delete("/", s.deleteGame)
			r.Post("/down", s.pointerDown)
			r.Post("/move", s.pointerMove)
			r.Post("/up", s.withGame(func(gb *src.GameBuilder, _ *http.Request) (base.Snapshot, error) {
				return gb.PointerUp(), nil
			}))
			r.Post("/cancel", s.withGame(func(gb *src.GameBuilder, _ *http.Request) (base.Snapshot, error) {
				return gb.PointerCancel(), nil
			}))
			r.Post("/tick", s.withGame(func(gb *src.GameBuilder, _ *http.Request) (base.Snapshot, error) {
				return gb.Tick(), nil
			}))
			r.Post("/undo", s.withGame(func(gb *src.GameBuilder, _ *http.Request) (base.Snapshot, error) {
				return gb.Undo(), nil
			}))
			r.Post("/restart", s.withGame(func(gb *src.GameBuilder, _ *http.Request) (base.Snapshot, error) {
				return gb.Restart()
			}))
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return r
}

// ListenAndServe runs the API until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Routes(), ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debugw("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start),
		)
	})
}

// createGame reads a multipart form: image file, grid, container, duration
// and seed. A missing image falls back to the built-in sample.
func (s *Server) createGame(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	grid, err := formInt(r, "grid", 4)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	container, err := formInt(r, "container", 480)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	// checked before the sample image is drawn at container size
	if g := (base.Grid{Size: grid, ContainerSize: float64(container)}); !g.IsValid() || container > maxContainer {
		respondError(w, http.StatusBadRequest,
			fmt.Errorf("%w: size %d, container %d", src.ErrInvalidGrid, grid, container).Error())
		return
	}
	duration, err := formInt(r, "duration", 0)
	if err != nil || duration < 0 {
		respondError(w, http.StatusBadRequest, "bad duration")
		return
	}

	var img image.Image
	file, _, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		if img, _, err = imageio.Decode(file); err != nil {
			respondError(w, http.StatusUnsupportedMediaType, err.Error())
			return
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		img = imageio.Sample(container)
	default:
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	gb := s.newBuilder()
	if v := r.FormValue("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "bad seed")
			return
		}
		gb.SetSeed(seed)
	}
	gb.SetTimeLimit(duration)
	snap, err := gb.StartGame(img, grid, float64(container))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{gb: gb}
	s.mu.Unlock()
	s.logger.Infow("session created", "session", id, "game", snap.ID)
	respondJSON(w, http.StatusCreated, view(id, gb.Status(), snap))
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request) {
	s.withGame(func(gb *src.GameBuilder, _ *http.Request) (base.Snapshot, error) {
		return gb.Snapshot(), nil
	})(w, r)
}

func (s *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		respondError(w, http.StatusNotFound, errNoSession.Error())
		return
	}
	s.logger.Infow("session deleted", "session", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) pointerDown(w http.ResponseWriter, r *http.Request) {
	s.withGame(func(gb *src.GameBuilder, r *http.Request) (base.Snapshot, error) {
		var req pointerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return base.Snapshot{}, err
		}
		return gb.PointerDown(req.Index, base.Point{X: req.X, Y: req.Y}), nil
	})(w, r)
}

func (s *Server) pointerMove(w http.ResponseWriter, r *http.Request) {
	s.withGame(func(gb *src.GameBuilder, r *http.Request) (base.Snapshot, error) {
		var req pointerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return base.Snapshot{}, err
		}
		return gb.PointerMove(base.Point{X: req.X, Y: req.Y}), nil
	})(w, r)
}

// withGame looks up the session and runs fn under its lock. Errors from fn
// are reported as bad requests.
func (s *Server) withGame(fn func(*src.GameBuilder, *http.Request) (base.Snapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s.mu.Lock()
		sess, ok := s.sessions[id]
		s.mu.Unlock()
		if !ok {
			respondError(w, http.StatusNotFound, errNoSession.Error())
			return
		}

		sess.mu.Lock()
		snap, err := fn(sess.gb, r)
		status := sess.gb.Status()
		sess.mu.Unlock()
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, view(id, status, snap))
	}
}

func view(id string, status base.Phase, snap base.Snapshot) gameView {
	st := base.State(snap)
	return gameView{Session: id, Status: status.String(), Correct: rules.CountCorrect(&st), Game: snap}
}

func formInt(r *http.Request, key string, def int) (int, error) {
	v := r.FormValue(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("bad " + key)
	}
	return n, nil
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
