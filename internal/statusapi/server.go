package statusapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// api holds the handler dependencies.
type api struct {
	board  *Board
	logger *slog.Logger
}

// NewRouter returns the API routes over board. Encoding failures are
// logged to logger.
func NewRouter(board *Board, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.Default()
	}
	a := &api{board: board, logger: logger}
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/status", a.status).Methods("GET")
	r.HandleFunc("/achievements", a.achievements).Methods("GET")
	r.HandleFunc("/achievements/{id}", a.achievement).Methods("GET")
	return r
}

func (a *api) status(w http.ResponseWriter, r *http.Request) {
	st, ok := a.board.Load()
	if !ok {
		a.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no status yet"})
		return
	}
	a.writeJSON(w, http.StatusOK, st)
}

func (a *api) achievements(w http.ResponseWriter, r *http.Request) {
	st, _ := a.board.Load()
	list := st.Achievements
	if list == nil {
		list = []Achievement{}
	}
	a.writeJSON(w, http.StatusOK, list)
}

func (a *api) achievement(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	st, _ := a.board.Load()
	for _, ach := range st.Achievements {
		if ach.ID == id {
			a.writeJSON(w, http.StatusOK, ach)
			return
		}
	}
	a.writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown achievement " + id})
}

// writeJSON encodes v with status code. The header is already sent when
// encoding fails, so the error can only be logged.
func (a *api) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("encode response", "status", code, "error", err)
	}
}

// Server serves the API until its context is cancelled.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer creates a server for addr.
func NewServer(addr string, board *Board, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(board, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Listen binds the address so bind errors surface before serving.
func (s *Server) Listen() (net.Listener, error) {
	return net.Listen("tcp", s.srv.Addr)
}

// Serve runs on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("status api listening", "addr", ln.Addr().String())
		errc <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errc
		return nil
	}
}
