package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const maxBodyBytes = 1 << 16

// Store is the persistence the server needs. *storage.Store satisfies it.
type Store interface {
	SubmitBest(ctx context.Context, name string, score int64) (best int64, previous *int64, updated bool, err error)
	Leaders(ctx context.Context, limit int) ([]storage.LeaderEntry, error)
}

// Server answers the leaderboard contract:
//
//	GET  ?action=top (or no action)  -> {ok, top:[{name, score}]}, best first
//	POST {name, score} JSON or form  -> {ok, name, score, updated, previous}
//
// Failures are {ok:false, error} with 400, 404, 405 or 500.
type Server struct {
	store  Store
	logger *log.Logger
}

// NewServer creates a handler over store.
func NewServer(store Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{store: store, logger: logger}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := r.Header.Get("X-Request-ID")
	if reqID == "" {
		reqID = uuid.NewString()
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Request-ID", reqID)

	logger := s.logger.With("request", reqID, "method", r.Method)

	switch r.Method {
	case http.MethodGet:
		action := r.URL.Query().Get("action")
		if action != "" && action != "top" {
			s.fail(w, logger, http.StatusNotFound, "Unknown action")
			return
		}
		s.handleTop(w, r, logger)
	case http.MethodPost:
		s.handleSubmit(w, r, logger)
	default:
		s.fail(w, logger, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request, logger *log.Logger) {
	rows, err := s.store.Leaders(r.Context(), TopLimit)
	if err != nil {
		logger.Error("cannot read leaderboard", "error", err)
		s.fail(w, logger, http.StatusInternalServerError, "Cannot read leaderboard")
		return
	}

	top := make([]Entry, 0, len(rows))
	for _, row := range rows {
		top = append(top, Entry{Name: row.Name, Score: clampScore(row.Score)})
	}
	writeJSON(w, http.StatusOK, TopResponse{OK: true, Top: top})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, logger *log.Logger) {
	name, rawScore, msg := readSubmission(w, r)
	if msg != "" {
		s.fail(w, logger, http.StatusBadRequest, msg)
		return
	}

	name = NormalizeName(name)
	if len([]rune(name)) < MinNameLen {
		s.fail(w, logger, http.StatusBadRequest, "Name must be at least 2 characters")
		return
	}
	if rawScore == "" {
		s.fail(w, logger, http.StatusBadRequest, "Missing score")
		return
	}
	f, err := strconv.ParseFloat(rawScore, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		s.fail(w, logger, http.StatusBadRequest, "Score must be a number")
		return
	}
	switch {
	case f < 0:
		f = 0
	case f > math.MaxUint32:
		f = math.MaxUint32
	}
	score := int64(f)

	best, prev, updated, err := s.store.SubmitBest(r.Context(), name, score)
	if err != nil {
		logger.Error("cannot store score", "name", name, "error", err)
		s.fail(w, logger, http.StatusInternalServerError, "Cannot store score")
		return
	}

	resp := SubmitResponse{
		OK:      true,
		Name:    name,
		Score:   clampScore(best),
		Updated: updated,
	}
	if prev != nil {
		p := clampScore(*prev)
		resp.Previous = &p
	}
	logger.Info("score submitted", "name", name, "score", score, "updated", updated)
	writeJSON(w, http.StatusOK, resp)
}

// readSubmission extracts the raw name and score from a JSON or form body.
// An empty score means the field was absent.
func readSubmission(w http.ResponseWriter, r *http.Request) (name, score, msg string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return "", "", "Bad form"
		}
		return r.PostForm.Get("name"), strings.TrimSpace(r.PostForm.Get("score")), ""
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		return "", "", "Bad JSON"
	}
	if raw, ok := body["name"]; ok {
		// Non-string names are treated as empty.
		_ = json.Unmarshal(raw, &name)
	}
	raw, ok := body["score"]
	if !ok || string(raw) == "null" {
		return name, "", ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return name, strings.TrimSpace(str), ""
	}
	return name, string(raw), ""
}

func (s *Server) fail(w http.ResponseWriter, logger *log.Logger, code int, msg string) {
	logger.Warn("request rejected", "status", code, "error", msg)
	writeJSON(w, code, TopResponse{OK: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func clampScore(v int64) uint32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("leaderboard listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("leaderboard shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
