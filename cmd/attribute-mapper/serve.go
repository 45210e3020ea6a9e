package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"attribute-mapper/internal/common"
	"attribute-mapper/mapper"
	"attribute-mapper/model"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

func runServe(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", "", "schema file")
	addr := fs.String("addr", ":8080", "listen address")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *verbose)

	classes, _, err := loadClasses(*schemaPath)
	if err != nil {
		logger.Error("loading schema", "error", err)
		return 1
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newRouter(classes, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		logger.Info("listening", "addr", *addr, "classes", common.SortedKeys(classes))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
			return 1
		}
	}

	return 0
}

type server struct {
	classes map[string]*mapper.Class
	logger  *slog.Logger
}

// newRouter exposes:
//
//	GET  /classes                          class names and attributes
//	POST /classes/{class}/map?extend=NAME  map the JSON body
func newRouter(classes map[string]*mapper.Class, logger *slog.Logger) http.Handler {
	s := &server{classes: classes, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/classes", s.listClasses)
	r.Post("/classes/{class}/map", s.mapRecord)

	return r
}

type classInfo struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
}

func (s *server) listClasses(w http.ResponseWriter, _ *http.Request) {
	infos := make([]classInfo, 0, len(s.classes))
	for _, name := range common.SortedKeys(s.classes) {
		infos = append(infos, classInfo{Name: name, Attributes: s.classes[name].Schema().Names()})
	}

	writeJSON(w, http.StatusOK, infos)
}

func (s *server) mapRecord(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	class, ok := s.classes[chi.URLParam(r, "class")]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown class")
		return
	}

	var ext *mapper.Class
	if name := r.URL.Query().Get("extend"); name != "" {
		if ext, ok = s.classes[name]; !ok {
			writeError(w, http.StatusNotFound, "unknown extension class")
			return
		}
	}

	input := map[string]any{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	inst, err := class.New(input)
	if err != nil {
		s.logger.Info("mapping failed", "request_id", reqID, "class", class.Name(), "error", err)
		writeError(w, statusFor(err), err.Error())

		return
	}

	if ext != nil {
		if err := inst.Extend(ext.Schema().Attributes()...); err != nil {
			s.logger.Info("extension failed", "request_id", reqID, "id", inst.ID(), "error", err)
			writeError(w, statusFor(err), err.Error())

			return
		}
	}

	s.logger.Debug("mapped", "request_id", reqID, "class", class.Name(), "id", inst.ID())

	writeJSON(w, http.StatusOK, newResult(inst))
}

// statusFor maps model errors to 422 and anything else, compute failures
// included, to 500.
func statusFor(err error) int {
	domain := []error{model.ErrRequiredAttributeMissing, model.ErrCoercion, model.ErrUnknownAttribute}
	if slices.ContainsFunc(domain, func(target error) bool { return errors.Is(err, target) }) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
