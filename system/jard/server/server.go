// Package server exposes a jar store over HTTP: the one-shot trigger
// interface plus export, import, and read endpoints.
package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/jarstore/go-jar/store"
)

// Spec configures a Server.
type Spec struct {
	Log   *slog.Logger
	Store *store.Store

	// JarName names the export artifact (default "jar").
	JarName string
}

// Server serves the jar trigger API. Requests are serialized by the store's
// lock; each mutation completes fully before the next is applied.
type Server struct {
	Spec Spec

	mux *http.ServeMux
}

// New creates a new Server instance.
func New(spec *Spec) *Server {
	if spec.Log == nil {
		spec.Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slogLevel(),
		}))
	}
	if spec.JarName == "" {
		spec.JarName = "jar"
	}
	s := &Server{
		Spec: *spec,
	}
	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/trigger", s.handleTrigger)
	s.mux.HandleFunc("/export", s.handleExport)
	s.mux.HandleFunc("/import", s.handleImport)
	s.mux.HandleFunc("/get", s.handleGet)
	s.mux.HandleFunc("/eval", s.handleEval)
	return s
}

func slogLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
